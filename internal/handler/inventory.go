package handler

import (
	"encoding/json"
	"net/http"

	"github.com/petworks/tamacore/internal/session"
)

// PageRequest carries the target inventory page
type PageRequest struct {
	Page int `json:"page"`
}

// HandleEquip equips the selected inventory item
func HandleEquip(sess *session.Session) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, sess.Equip())
	}
}

// HandleUnequip resets the selected item's category to its default
func HandleUnequip(sess *session.Session) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, sess.Unequip())
	}
}

// HandleInventorySelect moves the inventory cursor
func HandleInventorySelect(sess *session.Session) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req SelectRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondError(w, http.StatusBadRequest, "Invalid request body")
			return
		}
		respondJSON(w, http.StatusOK, sess.SelectInventoryItem(req.ID))
	}
}

// HandleInventoryPage sets the inventory page, clamped to valid range
func HandleInventoryPage(sess *session.Session) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req PageRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondError(w, http.StatusBadRequest, "Invalid request body")
			return
		}
		sess.SetInventoryPage(req.Page)
		respondJSON(w, http.StatusOK, sess.View())
	}
}
