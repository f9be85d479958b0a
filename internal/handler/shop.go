package handler

import (
	"encoding/json"
	"net/http"

	"github.com/petworks/tamacore/internal/session"
)

// SelectRequest carries an item id for the cursor endpoints
type SelectRequest struct {
	ID string `json:"id"`
}

// HandleBuy purchases the current shop selection
func HandleBuy(sess *session.Session) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, sess.BuySelected())
	}
}

// HandleReroll buys a fresh shop draw
func HandleReroll(sess *session.Session) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, sess.Reroll())
	}
}

// HandleShopSelect moves the shop cursor
func HandleShopSelect(sess *session.Session) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req SelectRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondError(w, http.StatusBadRequest, "Invalid request body")
			return
		}
		respondJSON(w, http.StatusOK, sess.SelectShopItem(req.ID))
	}
}
