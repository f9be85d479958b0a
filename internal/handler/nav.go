package handler

import (
	"encoding/json"
	"net/http"

	"github.com/petworks/tamacore/internal/session"
)

// NavRequest carries a scene name for the navigation stack
type NavRequest struct {
	Scene string `json:"scene"`
}

var knownScenes = map[string]bool{
	session.SceneHome:      true,
	session.SceneShop:      true,
	session.SceneInventory: true,
	session.SceneActivity:  true,
}

// HandleNavPush pushes a scene onto the navigation stack
func HandleNavPush(sess *session.Session) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req NavRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondError(w, http.StatusBadRequest, "Invalid request body")
			return
		}
		if !knownScenes[req.Scene] {
			respondError(w, http.StatusBadRequest, "Unknown scene")
			return
		}
		sess.PushScene(req.Scene)
		respondJSON(w, http.StatusOK, sess.View())
	}
}

// HandleNavPop pops the current scene
func HandleNavPop(sess *session.Session) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess.PopScene()
		respondJSON(w, http.StatusOK, sess.View())
	}
}
