package handler

import (
	"net/http"

	"github.com/petworks/tamacore/internal/session"
)

// Action handlers always answer 200 with a Result toast: a rejected
// action (dead pet, empty wallet) is normal gameplay, not an HTTP error.

// HandleFeed feeds the pet
func HandleFeed(sess *session.Session) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, sess.Feed())
	}
}

// HandleSleep puts the pet to sleep
func HandleSleep(sess *session.Session) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, sess.Sleep())
	}
}

// HandleClean cleans the pet
func HandleClean(sess *session.Session) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, sess.Clean())
	}
}

// HandlePlay enters the activity scene and credits the play quest
func HandlePlay(sess *session.Session) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, sess.Play())
	}
}

// HandleRevive revives a dead pet for gems
func HandleRevive(sess *session.Session) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, sess.Revive())
	}
}

// HandleClaimChest claims the daily chest
func HandleClaimChest(sess *session.Session) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, sess.ClaimChest())
	}
}

// HandleGetState returns the full render view
func HandleGetState(sess *session.Session) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, sess.View())
	}
}
