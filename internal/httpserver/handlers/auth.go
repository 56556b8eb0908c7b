package handlers

import (
	"net/http"

	"github.com/covet-app/covet/internal/domain"
	"github.com/covet-app/covet/internal/httpserver/deps"
	"github.com/covet-app/covet/internal/httpserver/mw"
)

type userResponse struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	Username string `json:"username"`
}

// Signup registers a new user.
func Signup(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Email    string `json:"email"`
			Username string `json:"username"`
			Password string `json:"password"`
		}
		if !decodeBody(w, r, &req) {
			return
		}

		user, err := d.Auth.Signup(r.Context(), req.Email, req.Username, req.Password)
		if err != nil {
			respondErr(w, d.Logger, err)
			return
		}

		respondJSON(w, http.StatusCreated, map[string]string{
			"message": "user created successfully",
			"user_id": user.ID,
		})
	}
}

// Login authenticates a user and returns a bearer token.
func Login(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Email    string `json:"email"`
			Password string `json:"password"`
		}
		if !decodeBody(w, r, &req) {
			return
		}

		token, user, err := d.Auth.Login(r.Context(), req.Email, req.Password)
		if err != nil {
			respondErr(w, d.Logger, err)
			return
		}

		respondJSON(w, http.StatusOK, map[string]any{
			"message": "login successful",
			"token":   token,
			"user": userResponse{
				ID:       user.ID,
				Email:    user.Email,
				Username: user.Username,
			},
		})
	}
}

// actor pulls the verified caller from the context; mw.Auth guarantees it on
// protected routes.
func actor(w http.ResponseWriter, r *http.Request) (domain.Actor, bool) {
	a, ok := mw.ActorFrom(r.Context())
	if !ok {
		respondJSON(w, http.StatusUnauthorized, errorResponse{Error: "unauthorized"})
	}
	return a, ok
}
