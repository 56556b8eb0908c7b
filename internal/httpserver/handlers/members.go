package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/covet-app/covet/internal/httpserver/deps"
)

// Invite adds users to a wishlist's member set, owner only.
func Invite(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		caller, ok := actor(w, r)
		if !ok {
			return
		}

		var req struct {
			UserIDs []string `json:"userIds"`
		}
		if !decodeBody(w, r, &req) {
			return
		}

		res, err := d.Membership.Invite(r.Context(), chi.URLParam(r, "id"), caller.ID, req.UserIDs)
		if err != nil {
			respondErr(w, d.Logger, err)
			return
		}

		respondJSON(w, http.StatusOK, map[string]any{
			"message":      res.Message,
			"invitedUsers": res.Invited,
		})
	}
}

// ListMembers returns credential-free summaries for the wishlist's owner and
// members.
func ListMembers(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		caller, ok := actor(w, r)
		if !ok {
			return
		}

		members, err := d.Membership.ListMembers(r.Context(), chi.URLParam(r, "id"), caller.ID)
		if err != nil {
			respondErr(w, d.Logger, err)
			return
		}
		respondJSON(w, http.StatusOK, map[string]any{"members": members})
	}
}

// RemoveMember removes a member: the owner may remove anyone but themselves,
// a member only themselves.
func RemoveMember(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		caller, ok := actor(w, r)
		if !ok {
			return
		}

		memberID := r.URL.Query().Get("memberId")
		if memberID == "" {
			respondJSON(w, http.StatusBadRequest, errorResponse{Error: "member id is required"})
			return
		}

		if err := d.Membership.Remove(r.Context(), chi.URLParam(r, "id"), caller.ID, memberID); err != nil {
			respondErr(w, d.Logger, err)
			return
		}
		respondJSON(w, http.StatusOK, map[string]string{"message": "member removed successfully"})
	}
}
