package handlers

import (
	"net/http"

	"github.com/covet-app/covet/internal/httpserver/deps"
)

// SearchUsers serves the bounded user-directory search.
func SearchUsers(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		caller, ok := actor(w, r)
		if !ok {
			return
		}

		users, err := d.Directory.Search(r.Context(), caller.ID, r.URL.Query().Get("q"))
		if err != nil {
			respondErr(w, d.Logger, err)
			return
		}

		respondJSON(w, http.StatusOK, map[string]any{"users": users})
	}
}
