package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/covet-app/covet/internal/httpserver/deps"
	"github.com/covet-app/covet/internal/logger"
)

type readyzResponse struct {
	Ready bool `json:"ready"`
}

func Readyz(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		if d.StorePing != nil {
			if err := d.StorePing(r.Context()); err != nil {
				d.Logger.Warn("readiness check failed", logger.Error(err))
				w.WriteHeader(http.StatusServiceUnavailable)
				_ = json.NewEncoder(w).Encode(readyzResponse{Ready: false})
				return
			}
		}

		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(readyzResponse{Ready: true})
	}
}
