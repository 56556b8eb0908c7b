package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/covet-app/covet/internal/httpserver/deps"
	"github.com/covet-app/covet/internal/httpserver/handlers"
	"github.com/covet-app/covet/internal/httpserver/mw"
)

func init() { Register(registerUsers) }

func registerUsers(r chi.Router, d deps.Deps) {
	r.With(mw.Auth(d.Auth, d.Logger)).Get("/api/users/search", handlers.SearchUsers(d))
}
