package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/covet-app/covet/internal/httpserver/deps"
	"github.com/covet-app/covet/internal/httpserver/handlers"
	"github.com/covet-app/covet/internal/httpserver/mw"
)

func init() { Register(registerWishlists) }

func registerWishlists(r chi.Router, d deps.Deps) {
	r.Route("/api/wishlists", func(r chi.Router) {
		r.Use(mw.Auth(d.Auth, d.Logger))

		r.Get("/", handlers.ListWishlists(d))
		r.Post("/", handlers.CreateWishlist(d))

		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", handlers.GetWishlist(d))
			r.Put("/", handlers.UpdateWishlist(d))
			r.Delete("/", handlers.DeleteWishlist(d))

			r.Post("/invite", handlers.Invite(d))
			r.Get("/members", handlers.ListMembers(d))
			r.Delete("/members", handlers.RemoveMember(d))

			r.Post("/products", handlers.AddProduct(d))
			r.Put("/products/{productId}", handlers.EditProduct(d))
			r.Delete("/products/{productId}", handlers.DeleteProduct(d))
		})
	})
}
