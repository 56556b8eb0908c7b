package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/covet-app/covet/internal/httpserver/deps"
)

// ListWishlists returns every wishlist the caller owns or belongs to.
func ListWishlists(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		caller, ok := actor(w, r)
		if !ok {
			return
		}

		lists, err := d.Wishlists.List(r.Context(), caller.ID)
		if err != nil {
			respondErr(w, d.Logger, err)
			return
		}
		respondJSON(w, http.StatusOK, lists)
	}
}

// CreateWishlist makes a new wishlist owned by the caller.
func CreateWishlist(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		caller, ok := actor(w, r)
		if !ok {
			return
		}

		var req struct {
			Name        string `json:"name"`
			Description string `json:"description"`
		}
		if !decodeBody(w, r, &req) {
			return
		}

		wl, err := d.Wishlists.Create(r.Context(), caller, req.Name, req.Description)
		if err != nil {
			respondErr(w, d.Logger, err)
			return
		}

		respondJSON(w, http.StatusCreated, map[string]any{
			"message":  "wishlist created successfully",
			"wishlist": wl,
		})
	}
}

// GetWishlist returns the full aggregate, products included.
func GetWishlist(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		caller, ok := actor(w, r)
		if !ok {
			return
		}

		wl, err := d.Wishlists.Get(r.Context(), chi.URLParam(r, "id"), caller.ID)
		if err != nil {
			respondErr(w, d.Logger, err)
			return
		}
		respondJSON(w, http.StatusOK, wl)
	}
}

// UpdateWishlist renames or re-describes a wishlist, owner only.
func UpdateWishlist(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		caller, ok := actor(w, r)
		if !ok {
			return
		}

		var req struct {
			Name        string `json:"name"`
			Description string `json:"description"`
		}
		if !decodeBody(w, r, &req) {
			return
		}

		err := d.Wishlists.UpdateMetadata(r.Context(), chi.URLParam(r, "id"), caller.ID, req.Name, req.Description)
		if err != nil {
			respondErr(w, d.Logger, err)
			return
		}
		respondJSON(w, http.StatusOK, map[string]string{"message": "wishlist updated successfully"})
	}
}

// DeleteWishlist destroys a wishlist, owner only.
func DeleteWishlist(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		caller, ok := actor(w, r)
		if !ok {
			return
		}

		if err := d.Wishlists.Delete(r.Context(), chi.URLParam(r, "id"), caller.ID); err != nil {
			respondErr(w, d.Logger, err)
			return
		}
		respondJSON(w, http.StatusOK, map[string]string{"message": "wishlist deleted successfully"})
	}
}
