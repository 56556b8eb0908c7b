package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/covet-app/covet/internal/httpserver/deps"
	"github.com/covet-app/covet/internal/service/products"
)

type productRequest struct {
	Name     string  `json:"name"`
	ImageURL string  `json:"imageUrl"`
	Price    float64 `json:"price"`
}

// AddProduct appends a product, stamped with the caller as adder.
func AddProduct(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		caller, ok := actor(w, r)
		if !ok {
			return
		}

		var req productRequest
		if !decodeBody(w, r, &req) {
			return
		}

		p, err := d.Products.Add(r.Context(), chi.URLParam(r, "id"), caller, products.Fields{
			Name:     req.Name,
			ImageURL: req.ImageURL,
			Price:    req.Price,
		})
		if err != nil {
			respondErr(w, d.Logger, err)
			return
		}

		respondJSON(w, http.StatusCreated, map[string]any{
			"message": "product added successfully",
			"product": p,
		})
	}
}

// EditProduct overwrites a product's mutable fields, adder only.
func EditProduct(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		caller, ok := actor(w, r)
		if !ok {
			return
		}

		var req productRequest
		if !decodeBody(w, r, &req) {
			return
		}

		err := d.Products.Edit(r.Context(), chi.URLParam(r, "id"), chi.URLParam(r, "productId"), caller.ID, products.Fields{
			Name:     req.Name,
			ImageURL: req.ImageURL,
			Price:    req.Price,
		})
		if err != nil {
			respondErr(w, d.Logger, err)
			return
		}
		respondJSON(w, http.StatusOK, map[string]string{"message": "product updated successfully"})
	}
}

// DeleteProduct removes a product, owner or adder.
func DeleteProduct(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		caller, ok := actor(w, r)
		if !ok {
			return
		}

		err := d.Products.Remove(r.Context(), chi.URLParam(r, "id"), chi.URLParam(r, "productId"), caller.ID)
		if err != nil {
			respondErr(w, d.Logger, err)
			return
		}
		respondJSON(w, http.StatusOK, map[string]string{"message": "product deleted successfully"})
	}
}
