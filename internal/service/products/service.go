// Package products is the product ledger: append, overwrite and remove
// entries within a wishlist, stamping provenance and enforcing adder
// ownership through the store's conditional writes.
package products

import (
	"context"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/covet-app/covet/internal/domain"
	"github.com/covet-app/covet/internal/store"
)

// Fields carries the client-supplied product fields. Edits overwrite all
// three; partial updates are not supported.
type Fields struct {
	Name     string
	ImageURL string
	Price    float64
}

// Service owns product mutations.
type Service struct {
	wishlists store.Wishlists
}

// NewService creates the service.
func NewService(wishlists store.Wishlists) *Service {
	return &Service{wishlists: wishlists}
}

// Add appends a product to the wishlist, stamped with the caller as adder.
// Owner and members may add.
func (s *Service) Add(ctx context.Context, wishlistID string, caller domain.Actor, f Fields) (*domain.Product, error) {
	if err := validate(f); err != nil {
		return nil, err
	}

	p := domain.Product{
		ID:              uuid.NewString(),
		Name:            strings.TrimSpace(f.Name),
		ImageURL:        f.ImageURL,
		Price:           f.Price,
		AddedBy:         caller.ID,
		AddedByUsername: caller.Username,
		AddedAt:         time.Now().UTC(),
	}
	if err := s.wishlists.AppendProduct(ctx, wishlistID, caller.ID, p); err != nil {
		return nil, err
	}
	return &p, nil
}

// Edit overwrites the product's name, image url and price. Only the adder
// may edit, the owner included only when they added it.
func (s *Service) Edit(ctx context.Context, wishlistID, productID, callerID string, f Fields) error {
	if err := validate(f); err != nil {
		return err
	}
	return s.wishlists.ReplaceProduct(ctx, wishlistID, productID, callerID,
		strings.TrimSpace(f.Name), f.ImageURL, f.Price)
}

// Remove deletes the product. The owner may remove any product, the adder
// their own.
func (s *Service) Remove(ctx context.Context, wishlistID, productID, callerID string) error {
	return s.wishlists.RemoveProduct(ctx, wishlistID, productID, callerID)
}

func validate(f Fields) error {
	if strings.TrimSpace(f.Name) == "" {
		return domain.Validationf("name is required")
	}
	if f.Price < 0 || math.IsNaN(f.Price) || math.IsInf(f.Price, 0) {
		return domain.Validationf("price must be a non-negative number")
	}
	return nil
}
