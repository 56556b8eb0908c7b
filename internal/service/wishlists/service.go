// Package wishlists covers the wishlist lifecycle: creation, listing,
// metadata edits and deletion. Membership and product mutations live in
// their own packages.
package wishlists

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/covet-app/covet/internal/domain"
	"github.com/covet-app/covet/internal/store"
)

// Service owns wishlist CRUD.
type Service struct {
	wishlists store.Wishlists
}

// NewService creates the service.
func NewService(wishlists store.Wishlists) *Service {
	return &Service{wishlists: wishlists}
}

// Create makes a new wishlist owned by the caller. The owner is implicitly
// the sole member; the member arrays start empty.
func (s *Service) Create(ctx context.Context, caller domain.Actor, name, description string) (*domain.Wishlist, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, domain.Validationf("name is required")
	}

	now := time.Now().UTC()
	w := &domain.Wishlist{
		ID:                uuid.NewString(),
		Name:              name,
		Description:       description,
		CreatedBy:         caller.ID,
		CreatedByUsername: caller.Username,
		Members:           []string{},
		MemberUsernames:   []string{},
		Products:          []domain.Product{},
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	if err := s.wishlists.Create(ctx, w); err != nil {
		return nil, err
	}
	return w, nil
}

// List returns every wishlist the caller owns or belongs to.
func (s *Service) List(ctx context.Context, callerID string) ([]domain.Wishlist, error) {
	return s.wishlists.ListForUser(ctx, callerID)
}

// Get returns the full aggregate, products included, if the caller may see it.
func (s *Service) Get(ctx context.Context, id, callerID string) (*domain.Wishlist, error) {
	return s.wishlists.GetIfVisible(ctx, id, callerID)
}

// UpdateMetadata renames or re-describes the wishlist, owner only.
func (s *Service) UpdateMetadata(ctx context.Context, id, callerID, name, description string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return domain.Validationf("name is required")
	}
	return s.wishlists.UpdateMetadata(ctx, id, callerID, name, description)
}

// Delete destroys the wishlist, owner only.
func (s *Service) Delete(ctx context.Context, id, callerID string) error {
	return s.wishlists.Delete(ctx, id, callerID)
}
