// Package membership grows and shrinks a wishlist's member set while keeping
// the parallel id/username arrays synchronized. All writes go through the
// store's conditional operations, so the authorization check commits
// atomically with the mutation.
package membership

import (
	"context"
	"errors"
	"fmt"

	"github.com/covet-app/covet/internal/domain"
	"github.com/covet-app/covet/internal/logger"
	"github.com/covet-app/covet/internal/store"
)

// InviteResult reports who was actually added.
type InviteResult struct {
	Invited []domain.UserSummary
	Message string
}

// Service handles invitations, removals and member listing.
type Service struct {
	users     store.Users
	wishlists store.Wishlists
	logger    logger.Logger
}

// NewService creates the service.
func NewService(users store.Users, wishlists store.Wishlists, log logger.Logger) *Service {
	return &Service{users: users, wishlists: wishlists, logger: log}
}

// Invite resolves the candidate ids, drops the ones who are already members
// (the owner counts as a member) and unions the rest into the wishlist under
// the owner-only predicate. Every id must resolve, or the whole request is
// rejected. Inviting only existing members is a distinct no-op error so the
// caller can render a precise message.
func (s *Service) Invite(ctx context.Context, wishlistID, callerID string, userIDs []string) (*InviteResult, error) {
	userIDs = dedupe(userIDs)
	if len(userIDs) == 0 {
		return nil, domain.Validationf("user ids are required")
	}

	// Read for the set difference; authorization is re-checked inside the
	// conditional write below, so a racing change cannot slip through.
	w, err := s.wishlists.GetIfVisible(ctx, wishlistID, callerID)
	if err != nil {
		return nil, err
	}
	if !domain.CanInvite(w, callerID) {
		return nil, fmt.Errorf("wishlist %s: %w", wishlistID, domain.ErrNotFound)
	}

	resolved, err := s.users.ByIDs(ctx, userIDs)
	if err != nil {
		return nil, err
	}
	if len(resolved) != len(userIDs) {
		return nil, domain.Validationf("some users not found")
	}

	newMembers := make([]domain.UserSummary, 0, len(resolved))
	for _, u := range resolved {
		if w.IsMember(u.ID) {
			continue
		}
		newMembers = append(newMembers, u)
	}
	if len(newMembers) == 0 {
		return nil, fmt.Errorf("all selected users are already members: %w", domain.ErrNoOp)
	}

	if err := s.wishlists.AddMembers(ctx, wishlistID, callerID, newMembers); err != nil {
		return nil, err
	}

	s.logger.Info("members invited",
		logger.String("wishlist_id", wishlistID),
		logger.Int("count", len(newMembers)))

	return &InviteResult{
		Invited: newMembers,
		Message: fmt.Sprintf("Successfully invited %d user(s)", len(newMembers)),
	}, nil
}

// Remove takes a member out of the wishlist: the owner may remove anyone but
// themselves, a member only themselves. The target's username is resolved
// first so the parallel arrays can be pruned by value in one write.
func (s *Service) Remove(ctx context.Context, wishlistID, callerID, targetID string) error {
	target, err := s.users.ByID(ctx, targetID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("member %s: %w", targetID, domain.ErrNotFound)
		}
		return err
	}

	if err := s.wishlists.RemoveMember(ctx, wishlistID, callerID, target.ID, target.Username); err != nil {
		return err
	}

	s.logger.Info("member removed",
		logger.String("wishlist_id", wishlistID),
		logger.String("member_id", targetID))
	return nil
}

// ListMembers returns credential-free summaries for the owner and every
// member of a wishlist the caller may see.
func (s *Service) ListMembers(ctx context.Context, wishlistID, callerID string) ([]domain.UserSummary, error) {
	w, err := s.wishlists.GetIfVisible(ctx, wishlistID, callerID)
	if err != nil {
		return nil, err
	}
	return s.users.ByIDs(ctx, append([]string{w.CreatedBy}, w.Members...))
}

func dedupe(ids []string) []string {
	seen := make(map[string]bool, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}
