// Package storetest provides an in-memory implementation of the store
// contracts with the same conditional-write semantics as the mongo store:
// every operation evaluates its authorization predicate and applies the
// mutation under one lock, and a predicate miss surfaces as ErrNotFound.
package storetest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/covet-app/covet/internal/domain"
)

// Store holds users and wishlists behind one mutex, standing in for the
// document store's single-document atomicity. Users() and Wishlists() hand
// out the facades matching the store contracts.
type Store struct {
	mu        sync.RWMutex
	userOrder []string // insertion order, mirrors mongo natural order
	users     map[string]domain.User
	wishlists map[string]domain.Wishlist

	// SearchCalls counts Users().Search invocations, so tests can assert
	// the short-query floor never touches the store.
	SearchCalls int
}

// Users is the in-memory identity directory.
type Users struct{ s *Store }

// Wishlists is the in-memory wishlist aggregate store.
type Wishlists struct{ s *Store }

// New creates an empty store.
func New() *Store {
	return &Store{
		users:     make(map[string]domain.User),
		wishlists: make(map[string]domain.Wishlist),
	}
}

func (s *Store) Users() *Users         { return &Users{s: s} }
func (s *Store) Wishlists() *Wishlists { return &Wishlists{s: s} }

// ── Users ────────────────────────────────────────────────────────

func (u *Users) Create(ctx context.Context, user *domain.User) error {
	s := u.s
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.users {
		if existing.Email == user.Email || existing.Username == user.Username {
			return fmt.Errorf("user: %w", domain.ErrExists)
		}
	}
	s.users[user.ID] = *user
	s.userOrder = append(s.userOrder, user.ID)
	return nil
}

func (u *Users) ByEmail(ctx context.Context, email string) (*domain.User, error) {
	s := u.s
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, user := range s.users {
		if user.Email == email {
			copied := user
			return &copied, nil
		}
	}
	return nil, fmt.Errorf("user %s: %w", email, domain.ErrNotFound)
}

func (u *Users) ByID(ctx context.Context, id string) (*domain.UserSummary, error) {
	s := u.s
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.users[id]
	if !ok {
		return nil, fmt.Errorf("user %s: %w", id, domain.ErrNotFound)
	}
	return &domain.UserSummary{ID: user.ID, Email: user.Email, Username: user.Username}, nil
}

func (u *Users) ByIDs(ctx context.Context, ids []string) ([]domain.UserSummary, error) {
	s := u.s
	s.mu.RLock()
	defer s.mu.RUnlock()

	wanted := make(map[string]bool, len(ids))
	for _, id := range ids {
		wanted[id] = true
	}

	out := []domain.UserSummary{}
	for _, id := range s.userOrder {
		if !wanted[id] {
			continue
		}
		user := s.users[id]
		out = append(out, domain.UserSummary{ID: user.ID, Email: user.Email, Username: user.Username})
	}
	return out, nil
}

func (u *Users) Search(ctx context.Context, callerID, query string, limit int) ([]domain.UserSummary, error) {
	s := u.s
	s.mu.Lock()
	defer s.mu.Unlock()

	s.SearchCalls++

	q := strings.ToLower(query)
	out := []domain.UserSummary{}
	for _, id := range s.userOrder {
		if id == callerID {
			continue
		}
		user := s.users[id]
		if strings.Contains(strings.ToLower(user.Email), q) ||
			strings.Contains(strings.ToLower(user.Username), q) {
			out = append(out, domain.UserSummary{ID: user.ID, Email: user.Email, Username: user.Username})
			if len(out) == limit {
				break
			}
		}
	}
	return out, nil
}

// ── Wishlists ────────────────────────────────────────────────────

func (wl *Wishlists) Create(ctx context.Context, w *domain.Wishlist) error {
	s := wl.s
	s.mu.Lock()
	defer s.mu.Unlock()

	s.wishlists[w.ID] = cloneWishlist(*w)
	return nil
}

func (wl *Wishlists) ListForUser(ctx context.Context, userID string) ([]domain.Wishlist, error) {
	s := wl.s
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []domain.Wishlist{}
	for _, w := range s.wishlists {
		if w.IsMember(userID) {
			out = append(out, cloneWishlist(w))
		}
	}
	return out, nil
}

func (wl *Wishlists) GetIfVisible(ctx context.Context, id, callerID string) (*domain.Wishlist, error) {
	s := wl.s
	s.mu.RLock()
	defer s.mu.RUnlock()

	w, ok := s.wishlists[id]
	if !ok || !domain.CanView(&w, callerID) {
		return nil, fmt.Errorf("wishlist %s: %w", id, domain.ErrNotFound)
	}
	copied := cloneWishlist(w)
	return &copied, nil
}

func (wl *Wishlists) UpdateMetadata(ctx context.Context, id, callerID, name, description string) error {
	return wl.mutate(id, func(w *domain.Wishlist) bool {
		if !domain.CanEditMetadata(w, callerID) {
			return false
		}
		w.Name = name
		w.Description = description
		return true
	})
}

func (wl *Wishlists) Delete(ctx context.Context, id, callerID string) error {
	s := wl.s
	s.mu.Lock()
	defer s.mu.Unlock()

	w, ok := s.wishlists[id]
	if !ok || !domain.CanDelete(&w, callerID) {
		return fmt.Errorf("wishlist %s: %w", id, domain.ErrNotFound)
	}
	delete(s.wishlists, id)
	return nil
}

func (wl *Wishlists) AddMembers(ctx context.Context, id, callerID string, members []domain.UserSummary) error {
	return wl.mutate(id, func(w *domain.Wishlist) bool {
		if !domain.CanInvite(w, callerID) {
			return false
		}
		for _, m := range members {
			if w.IsMember(m.ID) {
				continue // set semantics, like $addToSet
			}
			w.Members = append(w.Members, m.ID)
			w.MemberUsernames = append(w.MemberUsernames, m.Username)
		}
		return true
	})
}

func (wl *Wishlists) RemoveMember(ctx context.Context, id, callerID, targetID, targetUsername string) error {
	return wl.mutate(id, func(w *domain.Wishlist) bool {
		if !domain.CanRemoveMember(w, callerID, targetID) {
			return false
		}
		w.Members = pull(w.Members, targetID)
		w.MemberUsernames = pull(w.MemberUsernames, targetUsername)
		return true
	})
}

func (wl *Wishlists) AppendProduct(ctx context.Context, id, callerID string, p domain.Product) error {
	return wl.mutate(id, func(w *domain.Wishlist) bool {
		if !domain.CanAddProduct(w, callerID) {
			return false
		}
		w.Products = append(w.Products, p)
		return true
	})
}

func (wl *Wishlists) ReplaceProduct(ctx context.Context, id, productID, callerID, name, imageURL string, price float64) error {
	return wl.mutate(id, func(w *domain.Wishlist) bool {
		for i := range w.Products {
			if w.Products[i].ID != productID {
				continue
			}
			if !domain.CanEditProduct(w, callerID, w.Products[i]) {
				return false
			}
			w.Products[i].Name = name
			w.Products[i].ImageURL = imageURL
			w.Products[i].Price = price
			return true
		}
		return false
	})
}

func (wl *Wishlists) RemoveProduct(ctx context.Context, id, productID, callerID string) error {
	return wl.mutate(id, func(w *domain.Wishlist) bool {
		for i := range w.Products {
			if w.Products[i].ID != productID {
				continue
			}
			if !domain.CanDeleteProduct(w, callerID, w.Products[i]) {
				return false
			}
			w.Products = append(w.Products[:i], w.Products[i+1:]...)
			return true
		}
		return false
	})
}

// mutate applies fn to the wishlist under the write lock. fn returning false
// means the predicate excluded the document.
func (wl *Wishlists) mutate(id string, fn func(*domain.Wishlist) bool) error {
	s := wl.s
	s.mu.Lock()
	defer s.mu.Unlock()

	w, ok := s.wishlists[id]
	if ok {
		copied := cloneWishlist(w)
		if fn(&copied) {
			copied.UpdatedAt = time.Now().UTC()
			s.wishlists[id] = copied
			return nil
		}
	}
	return fmt.Errorf("wishlist %s: %w", id, domain.ErrNotFound)
}

func cloneWishlist(w domain.Wishlist) domain.Wishlist {
	w.Members = append([]string{}, w.Members...)
	w.MemberUsernames = append([]string{}, w.MemberUsernames...)
	w.Products = append([]domain.Product{}, w.Products...)
	return w
}

func pull(list []string, value string) []string {
	out := make([]string, 0, len(list))
	for _, v := range list {
		if v != value {
			out = append(out, v)
		}
	}
	return out
}
