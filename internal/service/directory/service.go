// Package directory is the user lookup surface: bounded, credential-free,
// case-insensitive substring search over registered identities.
package directory

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/covet-app/covet/internal/domain"
	"github.com/covet-app/covet/internal/store"
)

const (
	// minQueryLength is a deliberate floor: queries shorter than this
	// return empty without touching the store, so near-empty input can
	// never trigger a full scan.
	minQueryLength = 2

	// DefaultLimit caps the result size.
	DefaultLimit = 10
)

// Cache is an optional read accelerator for search results. A nil Cache
// disables caching entirely.
type Cache interface {
	Get(ctx context.Context, callerID, query string) ([]domain.UserSummary, bool)
	Set(ctx context.Context, callerID, query string, users []domain.UserSummary)
}

// Service serves user searches.
type Service struct {
	users store.Users
	cache Cache
	limit int
}

// NewService creates a directory over the user store. cache may be nil.
func NewService(users store.Users, cache Cache, limit int) *Service {
	if limit <= 0 {
		limit = DefaultLimit
	}
	return &Service{users: users, cache: cache, limit: limit}
}

// Search matches query against email and username, excluding the caller.
// Results come back in store insertion order, capped at the configured
// limit. Queries shorter than two characters yield an empty result, not an
// error.
func (s *Service) Search(ctx context.Context, callerID, query string) ([]domain.UserSummary, error) {
	query = strings.TrimSpace(query)
	if utf8.RuneCountInString(query) < minQueryLength {
		return []domain.UserSummary{}, nil
	}

	if s.cache != nil {
		if users, ok := s.cache.Get(ctx, callerID, query); ok {
			return users, nil
		}
	}

	users, err := s.users.Search(ctx, callerID, query, s.limit)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		s.cache.Set(ctx, callerID, query, users)
	}
	return users, nil
}
