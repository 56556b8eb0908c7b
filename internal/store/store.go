// Package store defines the persistence contracts consumed by the services.
// The mongo implementation compiles authorization predicates into document
// filters so that the check and the mutation commit as one atomic write; the
// storetest implementation mirrors those semantics in memory for tests.
package store

import (
	"context"

	"github.com/covet-app/covet/internal/domain"
)

// Users is the identity directory.
type Users interface {
	// Create inserts a new user. Returns domain.ErrExists when the email or
	// username is already taken.
	Create(ctx context.Context, u *domain.User) error

	// ByEmail returns the full record (hash included) for login.
	ByEmail(ctx context.Context, email string) (*domain.User, error)

	// ByID returns the credential-free summary for one user.
	ByID(ctx context.Context, id string) (*domain.UserSummary, error)

	// ByIDs resolves summaries for the given ids, in store insertion order.
	// Unknown ids are silently absent from the result.
	ByIDs(ctx context.Context, ids []string) ([]domain.UserSummary, error)

	// Search matches query case-insensitively against email and username,
	// excludes callerID, and returns at most limit summaries in store
	// insertion order.
	Search(ctx context.Context, callerID, query string, limit int) ([]domain.UserSummary, error)
}

// Wishlists exposes only conditional operations over the wishlist aggregate:
// every read and write carries the caller id, and the matching filter encodes
// the authorization predicate. A predicate-excluded operation returns
// domain.ErrNotFound, indistinguishable from true absence.
type Wishlists interface {
	Create(ctx context.Context, w *domain.Wishlist) error

	// ListForUser returns every wishlist the user owns or is a member of.
	ListForUser(ctx context.Context, userID string) ([]domain.Wishlist, error)

	// GetIfVisible fetches the aggregate under CanView.
	GetIfVisible(ctx context.Context, id, callerID string) (*domain.Wishlist, error)

	// UpdateMetadata sets name and description under CanEditMetadata.
	UpdateMetadata(ctx context.Context, id, callerID, name, description string) error

	// Delete destroys the aggregate under CanDelete.
	Delete(ctx context.Context, id, callerID string) error

	// AddMembers unions the given users into the member arrays under
	// CanInvite, with set semantics at the storage layer.
	AddMembers(ctx context.Context, id, callerID string, members []domain.UserSummary) error

	// RemoveMember pulls the (id, username) pair from the member arrays
	// under CanRemoveMember.
	RemoveMember(ctx context.Context, id, callerID, targetID, targetUsername string) error

	// AppendProduct appends under CanAddProduct.
	AppendProduct(ctx context.Context, id, callerID string, p domain.Product) error

	// ReplaceProduct overwrites name, image url and price of the embedded
	// product under CanEditProduct. Partial updates are not supported.
	ReplaceProduct(ctx context.Context, id, productID, callerID, name, imageURL string, price float64) error

	// RemoveProduct pulls the product by id under CanDeleteProduct.
	RemoveProduct(ctx context.Context, id, productID, callerID string) error
}
