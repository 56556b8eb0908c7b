// Package mongo persists users and wishlist aggregates in MongoDB. Each
// wishlist is one document, so document-level atomicity is all the
// serialization the mutation model needs: authorization predicates are
// compiled into the update filters and evaluated by the server as part of
// the write itself.
package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	usersCollection     = "users"
	wishlistsCollection = "wishlists"
)

// Users is the identity directory backed by the users collection.
type Users struct {
	col *mongo.Collection
}

// Wishlists owns the wishlist aggregates and exposes only conditional
// operations over them.
type Wishlists struct {
	col *mongo.Collection
}

// Store bundles the two collections.
type Store struct {
	Users     *Users
	Wishlists *Wishlists
}

// NewStore creates a store over the given database.
func NewStore(db *mongo.Database) *Store {
	return &Store{
		Users:     &Users{col: db.Collection(usersCollection)},
		Wishlists: &Wishlists{col: db.Collection(wishlistsCollection)},
	}
}

// EnsureIndexes creates the unique indexes registration relies on. Safe to
// call on every startup.
func (s *Store) EnsureIndexes(ctx context.Context) error {
	_, err := s.Users.col.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "username", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	})
	if err != nil {
		return fmt.Errorf("failed to create user indexes: %w", err)
	}
	return nil
}
