package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/covet-app/covet/internal/domain"
)

// Create inserts a new wishlist aggregate.
func (s *Wishlists) Create(ctx context.Context, w *domain.Wishlist) error {
	if _, err := s.col.InsertOne(ctx, w); err != nil {
		return fmt.Errorf("failed to insert wishlist: %w", err)
	}
	return nil
}

// ListForUser returns every wishlist the user owns or is a member of.
func (s *Wishlists) ListForUser(ctx context.Context, userID string) ([]domain.Wishlist, error) {
	filter := bson.M{"$or": bson.A{
		bson.M{"created_by": userID},
		bson.M{"members": userID},
	}}

	cur, err := s.col.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list wishlists: %w", err)
	}

	lists := []domain.Wishlist{}
	if err := cur.All(ctx, &lists); err != nil {
		return nil, fmt.Errorf("failed to decode wishlists: %w", err)
	}
	return lists, nil
}

// GetIfVisible fetches the aggregate under CanView.
func (s *Wishlists) GetIfVisible(ctx context.Context, id, callerID string) (*domain.Wishlist, error) {
	var w domain.Wishlist
	err := s.col.FindOne(ctx, visibleTo(id, callerID)).Decode(&w)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("wishlist %s: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get wishlist: %w", err)
	}
	return &w, nil
}

// UpdateMetadata sets name and description under CanEditMetadata.
func (s *Wishlists) UpdateMetadata(ctx context.Context, id, callerID, name, description string) error {
	update := bson.M{"$set": bson.M{
		"name":        name,
		"description": description,
		"updated_at":  time.Now().UTC(),
	}}
	return s.updateOne(ctx, ownedBy(id, callerID), update)
}

// Delete destroys the aggregate under CanDelete.
func (s *Wishlists) Delete(ctx context.Context, id, callerID string) error {
	res, err := s.col.DeleteOne(ctx, ownedBy(id, callerID))
	if err != nil {
		return fmt.Errorf("failed to delete wishlist: %w", err)
	}
	if res.DeletedCount == 0 {
		return fmt.Errorf("wishlist %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// AddMembers unions the given users into both member arrays in one write
// under CanInvite. $addToSet keeps set semantics even when a concurrent
// invite slipped the same id in after the caller's read.
func (s *Wishlists) AddMembers(ctx context.Context, id, callerID string, members []domain.UserSummary) error {
	ids := make([]string, len(members))
	names := make([]string, len(members))
	for i, m := range members {
		ids[i] = m.ID
		names[i] = m.Username
	}

	update := bson.M{
		"$addToSet": bson.M{
			"members":          bson.M{"$each": ids},
			"member_usernames": bson.M{"$each": names},
		},
		"$set": bson.M{"updated_at": time.Now().UTC()},
	}
	return s.updateOne(ctx, ownedBy(id, callerID), update)
}

// RemoveMember pulls the (id, username) pair from both member arrays under
// CanRemoveMember. Pulling by value, not index, tolerates concurrent
// reordering of the parallel arrays.
func (s *Wishlists) RemoveMember(ctx context.Context, id, callerID, targetID, targetUsername string) error {
	update := bson.M{
		"$pull": bson.M{
			"members":          targetID,
			"member_usernames": targetUsername,
		},
		"$set": bson.M{"updated_at": time.Now().UTC()},
	}
	return s.updateOne(ctx, memberRemovableBy(id, callerID, targetID), update)
}

// AppendProduct appends under CanAddProduct.
func (s *Wishlists) AppendProduct(ctx context.Context, id, callerID string, p domain.Product) error {
	update := bson.M{
		"$push": bson.M{"products": p},
		"$set":  bson.M{"updated_at": time.Now().UTC()},
	}
	return s.updateOne(ctx, visibleTo(id, callerID), update)
}

// ReplaceProduct overwrites the mutable fields of the matched embedded
// product under CanEditProduct. The positional $ refers to the element the
// $elemMatch filter bound.
func (s *Wishlists) ReplaceProduct(ctx context.Context, id, productID, callerID, name, imageURL string, price float64) error {
	update := bson.M{"$set": bson.M{
		"products.$.name":      name,
		"products.$.image_url": imageURL,
		"products.$.price":     price,
		"updated_at":           time.Now().UTC(),
	}}
	return s.updateOne(ctx, productEditableBy(id, productID, callerID), update)
}

// RemoveProduct pulls the product by id under CanDeleteProduct.
func (s *Wishlists) RemoveProduct(ctx context.Context, id, productID, callerID string) error {
	update := bson.M{
		"$pull": bson.M{"products": bson.M{"_id": productID}},
		"$set":  bson.M{"updated_at": time.Now().UTC()},
	}
	return s.updateOne(ctx, productRemovableBy(id, productID, callerID), update)
}

// updateOne runs a conditional single-document write. A filter that matches
// zero documents is reported as ErrNotFound: absence and denied authorization
// are deliberately indistinguishable.
func (s *Wishlists) updateOne(ctx context.Context, filter, update bson.M) error {
	res, err := s.col.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to update wishlist: %w", err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("wishlist: %w", domain.ErrNotFound)
	}
	return nil
}
