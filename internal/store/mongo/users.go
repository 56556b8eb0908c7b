package mongo

import (
	"context"
	"errors"
	"fmt"
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/covet-app/covet/internal/domain"
)

// summaryProjection strips credential material from user reads.
var summaryProjection = bson.M{"password": 0, "created_at": 0}

// Create inserts a new user, relying on the unique indexes for the
// email/username collision check.
func (s *Users) Create(ctx context.Context, u *domain.User) error {
	_, err := s.col.InsertOne(ctx, u)
	if mongo.IsDuplicateKeyError(err) {
		return fmt.Errorf("user: %w", domain.ErrExists)
	}
	if err != nil {
		return fmt.Errorf("failed to insert user: %w", err)
	}
	return nil
}

// ByEmail returns the full user record, hash included, for login.
func (s *Users) ByEmail(ctx context.Context, email string) (*domain.User, error) {
	var u domain.User
	err := s.col.FindOne(ctx, bson.M{"email": email}).Decode(&u)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("user %s: %w", email, domain.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}
	return &u, nil
}

// ByID returns the credential-free summary for one user.
func (s *Users) ByID(ctx context.Context, id string) (*domain.UserSummary, error) {
	var u domain.UserSummary
	err := s.col.FindOne(ctx, bson.M{"_id": id},
		options.FindOne().SetProjection(summaryProjection)).Decode(&u)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("user %s: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return &u, nil
}

// ByIDs resolves summaries for the given ids in natural (insertion) order.
func (s *Users) ByIDs(ctx context.Context, ids []string) ([]domain.UserSummary, error) {
	if len(ids) == 0 {
		return []domain.UserSummary{}, nil
	}

	cur, err := s.col.Find(ctx, bson.M{"_id": bson.M{"$in": ids}},
		options.Find().SetProjection(summaryProjection))
	if err != nil {
		return nil, fmt.Errorf("failed to resolve users: %w", err)
	}

	users := []domain.UserSummary{}
	if err := cur.All(ctx, &users); err != nil {
		return nil, fmt.Errorf("failed to decode users: %w", err)
	}
	return users, nil
}

// Search matches query case-insensitively against email and username,
// excluding the caller. Results come back in natural (insertion) order,
// capped at limit.
func (s *Users) Search(ctx context.Context, callerID, query string, limit int) ([]domain.UserSummary, error) {
	pattern := primitive.Regex{Pattern: regexp.QuoteMeta(query), Options: "i"}
	filter := bson.M{
		"$and": bson.A{
			bson.M{"_id": bson.M{"$ne": callerID}},
			bson.M{"$or": bson.A{
				bson.M{"email": pattern},
				bson.M{"username": pattern},
			}},
		},
	}

	cur, err := s.col.Find(ctx, filter,
		options.Find().SetProjection(summaryProjection).SetLimit(int64(limit)))
	if err != nil {
		return nil, fmt.Errorf("failed to search users: %w", err)
	}

	users := []domain.UserSummary{}
	if err := cur.All(ctx, &users); err != nil {
		return nil, fmt.Errorf("failed to decode search results: %w", err)
	}
	return users, nil
}
