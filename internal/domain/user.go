package domain

import "time"

// User is a registered identity. Email and username are unique across the
// users collection; the password hash never leaves the store layer's types.
type User struct {
	ID           string    `bson:"_id" json:"id"`
	Email        string    `bson:"email" json:"email"`
	Username     string    `bson:"username" json:"username"`
	PasswordHash string    `bson:"password" json:"-"`
	CreatedAt    time.Time `bson:"created_at" json:"created_at"`
}

// UserSummary is the credential-free projection of a User, safe to return
// from search and member-listing endpoints.
type UserSummary struct {
	ID       string `bson:"_id" json:"id"`
	Email    string `bson:"email" json:"email"`
	Username string `bson:"username" json:"username"`
}

// Actor identifies the caller of a request, built from verified token claims.
// Claims are trusted for the lifetime of the token; the Identity record is
// not re-fetched per request.
type Actor struct {
	ID       string
	Email    string
	Username string
}
