// Package auth issues and verifies the signed bearer tokens that gate every
// other operation. Verification is stateless: claims embed everything the
// rest of the request needs, and the identity record is not re-fetched.
package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/covet-app/covet/internal/domain"
	"github.com/covet-app/covet/internal/logger"
	"github.com/covet-app/covet/internal/store"
)

const bcryptCost = 12

// Claims is the token payload.
type Claims struct {
	UserID   string `json:"user_id"`
	Email    string `json:"email"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// Service handles registration, login and token verification.
type Service struct {
	users    store.Users
	secret   []byte
	tokenTTL time.Duration
	logger   logger.Logger
}

// NewService creates an auth service signing tokens with secret for tokenTTL.
func NewService(users store.Users, secret string, tokenTTL time.Duration, log logger.Logger) *Service {
	return &Service{
		users:    users,
		secret:   []byte(secret),
		tokenTTL: tokenTTL,
		logger:   log,
	}
}

// Signup registers a new identity. Email and username collisions surface as
// ErrExists.
func (s *Service) Signup(ctx context.Context, email, username, password string) (*domain.User, error) {
	email = strings.TrimSpace(email)
	username = strings.TrimSpace(username)
	if email == "" || username == "" || password == "" {
		return nil, domain.Validationf("email, username and password are required")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &domain.User{
		ID:           uuid.NewString(),
		Email:        email,
		Username:     username,
		PasswordHash: string(hash),
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info("user registered", logger.String("user_id", user.ID))
	return user, nil
}

// Login verifies the password and issues a token. Unknown email and wrong
// password are indistinguishable to the caller.
func (s *Service) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	user, err := s.users.ByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return "", nil, fmt.Errorf("invalid credentials: %w", domain.ErrUnauthenticated)
		}
		return "", nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", nil, fmt.Errorf("invalid credentials: %w", domain.ErrUnauthenticated)
	}

	token, err := s.issueToken(user)
	if err != nil {
		return "", nil, fmt.Errorf("failed to sign token: %w", err)
	}

	s.logger.Info("user logged in", logger.String("user_id", user.ID))
	return token, user, nil
}

// Verify validates a bearer token and returns the caller it identifies.
// Absent, malformed, expired and forged tokens all report ErrUnauthenticated.
func (s *Service) Verify(token string) (domain.Actor, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return domain.Actor{}, fmt.Errorf("missing token: %w", domain.ErrUnauthenticated)
	}

	parsed, err := jwt.ParseWithClaims(token, &Claims{}, func(t *jwt.Token) (any, error) {
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}))
	if err != nil {
		return domain.Actor{}, fmt.Errorf("invalid token: %w", domain.ErrUnauthenticated)
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid {
		return domain.Actor{}, fmt.Errorf("invalid claims: %w", domain.ErrUnauthenticated)
	}

	return domain.Actor{
		ID:       claims.UserID,
		Email:    claims.Email,
		Username: claims.Username,
	}, nil
}

func (s *Service) issueToken(u *domain.User) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID:   u.ID,
		Email:    u.Email,
		Username: u.Username,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "covet",
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}
