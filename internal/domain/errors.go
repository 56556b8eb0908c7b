package domain

import (
	"errors"
	"fmt"
)

// Error kinds surfaced by the core. Authorization failures are folded into
// ErrNotFound so callers cannot probe for resources they may not see.
var (
	// ErrUnauthenticated means the bearer credential was absent, malformed,
	// expired or forged. Always checked before anything else.
	ErrUnauthenticated = errors.New("unauthenticated")

	// ErrNotFound covers both true absence and predicate-excluded writes.
	ErrNotFound = errors.New("not found")

	// ErrExists is returned when registration collides with an existing
	// email or username.
	ErrExists = errors.New("already exists")

	// ErrValidation marks a malformed payload (missing fields, negative
	// price, unresolved user ids).
	ErrValidation = errors.New("invalid request")

	// ErrNoOp marks a well-formed request with no eligible effect, e.g.
	// inviting only users who are already members.
	ErrNoOp = errors.New("no eligible effect")
)

// Validationf wraps ErrValidation with a caller-facing message.
func Validationf(format string, args ...any) error {
	return fmt.Errorf(format+": %w", append(args, ErrValidation)...)
}
