package deps

import (
	"context"
	"time"

	"github.com/covet-app/covet/internal/logger"
	"github.com/covet-app/covet/internal/service/auth"
	"github.com/covet-app/covet/internal/service/directory"
	"github.com/covet-app/covet/internal/service/membership"
	"github.com/covet-app/covet/internal/service/products"
	"github.com/covet-app/covet/internal/service/wishlists"
)

// Deps carries the shared dependencies passed to every route registrar.
type Deps struct {
	Logger    logger.Logger
	StartTime time.Time
	Version   string
	Commit    string
	BuildDate string
	GoVersion string

	Auth       *auth.Service
	Directory  *directory.Service
	Wishlists  *wishlists.Service
	Membership *membership.Service
	Products   *products.Service

	// StorePing reports whether the document store answers, for readiness.
	StorePing func(ctx context.Context) error
}
