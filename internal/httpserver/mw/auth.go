package mw

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/covet-app/covet/internal/domain"
	"github.com/covet-app/covet/internal/logger"
)

type ctxKey int

const actorKey ctxKey = 0

// Verifier turns a bearer token into a caller identity or fails closed.
type Verifier interface {
	Verify(token string) (domain.Actor, error)
}

// Auth rejects requests without a valid bearer token and stores the verified
// actor in the request context. Runs before any other check on the route.
func Auth(verifier Verifier, log logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok {
				unauthenticated(w)
				return
			}

			actor, err := verifier.Verify(token)
			if err != nil {
				log.Debug("token rejected", logger.Error(err))
				unauthenticated(w)
				return
			}

			ctx := context.WithValue(r.Context(), actorKey, actor)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// ActorFrom returns the verified caller placed in the context by Auth.
func ActorFrom(ctx context.Context) (domain.Actor, bool) {
	actor, ok := ctx.Value(actorKey).(domain.Actor)
	return actor, ok
}

func unauthenticated(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": "unauthorized"})
}
