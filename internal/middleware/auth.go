package middleware

import (
	"context"
	"crypto/sha256"
	"net/http"
	"sync"

	"github.com/2beens/aztracker/internal/telemetry/tracing"
	"github.com/2beens/aztracker/pkg"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/codes"
)

const AuthTokenHeader = "X-AZ-TOKEN"

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=middleware_test

type tokenChecker interface {
	Check(ctx context.Context, token string) (bool, error)
}

// HashTokenChecker checks the app token against its bcrypt hash. Tokens
// that passed once are remembered by digest, so bcrypt runs once per token.
type HashTokenChecker struct {
	tokenHash string
	mutex     sync.RWMutex
	verified  map[[sha256.Size]byte]struct{}
}

func NewHashTokenChecker(tokenHash string) *HashTokenChecker {
	return &HashTokenChecker{
		tokenHash: tokenHash,
		verified:  make(map[[sha256.Size]byte]struct{}),
	}
}

func (c *HashTokenChecker) Check(ctx context.Context, token string) (bool, error) {
	_, span := tracing.GlobalTracer.Start(ctx, "middleware.auth.check")
	defer span.End()

	if token == "" || c.tokenHash == "" {
		return false, nil
	}

	digest := sha256.Sum256([]byte(token))
	c.mutex.RLock()
	_, ok := c.verified[digest]
	c.mutex.RUnlock()
	if ok {
		return true, nil
	}

	if !pkg.CheckTokenHash(token, c.tokenHash) {
		return false, nil
	}

	c.mutex.Lock()
	c.verified[digest] = struct{}{}
	c.mutex.Unlock()
	return true, nil
}

type AuthMiddlewareHandler struct {
	checker      tokenChecker
	allowedPaths map[string]bool
}

func NewAuthMiddlewareHandler(checker tokenChecker) *AuthMiddlewareHandler {
	return &AuthMiddlewareHandler{
		checker: checker,
		allowedPaths: map[string]bool{
			"/version": true,
		},
	}
}

func (h *AuthMiddlewareHandler) AuthCheck() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, span := tracing.GlobalTracer.Start(r.Context(), "middleware.auth")
			defer span.End()

			if r.Method == http.MethodOptions {
				w.Header().Add("Allow", "GET, POST, PUT, DELETE, OPTIONS")
				w.WriteHeader(http.StatusOK)
				span.SetStatus(codes.Ok, "options-ok")
				return
			}

			if h.allowedPaths[r.URL.Path] {
				span.SetStatus(codes.Ok, "ok")
				next.ServeHTTP(w, r)
				return
			}

			authToken := r.Header.Get(AuthTokenHeader)
			if authToken == "" {
				log.Tracef("[missing token] [auth middleware] unauthorized => %s", r.URL.Path)
				http.Error(w, "no can do", http.StatusUnauthorized)
				span.SetStatus(codes.Error, "missing-auth-token")
				return
			}

			valid, err := h.checker.Check(ctx, authToken)
			if err != nil {
				log.Errorf("[failed token check] => %s: %s", r.URL.Path, err)
				http.Error(w, "no can do", http.StatusUnauthorized)
				span.SetStatus(codes.Error, "check-token-err")
				span.RecordError(err)
				return
			}
			if !valid {
				log.Tracef("[invalid token] [auth middleware] unauthorized => %s", r.URL.Path)
				http.Error(w, "no can do", http.StatusUnauthorized)
				span.SetStatus(codes.Error, "invalid-token")
				return
			}

			span.SetStatus(codes.Ok, "ok")
			next.ServeHTTP(w, r)
		})
	}
}
