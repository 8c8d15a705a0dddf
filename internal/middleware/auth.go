package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/ali-ismaeel564/fitxAPI/internal/auth"
	"github.com/ali-ismaeel564/fitxAPI/internal/telemetry/metrics"
	"github.com/ali-ismaeel564/fitxAPI/internal/telemetry/tracing"
	"github.com/ali-ismaeel564/fitxAPI/pkg"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/codes"
)

//go:generate mockgen -source=$GOFILE -destination=auth_mocks_test.go -package=middleware_test

const AuthTokenHeader = "x-auth-token"

type tokenVerifier interface {
	Verify(token string) (*auth.Claims, error)
}

type revocationChecker interface {
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}

type invalidTokenResponse struct {
	Error string `json:"error"`
}

type AuthMiddlewareHandler struct {
	verifier             tokenVerifier
	revocations          revocationChecker
	metricsManager       *metrics.Manager
	allowedPaths         map[string]bool
	allowedPathsPrefixes []string
}

func NewAuthMiddlewareHandler(
	verifier tokenVerifier,
	revocations revocationChecker,
	metricsManager *metrics.Manager,
) *AuthMiddlewareHandler {
	return &AuthMiddlewareHandler{
		verifier:       verifier,
		revocations:    revocations,
		metricsManager: metricsManager,
		allowedPaths: map[string]bool{
			"/":            true,
			"/api/signup":  true,
			"/api/login":   true,
			"/favicon.ico": true,
		},
		allowedPathsPrefixes: []string{},
	}
}

func (h *AuthMiddlewareHandler) pathIsAlwaysAllowed(path string) bool {
	if h.allowedPaths[path] {
		return true
	}
	for _, prefix := range h.allowedPathsPrefixes {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}

// AuthCheck lets through only requests carrying a valid, non revoked token
// in the x-auth-token header, and attaches the token claims to the request context.
// A failed revocation lookup does not reject a validly signed token.
func (h *AuthMiddlewareHandler) AuthCheck() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, span := tracing.GlobalTracer.Start(r.Context(), "middleware.auth")
			defer span.End()

			if r.Method == http.MethodOptions {
				w.Header().Add("Allow", "GET, POST, OPTIONS")
				w.WriteHeader(http.StatusOK)
				span.SetStatus(codes.Ok, "options-ok")
				return
			}

			if h.pathIsAlwaysAllowed(r.URL.Path) {
				span.SetStatus(codes.Ok, "ok")
				next.ServeHTTP(w, r)
				return
			}

			authToken := r.Header.Get(AuthTokenHeader)
			if authToken == "" {
				log.Tracef("[missing token] [auth middleware] unauthorized => %s", r.URL.Path)
				pkg.WriteFail(w, http.StatusUnauthorized, "no token provided")
				span.SetStatus(codes.Error, "missing-auth-token")
				return
			}

			claims, err := h.verifier.Verify(authToken)
			if err != nil {
				log.Tracef("[invalid token] [auth middleware] %s => %s", r.URL.Path, err)
				pkg.WriteJSON(w, http.StatusBadRequest, invalidTokenResponse{Error: "invalid token"})
				span.SetStatus(codes.Error, "invalid-token")
				return
			}

			// the signature is already verified, a revocation store outage lets the token through
			revoked, err := h.revocations.IsRevoked(ctx, claims.ID)
			if err != nil {
				log.Errorf("[failed revocation check] => %s: %s", r.URL.Path, err)
				span.RecordError(err)
				if h.metricsManager != nil {
					h.metricsManager.CounterRevocationCheckErrs.Inc()
				}
				revoked = false
			}
			if revoked {
				log.Tracef("[revoked token] [auth middleware] unauthorized => %s", r.URL.Path)
				pkg.WriteFail(w, http.StatusUnauthorized, "token revoked")
				span.SetStatus(codes.Error, "revoked-token")
				return
			}

			span.SetStatus(codes.Ok, "ok")
			next.ServeHTTP(w, r.WithContext(auth.ContextWithClaims(ctx, claims)))
		})
	}
}
