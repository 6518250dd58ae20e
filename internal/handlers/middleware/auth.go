package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/nkiryanov/postboard/internal/apperrors"
	"github.com/nkiryanov/postboard/internal/handlers/render"
	"github.com/nkiryanov/postboard/internal/handlers/userctx"
)

type authService interface {
	// Return username the request token was issued for
	Auth(ctx context.Context, r *http.Request) (string, error)
}

type warnLogger interface {
	Warn(msg string, args ...any)
}

// AuthMiddleware lets the request through only with a valid bearer token.
// No token at all is 401, a token that does not verify is 403.
func AuthMiddleware(as authService, l warnLogger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			username, err := as.Auth(r.Context(), r)
			switch {
			case errors.Is(err, apperrors.ErrTokenMissing):
				l.Warn("Token required", "method", r.Method, "uri", r.RequestURI)
				render.ServiceError(w, "Token required", http.StatusUnauthorized)
				return
			case err != nil:
				l.Warn("Invalid token", "method", r.Method, "uri", r.RequestURI, "error", err)
				render.ServiceError(w, "Invalid token", http.StatusForbidden)
				return
			}

			ctx := userctx.New(r.Context(), username)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
