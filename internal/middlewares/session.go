package middlewares

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/account-pages/internal/logger"
	"github.com/sbilibin2017/account-pages/internal/models"
	"github.com/sbilibin2017/account-pages/internal/sessions"
)

// SessionResolver defines the minimal interface needed by the middleware.
type SessionResolver interface {
	Get(ctx context.Context, token string) (*models.User, error)
}

// SessionMiddleware resolves the session cookie into a user snapshot and
// stores both token and snapshot in the request context. It never rejects a
// request: each handler decides how to treat a missing session.
func SessionMiddleware(resolver SessionResolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			token := sessions.TokenFromRequest(r)
			var user *models.User
			if token != "" {
				var err error
				user, err = resolver.Get(ctx, token)
				if err != nil {
					// Treated as an unauthenticated request rather
					// than a hard failure.
					logger.Log.Errorw("failed to resolve session", "err", err)
					user = nil
				}
			}

			next.ServeHTTP(w, r.WithContext(sessions.NewContext(ctx, token, user)))
		})
	}
}
