// Package handlers wires the HTTP routes of the account pages. Each handler
// is built by a constructor taking the narrow interfaces it needs, so tests
// can swap in fakes without any global state.
package handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/account-pages/internal/logger"
	"github.com/sbilibin2017/account-pages/internal/models"
)

// SessionStarter starts a session for an authenticated user and delivers
// the token cookie.
type SessionStarter interface {
	Start(ctx context.Context, user *models.User) (string, error)
	WriteCookie(w http.ResponseWriter, token string)
}

// SessionRefresher overwrites a session's snapshot after a mutation.
type SessionRefresher interface {
	Refresh(ctx context.Context, token string, user *models.User) error
}

// SessionDestroyer invalidates a session and clears the token cookie.
type SessionDestroyer interface {
	Destroy(ctx context.Context, token string) error
	ClearCookie(w http.ResponseWriter)
}

// internalError writes the generic 500 response used on any unexpected
// failure. Clients never see structured error payloads.
func internalError(w http.ResponseWriter, err error) {
	logger.Log.Errorw("internal server error", "err", err)
	http.Error(w, "Internal Server Error", http.StatusInternalServerError)
}
