package handlers

import (
	"net/http"

	"github.com/sbilibin2017/account-pages/internal/logger"
	"github.com/sbilibin2017/account-pages/internal/sessions"
)

// NewLogoutHandler returns the GET /logout handler. It always redirects to
// /login, even when there was no session to destroy.
func NewLogoutHandler(session SessionDestroyer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if token := sessions.TokenFromRequest(r); token != "" {
			if err := session.Destroy(r.Context(), token); err != nil {
				logger.Log.Errorw("failed to destroy session", "err", err)
			}
		}
		session.ClearCookie(w)
		http.Redirect(w, r, "/login", http.StatusFound)
	}
}
