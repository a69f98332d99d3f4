package handlers

import (
	"io"
	"net/http"

	"github.com/sbilibin2017/account-pages/internal/models"
	"github.com/sbilibin2017/account-pages/internal/sessions"
)

// HomeRenderer renders the profile page.
type HomeRenderer interface {
	Home(w io.Writer, user *models.User) error
}

// NewHomeHandler returns the GET /home handler. The page shows the session
// snapshot, not the canonical record, so edits made through another session
// are invisible until this one is refreshed.
func NewHomeHandler(pages HomeRenderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		_, user := sessions.FromContext(r.Context())
		if user == nil {
			http.Redirect(w, r, "/login", http.StatusFound)
			return
		}
		if err := pages.Home(w, user); err != nil {
			internalError(w, err)
		}
	}
}
