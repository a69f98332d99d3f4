package handlers

import (
	"net/http"

	"github.com/sbilibin2017/account-pages/internal/sessions"
)

// NewIndexHandler redirects to /home when a session is present, /login otherwise.
func NewIndexHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, user := sessions.FromContext(r.Context()); user != nil {
			http.Redirect(w, r, "/home", http.StatusFound)
			return
		}
		http.Redirect(w, r, "/login", http.StatusFound)
	}
}
