package handlers

import (
	"context"
	"errors"
	"io"
	"net/http"

	"github.com/sbilibin2017/account-pages/internal/models"
	"github.com/sbilibin2017/account-pages/internal/services"
)

// Registerer defines the interface that the signup service must implement.
type Registerer interface {
	Register(ctx context.Context, username, email, password string) (*models.User, error)
}

// SignupRenderer renders the signup form with an optional message.
type SignupRenderer interface {
	Signup(w io.Writer, message string) error
}

// Message shown when the chosen username is taken.
const msgUsernameTaken = "Username already taken"

// NewSignupPageHandler returns the GET /signup handler.
func NewSignupPageHandler(pages SignupRenderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := pages.Signup(w, ""); err != nil {
			internalError(w, err)
		}
	}
}

// NewSignupHandler returns the POST /signup handler.
func NewSignupHandler(svc Registerer, session SessionStarter, pages SignupRenderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			internalError(w, err)
			return
		}
		username := r.FormValue("username")
		email := r.FormValue("email")
		password := r.FormValue("password")

		user, err := svc.Register(r.Context(), username, email, password)
		if err != nil {
			if errors.Is(err, services.ErrUsernameTaken) {
				if err := pages.Signup(w, msgUsernameTaken); err != nil {
					internalError(w, err)
				}
				return
			}
			internalError(w, err)
			return
		}

		token, err := session.Start(r.Context(), user)
		if err != nil {
			internalError(w, err)
			return
		}
		session.WriteCookie(w, token)

		http.Redirect(w, r, "/home", http.StatusFound)
	}
}
