package handlers

import (
	"context"
	"errors"
	"io"
	"net/http"

	"github.com/sbilibin2017/account-pages/internal/models"
	"github.com/sbilibin2017/account-pages/internal/services"
)

// Authenticator defines the interface that the login service must implement.
type Authenticator interface {
	Login(ctx context.Context, email, password string) (*models.User, error)
}

// LoginRenderer renders the login form with an optional message.
type LoginRenderer interface {
	Login(w io.Writer, message string) error
}

// Message shown when the email is not registered.
const msgUserNotExist = "User does not exist, Please sign up."

// NewLoginPageHandler returns the GET /login handler.
func NewLoginPageHandler(pages LoginRenderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := pages.Login(w, ""); err != nil {
			internalError(w, err)
		}
	}
}

// NewLoginHandler returns the POST /login handler.
//
// Failure presentation is deliberately asymmetric: an unknown email
// re-renders the form with a message while a wrong password redirects
// silently. With unifiedErrors set, both cases redirect silently to avoid
// user enumeration.
func NewLoginHandler(svc Authenticator, session SessionStarter, pages LoginRenderer, unifiedErrors bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			internalError(w, err)
			return
		}
		email := r.FormValue("email")
		password := r.FormValue("password")

		user, err := svc.Login(r.Context(), email, password)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrUserDoesNotExist):
				if unifiedErrors {
					http.Redirect(w, r, "/login", http.StatusFound)
					return
				}
				if err := pages.Login(w, msgUserNotExist); err != nil {
					internalError(w, err)
				}
			case errors.Is(err, services.ErrInvalidCredentials):
				http.Redirect(w, r, "/login", http.StatusFound)
			default:
				internalError(w, err)
			}
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
