package handlers

import (
	"context"
	"errors"
	"io"
	"net/http"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/sbilibin2017/account-pages/internal/models"
	"github.com/sbilibin2017/account-pages/internal/services"
	"github.com/sbilibin2017/account-pages/internal/sessions"
)

// ProfileUpdater defines the interface that the edit service must implement.
type ProfileUpdater interface {
	Update(ctx context.Context, id bson.ObjectID, newUsername, newEmail, newPassword string) (*models.User, error)
}

// EditRenderer renders the edit form pre-filled with current data.
type EditRenderer interface {
	Edit(w io.Writer, user *models.User) error
}

// NewEditPageHandler returns the GET /edit handler.
func NewEditPageHandler(pages EditRenderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		_, user := sessions.FromContext(r.Context())
		if user == nil {
			http.Redirect(w, r, "/login", http.StatusFound)
			return
		}
		if err := pages.Edit(w, user); err != nil {
			internalError(w, err)
		}
	}
}

// NewEditHandler returns the POST /edit handler. On success the session
// snapshot is refreshed with the canonical record before redirecting.
func NewEditHandler(svc ProfileUpdater, session SessionRefresher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token, user := sessions.FromContext(r.Context())
		if user == nil {
			http.Redirect(w, r, "/login", http.StatusFound)
			return
		}

		if err := r.ParseForm(); err != nil {
			internalError(w, err)
			return
		}
		newUsername := r.FormValue("newUsername")
		newEmail := r.FormValue("newEmail")
		newPassword := r.FormValue("newPassword")

		updated, err := svc.Update(r.Context(), user.ID, newUsername, newEmail, newPassword)
		if err != nil {
			if errors.Is(err, services.ErrUserDoesNotExist) {
				http.Redirect(w, r, "/login", http.StatusFound)
				return
			}
			internalError(w, err)
			return
		}

		if err := session.Refresh(r.Context(), token, updated); err != nil {
			internalError(w, err)
			return
		}

		http.Redirect(w, r, "/home", http.StatusFound)
	}
}
