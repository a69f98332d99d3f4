package handlers

import (
	"context"
	"errors"
	"net/http"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/sbilibin2017/account-pages/internal/logger"
	"github.com/sbilibin2017/account-pages/internal/sessions"
)

// AccountDeleter defines the interface that the delete service must implement.
type AccountDeleter interface {
	Delete(ctx context.Context, id bson.ObjectID) error
}

// NewDeleteHandler returns the GET /delete handler.
//
// A request without a session gets a 500, not the redirect /edit gives.
// The asymmetry is observable behavior and must not be unified here.
func NewDeleteHandler(svc AccountDeleter, session SessionDestroyer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token, user := sessions.FromContext(r.Context())
		if user == nil {
			internalError(w, errors.New("delete requested without a session"))
			return
		}

		if err := svc.Delete(r.Context(), user.ID); err != nil {
			internalError(w, err)
			return
		}

		if err := session.Destroy(r.Context(), token); err != nil {
			logger.Log.Errorw("failed to destroy session", "err", err)
		}
		session.ClearCookie(w)

		http.Redirect(w, r, "/signup", http.StatusFound)
	}
}
