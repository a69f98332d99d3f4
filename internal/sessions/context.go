package sessions

import (
	"context"

	"github.com/sbilibin2017/account-pages/internal/models"
)

type contextKey struct{}

type current struct {
	token string
	user  *models.User
}

// NewContext returns a context carrying the resolved session.
func NewContext(ctx context.Context, token string, user *models.User) context.Context {
	return context.WithValue(ctx, contextKey{}, current{token: token, user: user})
}

// FromContext returns the session token and user snapshot stored by the
// session middleware. The user is nil when the request carried no valid
// session.
func FromContext(ctx context.Context) (token string, user *models.User) {
	c, ok := ctx.Value(contextKey{}).(current)
	if !ok {
		return "", nil
	}
	return c.token, c.user
}
