// Package sessions implements opaque-token server-side sessions. Each token
// maps to a snapshot of the user record taken at authentication or last
// mutation, never a live reference: edits made through another session stay
// invisible until the snapshot is refreshed.
package sessions

import (
	"context"
	"time"

	"github.com/sbilibin2017/account-pages/internal/models"
)

// Store persists token-to-snapshot mappings. Implementations must be safe
// for concurrent use and expire entries after their TTL.
type Store interface {
	// Get returns the snapshot for the token, or nil if the token is
	// unknown or expired.
	Get(ctx context.Context, token string) (*models.User, error)
	// Set binds the token to a snapshot for the given TTL, overwriting
	// any previous snapshot.
	Set(ctx context.Context, token string, user *models.User, ttl time.Duration) error
	// Delete removes the token. Deleting an unknown token is not an error.
	Delete(ctx context.Context, token string) error
}
