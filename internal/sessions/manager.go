package sessions

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"net/http"
	"time"

	"github.com/sbilibin2017/account-pages/internal/models"
)

const tokenBytes = 32

// Manager owns the mapping from opaque tokens to user snapshots.
type Manager struct {
	store Store
	ttl   time.Duration
}

func NewManager(store Store, ttl time.Duration) *Manager {
	return &Manager{store: store, ttl: ttl}
}

// Start creates a new session bound to a snapshot of user and returns the
// opaque token.
func (m *Manager) Start(ctx context.Context, user *models.User) (string, error) {
	token, err := generateToken()
	if err != nil {
		return "", err
	}
	if err := m.store.Set(ctx, token, user, m.ttl); err != nil {
		return "", err
	}
	return token, nil
}

// Get resolves the token to the bound snapshot, or nil if the token is
// missing, unknown, or expired.
func (m *Manager) Get(ctx context.Context, token string) (*models.User, error) {
	if token == "" {
		return nil, nil
	}
	return m.store.Get(ctx, token)
}

// Refresh overwrites the bound snapshot. Used after a successful edit so
// the session reflects the canonical record.
func (m *Manager) Refresh(ctx context.Context, token string, user *models.User) error {
	return m.store.Set(ctx, token, user, m.ttl)
}

// Destroy invalidates the session. Subsequent Get calls return nil.
func (m *Manager) Destroy(ctx context.Context, token string) error {
	return m.store.Delete(ctx, token)
}

// WriteCookie delivers the token to the client as a session cookie.
func (m *Manager) WriteCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(m.ttl.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// ClearCookie tells the client to drop the session cookie.
func (m *Manager) ClearCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// generateToken returns 32 random bytes encoded as base64url without padding.
func generateToken() (string, error) {
	b := make([]byte, tokenBytes)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
