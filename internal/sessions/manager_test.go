package sessions

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/sbilibin2017/account-pages/internal/models"
)

func newTestManager(t *testing.T) *Manager {
	t.Helper()
	store := NewMemoryStore(0)
	t.Cleanup(store.Close)
	return NewManager(store, time.Minute)
}

func TestManager_StartAndGet(t *testing.T) {
	m := newTestManager(t)
	ctx := context.Background()

	user := &models.User{ID: bson.NewObjectID(), Username: "alice", Email: "a@x.com"}

	token, err := m.Start(ctx, user)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	got, err := m.Get(ctx, token)
	assert.NoError(t, err)
	assert.Equal(t, user.Username, got.Username)
	assert.Equal(t, user.Email, got.Email)
}

func TestManager_GetEmptyToken(t *testing.T) {
	m := newTestManager(t)

	got, err := m.Get(context.Background(), "")
	assert.NoError(t, err)
	assert.Nil(t, got)
}

func TestManager_TokensAreUnique(t *testing.T) {
	m := newTestManager(t)
	ctx := context.Background()

	user := &models.User{ID: bson.NewObjectID(), Username: "alice"}

	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		token, err := m.Start(ctx, user)
		assert.NoError(t, err)
		assert.False(t, seen[token], "token collision")
		seen[token] = true
	}
}

func TestManager_SessionsHoldIndependentSnapshots(t *testing.T) {
	m := newTestManager(t)
	ctx := context.Background()

	user := &models.User{ID: bson.NewObjectID(), Username: "alice", Email: "a@x.com"}

	tokenA, err := m.Start(ctx, user)
	assert.NoError(t, err)
	tokenB, err := m.Start(ctx, user)
	assert.NoError(t, err)

	// Refreshing one session must not change the other's snapshot.
	updated := &models.User{ID: user.ID, Username: "alicia", Email: "a@x.com"}
	err = m.Refresh(ctx, tokenA, updated)
	assert.NoError(t, err)

	gotA, err := m.Get(ctx, tokenA)
	assert.NoError(t, err)
	assert.Equal(t, "alicia", gotA.Username)

	gotB, err := m.Get(ctx, tokenB)
	assert.NoError(t, err)
	assert.Equal(t, "alice", gotB.Username)
}

func TestManager_Destroy(t *testing.T) {
	m := newTestManager(t)
	ctx := context.Background()

	user := &models.User{ID: bson.NewObjectID(), Username: "alice"}

	token, err := m.Start(ctx, user)
	assert.NoError(t, err)

	err = m.Destroy(ctx, token)
	assert.NoError(t, err)

	got, err := m.Get(ctx, token)
	assert.NoError(t, err)
	assert.Nil(t, got)
}

func TestManager_WriteAndClearCookie(t *testing.T) {
	m := newTestManager(t)

	w := httptest.NewRecorder()
	m.WriteCookie(w, "some-token")

	cookies := w.Result().Cookies()
	assert.Len(t, cookies, 1)
	assert.Equal(t, CookieName, cookies[0].Name)
	assert.Equal(t, "some-token", cookies[0].Value)
	assert.True(t, cookies[0].HttpOnly)
	assert.Equal(t, 60, cookies[0].MaxAge)

	w = httptest.NewRecorder()
	m.ClearCookie(w)

	cookies = w.Result().Cookies()
	assert.Len(t, cookies, 1)
	assert.Equal(t, CookieName, cookies[0].Name)
	assert.Empty(t, cookies[0].Value)
	assert.Equal(t, -1, cookies[0].MaxAge)
}

func TestTokenFromRequest(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	assert.Empty(t, TokenFromRequest(r))

	r.AddCookie(&http.Cookie{Name: CookieName, Value: "some-token"})
	assert.Equal(t, "some-token", TokenFromRequest(r))
}
