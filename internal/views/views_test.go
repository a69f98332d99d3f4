package views

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sbilibin2017/account-pages/internal/models"
)

func TestPages(t *testing.T) {
	pages, err := New()
	require.NoError(t, err)

	user := &models.User{Username: "alice", Email: "alice@example.com"}

	t.Run("Login", func(t *testing.T) {
		var buf bytes.Buffer
		err := pages.Login(&buf, "")
		assert.NoError(t, err)
		assert.Contains(t, buf.String(), `action="/login"`)
		assert.Contains(t, buf.String(), `name="email"`)
		assert.Contains(t, buf.String(), `name="password"`)
	})

	t.Run("LoginWithMessage", func(t *testing.T) {
		var buf bytes.Buffer
		err := pages.Login(&buf, "User does not exist, Please sign up.")
		assert.NoError(t, err)
		assert.Contains(t, buf.String(), "User does not exist, Please sign up.")
	})

	t.Run("Signup", func(t *testing.T) {
		var buf bytes.Buffer
		err := pages.Signup(&buf, "")
		assert.NoError(t, err)
		assert.Contains(t, buf.String(), `action="/signup"`)
		assert.Contains(t, buf.String(), `name="username"`)
	})

	t.Run("SignupWithMessage", func(t *testing.T) {
		var buf bytes.Buffer
		err := pages.Signup(&buf, "Username already taken")
		assert.NoError(t, err)
		assert.Contains(t, buf.String(), "Username already taken")
	})

	t.Run("Home", func(t *testing.T) {
		var buf bytes.Buffer
		err := pages.Home(&buf, user)
		assert.NoError(t, err)
		assert.Contains(t, buf.String(), "alice")
		assert.Contains(t, buf.String(), "alice@example.com")
		assert.Contains(t, buf.String(), `href="/logout"`)
	})

	t.Run("Edit", func(t *testing.T) {
		var buf bytes.Buffer
		err := pages.Edit(&buf, user)
		assert.NoError(t, err)
		assert.Contains(t, buf.String(), `value="alice"`)
		assert.Contains(t, buf.String(), `value="alice@example.com"`)
		assert.Contains(t, buf.String(), `name="newPassword"`)
	})

	t.Run("EscapesUserData", func(t *testing.T) {
		var buf bytes.Buffer
		err := pages.Home(&buf, &models.User{Username: "<script>x</script>", Email: "a@x.com"})
		assert.NoError(t, err)
		assert.NotContains(t, buf.String(), "<script>x</script>")
	})
}
