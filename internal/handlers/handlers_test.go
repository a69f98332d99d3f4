package handlers

import (
	"net/http"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sbilibin2017/account-pages/internal/models"
	"github.com/sbilibin2017/account-pages/internal/sessions"
	"github.com/sbilibin2017/account-pages/internal/views"
)

// testPages parses the real templates so handler tests assert on the
// rendered HTML.
func testPages(t *testing.T) *views.Pages {
	t.Helper()
	pages, err := views.New()
	require.NoError(t, err)
	return pages
}

// withSession attaches a resolved session to the request context, the way
// the session middleware would.
func withSession(r *http.Request, token string, user *models.User) *http.Request {
	return r.WithContext(sessions.NewContext(r.Context(), token, user))
}

// formRequest builds a form-encoded POST request.
func formRequest(target string, form url.Values) *http.Request {
	r := newRequest(http.MethodPost, target, form)
	return r
}

func newRequest(method, target string, form url.Values) *http.Request {
	var body *strings.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	} else {
		body = strings.NewReader("")
	}
	r, _ := http.NewRequest(method, target, body)
	if form != nil {
		r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	return r
}
