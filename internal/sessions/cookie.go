package sessions

import "net/http"

// CookieName is the name of the session cookie.
const CookieName = "session_token"

// TokenFromRequest extracts the session token from the request cookie.
// Returns an empty string when the cookie is absent.
func TokenFromRequest(r *http.Request) string {
	cookie, err := r.Cookie(CookieName)
	if err != nil {
		return ""
	}
	return cookie.Value
}
