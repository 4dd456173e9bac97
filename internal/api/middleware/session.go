package middleware

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

// SessionCookie is the name of the cookie carrying the opaque session token.
const SessionCookie = "session_id"

// SessionToken reads the session token from the request cookie. The second
// result is false when no cookie is present.
func SessionToken(c echo.Context) (string, bool) {
	cookie, err := c.Cookie(SessionCookie)
	if err != nil || cookie.Value == "" {
		return "", false
	}
	return cookie.Value, true
}

// SetSessionCookie attaches the session token to the response. The cookie is
// HTTP-only so client-side scripting cannot read it; Secure is off only for
// local development over plain HTTP.
func SetSessionCookie(c echo.Context, token string, ttl time.Duration, secure bool) {
	c.SetCookie(&http.Cookie{
		Name:     SessionCookie,
		Value:    token,
		Path:     "/",
		MaxAge:   int(ttl.Seconds()),
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// ClearSessionCookie instructs the client to drop the session cookie.
func ClearSessionCookie(c echo.Context, secure bool) {
	c.SetCookie(&http.Cookie{
		Name:     SessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	})
}
