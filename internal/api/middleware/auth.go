package middleware

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/sellora/storefront-admin/internal/core/domain"
	"github.com/sellora/storefront-admin/internal/core/ports"
)

// userContextKey is where RequireSession stores the resolved *domain.User.
const userContextKey = "authenticated_user"

// authRequiredMessage is the uniform rejection for every unauthenticated
// request to a protected route.
const authRequiredMessage = "Authentication required"

// RequireSession gates a route on an established session. It resolves the
// session cookie into a user and stores it in the request context; requests
// without a resolvable session are rejected with 401 before the handler runs.
func RequireSession(sessions ports.SessionManager) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token, ok := SessionToken(c)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, authRequiredMessage)
			}

			user, err := sessions.Current(c.Request().Context(), token)
			if err != nil {
				if errors.Is(err, domain.ErrUserNotFound) {
					return echo.NewHTTPError(http.StatusUnauthorized, authRequiredMessage)
				}
				return err
			}

			c.Set(userContextKey, user)
			return next(c)
		}
	}
}

// CurrentUser returns the user stored by RequireSession. The second result is
// false on routes that did not pass through the gate.
func CurrentUser(c echo.Context) (*domain.User, bool) {
	user, ok := c.Get(userContextKey).(*domain.User)
	return user, ok && user != nil
}
