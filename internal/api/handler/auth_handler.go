package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/sellora/storefront-admin/internal/api/metrics"
	"github.com/sellora/storefront-admin/internal/api/middleware"
	"github.com/sellora/storefront-admin/internal/core/domain"
	"github.com/sellora/storefront-admin/internal/core/ports"
)

// genericLoginRejection is returned for every kind of credential failure so
// responses cannot be used to enumerate usernames.
const genericLoginRejection = "Invalid username or password. Please check your credentials and try again."

// AuthHandler handles login, logout, and the identity probe.
type AuthHandler struct {
	auth         ports.AuthService
	sessions     ports.SessionManager
	secureCookie bool
}

func NewAuthHandler(auth ports.AuthService, sessions ports.SessionManager, secureCookie bool) *AuthHandler {
	return &AuthHandler{auth: auth, sessions: sessions, secureCookie: secureCookie}
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Login authenticates the credential pair and establishes a session.
//
// @Summary      Log in
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Credentials"
// @Success      200   {object}  domain.User
// @Failure      401   {object}  map[string]string
// @Router       /api/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "invalid payload"})
	}

	user, err := h.auth.Validate(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrMissingCredentials) ||
			errors.Is(err, domain.ErrUserNotFound) ||
			errors.Is(err, domain.ErrIncorrectPassword) {
			metrics.LoginsTotal.WithLabelValues("rejected").Inc()
			return c.JSON(http.StatusUnauthorized, map[string]string{"message": genericLoginRejection})
		}
		metrics.LoginsTotal.WithLabelValues("error").Inc()
		return err
	}

	token, err := h.sessions.Login(c.Request().Context(), user)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("error").Inc()
		return err
	}

	middleware.SetSessionCookie(c, token, h.sessions.TTL(), h.secureCookie)
	metrics.LoginsTotal.WithLabelValues("success").Inc()
	metrics.SessionsActive.Inc()

	return c.JSON(http.StatusOK, user)
}

// Logout terminates the session and clears the cookie. Logging out without a
// session is a successful no-op.
//
// @Summary      Log out
// @Tags         auth
// @Success      200
// @Router       /api/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	if token, ok := middleware.SessionToken(c); ok {
		if err := h.sessions.Logout(c.Request().Context(), token); err != nil {
			return err
		}
		metrics.SessionsActive.Dec()
	}

	middleware.ClearSessionCookie(c, h.secureCookie)
	return c.NoContent(http.StatusOK)
}

// Me returns the authenticated identity. The route sits behind the session
// gate, so reaching the handler implies a resolved user.
//
// @Summary      Current user
// @Tags         auth
// @Produce      json
// @Success      200  {object}  domain.User
// @Failure      401  {object}  map[string]string
// @Router       /api/user [get]
func (h *AuthHandler) Me(c echo.Context) error {
	user, err := ctxUser(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}
