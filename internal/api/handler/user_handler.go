package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/sellora/storefront-admin/internal/core/domain"
	"github.com/sellora/storefront-admin/internal/core/ports"
)

// UserHandler handles administrative user operations.
type UserHandler struct {
	users ports.UserService
}

func NewUserHandler(users ports.UserService) *UserHandler {
	return &UserHandler{users: users}
}

// List handles GET /api/users.
//
// @Summary      List users
// @Tags         users
// @Produce      json
// @Success      200  {array}   domain.User
// @Failure      401  {object}  map[string]string
// @Router       /api/users [get]
func (h *UserHandler) List(c echo.Context) error {
	users, err := h.users.List(c.Request().Context())
	if err != nil {
		return err
	}
	if users == nil {
		users = []domain.User{}
	}
	return c.JSON(http.StatusOK, users)
}

// Delete handles DELETE /api/users/:id. Live sessions of the deleted user
// resolve to anonymous on their next request.
//
// @Summary      Delete a user
// @Tags         users
// @Produce      json
// @Param        id  path      int  true  "User id"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/users/{id} [delete]
func (h *UserHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	deleted, err := h.users.Delete(c.Request().Context(), id)
	if err != nil {
		return err
	}
	if !deleted {
		return c.JSON(http.StatusNotFound, map[string]string{"message": "User not found"})
	}

	return c.JSON(http.StatusOK, map[string]string{"message": "User deleted successfully"})
}
