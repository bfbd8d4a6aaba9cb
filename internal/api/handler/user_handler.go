package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/academia-online/courses-api/internal/core/ports"
)

type UserHandler struct {
	users ports.UserRepository
}

func NewUserHandler(users ports.UserRepository) *UserHandler {
	return &UserHandler{users: users}
}

// Profile returns the authenticated user's own record.
//
// @Summary      Get own profile
// @Tags         user
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  domain.User
// @Failure      401  {object}  map[string]string
// @Router       /user/perfil [get]
func (h *UserHandler) Profile(c echo.Context) error {
	caller, err := ctxCaller(c)
	if err != nil {
		return err
	}

	user, err := h.users.FindByID(c.Request().Context(), caller.ID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, map[string]any{"usuario": user})
}
