package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/academia-online/courses-api/internal/core/ports"
)

// ctxCaller extracts the identity injected by the Auth middleware and
// performs a fast-fail check before any service call: both the user ID and
// the role must be present, otherwise the token never went through the
// middleware and the request is treated as unauthenticated.
func ctxCaller(c echo.Context) (ports.Caller, error) {
	id, _ := c.Get("userID").(string)
	role, _ := c.Get("role").(string)
	if id == "" || role == "" {
		return ports.Caller{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return ports.Caller{ID: id, Role: role}, nil
}
