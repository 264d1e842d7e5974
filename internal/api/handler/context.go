package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/pharmatrack/inventory-system/internal/core/domain"
	"github.com/pharmatrack/inventory-system/internal/core/ports"
)

// ctxActor extracts the session claims injected by the Auth middleware
// and performs a fast-fail check before any service call: a non-empty
// role proves the middleware ran, and the id must be present for the
// audit trail to attribute the action.
func ctxActor(c echo.Context) (ports.Actor, error) {
	role, _ := c.Get("role").(string)
	if role == "" {
		return ports.Actor{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}

	id, _ := c.Get("id").(int64)
	username, _ := c.Get("username").(string)
	if id == 0 || username == "" {
		return ports.Actor{}, echo.NewHTTPError(http.StatusUnauthorized, "token missing actor identity")
	}

	return ports.Actor{
		ID:       id,
		Username: username,
		Role:     domain.Role(role),
	}, nil
}
