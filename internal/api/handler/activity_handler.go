package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/pharmatrack/inventory-system/internal/core/ports"
)

// ActivityHandler exposes the audit trail to the admin surface.
type ActivityHandler struct {
	service ports.ActivityService
}

func NewActivityHandler(service ports.ActivityService) *ActivityHandler {
	return &ActivityHandler{service: service}
}

// Logs handles GET /api/admin/logs — the 50 most recent entries, newest
// first.
//
// @Summary      Recent activity log
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.ActivityLogEntry
// @Router       /api/admin/logs [get]
func (h *ActivityHandler) Logs(c echo.Context) error {
	entries, err := h.service.ListRecent(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, entries)
}

// Report handles GET /api/admin/audit-report — the full trail, consumed
// by the report export in the admin UI.
//
// @Summary      Full audit report
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.ActivityLogEntry
// @Router       /api/admin/audit-report [get]
func (h *ActivityHandler) Report(c echo.Context) error {
	entries, err := h.service.Report(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, entries)
}
