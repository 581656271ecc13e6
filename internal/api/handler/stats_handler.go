package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/cf-northwind/admin-dashboard/internal/core/stats"
)

// StatsHandler exposes the shared stats channel's latest payload.
type StatsHandler struct {
	hub *stats.Hub
}

func NewStatsHandler(hub *stats.Hub) *StatsHandler {
	return &StatsHandler{hub: hub}
}

// Latest handles GET /api/dashboard/stats.
//
// @Summary      Latest stats payload pushed by the pages
// @Tags         stats
// @Produce      json
// @Success      200  {object}  object
// @Success      204  "No stats dispatched yet"
// @Router       /api/dashboard/stats [get]
func (h *StatsHandler) Latest(c echo.Context) error {
	latest := h.hub.Latest()
	if latest == nil {
		return c.NoContent(http.StatusNoContent)
	}
	return c.JSONBlob(http.StatusOK, latest)
}
