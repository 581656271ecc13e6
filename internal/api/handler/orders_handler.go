package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/cf-northwind/admin-dashboard/internal/api/metrics"
	"github.com/cf-northwind/admin-dashboard/internal/api/view"
	"github.com/cf-northwind/admin-dashboard/internal/api/viewstate"
	"github.com/cf-northwind/admin-dashboard/internal/core/ports"
	"github.com/cf-northwind/admin-dashboard/internal/core/stats"
)

// OrdersHandler serves the orders list page and its JSON mirror.
type OrdersHandler struct {
	service ports.OrdersService
	hub     *stats.Hub
}

func NewOrdersHandler(service ports.OrdersService, hub *stats.Hub) *OrdersHandler {
	return &OrdersHandler{service: service, hub: hub}
}

// load runs the loader for the current view state and forwards stats to the
// shared hub. Every request replaces the previous result wholesale.
func (h *OrdersHandler) load(c echo.Context) (viewstate.Orders, ports.OrdersPage) {
	state := viewstate.ParseOrders(c.QueryParams())
	result := h.service.Load(c.Request().Context(), ports.OrdersQuery{
		Page:   state.Page,
		Count:  state.Count,
		Search: state.Search,
		Token:  state.Token,
	})
	h.hub.Dispatch(result.Stats)
	return state, result
}

// Page handles GET /orders.
func (h *OrdersHandler) Page(c echo.Context) error {
	state, result := h.load(c)

	outcome := "ok"
	if result.Error != "" {
		outcome = "error"
	}
	metrics.PagesRenderedTotal.WithLabelValues("orders", outcome).Inc()

	return c.Render(http.StatusOK, "orders", view.NewOrdersPage(state, result))
}

// List handles GET /api/dashboard/orders.
//
// @Summary      Load one page of the orders list
// @Tags         orders
// @Produce      json
// @Param        page    query  int     false  "Page number (default 1)"
// @Param        count   query  int     false  "Known page count; positive values skip the backend count request"
// @Param        search  query  string  false  "Free-text filter"
// @Param        token   query  string  false  "Role key: admin, user, or invalid (default admin)"
// @Success      200  {object}  ports.OrdersPage
// @Router       /api/dashboard/orders [get]
func (h *OrdersHandler) List(c echo.Context) error {
	_, result := h.load(c)
	return c.JSON(http.StatusOK, result)
}
