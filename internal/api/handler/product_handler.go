package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/cf-northwind/admin-dashboard/internal/api/metrics"
	"github.com/cf-northwind/admin-dashboard/internal/api/view"
	"github.com/cf-northwind/admin-dashboard/internal/core/ports"
	"github.com/cf-northwind/admin-dashboard/internal/core/stats"
)

// ProductHandler serves the product detail page, its JSON mirror, and the
// inventory adjustment action.
type ProductHandler struct {
	products  ports.ProductService
	inventory ports.InventoryService
	hub       *stats.Hub
}

func NewProductHandler(products ports.ProductService, inventory ports.InventoryService, hub *stats.Hub) *ProductHandler {
	return &ProductHandler{products: products, inventory: inventory, hub: hub}
}

// --- Request types ---

// updateInventoryForm is the page-level inventory form: the hidden shadow
// stock plus the signed delta.
type updateInventoryForm struct {
	Stock int `form:"stock" json:"stock" validate:"gte=0"`
	Delta int `form:"delta" json:"delta"`
}

// Page handles GET /product/:id. A fresh load always discards any local
// shadow stock in favor of the backend value.
func (h *ProductHandler) Page(c echo.Context) error {
	result, err := h.load(c)
	if err != nil {
		metrics.PagesRenderedTotal.WithLabelValues("product", "error").Inc()
		return err
	}
	metrics.PagesRenderedTotal.WithLabelValues("product", "ok").Inc()

	stock := 0
	if result.Product != nil {
		stock = result.Product.UnitsInStock
	}
	return c.Render(http.StatusOK, "product", view.NewProductPage(result.Product, stock, false))
}

// UpdateInventory handles POST /product/:id/inventory: apply the optimistic
// local adjustment, dispatch the fire-and-forget write, and re-render the
// page with the shadow stock. The page is re-rendered from a fresh product
// load for every field except Units In Stock, which keeps the shadow value.
func (h *ProductHandler) UpdateInventory(c echo.Context) error {
	var form updateInventoryForm
	if err := c.Bind(&form); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&form); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	res := h.inventory.Apply(c.Request().Context(), ports.InventoryUpdateInput{
		ProductID: c.Param("id"),
		Current:   form.Stock,
		Delta:     form.Delta,
	})
	h.countUpdate(res)

	result, err := h.load(c)
	if err != nil {
		return err
	}
	return c.Render(http.StatusOK, "product", view.NewProductPage(result.Product, res.UnitsInStock, res.Applied))
}

// Get handles GET /api/dashboard/product/:id.
//
// @Summary      Load a product by id
// @Tags         products
// @Produce      json
// @Param        id  path  string  true  "Product id"
// @Success      200  {object}  ports.ProductPage
// @Failure      400  {object}  map[string]string
// @Router       /api/dashboard/product/{id} [get]
func (h *ProductHandler) Get(c echo.Context) error {
	result, err := h.load(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, result)
}

// ApplyInventory handles POST /api/dashboard/product/:id/inventory.
//
// @Summary      Apply an optimistic inventory adjustment
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        id    path  string               true  "Product id"
// @Param        body  body  updateInventoryForm  true  "Current shadow stock and signed delta"
// @Success      200  {object}  ports.InventoryResult
// @Failure      400  {object}  map[string]string
// @Router       /api/dashboard/product/{id}/inventory [post]
func (h *ProductHandler) ApplyInventory(c echo.Context) error {
	var form updateInventoryForm
	if err := c.Bind(&form); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&form); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	res := h.inventory.Apply(c.Request().Context(), ports.InventoryUpdateInput{
		ProductID: c.Param("id"),
		Current:   form.Stock,
		Delta:     form.Delta,
	})
	h.countUpdate(res)

	return c.JSON(http.StatusOK, res)
}

func (h *ProductHandler) load(c echo.Context) (*ports.ProductPage, error) {
	result, err := h.products.Load(c.Request().Context(), c.Param("id"))
	if err != nil {
		return nil, err
	}
	h.hub.Dispatch(result.Stats)
	return result, nil
}

func (h *ProductHandler) countUpdate(res ports.InventoryResult) {
	result := "applied"
	if !res.Applied {
		result = "rejected"
	}
	metrics.InventoryUpdatesTotal.WithLabelValues(result).Inc()
}
