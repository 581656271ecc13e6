package api

import (
	"encoding/json"
	"net/http"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"

	"github.com/cf-northwind/admin-dashboard/internal/api/handler"
	"github.com/cf-northwind/admin-dashboard/internal/api/view"
	"github.com/cf-northwind/admin-dashboard/internal/core/service"
	"github.com/cf-northwind/admin-dashboard/internal/core/stats"
	"github.com/cf-northwind/admin-dashboard/internal/infrastructure/config"
	"github.com/cf-northwind/admin-dashboard/internal/infrastructure/northwind"
	"github.com/cf-northwind/admin-dashboard/internal/infrastructure/queue"
)

// NewRouter builds the Echo instance with all routes registered, plus the
// inventory dispatcher, which the caller must Start before serving.
func NewRouter(cfg *config.Config, log zerolog.Logger) (*echo.Echo, *queue.Dispatcher) {
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)
	e.Validator = handler.NewValidator()
	e.Renderer = view.MustRenderer()

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("northwind_dashboard"))

	// --- Dependencies ---
	client := northwind.NewClient(cfg.API.BaseURL, cfg.Queue.BaseURL, nil, log)
	dispatcher := queue.NewDispatcher(cfg.Queue.Workers, client, log)
	hub := stats.NewHub()
	hub.Subscribe(func(s json.RawMessage) {
		log.Info().RawJSON("stats", s).Msg("stats updated")
	})

	ordersService := service.NewOrdersService(client, cfg.Auth.RoleTokens(), log)
	productService := service.NewProductService(client, log)
	inventoryService := service.NewInventoryService(dispatcher, log)

	ordersHandler := handler.NewOrdersHandler(ordersService, hub)
	productHandler := handler.NewProductHandler(productService, inventoryService, hub)
	statsHandler := handler.NewStatsHandler(hub)
	healthHandler := handler.NewHealthHandler()

	// --- Pages ---
	e.GET("/", func(c echo.Context) error {
		return c.Redirect(http.StatusFound, "/orders")
	})
	e.GET("/orders", ordersHandler.Page)
	e.GET("/product/:id", productHandler.Page)
	e.POST("/product/:id/inventory", productHandler.UpdateInventory)
	e.StaticFS("/static", view.Static())

	// --- JSON mirror of the loaders ---
	dash := e.Group("/api/dashboard")
	dash.GET("/orders", ordersHandler.List)
	dash.GET("/product/:id", productHandler.Get)
	dash.POST("/product/:id/inventory", productHandler.ApplyInventory)
	dash.GET("/stats", statsHandler.Latest)

	// --- Ops ---
	e.GET("/health", healthHandler.Liveness)
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e, dispatcher
}
