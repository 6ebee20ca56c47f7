package http

import (
	"net/http"

	"siparisqr/internal/core/domain/services"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.uber.org/zap"
)

// EchoConfig holds what NewEcho needs besides the handlers.
type EchoConfig struct {
	Router       HostRouter
	OpenAPI      *OpenAPI
	Validate     bool
	Logger       *zap.Logger
	EchoLogLevel log.Lvl
}

// NewEcho builds the echo instance with host dispatch and all routes.
//
// Route groups by host:
//   - any host: /health
//   - root: /openapi.yaml, /swagger/*
//   - portal: registration and slug checks
//   - tenant and admin: orders, kitchen, tables, menu, dashboard
//   - admin: tenant deactivation
func NewEcho(cfg EchoConfig, s *Server) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Logger.SetLevel(cfg.EchoLogLevel)
	e.HTTPErrorHandler = NewErrorHandler(cfg.Logger)

	e.Use(RequestLogger(cfg.Logger))
	e.Use(middleware.Recover())
	e.Use(HostDispatch(cfg.Router))
	if cfg.Validate && cfg.OpenAPI != nil {
		e.Use(cfg.OpenAPI.Validator())
	}

	e.GET(healthPath, s.GetHealth)

	root := e.Group("", OnlyFor(services.RouteRoot))
	if cfg.OpenAPI != nil {
		cfg.OpenAPI.RegisterSwagger()
		root.GET("/openapi.yaml", func(c echo.Context) error {
			return c.Blob(http.StatusOK, "application/yaml", cfg.OpenAPI.YAML())
		})
		root.GET("/swagger/*", echoSwagger.WrapHandler)
	}

	portal := e.Group("/api/v1", OnlyFor(services.RoutePortal))
	portal.POST("/tenants", s.RegisterTenant)
	portal.GET("/slugs/check", s.CheckSlug)
	portal.GET("/slugs/suggest", s.SuggestSlug)

	admin := e.Group("/api/v1", OnlyFor(services.RouteAdmin))
	admin.POST("/tenants/:tenantId/deactivate", s.DeactivateTenant)

	scoped := e.Group("/api/v1", OnlyFor(services.RouteTenant, services.RouteAdmin), AdminTenant())
	scoped.POST("/orders", s.CreateOrder)
	scoped.GET("/orders", s.ListOrders)
	scoped.GET("/orders/:orderId", s.GetOrder)
	scoped.PATCH("/orders/:orderId/status", s.UpdateOrderStatus)
	scoped.GET("/kitchen/snapshot", s.GetKitchenSnapshot)
	scoped.GET("/tables", s.ListTables)
	scoped.POST("/tables", s.CreateTable)
	scoped.PATCH("/tables/:tableId", s.UpdateTable)
	scoped.DELETE("/tables/:tableId", s.DeleteTable)
	scoped.GET("/menu", s.GetMenu)
	scoped.GET("/dashboard/stats", s.GetDashboardStats)

	return e
}
