package http

import (
	"context"
	"net/http"
	"slices"
	"time"

	"siparisqr/internal/core/domain/model/kernel"
	"siparisqr/internal/core/domain/services"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// TenantIDHeader selects the tenant on the admin host.
const TenantIDHeader = "X-Tenant-ID"

const (
	routeKey   = "route"
	tenantKey  = "tenantID"
	healthPath = "/health"
)

// HostRouter classifies a request host.
type HostRouter interface {
	Route(ctx context.Context, host string) (services.RouteDecision, error)
}

// HostDispatch stores the route decision of the request host in the context.
// Hosts that route nowhere get 404, and a failed tenant lookup gets 503.
// The health check is answered on any host.
func HostDispatch(router HostRouter) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if c.Request().URL.Path == healthPath {
				return next(c)
			}

			decision, err := router.Route(c.Request().Context(), c.Request().Host)
			if err != nil {
				return err
			}
			c.Set(routeKey, decision)
			if decision.Kind == services.RouteNotFound {
				return echo.NewHTTPError(http.StatusNotFound, "unknown host")
			}
			if decision.Kind == services.RouteTenant {
				c.Set(tenantKey, decision.TenantID)
			}
			return next(c)
		}
	}
}

// OnlyFor answers 404 unless the request host routed to one of kinds.
func OnlyFor(kinds ...services.RouteKind) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !slices.Contains(kinds, routeOf(c).Kind) {
				return echo.ErrNotFound
			}
			return next(c)
		}
	}
}

// AdminTenant takes the tenant of an admin host request from X-Tenant-ID.
// Tenant hosts already carry their tenant and pass through.
func AdminTenant() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if routeOf(c).Kind != services.RouteAdmin {
				return next(c)
			}

			raw := c.Request().Header.Get(TenantIDHeader)
			if raw == "" {
				return echo.NewHTTPError(http.StatusBadRequest, TenantIDHeader+" header is required on the admin host")
			}
			id, err := kernel.UUIDFromString(raw)
			if err != nil {
				return echo.NewHTTPError(http.StatusBadRequest, TenantIDHeader+" must be a UUID")
			}
			c.Set(tenantKey, id)
			return next(c)
		}
	}
}

// RequestLogger writes one "request" line per request.
func RequestLogger(logger *zap.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			if err != nil {
				c.Error(err)
			}

			req := c.Request()
			fields := []zap.Field{
				zap.Int("status", c.Response().Status),
				zap.Duration("latency", time.Since(start)),
				zap.String("method", req.Method),
				zap.String("host", req.Host),
				zap.String("path", req.URL.Path),
				zap.String("route", routeOf(c).Kind.String()),
			}
			if id, ok := c.Get(tenantKey).(kernel.UUID); ok {
				fields = append(fields, zap.String("tenantId", id.String()))
			}

			switch status := c.Response().Status; {
			case status >= http.StatusInternalServerError:
				logger.Error("request", fields...)
			case status >= http.StatusBadRequest:
				logger.Warn("request", fields...)
			default:
				logger.Info("request", fields...)
			}
			return nil
		}
	}
}

func routeOf(c echo.Context) services.RouteDecision {
	decision, _ := c.Get(routeKey).(services.RouteDecision)
	return decision
}

func tenantOf(c echo.Context) (kernel.UUID, error) {
	id, ok := c.Get(tenantKey).(kernel.UUID)
	if !ok {
		return kernel.UUID{}, echo.ErrNotFound
	}
	return id, nil
}
