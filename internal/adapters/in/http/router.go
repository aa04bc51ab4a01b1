package http

import (
	"context"
	"log/slog"
	"net/http"

	_ "warehouse/internal/generated/docs"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// NewRouter mounts the API, health, metrics and swagger routes. metrics may
// be nil.
//
//	@title		Warehouse
//	@version	1.0
func NewRouter(s *Server, v *Validator, metrics http.Handler, logger *slog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recover())
	e.Use(requestLogger(logger.With("component", "http")))

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	if metrics != nil {
		e.GET("/metrics", echo.WrapHandler(metrics))
	}
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api/v1", v.Middleware())
	api.POST("/events", s.PostEvent)
	api.GET("/requests", s.GetRequests)
	api.GET("/inventory", s.GetInventory)
	api.GET("/shortages", s.GetShortages)
	api.GET("/workers", s.GetWorkers)
	api.GET("/completed", s.GetCompletedRequests)

	return e
}

func requestLogger(logger *slog.Logger) echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod: true,
		LogURI:    true,
		LogStatus: true,
		LogError:  true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			level := slog.LevelDebug
			if v.Status >= http.StatusInternalServerError {
				level = slog.LevelError
			}
			logger.LogAttrs(context.Background(), level, "Request handled",
				slog.String("method", v.Method),
				slog.String("uri", v.URI),
				slog.Int("status", v.Status),
			)
			return nil
		},
	})
}
