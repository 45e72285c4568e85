package http

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "feedrelay/backend/docs"
	"feedrelay/backend/internal/handler"
	"feedrelay/backend/internal/service"
)

// Pinger reports whether the store is reachable.
type Pinger interface {
	PingContext(ctx context.Context) error
}

type healthResponse struct {
	Status string `json:"status"`
}

func NewRouter(
	userHandler *handler.UserHandler,
	serverHandler *handler.ServerHandler,
	feedHandler *handler.FeedHandler,
	users service.UserService,
	store Pinger,
	staticDir string,
) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Use(middleware.Recover())
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(RequestLoggerMiddleware())
	e.Use(MetricsMiddleware())

	e.GET("/healthz", healthHandler(store))
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api/v1", BearerAuthMiddleware())
	userHandler.RegisterRoutes(api)

	servers := api.Group("/discord-servers/:serverId", ServerAccessMiddleware(users))
	serverHandler.RegisterRoutes(servers)
	feedHandler.RegisterRoutes(servers)

	registerStatic(e, staticDir)

	return e
}

func healthHandler(store Pinger) echo.HandlerFunc {
	return func(c echo.Context) error {
		if store != nil {
			if err := store.PingContext(c.Request().Context()); err != nil {
				return c.JSON(http.StatusServiceUnavailable, healthResponse{Status: "store unavailable"})
			}
		}
		return c.JSON(http.StatusOK, healthResponse{Status: "ok"})
	}
}
