package api

import (
	"flight-sun-service/internal/api/handlers"
	"flight-sun-service/internal/ports"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/klauspost/compress/gzhttp"
)

type Options struct {
	AllowedOrigins []string
	Gzip           bool
}

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
func NewRouter(airports ports.AirportRepository, planner handlers.FlightPlanner, logger *slog.Logger, opts Options) http.Handler {
	gin.SetMode(gin.ReleaseMode)

	airportHandler := &handlers.AirportHandler{Repo: airports}
	flightHandler := &handlers.FlightHandler{Planner: planner}

	router := gin.New()
	router.Use(
		gin.Recovery(),
		requestID(),
		requestLogger(logger),
		corsMiddleware(opts.AllowedOrigins),
		errorHandlingMiddleware(logger),
	)

	router.GET("/health", handlers.Health)

	api := router.Group("/api")
	{
		api.GET("/airports", airportHandler.List)
		api.GET("/airports/:code", airportHandler.Get)
		api.POST("/calculate", flightHandler.Calculate)
	}

	if opts.Gzip {
		return gzhttp.GzipHandler(router)
	}
	return router
}
