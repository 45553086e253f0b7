package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/feral-file/rustaceans/internal/api/middleware"
	"github.com/feral-file/rustaceans/internal/api/rest"
	"github.com/feral-file/rustaceans/internal/issuance"
	"github.com/feral-file/rustaceans/internal/logger"
	"github.com/feral-file/rustaceans/internal/media/rasterizer"
	"github.com/feral-file/rustaceans/internal/metrics"
)

// Config holds the server configuration
type Config struct {
	Debug        bool
	Host         string
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
	Auth         middleware.AuthConfig
}

// Server wraps the HTTP server
type Server struct {
	config     Config
	controller issuance.Controller
	rasterizer rasterizer.Rasterizer
	metrics    *metrics.Metrics
	gatherer   prometheus.Gatherer
	httpServer *http.Server
}

// New creates a new API server. gatherer backs GET /metrics.
func New(
	cfg Config,
	controller issuance.Controller,
	r rasterizer.Rasterizer,
	m *metrics.Metrics,
	gatherer prometheus.Gatherer,
) *Server {
	return &Server{
		config:     cfg,
		controller: controller,
		rasterizer: r,
		metrics:    m,
		gatherer:   gatherer,
	}
}

// Router builds the gin engine with middleware and routes
func (s *Server) Router() *gin.Engine {
	// Set Gin mode based on debug flag
	if s.config.Debug {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	router.Use(middleware.Recovery())
	router.Use(middleware.Logger())
	router.Use(middleware.Metrics(s.metrics))
	router.Use(middleware.SetupCORS())

	restHandler := rest.NewHandler(s.config.Debug, s.controller, s.rasterizer)
	rest.SetupRoutes(router, restHandler, s.config.Auth)

	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{})))

	return router
}

// Start initializes and starts the HTTP server
func (s *Server) Start() error {
	addr := fmt.Sprintf("%s:%d", s.config.Host, s.config.Port)
	s.httpServer = &http.Server{
		Addr:         addr,
		Handler:      s.Router(),
		ReadTimeout:  s.config.ReadTimeout,
		WriteTimeout: s.config.WriteTimeout,
		IdleTimeout:  s.config.IdleTimeout,
	}

	logger.Info("Starting API server",
		zap.String("address", addr),
	)

	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	logger.Info("Shutting down API server")

	if s.httpServer != nil {
		if err := s.httpServer.Shutdown(ctx); err != nil {
			return fmt.Errorf("failed to shutdown server: %w", err)
		}
	}

	return nil
}
