// Package server exposes the calculation engine over HTTP: the form
// submission endpoint, the sensitivity sweep, health and metrics.
package server

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/os4p/engine/internal/config"
	"github.com/os4p/engine/internal/engine"
)

// Server is the HTTP surface over one calculation engine.
type Server struct {
	router   *gin.Engine
	engine   *engine.Engine
	logger   zerolog.Logger
	metrics  *Metrics
	registry *prometheus.Registry
	http     *http.Server
}

// New creates a server for the given engine. Metrics live on a
// server-owned registry so multiple servers can coexist in one process.
func New(cfg config.ServerConfig, eng *engine.Engine, logger zerolog.Logger) *Server {
	gin.SetMode(gin.ReleaseMode)

	registry := prometheus.NewRegistry()
	s := &Server{
		router:   gin.New(),
		engine:   eng,
		logger:   logger,
		metrics:  NewMetrics(registry),
		registry: registry,
	}
	s.http = &http.Server{
		Addr:    cfg.ListenAddr,
		Handler: s.router,
	}
	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	s.router.Use(gin.Recovery())
	s.router.Use(s.cors())
	s.router.Use(s.requestID())

	api := s.router.Group("/api/v1")
	{
		api.POST("/calculate", s.handleCalculate)
		api.POST("/sweep", s.handleSweep)
		api.GET("/health", s.handleHealth)
	}

	s.router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{})))
}

// cors mirrors the permissive policy of the legacy form page.
func (s *Server) cors() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type")
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}

// requestID tags every request with a trace ID for log correlation,
// honoring one supplied by the caller.
func (s *Server) requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-ID")
		if id == "" {
			id = uuid.New().String()
		}
		c.Set(ctxKeyRequestID, id)
		c.Header("X-Request-ID", id)
		c.Next()
	}
}

// Handler returns the underlying HTTP handler, for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

// ListenAndServe runs the server until Shutdown is called.
func (s *Server) ListenAndServe() error {
	s.logger.Info().Str("addr", s.http.Addr).Msg("starting calculator server")
	return s.http.ListenAndServe()
}

// Shutdown drains in-flight requests within the context deadline.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}
