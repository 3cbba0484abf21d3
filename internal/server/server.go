package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"referral-guard/internal/bootstrap"
	"referral-guard/internal/config"
	"referral-guard/internal/observability"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Pinger reports whether a backing dependency is reachable
type Pinger interface {
	PingContext(ctx context.Context) error
}

// Server encapsulates the HTTP server and its dependencies
type Server struct {
	httpServer *http.Server
	router     *gin.Engine
	deps       *bootstrap.Dependencies
	config     *config.Config
	logger     *observability.Logger
}

// New creates a new Server instance
func New(cfg *config.Config, deps *bootstrap.Dependencies, logger *observability.Logger) *Server {
	return &Server{
		config: cfg,
		deps:   deps,
		logger: logger,
	}
}

// Setup configures the HTTP router with middleware and routes
func (s *Server) Setup() {
	if os.Getenv("GO_ENV") == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	s.router = gin.New()
	s.router.Use(observability.Middleware(s.logger))

	s.router.GET("/health", HealthHandler(s.deps.Store.DB()))
	s.router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	internal := s.router.Group("/internal")
	internal.POST("/fraud-checks", s.deps.FraudHandler.HandleCreateFraudCheck)
}

// HealthHandler answers 200 while the database responds and 503 otherwise
func HealthHandler(db Pinger) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		if err := db.PingContext(ctx); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "database": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}

// Start starts the fraud check workers and begins listening for HTTP requests
func (s *Server) Start(ctx context.Context) error {
	if err := s.deps.FraudWorkerPool.Start(ctx); err != nil {
		return fmt.Errorf("failed to start fraud worker pool: %w", err)
	}

	s.httpServer = &http.Server{
		Addr:              fmt.Sprintf(":%d", s.config.Server.Port),
		Handler:           s.router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		s.logger.Info(ctx, fmt.Sprintf("Server starting on port %d", s.config.Server.Port))
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Fatal(ctx, "server failed to start", err)
		}
	}()

	return nil
}

// WaitForShutdown blocks until SIGINT or SIGTERM, then stops intake, drains
// queued fraud checks and releases resources.
func (s *Server) WaitForShutdown(ctx context.Context) error {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	<-quit
	s.logger.Info(ctx, "Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	// Queued checks still run; the drain timeout bounds how long we wait
	if err := s.deps.FraudWorkerPool.Drain(context.Background()); err != nil {
		s.logger.Error(ctx, "fraud worker pool did not drain cleanly", err)
	}

	s.deps.Cleanup()

	s.logger.Info(ctx, "Server exited gracefully")
	return nil
}
