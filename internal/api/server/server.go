package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/origin-platform/rights-ledger/internal/api/middleware"
	"github.com/origin-platform/rights-ledger/internal/api/rest"
	"github.com/origin-platform/rights-ledger/internal/logger"
)

// Config holds the API server configuration
type Config struct {
	Debug        bool
	Host         string
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
	Auth         middleware.AuthConfig
}

// Server is the HTTP API server
type Server struct {
	cfg     Config
	handler *rest.Handler
	http    *http.Server
}

// New creates an API server over the REST handler
func New(cfg Config, handler *rest.Handler) *Server {
	return &Server{cfg: cfg, handler: handler}
}

// Start builds the router and serves until the listener fails or Shutdown is
// called. Blocks; http.ErrServerClosed is swallowed as a clean exit.
func (s *Server) Start(ctx context.Context) error {
	if !s.cfg.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(middleware.Recovery())
	router.Use(middleware.Logger())
	router.Use(middleware.Metrics())
	router.Use(middleware.SetupCORS())

	rest.SetupRoutes(router, s.handler, s.cfg.Auth)

	addr := fmt.Sprintf("%s:%d", s.cfg.Host, s.cfg.Port)
	s.http = &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  s.cfg.ReadTimeout,
		WriteTimeout: s.cfg.WriteTimeout,
		IdleTimeout:  s.cfg.IdleTimeout,
		BaseContext:  func(net.Listener) context.Context { return ctx },
	}

	logger.InfoCtx(ctx, "API server listening", zap.String("addr", addr))

	if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("API server failed: %w", err)
	}
	return nil
}

// Shutdown gracefully drains in-flight requests
func (s *Server) Shutdown(ctx context.Context) error {
	if s.http == nil {
		return nil
	}
	return s.http.Shutdown(ctx)
}
