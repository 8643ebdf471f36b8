package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	v1 "github.com/unison/inventory-manager/api/v1"
	"github.com/unison/inventory-manager/internal/config"
	"github.com/unison/inventory-manager/internal/metrics"
	"github.com/unison/inventory-manager/internal/server/middlewares"
)

const apiPrefix = "/api/v1"

type Server struct {
	engine *gin.Engine
	srv    *http.Server
}

// NewServer builds the gin engine. registerHandlerFn receives the /api/v1 group
// after apiMiddlewares have been attached to it.
func NewServer(cfg *config.Configuration, registerHandlerFn func(router *gin.RouterGroup), apiMiddlewares ...gin.HandlerFunc) (*Server, error) {
	switch cfg.Server.ServerMode {
	case "prod":
		gin.SetMode(gin.ReleaseMode)
	case "dev":
		gin.SetMode(gin.DebugMode)
	default:
		return nil, fmt.Errorf("unknown server mode %q", cfg.Server.ServerMode)
	}

	metrics.Register(prometheus.DefaultRegisterer)

	engine := gin.New()
	logger := zap.L().Named("http")
	engine.Use(
		ginzap.Ginzap(logger, time.RFC3339, true),
		ginzap.RecoveryWithZap(logger, true),
		middlewares.Metrics(),
	)

	engine.GET("/metrics", gin.WrapH(promhttp.Handler()))
	engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := engine.Group(apiPrefix)
	api.Use(apiMiddlewares...)
	registerHandlerFn(api)

	engine.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, v1.Error{Error: "not found"})
	})

	return &Server{
		engine: engine,
		srv: &http.Server{
			Addr:              fmt.Sprintf(":%d", cfg.Server.HTTPPort),
			Handler:           engine,
			ReadHeaderTimeout: 10 * time.Second,
		},
	}, nil
}

// Handler exposes the engine, mostly for tests.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Start blocks until the server stops. A graceful Stop returns nil.
func (s *Server) Start(ctx context.Context) error {
	zap.S().Named("server").Infow("http server listening", "addr", s.srv.Addr)
	s.srv.BaseContext = func(net.Listener) context.Context { return ctx }
	if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Stop waits for in-flight requests until ctx expires.
func (s *Server) Stop(ctx context.Context) error {
	return s.srv.Shutdown(ctx)
}
