package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	v1 "github.com/tupyy/record-manager/api/v1"
	"github.com/tupyy/record-manager/internal/config"
)

const (
	apiPrefix       = "/api/v1"
	shutdownTimeout = 5 * time.Second
)

type Server struct {
	srv    *http.Server
	engine *gin.Engine
}

// NewServer builds the gin engine and hands the /api/v1 group to
// registerHandlerFn.
func NewServer(cfg *config.Configuration, registerHandlerFn func(router *gin.RouterGroup)) (*Server, error) {
	switch cfg.Server.ServerMode {
	case "prod":
		gin.SetMode(gin.ReleaseMode)
	case "dev":
		gin.SetMode(gin.DebugMode)
	default:
		return nil, fmt.Errorf("unknown server mode %q", cfg.Server.ServerMode)
	}

	engine := gin.New()
	engine.Use(
		ginzap.Ginzap(zap.L().Named("http"), time.RFC3339, true),
		ginzap.RecoveryWithZap(zap.L().Named("http"), true),
	)

	registerHandlerFn(engine.Group(apiPrefix))

	engine.NoRoute(func(c *gin.Context) {
		if strings.HasPrefix(c.Request.URL.Path, "/api/") {
			c.JSON(http.StatusNotFound, v1.ErrorResponse{Error: "route not found"})
			return
		}
		c.Redirect(http.StatusTemporaryRedirect, apiPrefix+"/view")
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

// Handler returns the http handler serving the API.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Start serves until ctx is done or the listener fails. On ctx cancellation
// in-flight requests are given shutdownTimeout to complete.
func (s *Server) Start(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		zap.S().Named("server").Infow("http server listening", "addr", s.srv.Addr)
		errCh <- s.srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return s.Stop(shutdownCtx)
	}
}

// Stop shuts the server down gracefully.
func (s *Server) Stop(ctx context.Context) error {
	zap.S().Named("server").Info("shutting down http server")
	if err := s.srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shut down server: %w", err)
	}
	return nil
}
