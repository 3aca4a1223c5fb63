// Package server exposes a workspace over HTTP.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/cleared-dev/ledgertree/internal/workspace"
)

// Server serves one workspace.
type Server struct {
	ws      *workspace.Workspace
	log     *zap.Logger
	metrics http.Handler
}

// New returns a Server. metricsHandler serves /metrics; nil disables it.
func New(ws *workspace.Workspace, log *zap.Logger, metricsHandler http.Handler) *Server {
	if log == nil {
		log = zap.NewNop()
	}
	return &Server{ws: ws, log: log, metrics: metricsHandler}
}

// Engine builds the gin engine with every route registered.
func (s *Server) Engine() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(requestLogger(s.log))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	if s.metrics != nil {
		r.GET("/metrics", gin.WrapH(s.metrics))
	}

	h := r.Group("/hierarchy")
	h.GET("/options", s.Options)
	h.GET("/tree", s.Tree)
	h.POST("/selection", s.Selection)
	h.POST("/refresh", s.Refresh)

	r.POST("/ledgers", s.CreateLedger)
	return r
}

// Run serves on addr until ctx is done, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Engine(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		s.log.Info("http server listening", zap.String("addr", addr))
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serving: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	s.log.Info("http server shutting down")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down: %w", err)
	}
	return nil
}

func requestLogger(log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.Info("http request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.FullPath()),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
		)
	}
}
