// Package server exposes game sessions over a JSON HTTP API.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/abhisek/menuquiz/internal/menu"
	"github.com/abhisek/menuquiz/internal/metrics"
	"github.com/abhisek/menuquiz/internal/quiz"
)

// Config configures the HTTP server.
type Config struct {
	Addr          string
	CORSOrigins   []string
	SweepInterval time.Duration
}

// Server serves the game API.
type Server struct {
	cfg          Config
	dataset      *menu.Dataset
	difficulties quiz.Difficulties
	sessions     *Manager
	metrics      *metrics.Collector
	log          *zap.Logger
}

// New wires a server. The manager's session count is reported to m.
func New(cfg Config, dataset *menu.Dataset, difficulties quiz.Difficulties, sessions *Manager, m *metrics.Collector, log *zap.Logger) *Server {
	sessions.onChange = m.SetActiveSessions
	return &Server{
		cfg:          cfg,
		dataset:      dataset,
		difficulties: difficulties,
		sessions:     sessions,
		metrics:      m,
		log:          log,
	}
}

// Handler returns the routed HTTP handler.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()

	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.RealIP)
	r.Use(RequestLogger(s.log))
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/health"))
	r.Use(CORS(s.cfg.CORSOrigins))

	r.Method(http.MethodGet, "/metrics", s.metrics.Handler())
	s.RegisterRoutes(r)
	return r
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:         s.cfg.Addr,
		Handler:      s.Handler(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go s.sessions.Run(ctx, s.cfg.SweepInterval)

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	s.log.Info("shutting down gracefully")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	s.log.Info("server stopped")
	return nil
}
