// Package server exposes the session board to browsers as a JSON API with
// a Server-Sent Events stream of snapshots.
package server

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/rs/cors"

	"todoboard/internal/config"
	"todoboard/internal/logging"
	"todoboard/internal/service"
)

const (
	shutdownTimeout   = 5 * time.Second
	readHeaderTimeout = 10 * time.Second
	maxBodyBytes      = 1 << 20
)

// Server serves one board.
type Server struct {
	board   service.Board
	cfg     config.ServerConfig
	logger  *log.Logger
	schemas *schemas
}

// New creates a server for b. A nil logger discards output.
func New(b service.Board, cfg config.ServerConfig, logger *log.Logger) *Server {
	if logger == nil {
		logger = logging.Discard()
	}
	return &Server{
		board:   b,
		cfg:     cfg,
		logger:  logger,
		schemas: mustCompileSchemas(),
	}
}

// Handler returns the router wrapped in CORS handling.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()

	r.Use(RequestID)
	r.Use(Logger(s.logger))
	r.Use(Recovery(s.logger))

	r.Get("/health", s.health)

	r.Route("/api", func(r chi.Router) {
		r.Get("/board", s.getBoard)
		r.Get("/events", s.events)

		r.Post("/tasks", s.addTask)
		r.Delete("/tasks/{id}", s.deleteTask)
		r.Post("/tasks/{id}/toggle", s.toggleTask)

		r.Post("/reorder", s.reorder)
		r.Put("/filter", s.setFilter)
		r.Put("/selection", s.setSelection)
	})

	origins := s.cfg.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	c := cors.New(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type"},
		ExposedHeaders: []string{requestIDHeader},
	})
	return c.Handler(r)
}

// ListenAndServe serves on the configured address until ctx is cancelled,
// then shuts down gracefully. Open event streams end with ctx.
func (s *Server) ListenAndServe(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.cfg.Addr)
	if err != nil {
		return err
	}
	return s.Serve(ctx, ln)
}

// Serve is ListenAndServe on an existing listener.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: readHeaderTimeout,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Serve(ln)
	}()
	s.logger.Info("listening", "addr", ln.Addr().String())

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	s.logger.Info("stopped")
	return nil
}
