// Package server exposes the gesture engine over HTTP.
//
// The API is session-oriented: a client opens a session at pointer-down,
// posts pointer-move samples as steps, and closes the session at pointer-up.
// Each step runs one resolver pass and returns the resolved layout plus the
// proxy rectangle, so a thin client can do nothing but forward pointer events
// and draw. Stateless helpers for compaction and layout diffing round out the
// API.
//
// # Routes
//
//	POST /api/sessions            start a gesture session
//	POST /api/sessions/{id}/step  resolve one pointer-move sample
//	POST /api/sessions/{id}/end   close the session, get the final layout
//	POST /api/replay              replay a whole trace in one call
//	POST /api/compact             compact a layout
//	POST /api/diff                diff two layouts
//	GET  /healthz                 liveness probe
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/mveltman/gridlock/pkg/grid/engine"
	"github.com/mveltman/gridlock/pkg/pipeline"
	"github.com/mveltman/gridlock/pkg/session"
)

// Options configures the server.
type Options struct {
	// Addr is the listen address, e.g. ":8080".
	Addr string

	// Store holds in-flight gesture sessions. Required.
	Store session.Store

	// Runner executes replay requests. Required.
	Runner *pipeline.Runner

	// SessionTTL is how long an idle session survives. Zero means
	// session.DefaultTTL.
	SessionTTL time.Duration

	// Logger defaults to log.Default().
	Logger *log.Logger
}

// Server is the HTTP front end for the gesture engine.
type Server struct {
	addr   string
	store  session.Store
	runner *pipeline.Runner
	engine engine.Engine
	ttl    time.Duration
	logger *log.Logger
	router chi.Router
}

// New creates a server with all routes registered.
func New(opts Options) *Server {
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	if opts.SessionTTL <= 0 {
		opts.SessionTTL = session.DefaultTTL
	}

	s := &Server{
		addr:   opts.Addr,
		store:  opts.Store,
		runner: opts.Runner,
		engine: engine.New(),
		ttl:    opts.SessionTTL,
		logger: opts.Logger,
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger(s.logger))
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))

	r.Get("/healthz", s.handleHealth)
	r.Route("/api", func(r chi.Router) {
		r.Post("/sessions", s.handleSessionStart)
		r.Post("/sessions/{id}/step", s.handleSessionStep)
		r.Post("/sessions/{id}/end", s.handleSessionEnd)
		r.Post("/replay", s.handleReplay)
		r.Post("/compact", s.handleCompact)
		r.Post("/diff", s.handleDiff)
	})

	s.router = r
	return s
}

// Handler returns the server's HTTP handler, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

// ListenAndServe runs the server until ctx is canceled, then drains in-flight
// requests before returning.
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	s.logger.Info("listening", "addr", s.addr)

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
