// Package server sets up the HTTP server, router, and all route definitions.
//
// SERVER ARCHITECTURE:
// This package is the "wiring" layer. It connects handlers, middleware and
// routes, and decides:
// - Which URL patterns map to which handler functions
// - What middleware runs on which routes
// - How the server starts and stops gracefully
//
// DEPENDENCY INJECTION FLOW:
// main.go creates:
//
//	config.Config → github.Client → service.RepositoryService → server.New
//
// The server only sees the handler.RepositoryFinder interface, so tests can
// build a full router around a stub without touching the network.
package server

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/sakif/repo-showcase/internal/handler"
	"github.com/sakif/repo-showcase/internal/middleware"
	"github.com/sakif/repo-showcase/web"
)

// Config holds server configuration.
type Config struct {
	Port    int
	Account string // account shown on the page and used when the API gets none
}

// Server represents the HTTP server and all its dependencies.
type Server struct {
	router *chi.Mux
	config Config
	logger *slog.Logger
	finder handler.RepositoryFinder
}

// New creates a new Server with the given config.
//
// Templates are parsed here, so a broken template fails at startup rather
// than on the first request.
func New(cfg Config, finder handler.RepositoryFinder, logger *slog.Logger) (*Server, error) {
	s := &Server{
		router: chi.NewRouter(),
		config: cfg,
		logger: logger,
		finder: finder,
	}

	if err := s.setupRoutes(); err != nil {
		return nil, fmt.Errorf("setting up routes: %w", err)
	}

	return s, nil
}

// Handler exposes the router, mainly for httptest.
func (s *Server) Handler() http.Handler {
	return s.router
}

// setupRoutes configures all middleware and route handlers.
//
// ROUTE STRUCTURE:
// GET /                         → Showcase page (HTML)
// GET /static/*                 → Static files (CSS)
// GET /healthz                  → Liveness probe
// GET /api/repositories         → Curated repositories (JSON)
// GET /api/accounts/{account}   → Account existence (JSON)
//
// MIDDLEWARE ORDER MATTERS:
// 1. RequestID: assigns an xid to each request (before logging needs it)
// 2. RealIP: extracts real client IP from proxy headers
// 3. Recoverer: catches panics and returns 500 instead of crashing
// 4. Logger: logs each request with timing info and its request ID
func (s *Server) setupRoutes() error {
	s.router.Use(middleware.RequestID)
	s.router.Use(chimiddleware.RealIP)
	s.router.Use(chimiddleware.Recoverer)
	s.router.Use(middleware.Logger(s.logger))

	// === Static Files ===
	// Served from the embedded web.FS, so the binary runs from any directory.
	// GET /static/css/style.css → web/static/css/style.css
	static, err := fs.Sub(web.FS, "static")
	if err != nil {
		return fmt.Errorf("opening static files: %w", err)
	}
	s.router.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(static))))

	// === Page Routes ===
	showcaseHandler, err := handler.NewShowcaseHandler(web.FS, s.finder, s.config.Account, s.logger)
	if err != nil {
		return fmt.Errorf("creating showcase handler: %w", err)
	}
	s.router.Get("/", showcaseHandler.HandleShowcase)
	s.router.Get("/healthz", handler.HandleHealth)

	// === API Routes ===
	repoHandler := handler.NewRepositoryHandler(s.finder, s.config.Account, s.logger)

	s.router.Route("/api", func(r chi.Router) {
		r.Get("/repositories", repoHandler.HandleList)
		r.Get("/accounts/{account}", repoHandler.HandleAccount)
	})

	return nil
}

// Start starts the HTTP server and handles graceful shutdown.
//
// GRACEFUL SHUTDOWN:
// 1. Stop accepting new HTTP connections
// 2. Wait for in-flight requests to finish (30s timeout)
//
// Requests still waiting on GitHub when the timeout expires are cut off.
func (s *Server) Start() error {
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", s.config.Port),
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	serverErrors := make(chan error, 1)

	go func() {
		s.logger.Info("server starting",
			slog.Int("port", s.config.Port),
			slog.String("url", fmt.Sprintf("http://localhost:%d", s.config.Port)),
			slog.String("account", s.config.Account),
		)
		serverErrors <- srv.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}

	case sig := <-quit:
		s.logger.Info("shutdown signal received", slog.String("signal", sig.String()))

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
		s.logger.Info("server stopped gracefully")
	}

	return nil
}
