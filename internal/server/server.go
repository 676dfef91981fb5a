// Package server exposes the article upload form and a small JSON API on
// top of the store and the clustering engine.
package server

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"

	"github.com/thebtf/gazette/internal/config"
	"github.com/thebtf/gazette/internal/store"
)

// Service wires the HTTP surface: the upload form, article CRUD, and
// magazine generation.
type Service struct {
	config *config.Config
	store  *store.Store
	router chi.Router
	server *http.Server
}

// New creates a Service with its routes registered.
func New(cfg *config.Config, st *store.Store) *Service {
	svc := &Service{
		config: cfg,
		store:  st,
		router: chi.NewRouter(),
	}
	svc.setupRoutes()
	return svc
}

func (s *Service) setupRoutes() {
	s.router.Use(middleware.Recoverer)

	s.router.Get("/", s.handleUploadForm)
	s.router.Get("/healthz", s.handleHealth)

	s.router.Route("/api", func(r chi.Router) {
		r.Get("/articles", s.handleListArticles)
		r.Post("/articles", s.handleCreateArticle)
		r.Post("/generate", s.handleGenerate)
	})
}

// Router returns the service's HTTP handler, mainly for tests.
func (s *Service) Router() http.Handler {
	return s.router
}

// ListenAndServe runs the HTTP server until ctx is cancelled, then shuts
// down gracefully.
func (s *Service) ListenAndServe(ctx context.Context) error {
	s.server = &http.Server{
		Addr:              s.config.ListenAddr,
		Handler:           s.router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", s.config.ListenAddr).Msg("HTTP server listening")
		errCh <- s.server.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return s.server.Shutdown(shutdownCtx)
	case err := <-errCh:
		if err == http.ErrServerClosed {
			return nil
		}
		return err
	}
}
