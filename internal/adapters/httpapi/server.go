// Package httpapi serves the browse, select and search web interface
package httpapi

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"time"

	"github.com/yuin/goldmark"

	"vaultsearch/internal/logger"
	"vaultsearch/internal/metrics"
	"vaultsearch/internal/ports"
)

//go:embed templates/*.html
var templateFS embed.FS

const shutdownTimeout = 5 * time.Second

// Deps are the collaborators the server drives
type Deps struct {
	Guard   ports.PathGuard
	Lister  ports.DirectoryLister
	Crawler ports.VaultCrawler
	Store   ports.IndexStore
	Links   ports.LinkBuilder
	Metrics *metrics.Metrics
	Log     *logger.Logger
}

// Server is the HTTP front end
type Server struct {
	deps     Deps
	log      *logger.Logger
	pages    *template.Template
	markdown goldmark.Markdown
	handler  http.Handler
}

// NewServer creates a server and registers its routes
func NewServer(deps Deps) (*Server, error) {
	pages, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}

	if deps.Log == nil {
		deps.Log = logger.Nop()
	}
	if deps.Metrics == nil {
		deps.Metrics = metrics.New()
	}

	s := &Server{
		deps:     deps,
		log:      deps.Log.Component("http"),
		pages:    pages,
		markdown: goldmark.New(),
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", s.handleHome)
	mux.HandleFunc("GET /api/ls", s.handleList)
	mux.HandleFunc("POST /api/set_vault", s.handleSetVault)
	mux.HandleFunc("GET /api/search", s.handleSearch)
	mux.HandleFunc("GET /api/vault", s.handleVault)
	mux.HandleFunc("GET /open", s.handleOpen)
	mux.Handle("GET /metrics", deps.Metrics.Handler())

	s.handler = withRequestID(s.withObservability(mux))
	return s, nil
}

// Handler returns the root handler with middleware applied
func (s *Server) Handler() http.Handler {
	return s.handler
}

// ListenAndServe serves on addr until ctx is cancelled, then shuts down gracefully
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:         addr,
		Handler:      s.handler,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	s.log.LogServerStart(addr, s.deps.Guard.Root(), s.deps.Guard.AllowAny())

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("http server failed: %w", err)
	case <-ctx.Done():
	}

	s.log.LogServerShutdown()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http shutdown failed: %w", err)
	}
	return nil
}
