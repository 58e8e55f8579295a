// Package server provides the development HTTP server for sitesearch.
package server

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/hyperjump/sitesearch/internal/catalog"
	"github.com/hyperjump/sitesearch/internal/config"
	"go.uber.org/zap"
)

// Server serves a built site, its search index and the search API.
type Server struct {
	catalog *catalog.Catalog
	site    *config.SiteConfig
	config  *config.ServerConfig
	logger  *zap.Logger
	server  *http.Server
}

// NewServer creates a server with the given dependencies.
func NewServer(
	cat *catalog.Catalog,
	site *config.SiteConfig,
	cfg *config.ServerConfig,
	logger *zap.Logger,
) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Server{
		catalog: cat,
		site:    site,
		config:  cfg,
		logger:  logger,
	}
}

// Router builds the HTTP handler tree.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))
	r.Use(middleware.Compress(5))

	r.Get("/health", s.handleHealth)
	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/search", s.handleSearch)
		r.Get("/fragment", s.handleFragment)
		r.Get("/status", s.handleStatus)
	})

	base := basePath(s.site.BaseURL)
	r.Get(base+"/search.json", s.handleIndex)
	static := s.staticHandler()
	if base == "" {
		r.Handle("/*", static)
	} else {
		r.Handle(base+"/*", http.StripPrefix(base, static))
		r.Get("/", func(w http.ResponseWriter, r *http.Request) {
			http.Redirect(w, r, base+"/", http.StatusFound)
		})
	}
	return r
}

// Start starts the HTTP server and blocks until it stops.
func (s *Server) Start() error {
	addr := fmt.Sprintf("%s:%d", s.config.Host, s.config.Port)
	s.server = &http.Server{
		Addr:              addr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	s.logger.Info("Starting server",
		zap.String("addr", addr),
		zap.String("site_dir", s.site.Dir),
		zap.String("baseurl", s.site.BaseURL))
	return s.server.ListenAndServe()
}

// Stop gracefully shuts down the server.
func (s *Server) Stop(ctx context.Context) error {
	if s.server != nil {
		return s.server.Shutdown(ctx)
	}
	return nil
}

// basePath reduces a base URL to the path prefix the site is served under,
// without a trailing slash. "https://host/blog/" and "/blog" both yield "/blog".
func basePath(baseURL string) string {
	p := baseURL
	if u, err := url.Parse(baseURL); err == nil && u.Host != "" {
		p = u.Path
	}
	p = strings.TrimRight(p, "/")
	if p != "" && !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	return p
}
