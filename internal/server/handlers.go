package server

import (
	"encoding/json"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/hyperjump/sitesearch/internal/models"
	"github.com/hyperjump/sitesearch/internal/render"
	"github.com/hyperjump/sitesearch/internal/storage"
	"github.com/hyperjump/sitesearch/internal/widget"
	"go.uber.org/zap"
)

// StateHeader carries the container state of a fragment response.
const StateHeader = "X-Search-State"

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	if !s.catalog.Loaded() {
		s.respondError(w, http.StatusServiceUnavailable, "search index not loaded")
		return
	}
	raw := r.URL.Query().Get("q")
	start := time.Now()
	f := widget.Evaluate(s.catalog.Snapshot(), models.NewQuery(raw))
	response := f.Response(raw)
	response.QueryTime = time.Since(start).Milliseconds()
	s.logger.Debug("search request",
		zap.String("query", raw),
		zap.String("state", response.State),
		zap.Int("total", response.Total))
	s.respondJSON(w, http.StatusOK, response)
}

func (s *Server) handleFragment(w http.ResponseWriter, r *http.Request) {
	status := http.StatusOK
	var f render.Fragment
	if s.catalog.Loaded() {
		f = widget.Evaluate(s.catalog.Snapshot(), models.NewQuery(r.URL.Query().Get("q")))
	} else {
		status = http.StatusServiceUnavailable
		f = render.Message(render.MessageIndexFailed)
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set(StateHeader, f.State.String())
	w.WriteHeader(status)
	_, _ = w.Write([]byte(f.HTML))
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	payload := s.catalog.Raw()
	if payload == nil {
		s.respondError(w, http.StatusNotFound, "search index not loaded")
		return
	}
	setNoCache(w)
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(payload)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	resp := map[string]interface{}{
		"loaded":     s.catalog.Loaded(),
		"index":      s.catalog.Info(),
		"index_path": s.site.IndexPath(),
		"site_dir":   s.site.Dir,
		"baseurl":    s.site.BaseURL,
	}
	usage, err := storage.DiskUsage(s.site.Dir)
	if err != nil {
		s.logger.Warn("status: disk usage failed", zap.Error(err))
	} else {
		resp["disk_usage"] = usage
	}
	s.respondJSON(w, http.StatusOK, resp)
}

// staticHandler serves the site directory without directory listings and
// with caching disabled.
func (s *Server) staticHandler() http.Handler {
	fs := http.FileServer(http.Dir(s.site.Dir))
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasSuffix(r.URL.Path, "/") && r.URL.Path != "/" {
			if _, err := os.Stat(filepath.Join(s.site.Dir, filepath.FromSlash(r.URL.Path), "index.html")); os.IsNotExist(err) {
				http.NotFound(w, r)
				return
			}
		}
		setNoCache(w)
		fs.ServeHTTP(w, r)
	})
}

func setNoCache(w http.ResponseWriter) {
	w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")
	w.Header().Set("Pragma", "no-cache")
	w.Header().Set("Expires", "0")
}

func (s *Server) respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

func (s *Server) respondError(w http.ResponseWriter, status int, message string) {
	s.respondJSON(w, status, map[string]string{"error": message})
}
