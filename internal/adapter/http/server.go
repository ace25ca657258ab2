// Package http serves the dashboard page, its JSON API, and the operational
// endpoints. The browser-side widget framework (Plotly.js plus the embedded
// page's controls) owns the event loop; this adapter only translates its
// input events into calls on the visualization service.
package http

import (
	"context"
	"embed"
	"encoding/json"
	"html/template"
	"log/slog"
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/couchcryptid/omni-storm-viz/internal/domain"
	"github.com/couchcryptid/omni-storm-viz/internal/render"
	"github.com/couchcryptid/omni-storm-viz/internal/viz"
)

//go:embed templates/index.html.tmpl
var templateFS embed.FS

// DashboardService is what the HTTP surface needs from the visualization core.
type DashboardService interface {
	CheckReadiness(ctx context.Context) error
	Meta() viz.Meta
	Figure(year int, maxMagnitude float64) render.Figure
	DescribeClick(p domain.SelectedPoint) string
	CurrentSelection() string
}

// Server exposes the dashboard, JSON API, health, readiness, and metrics
// endpoints.
type Server struct {
	httpServer *http.Server
	svc        DashboardService
	page       *template.Template
	logger     *slog.Logger
}

// NewServer creates the HTTP server with all routes registered.
func NewServer(addr string, svc DashboardService, logger *slog.Logger) *Server {
	mux := http.NewServeMux()

	s := &Server{
		httpServer: &http.Server{
			Addr:         addr,
			Handler:      mux,
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 10 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		svc:    svc,
		page:   template.Must(template.ParseFS(templateFS, "templates/index.html.tmpl")),
		logger: logger,
	}

	mux.HandleFunc("GET /{$}", s.handleIndex)
	mux.HandleFunc("GET /api/meta", s.handleMeta)
	mux.HandleFunc("GET /api/figure", s.handleFigure)
	mux.HandleFunc("GET /api/selection", s.handleSelectionGet)
	mux.HandleFunc("POST /api/selection", s.handleSelectionPost)
	mux.HandleFunc("GET /healthz", s.handleHealth)
	mux.HandleFunc("GET /readyz", s.handleReady)
	mux.Handle("GET /metrics", promhttp.Handler())

	return s
}

// Start begins listening. Returns http.ErrServerClosed on graceful shutdown.
func (s *Server) Start() error {
	s.logger.Info("http server starting", "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully drains connections within the given context deadline.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// ServeHTTP delegates to the underlying handler, useful for testing.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.httpServer.Handler.ServeHTTP(w, r)
}

func (s *Server) handleIndex(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.page.Execute(w, map[string]string{
		"Title": "3D Geomagnetic Storm Data",
	}); err != nil {
		s.logger.Error("render dashboard page", "error", err)
	}
}

func (s *Server) handleMeta(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.svc.Meta())
}

func (s *Server) handleFigure(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	year, err := strconv.Atoi(q.Get("year"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{
			"error": "year must be an integer",
		})
		return
	}

	maxMagnitude := math.Inf(1)
	if v := q.Get("max_magnitude"); v != "" {
		maxMagnitude, err = strconv.ParseFloat(v, 64)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{
				"error": "max_magnitude must be a number",
			})
			return
		}
	}

	writeJSON(w, http.StatusOK, s.svc.Figure(year, maxMagnitude))
}

func (s *Server) handleSelectionGet(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"description": s.svc.CurrentSelection(),
	})
}

func (s *Server) handleSelectionPost(w http.ResponseWriter, r *http.Request) {
	var p domain.SelectedPoint
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{
			"error": "invalid selection payload",
		})
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"description": s.svc.DescribeClick(p),
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}

func (s *Server) handleReady(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if err := s.svc.CheckReadiness(ctx); err != nil {
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{
			"status": "not ready",
			"error":  err.Error(),
		})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ready"})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck // best-effort response body
}
