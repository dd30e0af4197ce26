package httpadapter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"math"
	"net/http"
	"strconv"
	"time"

	sharedobs "github.com/couchcryptid/storm-data-shared/observability"
	"github.com/couchcryptid/temperature-heatmap-service/internal/render"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// ChartSource provides the most recently rendered chart, or nil before the
// first render has completed.
type ChartSource interface {
	Chart() *render.Chart
}

// Server exposes the rendered heat map plus health, readiness, and metrics
// HTTP endpoints.
type Server struct {
	httpServer *http.Server
	charts     ChartSource
	logger     *slog.Logger
}

// NewServer creates an HTTP server with the chart routes and /healthz,
// /readyz, and /metrics.
func NewServer(addr string, charts ChartSource, ready sharedobs.ReadinessChecker, logger *slog.Logger) *Server {
	mux := http.NewServeMux()

	s := &Server{
		httpServer: &http.Server{
			Addr:         addr,
			Handler:      mux,
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 10 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		charts: charts,
		logger: logger,
	}

	mux.HandleFunc("GET /{$}", s.handlePage)
	mux.HandleFunc("GET /heatmap.svg", s.handleSVG)
	mux.HandleFunc("GET /api/cells/{year}/{month}", s.handleCell)
	mux.HandleFunc("GET /healthz", sharedobs.LivenessHandler())
	mux.HandleFunc("GET /readyz", sharedobs.ReadinessHandler(ready))
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

func (s *Server) handlePage(w http.ResponseWriter, _ *http.Request) {
	chart := s.charts.Chart()
	if chart == nil {
		http.Error(w, "heat map not rendered yet", http.StatusServiceUnavailable)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := chart.WritePage(w); err != nil {
		s.logger.Error("write page", "chart_id", chart.ID, "error", err)
	}
}

func (s *Server) handleSVG(w http.ResponseWriter, _ *http.Request) {
	chart := s.charts.Chart()
	if chart == nil {
		http.Error(w, "heat map not rendered yet", http.StatusServiceUnavailable)
		return
	}
	w.Header().Set("Content-Type", "image/svg+xml")
	if err := chart.WriteSVG(w); err != nil {
		s.logger.Error("write svg", "chart_id", chart.ID, "error", err)
	}
}

type cellResponse struct {
	Cell    render.Cell    `json:"cell"`
	Tooltip render.Tooltip `json:"tooltip"`
	HTML    string         `json:"html"`
}

// handleCell returns a cell and the tooltip a hover over it would show.
// Optional x and y query parameters are the pointer's page coordinates.
func (s *Server) handleCell(w http.ResponseWriter, r *http.Request) {
	chart := s.charts.Chart()
	if chart == nil {
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{"error": "heat map not rendered yet"})
		return
	}

	year, err := strconv.Atoi(r.PathValue("year"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "year must be an integer"})
		return
	}
	month, err := strconv.Atoi(r.PathValue("month"))
	if err != nil || month < 0 || month > 11 {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "month must be an integer in 0-11"})
		return
	}
	pageX, errX := queryFloat(r, "x")
	pageY, errY := queryFloat(r, "y")
	if errX != nil || errY != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "x and y must be numbers"})
		return
	}

	cell, ok := chart.Cell(year, month)
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "no observation for " + render.CellKey(year, month)})
		return
	}

	var tip render.Tooltip
	tip.Enter(cell, pageX, pageY)
	writeJSON(w, http.StatusOK, cellResponse{Cell: cell, Tooltip: tip, HTML: tip.HTML()})
}

// queryFloat parses an optional finite number from the query string.
func queryFloat(r *http.Request, name string) (float64, error) {
	v := r.URL.Query().Get(name)
	if v == "" {
		return 0, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("%s is not finite", name)
	}
	return f, nil
}

// writeJSON encodes v before writing the status so an encode failure can
// still be reported as a 500.
func writeJSON(w http.ResponseWriter, status int, v any) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(v); err != nil {
		status = http.StatusInternalServerError
		buf.Reset()
		buf.WriteString(`{"error":"encode response"}` + "\n")
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(buf.Bytes()) //nolint:errcheck // best-effort response
}
