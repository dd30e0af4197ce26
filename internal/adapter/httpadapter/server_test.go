package httpadapter_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/couchcryptid/temperature-heatmap-service/internal/adapter/httpadapter"
	"github.com/couchcryptid/temperature-heatmap-service/internal/domain"
	"github.com/couchcryptid/temperature-heatmap-service/internal/render"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockReadiness struct {
	err error
}

func (m *mockReadiness) CheckReadiness(_ context.Context) error { return m.err }

type staticCharts struct {
	chart *render.Chart
}

func (s staticCharts) Chart() *render.Chart { return s.chart }

func testChart(t *testing.T) *render.Chart {
	t.Helper()
	ds := domain.Dataset{
		BaseTemperature: 8.66,
		MonthlyVariance: []domain.Observation{
			{Year: 1753, Month: 1, Variance: -1.366},
			{Year: 1753, Month: 2, Variance: -2.223},
			{Year: 1754, Month: 1, Variance: 0.5},
		},
	}
	chart, err := render.Render(ds, render.DefaultLayout())
	require.NoError(t, err)
	return chart
}

func newTestServer(chart *render.Chart, readyErr error) *httpadapter.Server {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return httpadapter.NewServer(":0", staticCharts{chart: chart}, &mockReadiness{err: readyErr}, logger)
}

func get(t *testing.T, srv http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestHealthzReturns200(t *testing.T) {
	rec := get(t, newTestServer(nil, nil), "/healthz")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestReadyzReturns200WhenReady(t *testing.T) {
	rec := get(t, newTestServer(testChart(t), nil), "/readyz")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestReadyzReturns503WhenNotReady(t *testing.T) {
	rec := get(t, newTestServer(nil, errors.New("heat map has not been rendered yet")), "/readyz")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestMetricsEndpoint(t *testing.T) {
	rec := get(t, newTestServer(nil, nil), "/metrics")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "go_goroutines")
}

func TestPage(t *testing.T) {
	rec := get(t, newTestServer(testChart(t), nil), "/")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.HasPrefix(rec.Header().Get("Content-Type"), "text/html"))
	body := rec.Body.String()
	assert.Contains(t, body, `id="title"`)
	assert.Contains(t, body, `id="description"`)
	assert.Contains(t, body, `id="tooltip"`)
	assert.Contains(t, body, `<svg`)
}

func TestPage_NotRendered(t *testing.T) {
	rec := get(t, newTestServer(nil, nil), "/")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestPage_UnknownPathIs404(t *testing.T) {
	rec := get(t, newTestServer(testChart(t), nil), "/favicon.ico")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSVG(t *testing.T) {
	rec := get(t, newTestServer(testChart(t), nil), "/heatmap.svg")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/svg+xml", rec.Header().Get("Content-Type"))
	assert.True(t, strings.HasPrefix(rec.Body.String(), "<?xml"))
	assert.Contains(t, rec.Body.String(), `id="heatmap"`)
}

func TestSVG_NotRendered(t *testing.T) {
	rec := get(t, newTestServer(nil, nil), "/heatmap.svg")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestCell(t *testing.T) {
	rec := get(t, newTestServer(testChart(t), nil), "/api/cells/1753/0?x=200&y=300")
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Cell struct {
			Year        int     `json:"year"`
			Month       int     `json:"month"`
			Temperature float64 `json:"temperature"`
			Variance    float64 `json:"variance"`
		} `json:"cell"`
		Tooltip struct {
			State    string   `json:"state"`
			Opacity  float64  `json:"opacity"`
			Lines    []string `json:"lines"`
			Left     float64  `json:"left"`
			Top      float64  `json:"top"`
			DataYear int      `json:"data_year"`
		} `json:"tooltip"`
		HTML string `json:"html"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	assert.Equal(t, 1753, body.Cell.Year)
	assert.Equal(t, 0, body.Cell.Month)
	assert.InDelta(t, 7.294, body.Cell.Temperature, 1e-9)
	assert.InDelta(t, -1.366, body.Cell.Variance, 1e-9)

	assert.Equal(t, "showing", body.Tooltip.State)
	assert.InDelta(t, 0.9, body.Tooltip.Opacity, 1e-9)
	assert.Equal(t, []string{"1753 - January", "Temp: 7.29℃", "Variance: -1.37℃"}, body.Tooltip.Lines)
	assert.InDelta(t, 210, body.Tooltip.Left, 1e-9)
	assert.InDelta(t, 260, body.Tooltip.Top, 1e-9)
	assert.Equal(t, 1753, body.Tooltip.DataYear)
	assert.Contains(t, body.HTML, "<strong>1753 - January</strong>")
}

func TestCell_Errors(t *testing.T) {
	srv := newTestServer(testChart(t), nil)

	tests := []struct {
		name   string
		target string
		status int
	}{
		{"non-numeric year", "/api/cells/abc/0", http.StatusBadRequest},
		{"month out of range", "/api/cells/1753/12", http.StatusBadRequest},
		{"negative month", "/api/cells/1753/-1", http.StatusBadRequest},
		{"bad pointer", "/api/cells/1753/0?x=left", http.StatusBadRequest},
		{"NaN pointer", "/api/cells/1753/0?x=NaN", http.StatusBadRequest},
		{"infinite pointer", "/api/cells/1753/0?y=Inf", http.StatusBadRequest},
		{"negative infinite pointer", "/api/cells/1753/0?x=-Infinity", http.StatusBadRequest},
		{"overflowing pointer", "/api/cells/1753/0?x=1e400", http.StatusBadRequest},
		{"no observation", "/api/cells/1754/5", http.StatusNotFound},
		{"year outside data", "/api/cells/1900/0", http.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := get(t, srv, tt.target)
			assert.Equal(t, tt.status, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
		})
	}
}

func TestCell_NotRendered(t *testing.T) {
	rec := get(t, newTestServer(nil, nil), "/api/cells/1753/0")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}
