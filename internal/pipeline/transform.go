package pipeline

import (
	"log/slog"

	"github.com/couchcryptid/temperature-heatmap-service/internal/domain"
	"github.com/couchcryptid/temperature-heatmap-service/internal/render"
)

// ChartRenderer implements Renderer with a fixed layout.
type ChartRenderer struct {
	layout render.Layout
	logger *slog.Logger
}

// NewRenderer creates a ChartRenderer for layout.
func NewRenderer(layout render.Layout, logger *slog.Logger) *ChartRenderer {
	return &ChartRenderer{
		layout: layout,
		logger: logger,
	}
}

// Render draws ds with the renderer's layout.
func (r *ChartRenderer) Render(ds domain.Dataset) (*render.Chart, error) {
	chart, err := render.Render(ds, r.layout)
	if err != nil {
		return nil, err
	}

	lo, hi := chart.Scales.Color.Domain()
	r.logger.Debug("chart scales built",
		"years", chart.Scales.Year.Len(),
		"year_bandwidth", chart.Scales.Year.Bandwidth(),
		"temp_min", lo,
		"temp_max", hi,
		"degenerate", chart.Scales.Color.Degenerate(),
	)
	return chart, nil
}
