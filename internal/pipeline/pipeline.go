package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync/atomic"

	"github.com/couchcryptid/temperature-heatmap-service/internal/domain"
	"github.com/couchcryptid/temperature-heatmap-service/internal/observability"
	"github.com/couchcryptid/temperature-heatmap-service/internal/render"
	"github.com/jonboulle/clockwork"
)

// Extractor loads the dataset.
type Extractor interface {
	Extract(ctx context.Context) (domain.Dataset, error)
}

// Renderer turns a dataset into a chart.
type Renderer interface {
	Render(ds domain.Dataset) (*render.Chart, error)
}

// Publisher delivers a rendered chart to an external sink.
type Publisher interface {
	Name() string
	Publish(ctx context.Context, chart *render.Chart) error
}

// Pipeline runs the one-shot fetch, render, publish sequence and holds the
// resulting chart for readers.
type Pipeline struct {
	extractor  Extractor
	renderer   Renderer
	publishers []Publisher
	logger     *slog.Logger
	metrics    *observability.Metrics
	clock      clockwork.Clock
	chart      atomic.Pointer[render.Chart]
}

// New creates a Pipeline with the given stages and observability.
func New(e Extractor, r Renderer, publishers []Publisher, logger *slog.Logger, metrics *observability.Metrics) *Pipeline {
	return &Pipeline{
		extractor:  e,
		renderer:   r,
		publishers: publishers,
		logger:     logger,
		metrics:    metrics,
		clock:      clockwork.NewRealClock(),
	}
}

// CheckReadiness returns nil once a chart has been rendered, or an error
// describing why the service is not yet ready.
func (p *Pipeline) CheckReadiness(_ context.Context) error {
	if p.chart.Load() == nil {
		return errors.New("heat map has not been rendered yet")
	}
	return nil
}

// Chart returns the rendered chart, or nil before Run has succeeded.
func (p *Pipeline) Chart() *render.Chart {
	return p.chart.Load()
}

// Run fetches the dataset once and renders it. A fetch or render failure is
// returned and leaves the pipeline unready; there is no retry. Publisher
// failures are logged and counted but do not fail the run.
func (p *Pipeline) Run(ctx context.Context) error {
	p.logger.Info("pipeline started", "publishers", len(p.publishers))

	ds, err := p.extractor.Extract(ctx)
	if err != nil {
		return fmt.Errorf("extract dataset: %w", err)
	}

	start := p.clock.Now()
	chart, err := p.renderer.Render(ds)
	if err != nil {
		return fmt.Errorf("render chart: %w", err)
	}
	p.metrics.RenderDuration.Observe(p.clock.Since(start).Seconds())
	p.metrics.CellsRendered.Set(float64(len(chart.Cells)))

	p.chart.Store(chart)
	p.metrics.PipelineReady.Set(1)
	p.logger.Info("chart rendered",
		"chart_id", chart.ID,
		"cells", len(chart.Cells),
		"first_year", chart.FirstYear,
		"last_year", chart.LastYear,
	)

	p.publish(ctx, chart)
	return nil
}

func (p *Pipeline) publish(ctx context.Context, chart *render.Chart) {
	for _, pub := range p.publishers {
		if ctx.Err() != nil {
			return
		}
		if err := pub.Publish(ctx, chart); err != nil {
			p.logger.Error("publish failed", "sink", pub.Name(), "chart_id", chart.ID, "error", err)
			p.metrics.PublishTotal.WithLabelValues(pub.Name(), "error").Inc()
			continue
		}
		p.metrics.PublishTotal.WithLabelValues(pub.Name(), "success").Inc()
		p.logger.Info("chart published", "sink", pub.Name(), "chart_id", chart.ID)
	}
}
