package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus counters, histograms, and gauges for the heat map pipeline.
type Metrics struct {
	FetchTotal    *prometheus.CounterVec // labels: outcome={success,error}
	FetchDuration prometheus.Histogram

	RenderDuration prometheus.Histogram
	CellsRendered  prometheus.Gauge
	PipelineReady  prometheus.Gauge

	PublishTotal *prometheus.CounterVec // labels: sink={s3,kafka}, outcome={success,error}
}

// NewMetrics creates and registers all pipeline metrics with the default Prometheus registry.
func NewMetrics() *Metrics {
	m := newMetrics()
	prometheus.MustRegister(
		m.FetchTotal,
		m.FetchDuration,
		m.RenderDuration,
		m.CellsRendered,
		m.PipelineReady,
		m.PublishTotal,
	)
	return m
}

// NewMetricsForTesting creates unregistered Metrics to avoid
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return newMetrics()
}

// NewUnregisteredMetrics creates Metrics for one-shot commands that do not
// expose a /metrics endpoint.
func NewUnregisteredMetrics() *Metrics {
	return newMetrics()
}

func newMetrics() *Metrics {
	return &Metrics{
		FetchTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "heatmap",
			Name:      "fetch_total",
			Help:      "Dataset fetches by outcome.",
		}, []string{"outcome"}),
		FetchDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "heatmap",
			Name:      "fetch_duration_seconds",
			Help:      "Duration of the dataset fetch, including decode and validation.",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		}),
		RenderDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "heatmap",
			Name:      "render_duration_seconds",
			Help:      "Duration of building scales and drawing the chart.",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
		}),
		CellsRendered: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "heatmap",
			Name:      "cells_rendered",
			Help:      "Number of cells in the current chart.",
		}),
		PipelineReady: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "heatmap",
			Name:      "pipeline_ready",
			Help:      "1 once a chart has been rendered, 0 otherwise.",
		}),
		PublishTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "heatmap",
			Name:      "publish_total",
			Help:      "Chart publications by sink and outcome.",
		}, []string{"sink", "outcome"}),
	}
}
