// Command render fetches the global-temperature dataset once and writes the
// heat map to a file as a standalone HTML page or SVG document.
//
// Usage:
//
//	go run ./cmd/render -out heatmap.html
//	go run ./cmd/render -input internal/pipeline/testdata/global-temperature.json -format svg -out heatmap.svg
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/couchcryptid/temperature-heatmap-service/internal/adapter/source"
	"github.com/couchcryptid/temperature-heatmap-service/internal/config"
	"github.com/couchcryptid/temperature-heatmap-service/internal/domain"
	"github.com/couchcryptid/temperature-heatmap-service/internal/observability"
	"github.com/couchcryptid/temperature-heatmap-service/internal/pipeline"
	"github.com/couchcryptid/temperature-heatmap-service/internal/render"
)

func main() {
	sourceURL := flag.String("source", config.DefaultSourceURL, "dataset URL")
	input := flag.String("input", "", "read the dataset from a local file instead of -source")
	out := flag.String("out", "-", "output path, - for stdout")
	format := flag.String("format", "html", "output format: html or svg")
	timeout := flag.Duration("timeout", 30*time.Second, "fetch timeout")
	verbose := flag.Bool("v", false, "debug logging")
	flag.Parse()

	if *format != "html" && *format != "svg" {
		fmt.Fprintf(os.Stderr, "unknown format %q\n", *format)
		flag.Usage()
		os.Exit(2)
	}

	level := "info"
	if *verbose {
		level = "debug"
	}
	logger := observability.NewLogger(&config.Config{LogLevel: level, LogFormat: "text"})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, *sourceURL, *input, *out, *format, *timeout, logger); err != nil {
		logger.Error("render failed", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, sourceURL, input, out, format string, timeout time.Duration, logger *slog.Logger) error {
	ds, err := load(ctx, sourceURL, input, timeout, logger)
	if err != nil {
		return err
	}

	chart, err := pipeline.NewRenderer(render.DefaultLayout(), logger).Render(ds)
	if err != nil {
		return err
	}

	var w io.Writer = os.Stdout
	if out != "-" {
		f, err := os.Create(out)
		if err != nil {
			return fmt.Errorf("create output: %w", err)
		}
		defer f.Close()
		w = f
	}

	if format == "svg" {
		err = chart.WriteSVG(w)
	} else {
		err = chart.WritePage(w)
	}
	if err != nil {
		return fmt.Errorf("write %s: %w", format, err)
	}

	logger.Info("heat map written",
		"out", out,
		"format", format,
		"cells", len(chart.Cells),
		"first_year", chart.FirstYear,
		"last_year", chart.LastYear,
	)
	return nil
}

func load(ctx context.Context, sourceURL, input string, timeout time.Duration, logger *slog.Logger) (domain.Dataset, error) {
	if input == "" {
		client := source.NewClient(sourceURL, timeout, observability.NewUnregisteredMetrics(), logger)
		return client.Extract(ctx)
	}

	data, err := os.ReadFile(input)
	if err != nil {
		return domain.Dataset{}, fmt.Errorf("read input: %w", err)
	}
	ds, err := domain.ParseDataset(data)
	if err != nil {
		return domain.Dataset{}, fmt.Errorf("decode dataset: %w", err)
	}
	return ds, nil
}
