package source

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/couchcryptid/temperature-heatmap-service/internal/domain"
	"github.com/couchcryptid/temperature-heatmap-service/internal/observability"
	"github.com/jonboulle/clockwork"
)

// maxBodyBytes caps the dataset download. The published document is ~300 KB.
const maxBodyBytes = 16 << 20

// Client fetches the global-temperature dataset over HTTP.
// It implements pipeline.Extractor.
type Client struct {
	url        string
	httpClient *http.Client
	clock      clockwork.Clock
	metrics    *observability.Metrics
	logger     *slog.Logger
}

// NewClient creates a dataset client for url.
func NewClient(url string, timeout time.Duration, metrics *observability.Metrics, logger *slog.Logger) *Client {
	return &Client{
		url: url,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		clock:   clockwork.NewRealClock(),
		metrics: metrics,
		logger:  logger,
	}
}

// Extract performs a single GET of the dataset and validates it.
// There is no retry: a failure is returned to the caller as-is.
func (c *Client) Extract(ctx context.Context) (domain.Dataset, error) {
	start := c.clock.Now()
	ds, err := c.fetch(ctx)
	c.metrics.FetchDuration.Observe(c.clock.Since(start).Seconds())

	if err != nil {
		c.metrics.FetchTotal.WithLabelValues("error").Inc()
		return domain.Dataset{}, err
	}
	c.metrics.FetchTotal.WithLabelValues("success").Inc()
	c.logger.Info("dataset fetched",
		"url", c.url,
		"observations", len(ds.MonthlyVariance),
		"base_temperature", ds.BaseTemperature,
	)
	return ds, nil
}

func (c *Client) fetch(ctx context.Context) (domain.Dataset, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return domain.Dataset{}, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return domain.Dataset{}, fmt.Errorf("fetch dataset: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return domain.Dataset{}, fmt.Errorf("dataset source error: status %d: %s", resp.StatusCode, body)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return domain.Dataset{}, fmt.Errorf("read dataset: %w", err)
	}

	ds, err := domain.ParseDataset(data)
	if err != nil {
		return domain.Dataset{}, fmt.Errorf("decode dataset: %w", err)
	}
	return ds, nil
}
