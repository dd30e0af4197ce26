package observability

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger_JSON(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(&buf, "info", "json")

	logger.Debug("hidden")
	logger.Info("chart rendered", "cells", 3153)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "chart rendered", entry["msg"])
	assert.Equal(t, "temperature-heatmap", entry["service"])
	assert.InDelta(t, 3153, entry["cells"], 0)
}

func TestNewLogger_TextDebug(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(&buf, "debug", "text")

	logger.Debug("fetching dataset", "url", "http://example.test")

	assert.Contains(t, buf.String(), "level=DEBUG")
	assert.Contains(t, buf.String(), "url=http://example.test")
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelWarn, parseLevel("WARN"))
	assert.Equal(t, slog.LevelError, parseLevel("error"))
	assert.Equal(t, slog.LevelInfo, parseLevel("bogus"))
}

func TestMetricsForTesting_Independent(t *testing.T) {
	a := NewMetricsForTesting()
	b := NewMetricsForTesting()

	a.FetchTotal.WithLabelValues("success").Inc()
	a.PublishTotal.WithLabelValues("s3", "error").Inc()

	assert.InDelta(t, 1, testutil.ToFloat64(a.FetchTotal.WithLabelValues("success")), 0)
	assert.InDelta(t, 0, testutil.ToFloat64(b.FetchTotal.WithLabelValues("success")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(a.PublishTotal.WithLabelValues("s3", "error")), 0)
}
