//go:build smoke

package source

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/couchcryptid/temperature-heatmap-service/internal/config"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// These tests fetch the live dataset and need network access.
// Run with: go test -tags=smoke ./internal/adapter/source/ -v -count=1

func TestSmoke_LiveDataset(t *testing.T) {
	c := testClient(config.DefaultSourceURL, 30*time.Second)
	c.clock = clockwork.NewRealClock()
	c.httpClient = &http.Client{Timeout: 30 * time.Second}

	ds, err := c.Extract(context.Background())
	require.NoError(t, err)

	assert.InDelta(t, 8.66, ds.BaseTemperature, 1e-9)
	first, last := ds.YearSpan()
	assert.Equal(t, 1753, first)
	assert.GreaterOrEqual(t, last, 2015)
	assert.Greater(t, len(ds.MonthlyVariance), 3000)
}
