package render

import (
	"testing"

	"github.com/couchcryptid/temperature-heatmap-service/internal/domain"
	"github.com/couchcryptid/temperature-heatmap-service/internal/svg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLegend_ThresholdScenario(t *testing.T) {
	ds := domain.Dataset{
		BaseTemperature: 0,
		MonthlyVariance: []domain.Observation{
			{Year: 1900, Month: 1, Variance: -5},
			{Year: 1900, Month: 2, Variance: 10},
		},
	}
	chart := renderTest(t, ds)

	thresholds := chart.Scales.Color.Thresholds()
	require.Len(t, thresholds, 8)
	for i := 1; i < len(thresholds); i++ {
		assert.InDelta(t, 15.0/9.0, thresholds[i]-thresholds[i-1], 1e-9)
	}

	legend := chart.Document.FindID("legend")
	require.NotNil(t, legend)

	var swatches []*svg.Element
	for _, child := range legend.Children {
		if child.Tag == "rect" {
			swatches = append(swatches, child)
		}
	}
	require.Len(t, swatches, 9)
	palette := Palette()
	for i, s := range swatches {
		assert.Equal(t, palette[i], attr(t, s, "fill"))
		assert.InDelta(t, 400.0/9.0, attrFloat(t, s, "width"), 1e-9)
		assert.InDelta(t, float64(i)*400.0/9.0, attrFloat(t, s, "x"), 1e-9)
		assert.Equal(t, "30", attr(t, s, "height"))
	}

	var labels []string
	for _, text := range legend.FindAll(svg.ByTag("text")) {
		labels = append(labels, text.Text)
	}
	assert.Equal(t, []string{"−3.3", "−1.7", "0.0", "1.7", "3.3", "5.0", "6.7", "8.3"}, labels)
}

func TestLegend_SwatchCountIndependentOfDomain(t *testing.T) {
	for _, spread := range []float64{0.01, 1, 250} {
		ds := domain.Dataset{
			BaseTemperature: 8,
			MonthlyVariance: []domain.Observation{
				{Year: 2000, Month: 1, Variance: 0},
				{Year: 2000, Month: 2, Variance: spread},
			},
		}
		chart := renderTest(t, ds)

		legend := chart.Document.FindID("legend")
		rects := 0
		for _, child := range legend.Children {
			if child.Tag == "rect" {
				rects++
			}
		}
		assert.Equal(t, 9, rects, "spread %v", spread)
	}
}

func TestLegend_TicksAtThresholdPositions(t *testing.T) {
	chart := renderTest(t, fullDataset(1900, 1910))

	ticks := chart.Document.FindID("legend").FindAll(svg.ByClass("tick"))
	require.Len(t, ticks, 8)
	for i, tk := range ticks {
		x := chart.Scales.Legend.Map(chart.Scales.Color.Thresholds()[i])
		assert.Equal(t, "translate("+svg.FormatFloat(x)+",0)", attr(t, tk, "transform"))
	}
}

func TestPalette_ColdToHot(t *testing.T) {
	p := Palette()

	require.Len(t, p, 9)
	assert.Equal(t, "#4575b4", p[0])
	assert.Equal(t, "#ffffbf", p[4])
	assert.Equal(t, "#d73027", p[8])
}
