package render

import (
	"errors"

	"github.com/couchcryptid/temperature-heatmap-service/internal/domain"
	"github.com/couchcryptid/temperature-heatmap-service/internal/scale"
)

// ErrEmptyDataset is returned when there is nothing to draw.
var ErrEmptyDataset = errors.New("dataset has no observations")

// Scales holds the four mappings a chart is drawn with.
type Scales struct {
	Year   *scale.Band[int]        // year -> x
	Month  *scale.Band[int]        // 0-indexed month -> y
	Color  *scale.Quantize[string] // temperature -> palette colour
	Legend scale.Linear            // temperature -> legend x
}

// BuildScales derives the chart scales from the full dataset.
func BuildScales(ds domain.Dataset, layout Layout) (Scales, error) {
	if len(ds.MonthlyVariance) == 0 {
		return Scales{}, ErrEmptyDataset
	}

	months := make([]int, 12)
	for i := range months {
		months[i] = i
	}
	lo, hi := ds.TemperatureRange()

	return Scales{
		Year:   scale.NewBand(ds.Years(), 0, layout.PlotWidth()),
		Month:  scale.NewBand(months, 0, layout.PlotHeight()),
		Color:  scale.NewQuantize(lo, hi, Palette()),
		Legend: scale.NewLinear(lo, hi, 0, layout.LegendWidth),
	}, nil
}
