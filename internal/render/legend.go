package render

import "github.com/couchcryptid/temperature-heatmap-service/internal/svg"

const legendTickSize = 13

// DrawLegend appends #legend centred under the plot: one swatch per palette
// colour followed by an axis with a tick at every bucket threshold.
func DrawLegend(surface *svg.Element, s Scales, layout Layout) {
	colors := s.Color.Range()
	swatchWidth := layout.LegendWidth / float64(len(colors))

	legend := surface.Append("g").
		Set("id", "legend").
		Translate((layout.PlotWidth()-layout.LegendWidth)/2, layout.PlotHeight()+layout.LegendOffset)

	for i, c := range colors {
		legend.Append("rect").
			SetFloat("x", float64(i)*swatchWidth).
			SetFloat("y", 0).
			SetFloat("width", swatchWidth).
			SetFloat("height", layout.LegendHeight).
			Set("fill", c)
	}

	thresholds := s.Color.Thresholds()
	ticks := make([]tick, len(thresholds))
	for i, v := range thresholds {
		ticks[i] = tick{pos: s.Legend.Map(v), label: formatTick(v)}
	}

	axis := legend.Append("g").Translate(0, layout.LegendHeight)
	drawAxis(axis, orientBottom, 0, layout.LegendWidth, ticks, legendTickSize)
}
