package render

import (
	"fmt"
	"strconv"

	"github.com/couchcryptid/temperature-heatmap-service/internal/domain"
	"github.com/couchcryptid/temperature-heatmap-service/internal/svg"
)

const (
	defaultTickSize = 6
	tickPadding     = 3
)

type orientation int

const (
	orientBottom orientation = iota
	orientLeft
)

// tick is one labelled mark along an axis.
type tick struct {
	pos   float64
	label string
}

// DrawAxes appends #x-axis along the plot bottom and #y-axis along its left edge.
func DrawAxes(surface *svg.Element, s Scales, layout Layout) {
	x := surface.Append("g").Set("id", "x-axis").Translate(0, layout.PlotHeight())
	drawAxis(x, orientBottom, 0, layout.PlotWidth(), yearTicks(s), defaultTickSize)

	y := surface.Append("g").Set("id", "y-axis")
	drawAxis(y, orientLeft, 0, layout.PlotHeight(), monthTicks(s), defaultTickSize)
}

// DecadeYears filters years down to those divisible by ten, keeping order.
func DecadeYears(years []int) []int {
	out := make([]int, 0, len(years)/10+1)
	for _, y := range years {
		if y%10 == 0 {
			out = append(out, y)
		}
	}
	return out
}

func yearTicks(s Scales) []tick {
	decades := DecadeYears(s.Year.Domain())
	ticks := make([]tick, 0, len(decades))
	for _, y := range decades {
		c, _ := s.Year.Center(y)
		ticks = append(ticks, tick{pos: c, label: strconv.Itoa(y)})
	}
	return ticks
}

func monthTicks(s Scales) []tick {
	ticks := make([]tick, 0, s.Month.Len())
	for _, m := range s.Month.Domain() {
		c, _ := s.Month.Center(m)
		ticks = append(ticks, tick{pos: c, label: domain.MonthName(m)})
	}
	return ticks
}

// drawAxis renders a domain line and ticks into g, following the usual
// bottom/left axis markup: g.tick > line + text.
func drawAxis(g *svg.Element, o orientation, start, stop float64, ticks []tick, size float64) {
	anchor := "middle"
	if o == orientLeft {
		anchor = "end"
	}
	g.Set("fill", "none").
		Set("font-size", "10").
		Set("font-family", "sans-serif").
		Set("text-anchor", anchor)

	domainPath := fmt.Sprintf("M%s,%sV0H%sV%s",
		svg.FormatFloat(start), svg.FormatFloat(size), svg.FormatFloat(stop), svg.FormatFloat(size))
	if o == orientLeft {
		domainPath = fmt.Sprintf("M%s,%sH0V%sH%s",
			svg.FormatFloat(-size), svg.FormatFloat(start), svg.FormatFloat(stop), svg.FormatFloat(-size))
	}
	g.Append("path").
		Set("class", "domain").
		Set("stroke", "currentColor").
		Set("d", domainPath)

	for _, tk := range ticks {
		t := g.Append("g").Set("class", "tick").Set("opacity", "1")
		line := t.Append("line").Set("stroke", "currentColor")
		text := t.Append("text").Set("fill", "currentColor").SetText(tk.label)

		switch o {
		case orientBottom:
			t.Translate(tk.pos, 0)
			line.SetFloat("y2", size)
			text.SetFloat("y", size+tickPadding).Set("dy", "0.71em")
		case orientLeft:
			t.Translate(0, tk.pos)
			line.SetFloat("x2", -size)
			text.SetFloat("x", -(size + tickPadding)).Set("dy", "0.32em")
		}
	}
}
