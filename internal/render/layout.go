package render

// Margin is the space between the document edge and the plot area.
type Margin struct {
	Top, Right, Bottom, Left float64
}

// Layout fixes the pixel geometry of a rendered chart.
type Layout struct {
	Width  float64 // outer document width
	Height float64 // outer document height
	Margin Margin

	LegendWidth  float64
	LegendHeight float64
	LegendOffset float64 // gap between the plot bottom and the legend top
}

// DefaultLayout is a 1200x500 document with room for axes and the legend.
func DefaultLayout() Layout {
	return Layout{
		Width:        1200,
		Height:       500,
		Margin:       Margin{Top: 100, Right: 40, Bottom: 100, Left: 100},
		LegendWidth:  400,
		LegendHeight: 30,
		LegendOffset: 50,
	}
}

// PlotWidth is the width available to cells.
func (l Layout) PlotWidth() float64 {
	return l.Width - l.Margin.Left - l.Margin.Right
}

// PlotHeight is the height available to cells.
func (l Layout) PlotHeight() float64 {
	return l.Height - l.Margin.Top - l.Margin.Bottom
}
