package render

import (
	"fmt"
	"io"
	"time"

	"github.com/couchcryptid/temperature-heatmap-service/internal/domain"
	"github.com/couchcryptid/temperature-heatmap-service/internal/svg"
	"github.com/google/uuid"
)

// Chart is a fully rendered heat map. It is immutable once returned by Render.
type Chart struct {
	ID          string
	GeneratedAt time.Time
	Layout      Layout
	Document    *svg.Element
	Scales      Scales
	Cells       []Cell

	BaseTemperature float64
	FirstYear       int
	LastYear        int

	index map[string]int
}

// Draw builds the scales for ds and draws axes, cells and legend onto
// surface, whose origin is the top-left corner of the plot area.
func Draw(surface *svg.Element, ds domain.Dataset, layout Layout) (Scales, []Cell, error) {
	s, err := BuildScales(ds, layout)
	if err != nil {
		return Scales{}, nil, err
	}

	DrawAxes(surface, s, layout)
	cells := DrawCells(surface, ds, s)
	DrawLegend(surface, s, layout)

	return s, cells, nil
}

// Render creates the svg#heatmap document for ds and draws the chart into
// its margin-translated plot group.
func Render(ds domain.Dataset, layout Layout) (*Chart, error) {
	doc := svg.NewDocument(layout.Width, layout.Height).Set("id", "heatmap")
	plot := doc.Append("g").Translate(layout.Margin.Left, layout.Margin.Top)

	s, cells, err := Draw(plot, ds, layout)
	if err != nil {
		return nil, fmt.Errorf("render heat map: %w", err)
	}

	first, last := ds.YearSpan()
	c := &Chart{
		ID:              uuid.NewString(),
		GeneratedAt:     domain.Now(),
		Layout:          layout,
		Document:        doc,
		Scales:          s,
		Cells:           cells,
		BaseTemperature: ds.BaseTemperature,
		FirstYear:       first,
		LastYear:        last,
		index:           make(map[string]int, len(cells)),
	}
	for i, cell := range cells {
		c.index[cell.Key()] = i
	}
	return c, nil
}

// Cell looks up the cell at (year, 0-indexed month).
func (c *Chart) Cell(year, month int) (Cell, bool) {
	i, ok := c.index[CellKey(year, month)]
	if !ok {
		return Cell{}, false
	}
	return c.Cells[i], true
}

// WriteSVG writes the standalone SVG document.
func (c *Chart) WriteSVG(w io.Writer) error {
	if _, err := io.WriteString(w, `<?xml version="1.0" encoding="UTF-8"?>`+"\n"); err != nil {
		return err
	}
	return svg.Encode(w, c.Document)
}
