package render

import (
	"strconv"

	"github.com/couchcryptid/temperature-heatmap-service/internal/domain"
	"github.com/couchcryptid/temperature-heatmap-service/internal/svg"
)

// Cell is the rendered geometry and reading of one observation.
type Cell struct {
	Year        int     `json:"year"`
	Month       int     `json:"month"` // 0-indexed
	Temperature float64 `json:"temperature"`
	Variance    float64 `json:"variance"`
	Bucket      int     `json:"bucket"`
	Color       string  `json:"color"`

	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Key identifies a cell as "<year>-<MM>" with a 0-indexed, zero-padded month.
func (c Cell) Key() string {
	return CellKey(c.Year, c.Month)
}

// CellKey formats the identity of the cell at (year, month).
func CellKey(year, month int) string {
	m := strconv.Itoa(month)
	if month >= 0 && month < 10 {
		m = "0" + m
	}
	return strconv.Itoa(year) + "-" + m
}

// DrawCells appends one rect.cell per observation and returns the cells in
// observation order. Observations whose year or month falls outside the
// scales are skipped.
func DrawCells(surface *svg.Element, ds domain.Dataset, s Scales) []Cell {
	cells := make([]Cell, 0, len(ds.MonthlyVariance))
	w, h := s.Year.Bandwidth(), s.Month.Bandwidth()

	for _, o := range ds.MonthlyVariance {
		x, okX := s.Year.Position(o.Year)
		y, okY := s.Month.Position(o.MonthIndex())
		if !okX || !okY {
			continue
		}
		temp := ds.Temperature(o)
		c := Cell{
			Year:        o.Year,
			Month:       o.MonthIndex(),
			Temperature: temp,
			Variance:    o.Variance,
			Bucket:      s.Color.Bucket(temp),
			Color:       s.Color.Map(temp),
			X:           x,
			Y:           y,
			Width:       w,
			Height:      h,
		}
		cells = append(cells, c)

		surface.Append("rect").
			Set("class", "cell").
			SetInt("data-month", c.Month).
			SetInt("data-year", c.Year).
			SetFloat("data-temp", c.Temperature).
			SetFloat("data-variance", c.Variance).
			SetFloat("x", c.X).
			SetFloat("y", c.Y).
			SetFloat("width", c.Width).
			SetFloat("height", c.Height).
			Set("fill", c.Color)
	}
	return cells
}
