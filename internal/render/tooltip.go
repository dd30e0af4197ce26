package render

import (
	"fmt"
	"html"
	"strings"

	"github.com/couchcryptid/temperature-heatmap-service/internal/domain"
)

// Tooltip presentation constants, shared with the page script.
const (
	TooltipOpacity = 0.9
	TooltipOffsetX = 10
	TooltipOffsetY = -40
)

// TooltipState is the hover state of the tooltip element.
type TooltipState int

const (
	TooltipIdle TooltipState = iota
	TooltipShowing
)

func (s TooltipState) String() string {
	if s == TooltipShowing {
		return "showing"
	}
	return "idle"
}

// MarshalText encodes the state by name.
func (s TooltipState) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Tooltip models the single tooltip element. Leaving a cell hides it but
// keeps its last content and position, as the element stays in the page.
type Tooltip struct {
	State   TooltipState `json:"state"`
	Opacity float64      `json:"opacity"`
	Lines   []string     `json:"lines"`
	Left    float64      `json:"left"`
	Top     float64      `json:"top"`
	Year    int          `json:"data_year"`
}

// Enter shows the tooltip for c at the pointer's page coordinates.
func (t *Tooltip) Enter(c Cell, pageX, pageY float64) {
	t.State = TooltipShowing
	t.Opacity = TooltipOpacity
	t.Lines = TooltipLines(c)
	t.Year = c.Year
	t.Left = pageX + TooltipOffsetX
	t.Top = pageY + TooltipOffsetY
}

// Leave hides the tooltip.
func (t *Tooltip) Leave() {
	t.State = TooltipIdle
	t.Opacity = 0
}

// HTML renders the tooltip body: a bold heading line followed by the readings.
func (t *Tooltip) HTML() string {
	if len(t.Lines) == 0 {
		return ""
	}
	parts := make([]string, len(t.Lines))
	for i, l := range t.Lines {
		parts[i] = html.EscapeString(l)
	}
	parts[0] = "<strong>" + parts[0] + "</strong>"
	return strings.Join(parts, "<br>")
}

// TooltipLines returns the three tooltip lines for a cell.
func TooltipLines(c Cell) []string {
	return []string{
		fmt.Sprintf("%d - %s", c.Year, domain.MonthName(c.Month)),
		"Temp: " + toFixed(c.Temperature, 2) + "℃",
		"Variance: " + toFixed(c.Variance, 2) + "℃",
	}
}
