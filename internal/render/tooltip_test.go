package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTooltip_HoverScenario(t *testing.T) {
	cell := Cell{Year: 1900, Month: 0, Temperature: 8.0 + -0.5, Variance: -0.5}

	var tip Tooltip
	assert.Equal(t, TooltipIdle, tip.State)
	assert.Zero(t, tip.Opacity)

	tip.Enter(cell, 200, 300)

	assert.Equal(t, TooltipShowing, tip.State)
	assert.Equal(t, 0.9, tip.Opacity)
	assert.Equal(t, []string{"1900 - January", "Temp: 7.50℃", "Variance: -0.50℃"}, tip.Lines)
	assert.Equal(t, 210.0, tip.Left)
	assert.Equal(t, 260.0, tip.Top)
	assert.Equal(t, 1900, tip.Year)

	tip.Leave()

	assert.Equal(t, TooltipIdle, tip.State)
	assert.Zero(t, tip.Opacity)
	assert.Len(t, tip.Lines, 3, "content is kept while hidden")
}

func TestTooltip_PositiveVarianceKeepsPlainSign(t *testing.T) {
	lines := TooltipLines(Cell{Year: 2015, Month: 8, Temperature: 10.127, Variance: 1.467})

	assert.Equal(t, "2015 - September", lines[0])
	assert.Equal(t, "Temp: 10.13℃", lines[1])
	assert.Equal(t, "Variance: 1.47℃", lines[2])
}

func TestTooltip_ReenterMovesTooltip(t *testing.T) {
	var tip Tooltip
	tip.Enter(Cell{Year: 1900, Month: 0}, 0, 100)
	tip.Leave()
	tip.Enter(Cell{Year: 1950, Month: 11, Temperature: 9}, 50, 50)

	assert.Equal(t, TooltipShowing, tip.State)
	assert.Equal(t, "1950 - December", tip.Lines[0])
	assert.Equal(t, 60.0, tip.Left)
	assert.Equal(t, 10.0, tip.Top)
}

func TestTooltip_HTML(t *testing.T) {
	var tip Tooltip
	assert.Empty(t, tip.HTML())

	tip.Enter(Cell{Year: 1900, Month: 0, Temperature: 7.5, Variance: -0.5}, 0, 0)

	assert.Equal(t, "<strong>1900 - January</strong><br>Temp: 7.50℃<br>Variance: -0.50℃", tip.HTML())
}

func TestTooltipState_String(t *testing.T) {
	assert.Equal(t, "idle", TooltipIdle.String())
	assert.Equal(t, "showing", TooltipShowing.String())
}

func TestTooltipLines_TiesRoundAwayFromZero(t *testing.T) {
	tests := []struct {
		temp, variance    float64
		wantTemp, wantVar string
	}{
		{8.125, 0.125, "Temp: 8.13℃", "Variance: 0.13℃"},
		{8.375, -0.625, "Temp: 8.38℃", "Variance: -0.63℃"},
		{8.625, 1.125, "Temp: 8.63℃", "Variance: 1.13℃"},
	}
	for _, tt := range tests {
		lines := TooltipLines(Cell{Year: 1850, Month: 3, Temperature: tt.temp, Variance: tt.variance})
		assert.Equal(t, tt.wantTemp, lines[1])
		assert.Equal(t, tt.wantVar, lines[2])
	}
}
