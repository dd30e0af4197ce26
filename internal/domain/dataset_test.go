package domain

import (
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
)

func testDataset() Dataset {
	return Dataset{
		BaseTemperature: 8.0,
		MonthlyVariance: []Observation{
			{Year: 1901, Month: 1, Variance: 0.25},
			{Year: 1900, Month: 1, Variance: -0.5},
			{Year: 1901, Month: 2, Variance: 1.5},
			{Year: 1900, Month: 2, Variance: -1.25},
		},
	}
}

func TestObservation_MonthIndex(t *testing.T) {
	assert.Equal(t, 0, Observation{Month: 1}.MonthIndex())
	assert.Equal(t, 11, Observation{Month: 12}.MonthIndex())
}

func TestDataset_Temperature(t *testing.T) {
	ds := testDataset()

	assert.InDelta(t, 7.5, ds.Temperature(ds.MonthlyVariance[1]), 1e-12)
	assert.InDeltaSlice(t, []float64{8.25, 7.5, 9.5, 6.75}, ds.Temperatures(), 1e-12)
}

func TestDataset_TemperatureRange(t *testing.T) {
	lo, hi := testDataset().TemperatureRange()
	assert.InDelta(t, 6.75, lo, 1e-12)
	assert.InDelta(t, 9.5, hi, 1e-12)

	lo, hi = Dataset{}.TemperatureRange()
	assert.Zero(t, lo)
	assert.Zero(t, hi)
}

func TestDataset_YearsKeepsFirstOccurrenceOrder(t *testing.T) {
	assert.Equal(t, []int{1901, 1900}, testDataset().Years())
}

func TestDataset_YearSpan(t *testing.T) {
	first, last := testDataset().YearSpan()
	assert.Equal(t, 1900, first)
	assert.Equal(t, 1901, last)
}

func TestMonthName(t *testing.T) {
	assert.Equal(t, "January", MonthName(0))
	assert.Equal(t, "December", MonthName(11))
	assert.Empty(t, MonthName(12))
	assert.Empty(t, MonthName(-1))
}

func TestNow_UsesInjectedClock(t *testing.T) {
	frozen := time.Date(2015, time.September, 1, 12, 0, 0, 0, time.UTC)
	SetClock(clockwork.NewFakeClockAt(frozen))
	t.Cleanup(func() { SetClock(nil) })

	assert.Equal(t, frozen, Now())
}
