package domain

import "time"

// Observation is one month's temperature offset from the dataset baseline.
type Observation struct {
	Year     int     `json:"year"`
	Month    int     `json:"month"`    // 1-12, as in the source
	Variance float64 `json:"variance"` // °C offset from BaseTemperature
}

// MonthIndex returns the 0-indexed calendar month (0 = January).
func (o Observation) MonthIndex() int {
	return o.Month - 1
}

// Dataset is the parsed global-temperature document.
type Dataset struct {
	BaseTemperature float64       `json:"baseTemperature"`
	MonthlyVariance []Observation `json:"monthlyVariance"`
}

// Temperature returns the derived absolute temperature of an observation.
func (d Dataset) Temperature(o Observation) float64 {
	return d.BaseTemperature + o.Variance
}

// Temperatures returns the derived temperature of every observation, in order.
func (d Dataset) Temperatures() []float64 {
	temps := make([]float64, len(d.MonthlyVariance))
	for i, o := range d.MonthlyVariance {
		temps[i] = d.Temperature(o)
	}
	return temps
}

// TemperatureRange returns the minimum and maximum derived temperature.
// Both are zero for an empty dataset.
func (d Dataset) TemperatureRange() (lo, hi float64) {
	for i, o := range d.MonthlyVariance {
		t := d.Temperature(o)
		if i == 0 || t < lo {
			lo = t
		}
		if i == 0 || t > hi {
			hi = t
		}
	}
	return lo, hi
}

// Years returns the distinct years in order of first occurrence.
func (d Dataset) Years() []int {
	seen := make(map[int]struct{})
	years := make([]int, 0, len(d.MonthlyVariance)/12+1)
	for _, o := range d.MonthlyVariance {
		if _, ok := seen[o.Year]; ok {
			continue
		}
		seen[o.Year] = struct{}{}
		years = append(years, o.Year)
	}
	return years
}

// YearSpan returns the smallest and largest year present.
func (d Dataset) YearSpan() (first, last int) {
	for i, o := range d.MonthlyVariance {
		if i == 0 || o.Year < first {
			first = o.Year
		}
		if i == 0 || o.Year > last {
			last = o.Year
		}
	}
	return first, last
}

// MonthName returns the full English name for a 0-indexed month.
// Out-of-range indexes return an empty string.
func MonthName(index int) string {
	if index < 0 || index > 11 {
		return ""
	}
	return time.Month(index + 1).String()
}
