package domain

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
)

// ErrInvalidDataset is wrapped by every error ParseDataset returns.
var ErrInvalidDataset = errors.New("invalid dataset")

// EntryError reports a malformed monthlyVariance entry.
type EntryError struct {
	Index  int
	Reason string
}

func (e *EntryError) Error() string {
	return fmt.Sprintf("monthlyVariance[%d]: %s", e.Index, e.Reason)
}

func (e *EntryError) Unwrap() error { return ErrInvalidDataset }

// rawDataset mirrors the source document with pointer fields so that missing
// keys can be told apart from zero values.
type rawDataset struct {
	BaseTemperature *float64         `json:"baseTemperature"`
	MonthlyVariance []rawObservation `json:"monthlyVariance"`
}

type rawObservation struct {
	Year     *int     `json:"year"`
	Month    *int     `json:"month"`
	Variance *float64 `json:"variance"`
}

// ParseDataset decodes and validates a global-temperature document.
// Malformed entries are rejected here rather than surfacing during rendering.
func ParseDataset(data []byte) (Dataset, error) {
	var raw rawDataset
	if err := json.Unmarshal(data, &raw); err != nil {
		return Dataset{}, fmt.Errorf("%w: decode: %w", ErrInvalidDataset, err)
	}
	if raw.BaseTemperature == nil {
		return Dataset{}, fmt.Errorf("%w: baseTemperature is missing", ErrInvalidDataset)
	}
	if !finite(*raw.BaseTemperature) {
		return Dataset{}, fmt.Errorf("%w: baseTemperature is not finite", ErrInvalidDataset)
	}
	if len(raw.MonthlyVariance) == 0 {
		return Dataset{}, fmt.Errorf("%w: monthlyVariance is empty", ErrInvalidDataset)
	}

	obs := make([]Observation, len(raw.MonthlyVariance))
	for i, r := range raw.MonthlyVariance {
		o, err := r.validate(i)
		if err != nil {
			return Dataset{}, err
		}
		obs[i] = o
	}

	return Dataset{
		BaseTemperature: *raw.BaseTemperature,
		MonthlyVariance: obs,
	}, nil
}

func (r rawObservation) validate(i int) (Observation, error) {
	switch {
	case r.Year == nil:
		return Observation{}, &EntryError{Index: i, Reason: "year is missing"}
	case r.Month == nil:
		return Observation{}, &EntryError{Index: i, Reason: "month is missing"}
	case r.Variance == nil:
		return Observation{}, &EntryError{Index: i, Reason: "variance is missing"}
	case *r.Month < 1 || *r.Month > 12:
		return Observation{}, &EntryError{Index: i, Reason: fmt.Sprintf("month %d out of range 1-12", *r.Month)}
	case !finite(*r.Variance):
		return Observation{}, &EntryError{Index: i, Reason: "variance is not finite"}
	}
	return Observation{Year: *r.Year, Month: *r.Month, Variance: *r.Variance}, nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
