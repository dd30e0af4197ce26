package scale

import "sort"

// Quantize divides a continuous domain into len(outputs) equal-width buckets.
type Quantize[T any] struct {
	lo, hi     float64
	outputs    []T
	thresholds []float64
}

// NewQuantize builds a quantize scale over [lo, hi]. outputs must not be empty.
func NewQuantize[T any](lo, hi float64, outputs []T) *Quantize[T] {
	n := len(outputs)
	q := &Quantize[T]{
		lo:         lo,
		hi:         hi,
		outputs:    append([]T(nil), outputs...),
		thresholds: make([]float64, 0, max(n-1, 0)),
	}
	for i := 0; i < n-1; i++ {
		q.thresholds = append(q.thresholds, lo+float64(i+1)*(hi-lo)/float64(n))
	}
	return q
}

// Degenerate reports whether the domain has zero width.
func (q *Quantize[T]) Degenerate() bool {
	return q.hi <= q.lo
}

// Bucket returns the output index for v: the number of thresholds <= v.
// Values outside the domain clamp to the first or last bucket. A degenerate
// domain maps every value to the middle bucket.
func (q *Quantize[T]) Bucket(v float64) int {
	if q.Degenerate() {
		return len(q.outputs) / 2
	}
	return sort.Search(len(q.thresholds), func(i int) bool {
		return q.thresholds[i] > v
	})
}

// Map returns the output for v.
func (q *Quantize[T]) Map(v float64) T {
	return q.outputs[q.Bucket(v)]
}

// Thresholds returns the len(outputs)-1 interior bucket boundaries.
func (q *Quantize[T]) Thresholds() []float64 {
	return append([]float64(nil), q.thresholds...)
}

// Domain returns the [lo, hi] extent.
func (q *Quantize[T]) Domain() (lo, hi float64) {
	return q.lo, q.hi
}

// Range returns a copy of the outputs in bucket order.
func (q *Quantize[T]) Range() []T {
	return append([]T(nil), q.outputs...)
}
