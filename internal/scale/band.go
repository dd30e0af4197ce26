// Package scale maps data values onto screen coordinates and colours.
//
// Three scale kinds are provided, each immutable once built:
//
//   - [Band]: discrete domain onto equal-width contiguous bands (year and month axes).
//   - [Quantize]: continuous domain onto a fixed set of outputs by equal-width bucketing (cell colour).
//   - [Linear]: continuous domain onto a continuous range (legend tick placement).
package scale

// Band maps a discrete domain onto equal-width contiguous bands with no
// padding between them.
type Band[T comparable] struct {
	domain []T
	index  map[T]int
	start  float64
	step   float64
}

// NewBand builds a band scale over values spanning [start, stop]. Values keep
// the order of their first occurrence; repeats are ignored.
func NewBand[T comparable](values []T, start, stop float64) *Band[T] {
	b := &Band[T]{
		index: make(map[T]int, len(values)),
		start: start,
	}
	for _, v := range values {
		if _, ok := b.index[v]; ok {
			continue
		}
		b.index[v] = len(b.domain)
		b.domain = append(b.domain, v)
	}
	if len(b.domain) > 0 {
		b.step = (stop - start) / float64(len(b.domain))
	}
	return b
}

// Position returns the start offset of v's band. The second result is false
// when v is not in the domain.
func (b *Band[T]) Position(v T) (float64, bool) {
	i, ok := b.index[v]
	if !ok {
		return 0, false
	}
	return b.start + float64(i)*b.step, true
}

// Center returns the midpoint of v's band.
func (b *Band[T]) Center(v T) (float64, bool) {
	p, ok := b.Position(v)
	if !ok {
		return 0, false
	}
	return p + b.step/2, true
}

// Bandwidth is the width of every band.
func (b *Band[T]) Bandwidth() float64 {
	return b.step
}

// Domain returns a copy of the domain in band order.
func (b *Band[T]) Domain() []T {
	out := make([]T, len(b.domain))
	copy(out, b.domain)
	return out
}

// Len is the number of bands.
func (b *Band[T]) Len() int {
	return len(b.domain)
}
