package scale

// Linear maps [d0, d1] onto [r0, r1] by linear interpolation. Values outside
// the domain extrapolate.
type Linear struct {
	d0, d1 float64
	r0, r1 float64
}

// NewLinear builds a linear scale.
func NewLinear(d0, d1, r0, r1 float64) Linear {
	return Linear{d0: d0, d1: d1, r0: r0, r1: r1}
}

// Map returns the range value for v. A zero-width domain maps to the range midpoint.
func (l Linear) Map(v float64) float64 {
	span := l.d1 - l.d0
	t := 0.5
	if span != 0 {
		t = (v - l.d0) / span
	}
	return l.r0 + t*(l.r1-l.r0)
}
