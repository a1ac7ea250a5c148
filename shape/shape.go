package shape

import "math"

// Shape evaluates a unit-normalized envelope profile on a sample grid. The
// result is zero outside the open interval (-0.5, 0.5), including at the
// two endpoints.
type Shape interface {
	// Sample returns shape(x[i]) for every i, without mutating x.
	Sample(x []float64) []float64
}

// inUnitSupport reports whether v lies strictly inside (-0.5, 0.5).
func inUnitSupport(v float64) bool {
	return v > -0.5 && v < 0.5
}

// Hann is the raised-cosine shape: 0.5*(1+cos(2*pi*x)) on its support.
type Hann struct{}

// Sample implements Shape.
func (Hann) Sample(x []float64) []float64 {
	out := make([]float64, len(x))
	for i, v := range x {
		if inUnitSupport(v) {
			out[i] = 0.5 * (1 + math.Cos(2*math.Pi*v))
		}
	}
	return out
}

// Triangle is the linear shape: 1-2*|x| on its support.
type Triangle struct{}

// Sample implements Shape.
func (Triangle) Sample(x []float64) []float64 {
	out := make([]float64, len(x))
	for i, v := range x {
		if inUnitSupport(v) {
			out[i] = 1 - 2*math.Abs(v)
		}
	}
	return out
}

// Interpolated is a shape built from a set of (x, y) support points via
// barycentric polynomial interpolation. xs must be sorted within
// [-0.5, 0.5] and have the same length as ys; use NewInterpolated to
// construct one (it precomputes barycentric weights once, for reuse across
// every Sample call in a compile).
type Interpolated struct {
	xs, ys  []float64
	weights []float64
}

// NewInterpolated builds an Interpolated shape from caller-owned,
// already-validated node arrays. Validation of the xs/ys contract (equal
// length, sorted, within range) is the caller's responsibility — see
// internal/validate.InterpolatedShape, invoked by the schedule/request
// layer before a shape ever reaches this constructor.
func NewInterpolated(xs, ys []float64) *Interpolated {
	n := len(xs)
	weights := make([]float64, n)
	for j := 0; j < n; j++ {
		w := 1.0
		for k := 0; k < n; k++ {
			if k != j {
				w *= xs[j] - xs[k]
			}
		}
		weights[j] = 1 / w
	}
	return &Interpolated{xs: xs, ys: ys, weights: weights}
}

// Sample implements Shape using the barycentric interpolation formula
//
//	p(x) = sum_j w_j/(x-x_j)*y_j / sum_j w_j/(x-x_j)
//
// with the usual special case when x coincides exactly with a node.
func (s *Interpolated) Sample(x []float64) []float64 {
	out := make([]float64, len(x))
	for i, v := range x {
		if !inUnitSupport(v) {
			continue
		}
		out[i] = s.evalOne(v)
	}
	return out
}

func (s *Interpolated) evalOne(x float64) float64 {
	var num, den float64
	for j, xj := range s.xs {
		d := x - xj
		if d == 0 {
			return s.ys[j]
		}
		term := s.weights[j] / d
		num += term * s.ys[j]
		den += term
	}
	if den == 0 {
		return 0
	}
	return num / den
}
