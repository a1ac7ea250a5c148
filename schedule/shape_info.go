package schedule

import "github.com/katalvlaran/pulsegen/internal/validate"

// ShapeInfo is the closed set of pulse envelope shape descriptors a
// Request can reference by index. It mirrors shape.Shape one level up: a
// Request carries descriptors, and the driver turns each descriptor into a
// concrete shape.Shape once at the start of a run.
type ShapeInfo interface {
	isShapeInfo()
}

// HannShape selects the raised-cosine (Hann) envelope.
type HannShape struct{}

func (HannShape) isShapeInfo() {}

// TriangleShape selects the piecewise-linear triangular envelope.
type TriangleShape struct{}

func (TriangleShape) isShapeInfo() {}

// InterpolatedShape selects a user-supplied envelope sampled at arbitrary
// points via barycentric interpolation. XS must be sorted and lie within
// [-0.5, 0.5]; YS must have the same length.
type InterpolatedShape struct {
	XS []float64
	YS []float64
}

func (InterpolatedShape) isShapeInfo() {}

// Validate checks the shape's own contract (InterpolatedShape's node
// arrays); the built-in shapes have nothing to validate.
func (s InterpolatedShape) Validate() error {
	return validate.InterpolatedShape(s.XS, s.YS)
}
