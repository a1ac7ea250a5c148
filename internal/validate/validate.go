// Package validate holds small, composable fail-fast checks used by the
// schedule package's Validate methods. Each function returns a wrapped
// pgerrors sentinel on failure so callers can branch with errors.Is.
package validate

import (
	"fmt"
	"math"

	"github.com/katalvlaran/pulsegen/pgerrors"
)

// errorf wraps an underlying sentinel with a short validator tag, consistent
// across packages.
func errorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ChannelID checks that id is a valid index into a channel list of the
// given length.
func ChannelID(id int, numChannels int) error {
	if id < 0 || id >= numChannels {
		return errorf("ChannelID", fmt.Errorf("id %d out of [0,%d): %w", id, numChannels, pgerrors.ErrInvalidChannelID))
	}
	return nil
}

// ShapeID checks that id is -1 (rectangular) or a valid index into a shape
// list of the given length.
func ShapeID(id int, numShapes int) error {
	if id == -1 {
		return nil
	}
	if id < 0 || id >= numShapes {
		return errorf("ShapeID", fmt.Errorf("id %d out of [-1,%d): %w", id, numShapes, pgerrors.ErrInvalidShapeID))
	}
	return nil
}

// SampleRate checks that a channel's sample rate is strictly positive.
func SampleRate(rate float64) error {
	if !(rate > 0) {
		return errorf("SampleRate", fmt.Errorf("%g: %w", rate, pgerrors.ErrNonPositiveSampleRate))
	}
	return nil
}

// Length checks that a channel's declared sample length is non-negative.
func Length(length int) error {
	if length < 0 {
		return errorf("Length", fmt.Errorf("%d: %w", length, pgerrors.ErrNegativeLength))
	}
	return nil
}

// NotNaN checks a single geometry value (width, plateau, duration, margin,
// min_duration, ...) is not NaN.
func NotNaN(name string, v float64) error {
	if math.IsNaN(v) {
		return errorf("NotNaN", fmt.Errorf("%s is NaN: %w", name, pgerrors.ErrNaNGeometry))
	}
	return nil
}

// MinMaxDuration checks that minDuration <= maxDuration.
func MinMaxDuration(minDuration, maxDuration float64) error {
	if minDuration > maxDuration {
		return errorf("MinMaxDuration", fmt.Errorf("min %g > max %g: %w", minDuration, maxDuration, pgerrors.ErrMinExceedsMaxDuration))
	}
	return nil
}

// InterpolatedShape checks that xs and ys have equal length, xs is sorted,
// and every element of xs lies within [-0.5, 0.5].
func InterpolatedShape(xs, ys []float64) error {
	if len(xs) != len(ys) {
		return errorf("InterpolatedShape", fmt.Errorf("len(xs)=%d != len(ys)=%d: %w", len(xs), len(ys), pgerrors.ErrMalformedInterpolatedShape))
	}
	for i, x := range xs {
		if x < -0.5 || x > 0.5 {
			return errorf("InterpolatedShape", fmt.Errorf("xs[%d]=%g out of [-0.5,0.5]: %w", i, x, pgerrors.ErrMalformedInterpolatedShape))
		}
		if i > 0 && xs[i-1] > x {
			return errorf("InterpolatedShape", fmt.Errorf("xs not sorted at index %d: %w", i, pgerrors.ErrMalformedInterpolatedShape))
		}
	}
	return nil
}
