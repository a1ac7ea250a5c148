package schedule

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/katalvlaran/pulsegen/pgerrors"
)

// GridLengthUnit distinguishes how a GridLength's Value is interpreted.
type GridLengthUnit int

const (
	// Second is an absolute duration in seconds.
	Second GridLengthUnit = iota
	// Auto sizes the column to the measured content of its children.
	Auto
	// Star divides the space remaining after Second and Auto columns are
	// resolved, proportionally to Value, among all Star columns.
	Star
)

// GridLength is the declared width of one Grid column.
type GridLength struct {
	Value float64
	Unit  GridLengthUnit
}

// AutoLength returns the automatic-sizing GridLength.
func AutoLength() GridLength {
	return GridLength{Value: math.NaN(), Unit: Auto}
}

// StarLength returns a star GridLength with the given weight.
func StarLength(value float64) GridLength {
	return GridLength{Value: value, Unit: Star}
}

// AbsLength returns an absolute GridLength of value seconds.
func AbsLength(value float64) GridLength {
	return GridLength{Value: value, Unit: Second}
}

// ParseGridLength parses a column length, accepting "auto" (case
// insensitive), a trailing-"*" star weight ("*" meaning weight 1, "3*"
// meaning weight 3), or a plain float string interpreted as seconds.
func ParseGridLength(s string) (GridLength, error) {
	trimmed := strings.TrimSpace(s)
	if strings.EqualFold(trimmed, "auto") {
		return AutoLength(), nil
	}
	if strings.HasSuffix(trimmed, "*") {
		weightStr := strings.TrimSuffix(trimmed, "*")
		if weightStr == "" {
			return StarLength(1), nil
		}
		weight, err := strconv.ParseFloat(weightStr, 64)
		if err != nil {
			return GridLength{}, fmt.Errorf("ParseGridLength(%q): %w", s, pgerrors.ErrBadGridLength)
		}
		return StarLength(weight), nil
	}
	value, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return GridLength{}, fmt.Errorf("ParseGridLength(%q): %w", s, pgerrors.ErrBadGridLength)
	}
	return AbsLength(value), nil
}
