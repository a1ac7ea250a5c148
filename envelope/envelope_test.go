package envelope_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/pulsegen/envelope"
	"github.com/katalvlaran/pulsegen/shape"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) <= 1e-9
}

func TestRectangularEnvelope(t *testing.T) {
	e := envelope.Envelope{Shape: nil, Width: 5e-9, Plateau: 0}
	got := e.Sample([]float64{-1e-9, 0, 2e-9, 4.999e-9, 5e-9, 6e-9})
	want := []float64{0, 1, 1, 1, 0, 0}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("index %d: got %v want %v", i, got[i], want[i])
		}
	}
}

func TestHannEnvelopeIsSymmetricAndPeaksAtCenter(t *testing.T) {
	e := envelope.Envelope{Shape: shape.Hann{}, Width: 10e-9, Plateau: 0}
	center := e.Width / 2
	got := e.Sample([]float64{0, center, e.Width})
	if got[0] != 0 {
		t.Fatalf("start = %v, want 0", got[0])
	}
	if !almostEqual(got[1], 1) {
		t.Fatalf("center = %v, want 1", got[1])
	}
	if got[2] != 0 {
		t.Fatalf("end = %v, want 0", got[2])
	}
}

func TestEnvelopeWithPlateauIsFlatInMiddle(t *testing.T) {
	e := envelope.Envelope{Shape: shape.Hann{}, Width: 4e-9, Plateau: 6e-9}
	if e.Duration() != 10e-9 {
		t.Fatalf("Duration() = %v, want 10e-9", e.Duration())
	}
	got := e.Sample([]float64{2e-9, 5e-9, 7.999e-9})
	for i, v := range got {
		if !almostEqual(v, 1) {
			t.Fatalf("plateau sample %d = %v, want 1", i, v)
		}
	}
}

func TestEnvelopeZeroOutsideDuration(t *testing.T) {
	e := envelope.Envelope{Shape: shape.Triangle{}, Width: 2e-9, Plateau: 1e-9}
	got := e.Sample([]float64{-1e-9, e.Duration(), 100e-9})
	for i, v := range got {
		if v != 0 {
			t.Fatalf("outside-duration sample %d = %v, want 0", i, v)
		}
	}
}
