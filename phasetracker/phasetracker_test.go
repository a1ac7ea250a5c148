package phasetracker_test

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/katalvlaran/pulsegen/envelope"
	"github.com/katalvlaran/pulsegen/phasetracker"
)

func almostEqual(a, b, eps float64) bool {
	return math.Abs(a-b) <= eps
}

func TestShiftFreq_PreservesInstantaneousPhase(t *testing.T) {
	// Play immediately after a ShiftFrequency at the same time t: the
	// pulse's instantaneous carrier phase at t (recorded phase plus
	// FreqGlobal*t cycles) must equal what it would have been without the
	// shift.
	const t0 = 7e-9
	without := phasetracker.New([]float64{1e9})
	without.Play(0, envelope.Envelope{Width: 1e-9}, 0, 0, 1, 0, t0)

	withShift := phasetracker.New([]float64{1e9})
	withShift.ShiftFreq(0, 50e6, t0)
	withShift.Play(0, envelope.Envelope{Width: 1e-9}, 0, 0, 1, 0, t0)

	pulsesWithout := without.Finish()[0].Items()
	pulsesWith := withShift.Finish()[0].Items()

	atT0Without := pulsesWithout[0].Amp * cmplx.Rect(1, 2*math.Pi*pulsesWithout[0].FreqGlobal*t0)
	atT0With := pulsesWith[0].Amp * cmplx.Rect(1, 2*math.Pi*pulsesWith[0].FreqGlobal*t0)

	if !almostEqual(real(atT0Without), real(atT0With), 1e-9) ||
		!almostEqual(imag(atT0Without), imag(atT0With), 1e-9) {
		t.Fatalf("carrier at t0 differs: without=%v with=%v", atT0Without, atT0With)
	}
}

func TestShiftFreq_ChangesFreqGlobalForFuturePulses(t *testing.T) {
	tr := phasetracker.New([]float64{100e6})
	tr.ShiftFreq(0, 50e6, 0)
	tr.Play(0, envelope.Envelope{Width: 1e-9}, 0, 0, 1, 0, 10e-9)
	item := tr.Finish()[0].Items()[0]
	if !almostEqual(item.FreqGlobal, 150e6, 1e-3) {
		t.Fatalf("FreqGlobal = %v, want 150e6", item.FreqGlobal)
	}
}

func TestSetFreq_SetsAbsoluteDeltaFrequency(t *testing.T) {
	tr := phasetracker.New([]float64{0})
	tr.SetFreq(0, 10e6, 1e-9)
	tr.ShiftFreq(0, 5e6, 1e-9)
	tr.Play(0, envelope.Envelope{Width: 1e-9}, 0, 0, 1, 0, 2e-9)
	item := tr.Finish()[0].Items()[0]
	if !almostEqual(item.FreqGlobal, 15e6, 1e-3) {
		t.Fatalf("FreqGlobal = %v, want 15e6", item.FreqGlobal)
	}
}

func TestSwapPhase_SwapsAtEqualFrequency(t *testing.T) {
	tr := phasetracker.New([]float64{0, 0})
	tr.ShiftPhase(0, 0.25)
	tr.ShiftPhase(1, 0.75)
	tr.SwapPhase(0, 1, 5e-9)
	tr.Play(0, envelope.Envelope{Width: 1e-9}, 0, 0, 1, 0, 5e-9)
	tr.Play(1, envelope.Envelope{Width: 1e-9}, 0, 0, 1, 0, 5e-9)
	pulses := tr.Finish()

	// With equal base/delta frequencies the swap is an exact exchange.
	wantAmp0 := cmplx.Rect(1, 2*math.Pi*0.75)
	wantAmp1 := cmplx.Rect(1, 2*math.Pi*0.25)
	gotAmp0 := pulses[0].Items()[0].Amp
	gotAmp1 := pulses[1].Items()[0].Amp
	if cmplx.Abs(gotAmp0-wantAmp0) > 1e-9 {
		t.Fatalf("channel 0 amp = %v, want %v", gotAmp0, wantAmp0)
	}
	if cmplx.Abs(gotAmp1-wantAmp1) > 1e-9 {
		t.Fatalf("channel 1 amp = %v, want %v", gotAmp1, wantAmp1)
	}
}

func TestPlay_SkipsZeroAmplitude(t *testing.T) {
	tr := phasetracker.New([]float64{0})
	tr.Play(0, envelope.Envelope{Width: 1e-9}, 0, 0, 0, 0, 0)
	if tr.Finish()[0].Len() != 0 {
		t.Fatalf("expected zero-amplitude play to be skipped")
	}
}
