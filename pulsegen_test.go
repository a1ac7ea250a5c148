package pulsegen_test

import (
	"context"
	"math"
	"testing"

	"github.com/katalvlaran/pulsegen"
	"github.com/katalvlaran/pulsegen/builder"
	"github.com/katalvlaran/pulsegen/schedule"
)

// TestRun_SingleRectangularPulse is end-to-end scenario 1: a single
// rectangular pulse spanning the whole 10-sample channel.
func TestRun_SingleRectangularPulse(t *testing.T) {
	req := builder.NewRequest()
	ch, _ := req.AddChannel("q0", 0, 2e9, 0, 10, 0)
	play := builder.Play(ch, -1, 5e-9, 0, 0, 0, 1, 0)
	root := builder.Absolute([]schedule.AbsoluteEntry{builder.At(0, play)})
	request := req.Build(root)

	waveforms, err := pulsegen.Run(context.Background(), &request)
	if err != nil {
		t.Fatalf("Run: unexpected error %v", err)
	}
	wave := waveforms["q0"]
	if len(wave.I) != 10 || len(wave.Q) != 10 {
		t.Fatalf("waveform length = %d/%d, want 10/10", len(wave.I), len(wave.Q))
	}
	for i, v := range wave.I {
		if math.Abs(v-1) > 1e-9 {
			t.Errorf("I[%d] = %g, want 1", i, v)
		}
	}
	for i, v := range wave.Q {
		if math.Abs(v) > 1e-9 {
			t.Errorf("Q[%d] = %g, want 0", i, v)
		}
	}
}

// TestRun_HannPulseAtMidChannel is end-to-end scenario 2: a Hann-shaped
// pulse centered at sample index 10 of a 20-sample channel, silent outside
// its support.
func TestRun_HannPulseAtMidChannel(t *testing.T) {
	req := builder.NewRequest()
	ch, _ := req.AddChannel("q0", 0, 1e9, 0, 20, 0)
	hannID, _ := req.ShapeID("hann")
	play := builder.Play(ch, hannID, 10e-9, 0, 0, 0, 1, 0)
	root := builder.Absolute([]schedule.AbsoluteEntry{builder.At(5e-9, play)})
	request := req.Build(root)

	waveforms, err := pulsegen.Run(context.Background(), &request)
	if err != nil {
		t.Fatalf("Run: unexpected error %v", err)
	}
	wave := waveforms["q0"]
	for i := 0; i < 5; i++ {
		if math.Abs(wave.I[i]) > 1e-9 {
			t.Errorf("I[%d] = %g, want 0 (before the pulse)", i, wave.I[i])
		}
	}
	for i := 15; i < 20; i++ {
		if math.Abs(wave.I[i]) > 1e-9 {
			t.Errorf("I[%d] = %g, want 0 (after the pulse)", i, wave.I[i])
		}
	}
	if math.Abs(wave.I[10]-1) > 1e-9 {
		t.Errorf("I[10] = %g, want 1 (Hann peak)", wave.I[10])
	}
}

// TestRun_PhaseShiftedCarrier is end-to-end scenario 3: a quarter-cycle
// phase shift rotates the carrier from I onto Q at the pulse's peak.
func TestRun_PhaseShiftedCarrier(t *testing.T) {
	req := builder.NewRequest()
	ch, _ := req.AddChannel("q0", 100e6, 1e9, 0, 20, 0)
	hannID, _ := req.ShapeID("hann")
	play := builder.Play(ch, hannID, 20e-9, 0, 0, 0.25, 1, 0)
	root := builder.Absolute([]schedule.AbsoluteEntry{builder.At(0, play)})
	request := req.Build(root)

	waveforms, err := pulsegen.Run(context.Background(), &request)
	if err != nil {
		t.Fatalf("Run: unexpected error %v", err)
	}
	wave := waveforms["q0"]
	center := 10
	if math.Abs(wave.I[center]) > 1e-6 {
		t.Errorf("I[%d] = %g, want ~0", center, wave.I[center])
	}
	if math.Abs(wave.Q[center]-1) > 1e-6 {
		t.Errorf("Q[%d] = %g, want ~1", center, wave.Q[center])
	}
}

// TestRun_StackBackwardsEndsAlignToDuration is end-to-end scenario 4: a
// Backwards Stack of two 10ns Plays inside a fixed 100ns duration places
// the second Play's end exactly at 100ns and the first's at 90ns.
func TestRun_StackBackwardsEndsAlignToDuration(t *testing.T) {
	req := builder.NewRequest()
	ch, _ := req.AddChannel("q0", 0, 1e11, 0, 10000, 0)
	play1 := builder.Play(ch, -1, 10e-9, 0, 0, 0, 1, 0)
	play2 := builder.Play(ch, -1, 10e-9, 0, 0, 0, 1, 0)
	root := builder.Stack(schedule.Backwards, []schedule.Element{play1, play2}, builder.WithDuration(100e-9))
	request := req.Build(root)

	waveforms, err := pulsegen.Run(context.Background(), &request)
	if err != nil {
		t.Fatalf("Run: unexpected error %v", err)
	}
	wave := waveforms["q0"]
	// At 1e11 samples/sec, 1ns = 100 samples. Play1 occupies [80,90)ns,
	// Play2 occupies [90,100)ns; both are amplitude-1 rectangular pulses.
	sampleAt := func(ns float64) float64 { return wave.I[int(ns*100)] }
	if math.Abs(sampleAt(85)-1) > 1e-6 {
		t.Errorf("I at 85ns = %g, want 1 (first Play)", sampleAt(85))
	}
	if math.Abs(sampleAt(95)-1) > 1e-6 {
		t.Errorf("I at 95ns = %g, want 1 (second Play)", sampleAt(95))
	}
}

// TestRun_RepeatWithSpacing is end-to-end scenario 5: three 10ns Plays
// spaced 5ns apart, emitting at 0, 15, and 30ns.
func TestRun_RepeatWithSpacing(t *testing.T) {
	req := builder.NewRequest()
	ch, _ := req.AddChannel("q0", 0, 1e11, 0, 10000, 0)
	play := builder.Play(ch, -1, 10e-9, 0, 0, 0, 1, 0)
	root := builder.Repeat(play, 3, 5e-9)
	request := req.Build(root)

	waveforms, err := pulsegen.Run(context.Background(), &request)
	if err != nil {
		t.Fatalf("Run: unexpected error %v", err)
	}
	wave := waveforms["q0"]
	sampleAt := func(ns float64) float64 { return wave.I[int(ns*100)] }
	for _, ns := range []float64{2, 17, 32} {
		if math.Abs(sampleAt(ns)-1) > 1e-6 {
			t.Errorf("I at %gns = %g, want 1", ns, sampleAt(ns))
		}
	}
	if math.Abs(sampleAt(12)) > 1e-6 {
		t.Errorf("I at 12ns (gap) = %g, want 0", sampleAt(12))
	}
}

// TestRun_GridStarColumns is end-to-end scenario 6: two Star columns
// weighted 1:2 split 90ns of arranged duration into 30ns and 60ns.
func TestRun_GridStarColumns(t *testing.T) {
	req := builder.NewRequest()
	ch, _ := req.AddChannel("q0", 0, 1e11, 0, 10000, 0)
	child0 := builder.Play(ch, -1, 20e-9, 0, 0, 0, 1, 0, builder.WithAlignment(schedule.AlignStart))
	child1 := builder.Play(ch, -1, 40e-9, 0, 0, 0, 1, 0, builder.WithAlignment(schedule.AlignStart))
	root := builder.Grid(
		[]schedule.GridLength{schedule.StarLength(1), schedule.StarLength(2)},
		[]schedule.GridEntry{builder.Cell(0, 1, child0), builder.Cell(1, 1, child1)},
		builder.WithDuration(90e-9),
	)
	request := req.Build(root)

	waveforms, err := pulsegen.Run(context.Background(), &request)
	if err != nil {
		t.Fatalf("Run: unexpected error %v", err)
	}
	wave := waveforms["q0"]
	sampleAt := func(ns float64) float64 { return wave.I[int(ns*100)] }
	if math.Abs(sampleAt(5)-1) > 1e-6 {
		t.Errorf("I at 5ns (column 0) = %g, want 1", sampleAt(5))
	}
	if math.Abs(sampleAt(45)-1) > 1e-6 {
		t.Errorf("I at 45ns (column 1, starts at 30ns) = %g, want 1", sampleAt(45))
	}
}

// TestRun_NilScheduleProducesZeroedWaveforms covers an empty request: no
// schedule tree still yields correctly-sized, zeroed output per channel.
func TestRun_NilScheduleProducesZeroedWaveforms(t *testing.T) {
	req := builder.NewRequest()
	req.AddChannel("q0", 0, 1e9, 0, 5, 0)
	request := req.Build(nil)

	waveforms, err := pulsegen.Run(context.Background(), &request)
	if err != nil {
		t.Fatalf("Run: unexpected error %v", err)
	}
	wave := waveforms["q0"]
	if len(wave.I) != 5 || len(wave.Q) != 5 {
		t.Fatalf("waveform length = %d/%d, want 5/5", len(wave.I), len(wave.Q))
	}
	for i := range wave.I {
		if wave.I[i] != 0 || wave.Q[i] != 0 {
			t.Errorf("waveform[%d] = (%g,%g), want (0,0)", i, wave.I[i], wave.Q[i])
		}
	}
}

// TestRun_RejectsInvalidChannelReference covers the InvalidRequest error
// path: an element referencing a channel id out of range fails validation
// before any layout work happens.
func TestRun_RejectsInvalidChannelReference(t *testing.T) {
	req := builder.NewRequest()
	req.AddChannel("q0", 0, 1e9, 0, 5, 0)
	badPlay := builder.Play(1, -1, 1e-9, 0, 0, 0, 1, 0)
	root := builder.Absolute([]schedule.AbsoluteEntry{builder.At(0, badPlay)})
	request := req.Build(root)

	if _, err := pulsegen.Run(context.Background(), &request); err == nil {
		t.Fatal("Run: expected an error for an out-of-range channel id, got nil")
	}
}

// TestRun_CancelledContextReturnsError covers cooperative cancellation: a
// context cancelled before Run is called makes Run return an error and no
// waveforms (Run first notices it after the measure pass).
func TestRun_CancelledContextReturnsError(t *testing.T) {
	req := builder.NewRequest()
	ch, _ := req.AddChannel("q0", 0, 1e9, 0, 5, 0)
	play := builder.Play(ch, -1, 1e-9, 0, 0, 0, 1, 0)
	root := builder.Absolute([]schedule.AbsoluteEntry{builder.At(0, play)})
	request := req.Build(root)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := pulsegen.Run(ctx, &request); err == nil {
		t.Fatal("Run: expected context.Canceled, got nil")
	}
}
