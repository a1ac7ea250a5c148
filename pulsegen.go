package pulsegen

import (
	"context"
	"fmt"
	"math"
	"sync"

	"github.com/katalvlaran/pulsegen/layout"
	"github.com/katalvlaran/pulsegen/phasetracker"
	"github.com/katalvlaran/pulsegen/pulselist"
	"github.com/katalvlaran/pulsegen/schedule"
	"github.com/katalvlaran/pulsegen/shape"
)

// Waveform is one channel's compiled complex baseband output, split into
// its real (I) and imaginary (Q) components.
type Waveform struct {
	I []float64
	Q []float64
}

// Run compiles req into one Waveform per channel, keyed by channel name.
// It validates req first; a malformed request returns an error wrapping a
// pgerrors sentinel and no waveforms.
//
// ctx is checked between the three layout passes and, during the final
// per-channel sampling step, before each channel's goroutine starts —
// the schedule tree itself is walked without interruption points since
// measure/arrange/render are not IO-bound and have no natural suspension
// point mid-pass.
func Run(ctx context.Context, req *schedule.Request) (map[string]Waveform, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("Run: %w", err)
	}

	waveforms := make(map[string]Waveform, len(req.Channels))
	if req.Schedule == nil {
		for _, ch := range req.Channels {
			waveforms[ch.Name] = Waveform{I: make([]float64, ch.Length), Q: make([]float64, ch.Length)}
		}
		return waveforms, nil
	}

	shapes := make([]shape.Shape, len(req.Shapes))
	for i, info := range req.Shapes {
		shapes[i] = materializeShape(info)
	}

	baseFreqs := make([]float64, len(req.Channels))
	for i, ch := range req.Channels {
		baseFreqs[i] = ch.BaseFreq
	}
	tracker := phasetracker.New(baseFreqs)

	node := layout.New(req.Schedule)
	node.Measure(math.Inf(1))
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	node.Arrange(0, node.DesiredDuration())
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	node.Render(0, tracker, shapes)
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	pulses := tracker.Finish()
	return sampleChannels(ctx, req.Channels, pulses, waveforms)
}

// materializeShape turns a schedule.ShapeInfo descriptor into a concrete,
// reusable shape.Shape. Interpolated shapes precompute their barycentric
// weights once here, matching spec.md §4.1's "constructed once per
// request and reused".
func materializeShape(info schedule.ShapeInfo) shape.Shape {
	switch s := info.(type) {
	case schedule.HannShape:
		return shape.Hann{}
	case schedule.TriangleShape:
		return shape.Triangle{}
	case schedule.InterpolatedShape:
		return shape.NewInterpolated(s.XS, s.YS)
	default:
		panic(fmt.Sprintf("pulsegen: unknown shape type %T", info))
	}
}

// sampleChannels delays and samples every channel's pulse list, one
// goroutine per channel, and assembles the result map in channel order.
// Every channel only ever touches its own pulse list and output slices, so
// no synchronization beyond the final join is needed.
func sampleChannels(ctx context.Context, channels []schedule.Channel, pulses []*pulselist.PulseList, waveforms map[string]Waveform) (map[string]Waveform, error) {
	var wg sync.WaitGroup
	results := make([]Waveform, len(channels))

	for i, ch := range channels {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		wg.Add(1)
		go func(i int, ch schedule.Channel, pulseList *pulselist.PulseList) {
			defer wg.Done()
			pulseList.Delay(ch.Delay)
			y := pulseList.Sample(ch.Length, ch.SampleRate, ch.AlignLevel)
			re := make([]float64, len(y))
			im := make([]float64, len(y))
			for j, v := range y {
				re[j] = real(v)
				im[j] = imag(v)
			}
			results[i] = Waveform{I: re, Q: im}
		}(i, ch, pulses[i])
	}
	wg.Wait()

	for i, ch := range channels {
		waveforms[ch.Name] = results[i]
	}
	return waveforms, nil
}
