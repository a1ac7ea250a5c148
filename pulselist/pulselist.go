package pulselist

import (
	"math"
	"math/cmplx"

	"github.com/katalvlaran/pulsegen/envelope"
)

// Item is a single timed, phased pulse contribution to a channel's output.
type Item struct {
	Time       float64
	Envelope   envelope.Envelope
	Amp        complex128
	DragAmp    complex128
	FreqGlobal float64
	FreqLocal  float64
	DelayAccum float64
}

// PulseList is a per-channel ordered collection of Items.
type PulseList struct {
	items []Item
}

// New returns an empty PulseList.
func New() *PulseList {
	return &PulseList{}
}

// Len returns the number of items currently held.
func (p *PulseList) Len() int {
	return len(p.items)
}

// Items returns the underlying items, for inspection only; callers must
// not mutate the returned slice in place.
func (p *PulseList) Items() []Item {
	return p.items
}

// AddPulse appends a new item. It is a no-op when amp == 0. The stored
// complex amplitude is amp*exp(i*2*pi*phase); the DRAG amplitude is
// i*amp*dragCoef.
func (p *PulseList) AddPulse(env envelope.Envelope, freqGlobal, freqLocal, time, phase, amp, dragCoef float64) {
	if amp == 0 {
		return
	}
	camp := cmplx.Rect(amp, 2*math.Pi*phase)
	cdrag := complex(0, 1) * camp * complex(dragCoef, 0)
	p.items = append(p.items, Item{
		Time:       time,
		Envelope:   env,
		Amp:        camp,
		DragAmp:    cdrag,
		FreqGlobal: freqGlobal,
		FreqLocal:  freqLocal,
		DelayAccum: 0,
	})
}

// Delay shifts every item's Time and DelayAccum by delta.
func (p *PulseList) Delay(delta float64) {
	for i := range p.items {
		p.items[i].Time += delta
		p.items[i].DelayAccum += delta
	}
}

// Scale multiplies every item's Amp and DragAmp by factor.
func (p *PulseList) Scale(factor complex128) {
	for i := range p.items {
		p.items[i].Amp *= factor
		p.items[i].DragAmp *= factor
	}
}

// Sample renders the pulse list onto a complex buffer of the given length,
// at the given sample rate and channel alignment level.
//
// Each item's start time is first snapped to the channel's alignment grid
// (snap = sampleRate * 2^-alignLevel), then its envelope and carrier
// contributions are added onto the samples the envelope actually covers.
// A DRAG correction proportional to the envelope's numeric time-derivative
// (central difference, see gradient) is added alongside the envelope term.
func (p *PulseList) Sample(length int, sampleRate float64, alignLevel int) []complex128 {
	dt := 1 / sampleRate
	y := make([]complex128, length)
	snap := sampleRate * math.Exp2(float64(-alignLevel))

	for _, item := range p.items {
		alignedTime := math.Round(item.Time*snap) / snap
		i0 := int(math.Floor(alignedTime * sampleRate))
		i1 := int(math.Ceil((alignedTime + item.Envelope.Duration()) * sampleRate))
		if i0 < 0 {
			i0 = 0
		}
		if i1 > length {
			i1 = length
		}
		if i0 >= i1 {
			continue
		}

		n := i1 - i0
		localT := make([]float64, n)
		for i := 0; i < n; i++ {
			localT[i] = float64(i0+i)*dt - alignedTime
		}
		envY := item.Envelope.Sample(localT)
		envDY := gradient(envY)
		for i := range envDY {
			envDY[i] *= sampleRate
		}

		phaseShift := 2 * math.Pi * item.FreqGlobal * (float64(i0)*dt - item.DelayAccum)
		totalFreq := item.FreqGlobal + item.FreqLocal
		for i := 0; i < n; i++ {
			phase := 2*math.Pi*totalFreq*localT[i] + phaseShift
			carrier := complex(math.Cos(phase), math.Sin(phase))
			contribution := complex(envY[i], 0)*item.Amp + complex(envDY[i], 0)*item.DragAmp
			y[i0+i] += contribution * carrier
		}
	}

	return y
}

// gradient computes the numpy.gradient-equivalent central difference of y
// with unit sample spacing: interior samples use (y[i+1]-y[i-1])/2, the
// first sample uses a forward difference y[1]-y[0], the last uses a
// backward difference y[n-1]-y[n-2]. A length-0 or length-1 input produces
// an all-zero result of the same length.
func gradient(y []float64) []float64 {
	n := len(y)
	out := make([]float64, n)
	if n < 2 {
		return out
	}
	out[0] = y[1] - y[0]
	out[n-1] = y[n-1] - y[n-2]
	for i := 1; i < n-1; i++ {
		out[i] = (y[i+1] - y[i-1]) / 2
	}
	return out
}
