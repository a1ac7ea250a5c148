package phasetracker

import (
	"github.com/katalvlaran/pulsegen/envelope"
	"github.com/katalvlaran/pulsegen/pulselist"
)

// channelStatus is the running frequency/phase state of one channel.
type channelStatus struct {
	baseFreq  float64
	deltaFreq float64
	phase     float64
	pulses    *pulselist.PulseList
}

func newChannelStatus(baseFreq float64) *channelStatus {
	return &channelStatus{baseFreq: baseFreq, pulses: pulselist.New()}
}

// totalFreq is baseFreq+deltaFreq.
func (c *channelStatus) totalFreq() float64 {
	return c.baseFreq + c.deltaFreq
}

// shiftFreq adds delta to deltaFreq while preserving the instantaneous
// phase at time t.
func (c *channelStatus) shiftFreq(delta, t float64) {
	c.phase -= delta * t
	c.deltaFreq += delta
}

// setFreq sets deltaFreq to freq while preserving the instantaneous phase
// at time t.
func (c *channelStatus) setFreq(freq, t float64) {
	c.phase -= (freq - c.deltaFreq) * t
	c.deltaFreq = freq
}

// shiftPhase adds delta to phase instantaneously.
func (c *channelStatus) shiftPhase(delta float64) {
	c.phase += delta
}

// setPhase sets the displayed phase at time t to p.
func (c *channelStatus) setPhase(p, t float64) {
	c.phase = p - c.deltaFreq*t
}

// swapPhase numerically swaps the instantaneous phases of a and b at time
// t, given their possibly different total frequencies.
func swapPhase(a, b *channelStatus, t float64) {
	d := a.totalFreq() - b.totalFreq()
	a.phase, b.phase = b.phase-d*t, a.phase+d*t
}

// PhaseTracker holds one channelStatus per channel and dispatches
// play/phase/frequency instruction effects onto them.
type PhaseTracker struct {
	channels []*channelStatus
}

// New builds a tracker with one channel per entry in baseFreqs, in order.
func New(baseFreqs []float64) *PhaseTracker {
	channels := make([]*channelStatus, len(baseFreqs))
	for i, f := range baseFreqs {
		channels[i] = newChannelStatus(f)
	}
	return &PhaseTracker{channels: channels}
}

// ShiftFreq shifts channel ch's delta frequency by delta at absolute time t.
func (p *PhaseTracker) ShiftFreq(ch int, delta, t float64) {
	p.channels[ch].shiftFreq(delta, t)
}

// SetFreq sets channel ch's delta frequency to freq at absolute time t.
func (p *PhaseTracker) SetFreq(ch int, freq, t float64) {
	p.channels[ch].setFreq(freq, t)
}

// ShiftPhase shifts channel ch's phase by delta.
func (p *PhaseTracker) ShiftPhase(ch int, delta float64) {
	p.channels[ch].shiftPhase(delta)
}

// SetPhase sets channel ch's displayed phase at absolute time t to p.
func (p *PhaseTracker) SetPhase(ch int, phaseVal, t float64) {
	p.channels[ch].setPhase(phaseVal, t)
}

// SwapPhase numerically swaps the instantaneous phases of channels a and b
// at absolute time t.
func (p *PhaseTracker) SwapPhase(a, b int, t float64) {
	swapPhase(p.channels[a], p.channels[b], t)
}

// Play appends a pulse item to channel ch's pulse list, using the
// channel's current running frequency and phase plus the pulse's own
// local frequency/phase additions.
func (p *PhaseTracker) Play(ch int, env envelope.Envelope, freqLocal, phaseLocal, amp, dragCoef, t float64) {
	status := p.channels[ch]
	freqGlobal := status.totalFreq()
	totalPhase := status.phase + phaseLocal
	status.pulses.AddPulse(env, freqGlobal, freqLocal, t, totalPhase, amp, dragCoef)
}

// Finish returns the accumulated pulse list for every channel, in channel
// order.
func (p *PhaseTracker) Finish() []*pulselist.PulseList {
	out := make([]*pulselist.PulseList, len(p.channels))
	for i, c := range p.channels {
		out[i] = c.pulses
	}
	return out
}
