package schedule

import "github.com/katalvlaran/pulsegen/internal/validate"

// Channel describes one physical output line: its carrier base frequency,
// sample rate, start delay, declared output length in samples, and pulse
// alignment level (pulses are snapped to a multiple of 2^AlignLevel
// samples; negative values align to a fraction of a sample).
type Channel struct {
	Name       string
	BaseFreq   float64
	SampleRate float64
	Delay      float64
	Length     int
	AlignLevel int
}

// Validate checks the channel's own fields in isolation (no cross-request
// checks, e.g. duplicate names — those are Request's job).
func (c Channel) Validate() error {
	if err := validate.SampleRate(c.SampleRate); err != nil {
		return err
	}
	if err := validate.Length(c.Length); err != nil {
		return err
	}
	if err := validate.NotNaN("base_freq", c.BaseFreq); err != nil {
		return err
	}
	if err := validate.NotNaN("delay", c.Delay); err != nil {
		return err
	}
	return nil
}
