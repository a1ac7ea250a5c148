package schedule

import (
	"fmt"

	"github.com/katalvlaran/pulsegen/internal/validate"
	"github.com/katalvlaran/pulsegen/pgerrors"
)

// Request is the immutable, fully self-contained input to a compile: the
// channel list, the shape catalogue elements may reference by index, and
// the root of the schedule tree.
type Request struct {
	Channels []Channel
	Shapes   []ShapeInfo
	Schedule Element
}

// Validate walks the request top to bottom and returns the first
// violation found: duplicate channel names, a malformed channel or shape,
// or an out-of-range channel/shape reference anywhere in the schedule
// tree. A nil Schedule is valid (an empty request produces empty
// waveforms).
func (r Request) Validate() error {
	seen := make(map[string]struct{}, len(r.Channels))
	for i, ch := range r.Channels {
		if _, dup := seen[ch.Name]; dup {
			return fmt.Errorf("channel %d name %q: %w", i, ch.Name, pgerrors.ErrDuplicateChannelName)
		}
		seen[ch.Name] = struct{}{}
		if err := ch.Validate(); err != nil {
			return fmt.Errorf("channel %d: %w", i, err)
		}
	}
	for i, sh := range r.Shapes {
		if interp, ok := sh.(InterpolatedShape); ok {
			if err := interp.Validate(); err != nil {
				return fmt.Errorf("shape %d: %w", i, err)
			}
		}
	}
	if r.Schedule == nil {
		return nil
	}
	return r.validateElement(r.Schedule)
}

func (r Request) validateElement(e Element) error {
	c := e.LayoutCommon()
	if err := validate.MinMaxDuration(c.MinDuration, c.MaxDuration); err != nil {
		return err
	}
	if err := validate.NotNaN("margin_lo", c.MarginLo); err != nil {
		return err
	}
	if err := validate.NotNaN("margin_hi", c.MarginHi); err != nil {
		return err
	}
	if c.Duration != nil {
		if err := validate.NotNaN("duration", *c.Duration); err != nil {
			return err
		}
	}

	switch el := e.(type) {
	case Play:
		if err := validate.ChannelID(el.ChannelID, len(r.Channels)); err != nil {
			return err
		}
		if err := validate.ShapeID(el.ShapeID, len(r.Shapes)); err != nil {
			return err
		}
		if err := validate.NotNaN("width", el.Width); err != nil {
			return err
		}
		if err := validate.NotNaN("plateau", el.Plateau); err != nil {
			return err
		}
	case ShiftPhase:
		return validate.ChannelID(el.ChannelID, len(r.Channels))
	case SetPhase:
		return validate.ChannelID(el.ChannelID, len(r.Channels))
	case ShiftFrequency:
		return validate.ChannelID(el.ChannelID, len(r.Channels))
	case SetFrequency:
		return validate.ChannelID(el.ChannelID, len(r.Channels))
	case SwapPhase:
		if err := validate.ChannelID(el.ChannelID1, len(r.Channels)); err != nil {
			return err
		}
		return validate.ChannelID(el.ChannelID2, len(r.Channels))
	case Barrier:
		for _, id := range el.ChannelIDs {
			if err := validate.ChannelID(id, len(r.Channels)); err != nil {
				return err
			}
		}
	case Repeat:
		return r.validateElement(el.Element)
	case Stack:
		for _, child := range el.Elements {
			if err := r.validateElement(child); err != nil {
				return err
			}
		}
	case Absolute:
		for _, entry := range el.Elements {
			if err := validate.NotNaN("absolute_entry_time", entry.Time); err != nil {
				return err
			}
			if err := r.validateElement(entry.Element); err != nil {
				return err
			}
		}
	case Grid:
		for _, entry := range el.Elements {
			if err := r.validateElement(entry.Element); err != nil {
				return err
			}
		}
	}
	return nil
}
