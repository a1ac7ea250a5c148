package builder

import "github.com/katalvlaran/pulsegen/schedule"

// CommonOption mutates the layout attributes shared by every element kind.
// Every sugar constructor in this file accepts a variadic list of these,
// applied after the constructor's own fields so options always win.
type CommonOption func(*schedule.Common)

// WithMargin sets both margins.
func WithMargin(lo, hi float64) CommonOption {
	return func(c *schedule.Common) { c.MarginLo, c.MarginHi = lo, hi }
}

// WithDuration pins the element's duration to an exact value.
func WithDuration(d float64) CommonOption {
	return func(c *schedule.Common) { c.Duration = &d }
}

// WithMinDuration sets a soft lower bound on the element's duration.
func WithMinDuration(d float64) CommonOption {
	return func(c *schedule.Common) { c.MinDuration = d }
}

// WithMaxDuration sets a soft upper bound on the element's duration.
func WithMaxDuration(d float64) CommonOption {
	return func(c *schedule.Common) { c.MaxDuration = d }
}

// WithAlignment overrides the default end-alignment.
func WithAlignment(a schedule.Alignment) CommonOption {
	return func(c *schedule.Common) { c.Alignment = a }
}

// Invisible marks the element as not rendering any tracker effects, while
// still occupying layout space.
func Invisible() CommonOption {
	return func(c *schedule.Common) { c.Visibility = false }
}

func applyCommon(c *schedule.Common, opts []CommonOption) {
	for _, opt := range opts {
		opt(c)
	}
}

// Play builds a Play element. shapeID is -1 for the rectangular envelope,
// or an index returned by AddInterpolatedShape / ShapeID("hann") etc.
func Play(channel, shapeID int, width, plateau, frequency, phase, amplitude, dragCoef float64, opts ...CommonOption) schedule.Play {
	p := schedule.Play{
		Common:    schedule.DefaultCommon(),
		ChannelID: channel,
		ShapeID:   shapeID,
		Width:     width,
		Plateau:   plateau,
		Frequency: frequency,
		Phase:     phase,
		Amplitude: amplitude,
		DragCoef:  dragCoef,
	}
	applyCommon(&p.Common, opts)
	return p
}

// FlexiblePlay builds a Play element whose plateau stretches or shrinks to
// fill whatever final duration its parent grants, rather than holding
// Plateau fixed.
func FlexiblePlay(channel, shapeID int, width, frequency, phase, amplitude, dragCoef float64, opts ...CommonOption) schedule.Play {
	p := Play(channel, shapeID, width, 0, frequency, phase, amplitude, dragCoef, opts...)
	p.Flexible = true
	return p
}

// ShiftPhase builds a ShiftPhase element.
func ShiftPhase(channel int, phase float64, opts ...CommonOption) schedule.ShiftPhase {
	e := schedule.ShiftPhase{Common: schedule.DefaultCommon(), ChannelID: channel, Phase: phase}
	applyCommon(&e.Common, opts)
	return e
}

// SetPhase builds a SetPhase element.
func SetPhase(channel int, phase float64, opts ...CommonOption) schedule.SetPhase {
	e := schedule.SetPhase{Common: schedule.DefaultCommon(), ChannelID: channel, Phase: phase}
	applyCommon(&e.Common, opts)
	return e
}

// ShiftFrequency builds a ShiftFrequency element.
func ShiftFrequency(channel int, frequency float64, opts ...CommonOption) schedule.ShiftFrequency {
	e := schedule.ShiftFrequency{Common: schedule.DefaultCommon(), ChannelID: channel, Frequency: frequency}
	applyCommon(&e.Common, opts)
	return e
}

// SetFrequency builds a SetFrequency element.
func SetFrequency(channel int, frequency float64, opts ...CommonOption) schedule.SetFrequency {
	e := schedule.SetFrequency{Common: schedule.DefaultCommon(), ChannelID: channel, Frequency: frequency}
	applyCommon(&e.Common, opts)
	return e
}

// SwapPhase builds a SwapPhase element.
func SwapPhase(channel1, channel2 int, opts ...CommonOption) schedule.SwapPhase {
	e := schedule.SwapPhase{Common: schedule.DefaultCommon(), ChannelID1: channel1, ChannelID2: channel2}
	applyCommon(&e.Common, opts)
	return e
}

// Barrier builds a Barrier synchronizing the given channels (or every
// channel the enclosing Stack touches, if channels is empty).
func Barrier(channels []int, opts ...CommonOption) schedule.Barrier {
	e := schedule.Barrier{Common: schedule.DefaultCommon(), ChannelIDs: channels}
	applyCommon(&e.Common, opts)
	return e
}

// Repeat builds a Repeat wrapping element, played count times with spacing
// between each repetition.
func Repeat(element schedule.Element, count int, spacing float64, opts ...CommonOption) schedule.Repeat {
	e := schedule.Repeat{Common: schedule.DefaultCommon(), Element: element, Count: count, Spacing: spacing}
	applyCommon(&e.Common, opts)
	return e
}

// Stack builds a Stack laying elements out one after another along
// direction.
func Stack(direction schedule.ArrangeDirection, elements []schedule.Element, opts ...CommonOption) schedule.Stack {
	e := schedule.Stack{Common: schedule.DefaultCommon(), Direction: direction, Elements: elements}
	applyCommon(&e.Common, opts)
	return e
}

// Absolute builds an Absolute with the given (time, element) entries.
func Absolute(entries []schedule.AbsoluteEntry, opts ...CommonOption) schedule.Absolute {
	e := schedule.Absolute{Common: schedule.DefaultCommon(), Elements: entries}
	applyCommon(&e.Common, opts)
	return e
}

// At is sugar for one schedule.AbsoluteEntry, for use with Absolute.
func At(time float64, element schedule.Element) schedule.AbsoluteEntry {
	return schedule.AbsoluteEntry{Time: time, Element: element}
}

// Grid builds a Grid with the given column template and cell entries.
func Grid(columns []schedule.GridLength, entries []schedule.GridEntry, opts ...CommonOption) schedule.Grid {
	e := schedule.Grid{Common: schedule.DefaultCommon(), Columns: columns, Elements: entries}
	applyCommon(&e.Common, opts)
	return e
}

// Cell is sugar for one schedule.GridEntry, for use with Grid.
func Cell(column, span int, element schedule.Element) schedule.GridEntry {
	return schedule.GridEntry{Column: column, Span: span, Element: element}
}
