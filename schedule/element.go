package schedule

import "math"

// Alignment controls how a node's desired_duration is placed inside the
// final space its parent grants it.
type Alignment int

const (
	AlignEnd Alignment = iota
	AlignStart
	AlignCenter
	AlignStretch
)

// ArrangeDirection controls whether a Stack's children are laid out from
// the end of the available space backwards, or from the start forwards.
type ArrangeDirection int

const (
	Backwards ArrangeDirection = iota
	Forwards
)

// Common carries the layout attributes shared by every Element variant:
// margin, alignment, visibility, and the requested/min/max duration that
// the measure/arrange wrapper in the layout engine clamps against.
//
// Duration is a pointer so "unset" (nil) is distinguishable from an
// explicit zero duration. The zero Common is invisible with a zero
// MaxDuration; callers typically start from DefaultCommon() and fill in
// only what they need.
type Common struct {
	MarginLo    float64
	MarginHi    float64
	Alignment   Alignment
	Visibility  bool
	Duration    *float64
	MinDuration float64
	MaxDuration float64
}

// DefaultCommon returns the Common value every constructor in package
// builder starts from: visible, end-aligned, unconstrained duration.
func DefaultCommon() Common {
	return Common{
		Alignment:   AlignEnd,
		Visibility:  true,
		MinDuration: 0,
		MaxDuration: math.Inf(1),
	}
}

// Element is the closed sum type of schedule tree nodes. Only types
// declared in this package implement it, so a type switch over Element in
// the layout package's dispatcher is exhaustive.
type Element interface {
	isElement()
	LayoutCommon() Common
}

// Play renders one pulse onto a channel.
type Play struct {
	Common
	ChannelID int
	ShapeID   int // -1 selects the rectangular envelope
	Width     float64
	Plateau   float64
	Frequency float64 // local addition to the channel's running frequency
	Phase     float64 // local addition to the channel's running phase, in cycles
	Amplitude float64
	DragCoef  float64
	Flexible  bool // whether the plateau may be shortened or extended to fit
}

func (Play) isElement()        {}
func (p Play) LayoutCommon() Common  { return p.Common }

// ShiftPhase adds Phase cycles to a channel's running phase instantaneously.
type ShiftPhase struct {
	Common
	ChannelID int
	Phase     float64
}

func (ShiftPhase) isElement()       {}
func (s ShiftPhase) LayoutCommon() Common { return s.Common }

// SetPhase sets a channel's displayed phase at this element's time to Phase.
type SetPhase struct {
	Common
	ChannelID int
	Phase     float64
}

func (SetPhase) isElement()       {}
func (s SetPhase) LayoutCommon() Common { return s.Common }

// ShiftFrequency adds Frequency to a channel's running delta frequency,
// preserving instantaneous phase.
type ShiftFrequency struct {
	Common
	ChannelID int
	Frequency float64
}

func (ShiftFrequency) isElement()       {}
func (s ShiftFrequency) LayoutCommon() Common { return s.Common }

// SetFrequency sets a channel's running delta frequency to Frequency,
// preserving instantaneous phase.
type SetFrequency struct {
	Common
	ChannelID int
	Frequency float64
}

func (SetFrequency) isElement()       {}
func (s SetFrequency) LayoutCommon() Common { return s.Common }

// SwapPhase exchanges the instantaneous phases of two channels at this
// element's time.
type SwapPhase struct {
	Common
	ChannelID1 int
	ChannelID2 int
}

func (SwapPhase) isElement()       {}
func (s SwapPhase) LayoutCommon() Common { return s.Common }

// Barrier is a no-op content-wise; it exists purely as a synchronization
// point that a Stack's arrange pass aligns across the listed channels. An
// empty ChannelIDs list synchronizes every channel touched by the stack.
type Barrier struct {
	Common
	ChannelIDs []int
}

func (Barrier) isElement()       {}
func (b Barrier) LayoutCommon() Common { return b.Common }

// Repeat lays out Element Count times in sequence, separated by Spacing.
type Repeat struct {
	Common
	Element Element
	Count   int
	Spacing float64
}

func (Repeat) isElement()       {}
func (r Repeat) LayoutCommon() Common { return r.Common }

// Stack lays out Elements one after another along a single direction.
type Stack struct {
	Common
	Elements  []Element
	Direction ArrangeDirection
}

func (Stack) isElement()       {}
func (s Stack) LayoutCommon() Common { return s.Common }

// AbsoluteEntry pairs a child Element with a time relative to the start of
// its enclosing Absolute.
type AbsoluteEntry struct {
	Time    float64
	Element Element
}

// Absolute lays out each entry at its own explicit, independent time,
// rather than sequencing children against one another.
type Absolute struct {
	Common
	Elements []AbsoluteEntry
}

func (Absolute) isElement()       {}
func (a Absolute) LayoutCommon() Common { return a.Common }

// GridEntry places a child Element starting at column Column, spanning
// Span columns.
type GridEntry struct {
	Column  int
	Span    int
	Element Element
}

// Grid lays out children into named columns whose widths are resolved in
// two passes: fixed and auto columns first, then star columns share the
// remaining space in proportion to their weight.
type Grid struct {
	Common
	Columns  []GridLength
	Elements []GridEntry
}

func (Grid) isElement()       {}
func (g Grid) LayoutCommon() Common { return g.Common }
