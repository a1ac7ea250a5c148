package layout

import (
	"fmt"

	"github.com/katalvlaran/pulsegen/envelope"
	"github.com/katalvlaran/pulsegen/phasetracker"
	"github.com/katalvlaran/pulsegen/schedule"
	"github.com/katalvlaran/pulsegen/shape"
)

// leaf implements overrides for every element kind with no children: Play,
// the four phase/frequency instructions, SwapPhase, and Barrier. Every
// variant except a flexible Play has a fixed duration computed once at
// construction (element.Width+Plateau for Play, zero for everything else).
type leaf struct {
	node     Node
	element  schedule.Element
	duration float64
}

func newLeaf(common schedule.Common, element schedule.Element, duration float64, channels map[int]struct{}) *Node {
	l := &leaf{element: element, duration: duration}
	l.node = newNode(common, l, channels)
	return &l.node
}

func (l *leaf) isFlexiblePlay() (schedule.Play, bool) {
	play, ok := l.element.(schedule.Play)
	return play, ok && play.Flexible
}

func (l *leaf) measureOverride(available float64) float64 {
	if play, ok := l.isFlexiblePlay(); ok {
		return play.Width
	}
	return l.duration
}

func (l *leaf) arrangeOverride(time, final float64) float64 {
	if _, ok := l.isFlexiblePlay(); ok {
		return final
	}
	return l.duration
}

func (l *leaf) renderOverride(time float64, tracker *phasetracker.PhaseTracker, shapes []shape.Shape) {
	switch el := l.element.(type) {
	case schedule.Play:
		var sh shape.Shape
		if el.ShapeID != -1 {
			sh = shapes[el.ShapeID]
		}
		plateau := el.Plateau
		if el.Flexible {
			plateau = l.node.actualDuration - el.Width
		}
		env := envelope.Envelope{Shape: sh, Width: el.Width, Plateau: plateau}
		tracker.Play(el.ChannelID, env, el.Frequency, el.Phase, el.Amplitude, el.DragCoef, time)
	case schedule.ShiftFrequency:
		tracker.ShiftFreq(el.ChannelID, el.Frequency, time)
	case schedule.SetFrequency:
		tracker.SetFreq(el.ChannelID, el.Frequency, time)
	case schedule.ShiftPhase:
		tracker.ShiftPhase(el.ChannelID, el.Phase)
	case schedule.SetPhase:
		tracker.SetPhase(el.ChannelID, el.Phase, time)
	case schedule.SwapPhase:
		tracker.SwapPhase(el.ChannelID1, el.ChannelID2, time)
	case schedule.Barrier:
		// No tracker effect; it exists only as a Stack synchronization point.
	default:
		panic(fmt.Sprintf("layout: leaf given unsupported element %T", el))
	}
}
