package layout

import (
	"fmt"
	"math"

	"github.com/katalvlaran/pulsegen/pgerrors"
	"github.com/katalvlaran/pulsegen/phasetracker"
	"github.com/katalvlaran/pulsegen/schedule"
	"github.com/katalvlaran/pulsegen/shape"
)

// nodeState tracks which phase of the measure/arrange/render pipeline a
// node has completed. Measure and Arrange are single-shot transitions;
// Render only requires Arranged and may be invoked more than once (Repeat
// renders its one child node count times).
type nodeState int

const (
	stateFresh nodeState = iota
	stateMeasured
	stateArranged
)

// overrides is implemented by every concrete node kind; Node wraps these
// with the shared margin/duration clamp algebra.
type overrides interface {
	measureOverride(available float64) float64
	arrangeOverride(time, final float64) float64
	renderOverride(time float64, tracker *phasetracker.PhaseTracker, shapes []shape.Shape)
}

// Node is the common measure/arrange/render wrapper every node kind
// embeds. It owns the clamp bookkeeping described in the package doc and
// the set of channel IDs the node (and its descendants) touch.
type Node struct {
	common schedule.Common
	impl   overrides
	state  nodeState

	desiredDuration   float64
	unclippedDuration float64
	actualTime        float64
	actualDuration    float64

	// channels is never nil; it is empty for a Barrier with no channel IDs
	// (and for a container with no channel-bearing descendants). Stack's
	// helper treats an empty set as "whole stack".
	channels map[int]struct{}
}

func newNode(common schedule.Common, impl overrides, channels map[int]struct{}) Node {
	return Node{common: common, impl: impl, channels: channels}
}

// Channels returns the set of channel IDs this node (and its descendants)
// touch, for the Stack layout helper.
func (n *Node) Channels() map[int]struct{} { return n.channels }

// DesiredDuration is the duration this node settled on during Measure.
func (n *Node) DesiredDuration() float64 { return n.desiredDuration }

// ActualDuration is the duration this node settled on during Arrange.
func (n *Node) ActualDuration() float64 { return n.actualDuration }

// ActualTime is the content-relative start time this node settled on
// during Arrange (i.e. time+margin_lo, before the parent's own offset).
func (n *Node) ActualTime() float64 { return n.actualTime }

// minThenMax computes max(min(v, hi), lo) in that exact order. It is not
// a general clamp: when hi < lo (an unconstrained available/final
// duration can be negative) it still matches the layout algebra's
// original formula rather than a symmetric clamp.
func minThenMax(v, hi, lo float64) float64 {
	if v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}
	return v
}

// minmax resolves this node's requested duration (if any) against its
// min/max duration bounds, producing the [min, max] window that both
// Measure and Arrange clamp content into.
func (n *Node) minmax() (minDuration, maxDuration float64) {
	maxDuration = math.Inf(1)
	minDuration = 0
	if n.common.Duration != nil {
		maxDuration = *n.common.Duration
		minDuration = *n.common.Duration
	}
	maxDuration = minThenMax(maxDuration, n.common.MaxDuration, n.common.MinDuration)
	minDuration = minThenMax(minDuration, n.common.MaxDuration, n.common.MinDuration)
	return minDuration, maxDuration
}

// Measure computes this node's desired_duration given the space its
// parent has available, recursing into children via measureOverride.
func (n *Node) Measure(available float64) {
	if n.state != stateFresh {
		panic("layout: Measure called on a node that already measured")
	}
	margin := n.common.MarginLo + n.common.MarginHi
	minDuration, maxDuration := n.minmax()
	content := minThenMax(math.Max(available-margin, 0), maxDuration, minDuration)
	measured := n.impl.measureOverride(content)
	desired := minThenMax(measured, maxDuration, minDuration) + margin
	n.desiredDuration = minThenMax(desired, available, 0)
	n.unclippedDuration = math.Max(measured+margin, 0)
	if math.IsNaN(n.desiredDuration) || n.desiredDuration < 0 || n.desiredDuration > math.Max(available, 0)+1e-9 {
		panic(fmt.Errorf("layout: desired_duration %g outside [0, %g]: %w", n.desiredDuration, math.Max(available, 0), pgerrors.ErrOutOfRange))
	}
	n.state = stateMeasured
}

// Arrange computes this node's actual_time/actual_duration given the
// final space its parent granted it, recursing into children via
// arrangeOverride.
func (n *Node) Arrange(time, finalDuration float64) {
	if n.state != stateMeasured {
		panic("layout: Arrange called before Measure or twice")
	}
	margin := n.common.MarginLo + n.common.MarginHi
	minDuration, maxDuration := n.minmax()
	contentTime := time + n.common.MarginLo
	content := minThenMax(math.Max(finalDuration-margin, 0), maxDuration, minDuration)
	n.actualDuration = n.impl.arrangeOverride(contentTime, content)
	n.actualTime = contentTime
	n.state = stateArranged
}

// Render drives the phase tracker effects of this node and its visible
// descendants at the given base time. Invisible nodes are skipped
// entirely. Unlike Measure/Arrange this may be called more than once on
// the same node (Repeat renders its child node count times).
func (n *Node) Render(time float64, tracker *phasetracker.PhaseTracker, shapes []shape.Shape) {
	if !n.common.Visibility {
		return
	}
	if n.state != stateArranged {
		panic("layout: Render called before Arrange")
	}
	n.impl.renderOverride(time+n.actualTime, tracker, shapes)
}

// New dispatches on the concrete schedule.Element type and builds the
// corresponding node, recursing into any child elements.
func New(element schedule.Element) *Node {
	switch el := element.(type) {
	case schedule.Play:
		channels := map[int]struct{}{el.ChannelID: {}}
		return newLeaf(el.Common, el, el.Width+el.Plateau, channels)
	case schedule.ShiftFrequency:
		return newLeaf(el.Common, el, 0, map[int]struct{}{el.ChannelID: {}})
	case schedule.SetFrequency:
		return newLeaf(el.Common, el, 0, map[int]struct{}{el.ChannelID: {}})
	case schedule.ShiftPhase:
		return newLeaf(el.Common, el, 0, map[int]struct{}{el.ChannelID: {}})
	case schedule.SetPhase:
		return newLeaf(el.Common, el, 0, map[int]struct{}{el.ChannelID: {}})
	case schedule.SwapPhase:
		return newLeaf(el.Common, el, 0, map[int]struct{}{el.ChannelID1: {}, el.ChannelID2: {}})
	case schedule.Barrier:
		channels := make(map[int]struct{}, len(el.ChannelIDs))
		for _, id := range el.ChannelIDs {
			channels[id] = struct{}{}
		}
		return newLeaf(el.Common, el, 0, channels)
	case schedule.Repeat:
		return newRepeatNode(el)
	case schedule.Stack:
		return newStackNode(el)
	case schedule.Absolute:
		return newAbsoluteNode(el)
	case schedule.Grid:
		return newGridNode(el)
	default:
		panic(fmt.Sprintf("layout: unknown element type %T", element))
	}
}

// unionChannels merges the channel sets of a list of child nodes.
func unionChannels(children []*Node) map[int]struct{} {
	out := make(map[int]struct{})
	for _, c := range children {
		for id := range c.channels {
			out[id] = struct{}{}
		}
	}
	return out
}
