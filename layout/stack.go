package layout

import (
	"github.com/katalvlaran/pulsegen/phasetracker"
	"github.com/katalvlaran/pulsegen/schedule"
	"github.com/katalvlaran/pulsegen/shape"
)

// stack implements overrides for schedule.Stack: children are laid out
// one after another along element.Direction, with each channel tracking
// its own frontier so that elements touching disjoint channel sets
// overlap in time instead of serializing unnecessarily.
type stack struct {
	node     Node
	element  schedule.Stack
	children []*Node
}

func newStackNode(element schedule.Stack) *Node {
	s := &stack{element: element}
	s.children = make([]*Node, len(element.Elements))
	for i, child := range element.Elements {
		s.children[i] = New(child)
	}
	s.node = newNode(element.Common, s, unionChannels(s.children))
	return &s.node
}

func (s *stack) measureOverride(available float64) float64 {
	helper := newStackHelper(s.node.channels, s.children, s.element.Direction)
	for _, child := range helper.order() {
		used := helper.usedTime(child.channels)
		child.Measure(available - used)
		helper.updateUsed(child.channels, child.desiredDuration+used)
	}
	return helper.totalTime()
}

func (s *stack) arrangeOverride(time, final float64) float64 {
	helper := newStackHelper(s.node.channels, s.children, s.element.Direction)
	for _, child := range helper.order() {
		used := helper.usedTime(child.channels)
		childDuration := child.desiredDuration
		childTime := helper.arrangeTime(used, childDuration, final)
		child.Arrange(childTime, childDuration)
		helper.updateUsed(child.channels, childDuration+used)
	}
	return final
}

func (s *stack) renderOverride(time float64, tracker *phasetracker.PhaseTracker, shapes []shape.Shape) {
	for _, child := range s.children {
		child.Render(time, tracker, shapes)
	}
}

// stackHelper tracks, per channel, how much of the available duration is
// already used by children placed so far. When the stack touches no
// channels at all it degrades to a single scalar frontier, matching the
// Python implementation's float-vs-defaultdict split.
type stackHelper struct {
	channels  map[int]struct{}
	durations map[int]float64
	global    float64
	isGlobal  bool
	children  []*Node
	direction schedule.ArrangeDirection
}

func newStackHelper(channels map[int]struct{}, children []*Node, direction schedule.ArrangeDirection) *stackHelper {
	h := &stackHelper{channels: channels, children: children, direction: direction}
	if len(channels) == 0 {
		h.isGlobal = true
	} else {
		h.durations = make(map[int]float64)
	}
	return h
}

// order returns the children in the direction they should be visited:
// Backwards visits from the last child first (it lays out from the end
// of the available space backwards), Forwards visits in declared order.
func (h *stackHelper) order() []*Node {
	out := make([]*Node, len(h.children))
	copy(out, h.children)
	if h.direction == schedule.Backwards {
		for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
			out[i], out[j] = out[j], out[i]
		}
	}
	return out
}

func (h *stackHelper) usedTime(channels map[int]struct{}) float64 {
	if h.isGlobal {
		return h.global
	}
	if len(channels) == 0 {
		return h.maxDuration()
	}
	max := 0.0
	first := true
	for ch := range channels {
		d := h.durations[ch]
		if first || d > max {
			max, first = d, false
		}
	}
	return max
}

func (h *stackHelper) maxDuration() float64 {
	max := 0.0
	first := true
	for _, d := range h.durations {
		if first || d > max {
			max, first = d, false
		}
	}
	return max
}

func (h *stackHelper) totalTime() float64 {
	if h.isGlobal {
		return h.global
	}
	return h.maxDuration()
}

func (h *stackHelper) arrangeTime(used, childDuration, total float64) float64 {
	if h.direction == schedule.Backwards {
		return total - used - childDuration
	}
	return used
}

func (h *stackHelper) updateUsed(channels map[int]struct{}, duration float64) {
	if h.isGlobal {
		h.global = duration
		return
	}
	target := channels
	if len(target) == 0 {
		target = h.channels
	}
	for ch := range target {
		h.durations[ch] = duration
	}
}
