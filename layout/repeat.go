package layout

import (
	"github.com/katalvlaran/pulsegen/phasetracker"
	"github.com/katalvlaran/pulsegen/schedule"
	"github.com/katalvlaran/pulsegen/shape"
)

// repeat implements overrides for schedule.Repeat: it measures and
// arranges a single child node once, then renders that same node Count
// times at increasing offsets during render.
type repeat struct {
	node    Node
	element schedule.Repeat
	child   *Node
}

func newRepeatNode(element schedule.Repeat) *Node {
	r := &repeat{element: element, child: New(element.Element)}
	r.node = newNode(element.Common, r, r.child.channels)
	return &r.node
}

func (r *repeat) measureOverride(available float64) float64 {
	n := r.element.Count
	if n == 0 {
		return 0
	}
	spacing := r.element.Spacing
	childAvailable := (available - spacing*float64(n-1)) / float64(n)
	r.child.Measure(childAvailable)
	return r.child.desiredDuration*float64(n) + spacing*float64(n-1)
}

func (r *repeat) arrangeOverride(time, final float64) float64 {
	n := r.element.Count
	if n == 0 {
		return 0
	}
	spacing := r.element.Spacing
	childAvailable := (final - spacing*float64(n-1)) / float64(n)
	r.child.Arrange(0, childAvailable)
	return final
}

func (r *repeat) renderOverride(time float64, tracker *phasetracker.PhaseTracker, shapes []shape.Shape) {
	n := r.element.Count
	if n == 0 {
		return
	}
	childTime := time
	for i := 0; i < n; i++ {
		r.child.Render(childTime, tracker, shapes)
		childTime += r.child.actualDuration + r.element.Spacing
	}
}
