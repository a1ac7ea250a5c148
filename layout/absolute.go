package layout

import (
	"github.com/katalvlaran/pulsegen/phasetracker"
	"github.com/katalvlaran/pulsegen/schedule"
	"github.com/katalvlaran/pulsegen/shape"
)

// absolute implements overrides for schedule.Absolute: every entry is
// measured and arranged independently against the full available space,
// each placed at its own explicit offset rather than sequenced against
// its siblings.
type absolute struct {
	node     Node
	element  schedule.Absolute
	children []*Node
	times    []float64
}

func newAbsoluteNode(element schedule.Absolute) *Node {
	a := &absolute{element: element}
	a.children = make([]*Node, len(element.Elements))
	a.times = make([]float64, len(element.Elements))
	for i, entry := range element.Elements {
		a.children[i] = New(entry.Element)
		a.times[i] = entry.Time
	}
	a.node = newNode(element.Common, a, unionChannels(a.children))
	return &a.node
}

func (a *absolute) measureOverride(available float64) float64 {
	maxTime := 0.0
	for i, child := range a.children {
		child.Measure(available)
		if end := child.desiredDuration + a.times[i]; end > maxTime {
			maxTime = end
		}
	}
	return maxTime
}

func (a *absolute) arrangeOverride(time, final float64) float64 {
	for i, child := range a.children {
		child.Arrange(a.times[i], child.desiredDuration)
	}
	return final
}

func (a *absolute) renderOverride(time float64, tracker *phasetracker.PhaseTracker, shapes []shape.Shape) {
	for _, child := range a.children {
		child.Render(time, tracker, shapes)
	}
}
