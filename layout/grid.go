package layout

import (
	"math"
	"sort"

	"github.com/katalvlaran/pulsegen/phasetracker"
	"github.com/katalvlaran/pulsegen/schedule"
	"github.com/katalvlaran/pulsegen/shape"
)

// grid implements overrides for schedule.Grid: children sit in named
// columns whose widths are resolved in two passes — fixed (Second) and
// content-sized (Auto) columns first, then Star columns share whatever
// space remains, in proportion to their weight, via water-filling.
type grid struct {
	node      Node
	columns   []schedule.GridLength
	columnOf  []int
	spanOf    []int
	alignOf   []schedule.Alignment
	children  []*Node
	minColumn []float64
}

func newGridNode(element schedule.Grid) *Node {
	g := &grid{columns: append([]schedule.GridLength(nil), element.Columns...)}
	if len(g.columns) == 0 {
		g.columns = []schedule.GridLength{schedule.StarLength(1)}
	}
	g.children = make([]*Node, len(element.Elements))
	g.columnOf = make([]int, len(element.Elements))
	g.spanOf = make([]int, len(element.Elements))
	g.alignOf = make([]schedule.Alignment, len(element.Elements))
	for i, entry := range element.Elements {
		g.children[i] = New(entry.Element)
		g.columnOf[i] = entry.Column
		g.spanOf[i] = entry.Span
		g.alignOf[i] = entry.Element.LayoutCommon().Alignment
	}
	g.node = newNode(element.Common, g, unionChannels(g.children))
	return &g.node
}

func (g *grid) bounds(column, span int) (actualColumn, actualSpan int) {
	actualColumn = column
	if actualColumn < 0 {
		actualColumn = 0
	}
	if actualColumn > len(g.columns)-1 {
		actualColumn = len(g.columns) - 1
	}
	actualSpan = span
	if actualSpan < 1 {
		actualSpan = 1
	}
	if maxSpan := len(g.columns) - actualColumn; actualSpan > maxSpan {
		actualSpan = maxSpan
	}
	return actualColumn, actualSpan
}

func (g *grid) measureOverride(available float64) float64 {
	for _, child := range g.children {
		child.Measure(available)
	}

	colsizes := make([]float64, len(g.columns))
	for i, c := range g.columns {
		if c.Unit == schedule.Second {
			colsizes[i] = c.Value
		}
	}

	// Pass 1: single-span children size their Auto or Star column directly.
	for i, child := range g.children {
		actualColumn, actualSpan := g.bounds(g.columnOf[i], g.spanOf[i])
		if actualSpan > 1 {
			continue
		}
		if g.columns[actualColumn].Unit == schedule.Second {
			continue
		}
		if child.desiredDuration > colsizes[actualColumn] {
			colsizes[actualColumn] = child.desiredDuration
		}
	}

	// Pass 2: multi-span children grow Auto columns evenly, or trigger
	// star water-filling, when their span doesn't already fit.
	for i, child := range g.children {
		actualColumn, actualSpan := g.bounds(g.columnOf[i], g.spanOf[i])
		if actualSpan == 1 {
			continue
		}
		colsize := sumRange(colsizes, actualColumn, actualSpan)
		if colsize > child.desiredDuration {
			continue
		}
		nStar := 0
		for i := actualColumn; i < actualColumn+actualSpan; i++ {
			if g.columns[i].Unit == schedule.Star {
				nStar++
			}
		}
		if nStar == 0 {
			nAuto := 0
			for i := actualColumn; i < actualColumn+actualSpan; i++ {
				if g.columns[i].Unit == schedule.Auto {
					nAuto++
				}
			}
			if nAuto == 0 {
				continue
			}
			inc := (child.desiredDuration - colsize) / float64(nAuto)
			for i := actualColumn; i < actualColumn+actualSpan; i++ {
				if g.columns[i].Unit == schedule.Auto {
					colsizes[i] += inc
				}
			}
		} else {
			g.expandColumnWidth(colsizes, actualColumn, actualSpan, child.desiredDuration-colsize)
		}
	}

	g.minColumn = colsizes
	sum := 0.0
	for _, c := range colsizes {
		sum += c
	}
	return sum
}

func (g *grid) arrangeOverride(time, final float64) float64 {
	colsizes := append([]float64(nil), g.minColumn...)
	minDuration := 0.0
	for _, c := range colsizes {
		minDuration += c
	}
	g.expandColumnWidth(colsizes, 0, len(colsizes), final-minDuration)

	colstarts := make([]float64, len(colsizes))
	for i := 1; i < len(colsizes); i++ {
		colstarts[i] = colstarts[i-1] + colsizes[i-1]
	}

	for i, child := range g.children {
		actualColumn, actualSpan := g.bounds(g.columnOf[i], g.spanOf[i])
		spanDuration := sumRange(colsizes, actualColumn, actualSpan)
		childDuration := child.desiredDuration
		if g.alignOf[i] == schedule.AlignStretch {
			childDuration = spanDuration
		}
		actualDuration := math.Min(childDuration, spanDuration)

		var childTime float64
		switch g.alignOf[i] {
		case schedule.AlignStart:
			childTime = colstarts[actualColumn]
		case schedule.AlignEnd:
			childTime = colstarts[actualColumn] + spanDuration - actualDuration
		case schedule.AlignCenter:
			childTime = colstarts[actualColumn] + (spanDuration-actualDuration)/2
		default:
			childTime = colstarts[actualColumn]
		}
		child.Arrange(childTime, actualDuration)
	}
	return final
}

func (g *grid) renderOverride(time float64, tracker *phasetracker.PhaseTracker, shapes []shape.Shape) {
	for _, child := range g.children {
		child.Render(time, tracker, shapes)
	}
}

func sumRange(xs []float64, start, count int) float64 {
	sum := 0.0
	for i := start; i < start+count && i < len(xs); i++ {
		sum += xs[i]
	}
	return sum
}

// expandColumnWidth distributes `remaining` extra duration among the Star
// columns in [column, column+span) by water-filling: columns are visited
// in increasing order of current width-per-star-weight ratio, and each
// batch is brought up to a common ratio before the next, more generous,
// column is allowed to grow past it.
func (g *grid) expandColumnWidth(columnWidth []float64, column, span int, remaining float64) {
	type starCol struct {
		index int
		ratio float64
	}
	var cols []starCol
	for i := column; i < column+span && i < len(columnWidth); i++ {
		if g.columns[i].Unit != schedule.Star {
			continue
		}
		cols = append(cols, starCol{index: i, ratio: columnWidth[i] / g.columns[i].Value})
	}
	sort.Slice(cols, func(a, b int) bool { return cols[a].ratio < cols[b].ratio })

	stars := 0.0
	for i := range cols {
		nextRatio := math.Inf(1)
		if i+1 < len(cols) {
			nextRatio = cols[i+1].ratio
		}
		index := cols[i].index
		stars += g.columns[index].Value
		remaining += columnWidth[index]
		newRatio := remaining / stars
		if newRatio < nextRatio {
			for j := 0; j <= i; j++ {
				idx := cols[j].index
				columnWidth[idx] = newRatio * g.columns[idx].Value
			}
			break
		}
	}
}
