package deck

import "math"

// fontSizeStep is the granularity scaled font sizes are rounded down to.
const fontSizeStep = 0.1

// discretizeFontSize rounds size down to a multiple of fontSizeStep.
func discretizeFontSize(size float64) float64 {
	steps := math.Floor(size/fontSizeStep + 1e-9)
	return math.Round(steps*fontSizeStep*1e6) / 1e6
}

// refEntry is the captured full-size geometry of one card descendant.
type refEntry struct {
	bounds   Rect
	fontSize float64
	hasFont  bool
}

// refLayout is a card's reference geometry: the bounds and font sizes its
// content had at full size, captured on the first layout pass after
// population. It belongs to a single card and is dropped when the card is
// detached.
type refLayout struct {
	width   float64
	entries map[*Node]refEntry
	scale   float64
}

func (r *refLayout) captured() bool {
	return r.entries != nil
}

// capture records every descendant of root.
func (r *refLayout) capture(root *Node) {
	r.entries = make(map[*Node]refEntry)
	r.scale = 1
	root.Walk(func(n *Node) {
		e := refEntry{bounds: n.Bounds()}
		if n.TextBlock != nil {
			e.fontSize = n.TextBlock.FontSize
			e.hasFont = true
		}
		r.entries[n] = e
	})
}

// apply resizes every captured descendant of root by scale. Nodes added
// after the capture keep whatever geometry they have.
func (r *refLayout) apply(root *Node, scale float64) {
	if scale == r.scale {
		return
	}
	r.scale = scale
	root.Walk(func(n *Node) {
		e, ok := r.entries[n]
		if !ok {
			return
		}
		n.SetBounds(e.bounds.Scale(scale))
		if e.hasFont && n.TextBlock != nil {
			n.TextBlock.SetFontSize(discretizeFontSize(e.fontSize * scale))
		}
	})
}

func (r *refLayout) reset() {
	r.entries = nil
	r.scale = 0
}
