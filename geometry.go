package deck

import "math"

// Geometry holds the parameters of the fanned stack layout.
type Geometry struct {
	BottomPadding float64 // height reserved below the front card for deeper cards to peek out
	DisplayDepth  int     // number of visible cards
	ReduceScale   float64 // size ratio between adjacent depths, in (0, 1)
}

// DepthFrame returns the rest frame for a card at the given depth inside
// bounds. Depth 0 is the front card at full size (bounds minus the bottom
// padding); each deeper card is ReduceScale times smaller, horizontally
// centered, with its bottom edge BottomPadding/DisplayDepth lower than the
// card in front of it.
func DepthFrame(bounds Rect, depth int, g Geometry) Rect {
	frontH := bounds.Height - g.BottomPadding
	s := math.Pow(g.ReduceScale, float64(depth))
	w := bounds.Width * s
	h := frontH * s

	var yOffset float64
	if g.DisplayDepth > 0 {
		yOffset = g.BottomPadding / float64(g.DisplayDepth) * float64(depth)
	}

	return Rect{
		X:      bounds.X + (bounds.Width-w)/2,
		Y:      bounds.Y + frontH + yOffset - h,
		Width:  w,
		Height: h,
	}
}

// DepthFrames returns the rest frames for depths 0..n-1.
func DepthFrames(bounds Rect, n int, g Geometry) []Rect {
	frames := make([]Rect, n)
	for i := range frames {
		frames[i] = DepthFrame(bounds, i, g)
	}
	return frames
}
