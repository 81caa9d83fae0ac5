package deck

import "math"

// positionSource reports the live, mid-animation position of whatever is
// being animated. Cards read it from their node, which the tween writes to.
type positionSource interface {
	CurrentPosition() Vec2
}

// nodePosition adapts a Node's X/Y to positionSource.
type nodePosition struct{ n *Node }

func (p nodePosition) CurrentPosition() Vec2 {
	return Vec2{p.n.X, p.n.Y}
}

// sampler turns an in-flight scripted animation back into drag progress.
// It is started right before a commit/restore tween begins and stopped when
// the tween completes; while stopped, sample reports ok=false.
type sampler struct {
	src    positionSource
	origin Vec2
	travel float64
	active bool
}

func (s *sampler) start(src positionSource, origin Vec2, travel float64) {
	s.src = src
	s.origin = origin
	s.travel = travel
	s.active = true
}

func (s *sampler) stop() {
	s.active = false
	s.src = nil
}

// sample returns |x - origin.x| / travel for the current position.
func (s *sampler) sample() (progress float64, ok bool) {
	if !s.active || s.src == nil || s.travel == 0 {
		return 0, false
	}
	pos := s.src.CurrentPosition()
	return math.Abs((pos.X - s.origin.X) / s.travel), true
}
