package deck

import (
	"math"

	"github.com/tanema/gween/ease"
)

// MaxRadian is the rotation of a card dragged one full travel width, and the
// rotation a programmatic eject ends at (36 degrees).
const MaxRadian = math.Pi / 5

const (
	commitDuration  float32 = 0.3
	restoreDuration float32 = 0.3
	ejectDuration   float32 = 0.4
)

// CardState is the phase of a card's drag lifecycle.
type CardState uint8

const (
	CardIdle            CardState = iota // at rest, accepts drags and ejects
	CardDragging                         // following the pointer
	CardRestoring                        // animating back to rest
	CardCommittingLeft                   // animating off the left edge
	CardCommittingRight                  // animating off the right edge
	CardDetached                         // removed from the deck
)

var cardStateNames = [...]string{"idle", "dragging", "restoring", "committing-left", "committing-right", "detached"}

func (s CardState) String() string {
	if int(s) < len(cardStateNames) {
		return cardStateNames[s]
	}
	return "unknown"
}

// Card is one entity of a Deck. Its Node is positioned at the bottom-center
// of its frame and rotates around that point; content added by the
// DataSource lives in the node's local space, (0,0) to (Width, Height).
type Card struct {
	node  *Node
	owner cardListener
	index int

	frame         Rect
	travel        float64
	criticalScale float64

	state     CardState
	draggable bool
	animating bool
	refused   bool

	rest    Vec2
	hasRest bool
	offset  Vec2

	tween   *TweenGroup
	sampler sampler
	ref     refLayout
}

// newCard creates a card at frame. The frame width becomes the card's
// reference width for proportional content scaling.
func newCard(owner cardListener, index int, frame Rect, travel, criticalScale float64) *Card {
	c := &Card{
		node:          NewContainer("card"),
		owner:         owner,
		index:         index,
		travel:        travel,
		criticalScale: criticalScale,
	}
	c.node.UserData = c
	c.node.OnDragStart = func(DragContext) { c.BeginDrag() }
	c.node.OnDrag = func(ctx DragContext) { c.DragTo(ctx.Translation()) }
	c.node.OnDragEnd = func(ctx DragContext) {
		if c.state == CardDragging {
			c.offset = ctx.Translation()
		}
		c.EndDrag()
	}
	c.ref.width = frame.Width
	c.setGeometry(frame)
	return c
}

// Node returns the card's container node. Add content as its children.
func (c *Card) Node() *Node { return c.node }

// Index returns the data source index the card was populated from.
func (c *Card) Index() int { return c.index }

// Frame returns the card's current frame in deck space.
func (c *Card) Frame() Rect { return c.frame }

// Position returns the live anchor point, including drag and animation.
func (c *Card) Position() Vec2 { return Vec2{c.node.X, c.node.Y} }

// Rotation returns the live rotation in radians.
func (c *Card) Rotation() float64 { return c.node.Rotation }

// Alpha returns the card's opacity.
func (c *Card) Alpha() float64 { return c.node.Alpha }

// State returns the card's lifecycle phase.
func (c *Card) State() CardState { return c.state }

// Draggable reports whether the card accepts drags.
func (c *Card) Draggable() bool { return c.draggable }

// Animating reports whether a commit, restore or eject is in flight.
func (c *Card) Animating() bool { return c.animating }

// DragOffset returns the latest translation since drag-begin.
func (c *Card) DragOffset() Vec2 { return c.offset }

// RestPosition returns the position captured at drag-begin. ok is false when
// no drag or eject is in progress.
func (c *Card) RestPosition() (pos Vec2, ok bool) { return c.rest, c.hasRest }

// SetContentVisible shows or hides everything the DataSource added to the
// card. The card itself stays interactive.
func (c *Card) SetContentVisible(visible bool) {
	for _, child := range c.node.Children() {
		child.Visible = visible
	}
}

// CriticalWidth is the horizontal drag distance past which a release ejects.
func (c *Card) CriticalWidth() float64 {
	return c.frame.Width / 2 * c.criticalScale
}

func (c *Card) interactive() bool {
	return c.state == CardDragging || c.animating
}

func (c *Card) setDraggable(v bool) {
	c.draggable = v
	c.node.Interactable = v
}

// placeAt moves and resizes the card to frame and runs the content layout
// pass.
func (c *Card) placeAt(frame Rect) {
	c.setGeometry(frame)
	c.layout()
}

// setGeometry records frame and resizes the node. While the card is
// interactive the gesture or tween owns the position, so it is left alone.
func (c *Card) setGeometry(frame Rect) {
	c.frame = frame
	n := c.node
	n.Width, n.Height = frame.Width, frame.Height
	n.SetPivot(frame.Width/2, frame.Height)
	n.HitShape = HitRect{Width: frame.Width, Height: frame.Height}
	if !c.interactive() {
		a := frame.Anchor()
		n.SetPosition(a.X, a.Y)
	}
}

// layout scales the content to the current width relative to the
// reference width. The first pass captures the reference geometry.
func (c *Card) layout() {
	if !c.ref.captured() {
		c.ref.capture(c.node)
	}
	if c.interactive() || c.ref.width == 0 {
		return
	}
	c.ref.apply(c.node, c.frame.Width/c.ref.width)
}

// BeginDrag starts a drag. It returns false, and the rest of the gesture is
// ignored, when the card is not draggable, is animating, or the owner
// vetoes it.
func (c *Card) BeginDrag() bool {
	if !c.draggable || c.state != CardIdle || c.animating {
		c.refused = true
		return false
	}
	if c.owner != nil && !c.owner.cardWillDrag(c) {
		c.refused = true
		debugf("card %d: drag vetoed", c.index)
		return false
	}
	c.refused = false
	c.state = CardDragging
	c.rest = c.Position()
	c.hasRest = true
	c.offset = Vec2{}
	return true
}

// DragTo moves the card to its rest position plus offset, rotates it in
// proportion to the horizontal travel, and reports progress.
func (c *Card) DragTo(offset Vec2) {
	if c.state != CardDragging {
		return
	}
	c.offset = offset
	p := c.rest.Add(offset)
	c.node.SetPosition(p.X, p.Y)

	var ratio float64
	if c.travel != 0 {
		ratio = offset.X / c.travel
	}
	c.node.SetRotation(ratio * MaxRadian)
	c.emitProgress(math.Abs(ratio))
}

// EndDrag releases the card: past the critical width it is ejected on that
// side, otherwise it animates back to rest.
func (c *Card) EndDrag() {
	if c.refused {
		c.refused = false
		return
	}
	if c.state != CardDragging {
		return
	}
	crit := c.CriticalWidth()
	switch {
	case c.offset.X > crit:
		c.commit(Right)
	case c.offset.X < -crit:
		c.commit(Left)
	default:
		c.restore()
	}
}

// Eject animates the card off the given side without a gesture. It is a
// no-op while the card is animating, being dragged, or vetoed by the owner.
func (c *Card) Eject(dir Direction) bool {
	if c.animating || c.state != CardIdle {
		return false
	}
	if c.owner != nil && !c.owner.cardWillDrag(c) {
		return false
	}
	c.rest = c.Position()
	c.hasRest = true
	c.offset = Vec2{}
	s := dir.sign()
	c.animate(committingState(dir),
		TweenTransform(c.node, c.rest.X+s*c.travel, c.rest.Y, s*MaxRadian, ejectDuration, ease.Linear))
	return true
}

func (c *Card) commit(dir Direction) {
	x := c.rest.X + dir.sign()*c.travel
	y := c.rest.Y + 2*c.offset.Y
	c.animate(committingState(dir), TweenPosition(c.node, x, y, commitDuration, ease.OutQuad))
}

func (c *Card) restore() {
	c.animate(CardRestoring, TweenTransform(c.node, c.rest.X, c.rest.Y, 0, restoreDuration, ease.Linear))
}

func (c *Card) animate(state CardState, tw *TweenGroup) {
	if c.animating {
		return
	}
	c.sampler.start(nodePosition{c.node}, c.rest, c.travel)
	c.animating = true
	c.state = state
	c.tween = tw
	debugf("card %d: %s", c.index, state)
}

// update advances an in-flight animation by dt seconds, reports the sampled
// progress and completes the animation when the tween is done.
func (c *Card) update(dt float32) {
	tw := c.tween
	if tw == nil {
		return
	}
	tw.Update(dt)
	if p, ok := c.sampler.sample(); ok {
		c.emitProgress(p)
	}
	// A progress observer may have reloaded the deck and detached the card.
	if c.tween == tw && tw.Done {
		c.finish()
	}
}

func (c *Card) finish() {
	c.sampler.stop()
	c.tween = nil
	c.animating = false
	state := c.state
	switch state {
	case CardRestoring:
		c.state = CardIdle
		c.hasRest = false
		c.offset = Vec2{}
		c.layout()
	case CardCommittingLeft, CardCommittingRight:
		c.state = CardDetached
		dir := Right
		if state == CardCommittingLeft {
			dir = Left
		}
		if c.owner != nil {
			c.owner.cardRemoved(c, dir)
		}
	}
}

func (c *Card) emitProgress(p float64) {
	if c.owner != nil {
		c.owner.cardProgress(c, p)
	}
}

// detach disposes the rendering presence and drops the reference geometry.
func (c *Card) detach() {
	c.state = CardDetached
	c.tween = nil
	c.sampler.stop()
	c.animating = false
	c.ref.reset()
	c.node.Dispose()
}

func committingState(dir Direction) CardState {
	if dir == Left {
		return CardCommittingLeft
	}
	return CardCommittingRight
}
