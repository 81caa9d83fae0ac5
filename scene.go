package deck

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Scene is the top-level object that owns the node tree, the decks shown in
// it, and input state.
type Scene struct {
	root  *Node
	decks []*Deck
	debug bool

	// ClearColor fills the screen before drawing when its alpha is non-zero.
	ClearColor Color

	// Input state
	pointers     [maxPointers]pointerState
	hitBuf       []*Node
	dragDeadZone float64
	touchMap     [maxPointers]ebiten.TouchID
	touchUsed    [maxPointers]bool
	touchBuf     []ebiten.TouchID
	injectQueue  []syntheticPointerEvent
	testRunner   *TestRunner
}

// NewScene creates a new scene with a pre-created root container.
func NewScene() *Scene {
	root := NewContainer("root")
	root.Interactable = true
	return &Scene{
		root:         root,
		dragDeadZone: defaultDragDeadZone,
	}
}

// Root returns the scene's root container node.
func (s *Scene) Root() *Node {
	return s.root
}

// AddDeck adds the deck's node to the root and advances the deck on every
// Update.
func (s *Scene) AddDeck(d *Deck) {
	for _, existing := range s.decks {
		if existing == d {
			return
		}
	}
	s.decks = append(s.decks, d)
	s.root.AddChild(d.Node())
}

// RemoveDeck detaches the deck's node and stops advancing it.
func (s *Scene) RemoveDeck(d *Deck) {
	for i, existing := range s.decks {
		if existing == d {
			s.decks = append(s.decks[:i], s.decks[i+1:]...)
			d.Node().RemoveFromParent()
			return
		}
	}
}

// Decks returns the decks in the scene. The returned slice MUST NOT be mutated.
func (s *Scene) Decks() []*Deck {
	return s.decks
}

// Update processes input and advances card animations by one tick.
func (s *Scene) Update() {
	s.step(float32(1.0/float64(ebiten.TPS())), true)
}

// step runs one tick. pollDevices is false in tests, where only injected
// input is processed.
func (s *Scene) step(dt float32, pollDevices bool) {
	// Refresh world transforms first so hit testing sees this frame's layout.
	updateWorldTransform(s.root, identityTransform, 1.0, false)

	if s.testRunner != nil {
		s.testRunner.step(s)
	}
	if !s.processInjectedInput() && pollDevices {
		s.processInput()
	}
	for _, d := range s.decks {
		d.Update(dt)
	}
}

// Draw renders the scene onto screen.
func (s *Scene) Draw(screen *ebiten.Image) {
	if s.ClearColor.A > 0 {
		screen.Fill(s.ClearColor.toRGBA())
	}
	updateWorldTransform(s.root, identityTransform, 1.0, false)
	drawTree(screen, s.root)
}

// SetDebugMode enables or disables debug mode. When enabled, disposed-node
// access panics and deck bookkeeping is logged to stderr.
func (s *Scene) SetDebugMode(enabled bool) {
	s.debug = enabled
	globalDebug = enabled
}
