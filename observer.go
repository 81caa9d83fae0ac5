package deck

// DataSource supplies cards to a Deck.
type DataSource interface {
	// CardCount returns the total number of cards available.
	CardCount() int

	// PopulateCard attaches the visual content of the card at index as
	// children of card.Node(). It is called once per card, before the card
	// is visible, while the card has the full front-card size.
	PopulateCard(card *Card, index int)
}

// Observer receives deck events. Embed NopObserver to implement a subset.
type Observer interface {
	// OnProgress reports the front card's normalized horizontal travel,
	// during both dragging and the scripted eject/restore animations.
	// Values above 1 are possible.
	OnProgress(progress float64)

	// OnRemoved fires when the card at index has left the deck.
	OnRemoved(dir Direction, index int)

	// OnAllRemoved fires when a removal leaves the deck empty.
	OnAllRemoved()

	// OnWillDrag is asked before the front card at index starts a drag or a
	// programmatic eject. Returning false vetoes it.
	OnWillDrag(index int) bool

	// OnWillDisplay fires when the card at index becomes the front card.
	OnWillDisplay(index int)
}

// NopObserver implements Observer with no-op methods that permit every drag.
type NopObserver struct{}

func (NopObserver) OnProgress(float64) {}
func (NopObserver) OnRemoved(Direction, int) {}
func (NopObserver) OnAllRemoved() {}
func (NopObserver) OnWillDrag(int) bool { return true }
func (NopObserver) OnWillDisplay(int) {}

// ObserverFuncs adapts optional callbacks to Observer. Nil fields behave
// like NopObserver.
type ObserverFuncs struct {
	Progress    func(progress float64)
	Removed     func(dir Direction, index int)
	AllRemoved  func()
	WillDrag    func(index int) bool
	WillDisplay func(index int)
}

func (f ObserverFuncs) OnProgress(p float64) {
	if f.Progress != nil {
		f.Progress(p)
	}
}

func (f ObserverFuncs) OnRemoved(dir Direction, index int) {
	if f.Removed != nil {
		f.Removed(dir, index)
	}
}

func (f ObserverFuncs) OnAllRemoved() {
	if f.AllRemoved != nil {
		f.AllRemoved()
	}
}

func (f ObserverFuncs) OnWillDrag(index int) bool {
	if f.WillDrag != nil {
		return f.WillDrag(index)
	}
	return true
}

func (f ObserverFuncs) OnWillDisplay(index int) {
	if f.WillDisplay != nil {
		f.WillDisplay(index)
	}
}

// cardListener is the contract a Card reports to its owner through.
type cardListener interface {
	cardProgress(c *Card, progress float64)
	cardRemoved(c *Card, dir Direction)
	cardWillDrag(c *Card) bool
}
