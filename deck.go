package deck

// Deck is the stack manager: it keeps a bounded window of cards loaded from a
// DataSource, lays them out by depth, interpolates the lower cards toward the
// front while the front card is dragged, and recycles the window as cards
// are removed.
//
// All methods must be called from the goroutine running the game loop.
type Deck struct {
	cfg    Config
	src    DataSource
	obs    Observer
	bounds Rect
	node   *Node

	queue      []*Card
	restFrames []Rect

	loaded   int
	total    int
	current  int
	progress float64

	// gen counts Reload and LoadMore calls so removal can tell whether an
	// observer callback already rebuilt the window.
	gen uint64
}

// NewDeck creates an empty deck covering bounds. Invalid config fields are
// replaced by their defaults. Call Reload to load the first cards.
func NewDeck(bounds Rect, src DataSource, cfg Config) *Deck {
	d := &Deck{
		cfg: cfg.sanitized(),
		src: src,
		obs: NopObserver{},
	}
	d.node = NewContainer("deck")
	d.node.Interactable = true
	d.node.UserData = d
	d.setBounds(bounds)
	return d
}

// SetObserver sets the receiver of deck events. nil restores the no-op
// observer.
func (d *Deck) SetObserver(o Observer) {
	if o == nil {
		o = NopObserver{}
	}
	d.obs = o
}

// Node returns the deck's container node. Add it to a scene to display the
// deck.
func (d *Deck) Node() *Node { return d.node }

// Bounds returns the deck's bounds in its parent's space.
func (d *Deck) Bounds() Rect { return d.bounds }

// Config returns the effective configuration.
func (d *Deck) Config() Config { return d.cfg }

// Len returns the number of resident cards.
func (d *Deck) Len() int { return len(d.queue) }

// CurrentIndex returns the number of cards removed since the last Reload,
// which is also the data source index of the front card.
func (d *Deck) CurrentIndex() int { return d.current }

// Loaded returns how many cards have been populated since the last Reload.
func (d *Deck) Loaded() int { return d.loaded }

// Total returns the card count last reported by the data source.
func (d *Deck) Total() int { return d.total }

// Front returns the front card, or nil when the deck is empty.
func (d *Deck) Front() *Card {
	if len(d.queue) == 0 {
		return nil
	}
	return d.queue[0]
}

// CardAt returns the resident card at depth, or nil.
func (d *Deck) CardAt(depth int) *Card {
	if depth < 0 || depth >= len(d.queue) {
		return nil
	}
	return d.queue[depth]
}

// RestFrame returns the rest frame of the card at depth, in deck space.
func (d *Deck) RestFrame(depth int) Rect {
	if depth >= 0 && depth < len(d.restFrames) {
		return d.restFrames[depth]
	}
	return DepthFrame(d.localBounds(), depth, d.cfg.Geometry())
}

func (d *Deck) poolBound() int {
	return d.cfg.DisplayDepth + 1
}

func (d *Deck) localBounds() Rect {
	return Rect{Width: d.bounds.Width, Height: d.bounds.Height}
}

func (d *Deck) travel() float64 {
	if d.cfg.Travel > 0 {
		return d.cfg.Travel
	}
	return d.bounds.Width
}

// --- Commands ---

// Reload discards every resident card, resets the counters and loads from
// the start of the data source.
func (d *Deck) Reload() {
	for _, c := range d.queue {
		c.detach()
	}
	clear(d.queue)
	d.queue = d.queue[:0]
	d.restFrames = d.restFrames[:0]
	d.loaded = 0
	d.current = 0
	d.progress = 0
	d.gen++
	d.total = d.cardCount()
	d.fill()
	debugDeckState(d, "reload")
}

// LoadMore re-reads the card count and tops up the window without
// discarding resident cards. Use it after the data source grows.
func (d *Deck) LoadMore() {
	d.gen++
	d.total = d.cardCount()
	d.fill()
	debugDeckState(d, "load more")
}

// EjectLeft animates the front card off the left edge.
func (d *Deck) EjectLeft() bool { return d.eject(Left) }

// EjectRight animates the front card off the right edge.
func (d *Deck) EjectRight() bool { return d.eject(Right) }

func (d *Deck) eject(dir Direction) bool {
	if len(d.queue) == 0 {
		return false
	}
	return d.queue[0].Eject(dir)
}

// SetBounds moves and resizes the deck. Rest frames are recomputed and every
// resident card is laid out again. While the front card is dragged or
// animating, the lower cards keep following its last progress; a tween
// already in flight finishes on the targets it started with.
func (d *Deck) SetBounds(r Rect) {
	if r == d.bounds {
		return
	}
	d.setBounds(r)
	d.restFrames = DepthFrames(d.localBounds(), len(d.queue), d.cfg.Geometry())
	travel := d.travel()
	for i, c := range d.queue {
		c.travel = travel
		c.placeAt(d.restFrames[i])
	}
	if f := d.Front(); f != nil && f.interactive() {
		d.applyProgress(d.progress)
	}
}

func (d *Deck) setBounds(r Rect) {
	d.bounds = r
	d.node.SetPosition(r.X, r.Y)
	d.node.Width, d.node.Height = r.Width, r.Height
}

// Update advances the front card's animation by dt seconds.
func (d *Deck) Update(dt float32) {
	if len(d.queue) == 0 {
		return
	}
	d.queue[0].update(dt)
}

// --- Loading ---

func (d *Deck) cardCount() int {
	if d.src == nil {
		return 0
	}
	return max(d.src.CardCount(), 0)
}

// fill admits cards until the window is full or the data source is
// exhausted. Each card is populated at the front-card size so its content is
// laid out once at full scale, then moved to its depth. It reports whether a
// new front card was displayed; OnWillDisplay fires after the window is
// complete.
func (d *Deck) fill() (displayed bool) {
	g := d.cfg.Geometry()
	local := d.localBounds()
	for d.loaded < d.total && len(d.queue) < d.poolBound() {
		depth := len(d.queue)
		c := newCard(d, d.loaded, DepthFrame(local, 0, g), d.travel(), d.cfg.CriticalScale)
		if d.src != nil {
			d.src.PopulateCard(c, d.loaded)
		}
		frame := DepthFrame(local, depth, g)
		c.placeAt(frame)

		if depth == 0 {
			d.node.AddChild(c.node)
		} else {
			deepest := d.queue[depth-1].node
			d.node.AddChildAt(c.node, d.node.IndexOf(deepest))
		}
		c.setDraggable(depth == 0 && d.cfg.DraggingEnabled)
		if depth+1 == d.poolBound() {
			c.node.SetAlpha(0)
		}

		d.queue = append(d.queue, c)
		d.restFrames = append(d.restFrames, frame)
		d.loaded++

		if depth == 0 {
			displayed = true
		}
	}
	if displayed {
		d.obs.OnWillDisplay(d.current)
	}
	return displayed
}

// settle snaps every resident card to its rest frame and opacity.
func (d *Deck) settle() {
	last := d.poolBound() - 1
	for i, c := range d.queue {
		c.placeAt(d.restFrames[i])
		if i == last {
			c.node.SetAlpha(0)
		} else {
			c.node.SetAlpha(1)
		}
	}
}

// --- cardListener ---

// cardProgress interpolates every lower card between its own rest frame and
// the one a depth shallower, and fades in the pool-filling extra card.
func (d *Deck) cardProgress(c *Card, progress float64) {
	if len(d.queue) == 0 || d.queue[0] != c {
		return
	}
	d.applyProgress(progress)
	d.obs.OnProgress(progress)
}

func (d *Deck) applyProgress(progress float64) {
	d.progress = progress
	for i := 1; i < len(d.queue); i++ {
		d.queue[i].placeAt(LerpRect(d.restFrames[i], d.restFrames[i-1], progress))
	}
	if len(d.queue) == d.poolBound() {
		d.queue[len(d.queue)-1].node.SetAlpha(progress)
	}
}

func (d *Deck) cardRemoved(c *Card, dir Direction) {
	c.detach()
	if len(d.queue) == 0 || d.queue[0] != c {
		return
	}

	index := d.current
	copy(d.queue, d.queue[1:])
	d.queue[len(d.queue)-1] = nil
	d.queue = d.queue[:len(d.queue)-1]
	d.restFrames = d.restFrames[:len(d.queue)]
	d.current++
	d.progress = 0
	if len(d.queue) > 0 {
		d.settle()
		d.queue[0].setDraggable(d.cfg.DraggingEnabled)
	}
	debugDeckState(d, "removed "+dir.String())

	// The observer may reload or load more from here on. Once it has, the
	// window is already rebuilt and announced.
	gen := d.gen
	d.obs.OnRemoved(dir, index)
	if d.gen != gen {
		return
	}
	if len(d.queue) == 0 {
		d.obs.OnAllRemoved()
		return
	}
	if !d.fill() {
		d.obs.OnWillDisplay(d.current)
	}
}

func (d *Deck) cardWillDrag(*Card) bool {
	return d.obs.OnWillDrag(d.current)
}
