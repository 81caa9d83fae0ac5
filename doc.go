// Package deck is a swipeable, stacked-card widget for [Ebitengine].
//
// A [Deck] shows a bounded window of cards loaded from a [DataSource]. The
// front card follows the pointer horizontally and tilts as it moves. Releasing
// it past a critical width ejects it off that side; otherwise it springs
// back. Cards behind the front one are drawn smaller and lower to suggest
// depth, and they slide toward the front as the front card leaves.
//
// # Quick start
//
//	scene := deck.NewScene()
//	d := deck.NewDeck(deck.Rect{X: 40, Y: 80, Width: 300, Height: 420}, src, deck.DefaultConfig())
//	d.SetObserver(deck.ObserverFuncs{
//		Removed: func(dir deck.Direction, index int) { log.Printf("card %d went %s", index, dir) },
//	})
//	scene.AddDeck(d)
//	d.Reload()
//	deck.Run(scene, deck.RunConfig{Title: "Cards", Width: 380, Height: 640})
//
// For full control, implement [ebiten.Game] yourself and call
// [Scene.Update] and [Scene.Draw] directly.
//
// # Cards
//
// Every card owns a container [Node]. [DataSource.PopulateCard] adds the
// card's content as children of that node while the card has the front-card
// size; the deck records that geometry and scales it proportionally when the
// card is shown at a smaller depth. Text font sizes are scaled too, in steps
// of 0.1.
//
// A card can also be driven without pointer input: [Card.BeginDrag],
// [Card.DragTo] and [Card.EndDrag] feed the same state machine the pointer
// does, and [Deck.EjectLeft] / [Deck.EjectRight] eject the front card.
//
// # Events
//
// [Observer] receives drag progress, removals, the deck emptying, a veto
// before each drag, and the index of each card as it reaches the front.
// Progress is reported both while dragging and while the deck animates a
// card, so observers cannot tell the two apart. Embed [NopObserver] or use
// [ObserverFuncs] to handle a subset.
//
// [Ebitengine]: https://ebitengine.org
package deck
