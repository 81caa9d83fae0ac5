// Package ecs provides ECS adapters for deck.
package ecs

import (
	"github.com/phanxgames/deck"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// DeckEventKind identifies which observer callback produced a DeckEvent.
type DeckEventKind uint8

const (
	DeckProgress DeckEventKind = iota
	DeckRemoved
	DeckAllRemoved
	DeckWillDisplay
)

// DeckEvent is a deck observer callback captured as a value.
type DeckEvent struct {
	Kind      DeckEventKind
	Direction deck.Direction // DeckRemoved only
	Index     int            // DeckRemoved, DeckWillDisplay
	Progress  float64        // DeckProgress only
}

// DeckEventType is the Donburi event type for deck events.
// Subscribe to this in your ECS systems to receive removals and progress.
var DeckEventType = events.NewEventType[DeckEvent]()

type donburiObserver struct {
	world    donburi.World
	willDrag func(index int) bool
}

// NewObserver creates a deck.Observer backed by a Donburi world. Events are
// queued on DeckEventType and delivered by ProcessEvents. willDrag answers
// the synchronous drag veto; nil permits every drag.
func NewObserver(world donburi.World, willDrag func(index int) bool) deck.Observer {
	return &donburiObserver{world: world, willDrag: willDrag}
}

func (o *donburiObserver) OnProgress(p float64) {
	DeckEventType.Publish(o.world, DeckEvent{Kind: DeckProgress, Progress: p})
}

func (o *donburiObserver) OnRemoved(dir deck.Direction, index int) {
	DeckEventType.Publish(o.world, DeckEvent{Kind: DeckRemoved, Direction: dir, Index: index})
}

func (o *donburiObserver) OnAllRemoved() {
	DeckEventType.Publish(o.world, DeckEvent{Kind: DeckAllRemoved})
}

func (o *donburiObserver) OnWillDrag(index int) bool {
	if o.willDrag == nil {
		return true
	}
	return o.willDrag(index)
}

func (o *donburiObserver) OnWillDisplay(index int) {
	DeckEventType.Publish(o.world, DeckEvent{Kind: DeckWillDisplay, Index: index})
}
