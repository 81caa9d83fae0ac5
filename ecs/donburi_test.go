package ecs

import (
	"testing"

	"github.com/phanxgames/deck"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

type countSource int

func (n countSource) CardCount() int { return int(n) }
func (n countSource) PopulateCard(*deck.Card, int) {}

func TestNewObserver(t *testing.T) {
	world := donburi.NewWorld()
	if NewObserver(world, nil) == nil {
		t.Fatal("NewObserver returned nil")
	}
}

func TestObserver_PublishesQueuedEvents(t *testing.T) {
	world := donburi.NewWorld()
	obs := NewObserver(world, nil)

	var received []DeckEvent
	DeckEventType.Subscribe(world, func(w donburi.World, e DeckEvent) {
		received = append(received, e)
	})

	obs.OnProgress(0.25)
	obs.OnRemoved(deck.Left, 3)
	obs.OnWillDisplay(4)
	obs.OnAllRemoved()

	if len(received) != 0 {
		t.Fatalf("events delivered before ProcessEvents: %d", len(received))
	}
	DeckEventType.ProcessEvents(world)

	if len(received) != 4 {
		t.Fatalf("expected 4 events, got %d", len(received))
	}
	if e := received[0]; e.Kind != DeckProgress || e.Progress != 0.25 {
		t.Errorf("event 0: %+v", e)
	}
	if e := received[1]; e.Kind != DeckRemoved || e.Direction != deck.Left || e.Index != 3 {
		t.Errorf("event 1: %+v", e)
	}
	if e := received[2]; e.Kind != DeckWillDisplay || e.Index != 4 {
		t.Errorf("event 2: %+v", e)
	}
	if e := received[3]; e.Kind != DeckAllRemoved {
		t.Errorf("event 3: %+v", e)
	}
}

func TestObserver_WillDragDefaultsToPermit(t *testing.T) {
	world := donburi.NewWorld()
	if !NewObserver(world, nil).OnWillDrag(0) {
		t.Error("nil willDrag should permit")
	}
	veto := NewObserver(world, func(index int) bool { return index != 2 })
	if veto.OnWillDrag(2) {
		t.Error("willDrag(2) should be vetoed")
	}
	if !veto.OnWillDrag(1) {
		t.Error("willDrag(1) should be permitted")
	}
}

func TestObserver_DrivenByDeck(t *testing.T) {
	world := donburi.NewWorld()

	var removed, displayed []int
	DeckEventType.Subscribe(world, func(w donburi.World, e DeckEvent) {
		switch e.Kind {
		case DeckRemoved:
			if e.Direction != deck.Right {
				t.Errorf("removed direction = %v, want right", e.Direction)
			}
			removed = append(removed, e.Index)
		case DeckWillDisplay:
			displayed = append(displayed, e.Index)
		}
	})

	d := deck.NewDeck(deck.Rect{Width: 300, Height: 400}, countSource(2), deck.DefaultConfig())
	d.SetObserver(NewObserver(world, nil))
	d.Reload()

	if !d.EjectRight() {
		t.Fatal("EjectRight refused on idle front card")
	}
	for range 60 {
		d.Update(1.0 / 60)
	}
	events.ProcessAllEvents(world)

	if len(removed) != 1 || removed[0] != 0 {
		t.Errorf("removed = %v, want [0]", removed)
	}
	if len(displayed) != 2 || displayed[0] != 0 || displayed[1] != 1 {
		t.Errorf("displayed = %v, want [0 1]", displayed)
	}
}
