package deck

import "testing"

func TestNopObserverPermits(t *testing.T) {
	var o Observer = NopObserver{}
	if !o.OnWillDrag(0) {
		t.Error("NopObserver should permit drags")
	}
	o.OnProgress(0.5)
	o.OnRemoved(Left, 0)
	o.OnAllRemoved()
	o.OnWillDisplay(0)
}

func TestObserverFuncs(t *testing.T) {
	var got []string
	o := ObserverFuncs{
		Removed:  func(dir Direction, index int) { got = append(got, dir.String()) },
		WillDrag: func(index int) bool { return index > 0 },
	}
	o.OnRemoved(Right, 2)
	o.OnProgress(1)
	o.OnAllRemoved()
	o.OnWillDisplay(3)

	if len(got) != 1 || got[0] != "right" {
		t.Errorf("got = %v", got)
	}
	if o.OnWillDrag(0) || !o.OnWillDrag(1) {
		t.Error("WillDrag not consulted")
	}
	if !(ObserverFuncs{}).OnWillDrag(0) {
		t.Error("nil WillDrag should permit")
	}
}

// embeddedObserver overrides one callback and inherits the rest.
type embeddedObserver struct {
	NopObserver
	all int
}

func (o *embeddedObserver) OnAllRemoved() { o.all++ }

func TestEmbeddedNopObserver(t *testing.T) {
	o := &embeddedObserver{}
	d := NewDeck(testBounds, &fakeSource{count: 1}, DefaultConfig())
	d.SetObserver(o)
	d.Reload()
	d.EjectRight()
	settleDeck(t, d)
	if o.all != 1 {
		t.Errorf("OnAllRemoved fired %d times, want 1", o.all)
	}
}
