// Package ecs provides ECS adapters for deck's observer events.
//
// The primary adapter is [NewObserver], which bridges deck events (progress,
// removal, emptied, front card displayed) into a [Donburi] world as typed
// events. Subscribe to [DeckEventType] in your ECS systems to receive them.
//
// Usage:
//
//	d.SetObserver(ecs.NewObserver(world, nil))
//	ecs.DeckEventType.Subscribe(world, onDeckEvent)
//	// each tick, after scene.Update():
//	ecs.DeckEventType.ProcessEvents(world)
//
// The drag veto cannot be queued, so it is answered synchronously by the
// function passed to NewObserver.
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
