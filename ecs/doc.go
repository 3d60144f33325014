// Package ecs provides ECS adapters for laser's pointer event system.
//
// The primary adapter is [NewDonburiStore], which bridges laser pointer
// events (enter, exit, down, up, click, drag) into a [Donburi] world as typed
// events. Subscribe to [PointerEventType] in your ECS systems to receive them.
//
// Usage:
//
//	store := ecs.NewDonburiStore(world)
//	pointer.AddEntityStore(store)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
