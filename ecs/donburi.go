package ecs

import (
	"github.com/phanxgames/laser"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// PointerEventType is the Donburi event type for laser pointer events.
var PointerEventType = events.NewEventType[laser.PointerEvent]()

type donburiStore struct {
	world donburi.World
}

// NewDonburiStore creates an EntityStore backed by a Donburi world.
// Pointer events are published to PointerEventType and can be consumed with
// Subscribe and ProcessEvents.
func NewDonburiStore(world donburi.World) laser.EntityStore {
	return &donburiStore{world: world}
}

func (s *donburiStore) EmitEvent(event laser.PointerEvent) {
	PointerEventType.Publish(s.world, event)
}
