package ecs

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/phanxgames/laser"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

func TestNewDonburiStore(t *testing.T) {
	world := donburi.NewWorld()
	store := NewDonburiStore(world)
	if store == nil {
		t.Fatal("NewDonburiStore returned nil")
	}
}

func TestDonburiStore_EmitEvent(t *testing.T) {
	world := donburi.NewWorld()
	store := NewDonburiStore(world)

	var received []laser.PointerEvent
	PointerEventType.Subscribe(world, func(w donburi.World, e laser.PointerEvent) {
		received = append(received, e)
	})

	store.EmitEvent(laser.PointerEvent{
		Kind:     laser.EventDown,
		EntityID: 42,
		Local:    laser.Vec2{X: 100, Y: 200},
	})
	store.EmitEvent(laser.PointerEvent{
		Kind:       laser.EventDrag,
		WorldDelta: mgl64.Vec3{0.5, 0, 0},
	})

	// Events are queued until ProcessEvents.
	PointerEventType.ProcessEvents(world)

	if len(received) != 2 {
		t.Fatalf("expected 2 events, got %d", len(received))
	}
	if received[0].Kind != laser.EventDown || received[0].EntityID != 42 {
		t.Errorf("event 0: %+v", received[0])
	}
	if received[0].Local.X != 100 || received[0].Local.Y != 200 {
		t.Errorf("event 0 local: %+v", received[0].Local)
	}
	if received[1].Kind != laser.EventDrag || received[1].WorldDelta.X() != 0.5 {
		t.Errorf("event 1: %+v", received[1])
	}
}

func TestDonburiStore_FromPointer(t *testing.T) {
	world := donburi.NewWorld()

	reg := laser.NewSurfaceRegistry()
	panel := laser.NewPanel("menu", mgl64.Vec3{0, 0, -2}, 2, 1, 100)
	btn := laser.NewButton("play", 200, 100)
	btn.EntityID = 7
	panel.Root().AddChild(btn)
	reg.Register(panel)

	p := laser.NewPointer(laser.PointerConfig{ID: 1}, reg, laser.NewColliderWorld())
	p.AddEntityStore(NewDonburiStore(world))

	var kinds []laser.EventKind
	PointerEventType.Subscribe(world, func(w donburi.World, e laser.PointerEvent) {
		if e.EntityID != 7 || e.PointerID != 1 {
			t.Errorf("unexpected event %+v", e)
		}
		kinds = append(kinds, e.Kind)
	})

	ray := laser.NewRay(mgl64.Vec3{}, mgl64.Vec3{0, 0, -1}, 10, 5)
	p.Update(ray, false)
	p.Update(ray, true)
	p.Update(ray, false)
	events.ProcessAllEvents(world)

	want := []laser.EventKind{laser.EventEnter, laser.EventDown, laser.EventUp, laser.EventClick}
	if len(kinds) != len(want) {
		t.Fatalf("got %v, want %v", kinds, want)
	}
	for i := range want {
		if kinds[i] != want[i] {
			t.Errorf("event %d = %v, want %v", i, kinds[i], want[i])
		}
	}
}

func TestDonburiStore_MultipleSubscribers(t *testing.T) {
	world := donburi.NewWorld()
	store := NewDonburiStore(world)

	var count1, count2 int
	PointerEventType.Subscribe(world, func(w donburi.World, e laser.PointerEvent) {
		count1++
	})
	PointerEventType.Subscribe(world, func(w donburi.World, e laser.PointerEvent) {
		count2++
	})

	store.EmitEvent(laser.PointerEvent{Kind: laser.EventClick})
	events.ProcessAllEvents(world)

	if count1 != 1 || count2 != 1 {
		t.Errorf("expected both subscribers called once, got %d and %d", count1, count2)
	}
}
