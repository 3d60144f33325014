package laser

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestDragSessionMove(t *testing.T) {
	p, handle := fullPanel("p", 2)
	var d DragSession

	start, ok := d.Begin(handle, forwardRay(10), 2)
	if !ok {
		t.Fatal("Begin rejected")
	}
	if start.Kind != EventDragStart || start.Handle != handle {
		t.Errorf("start = %+v", start)
	}
	if !start.LocalValid || start.Local != (Vec2{100, 100}) {
		t.Errorf("start local = %v (valid %v), want (100, 100)", start.Local, start.LocalValid)
	}

	// Aim at the point half a unit right of the panel center.
	target := p.Unproject(Vec2{150, 100})
	ctx, ok := d.Move(NewRay(mgl64.Vec3{}, target, 10, 5))
	if !ok || ctx.Kind != EventDrag {
		t.Fatalf("Move = %+v, %v", ctx, ok)
	}
	if math.Abs(ctx.World.Len()-2) > 1e-9 {
		t.Errorf("grab point %v should stay 2 units from the origin", ctx.World)
	}
	if ctx.WorldDelta.X() <= 0 {
		t.Errorf("WorldDelta = %v, want positive X", ctx.WorldDelta)
	}
	if !vecNear(ctx.Start, mgl64.Vec3{0, 0, -2}) {
		t.Errorf("Start = %v, want (0, 0, -2)", ctx.Start)
	}
	if !ctx.LocalValid || math.Abs(ctx.LocalDelta.X-50) > 1e-6 || math.Abs(ctx.LocalDelta.Y) > 1e-6 {
		t.Errorf("LocalDelta = %v (valid %v), want (50, 0)", ctx.LocalDelta, ctx.LocalValid)
	}

	end, ok := d.End(NewRay(mgl64.Vec3{}, target, 10, 5))
	if !ok || end.Kind != EventDragEnd || end.WorldDelta.Len() > 1e-9 {
		t.Errorf("End = %+v, %v; want zero delta", end, ok)
	}
	if d.Active() || d.Handle() != nil {
		t.Error("session should be inactive after End")
	}
}

func TestDragSessionRejectsSecondBegin(t *testing.T) {
	_, a := fullPanel("a", 2)
	_, b := fullPanel("b", 3)
	var d DragSession

	if _, ok := d.Begin(a, forwardRay(10), 2); !ok {
		t.Fatal("first Begin rejected")
	}
	if _, ok := d.Begin(b, forwardRay(10), 3); ok {
		t.Error("second Begin should be rejected while active")
	}
	if d.Handle() != a {
		t.Errorf("Handle() = %v, want the first handle", elName(d.Handle()))
	}
	if _, ok := d.End(forwardRay(10)); !ok {
		t.Fatal("End rejected")
	}
	if _, ok := d.Begin(b, forwardRay(10), 3); !ok {
		t.Error("Begin should succeed after End")
	}
}

func TestDragSessionInactive(t *testing.T) {
	var d DragSession
	if _, ok := d.Move(forwardRay(10)); ok {
		t.Error("Move without a session should report false")
	}
	if _, ok := d.End(forwardRay(10)); ok {
		t.Error("End without a session should report false")
	}
	if _, ok := d.Begin(nil, forwardRay(10), 1); ok {
		t.Error("Begin with a nil handle should be rejected")
	}
}

func TestDragSessionEndWithDegenerateRay(t *testing.T) {
	_, handle := fullPanel("p", 2)
	var d DragSession
	d.Begin(handle, forwardRay(10), 2)

	end, ok := d.End(NewRay(mgl64.Vec3{}, mgl64.Vec3{}, 10, 5))
	if !ok {
		t.Fatal("End rejected")
	}
	if !vecNear(end.World, mgl64.Vec3{0, 0, -2}) {
		t.Errorf("World = %v, want the last grab point", end.World)
	}
}

func TestDragSessionDetachedHandle(t *testing.T) {
	handle := NewButton("loose", 10, 10)
	var d DragSession
	ctx, ok := d.Begin(handle, forwardRay(10), 1)
	if !ok {
		t.Fatal("Begin rejected")
	}
	if ctx.LocalValid {
		t.Error("a handle without a surface has no local coordinates")
	}
	d.Cancel()
	if d.Active() {
		t.Error("Cancel should end the session")
	}
}
