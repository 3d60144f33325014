package laser

import "github.com/go-gl/mathgl/mgl64"

// DragSession tracks the drag gesture of a single pointer on a drag handle.
// Only one session can be active at a time: Begin is rejected while a session
// is running and the caller must End it first.
//
// Movement is measured at the grab point, the ray point at the distance the
// handle was grabbed from, so turning the hand moves the handle along a
// sphere around the pointer.
type DragSession struct {
	handle   *Element
	active   bool
	distance float64

	start     mgl64.Vec3
	last      mgl64.Vec3
	lastLocal Vec2
	lastValid bool
}

// Active reports whether a session is running.
func (d *DragSession) Active() bool {
	return d.active
}

// Handle returns the handle being dragged, or nil.
func (d *DragSession) Handle() *Element {
	return d.handle
}

// Begin starts a session on handle grabbed at distance along ray. It returns
// false, leaving the running session untouched, if a session is already
// active or handle is nil.
func (d *DragSession) Begin(handle *Element, ray Ray, distance float64) (DragContext, bool) {
	if d.active || handle == nil {
		return DragContext{}, false
	}
	d.handle = handle
	d.active = true
	d.distance = distance
	d.start = ray.At(distance)
	d.last = d.start
	d.lastLocal, d.lastValid = d.project(ray)

	return DragContext{
		Kind:       EventDragStart,
		Handle:     handle,
		World:      d.start,
		Start:      d.start,
		Local:      d.lastLocal,
		LocalValid: d.lastValid,
	}, true
}

// Move advances the session to the current ray and returns the movement
// since the previous tick. It reports false when no session is active.
func (d *DragSession) Move(ray Ray) (DragContext, bool) {
	if !d.active {
		return DragContext{}, false
	}
	ctx := d.step(ray)
	ctx.Kind = EventDrag
	return ctx, true
}

// End stops the session, returning the final movement. It reports false when
// no session is active.
func (d *DragSession) End(ray Ray) (DragContext, bool) {
	if !d.active {
		return DragContext{}, false
	}
	var ctx DragContext
	if ray.Valid() {
		ctx = d.step(ray)
	} else {
		ctx = DragContext{Handle: d.handle, World: d.last, Start: d.start, Local: d.lastLocal, LocalValid: d.lastValid}
	}
	ctx.Kind = EventDragEnd
	d.reset()
	return ctx, true
}

// Cancel drops the session without producing a final context.
func (d *DragSession) Cancel() {
	d.reset()
}

func (d *DragSession) reset() {
	*d = DragSession{}
}

func (d *DragSession) step(ray Ray) DragContext {
	point := ray.At(d.distance)
	ctx := DragContext{
		Handle:     d.handle,
		World:      point,
		Start:      d.start,
		WorldDelta: point.Sub(d.last),
	}
	local, valid := d.project(ray)
	if valid {
		ctx.Local = local
		ctx.LocalValid = true
		if d.lastValid {
			ctx.LocalDelta = Vec2{X: local.X - d.lastLocal.X, Y: local.Y - d.lastLocal.Y}
		}
	}
	d.last = point
	d.lastLocal, d.lastValid = local, valid
	return ctx
}

// project intersects ray with the handle surface's plane.
func (d *DragSession) project(ray Ray) (Vec2, bool) {
	s := d.handle.Surface()
	if s == nil {
		return Vec2{}, false
	}
	t, ok := s.Plane().Intersect(ray)
	if !ok {
		return Vec2{}, false
	}
	return s.Project(ray.At(t))
}
