package laser

import "github.com/go-gl/mathgl/mgl64"

// PointerContext carries pointer event data. Local, World and Distance
// describe the pointer's winning hit for the tick the event fired in; they
// are zero when the tick had no hit (e.g. an exit into empty space).
type PointerContext struct {
	Kind      EventKind
	Element   *Element
	EntityID  uint32
	UserData  any
	PointerID int
	Surface   Surface
	Local     Vec2
	World     mgl64.Vec3
	Distance  float64
}

// DragContext carries drag session data for a drag handle.
type DragContext struct {
	Kind      EventKind
	Handle    *Element
	EntityID  uint32
	UserData  any
	PointerID int

	// World is the grab point: the ray point at the distance the session
	// started at. Start is the grab point when the session began.
	World mgl64.Vec3
	Start mgl64.Vec3
	// WorldDelta is the grab point's movement since the previous tick.
	WorldDelta mgl64.Vec3

	// Local and LocalDelta are the same in the handle surface's coordinates.
	// LocalValid is false when the ray misses the handle's plane.
	Local      Vec2
	LocalDelta Vec2
	LocalValid bool
}

// EntityStore receives every dispatched event, e.g. to forward it into an
// ECS world or a remote inspector.
type EntityStore interface {
	EmitEvent(event PointerEvent)
}

// PointerEvent is the flattened form of a dispatched event for EntityStores.
type PointerEvent struct {
	Kind        EventKind
	PointerID   int
	ElementID   uint32
	ElementName string
	EntityID    uint32
	Local       Vec2
	World       mgl64.Vec3
	Distance    float64
	// Drag fields (valid for EventDragStart, EventDrag, EventDragEnd)
	WorldDelta mgl64.Vec3
	LocalDelta Vec2
}

// --- Handler registry ---

type pointerHandler struct {
	id uint32
	fn func(PointerContext)
}

type dragHandler struct {
	id uint32
	fn func(DragContext)
}

type handlerRegistry struct {
	enter     []pointerHandler
	exit      []pointerHandler
	down      []pointerHandler
	up        []pointerHandler
	click     []pointerHandler
	dragStart []dragHandler
	drag      []dragHandler
	dragEnd   []dragHandler
	nextID    uint32
}

// CallbackHandle allows removing a registered pointer-level callback.
type CallbackHandle struct {
	id    uint32
	reg   *handlerRegistry
	event EventKind
}

// Remove unregisters this callback so it no longer fires.
func (h CallbackHandle) Remove() {
	if h.reg == nil {
		return
	}
	switch h.event {
	case EventEnter:
		h.reg.enter = removePointerHandler(h.reg.enter, h.id)
	case EventExit:
		h.reg.exit = removePointerHandler(h.reg.exit, h.id)
	case EventDown:
		h.reg.down = removePointerHandler(h.reg.down, h.id)
	case EventUp:
		h.reg.up = removePointerHandler(h.reg.up, h.id)
	case EventClick:
		h.reg.click = removePointerHandler(h.reg.click, h.id)
	case EventDragStart:
		h.reg.dragStart = removeDragHandler(h.reg.dragStart, h.id)
	case EventDrag:
		h.reg.drag = removeDragHandler(h.reg.drag, h.id)
	case EventDragEnd:
		h.reg.dragEnd = removeDragHandler(h.reg.dragEnd, h.id)
	}
}

func removePointerHandler(s []pointerHandler, id uint32) []pointerHandler {
	for i := range s {
		if s[i].id == id {
			copy(s[i:], s[i+1:])
			s[len(s)-1] = pointerHandler{}
			return s[:len(s)-1]
		}
	}
	return s
}

func removeDragHandler(s []dragHandler, id uint32) []dragHandler {
	for i := range s {
		if s[i].id == id {
			copy(s[i:], s[i+1:])
			s[len(s)-1] = dragHandler{}
			return s[:len(s)-1]
		}
	}
	return s
}

func (r *handlerRegistry) addPointer(kind EventKind, fn func(PointerContext)) CallbackHandle {
	r.nextID++
	h := pointerHandler{id: r.nextID, fn: fn}
	switch kind {
	case EventEnter:
		r.enter = append(r.enter, h)
	case EventExit:
		r.exit = append(r.exit, h)
	case EventDown:
		r.down = append(r.down, h)
	case EventUp:
		r.up = append(r.up, h)
	case EventClick:
		r.click = append(r.click, h)
	}
	return CallbackHandle{id: h.id, reg: r, event: kind}
}

func (r *handlerRegistry) addDrag(kind EventKind, fn func(DragContext)) CallbackHandle {
	r.nextID++
	h := dragHandler{id: r.nextID, fn: fn}
	switch kind {
	case EventDragStart:
		r.dragStart = append(r.dragStart, h)
	case EventDrag:
		r.drag = append(r.drag, h)
	case EventDragEnd:
		r.dragEnd = append(r.dragEnd, h)
	}
	return CallbackHandle{id: h.id, reg: r, event: kind}
}

func (r *handlerRegistry) pointerHandlers(kind EventKind) []pointerHandler {
	switch kind {
	case EventEnter:
		return r.enter
	case EventExit:
		return r.exit
	case EventDown:
		return r.down
	case EventUp:
		return r.up
	case EventClick:
		return r.click
	}
	return nil
}

func (r *handlerRegistry) dragHandlers(kind EventKind) []dragHandler {
	switch kind {
	case EventDragStart:
		return r.dragStart
	case EventDrag:
		return r.drag
	case EventDragEnd:
		return r.dragEnd
	}
	return nil
}

func (r *handlerRegistry) clear() {
	*r = handlerRegistry{nextID: r.nextID}
}

// --- Pointer-level event registration ---

// OnPointerEnter registers a callback fired when any element becomes this
// pointer's target.
func (p *Pointer) OnPointerEnter(fn func(PointerContext)) CallbackHandle {
	return p.handlers.addPointer(EventEnter, fn)
}

// OnPointerExit registers a callback fired when an element stops being this
// pointer's target.
func (p *Pointer) OnPointerExit(fn func(PointerContext)) CallbackHandle {
	return p.handlers.addPointer(EventExit, fn)
}

// OnPointerDown registers a callback for down events.
func (p *Pointer) OnPointerDown(fn func(PointerContext)) CallbackHandle {
	return p.handlers.addPointer(EventDown, fn)
}

// OnPointerUp registers a callback for up events, including the implicit up
// delivered when a pressed target loses focus.
func (p *Pointer) OnPointerUp(fn func(PointerContext)) CallbackHandle {
	return p.handlers.addPointer(EventUp, fn)
}

// OnClick registers a callback for click events.
func (p *Pointer) OnClick(fn func(PointerContext)) CallbackHandle {
	return p.handlers.addPointer(EventClick, fn)
}

// OnDragStart registers a callback for drag session start.
func (p *Pointer) OnDragStart(fn func(DragContext)) CallbackHandle {
	return p.handlers.addDrag(EventDragStart, fn)
}

// OnDrag registers a callback fired each tick a drag session is active.
func (p *Pointer) OnDrag(fn func(DragContext)) CallbackHandle {
	return p.handlers.addDrag(EventDrag, fn)
}

// OnDragEnd registers a callback for drag session end.
func (p *Pointer) OnDragEnd(fn func(DragContext)) CallbackHandle {
	return p.handlers.addDrag(EventDragEnd, fn)
}

// --- Event dispatch ---

// dispatch delivers one pointer event to el: pointer-level handlers first,
// then the element callback, the feedback sink and the entity stores.
// A nil element is skipped.
func (p *Pointer) dispatch(kind EventKind, el *Element) {
	if el == nil {
		return
	}
	ctx := PointerContext{
		Kind:      kind,
		Element:   el,
		EntityID:  el.EntityID,
		UserData:  el.UserData,
		PointerID: p.cfg.ID,
		Surface:   p.tick.surface,
		Local:     p.tick.local,
		World:     p.tick.world,
		Distance:  p.tick.distance,
	}
	if p.debug {
		p.debugf("pointer %d: %s %q", p.cfg.ID, kind, el.Name)
	}
	for _, h := range p.handlers.pointerHandlers(kind) {
		h.fn(ctx)
	}
	if cb := elementCallback(el, kind); cb != nil {
		cb(ctx)
	}
	if el.Feedback != nil {
		el.Feedback.ApplyFeedback(el, kind)
	}
	p.emit(PointerEvent{
		Kind:        kind,
		PointerID:   p.cfg.ID,
		ElementID:   el.ID,
		ElementName: el.Name,
		EntityID:    el.EntityID,
		Local:       ctx.Local,
		World:       ctx.World,
		Distance:    ctx.Distance,
	})
}

// dispatchDrag delivers one drag event to the handle.
func (p *Pointer) dispatchDrag(ctx DragContext) {
	el := ctx.Handle
	if el == nil {
		return
	}
	ctx.EntityID = el.EntityID
	ctx.UserData = el.UserData
	ctx.PointerID = p.cfg.ID
	if p.debug {
		p.debugf("pointer %d: %s %q delta=%v", p.cfg.ID, ctx.Kind, el.Name, ctx.WorldDelta)
	}
	for _, h := range p.handlers.dragHandlers(ctx.Kind) {
		h.fn(ctx)
	}
	var cb func(DragContext)
	switch ctx.Kind {
	case EventDragStart:
		cb = el.OnDragStart
	case EventDrag:
		cb = el.OnDrag
	case EventDragEnd:
		cb = el.OnDragEnd
	}
	if cb != nil {
		cb(ctx)
	}
	if el.Feedback != nil {
		el.Feedback.ApplyFeedback(el, ctx.Kind)
	}
	p.emit(PointerEvent{
		Kind:        ctx.Kind,
		PointerID:   p.cfg.ID,
		ElementID:   el.ID,
		ElementName: el.Name,
		EntityID:    el.EntityID,
		Local:       ctx.Local,
		World:       ctx.World,
		WorldDelta:  ctx.WorldDelta,
		LocalDelta:  ctx.LocalDelta,
	})
}

func elementCallback(el *Element, kind EventKind) func(PointerContext) {
	switch kind {
	case EventEnter:
		return el.OnPointerEnter
	case EventExit:
		return el.OnPointerExit
	case EventDown:
		return el.OnPointerDown
	case EventUp:
		return el.OnPointerUp
	case EventClick:
		return el.OnClick
	}
	return nil
}

func (p *Pointer) emit(ev PointerEvent) {
	for _, s := range p.stores {
		s.EmitEvent(ev)
	}
}
