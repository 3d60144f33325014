package laser

import (
	"io"
	"os"

	"github.com/go-gl/mathgl/mgl64"
)

// --- Constants ---

const (
	defaultMaxDetectDistance = 20.0 // world units
	defaultMaxVisualDistance = 5.0  // world units
)

// PointerConfig configures a Pointer. Zero distances are replaced by the
// defaults.
type PointerConfig struct {
	// ID identifies the pointer in events (e.g. 0 = left hand, 1 = right hand).
	ID int
	// MaxDetectDistance bounds hit testing for rays built by RayFromPose.
	MaxDetectDistance float64
	// MaxVisualDistance is the drawn ray length when nothing is hit.
	MaxVisualDistance float64
}

// DefaultPointerConfig returns the configuration used for zero fields.
func DefaultPointerConfig() PointerConfig {
	return PointerConfig{
		MaxDetectDistance: defaultMaxDetectDistance,
		MaxVisualDistance: defaultMaxVisualDistance,
	}
}

func (c PointerConfig) withDefaults() PointerConfig {
	if c.MaxDetectDistance <= 0 {
		c.MaxDetectDistance = defaultMaxDetectDistance
	}
	if c.MaxVisualDistance <= 0 {
		c.MaxVisualDistance = defaultMaxVisualDistance
	}
	return c
}

// tickHit is the winning hit data supplied with every event of a tick.
type tickHit struct {
	surface  Surface
	local    Vec2
	world    mgl64.Vec3
	distance float64
}

// Pointer is the per-hand ray pointer. Call Update once per tick with the
// hand's ray and the sampled press signal; the pointer arbitrates hits,
// tracks hover/press/drag state and dispatches events.
//
// A Pointer is not safe for concurrent use. Independent pointers may update
// in the same tick against a shared SurfaceRegistry.
type Pointer struct {
	cfg          PointerConfig
	registry     *SurfaceRegistry
	physics      PhysicsWorld
	isDragHandle func(*Element) bool

	handlers  handlerRegistry
	stores    []EntityStore
	selection *SelectionBus
	drag      DragSession

	// State carried across ticks.
	target      *Element // current target
	pressTarget *Element // received down, owed an up
	pressed     bool     // press signal sampled last tick

	// Recomputed every tick.
	lastRay Ray
	lastHit Hit
	hasHit  bool
	tick    tickHit
	surfBuf []Surface

	injectQueue []bool

	debug    bool
	logOut   io.Writer
	warned   uint8
	disposed bool
}

// NewPointer creates a pointer reading surfaces from registry and solid
// geometry from physics. Either may be nil; the pointer then works with what
// it has and logs the missing collaborator once.
func NewPointer(cfg PointerConfig, registry *SurfaceRegistry, physics PhysicsWorld) *Pointer {
	return &Pointer{
		cfg:          cfg.withDefaults(),
		registry:     registry,
		physics:      physics,
		isDragHandle: defaultIsDragHandle,
		logOut:       os.Stderr,
	}
}

func defaultIsDragHandle(el *Element) bool {
	return el.DragHandle
}

// Config returns the pointer's configuration with defaults applied.
func (p *Pointer) Config() PointerConfig {
	return p.cfg
}

// SetDragHandlePredicate replaces the test deciding whether a press on a
// target starts a drag session. nil restores the default (Element.DragHandle).
func (p *Pointer) SetDragHandlePredicate(fn func(*Element) bool) {
	if fn == nil {
		fn = defaultIsDragHandle
	}
	p.isDragHandle = fn
}

// SetSelectionBus makes the pointer publish every click to bus.
func (p *Pointer) SetSelectionBus(bus *SelectionBus) {
	p.selection = bus
}

// AddEntityStore adds a store that receives every dispatched event.
func (p *Pointer) AddEntityStore(store EntityStore) {
	if store != nil {
		p.stores = append(p.stores, store)
	}
}

// --- Accessors ---

// Target returns the element currently targeted, or nil.
func (p *Pointer) Target() *Element {
	return p.target
}

// IsDragging reports whether a drag session is active.
func (p *Pointer) IsDragging() bool {
	return p.drag.Active()
}

// DragHandle returns the handle being dragged, or nil.
func (p *Pointer) DragHandle() *Element {
	return p.drag.Handle()
}

// LastHit returns the winning hit of the most recent tick.
func (p *Pointer) LastHit() (Hit, bool) {
	return p.lastHit, p.hasHit
}

// State returns the coarse state machine state.
func (p *Pointer) State() PointerState {
	switch {
	case p.drag.Active():
		return StateDragging
	case p.pressTarget != nil:
		return StatePressed
	case p.target != nil:
		return StateHovering
	default:
		return StateIdle
	}
}

// VisualLength is the length the ray should be drawn with this tick: the
// distance to the winning hit, or the ray's MaxVisualDistance.
func (p *Pointer) VisualLength() float64 {
	if p.hasHit {
		return p.lastHit.Distance
	}
	if p.lastRay.MaxVisualDistance > 0 {
		return p.lastRay.MaxVisualDistance
	}
	return p.cfg.MaxVisualDistance
}

// DotVisible reports whether the hit dot should be shown. It is hidden
// while dragging and when nothing was hit.
func (p *Pointer) DotVisible() bool {
	return p.hasHit && !p.drag.Active()
}

// --- Tick ---

// Update runs one tick: arbitrate the ray, update hover state, then handle
// press and release edges of the press signal.
func (p *Pointer) Update(ray Ray, pressed bool) {
	if p.disposed {
		return
	}
	if len(p.injectQueue) > 0 {
		pressed = p.injectQueue[0]
		copy(p.injectQueue, p.injectQueue[1:])
		p.injectQueue = p.injectQueue[:len(p.injectQueue)-1]
	}
	p.lastRay = ray

	if p.drag.Active() {
		p.updateDrag(ray, pressed)
		return
	}

	winning := p.arbitrate(ray)

	// Hover transitions are driven by geometry alone.
	if winning != p.target {
		prev := p.target
		if prev != nil && prev == p.pressTarget {
			p.pressTarget = nil
			p.dispatch(EventUp, prev)
		}
		p.target = winning
		p.dispatch(EventExit, prev)
		p.dispatch(EventEnter, winning)
	}

	if pressed && !p.pressed {
		p.press(ray)
	} else if !pressed && p.pressed {
		p.release()
	}
	p.pressed = pressed
}

// arbitrate computes this tick's winning hit and resolves it to an
// interactive target.
func (p *Pointer) arbitrate(ray Ray) *Element {
	p.surfBuf = p.surfBuf[:0]
	if p.registry == nil {
		p.warnOnce(warnNoRegistry, "pointer %d has no surface registry; testing physics only", p.cfg.ID)
	} else {
		if p.registry.Len() == 0 {
			p.warnOnce(warnNoSurfaces, "pointer %d: no surfaces registered", p.cfg.ID)
		}
		p.surfBuf = p.registry.ActiveSurfaces(p.surfBuf)
	}
	if p.physics == nil {
		p.warnOnce(warnNoPhysics, "pointer %d has no physics world; testing surfaces only", p.cfg.ID)
	}

	p.lastHit, p.hasHit = Arbitrate(ray, p.physics, p.surfBuf)
	if !p.hasHit {
		p.tick = tickHit{}
		return nil
	}
	p.tick = tickHit{
		surface:  p.lastHit.Surface,
		local:    p.lastHit.Local,
		world:    p.lastHit.Point,
		distance: p.lastHit.Distance,
	}
	return ResolveInteractive(p.lastHit.Element)
}

func (p *Pointer) press(ray Ray) {
	t := p.target
	if t == nil {
		return
	}
	if p.isDragHandle(t) {
		ctx, ok := p.drag.Begin(t, ray, p.tick.distance)
		if !ok {
			return
		}
		// Dragging and hovering are exclusive: the handle loses hover
		// for the duration of the drag.
		p.target = nil
		p.dispatch(EventExit, t)
		p.dispatchDrag(ctx)
		return
	}
	p.pressTarget = t
	p.dispatch(EventDown, t)
}

func (p *Pointer) release() {
	t := p.pressTarget
	if t == nil {
		return
	}
	p.pressTarget = nil
	p.dispatch(EventUp, t)
	if t == p.target {
		p.dispatch(EventClick, t)
		if p.selection != nil {
			p.selection.Publish(Selection{Element: t, PointerID: p.cfg.ID})
		}
	}
}

// updateDrag runs a tick while a drag session is active. Ordinary hit
// testing is suppressed entirely.
func (p *Pointer) updateDrag(ray Ray, pressed bool) {
	p.hasHit = false
	p.lastHit = Hit{}
	p.tick = tickHit{}

	if p.drag.Handle().IsDisposed() || !pressed {
		if ctx, ok := p.drag.End(ray); ok {
			p.dispatchDrag(ctx)
		}
		p.pressed = pressed
		return
	}
	if ctx, ok := p.drag.Move(ray); ok {
		p.dispatchDrag(ctx)
	}
	p.pressed = pressed
}

// Dispose tears the pointer down. A held target receives its implicit up,
// the current target its exit, and an active drag session ends.
func (p *Pointer) Dispose() {
	if p.disposed {
		return
	}
	if p.drag.Active() {
		if ctx, ok := p.drag.End(p.lastRay); ok {
			p.dispatchDrag(ctx)
		}
	}
	if p.pressTarget != nil {
		t := p.pressTarget
		p.pressTarget = nil
		p.dispatch(EventUp, t)
	}
	if p.target != nil {
		t := p.target
		p.target = nil
		p.dispatch(EventExit, t)
	}
	p.handlers.clear()
	p.stores = nil
	p.selection = nil
	p.injectQueue = nil
	p.disposed = true
}

// IsDisposed reports whether Dispose has been called.
func (p *Pointer) IsDisposed() bool {
	return p.disposed
}
