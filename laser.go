package laser

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is the default tint (no color modification).
var ColorWhite = Color{1, 1, 1, 1}

// Vec2 is a 2D vector in surface-local coordinates. The origin is the top-left
// of the surface with Y increasing downward.
type Vec2 struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle in surface-local coordinates.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// EventKind identifies a kind of pointer event.
type EventKind uint8

const (
	EventEnter     EventKind = iota // pointer started targeting an element
	EventExit                       // pointer stopped targeting an element
	EventDown                       // press signal went down over the target
	EventUp                         // press signal released (or implicit release on focus loss)
	EventClick                      // down then up on the same still-current target
	EventDragStart                  // press landed on a drag handle
	EventDrag                       // fires each tick while a drag session is active
	EventDragEnd                    // drag session ended
)

var eventKindNames = [...]string{
	EventEnter:     "enter",
	EventExit:      "exit",
	EventDown:      "down",
	EventUp:        "up",
	EventClick:     "click",
	EventDragStart: "dragstart",
	EventDrag:      "drag",
	EventDragEnd:   "dragend",
}

// String returns the lowercase event name.
func (k EventKind) String() string {
	if int(k) < len(eventKindNames) {
		return eventKindNames[k]
	}
	return "unknown"
}

// PointerState is the coarse state of a Pointer's state machine.
type PointerState uint8

const (
	StateIdle     PointerState = iota // nothing targeted
	StateHovering                     // a target is current, press signal up
	StatePressed                      // a target received down and still holds the press
	StateDragging                     // a drag-handle session is active; hit testing suppressed
)

func (s PointerState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateHovering:
		return "hovering"
	case StatePressed:
		return "pressed"
	case StateDragging:
		return "dragging"
	default:
		return "unknown"
	}
}
