package laser

// elementIDCounter is not atomic: element trees are built and mutated from
// the owning tick loop only.
var elementIDCounter uint32

func nextElementID() uint32 {
	elementIDCounter++
	return elementIDCounter
}

// FeedbackSink applies externally-owned visual feedback (highlight, pressed
// color, ...) for an event delivered to an element.
type FeedbackSink interface {
	ApplyFeedback(el *Element, kind EventKind)
}

// Element is a node in a surface's layout hierarchy. The surface owns the
// tree; pointers only hold references to elements between ticks.
type Element struct {
	// Identity
	ID   uint32
	Name string

	// Hierarchy
	Parent   *Element
	children []*Element

	// Layout, relative to the parent element (surface-local units).
	X, Y          float64
	Width, Height float64
	ZIndex        int

	// HitShape overrides the Width/Height box when set.
	HitShape HitShape

	// Visible elements take part in hit testing. Interactable is the
	// capability flag: only interactable elements receive pointer events.
	Visible      bool
	Interactable bool

	// DragHandle marks the element as a drag handle: pressing on it starts a
	// drag session instead of a down/up/click sequence.
	DragHandle bool

	// Tint is the element's feedback color, written by feedback sinks.
	Tint Color

	// Metadata
	UserData any
	EntityID uint32

	// Feedback receives (element, kind) for every event delivered here.
	Feedback FeedbackSink

	// Per-element callbacks (nil by default).
	OnPointerEnter func(PointerContext)
	OnPointerExit  func(PointerContext)
	OnPointerDown  func(PointerContext)
	OnPointerUp    func(PointerContext)
	OnClick        func(PointerContext)
	OnDragStart    func(DragContext)
	OnDrag         func(DragContext)
	OnDragEnd      func(DragContext)

	// surface is set on the root element by the owning Panel.
	surface Surface

	disposed       bool
	childrenSorted bool
	sortedChildren []*Element
}

// NewElement creates a visible, non-interactive element of the given size.
func NewElement(name string, w, h float64) *Element {
	return &Element{
		ID:             nextElementID(),
		Name:           name,
		Width:          w,
		Height:         h,
		Visible:        true,
		Tint:           ColorWhite,
		childrenSorted: true,
	}
}

// NewButton creates an interactive element of the given size.
func NewButton(name string, w, h float64) *Element {
	el := NewElement(name, w, h)
	el.Interactable = true
	return el
}

// NewContainer creates a zero-size grouping element. Containers are not hit
// testable unless given a HitShape or a size.
func NewContainer(name string) *Element {
	return NewElement(name, 0, 0)
}

// --- Tree manipulation ---

// AddChild appends child to this element's children.
// If child already has a parent, it is removed from that parent first.
// Panics if child is nil or child is an ancestor of this element (cycle).
func (e *Element) AddChild(child *Element) {
	if child == nil {
		panic("laser: cannot add nil child")
	}
	if isAncestor(child, e) {
		panic("laser: adding child would create a cycle")
	}
	if child.Parent != nil {
		child.Parent.removeChildByPtr(child)
		child.Parent.childrenSorted = false
	}
	child.Parent = e
	e.children = append(e.children, child)
	e.childrenSorted = false
}

// RemoveChild detaches child from this element.
// Panics if child.Parent != e.
func (e *Element) RemoveChild(child *Element) {
	if child.Parent != e {
		panic("laser: child's parent is not this element")
	}
	e.removeChildByPtr(child)
	child.Parent = nil
	e.childrenSorted = false
}

// RemoveFromParent detaches this element from its parent.
// No-op if this element has no parent.
func (e *Element) RemoveFromParent() {
	if e.Parent == nil {
		return
	}
	e.Parent.RemoveChild(e)
}

// Children returns the child list. The returned slice MUST NOT be mutated by the caller.
func (e *Element) Children() []*Element {
	return e.children
}

// SetZIndex sets the element's ZIndex and marks the parent's children as unsorted.
func (e *Element) SetZIndex(z int) {
	if e.ZIndex == z {
		return
	}
	e.ZIndex = z
	if e.Parent != nil {
		e.Parent.childrenSorted = false
	}
}

// Surface returns the surface owning this element's tree, or nil if the
// element is detached.
func (e *Element) Surface() Surface {
	root := e
	for root.Parent != nil {
		root = root.Parent
	}
	return root.surface
}

// SurfaceOrigin returns the element's top-left corner in surface-local coordinates.
func (e *Element) SurfaceOrigin() Vec2 {
	var o Vec2
	for p := e; p != nil; p = p.Parent {
		o.X += p.X
		o.Y += p.Y
	}
	return o
}

// containsLocal tests a point given in this element's own coordinates.
// Elements with no HitShape and no size are not hit testable.
func (e *Element) containsLocal(lx, ly float64) bool {
	if e.HitShape != nil {
		return e.HitShape.Contains(lx, ly)
	}
	if e.Width == 0 && e.Height == 0 {
		return false
	}
	return lx >= 0 && lx <= e.Width && ly >= 0 && ly <= e.Height
}

// hitTestable reports whether the element can be returned by a hit test.
func (e *Element) hitTestable() bool {
	return e.HitShape != nil || e.Width != 0 || e.Height != 0
}

// --- Disposal ---

// Dispose removes this element from its parent, marks it and all descendants
// as disposed and drops their callbacks. Pointers currently targeting the
// element see it vanish on their next tick and deliver an implicit exit.
func (e *Element) Dispose() {
	if e.disposed {
		return
	}
	e.RemoveFromParent()
	e.dispose()
}

func (e *Element) dispose() {
	e.disposed = true
	for _, child := range e.children {
		child.Parent = nil
		child.dispose()
	}
	e.children = nil
	e.sortedChildren = nil
	e.HitShape = nil
	e.Feedback = nil
	e.UserData = nil
	e.surface = nil
	e.OnPointerEnter = nil
	e.OnPointerExit = nil
	e.OnPointerDown = nil
	e.OnPointerUp = nil
	e.OnClick = nil
	e.OnDragStart = nil
	e.OnDrag = nil
	e.OnDragEnd = nil
}

// IsDisposed returns true if this element has been disposed.
func (e *Element) IsDisposed() bool {
	return e.disposed
}

// --- Helpers ---

// isAncestor reports whether candidate is an ancestor of el (or el itself).
func isAncestor(candidate, el *Element) bool {
	for p := el; p != nil; p = p.Parent {
		if p == candidate {
			return true
		}
	}
	return false
}

// removeChildByPtr removes child from e.children without clearing child.Parent.
func (e *Element) removeChildByPtr(child *Element) {
	for i, c := range e.children {
		if c == child {
			copy(e.children[i:], e.children[i+1:])
			e.children[len(e.children)-1] = nil
			e.children = e.children[:len(e.children)-1]
			return
		}
	}
}

// sortedChildList returns children in ZIndex order, rebuilding the cached
// order with a stable insertion sort when it is stale.
func (e *Element) sortedChildList() []*Element {
	if e.childrenSorted && e.sortedChildren != nil {
		return e.sortedChildren
	}
	nc := len(e.children)
	if cap(e.sortedChildren) < nc {
		e.sortedChildren = make([]*Element, nc)
	}
	e.sortedChildren = e.sortedChildren[:nc]
	copy(e.sortedChildren, e.children)
	for i := 1; i < nc; i++ {
		key := e.sortedChildren[i]
		j := i - 1
		for j >= 0 && e.sortedChildren[j].ZIndex > key.ZIndex {
			e.sortedChildren[j+1] = e.sortedChildren[j]
			j--
		}
		e.sortedChildren[j+1] = key
	}
	e.childrenSorted = true
	return e.sortedChildren
}
