package laser

import (
	"github.com/go-gl/mathgl/mgl64"
)

// Surface is a bounded, oriented 2D interactive region embedded in 3D space.
// Its visibility and interactability are owned by the enclosing scene and may
// change between ticks; pointers only read them.
type Surface interface {
	// Visible reports whether the surface is shown. Hidden (faded out,
	// disabled) surfaces are skipped even while registered.
	Visible() bool
	// Interactable reports whether the surface accepts pointer hits.
	Interactable() bool
	// Plane returns the plane the surface lies on.
	Plane() Plane
	// Project maps a world point on the plane to surface-local coordinates.
	// It reports false when the point falls outside the surface's bounds.
	Project(world mgl64.Vec3) (Vec2, bool)
	// HitTestLocal returns the deepest element under a surface-local point.
	HitTestLocal(local Vec2) *Element
}

// Panel is a rectangular world-space UI surface. Its local coordinate space
// spans Width*PixelsPerUnit by Height*PixelsPerUnit with the origin at the
// top-left corner and Y pointing down.
type Panel struct {
	Name string

	// Position is the world-space center of the panel.
	Position mgl64.Vec3
	// Rotation orients the panel. Unrotated, the panel faces +Z.
	Rotation mgl64.Quat
	// Width and Height are the world-space extents.
	Width, Height float64
	// PixelsPerUnit scales world units to local layout units.
	PixelsPerUnit float64
	// CullBackFace ignores rays arriving from behind the panel.
	CullBackFace bool

	visible      bool
	interactable bool
	root         *Element
	hitBuf       []*Element
}

// NewPanel creates a visible, interactable panel centered at position.
func NewPanel(name string, position mgl64.Vec3, width, height, pixelsPerUnit float64) *Panel {
	if pixelsPerUnit <= 0 {
		pixelsPerUnit = 1
	}
	p := &Panel{
		Name:          name,
		Position:      position,
		Rotation:      mgl64.QuatIdent(),
		Width:         width,
		Height:        height,
		PixelsPerUnit: pixelsPerUnit,
		visible:       true,
		interactable:  true,
	}
	p.root = NewContainer(name + "/root")
	p.root.surface = p
	return p
}

// Root returns the root element of the panel's layout.
func (p *Panel) Root() *Element {
	return p.root
}

// Visible reports whether the panel is shown.
func (p *Panel) Visible() bool { return p.visible }

// SetVisible shows or hides the panel.
func (p *Panel) SetVisible(v bool) { p.visible = v }

// Interactable reports whether the panel accepts pointer hits.
func (p *Panel) Interactable() bool { return p.interactable }

// SetInteractable enables or disables pointer hits on the panel.
func (p *Panel) SetInteractable(v bool) { p.interactable = v }

// LocalSize returns the panel size in local layout units.
func (p *Panel) LocalSize() (w, h float64) {
	return p.Width * p.PixelsPerUnit, p.Height * p.PixelsPerUnit
}

func (p *Panel) axes() (right, up, normal mgl64.Vec3) {
	q := p.Rotation.Normalize()
	return q.Rotate(mgl64.Vec3{1, 0, 0}), q.Rotate(mgl64.Vec3{0, 1, 0}), q.Rotate(mgl64.Vec3{0, 0, 1})
}

// Plane returns the panel's plane; the normal points out of the front face.
func (p *Panel) Plane() Plane {
	_, _, n := p.axes()
	return Plane{Point: p.Position, Normal: n}
}

// Project maps a world point to panel-local coordinates.
func (p *Panel) Project(world mgl64.Vec3) (Vec2, bool) {
	if p.Width <= 0 || p.Height <= 0 {
		return Vec2{}, false
	}
	right, up, _ := p.axes()
	d := world.Sub(p.Position)
	u := d.Dot(right) + p.Width/2
	v := p.Height/2 - d.Dot(up)
	if u < 0 || u > p.Width || v < 0 || v > p.Height {
		return Vec2{}, false
	}
	return Vec2{X: u * p.PixelsPerUnit, Y: v * p.PixelsPerUnit}, true
}

// Unproject maps a panel-local point back to world space.
func (p *Panel) Unproject(local Vec2) mgl64.Vec3 {
	right, up, _ := p.axes()
	u := local.X/p.PixelsPerUnit - p.Width/2
	v := p.Height/2 - local.Y/p.PixelsPerUnit
	return p.Position.Add(right.Mul(u)).Add(up.Mul(v))
}

// HitTestLocal returns the topmost, deepest visible element containing the
// local point, regardless of its Interactable flag. Interactability is
// resolved afterwards by walking ancestors (see ResolveInteractive).
func (p *Panel) HitTestLocal(local Vec2) *Element {
	p.hitBuf = collectHitTestable(p.root, p.hitBuf[:0])

	// Reverse painter order: topmost (and deepest) first.
	for i := len(p.hitBuf) - 1; i >= 0; i-- {
		el := p.hitBuf[i]
		o := el.SurfaceOrigin()
		if el.containsLocal(local.X-o.X, local.Y-o.Y) {
			return el
		}
	}
	return nil
}

// collectHitTestable walks the tree in painter order (DFS, ZIndex-sorted),
// appending hit-testable elements to buf. Invisible subtrees are skipped.
func collectHitTestable(el *Element, buf []*Element) []*Element {
	if !el.Visible || el.disposed {
		return buf
	}
	if el.hitTestable() {
		buf = append(buf, el)
	}
	if len(el.children) == 0 {
		return buf
	}
	for _, child := range el.sortedChildList() {
		buf = collectHitTestable(child, buf)
	}
	return buf
}
