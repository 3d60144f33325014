package laser

import "github.com/go-gl/mathgl/mgl64"

// Hit is the winning result of one tick's ray test: either a solid physics
// hit (Collider set) or an element within a surface (Surface set).
type Hit struct {
	Distance float64
	Point    mgl64.Vec3

	// Surface hits
	Surface Surface
	Local   Vec2

	// Physics hits
	Collider *Collider

	// Element is the raw element hit: the deepest surface element, or the
	// collider's attached element. It is not yet resolved to an interactive
	// ancestor.
	Element *Element
}

// IsSurface reports whether the hit landed on a surface.
func (h Hit) IsSurface() bool {
	return h.Surface != nil
}

// BackFaceCuller is implemented by surfaces that ignore rays arriving from
// behind their plane.
type BackFaceCuller interface {
	CullsBackFace() bool
}

// CullsBackFace reports the panel's CullBackFace option.
func (p *Panel) CullsBackFace() bool { return p.CullBackFace }

// Arbitrate casts ray against physics and every surface in order and returns
// the single nearest valid hit.
//
// Hits at or beyond ray.MaxDetectDistance are ignored. A surface that ties a
// physics hit wins; surfaces tied with each other resolve to the one that
// comes first in surfaces. physics may be nil.
func Arbitrate(ray Ray, physics PhysicsWorld, surfaces []Surface) (Hit, bool) {
	if !ray.Valid() {
		return Hit{}, false
	}

	var best Hit
	found := false
	bestIsPhysics := false

	if physics != nil {
		if ph, ok := physics.Raycast(ray.Origin, ray.Direction, ray.MaxDetectDistance); ok && ph.Distance < ray.MaxDetectDistance {
			best = Hit{Distance: ph.Distance, Point: ph.Point, Collider: ph.Collider}
			if ph.Collider != nil {
				best.Element = ph.Collider.Element
			}
			found = true
			bestIsPhysics = true
		}
	}

	for _, s := range surfaces {
		if s == nil || !s.Interactable() {
			continue
		}
		plane := s.Plane()
		t, ok := plane.Intersect(ray)
		if !ok || t >= ray.MaxDetectDistance {
			continue
		}
		if found {
			if bestIsPhysics && t > best.Distance {
				continue
			}
			if !bestIsPhysics && t >= best.Distance {
				continue
			}
		}
		if c, ok := s.(BackFaceCuller); ok && c.CullsBackFace() && !plane.facing(ray) {
			continue
		}
		point := ray.At(t)
		local, ok := s.Project(point)
		if !ok {
			continue
		}
		el := s.HitTestLocal(local)
		if el == nil {
			continue
		}
		best = Hit{Distance: t, Point: point, Surface: s, Local: local, Element: el}
		found = true
		bestIsPhysics = false
	}

	return best, found
}
