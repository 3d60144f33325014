package laser

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// PhysicsWorld answers ray queries against solid scene geometry.
type PhysicsWorld interface {
	Raycast(origin, dir mgl64.Vec3, maxDistance float64) (PhysicsHit, bool)
}

// PhysicsHit is the nearest solid hit along a ray.
type PhysicsHit struct {
	Distance float64
	Point    mgl64.Vec3
	Collider *Collider
}

// ColliderShape selects the intersection test used for a Collider.
type ColliderShape uint8

const (
	ShapeSphere ColliderShape = iota
	ShapeBox                  // axis-aligned box
)

// Collider is a solid object in a ColliderWorld. Element, when set, makes the
// object an interactive target (e.g. a 3D map marker); otherwise it only
// occludes surfaces behind it.
type Collider struct {
	Name        string
	Shape       ColliderShape
	Center      mgl64.Vec3
	Radius      float64    // ShapeSphere
	HalfExtents mgl64.Vec3 // ShapeBox
	Enabled     bool
	Element     *Element
}

// ColliderWorld is a minimal PhysicsWorld made of spheres and axis-aligned
// boxes. Scenes backed by a full physics engine implement PhysicsWorld directly.
type ColliderWorld struct {
	colliders []*Collider
}

// NewColliderWorld creates an empty world.
func NewColliderWorld() *ColliderWorld {
	return &ColliderWorld{}
}

// AddSphere adds an enabled sphere collider and returns it.
func (w *ColliderWorld) AddSphere(name string, center mgl64.Vec3, radius float64) *Collider {
	c := &Collider{Name: name, Shape: ShapeSphere, Center: center, Radius: radius, Enabled: true}
	w.colliders = append(w.colliders, c)
	return c
}

// AddBox adds an enabled axis-aligned box collider and returns it.
func (w *ColliderWorld) AddBox(name string, center, halfExtents mgl64.Vec3) *Collider {
	c := &Collider{Name: name, Shape: ShapeBox, Center: center, HalfExtents: halfExtents, Enabled: true}
	w.colliders = append(w.colliders, c)
	return c
}

// Remove deletes c from the world.
func (w *ColliderWorld) Remove(c *Collider) {
	for i, existing := range w.colliders {
		if existing == c {
			copy(w.colliders[i:], w.colliders[i+1:])
			w.colliders[len(w.colliders)-1] = nil
			w.colliders = w.colliders[:len(w.colliders)-1]
			return
		}
	}
}

// Raycast returns the nearest enabled collider hit within maxDistance.
func (w *ColliderWorld) Raycast(origin, dir mgl64.Vec3, maxDistance float64) (PhysicsHit, bool) {
	if w == nil {
		return PhysicsHit{}, false
	}
	dir = normalizeOrZero(dir)
	if dir.LenSqr() == 0 || maxDistance <= 0 {
		return PhysicsHit{}, false
	}
	best := PhysicsHit{Distance: maxDistance}
	found := false
	for _, c := range w.colliders {
		if !c.Enabled {
			continue
		}
		var t float64
		var ok bool
		switch c.Shape {
		case ShapeSphere:
			t, ok = raySphere(origin, dir, c.Center, c.Radius)
		case ShapeBox:
			t, ok = rayBox(origin, dir, c.Center.Sub(c.HalfExtents), c.Center.Add(c.HalfExtents), maxDistance)
		}
		// First collider wins ties.
		if ok && (t < best.Distance || (!found && t == best.Distance)) {
			best = PhysicsHit{Distance: t, Point: origin.Add(dir.Mul(t)), Collider: c}
			found = true
		}
	}
	return best, found
}

// raySphere returns the nearest non-negative intersection with a sphere.
// A ray starting inside the sphere hits its far side.
func raySphere(origin, dir, center mgl64.Vec3, radius float64) (float64, bool) {
	if radius <= 0 {
		return 0, false
	}
	oc := origin.Sub(center)
	b := oc.Dot(dir)
	c := oc.Dot(oc) - radius*radius
	disc := b*b - c
	if disc < 0 {
		return 0, false
	}
	sq := math.Sqrt(disc)
	t := -b - sq
	if t < 0 {
		t = -b + sq
	}
	if t < 0 {
		return 0, false
	}
	return t, true
}

// rayBox is the slab test against an axis-aligned box.
func rayBox(origin, dir, minB, maxB mgl64.Vec3, maxDistance float64) (float64, bool) {
	tMin, tMax := 0.0, maxDistance
	for i := 0; i < 3; i++ {
		if math.Abs(dir[i]) < epsilon {
			if origin[i] < minB[i] || origin[i] > maxB[i] {
				return 0, false
			}
			continue
		}
		inv := 1 / dir[i]
		t0 := (minB[i] - origin[i]) * inv
		t1 := (maxB[i] - origin[i]) * inv
		if inv < 0 {
			t0, t1 = t1, t0
		}
		if t0 > tMin {
			tMin = t0
		}
		if t1 < tMax {
			tMax = t1
		}
		if tMin > tMax {
			return 0, false
		}
	}
	return tMin, true
}
