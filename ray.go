package laser

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// epsilon guards divisions in the intersection tests.
const epsilon = 1e-9

// Ray is a pointer ray for a single tick. It is rebuilt from the owning
// pointer's transform every tick and never stored across ticks.
type Ray struct {
	Origin    mgl64.Vec3
	Direction mgl64.Vec3 // unit length, or zero when the ray is degenerate

	// MaxDetectDistance bounds hit testing. Hits at or beyond it are ignored.
	MaxDetectDistance float64
	// MaxVisualDistance is the ray length drawn when nothing is hit.
	MaxVisualDistance float64
}

// NewRay builds a ray with a normalized direction. A zero-length direction
// yields a degenerate ray that never hits anything.
func NewRay(origin, dir mgl64.Vec3, maxDetect, maxVisual float64) Ray {
	return Ray{
		Origin:            origin,
		Direction:         normalizeOrZero(dir),
		MaxDetectDistance: maxDetect,
		MaxVisualDistance: maxVisual,
	}
}

// RayFromPose builds the ray of a pointer whose transform is at position with
// the given orientation. The pointer aims along its local -Z axis.
func RayFromPose(position mgl64.Vec3, orientation mgl64.Quat, cfg PointerConfig) Ray {
	cfg = cfg.withDefaults()
	dir := orientation.Normalize().Rotate(mgl64.Vec3{0, 0, -1})
	return NewRay(position, dir, cfg.MaxDetectDistance, cfg.MaxVisualDistance)
}

// Valid reports whether the ray has a usable direction and detection range.
func (r Ray) Valid() bool {
	return r.Direction.LenSqr() > epsilon && r.MaxDetectDistance > 0
}

// At returns the point at distance t along the ray.
func (r Ray) At(t float64) mgl64.Vec3 {
	return r.Origin.Add(r.Direction.Mul(t))
}

func normalizeOrZero(v mgl64.Vec3) mgl64.Vec3 {
	l := v.Len()
	if l < epsilon || math.IsNaN(l) || math.IsInf(l, 0) {
		return mgl64.Vec3{}
	}
	return v.Mul(1 / l)
}

// Plane is an infinite plane through Point with the given Normal.
type Plane struct {
	Point  mgl64.Vec3
	Normal mgl64.Vec3
}

// Intersect returns the distance along r at which it crosses the plane.
// Degenerate normals, degenerate rays, rays parallel to the plane and
// intersections behind the origin all report ok=false.
func (p Plane) Intersect(r Ray) (t float64, ok bool) {
	n := normalizeOrZero(p.Normal)
	if n.LenSqr() == 0 || r.Direction.LenSqr() < epsilon {
		return 0, false
	}
	denom := n.Dot(r.Direction)
	if math.Abs(denom) < epsilon {
		return 0, false
	}
	t = n.Dot(p.Point.Sub(r.Origin)) / denom
	if t < 0 || math.IsNaN(t) {
		return 0, false
	}
	return t, true
}

// facing reports whether r hits the front side of the plane (against the normal).
func (p Plane) facing(r Ray) bool {
	return p.Normal.Dot(r.Direction) < 0
}
