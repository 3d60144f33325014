package laser

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestColliderWorldRaycast(t *testing.T) {
	w := NewColliderWorld()
	near := w.AddSphere("near", mgl64.Vec3{0, 0, -3}, 0.5)
	far := w.AddBox("far", mgl64.Vec3{0, 0, -6}, mgl64.Vec3{1, 1, 1})
	w.AddSphere("aside", mgl64.Vec3{5, 0, -2}, 0.5)

	fwd := mgl64.Vec3{0, 0, -1}
	tests := []struct {
		name    string
		maxDist float64
		setup   func()
		want    *Collider
		wantT   float64
	}{
		{"nearest wins", 10, func() {}, near, 2.5},
		{"disabled skipped", 10, func() { near.Enabled = false }, far, 5},
		{"beyond range", 4, func() { near.Enabled = false }, nil, 0},
		{"within range", 3, func() {}, near, 2.5},
	}
	for _, tt := range tests {
		near.Enabled = true
		tt.setup()
		hit, ok := w.Raycast(mgl64.Vec3{}, fwd, tt.maxDist)
		if tt.want == nil {
			if ok {
				t.Errorf("%s: unexpected hit on %s", tt.name, hit.Collider.Name)
			}
			continue
		}
		if !ok || hit.Collider != tt.want {
			t.Errorf("%s: hit = %+v, %v; want %s", tt.name, hit, ok, tt.want.Name)
			continue
		}
		if math.Abs(hit.Distance-tt.wantT) > 1e-9 {
			t.Errorf("%s: distance = %v, want %v", tt.name, hit.Distance, tt.wantT)
		}
		if !vecNear(hit.Point, mgl64.Vec3{0, 0, -tt.wantT}) {
			t.Errorf("%s: point = %v", tt.name, hit.Point)
		}
	}
}

func TestColliderWorldUnnormalizedDirection(t *testing.T) {
	w := NewColliderWorld()
	w.AddSphere("s", mgl64.Vec3{0, 0, -3}, 1)
	hit, ok := w.Raycast(mgl64.Vec3{}, mgl64.Vec3{0, 0, -10}, 10)
	if !ok || math.Abs(hit.Distance-2) > 1e-9 {
		t.Errorf("hit = %+v, %v; want distance 2", hit, ok)
	}
}

func TestColliderWorldInsideSphere(t *testing.T) {
	w := NewColliderWorld()
	w.AddSphere("room", mgl64.Vec3{}, 4)
	hit, ok := w.Raycast(mgl64.Vec3{}, mgl64.Vec3{1, 0, 0}, 10)
	if !ok || math.Abs(hit.Distance-4) > 1e-9 {
		t.Errorf("hit = %+v, %v; want far side at 4", hit, ok)
	}
}

func TestColliderWorldTieFirstWins(t *testing.T) {
	w := NewColliderWorld()
	first := w.AddBox("first", mgl64.Vec3{0, 0, -2}, mgl64.Vec3{1, 1, 1})
	w.AddBox("second", mgl64.Vec3{0, 0, -2}, mgl64.Vec3{1, 1, 1})
	hit, ok := w.Raycast(mgl64.Vec3{}, mgl64.Vec3{0, 0, -1}, 10)
	if !ok || hit.Collider != first {
		t.Errorf("hit = %+v, want first", hit)
	}
}

func TestColliderWorldRemove(t *testing.T) {
	w := NewColliderWorld()
	c := w.AddSphere("s", mgl64.Vec3{0, 0, -3}, 1)
	w.Remove(c)
	if _, ok := w.Raycast(mgl64.Vec3{}, mgl64.Vec3{0, 0, -1}, 10); ok {
		t.Error("removed collider should not be hit")
	}
}

func TestColliderWorldDegenerate(t *testing.T) {
	w := NewColliderWorld()
	w.AddSphere("s", mgl64.Vec3{0, 0, -3}, 1)
	if _, ok := w.Raycast(mgl64.Vec3{}, mgl64.Vec3{}, 10); ok {
		t.Error("zero direction should not hit")
	}
	var nilWorld *ColliderWorld
	if _, ok := nilWorld.Raycast(mgl64.Vec3{}, mgl64.Vec3{0, 0, -1}, 10); ok {
		t.Error("nil world should not hit")
	}
}
