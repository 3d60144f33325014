package laser

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

// setupBenchScene registers n panels stacked along -Z, each holding a 10x10
// grid of buttons with a label inside.
func setupBenchScene(n int) (*SurfaceRegistry, *ColliderWorld) {
	reg := NewSurfaceRegistry()
	for i := 0; i < n; i++ {
		p := NewPanel("panel", mgl64.Vec3{0, 0, -2 - float64(i)*0.5}, 2, 2, 100)
		for j := 0; j < 100; j++ {
			b := NewButton("btn", 18, 18)
			b.X = float64(j%10) * 20
			b.Y = float64(j/10) * 20
			b.AddChild(NewElement("label", 10, 10))
			p.Root().AddChild(b)
		}
		reg.Register(p)
	}
	w := NewColliderWorld()
	for i := 0; i < 50; i++ {
		w.AddSphere("s", mgl64.Vec3{float64(i%10) - 5, float64(i/10) - 2, -1}, 0.1)
	}
	return reg, w
}

func BenchmarkArbitrate_20Panels(b *testing.B) {
	reg, w := setupBenchScene(20)
	surfaces := reg.ActiveSurfaces(nil)
	ray := NewRay(mgl64.Vec3{}, mgl64.Vec3{0.1, 0.05, -1}, 20, 5)

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		Arbitrate(ray, w, surfaces)
	}
}

func BenchmarkPointerUpdate_Sweep(b *testing.B) {
	reg, w := setupBenchScene(20)
	p := NewPointer(PointerConfig{}, reg, w)
	p.SetLogOutput(nil)
	rays := make([]Ray, 64)
	for i := range rays {
		x := float64(i)/32 - 1
		rays[i] = NewRay(mgl64.Vec3{}, mgl64.Vec3{x, 0.05, -1}, 20, 5)
	}

	p.Update(rays[0], false) // warmup

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		p.Update(rays[i%len(rays)], i%8 < 4)
	}
}
