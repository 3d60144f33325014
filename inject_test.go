package laser

import "testing"

func TestInjectClick(t *testing.T) {
	s := newTestScene()
	p := s.pointer()

	var clicked bool
	p.OnClick(func(ctx PointerContext) {
		clicked = true
		if ctx.Element != s.a {
			t.Error("expected button A")
		}
	})

	ray := s.rayAt(50, 50)
	p.Update(ray, false)

	p.InjectClick()
	if p.PendingInjections() != 2 {
		t.Fatalf("expected 2 queued overrides, got %d", p.PendingInjections())
	}

	// Tick 1: press
	p.Update(ray, false)
	if p.PendingInjections() != 1 {
		t.Fatalf("expected 1 remaining override after tick 1, got %d", p.PendingInjections())
	}
	if clicked {
		t.Error("click should not fire on the press tick")
	}

	// Tick 2: release overrides the held signal
	p.Update(ray, true)
	if p.PendingInjections() != 0 {
		t.Fatalf("expected 0 remaining overrides after tick 2, got %d", p.PendingInjections())
	}
	if !clicked {
		t.Error("click should fire on the release tick")
	}
}

func TestInjectPressRelease(t *testing.T) {
	s := newTestScene()
	p := s.pointer()
	l := recordEvents(p)

	ray := s.rayAt(150, 50)
	p.InjectPress()
	p.Update(ray, false)
	p.Update(ray, true) // real signal takes over once the queue drains
	p.InjectRelease()
	p.Update(ray, true)

	expectEvents(t, l, "enter(B)", "down(B)", "up(B)", "click(B)")
}
