package laser

import "testing"

func TestSelectionBus(t *testing.T) {
	bus := NewSelectionBus()
	el := NewButton("marker", 10, 10)

	var a, b []Selection
	ha := bus.Subscribe(func(s Selection) { a = append(a, s) })
	bus.Subscribe(func(s Selection) { b = append(b, s) })
	if bus.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", bus.Len())
	}

	bus.Publish(Selection{Element: el, PointerID: 1})
	ha.Remove()
	ha.Remove()
	bus.Publish(Selection{Element: el, PointerID: 0})

	if len(a) != 1 || a[0].PointerID != 1 {
		t.Errorf("removed subscriber got %v", a)
	}
	if len(b) != 2 || b[1].Element != el {
		t.Errorf("remaining subscriber got %v", b)
	}
	if bus.Len() != 1 {
		t.Errorf("Len() = %d, want 1", bus.Len())
	}

	var zero SelectionHandle
	zero.Remove()
}

func TestPressSources(t *testing.T) {
	on := PressFunc(func() bool { return true })
	off := PressFunc(func() bool { return false })

	tests := []struct {
		name string
		src  PressSource
		want bool
	}{
		{"func on", on, true},
		{"func off", off, false},
		{"any of", AnyPress{off, nil, on}, true},
		{"none of", AnyPress{off, off}, false},
		{"empty", AnyPress{}, false},
	}
	for _, tt := range tests {
		if got := tt.src.Pressed(); got != tt.want {
			t.Errorf("%s: Pressed() = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestUpdateFrom(t *testing.T) {
	s := newTestScene()
	p := s.pointer()
	l := recordEvents(p)

	held := false
	src := PressFunc(func() bool { return held })
	ray := s.rayAt(50, 50)

	p.UpdateFrom(ray, src)
	held = true
	p.UpdateFrom(ray, src)
	p.UpdateFrom(ray, nil) // nil source reads as released

	expectEvents(t, l, "enter(A)", "down(A)", "up(A)", "click(A)")
}
