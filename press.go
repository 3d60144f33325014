package laser

import "github.com/hajimehoshi/ebiten/v2"

// PressSource supplies the press signal sampled once per tick, mapped from a
// physical trigger or button.
type PressSource interface {
	Pressed() bool
}

// PressFunc adapts a function to PressSource.
type PressFunc func() bool

// Pressed calls f.
func (f PressFunc) Pressed() bool { return f() }

// MousePress reads a mouse button. Used by the desktop simulator where the
// mouse stands in for a hand controller.
type MousePress struct {
	Button ebiten.MouseButton
}

// Pressed reports whether the button is held.
func (m MousePress) Pressed() bool {
	return ebiten.IsMouseButtonPressed(m.Button)
}

// KeyPress reads a keyboard key.
type KeyPress struct {
	Key ebiten.Key
}

// Pressed reports whether the key is held.
func (k KeyPress) Pressed() bool {
	return ebiten.IsKeyPressed(k.Key)
}

// GamepadPress reads a standard-layout gamepad button, by default the right
// trigger. Gamepads without a standard layout never report a press.
type GamepadPress struct {
	ID     ebiten.GamepadID
	Button ebiten.StandardGamepadButton
}

// NewTriggerPress reads the right trigger of gamepad id.
func NewTriggerPress(id ebiten.GamepadID) GamepadPress {
	return GamepadPress{ID: id, Button: ebiten.StandardGamepadButtonFrontBottomRight}
}

// Pressed reports whether the button is held.
func (g GamepadPress) Pressed() bool {
	if !ebiten.IsStandardGamepadLayoutAvailable(g.ID) {
		return false
	}
	return ebiten.IsStandardGamepadButtonPressed(g.ID, g.Button)
}

// AnyPress reports a press when any of its sources is pressed.
type AnyPress []PressSource

// Pressed reports whether any source is pressed.
func (a AnyPress) Pressed() bool {
	for _, s := range a {
		if s != nil && s.Pressed() {
			return true
		}
	}
	return false
}

// UpdateFrom runs one tick sampling the press signal from src. A nil source
// reads as released.
func (p *Pointer) UpdateFrom(ray Ray, src PressSource) {
	pressed := false
	if src != nil {
		pressed = src.Pressed()
	}
	p.Update(ray, pressed)
}
