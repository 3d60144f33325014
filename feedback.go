package laser

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// TintTween animates an element's Tint toward a target color. Call Update(dt)
// each tick. If the element is disposed the tween stops immediately.
type TintTween struct {
	tweens [4]*gween.Tween
	target *Element
	Done   bool
}

// TweenTint creates a TintTween from the element's current Tint to the given
// color over duration seconds.
func TweenTint(el *Element, to Color, duration float32, fn ease.TweenFunc) *TintTween {
	g := &TintTween{target: el}
	g.tweens[0] = gween.New(float32(el.Tint.R), float32(to.R), duration, fn)
	g.tweens[1] = gween.New(float32(el.Tint.G), float32(to.G), duration, fn)
	g.tweens[2] = gween.New(float32(el.Tint.B), float32(to.B), duration, fn)
	g.tweens[3] = gween.New(float32(el.Tint.A), float32(to.A), duration, fn)
	return g
}

// Update advances the tween by dt seconds and writes the element's Tint.
func (g *TintTween) Update(dt float32) {
	if g.Done {
		return
	}
	if g.target == nil || g.target.IsDisposed() {
		g.Done = true
		return
	}
	allDone := true
	var v [4]float64
	for i, tw := range g.tweens {
		val, finished := tw.Update(dt)
		v[i] = float64(val)
		if !finished {
			allDone = false
		}
	}
	g.target.Tint = Color{R: v[0], G: v[1], B: v[2], A: v[3]}
	g.Done = allDone
}

// HighlightFeedback is a FeedbackSink that fades elements between a normal,
// highlighted and pressed tint as pointers hover and press them. Several
// elements can share one HighlightFeedback; Update must be called each tick.
//
// Two pointers hovering the same element in one tick both retarget its tween;
// the last event wins.
type HighlightFeedback struct {
	Normal    Color
	Highlight Color
	Pressed   Color
	Duration  float32
	Ease      ease.TweenFunc

	active map[*Element]*TintTween
}

// NewHighlightFeedback creates a feedback sink with the given tints and a
// 0.1 second linear fade.
func NewHighlightFeedback(normal, highlight, pressed Color) *HighlightFeedback {
	return &HighlightFeedback{
		Normal:    normal,
		Highlight: highlight,
		Pressed:   pressed,
		Duration:  0.1,
		Ease:      ease.Linear,
		active:    make(map[*Element]*TintTween),
	}
}

// ApplyFeedback retargets el's tint for the event kind.
func (f *HighlightFeedback) ApplyFeedback(el *Element, kind EventKind) {
	var to Color
	switch kind {
	case EventEnter, EventUp:
		to = f.Highlight
	case EventDown, EventDragStart:
		to = f.Pressed
	case EventExit, EventDragEnd:
		to = f.Normal
	default:
		return
	}
	if f.active == nil {
		f.active = make(map[*Element]*TintTween)
	}
	fn := f.Ease
	if fn == nil {
		fn = ease.Linear
	}
	if f.Duration <= 0 {
		el.Tint = to
		delete(f.active, el)
		return
	}
	f.active[el] = TweenTint(el, to, f.Duration, fn)
}

// Update advances every running fade by dt seconds.
func (f *HighlightFeedback) Update(dt float32) {
	for el, tw := range f.active {
		tw.Update(dt)
		if tw.Done {
			delete(f.active, el)
		}
	}
}

// Animating reports whether any fade is still running.
func (f *HighlightFeedback) Animating() bool {
	return len(f.active) > 0
}
