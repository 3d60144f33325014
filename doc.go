// Package laser turns hand-controller rays into pointer events for UI
// surfaces embedded in a 3D scene.
//
// Each tick a [Pointer] receives its hand's [Ray] and the sampled press
// signal. It casts the ray against solid geometry (a [PhysicsWorld]) and
// every visible [Surface] in a [SurfaceRegistry], keeps the single nearest
// hit, resolves it to the nearest interactive [Element], and dispatches
// enter, exit, down, up and click events to it.
//
// # Quick start
//
//	registry := laser.NewSurfaceRegistry()
//	panel := laser.NewPanel("menu", mgl64.Vec3{0, 1.5, -2}, 1, 0.6, 200)
//	registry.Register(panel)
//
//	ok := laser.NewButton("ok", 80, 40)
//	ok.OnClick = func(ctx laser.PointerContext) { fmt.Println("ok") }
//	panel.Root().AddChild(ok)
//
//	right := laser.NewPointer(laser.PointerConfig{ID: 1}, registry, nil)
//
//	// once per tick:
//	ray := laser.RayFromPose(handPos, handRot, right.Config())
//	right.Update(ray, triggerHeld)
//
// # Hit arbitration
//
// The nearest hit wins. Hits at or beyond the ray's MaxDetectDistance are
// ignored. A surface exactly tied with solid geometry wins over it, and
// surfaces tied with each other resolve to the one registered first. Empty
// regions of a surface, where no element is laid out, let the ray through.
//
// # Hierarchy
//
// [Panel.HitTestLocal] returns the deepest visible element under the hit,
// whether or not it is interactive. [ResolveInteractive] then walks up to
// the first ancestor with Interactable set, so a label inside a button hands
// its hit to the button.
//
// # Press, click and drag
//
// Down is sent to the target when the press signal goes down. Up follows on
// release, or implicitly when the pressed target loses focus. No up is ever
// sent without a matching down: a press that starts over empty space and is
// released over an element produces only that element's enter. Click is sent
// only when the release lands on the element that received the down and it
// is still the target. Pressing on an element marked as a DragHandle starts a
// [DragSession] instead: the handle receives exit then dragstart, drag fires
// every tick while the signal is held, and dragend fires on release. Ordinary
// hit testing is suspended while a session runs.
//
// # Feedback and integration
//
// Elements may carry a [FeedbackSink]; [HighlightFeedback] fades their tint
// with [gween] tweens. Every event is also forwarded to the pointer's
// [EntityStore]s, such as the [Donburi] adapter in laser/ecs or the WebSocket
// inspector in laser/debugtap.
//
// [gween]: https://github.com/tanema/gween
// [Donburi]: https://github.com/yohamta/donburi
package laser
