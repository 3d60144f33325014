package laser

import (
	"encoding/json"
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
)

// scriptStep represents a single action in a tick script.
type scriptStep struct {
	Action    string     `json:"action"`
	Origin    [3]float64 `json:"origin,omitempty"`
	Direction [3]float64 `json:"direction,omitempty"`
	Frames    int        `json:"frames,omitempty"`
}

// tickScript is the top-level JSON structure for a tick script.
type tickScript struct {
	MaxDetectDistance float64      `json:"maxDetectDistance,omitempty"`
	MaxVisualDistance float64      `json:"maxVisualDistance,omitempty"`
	Steps             []scriptStep `json:"steps"`
}

// TickScript replays a scripted sequence of aims and press-signal changes
// against a Pointer, one tick per Step. It is used for automated interaction
// tests and for reproducing recorded sessions without a headset.
//
// Actions:
//
//	aim      set the ray origin/direction (does not consume a tick)
//	press    hold the press signal for one tick
//	release  drop the press signal for one tick
//	click    inject a press then a release (two ticks)
//	wait     tick `frames` times with the current ray and signal
type TickScript struct {
	steps     []scriptStep
	cursor    int
	waitCount int
	done      bool

	maxDetect float64
	maxVisual float64
	ray       Ray
	pressed   bool
}

// LoadTickScript parses a JSON tick script.
func LoadTickScript(jsonData []byte) (*TickScript, error) {
	var script tickScript
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("parse tick script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse tick script: no steps")
	}
	for i, st := range script.Steps {
		switch st.Action {
		case "aim", "press", "release", "click", "wait":
		default:
			return nil, fmt.Errorf("parse tick script: step %d: unknown action %q", i, st.Action)
		}
	}
	cfg := PointerConfig{
		MaxDetectDistance: script.MaxDetectDistance,
		MaxVisualDistance: script.MaxVisualDistance,
	}.withDefaults()
	return &TickScript{
		steps:     script.Steps,
		maxDetect: cfg.MaxDetectDistance,
		maxVisual: cfg.MaxVisualDistance,
	}, nil
}

// Done reports whether every step has been executed.
func (s *TickScript) Done() bool {
	return s.done
}

// Ray returns the ray the script currently aims with.
func (s *TickScript) Ray() Ray {
	return s.ray
}

// Step runs one tick on p. It returns false, without ticking, once the
// script is exhausted.
func (s *TickScript) Step(p *Pointer) bool {
	if s.done {
		return false
	}
	if s.waitCount > 0 || p.PendingInjections() > 0 {
		if s.waitCount > 0 {
			s.waitCount--
		}
		p.Update(s.ray, s.pressed)
		return true
	}

	// Aims apply immediately; stop at the first tick-consuming action.
	ticked := false
	for s.cursor < len(s.steps) && !ticked {
		st := s.steps[s.cursor]
		s.cursor++
		switch st.Action {
		case "aim":
			s.ray = NewRay(vec3(st.Origin), vec3(st.Direction), s.maxDetect, s.maxVisual)
			// A trailing aim still gets a tick so it is observed.
			ticked = s.cursor >= len(s.steps)
		case "press":
			s.pressed = true
			ticked = true
		case "release":
			s.pressed = false
			ticked = true
		case "click":
			p.InjectClick()
			ticked = true
		case "wait":
			if st.Frames > 1 {
				s.waitCount = st.Frames - 1 // this tick counts as one
			}
			ticked = true
		}
	}
	if !ticked {
		s.done = true
		return false
	}
	p.Update(s.ray, s.pressed)
	return true
}

// Run steps p until the script is exhausted and returns the tick count.
func (s *TickScript) Run(p *Pointer) int {
	n := 0
	for s.Step(p) {
		n++
	}
	return n
}

func vec3(a [3]float64) mgl64.Vec3 {
	return mgl64.Vec3{a[0], a[1], a[2]}
}
