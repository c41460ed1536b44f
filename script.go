package lightbox

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrEmptyScript is returned by LoadScript for a script without steps.
var ErrEmptyScript = errors.New("no steps")

// scriptStep represents a single action in an input script.
type scriptStep struct {
	Action string  `json:"action"`
	Label  string  `json:"label,omitempty"`
	Code   string  `json:"code,omitempty"`
	Key    string  `json:"key,omitempty"`
	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	DeltaY float64 `json:"deltaY,omitempty"`
	FromX  float64 `json:"fromX,omitempty"`
	FromY  float64 `json:"fromY,omitempty"`
	ToX    float64 `json:"toX,omitempty"`
	ToY    float64 `json:"toY,omitempty"`
	Frames int     `json:"frames,omitempty"`
	Value  *bool   `json:"value,omitempty"`
}

// script is the top-level JSON structure for an input script.
type script struct {
	Steps []scriptStep `json:"steps"`
}

var knownActions = map[string]bool{
	"open": true, "close": true, "zoomable": true, "zoomkey": true,
	"key": true, "wheel": true, "drag": true, "swipe": true,
	"dragselect": true, "wait": true, "screenshot": true,
}

// ScriptRunner sequences injected input events across updates for automated
// replay of viewer sessions.
//
//	{"steps": [
//		{"action": "open"},
//		{"action": "zoomable", "value": true},
//		{"action": "wheel", "x": 400, "y": 300, "deltaY": -500},
//		{"action": "drag", "fromX": 400, "fromY": 300, "toX": 300, "toY": 300, "frames": 4},
//		{"action": "swipe", "fromX": 200, "toX": 150},
//		{"action": "key", "key": "ArrowRight"},
//		{"action": "zoomkey", "label": "item-2"},
//		{"action": "dragselect", "label": "start"},
//		{"action": "wait", "frames": 3},
//		{"action": "screenshot", "label": "after"}
//	]}
type ScriptRunner struct {
	steps     []scriptStep
	cursor    int
	waitCount int
	done      bool

	// OnScreenshot is called for "screenshot" steps. Headless runs leave it nil.
	OnScreenshot func(label string)
}

// LoadScript parses a JSON input script and returns a runner ready to be
// stepped against a Viewer.
func LoadScript(jsonData []byte) (*ScriptRunner, error) {
	var sc script
	if err := json.Unmarshal(jsonData, &sc); err != nil {
		return nil, fmt.Errorf("parse input script: %w", err)
	}
	if len(sc.Steps) == 0 {
		return nil, fmt.Errorf("parse input script: %w", ErrEmptyScript)
	}
	for i, st := range sc.Steps {
		if !knownActions[st.Action] {
			return nil, fmt.Errorf("parse input script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &ScriptRunner{steps: sc.Steps}, nil
}

// Done reports whether all steps have been executed and drained.
func (r *ScriptRunner) Done() bool {
	return r.done
}

// Len returns the number of steps in the script.
func (r *ScriptRunner) Len() int {
	return len(r.steps)
}

// Step advances the runner by one tick. Call it before Viewer.Update.
func (r *ScriptRunner) Step(v *Viewer) {
	if r.done {
		return
	}
	// Wait for pending injections to drain before advancing.
	if v.Pending() > 0 {
		return
	}
	if r.waitCount > 0 {
		r.waitCount--
		return
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	r.cursor++

	switch st.Action {
	case "open":
		v.SetOpen(true)
	case "close":
		v.Close()
	case "zoomable":
		v.SetZoomable(st.Value == nil || *st.Value)
	case "zoomkey":
		v.SetZoomKey(st.Label)
	case "key":
		v.InjectKey(st.Code, st.Key)
	case "wheel":
		v.InjectWheel(st.X, st.Y, st.DeltaY)
	case "drag":
		v.InjectDrag(st.FromX, st.FromY, st.ToX, st.ToY, st.Frames)
	case "swipe":
		v.InjectSwipe(st.FromX, st.ToX, st.Frames)
	case "dragselect":
		v.InjectDragSelect(st.Label != "end")
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this tick counts as one
		}
	case "screenshot":
		if r.OnScreenshot != nil {
			r.OnScreenshot(st.Label)
		}
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 && v.Pending() == 0 {
		r.done = true
	}
}

// Run steps r against v until done, calling v.Update after every step. It
// stops after maxTicks updates and reports whether the script finished.
func (r *ScriptRunner) Run(v *Viewer, maxTicks int) bool {
	for i := 0; i < maxTicks && !r.done; i++ {
		r.Step(v)
		v.Update()
	}
	// Drain the final tick's injections.
	for i := 0; i < maxTicks && v.Pending() > 0; i++ {
		v.Update()
	}
	return r.done && v.Pending() == 0
}
