package pinchzoom

import (
	"encoding/json"
	"fmt"
	"math"
)

// scriptPoint is a point in a test script.
type scriptPoint struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

func (p scriptPoint) vec() Vec2 { return Vec2{p.X, p.Y} }

// testStep represents a single action in a test script.
type testStep struct {
	Action string        `json:"action"`
	Label  string        `json:"label,omitempty"`
	X      float64       `json:"x,omitempty"`
	Y      float64       `json:"y,omitempty"`
	Points []scriptPoint `json:"points,omitempty"`
	From   []scriptPoint `json:"from,omitempty"`
	To     []scriptPoint `json:"to,omitempty"`
	Frames int           `json:"frames,omitempty"`

	// Expectations for "expect" steps.
	Zoom      *float64 `json:"zoom,omitempty"`
	OffsetX   *float64 `json:"offsetX,omitempty"`
	OffsetY   *float64 `json:"offsetY,omitempty"`
	State     string   `json:"state,omitempty"`
	Tolerance float64  `json:"tolerance,omitempty"`
}

// testScript is the top-level JSON structure for a test script.
type testScript struct {
	Steps []testStep `json:"steps"`
}

const defaultExpectTolerance = 1e-3

// TestRunner sequences injected touch input, waits, expectations and
// screenshots across frames. Attach it to a Controller via SetTestRunner.
type TestRunner struct {
	// Screenshot is called for "screenshot" steps. Nil skips them.
	Screenshot func(label string)

	steps     []testStep
	cursor    int
	waitCount int
	done      bool
	failures  []string
}

// LoadTestScript parses a JSON test script and returns a TestRunner ready
// to be attached to a Controller via SetTestRunner.
//
// Actions: "touch" (points), "release", "tap" (x, y), "doubletap" (x, y),
// "drag" (from, to, frames), "pinch" (from, to with two points each,
// frames), "wait" (frames), "expect" (zoom, offsetX, offsetY, state,
// tolerance), "screenshot" (label).
func LoadTestScript(jsonData []byte) (*TestRunner, error) {
	var script testScript
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("parse test script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse test script: no steps")
	}
	for i, st := range script.Steps {
		if err := validateStep(st); err != nil {
			return nil, fmt.Errorf("parse test script: step %d: %w", i, err)
		}
	}
	return &TestRunner{steps: script.Steps}, nil
}

func validateStep(st testStep) error {
	switch st.Action {
	case "touch":
		if len(st.Points) == 0 {
			return fmt.Errorf("touch needs points")
		}
	case "drag":
		if len(st.From) != 1 || len(st.To) != 1 {
			return fmt.Errorf("drag needs one from and one to point")
		}
	case "pinch":
		if len(st.From) != 2 || len(st.To) != 2 {
			return fmt.Errorf("pinch needs two from and two to points")
		}
	case "release", "tap", "doubletap", "wait", "expect", "screenshot":
	default:
		return fmt.Errorf("unknown action %q", st.Action)
	}
	return nil
}

// SetTestRunner attaches a TestRunner to the controller. The runner's step
// method is called from Controller.Update before injected input is consumed.
func (c *Controller) SetTestRunner(runner *TestRunner) {
	c.testRunner = runner
}

// Done reports whether all steps in the test script have been executed.
func (r *TestRunner) Done() bool {
	return r.done
}

// Failures returns the messages of failed "expect" steps.
func (r *TestRunner) Failures() []string {
	return r.failures
}

// step advances the test runner by one frame. Called from Controller.Update.
func (r *TestRunner) step(c *Controller) {
	if r.done {
		return
	}
	// Wait for pending injections to drain before advancing.
	if len(c.injectQueue) > 0 {
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
	case "touch":
		points := make([]Vec2, len(st.Points))
		for i, p := range st.Points {
			points[i] = p.vec()
		}
		c.InjectTouch(points...)
	case "release":
		c.InjectRelease()
	case "tap":
		c.InjectTap(st.X, st.Y)
	case "doubletap":
		c.InjectDoubleTap(st.X, st.Y)
	case "drag":
		c.InjectDrag(st.From[0].vec(), st.To[0].vec(), st.Frames)
	case "pinch":
		c.InjectPinch(st.From[0].vec(), st.From[1].vec(), st.To[0].vec(), st.To[1].vec(), st.Frames)
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	case "expect":
		r.expect(c, st)
	case "screenshot":
		if r.Screenshot != nil {
			r.Screenshot(st.Label)
		}
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 && len(c.injectQueue) == 0 {
		r.done = true
	}
}

// expect checks the controller against an "expect" step and records any
// mismatch.
func (r *TestRunner) expect(c *Controller, st testStep) {
	tol := st.Tolerance
	if tol <= 0 {
		tol = defaultExpectTolerance
	}
	check := func(name string, want *float64, got float64) {
		if want != nil && math.Abs(*want-got) > tol {
			r.failures = append(r.failures,
				fmt.Sprintf("step %d: %s = %v, want %v", r.cursor-1, name, got, *want))
		}
	}
	check("zoom", st.Zoom, c.state.ZoomFactor)
	check("offsetX", st.OffsetX, c.state.Offset.X)
	check("offsetY", st.OffsetY, c.state.Offset.Y)
	if st.State != "" && st.State != c.mode.String() {
		r.failures = append(r.failures,
			fmt.Sprintf("step %d: state = %s, want %s", r.cursor-1, c.mode, st.State))
	}
}
