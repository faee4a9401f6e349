package pinchdeck

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrNoSteps is returned by LoadTestScript for a script without steps.
var ErrNoSteps = errors.New("no steps")

// testStep represents a single action in a test script. Hand coordinates are
// normalized; pointer coordinates are screen-space.
type testStep struct {
	Action    string  `json:"action"`
	X         float64 `json:"x,omitempty"`
	Y         float64 `json:"y,omitempty"`
	ToX       float64 `json:"toX,omitempty"`
	ToY       float64 `json:"toY,omitempty"`
	Pinch     bool    `json:"pinch,omitempty"`
	Pressed   bool    `json:"pressed,omitempty"`
	Reshuffle bool    `json:"reshuffle,omitempty"`
	Width     float64 `json:"width,omitempty"`
	Height    float64 `json:"height,omitempty"`
	Frames    int     `json:"frames,omitempty"`
}

// testScript is the top-level JSON structure for a test script.
type testScript struct {
	Steps []testStep `json:"steps"`
}

// TestRunner sequences injected input across frames for scripted sessions and
// headless replays. Attach to a Session via SetTestRunner.
//
// Actions: "hand" (x, y, pinch, frames), "sweep" (x, y, toX, toY, frames),
// "nohand" (frames), "pointer" (x, y, pressed), "click" (x, y),
// "wait" (frames), "reset" (reshuffle), "resize" (width, height),
// "mirror", "close".
type TestRunner struct {
	steps     []testStep
	cursor    int
	waitCount int
	done      bool
}

// LoadTestScript parses a JSON test script and returns a TestRunner ready
// to be attached to a Session via SetTestRunner.
func LoadTestScript(jsonData []byte) (*TestRunner, error) {
	var script testScript
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("parse test script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse test script: %w", ErrNoSteps)
	}
	for i, st := range script.Steps {
		if !knownAction(st.Action) {
			return nil, fmt.Errorf("parse test script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &TestRunner{steps: script.Steps}, nil
}

func knownAction(a string) bool {
	switch a {
	case "hand", "sweep", "nohand", "pointer", "click", "wait", "reset", "resize", "mirror", "close":
		return true
	}
	return false
}

// SetTestRunner attaches a TestRunner to the session. The runner's step
// method is called from Session.Update before input processing each frame.
func (s *Session) SetTestRunner(runner *TestRunner) {
	s.testRunner = runner
}

// Done reports whether all steps in the test script have been executed.
func (r *TestRunner) Done() bool {
	return r.done
}

// step advances the test runner by one frame. Called from Session.Update.
func (r *TestRunner) step(s *Session) {
	if r.done {
		return
	}
	// Wait for pending injections to drain before advancing.
	if len(s.injectQueue) > 0 {
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

	frames := max(st.Frames, 1)
	switch st.Action {
	case "hand":
		for i := 0; i < frames; i++ {
			if st.Pinch {
				s.InjectPinch(st.X, st.Y)
			} else {
				s.InjectOpenHand(st.X, st.Y)
			}
		}
	case "sweep":
		s.InjectSweep(st.X, st.Y, st.ToX, st.ToY, st.Frames)
	case "nohand":
		for i := 0; i < frames; i++ {
			s.InjectNoHand()
		}
	case "pointer":
		s.InjectPointer(st.X, st.Y, st.Pressed)
	case "click":
		s.InjectClick(st.X, st.Y)
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	case "reset":
		s.Reset(st.Reshuffle)
	case "resize":
		s.Resize(DefaultMetrics(st.Width, st.Height, s.cfg))
	case "mirror":
		s.ToggleMirror()
	case "close":
		s.CloseSummary()
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 && len(s.injectQueue) == 0 {
		r.done = true
	}
}
