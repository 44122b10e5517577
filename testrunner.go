package wordarena

import (
	"encoding/json"
	"fmt"
)

// testStep represents a single action in a test script. Pointer steps take
// either screen coordinates or the text of a bubble to aim at.
type testStep struct {
	Action string  `json:"action"`
	Text   string  `json:"text,omitempty"`
	Word   string  `json:"word,omitempty"`
	Label  string  `json:"label,omitempty"`
	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	Frames int     `json:"frames,omitempty"`
}

// testScript is the top-level JSON structure for a test script.
type testScript struct {
	Steps []testStep `json:"steps"`
}

var knownActions = map[string]bool{
	"add": true, "press": true, "release": true, "click": true,
	"hold": true, "wait": true, "capture": true,
}

// runnerHost is what a TestRunner drives. *Game implements it.
type runnerHost interface {
	runnerInput() *Input
	// wordScreenPosition returns the screen position of the first bubble
	// showing text.
	wordScreenPosition(text string) (Vec2, bool)
	submitWord(text string) bool
	queueCapture(label string)
}

// TestRunner sequences words, injected pointer events and captures across
// frames for automated visual testing. Attach to a Game via SetTestRunner.
type TestRunner struct {
	steps     []testStep
	cursor    int
	waitCount int
	done      bool
	// skipped counts pointer steps whose target word was not on screen.
	skipped int
}

// LoadTestScript parses a JSON test script and returns a TestRunner ready
// to be attached to a Game via SetTestRunner.
func LoadTestScript(jsonData []byte) (*TestRunner, error) {
	var script testScript
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("parse test script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse test script: no steps")
	}
	for i, st := range script.Steps {
		if !knownActions[st.Action] {
			return nil, fmt.Errorf("parse test script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &TestRunner{steps: script.Steps}, nil
}

// Done reports whether all steps in the test script have been executed.
func (r *TestRunner) Done() bool {
	return r.done
}

// Skipped returns the number of pointer steps whose target was missing.
func (r *TestRunner) Skipped() int { return r.skipped }

// target resolves a pointer step to screen coordinates.
func (r *TestRunner) target(h runnerHost, st testStep) (x, y float64, ok bool) {
	if st.Word == "" {
		return st.X, st.Y, true
	}
	p, ok := h.wordScreenPosition(st.Word)
	if !ok {
		r.skipped++
		return 0, 0, false
	}
	return p.X, p.Y, true
}

// step advances the test runner by one frame. Called from Game.Update
// before input is processed.
func (r *TestRunner) step(h runnerHost) {
	if r.done {
		return
	}
	in := h.runnerInput()
	// Wait for pending injections to drain before advancing.
	if in.PendingInjections() > 0 {
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
	case "add":
		h.submitWord(st.Text)
	case "capture":
		h.queueCapture(st.Label)
	case "press":
		if x, y, ok := r.target(h, st); ok {
			in.InjectPress(x, y)
		}
	case "release":
		if x, y, ok := r.target(h, st); ok {
			in.InjectRelease(x, y)
		}
	case "click":
		if x, y, ok := r.target(h, st); ok {
			in.InjectClick(x, y)
		}
	case "hold":
		if x, y, ok := r.target(h, st); ok {
			in.InjectHold(x, y, st.Frames)
		}
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 && in.PendingInjections() == 0 {
		r.done = true
	}
}
