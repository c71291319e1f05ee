package tui

import (
	"time"

	"github.com/vovakirdan/kokaton/internal/core"
)

// DefaultHoldWindow is how long a movement key counts as held after its
// last press. It has to bridge the gap between terminal key repeats.
const DefaultHoldWindow = 200 * time.Millisecond

var opposite = map[core.Action]core.Action{
	core.ActionUp:    core.ActionDown,
	core.ActionDown:  core.ActionUp,
	core.ActionLeft:  core.ActionRight,
	core.ActionRight: core.ActionLeft,
}

// HoldTracker approximates held keys from key-press events.
// Terminals only report presses (and auto-repeats), never releases.
type HoldTracker struct {
	window  time.Duration
	pressed map[core.Action]time.Time
}

// NewHoldTracker creates a tracker that keeps keys held for window.
func NewHoldTracker(window time.Duration) *HoldTracker {
	if window <= 0 {
		window = DefaultHoldWindow
	}
	return &HoldTracker{
		window:  window,
		pressed: make(map[core.Action]time.Time),
	}
}

// Press records a key press. Pressing a direction releases its opposite.
func (h *HoldTracker) Press(a core.Action, now time.Time) {
	h.pressed[a] = now
	if o, ok := opposite[a]; ok {
		delete(h.pressed, o)
	}
}

// Release drops every held key.
func (h *HoldTracker) Release() {
	clear(h.pressed)
}

// Apply sets every action still held at now on the frame and forgets
// the expired ones.
func (h *HoldTracker) Apply(frame *core.InputFrame, now time.Time) {
	for a, at := range h.pressed {
		if now.Sub(at) > h.window {
			delete(h.pressed, a)
			continue
		}
		frame.Set(a)
	}
}
