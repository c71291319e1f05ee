package core

import (
	"fmt"
	"strings"
)

// Action is a platform-independent intent. The platform maps keys to
// actions; games only ever see actions.
type Action uint8

const (
	ActionNone Action = iota
	ActionUp
	ActionDown
	ActionLeft
	ActionRight
	ActionFire
	ActionPause
	ActionQuit

	actionCount
)

var actionNames = [actionCount]string{"None", "Up", "Down", "Left", "Right", "Fire", "Pause", "Quit"}

func (a Action) String() string {
	if a < actionCount {
		return actionNames[a]
	}
	return fmt.Sprintf("Action(%d)", uint8(a))
}

// InputFrame counts the actions collected for one frame. Movement is read
// as held or not; Fire and Pause are counted so that quick repeated
// presses inside one frame all register. The zero value is an empty frame.
type InputFrame struct {
	counts [actionCount]int
}

// NewInputFrame returns an empty frame.
func NewInputFrame() InputFrame {
	return InputFrame{}
}

// Set records one occurrence of a. Unknown actions are ignored.
func (f *InputFrame) Set(a Action) {
	if a < actionCount {
		f.counts[a]++
	}
}

// Has reports whether a occurred at least once.
func (f InputFrame) Has(a Action) bool {
	return f.Count(a) > 0
}

// Count returns how many times a occurred.
func (f InputFrame) Count(a Action) int {
	if a >= actionCount {
		return 0
	}
	return f.counts[a]
}

// Empty reports whether nothing occurred.
func (f InputFrame) Empty() bool {
	return f.counts == [actionCount]int{}
}

// Clear empties the frame for reuse.
func (f *InputFrame) Clear() {
	f.counts = [actionCount]int{}
}

// Clone returns an independent copy.
func (f InputFrame) Clone() InputFrame {
	return f
}

// String lists the occurred actions, e.g. "[Right Fire×2]".
func (f InputFrame) String() string {
	var parts []string
	for a := ActionNone + 1; a < actionCount; a++ {
		switch n := f.counts[a]; {
		case n == 1:
			parts = append(parts, a.String())
		case n > 1:
			parts = append(parts, fmt.Sprintf("%s×%d", a, n))
		}
	}
	return "[" + strings.Join(parts, " ") + "]"
}
