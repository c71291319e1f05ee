package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/kokaton/internal/core"
)

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct {
	bindings map[string]core.Action
}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{
		bindings: map[string]core.Action{
			"up":     core.ActionUp,
			"w":      core.ActionUp,
			"down":   core.ActionDown,
			"s":      core.ActionDown,
			"left":   core.ActionLeft,
			"a":      core.ActionLeft,
			"right":  core.ActionRight,
			"d":      core.ActionRight,
			" ":      core.ActionFire,
			"p":      core.ActionPause,
			"esc":    core.ActionPause,
			"q":      core.ActionQuit,
			"ctrl+c": core.ActionQuit,
		},
	}
}

// MapKey translates a key message to an action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	action, ok := km.bindings[msg.String()]
	if !ok {
		return core.ActionNone, false
	}
	return action, action == core.ActionQuit
}

// IsMovement reports whether the action steers the kokaton.
func IsMovement(a core.Action) bool {
	switch a {
	case core.ActionUp, core.ActionDown, core.ActionLeft, core.ActionRight:
		return true
	}
	return false
}
