// Package registry maps game IDs to factories. Game packages register
// themselves in init(), so the CLI and the SSH server can create a game by
// ID without importing its package.
package registry

import (
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/vovakirdan/kokaton/internal/core"
)

// Game is a pure simulation driven by the platform. It never touches the
// terminal: the platform feeds it actions, paces Step and presents what
// Render draws.
type Game interface {
	// ID is the stable key used for the CLI and for score storage.
	ID() string

	// Title is the display name.
	Title() string

	// Reset builds a fresh world. The runtime config carries the cell size
	// of the terminal and the RNG seed.
	Reset(cfg core.RuntimeConfig)

	// Step advances one frame with the actions collected since the last one.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current frame into dst.
	Render(dst *core.Screen)

	// State reports score, pause and game over.
	State() core.GameState
}

// LoadReporter is implemented by games that fall back to built-in
// resources when the configured ones fail to load.
type LoadReporter interface {
	LoadError() error
}

// FrameCounter is implemented by games that count simulated frames.
type FrameCounter interface {
	Tick() uint64
}

// GameInfo describes a registered game.
type GameInfo struct {
	ID    string
	Title string
}

// Factory creates a new, not yet Reset, game.
type Factory func() Game

type entry struct {
	factory Factory
	title   string
}

var (
	mu      sync.RWMutex
	entries = make(map[string]entry)
)

// Register adds a factory under id. It panics on an empty or duplicate id.
func Register(id string, f Factory) {
	if id == "" {
		panic("registry: empty game id")
	}

	mu.Lock()
	defer mu.Unlock()

	if _, exists := entries[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}
	entries[id] = entry{factory: f, title: f().Title()}
}

// List returns the registered games sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(entries))
	for id, e := range entries {
		result = append(result, GameInfo{ID: id, Title: e.title})
	}
	slices.SortFunc(result, func(a, b GameInfo) int {
		return strings.Compare(a.ID, b.ID)
	})
	return result
}

// Create returns a new instance of the game registered under id.
func Create(id string) (Game, error) {
	mu.RLock()
	e, ok := entries[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}
	return e.factory(), nil
}

// Exists reports whether id is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := entries[id]
	return ok
}
