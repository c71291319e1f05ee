package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/kokaton/internal/core"
	"github.com/vovakirdan/kokaton/internal/registry"
	"github.com/vovakirdan/kokaton/internal/storage"
)

// DefaultGameOverHold is how long the final frame stays on screen.
const DefaultGameOverHold = time.Second

// Options configures a game session.
type Options struct {
	Store        *storage.Store // Optional; scores are not saved when nil
	Player       string         // Name recorded with the score
	Logger       *log.Logger    // Optional; discards output when nil
	HoldWindow   time.Duration  // How long a movement key stays held
	GameOverHold time.Duration  // How long the final frame stays up
	ScreenshotTo string         // Directory for ctrl+s dumps; defaults to ~/.arcade/screenshots
}

// Model is the Bubble Tea model for running a game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	opts       Options
	config     core.RuntimeConfig
	keys       *KeyMapper
	held       *HoldTracker
	inputFrame core.InputFrame
	gameState  core.GameState
	quitOnEnd  bool
	quitting   bool
	ending     bool // Final frame is being held
	finished   bool
	scoreSaved bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts Options) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.GameOverHold <= 0 {
		opts.GameOverHold = DefaultGameOverHold
	}
	if opts.Player == "" {
		opts.Player = storage.DefaultPlayer
	}

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		opts:       opts,
		config:     cfg,
		keys:       NewKeyMapper(),
		held:       NewHoldTracker(opts.HoldWindow),
		inputFrame: core.NewInputFrame(),
		quitOnEnd:  true,
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)

	if lr, ok := m.game.(registry.LoadReporter); ok && lr.LoadError() != nil {
		m.opts.Logger.Warn("falling back to embedded resources", "game", m.game.ID(), "error", lr.LoadError())
	}
	m.opts.Logger.Debug("game started", "game", m.game.ID(), "seed", m.config.Seed, "tick_rate", m.config.TickRate)

	return tickCmd(m.config.FrameInterval())
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		// The world keeps its size; only the projection changes.
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))

	case finishedMsg:
		m.finished = true
		m.opts.Logger.Debug("game finished", "score", m.gameState.Score)
		if m.quitOnEnd {
			m.quitting = true
			return m, tea.Quit
		}
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keys.MapKey(msg)
	switch {
	case isQuit:
		m.quitting = true
		return m, tea.Quit
	case IsMovement(action):
		m.held.Press(action, time.Now())
	case action != core.ActionNone:
		m.inputFrame.Set(action)
	}

	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	if m.ending || m.finished {
		return m, nil
	}

	m.held.Apply(&m.inputFrame, now)
	result := m.game.Step(m.inputFrame)
	if result.State.Paused && !m.gameState.Paused {
		m.held.Release()
	}
	m.gameState = result.State
	m.inputFrame.Clear()

	if m.gameState.GameOver {
		m.ending = true
		m.logGameOver()
		m.saveScore()
		return m, holdCmd(m.opts.GameOverHold)
	}

	return m, tickCmd(m.config.FrameInterval())
}

// logGameOver logs the final score and, when the game counts them, frames.
func (m *Model) logGameOver() {
	fields := []any{"game", m.game.ID(), "score", m.gameState.Score}
	if fc, ok := m.game.(registry.FrameCounter); ok {
		fields = append(fields, "tick", fc.Tick())
	}
	m.opts.Logger.Info("game over", fields...)
}

// saveScore records the final score once. Failures are logged only.
func (m *Model) saveScore() {
	if m.scoreSaved || m.opts.Store == nil || m.gameState.Score <= 0 {
		return
	}
	m.scoreSaved = true

	if _, err := m.opts.Store.SaveScore(m.game.ID(), m.opts.Player, m.gameState.Score); err != nil {
		m.opts.Logger.Error("could not save score", "player", m.opts.Player, "score", m.gameState.Score, "error", err)
		return
	}
	m.opts.Logger.Info("score saved", "player", m.opts.Player, "score", m.gameState.Score)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	dir := m.opts.ScreenshotTo
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			m.opts.Logger.Warn("screenshot skipped", "error", err)
			return
		}
		dir = filepath.Join(home, ".arcade", "screenshots")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.opts.Logger.Warn("screenshot skipped", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405.000")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.opts.Logger.Warn("screenshot failed", "path", path, "error", err)
		return
	}
	m.opts.Logger.Debug("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// Finished reports whether the game ended and its final frame was shown.
func (m Model) Finished() bool {
	return m.finished
}

// Quitting reports whether the player asked to quit.
func (m Model) Quitting() bool {
	return m.quitting
}

// State returns the last game state seen by the model.
func (m Model) State() core.GameState {
	return m.gameState
}

// Run starts the Bubble Tea program with the given game and returns its
// final state.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) (core.GameState, error) {
	model := NewModel(game, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	final, err := p.Run()
	if err != nil {
		return core.GameState{}, err
	}
	if fm, ok := final.(Model); ok {
		return fm.State(), nil
	}
	return core.GameState{}, nil
}
