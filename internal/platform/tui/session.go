package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/kokaton/internal/core"
	"github.com/vovakirdan/kokaton/internal/registry"
)

// SessionModel runs one game and then shows the scoreboard.
// This is the top-level model used for SSH sessions.
type SessionModel struct {
	game       Model
	scoreboard ScoreboardModel
	title      string
	gameID     string
	opts       Options
	width      int
	height     int
	onBoard    bool
	quitting   bool
}

// NewSessionModel creates a new session model.
func NewSessionModel(game registry.Game, cfg core.RuntimeConfig, opts Options) SessionModel {
	gm := NewModel(game, cfg, opts)
	gm.quitOnEnd = false

	return SessionModel{
		game:   gm,
		title:  game.Title(),
		gameID: game.ID(),
		opts:   gm.opts,
		width:  cfg.ScreenW,
		height: cfg.ScreenH,
	}
}

// Init starts the game.
func (m SessionModel) Init() tea.Cmd {
	return m.game.Init()
}

// Update routes messages to the active screen.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = wsm.Width
		m.height = wsm.Height
	}

	if m.onBoard {
		next, cmd := m.scoreboard.Update(msg)
		if sb, ok := next.(ScoreboardModel); ok {
			m.scoreboard = sb
		}
		if m.scoreboard.IsQuitting() {
			m.quitting = true
		}
		return m, cmd
	}

	next, cmd := m.game.Update(msg)
	if gm, ok := next.(Model); ok {
		m.game = gm
	}

	switch {
	case m.game.Quitting():
		m.quitting = true
	case m.game.Finished():
		m.onBoard = true
		m.scoreboard = NewScoreboardModel(m.opts.Store, m.gameID, m.title, m.width, m.height).
			WithPlayer(m.opts.Player, m.game.State().Score)
		return m, m.scoreboard.Init()
	}
	return m, cmd
}

// View renders the active screen.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}
	if m.onBoard {
		return m.scoreboard.View()
	}
	return m.game.View()
}
