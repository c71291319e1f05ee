package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/kokaton/internal/storage"
)

const (
	boardLoadLimit = 100
	boardChrome    = 9  // Title, summary, table border and help
	dateMinWidth   = 46 // Narrower terminals drop the date column
	playerMarker   = "▶ "
)

type boardKeyMap struct {
	Up, Down, Top, Quit key.Binding
}

func (k boardKeyMap) ShortHelp() []key.Binding { return []key.Binding{k.Up, k.Down, k.Quit} }
func (k boardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down, k.Top}, {k.Quit}}
}

var boardKeys = boardKeyMap{
	Up:   key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
	Down: key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
	Top:  key.NewBinding(key.WithKeys("home", "g"), key.WithHelp("g", "top")),
	Quit: key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
}

var boardStyles = struct {
	title, summary, frame, empty, help lipgloss.Style
}{
	title:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")),
	summary: lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	frame:   lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1),
	empty:   lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true).Padding(2, 4),
	help:    lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
}

// boardColumns fits the table to a terminal width. The date column is only
// shown when it fits.
func boardColumns(width int) (cols []table.Column, withDate bool) {
	cols = []table.Column{
		{Title: "Rank", Width: 5},
		{Title: "Player", Width: 16},
		{Title: "Score", Width: 7},
	}
	if width < dateMinWidth {
		return cols, false
	}
	cols[1].Width += min(width-dateMinWidth, 16)
	return append(cols, table.Column{Title: "Date", Width: 13}), true
}

// ScoreboardModel shows the high score table of one game. After an SSH
// session it also shows what the player just scored.
type ScoreboardModel struct {
	store  *storage.Store
	gameID string
	title  string

	player    string
	lastScore int // -1 when not coming from a game
	best      int
	hasBest   bool
	record    int

	scores  []storage.ScoreEntry
	loadErr error

	table    table.Model
	withDate bool
	help     help.Model
	width    int
	height   int
	quitting bool
}

// NewScoreboardModel loads the scores of gameID and lays them out for a
// width×height terminal. A nil store shows a "not recorded" notice.
func NewScoreboardModel(store *storage.Store, gameID, title string, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		store:     store,
		gameID:    gameID,
		title:     title,
		lastScore: -1,
		help:      help.New(),
	}
	if store != nil {
		m.scores, m.loadErr = store.TopScores(gameID, boardLoadLimit)
	}
	m.resize(width, height)
	return m
}

// WithPlayer marks the rows of player and shows lastScore with their best.
func (m ScoreboardModel) WithPlayer(player string, lastScore int) ScoreboardModel {
	m.player = player
	m.lastScore = lastScore
	if m.store != nil {
		// Best-effort; the table is still useful without it.
		m.best, m.hasBest, _ = m.store.PlayerBest(m.gameID, player)
		m.record, _ = m.store.HighScore(m.gameID)
	}
	m.fillRows()
	return m
}

func (m *ScoreboardModel) resize(width, height int) {
	m.width, m.height = width, height
	m.help.Width = width

	var cols []table.Column
	cols, m.withDate = boardColumns(width - 4)

	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	styles.Selected = styles.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)

	m.table = table.New(
		table.WithColumns(cols),
		table.WithFocused(true),
		table.WithHeight(max(height-boardChrome, 3)),
		table.WithStyles(styles),
	)
	m.fillRows()
}

func (m *ScoreboardModel) fillRows() {
	rows := make([]table.Row, 0, len(m.scores))
	for i, e := range m.scores {
		name := e.Player
		if m.player != "" && name == m.player {
			name = playerMarker + name
		}
		row := table.Row{"#" + strconv.Itoa(i+1), name, strconv.Itoa(e.Score)}
		if m.withDate {
			row = append(row, e.CreatedAt.Local().Format("Jan 02 15:04"))
		}
		rows = append(rows, row)
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, boardKeys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, boardKeys.Top):
			m.table.GotoTop()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m ScoreboardModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	center := func(s string) {
		b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, s))
	}

	center(boardStyles.title.Render("HIGH SCORES - " + m.title))
	b.WriteString("\n\n")

	if m.lastScore >= 0 {
		summary := fmt.Sprintf("%s scored %d", m.player, m.lastScore)
		if m.hasBest {
			summary += fmt.Sprintf(" · best %d", m.best)
		}
		if m.record > 0 {
			summary += fmt.Sprintf(" · record %d", m.record)
		}
		center(boardStyles.summary.Render(summary))
		b.WriteString("\n\n")
	}

	center(boardStyles.frame.Render(m.body()))
	b.WriteString("\n")
	b.WriteString(boardStyles.help.Render(m.help.View(boardKeys)))
	return b.String()
}

func (m ScoreboardModel) body() string {
	switch {
	case m.store == nil:
		return boardStyles.empty.Render("Scores are not being recorded.")
	case m.loadErr != nil:
		return boardStyles.empty.Render("Could not load scores:\n" + m.loadErr.Error())
	case len(m.scores) == 0:
		return boardStyles.empty.Render("No scores recorded yet.\nShoot some bombs to set a high score!")
	}
	return m.table.View()
}

// IsQuitting reports whether the user closed the board.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// RunScoreboard shows the board of gameID full screen until the user quits.
func RunScoreboard(store *storage.Store, gameID, title string, width, height int) error {
	_, err := tea.NewProgram(
		NewScoreboardModel(store, gameID, title, width, height),
		tea.WithAltScreen(),
	).Run()
	return err
}
