package tui

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/kokaton/internal/core"
	"github.com/vovakirdan/kokaton/internal/storage"
)

// stubGame ends after a fixed number of steps and records its input.
type stubGame struct {
	endAfter int
	score    int
	steps    int
	resets   int
	inputs   []core.InputFrame
	over     bool
}

func (g *stubGame) ID() string    { return "stub" }
func (g *stubGame) Title() string { return "Stub" }

func (g *stubGame) Reset(core.RuntimeConfig) {
	g.resets++
	g.steps = 0
	g.over = false
}

func (g *stubGame) Step(in core.InputFrame) core.StepResult {
	g.inputs = append(g.inputs, in.Clone())
	g.steps++
	g.score += in.Count(core.ActionFire)
	if g.steps >= g.endAfter {
		g.over = true
	}
	return core.StepResult{State: g.State()}
}

func (g *stubGame) Render(dst *core.Screen) {
	dst.Clear()
	dst.DrawText(0, 0, "stub")
}

func (g *stubGame) State() core.GameState {
	return core.GameState{Score: g.score, GameOver: g.over}
}

func testConfig() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 40, ScreenH: 10, TickRate: 50, Seed: 1}
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return nm, cmd
}

func TestModelTickForwardsInput(t *testing.T) {
	game := &stubGame{endAfter: 100}
	m := NewModel(game, testConfig(), Options{})
	m.Init()

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRight})
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	m, cmd := update(t, m, TickMsg(time.Now()))

	if cmd == nil {
		t.Error("a running game should schedule the next tick")
	}
	if len(game.inputs) != 1 {
		t.Fatalf("expected one step, got %d", len(game.inputs))
	}
	in := game.inputs[0]
	if !in.Has(core.ActionRight) || in.Count(core.ActionFire) != 2 {
		t.Errorf("step input = %v, expected right held and two shots", in)
	}

	// Fire is a one-shot action; right stays held.
	m, _ = update(t, m, TickMsg(time.Now()))
	in = game.inputs[1]
	if in.Has(core.ActionFire) || !in.Has(core.ActionRight) {
		t.Errorf("second step input = %v", in)
	}
	if m.State().Score != 2 {
		t.Errorf("score = %d, expected 2", m.State().Score)
	}
}

func TestModelResizeKeepsGame(t *testing.T) {
	game := &stubGame{endAfter: 100}
	m := NewModel(game, testConfig(), Options{})
	m.Init()

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 80, Height: 24})
	if game.resets != 1 {
		t.Errorf("resize should not reset the game, resets = %d", game.resets)
	}
	if m.screen.Width() != 80 || m.screen.Height() != 24 {
		t.Errorf("screen = %dx%d, expected 80x24", m.screen.Width(), m.screen.Height())
	}
}

func TestModelGameOverHoldsThenQuits(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	game := &stubGame{endAfter: 1}
	m := NewModel(game, testConfig(), Options{Store: store, Player: "alice"})
	m.Init()

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	m, cmd := update(t, m, TickMsg(time.Now()))
	if !m.State().GameOver || cmd == nil {
		t.Fatal("game over should schedule the final-frame hold")
	}
	if m.Finished() {
		t.Error("model should not finish before the hold elapses")
	}
	if !strings.Contains(m.View(), "stub") {
		t.Error("final frame should stay visible during the hold")
	}

	// Late ticks are ignored
	m, _ = update(t, m, TickMsg(time.Now()))
	if game.steps != 1 {
		t.Errorf("game stepped %d times after game over", game.steps)
	}

	m, cmd = update(t, m, finishedMsg{})
	if !m.Finished() || !m.Quitting() || cmd == nil {
		t.Error("local play should quit once the hold is over")
	}

	scores, err := store.TopScores("stub", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 1 || scores[0].Player != "alice" || scores[0].Score != 1 {
		t.Errorf("saved scores = %+v", scores)
	}
}

func TestModelQuitKey(t *testing.T) {
	m := NewModel(&stubGame{endAfter: 100}, testConfig(), Options{})
	m, cmd := update(t, m, keyRunes("q"))
	if !m.Quitting() || cmd == nil {
		t.Error("q should quit")
	}
	if m.View() != "" {
		t.Error("quitting model should render nothing")
	}
}

func TestModelScreenshot(t *testing.T) {
	dir := t.TempDir()
	m := NewModel(&stubGame{endAfter: 100}, testConfig(), Options{ScreenshotTo: dir})
	m.Init()

	update(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})

	files, err := os.ReadDir(dir)
	if err != nil || len(files) != 1 {
		t.Fatalf("expected one screenshot, got %v (%v)", files, err)
	}
	data, err := os.ReadFile(filepath.Join(dir, files[0].Name()))
	if err != nil || !strings.HasPrefix(string(data), "stub") {
		t.Errorf("screenshot content = %q, %v", data, err)
	}
}

func TestSessionShowsScoreboardAfterGame(t *testing.T) {
	game := &stubGame{endAfter: 1}
	s := NewSessionModel(game, testConfig(), Options{Player: "bob"})
	s.Init()

	step := func(msg tea.Msg) {
		next, _ := s.Update(msg)
		s = next.(SessionModel)
	}

	step(tea.WindowSizeMsg{Width: 80, Height: 24})
	step(TickMsg(time.Now()))
	step(finishedMsg{})

	if !s.onBoard {
		t.Fatal("session should switch to the scoreboard")
	}
	view := s.View()
	if !strings.Contains(view, "HIGH SCORES - Stub") || !strings.Contains(view, "bob scored 0") {
		t.Errorf("scoreboard view missing header or summary:\n%s", view)
	}

	step(keyRunes("q"))
	if !s.quitting || s.View() != "" {
		t.Error("q on the scoreboard should end the session")
	}
}

func TestRenderScreen(t *testing.T) {
	s := core.NewScreen(6, 2)
	s.DrawTextWithColor(0, 0, "ab", core.ColorRed)
	s.DrawText(2, 0, "cd")
	s.DrawTextWithColor(0, 1, "xyz", core.ColorGray)

	out := RenderScreen(s)
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	for _, want := range []string{"ab", "cd", "xyz"} {
		if !strings.Contains(out, want) {
			t.Errorf("rendered output missing %q", want)
		}
	}
}

func TestSessionPlayer(t *testing.T) {
	if sessionPlayer("  ") != storage.DefaultPlayer {
		t.Error("blank user should map to the default player")
	}
	if got := sessionPlayer(strings.Repeat("x", 40)); len(got) != 32 {
		t.Errorf("long names should be truncated, got %d chars", len(got))
	}
}
