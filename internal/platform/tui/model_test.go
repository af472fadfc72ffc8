package tui

import (
	"path/filepath"
	"regexp"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/mazechase/internal/core"
	"github.com/vovakirdan/mazechase/internal/storage"
)

// stubGame reports whatever state the test sets.
type stubGame struct {
	state  core.GameState
	inputs []core.InputFrame
	resets int
}

func (g *stubGame) ID() string {
	return "stub"
}

func (g *stubGame) Title() string {
	return "Stub"
}

func (g *stubGame) Reset(core.RuntimeConfig) {
	g.resets++
}

func (g *stubGame) Render(dst *core.Screen) {
	dst.DrawTextColor(0, 0, "stub", core.ColorRed)
}

func (g *stubGame) State() core.GameState {
	return g.state
}

func (g *stubGame) Step(in core.InputFrame) core.StepResult {
	g.inputs = append(g.inputs, in.Clone())
	return core.StepResult{State: g.state}
}

func (g *stubGame) Record() storage.Run {
	return storage.Run{GameID: "stub", Score: g.state.Score, Level: g.state.Level, Won: g.state.Won}
}

func newTestModel(t *testing.T, g *stubGame) (Model, *storage.Store) {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	cfg := core.RuntimeConfig{ScreenW: 40, ScreenH: 10, TickRate: 60, Seed: 1}
	return NewModel(g, store, cfg, "alice"), store
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("expected Model, got %T", next)
	}
	return model
}

func TestModelForwardsInput(t *testing.T) {
	g := &stubGame{}
	m, _ := newTestModel(t, g)

	m = update(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	m = update(t, m, TickMsg{Gen: m.gen})
	m = update(t, m, TickMsg{Gen: m.gen})

	if len(g.inputs) != 2 {
		t.Fatalf("expected 2 steps, got %d", len(g.inputs))
	}
	if !g.inputs[0].Has(core.ActionLeft) {
		t.Error("expected left on the first tick")
	}
	if g.inputs[1].Has(core.ActionLeft) {
		t.Error("expected input cleared after a tick")
	}
}

func TestModelIgnoresStaleTicks(t *testing.T) {
	g := &stubGame{}
	m, _ := newTestModel(t, g)

	update(t, m, TickMsg{Gen: m.gen + 1000})
	if len(g.inputs) != 0 {
		t.Errorf("expected stale tick ignored, got %d steps", len(g.inputs))
	}
}

func TestModelSavesRunOnce(t *testing.T) {
	g := &stubGame{state: core.GameState{Score: 1200, Level: 2, GameOver: true}}
	m, store := newTestModel(t, g)

	for range 3 {
		m = update(t, m, TickMsg{Gen: m.gen})
	}

	runs, err := store.RecentRuns("stub", 10)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("expected 1 saved run, got %d", len(runs))
	}
	if runs[0].Player != "alice" || runs[0].Score != 1200 || runs[0].Level != 2 {
		t.Errorf("unexpected run: %+v", runs[0])
	}

	// A restart arms the save again.
	m = update(t, m, runeKey('r'))
	update(t, m, TickMsg{Gen: m.gen})
	runs, _ = store.RecentRuns("stub", 10)
	if len(runs) != 2 {
		t.Errorf("expected 2 saved runs after restart, got %d", len(runs))
	}
}

func TestModelSkipsZeroScore(t *testing.T) {
	g := &stubGame{state: core.GameState{GameOver: true}}
	m, store := newTestModel(t, g)

	update(t, m, TickMsg{Gen: m.gen})
	if high, _ := store.HighScore("stub"); high != 0 {
		t.Errorf("expected nothing saved, got high score %d", high)
	}
}

func TestModelBackToMenu(t *testing.T) {
	g := &stubGame{}
	m, _ := newTestModel(t, g)

	m = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.BackToMenu() {
		t.Fatal("back should be ignored while playing")
	}

	g.state.Paused = true
	m = update(t, m, TickMsg{Gen: m.gen})
	m = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if !m.BackToMenu() {
		t.Error("expected back to menu while paused")
	}

	m = update(t, m, runeKey('q'))
	if !m.IsQuitting() {
		t.Error("expected quit on q")
	}
}

var ansiEscape = regexp.MustCompile(`\x1b\[[0-9;]*m`)

func TestRenderScreenText(t *testing.T) {
	s := core.NewScreen(12, 3)
	s.DrawTextColor(1, 0, "abc", core.ColorRed)
	s.SetCell(5, 0, 'x', core.ColorBlue)
	s.DrawText(0, 2, "plain")
	s.SetCell(11, 1, '#', core.Color(200)) // unknown color

	got := ansiEscape.ReplaceAllString(RenderScreen(s), "")
	if got != s.String() {
		t.Errorf("expected %q, got %q", s.String(), got)
	}
}
