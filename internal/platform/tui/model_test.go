package tui

import (
	"errors"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/planetwars/internal/core"
	"github.com/vovakirdan/planetwars/internal/storage"
)

// fakeGame records what the loop feeds it.
type fakeGame struct {
	resets []core.RuntimeConfig
	frames []core.InputFrame
	state  core.GameState
	quit   bool
}

func (g *fakeGame) ID() string    { return "fake" }
func (g *fakeGame) Title() string { return "Fake" }

func (g *fakeGame) Reset(cfg core.RuntimeConfig) {
	g.resets = append(g.resets, cfg)
	g.state = core.GameState{}
}

func (g *fakeGame) Step(in core.InputFrame) core.StepResult {
	frame := core.NewInputFrame()
	for a, on := range in.Actions {
		frame.Actions[a] = on
	}
	frame.Pointers = append(frame.Pointers, in.Pointers...)
	g.frames = append(g.frames, frame)
	return core.StepResult{State: g.state, Quit: g.quit}
}

func (g *fakeGame) State() core.GameState { return g.state }

func (g *fakeGame) Render(dst *core.Screen) {
	dst.Clear()
	dst.DrawText(0, 0, "fake")
}

func (g *fakeGame) Summary() core.MatchSummary {
	return core.MatchSummary{Game: "fake", Result: g.state.Result, Seed: 7, Round: 1, DurationMs: 1500.9, Captures: 2}
}

type fakeRecorder struct {
	saved []storage.Match
	err   error
}

func (r *fakeRecorder) SaveMatch(m storage.Match) (int64, error) {
	if r.err != nil {
		return 0, r.err
	}
	r.saved = append(r.saved, m)
	return int64(len(r.saved)), nil
}

func newTestModel(t *testing.T) (*Model, *fakeGame, *fakeRecorder) {
	t.Helper()
	g := &fakeGame{}
	rec := &fakeRecorder{}
	cfg := core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 10, Seed: 7}
	m := NewModel(g, rec, nil, cfg)
	if cmd := m.Init(); cmd == nil {
		t.Fatal("Init() should start the tick loop")
	}
	return m, g, rec
}

func TestModelInitResets(t *testing.T) {
	_, g, _ := newTestModel(t)
	if len(g.resets) != 1 || g.resets[0].Seed != 7 || g.resets[0].ScreenW != 80 {
		t.Errorf("resets = %+v", g.resets)
	}
}

func TestModelForwardsInputOnTick(t *testing.T) {
	m, g, _ := newTestModel(t)

	m.Update(runeKey("3"))
	m.Update(tea.MouseMsg{X: 4, Y: 9, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if _, cmd := m.Update(TickMsg{}); cmd == nil {
		t.Error("tick should schedule the next tick")
	}

	if len(g.frames) != 1 {
		t.Fatalf("expected 1 step, got %d", len(g.frames))
	}
	in := g.frames[0]
	want := []core.Pointer{{Key: '3'}, {Cell: core.Point{X: 4, Y: 9}}}
	if len(in.Pointers) != len(want) || in.Pointers[0] != want[0] || in.Pointers[1] != want[1] {
		t.Errorf("Pointers = %+v, expected %+v in press order", in.Pointers, want)
	}
	if !in.Has(core.ActionCancel) {
		t.Error("cancel not forwarded")
	}

	// Input is consumed by the tick.
	m.Update(TickMsg{})
	if next := g.frames[1]; len(next.Actions) != 0 || len(next.Pointers) != 0 {
		t.Errorf("second frame should be empty: %+v", g.frames[1])
	}
}

func TestModelRecordsMatchOnce(t *testing.T) {
	m, g, rec := newTestModel(t)

	g.state = core.GameState{GameOver: true, Result: "VICTORY"}
	for range 3 {
		m.Update(TickMsg{})
	}
	if len(rec.saved) != 1 {
		t.Fatalf("expected 1 saved match, got %d", len(rec.saved))
	}
	got := rec.saved[0]
	if got.Result != "VICTORY" || got.Seed != 7 || got.DurationMs != 1500 || got.Captures != 2 {
		t.Errorf("saved = %+v", got)
	}

	// A new round that ends again is a new match.
	g.state = core.GameState{}
	m.Update(TickMsg{})
	g.state = core.GameState{GameOver: true, Result: "DEFEAT"}
	m.Update(TickMsg{})
	if len(rec.saved) != 2 || rec.saved[1].Result != "DEFEAT" {
		t.Errorf("saved = %+v", rec.saved)
	}
}

func TestModelSaveErrorDoesNotStopGame(t *testing.T) {
	m, g, rec := newTestModel(t)
	rec.err = errors.New("disk full")

	g.state = core.GameState{GameOver: true, Result: "DEFEAT"}
	if _, cmd := m.Update(TickMsg{}); cmd == nil {
		t.Error("game loop should keep ticking after a failed save")
	}
}

func TestModelWithoutStore(t *testing.T) {
	g := &fakeGame{}
	m := NewModel(g, nil, nil, core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 10, Seed: 1})
	m.Init()
	g.state = core.GameState{GameOver: true, Result: "VICTORY"}
	m.Update(TickMsg{})
}

func TestModelResize(t *testing.T) {
	m, g, _ := newTestModel(t)

	m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	if len(g.resets) != 1 {
		t.Errorf("same size should not reset, resets = %d", len(g.resets))
	}

	m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	if len(g.resets) != 2 || g.resets[1].ScreenW != 100 || g.resets[1].ScreenH != 30 {
		t.Errorf("resets = %+v", g.resets)
	}

	g.state = core.GameState{GameOver: true, Result: "DEFEAT"}
	m.Update(TickMsg{})
	m.Update(tea.WindowSizeMsg{Width: 90, Height: 30})
	if len(g.resets) != 2 {
		t.Error("a finished game should not be reset by a resize")
	}
}

func TestModelQuit(t *testing.T) {
	t.Run("quit key", func(t *testing.T) {
		m, _, _ := newTestModel(t)
		if _, cmd := m.Update(runeKey("q")); cmd == nil {
			t.Error("q should return a quit command")
		}
		if m.View() != "" {
			t.Error("View() should be empty after quitting")
		}
	})

	t.Run("game asks to quit", func(t *testing.T) {
		m, g, _ := newTestModel(t)
		g.quit = true
		m.Update(TickMsg{})
		if !m.quitting {
			t.Error("model should quit when the game asks")
		}
	})
}

func TestModelScreenshot(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	m, _, _ := newTestModel(t)

	path, err := m.saveScreenshot()
	if err != nil {
		t.Fatalf("saveScreenshot() failed: %v", err)
	}
	if filepath.Dir(path) != filepath.Join(home, ".planetwars", "screenshots") {
		t.Errorf("screenshot path = %q", path)
	}
}

func TestModelView(t *testing.T) {
	m, _, _ := newTestModel(t)
	if view := m.View(); len(view) == 0 {
		t.Error("View() is empty")
	}
}
