package tui

import (
	"bytes"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-pong/internal/core"
)

type scoredEvent struct{}

func (scoredEvent) Kind() string { return "point_scored" }
func (scoredEvent) Attrs() []any { return []any{"side", "left"} }

// recordingGame records the frames it receives.
type recordingGame struct {
	frames  []core.InputFrame
	resets  int
	overAt  int
	emitAt  int
	stepped int
}

func (g *recordingGame) ID() string               { return "recording" }
func (g *recordingGame) Title() string            { return "Recording" }
func (g *recordingGame) Reset(core.RuntimeConfig) { g.resets++ }
func (g *recordingGame) SessionID() string        { return "session-1" }
func (g *recordingGame) State() core.GameState {
	return core.GameState{GameOver: g.overAt > 0 && g.stepped >= g.overAt}
}
func (g *recordingGame) Render(dst *core.Screen) { dst.DrawText(0, 0, "FIELD") }
func (g *recordingGame) Step(in core.InputFrame) core.StepResult {
	g.stepped++
	g.frames = append(g.frames, in.Clone())
	res := core.StepResult{State: g.State()}
	if g.stepped == g.emitAt {
		res.Events = append(res.Events, scoredEvent{})
	}
	return res
}

func newTestModel(g *recordingGame, buf *bytes.Buffer) Model {
	logger := log.NewWithOptions(buf, log.Options{})
	return NewModel(g, core.RuntimeConfig{ScreenW: 40, ScreenH: 12, TickRate: 60, Seed: 1}, logger)
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

func TestModelResetsGameAndLogsSession(t *testing.T) {
	var buf bytes.Buffer
	g := &recordingGame{}
	newTestModel(g, &buf)

	if g.resets != 1 {
		t.Errorf("resets = %d, want 1", g.resets)
	}
	if out := buf.String(); !strings.Contains(out, "session=session-1") || !strings.Contains(out, "game=recording") {
		t.Errorf("ready log missing fields: %q", out)
	}
}

func TestModelPressesAndHeldKeys(t *testing.T) {
	var buf bytes.Buffer
	g := &recordingGame{}
	m := newTestModel(g, &buf)

	m, _ = update(t, m, runeKey("f"))
	m, _ = update(t, m, runeKey("w"))
	m, _ = update(t, m, TickMsg{})
	m, _ = update(t, m, TickMsg{})

	if len(g.frames) != 2 {
		t.Fatalf("frames = %d, want 2", len(g.frames))
	}
	first, second := g.frames[0], g.frames[1]
	if !first.Has(core.ActionToggle) || !first.Has(core.ActionLeftUp) {
		t.Errorf("first frame = %v", first.Actions)
	}
	if second.Has(core.ActionToggle) {
		t.Error("toggle press leaked into the next tick")
	}
	if !second.Has(core.ActionLeftUp) {
		t.Error("held paddle key released after one tick")
	}
}

func TestModelLogsEvents(t *testing.T) {
	var buf bytes.Buffer
	g := &recordingGame{emitAt: 1}
	m := newTestModel(g, &buf)

	_, cmd := update(t, m, TickMsg{})
	if cmd == nil {
		t.Fatal("tick loop stopped")
	}
	if out := buf.String(); !strings.Contains(out, "point_scored") || !strings.Contains(out, "side=left") {
		t.Errorf("event not logged: %q", out)
	}
}

func TestModelQuitsOnGameOver(t *testing.T) {
	var buf bytes.Buffer
	g := &recordingGame{overAt: 2}
	m := newTestModel(g, &buf)

	m, cmd := update(t, m, TickMsg{})
	if cmd == nil {
		t.Fatal("expected next tick")
	}
	m, cmd = update(t, m, TickMsg{})
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected tea.QuitMsg on game over")
	}
	if m.View() != "" {
		t.Error("view should be empty after quitting")
	}
}

func TestModelQuitKey(t *testing.T) {
	var buf bytes.Buffer
	m := newTestModel(&recordingGame{}, &buf)

	_, cmd := update(t, m, runeKey("q"))
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected tea.QuitMsg")
	}
}

func TestModelViewAndResize(t *testing.T) {
	var buf bytes.Buffer
	m := newTestModel(&recordingGame{}, &buf)

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 60, Height: 20})
	if m.screen.Width() != 60 || m.screen.Height() != 19 {
		t.Errorf("screen = %dx%d, want 60x19 (one row for help)", m.screen.Width(), m.screen.Height())
	}

	view := m.View()
	if !strings.Contains(view, "FIELD") {
		t.Error("game render missing from view")
	}
	if !strings.Contains(view, "start/stop") {
		t.Error("help line missing from view")
	}
}

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(10, 2)
	s.DrawTextColored(0, 0, "ab", core.ColorCyan)
	s.DrawText(2, 0, "cd")
	s.SetColored(0, 1, 'x', core.Color(200)) // unknown color falls back to default

	out := RenderScreen(s)
	if !strings.Contains(out, "cd") || !strings.Contains(out, "x") {
		t.Errorf("rendered output lost text: %q", out)
	}
	if n := strings.Count(out, "\n"); n != 1 {
		t.Errorf("expected 1 newline, got %d", n)
	}
}
