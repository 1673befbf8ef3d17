package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-pong/internal/core"
	"github.com/vovakirdan/tui-pong/internal/registry"
)

type menuStub struct{ id, title string }

func (g menuStub) ID() string                           { return g.id }
func (g menuStub) Title() string                        { return g.title }
func (g menuStub) Reset(core.RuntimeConfig)             {}
func (g menuStub) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (g menuStub) Render(*core.Screen)                  {}
func (g menuStub) State() core.GameState                { return core.GameState{} }

func init() {
	registry.Register("menu-a", func() registry.Game { return menuStub{"menu-a", "Menu A"} })
	registry.Register("menu-b", func() registry.Game { return menuStub{"menu-b", "Menu B"} })
}

func menuUpdate(t *testing.T, m MenuModel, msg tea.Msg) (MenuModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(MenuModel)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return nm, cmd
}

func TestMenuNavigationAndSelect(t *testing.T) {
	m := NewMenuModel(core.RuntimeConfig{ScreenW: 80, ScreenH: 24}, "menu-a")
	if m.items[m.cursor].ID != "menu-a" {
		t.Fatalf("cursor on %q, want menu-a", m.items[m.cursor].ID)
	}

	m, _ = menuUpdate(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m, cmd := menuUpdate(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected quit after select")
	}
	if sel := m.Selected(); sel == nil || sel.ID != "menu-b" {
		t.Errorf("selected = %+v, want menu-b", sel)
	}
}

func TestMenuCursorBounds(t *testing.T) {
	m := NewMenuModel(core.RuntimeConfig{ScreenW: 80, ScreenH: 24}, "")
	for i := 0; i < 10; i++ {
		m, _ = menuUpdate(t, m, tea.KeyMsg{Type: tea.KeyUp})
	}
	if m.cursor != 0 {
		t.Errorf("cursor = %d, want 0", m.cursor)
	}
	for i := 0; i < 100; i++ {
		m, _ = menuUpdate(t, m, runeKey("j"))
	}
	if m.cursor != len(m.items)-1 {
		t.Errorf("cursor = %d, want %d", m.cursor, len(m.items)-1)
	}
}

func TestMenuQuitAndView(t *testing.T) {
	m := NewMenuModel(core.RuntimeConfig{ScreenW: 80, ScreenH: 24}, "")
	m, _ = menuUpdate(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})
	if m.Config().ScreenW != 100 {
		t.Errorf("resize not tracked: %+v", m.Config())
	}

	view := m.View()
	for _, want := range []string{"Select a variant", "Menu A", "menu-b", "play"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}

	m, cmd := menuUpdate(t, m, runeKey("q"))
	if cmd == nil || !m.IsQuitting() || m.View() != "" {
		t.Error("expected quit with empty view")
	}
	if m.Selected() != nil {
		t.Error("quit should not select")
	}
}

func TestCenterText(t *testing.T) {
	if got := centerText("ab", 6); got != "  ab" {
		t.Errorf("centerText = %q", got)
	}
	if got := centerText("abcdef", 4); got != "abcdef" {
		t.Errorf("overlong text changed: %q", got)
	}
}
