package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-pong/internal/core"
)

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestKeyMapAction(t *testing.T) {
	km := DefaultKeyMap()

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want core.Action
	}{
		{"w", runeKey("w"), core.ActionLeftUp},
		{"s", runeKey("s"), core.ActionLeftDown},
		{"up", tea.KeyMsg{Type: tea.KeyUp}, core.ActionRightUp},
		{"down", tea.KeyMsg{Type: tea.KeyDown}, core.ActionRightDown},
		{"f", runeKey("f"), core.ActionToggle},
		{"F", runeKey("F"), core.ActionToggle},
		{"p", runeKey("p"), core.ActionPause},
		{"q", runeKey("q"), core.ActionQuit},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit},
		{"unbound", runeKey("x"), core.ActionNone},
		{"screenshot", tea.KeyMsg{Type: tea.KeyCtrlS}, core.ActionNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := km.Action(tt.msg); got != tt.want {
				t.Errorf("Action(%s) = %v, want %v", tt.msg, got, tt.want)
			}
		})
	}
}

func TestKeyMapHelp(t *testing.T) {
	km := DefaultKeyMap()
	if len(km.ShortHelp()) == 0 {
		t.Error("short help is empty")
	}
	for _, b := range km.ShortHelp() {
		if len(b.Keys()) == 0 {
			t.Errorf("binding %q has no keys", b.Help().Desc)
		}
	}
}

func TestHoldLatch(t *testing.T) {
	h := newHoldLatch(60) // 150ms at 60 fps is 9 ticks
	if h.ttl != 9 {
		t.Fatalf("ttl = %d, want 9", h.ttl)
	}

	h.Press(core.ActionLeftUp)
	for i := 0; i < 9; i++ {
		frame := core.NewInputFrame()
		h.Apply(&frame)
		if !frame.Has(core.ActionLeftUp) {
			t.Fatalf("tick %d: key released early", i)
		}
	}
	frame := core.NewInputFrame()
	h.Apply(&frame)
	if frame.Has(core.ActionLeftUp) {
		t.Error("key still held after the window")
	}
}

func TestHoldLatchOppositeReleases(t *testing.T) {
	h := newHoldLatch(60)
	h.Press(core.ActionRightUp)
	h.Press(core.ActionRightDown)
	h.Press(core.ActionLeftDown)

	frame := core.NewInputFrame()
	h.Apply(&frame)
	if frame.Has(core.ActionRightUp) {
		t.Error("opposite direction not released")
	}
	if !frame.Has(core.ActionRightDown) || !frame.Has(core.ActionLeftDown) {
		t.Errorf("expected both paddles held, got %v", frame.Actions)
	}

	h.Release()
	frame = core.NewInputFrame()
	h.Apply(&frame)
	if len(frame.Actions) != 0 {
		t.Errorf("Release left %v held", frame.Actions)
	}
}

func TestHoldLatchMinimumTTL(t *testing.T) {
	if h := newHoldLatch(1); h.ttl != 1 {
		t.Errorf("ttl = %d, want 1", h.ttl)
	}
}
