// Package registry maps variant ids to Pong game factories.
// Each variant registers itself from an init function, so the CLI and the
// menu can list and start variants without importing them directly.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/tui-pong/internal/core"
)

// Game is one playable Pong variant as seen by the terminal host.
// Implementations hold the match engine and know nothing about Bubble Tea.
type Game interface {
	// ID returns the variant id ("pong", "pong-mask", "pong-classic").
	ID() string

	// Title returns the name shown by the list command and the menu.
	Title() string

	// Reset starts a fresh session sized to the terminal and seeded from cfg.
	Reset(cfg core.RuntimeConfig)

	// Step runs one tick with the held actions and returns the state and
	// match events it produced.
	Step(in core.InputFrame) core.StepResult

	// Render draws the field and any overlay into a cleared screen.
	Render(dst *core.Screen)

	// State returns the phase, both scores and the paused/over flags.
	State() core.GameState
}

// GameInfo describes a registered variant.
type GameInfo struct {
	ID    string
	Title string
}

// Factory builds a new instance of a variant.
type Factory func() Game

type entry struct {
	title string
	new   Factory
}

var (
	mu      sync.RWMutex
	entries = map[string]entry{}
)

// Register adds a variant. It panics on a duplicate id.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, dup := entries[id]; dup {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}
	entries[id] = entry{title: f().Title(), new: f}
}

// List returns every registered variant, sorted by id.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	out := make([]GameInfo, 0, len(entries))
	for id, e := range entries {
		out = append(out, GameInfo{ID: id, Title: e.title})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Create builds a fresh game for id.
func Create(id string) (Game, error) {
	mu.RLock()
	e, ok := entries[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}
	return e.new(), nil
}

// Exists reports whether id is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()
	_, ok := entries[id]
	return ok
}
