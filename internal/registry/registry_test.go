package registry

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-pong/internal/core"
)

type stubGame struct{ id string }

func (g stubGame) ID() string                           { return g.id }
func (g stubGame) Title() string                        { return strings.ToUpper(g.id) }
func (g stubGame) Reset(core.RuntimeConfig)             {}
func (g stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (g stubGame) Render(*core.Screen)                  {}
func (g stubGame) State() core.GameState                { return core.GameState{} }

func TestRegisterAndCreate(t *testing.T) {
	Register("zz-stub", func() Game { return stubGame{id: "zz-stub"} })
	Register("aa-stub", func() Game { return stubGame{id: "aa-stub"} })

	if !Exists("zz-stub") || !Exists("aa-stub") {
		t.Fatal("registered games not found")
	}

	g, err := Create("zz-stub")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if g.ID() != "zz-stub" {
		t.Errorf("ID = %q", g.ID())
	}

	list := List()
	var ids []string
	for _, info := range list {
		ids = append(ids, info.ID)
		if info.ID == "aa-stub" && info.Title != "AA-STUB" {
			t.Errorf("title = %q, want AA-STUB", info.Title)
		}
	}
	for i := 1; i < len(ids); i++ {
		if ids[i-1] > ids[i] {
			t.Errorf("List not sorted: %v", ids)
		}
	}
}

func TestCreateUnknown(t *testing.T) {
	if _, err := Create("no-such-game"); err == nil {
		t.Error("expected error for unknown game")
	}
	if Exists("no-such-game") {
		t.Error("Exists reported an unknown game")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("dup-stub", func() Game { return stubGame{id: "dup-stub"} })
	defer func() {
		if recover() == nil {
			t.Error("expected panic on duplicate registration")
		}
	}()
	Register("dup-stub", func() Game { return stubGame{id: "dup-stub"} })
}
