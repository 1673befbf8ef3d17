// Package pong registers the Pong variants with the arcade registry.
// It adapts the match engine in pong/core to the platform's Game
// interface and draws the start, score and end overlays.
package pong

import (
	"github.com/vovakirdan/tui-pong/internal/config"
	platformcore "github.com/vovakirdan/tui-pong/internal/core"
	"github.com/vovakirdan/tui-pong/internal/games/pong/core"
	"github.com/vovakirdan/tui-pong/internal/registry"
)

// variants lists the registered iterations, newest first.
var variants = []struct {
	id      string
	title   string
	variant config.Variant
}{
	{"pong", "Pong", config.VariantLatest},
	{"pong-mask", "Pong (pixel collision)", config.VariantMask},
	{"pong-classic", "Pong Classic", config.VariantClassic},
}

// VariantOf returns the physics variant registered under a game id.
func VariantOf(id string) (config.Variant, bool) {
	for _, v := range variants {
		if v.id == id {
			return v.variant, true
		}
	}
	return "", false
}

func init() {
	for _, v := range variants {
		v := v
		registry.Register(v.id, func() registry.Game {
			return New(v.id, v.title, v.variant)
		})
	}
}

// Game implements registry.Game for one Pong variant.
type Game struct {
	id      string
	title   string
	variant config.Variant

	cfg        config.PongConfig
	cfgErr     error
	session    *core.Session
	difficulty *config.DifficultyManager
	clock      core.Clock // nil means the system clock

	paused    bool
	flash     int       // Remaining ticks of the score overlay
	flashSide core.Side // Side that scored the flashed point
	endTicks  int       // Remaining ticks of the end screen before exit
	gameOver  bool
	lastEnd   *core.MatchEnded
}

// New creates a game for the given variant.
func New(id, title string, v config.Variant) *Game {
	return &Game{
		id:      id,
		title:   title,
		variant: v,
	}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return g.id
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return g.title
}

// Variant returns the physics iteration this game runs.
func (g *Game) Variant() config.Variant {
	return g.variant
}

// Session exposes the running match.
func (g *Game) Session() *core.Session {
	return g.session
}

// SessionID returns the id of the running match session.
func (g *Game) SessionID() string {
	if g.session == nil {
		return ""
	}
	return g.session.ID()
}

// ConfigErr returns the config problem that forced a fallback to defaults, if any.
func (g *Game) ConfigErr() error {
	return g.cfgErr
}

// Reset loads the configuration and starts a fresh session in the
// not-started phase.
func (g *Game) Reset(runtime platformcore.RuntimeConfig) {
	cfg, err := LoadConfig(g.variant)
	if err != nil {
		cfg = config.DefaultPongConfig()
		config.ApplyVariant(&cfg, g.variant)
	}
	g.cfgErr = err
	g.reset(cfg, runtime.Seed)
}

// ResetWithConfig starts a fresh session from an already loaded config.
func (g *Game) ResetWithConfig(cfg config.PongConfig, seed int64) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	g.cfgErr = nil
	g.reset(cfg, seed)
	return nil
}

func (g *Game) reset(cfg config.PongConfig, seed int64) {
	opts, err := OptionsFromConfig(cfg, seed)
	if err != nil {
		// Unreachable for validated configs.
		opts = core.DefaultOptions()
		opts.Seed = seed
	}
	if g.clock != nil {
		opts.Clock = g.clock
	}

	g.cfg = cfg
	g.session = core.NewSession(opts)
	g.difficulty = config.NewDifficultyManager(cfg.Difficulty)
	g.paused = false
	g.flash = 0
	g.flashSide = core.SideNone
	g.endTicks = 0
	g.gameOver = false
	g.lastEnd = nil
}

// Step advances the game by one tick.
func (g *Game) Step(in platformcore.InputFrame) platformcore.StepResult {
	if g.gameOver || g.session == nil {
		return platformcore.StepResult{State: g.State()}
	}

	if in.Has(platformcore.ActionPause) && g.session.Phase() == core.PhasePlaying {
		g.paused = !g.paused
		g.session.SetPaused(g.paused)
	}
	if g.paused {
		return platformcore.StepResult{State: g.State()}
	}

	// Overlays hold the simulation for their duration.
	if g.endTicks > 0 {
		g.endTicks--
		if g.endTicks == 0 {
			g.gameOver = true
		}
		return platformcore.StepResult{State: g.State()}
	}
	c := controls(in)
	if g.flash > 0 {
		if !c.Toggle {
			g.flash--
			return platformcore.StepResult{State: g.State()}
		}
		// A toggle ends the match, so the overlay yields to it.
		g.flash = 0
		c = core.Controls{Toggle: true}
	}

	g.scaleAI()
	events := g.session.Tick(c)

	result := platformcore.StepResult{Events: make([]platformcore.Event, 0, len(events))}
	for _, ev := range events {
		g.observe(ev)
		result.Events = append(result.Events, ev)
	}
	result.State = g.State()
	return result
}

// scaleAI applies difficulty progression to the tracker speed.
func (g *Game) scaleAI() {
	opts := g.session.Options()
	if opts.AI == core.SideNone {
		return
	}
	score := g.session.Score().Of(opts.AI.Opposite())
	speed := g.difficulty.Speed(g.cfg.AI.Speed, score, int(g.session.PlayTicks()))
	g.session.SetAISpeed(speed)
}

func (g *Game) observe(ev core.Event) {
	switch e := ev.(type) {
	case core.MatchStarted:
		g.flash = 0
		g.lastEnd = nil
	case core.PointScored:
		g.flash = g.cfg.Match.ScoreFlashTicks
		g.flashSide = e.Side
	case core.MatchEnded:
		g.flash = 0
		g.lastEnd = &e
		if g.session.Done() {
			g.endTicks = g.cfg.Match.EndScreenTicks
			g.gameOver = g.endTicks == 0
		}
	}
}

// controls maps platform actions onto the engine's per-tick sample.
func controls(in platformcore.InputFrame) core.Controls {
	return core.Controls{
		LeftUp:    in.Has(platformcore.ActionLeftUp),
		LeftDown:  in.Has(platformcore.ActionLeftDown),
		RightUp:   in.Has(platformcore.ActionRightUp),
		RightDown: in.Has(platformcore.ActionRightDown),
		Toggle:    in.Has(platformcore.ActionToggle),
	}
}

// State returns the current game state.
func (g *Game) State() platformcore.GameState {
	if g.session == nil {
		return platformcore.GameState{Phase: core.PhaseNotStarted.String()}
	}
	score := g.session.Score()
	return platformcore.GameState{
		Phase:      g.session.Phase().String(),
		ScoreLeft:  score.Left,
		ScoreRight: score.Right,
		GameOver:   g.gameOver,
		Paused:     g.paused,
	}
}

// Snapshot returns the engine snapshot of the running session.
func (g *Game) Snapshot() core.Snapshot {
	return g.session.Snapshot()
}
