package pong

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-pong/internal/config"
	"github.com/vovakirdan/tui-pong/internal/games/pong/core"
)

// SimOptions configures a headless match.
type SimOptions struct {
	Ticks int   // Ticks to run; the match is stopped on the last one
	FPS   int   // Simulated tick rate, used for elapsed time
	Seed  int64 // RNG seed
}

// SimResult summarizes a headless match.
type SimResult struct {
	SessionID string
	Ticks     uint64
	Score     core.Score
	Points    int
	Elapsed   time.Duration
	Hash      uint64 // Snapshot digest of the final state
	Canceled  bool
}

// tickClock advances by a fixed step per tick so elapsed time is simulated time.
type tickClock struct {
	now  time.Time
	step time.Duration
}

func (c *tickClock) Now() time.Time { return c.now }

func (c *tickClock) advance() { c.now = c.now.Add(c.step) }

// Simulate runs a match without a terminal. Paddles not driven by the
// configured AI follow the ball. The context is checked once per tick.
func Simulate(ctx context.Context, cfg config.PongConfig, opts SimOptions, logger *log.Logger) (SimResult, error) {
	o, err := OptionsFromConfig(cfg, opts.Seed)
	if err != nil {
		return SimResult{}, err
	}
	fps := opts.FPS
	if fps <= 0 {
		fps = 60
	}
	clock := &tickClock{now: time.Unix(0, 0).UTC(), step: time.Second / time.Duration(fps)}
	o.Clock = clock

	s := core.NewSession(o)
	logger = logger.With("session", s.ID())
	logger.Debug("simulation started", "ticks", opts.Ticks, "seed", opts.Seed, "collision", o.Collision, "serve", o.Serve)

	res := SimResult{SessionID: s.ID()}
	for i := 0; i < opts.Ticks && !s.Done(); i++ {
		if ctx.Err() != nil {
			res.Canceled = true
			logger.Warn("simulation canceled", "tick", i)
			break
		}
		clock.advance()

		c := autopilot(s.View(), o.AI)
		c.Toggle = i == 0 || i == opts.Ticks-1
		for _, ev := range s.Tick(c) {
			if _, ok := ev.(core.PointScored); ok {
				res.Points++
				logger.Debug(ev.Kind(), ev.Attrs()...)
				continue
			}
			logger.Info(ev.Kind(), ev.Attrs()...)
		}
	}

	v := s.View()
	res.Ticks = v.Tick
	res.Score = v.Score
	res.Elapsed = v.Elapsed
	res.Hash = s.Snapshot().Hash()
	return res, nil
}

// autopilot steers every paddle the tracker does not drive toward the ball.
func autopilot(v core.View, ai core.Side) core.Controls {
	var c core.Controls
	if ai != core.SideLeft {
		c.LeftUp, c.LeftDown = follow(v.Ball, v.Left)
	}
	if ai != core.SideRight {
		c.RightUp, c.RightDown = follow(v.Ball, v.Right)
	}
	return c
}

func follow(b core.Ball, p core.Paddle) (up, down bool) {
	diff := b.CenterY() - p.CenterY()
	deadzone := p.Speed / 2
	return diff < -deadzone, diff > deadzone
}
