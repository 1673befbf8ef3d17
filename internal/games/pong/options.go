package pong

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-pong/internal/config"
	"github.com/vovakirdan/tui-pong/internal/games/pong/core"
)

// Package-level settings applied when a game is reset.
var (
	configPath       string
	difficultyPreset config.DifficultyPreset
	aiSide           string
)

// SetConfigPath sets a custom config file path.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset to apply after loading.
func SetDifficultyPreset(preset config.DifficultyPreset) {
	difficultyPreset = preset
}

// SetAISide overrides which paddle the tracker drives ("left", "right" or "none").
// Empty keeps the variant's choice.
func SetAISide(side string) {
	aiSide = side
}

// LoadConfig loads the YAML config and applies the variant, the difficulty
// preset and the AI override on top of it. The result is validated.
func LoadConfig(v config.Variant) (config.PongConfig, error) {
	cfg, err := config.LoadPong(configPath)
	if err != nil {
		return cfg, err
	}
	config.ApplyVariant(&cfg, v)
	config.ApplyPongPreset(&cfg, difficultyPreset)
	if aiSide != "" {
		cfg.AI.Side = aiSide
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// OptionsFromConfig converts a config into engine options.
func OptionsFromConfig(cfg config.PongConfig, seed int64) (core.Options, error) {
	collision, errCollision := core.ParseCollisionMode(cfg.Physics.Collision)
	serve, errServe := core.ParseServePolicy(cfg.Match.Serve)
	policy, errPolicy := core.ParseTerminalPolicy(cfg.Match.TerminalPolicy)
	ai, errAI := parseSide(cfg.AI.Side)
	if err := errors.Join(errCollision, errServe, errPolicy, errAI); err != nil {
		return core.Options{}, err
	}

	p := cfg.Physics.Perturb
	return core.Options{
		Field:        core.Field{W: cfg.Field.Width, H: cfg.Field.Height},
		PaddleWidth:  cfg.Paddle.Width,
		PaddleHeight: cfg.Paddle.Height,
		PaddleInset:  cfg.Paddle.Inset,
		PaddleSpeed:  cfg.Paddle.Speed,
		CornerRadius: cfg.Paddle.CornerRadius,
		BallSize:     cfg.Ball.Size,
		BallSpeed:    cfg.Ball.Speed,
		SpawnInset:   cfg.Ball.SpawnInset,
		Collision:    collision,
		Perturb: core.Perturbation{
			Enabled:     p.Enabled,
			MinFactor:   p.MinFactor,
			MaxFactor:   p.MaxFactor,
			MaxVYFactor: p.MaxVYFactor,
			FlipChance:  p.FlipChance,
		},
		Serve:   serve,
		Policy:  policy,
		AI:      ai,
		AISpeed: cfg.AI.Speed,
		Seed:    seed,
	}, nil
}

func parseSide(s string) (core.Side, error) {
	switch s {
	case "", "none":
		return core.SideNone, nil
	case "left":
		return core.SideLeft, nil
	case "right":
		return core.SideRight, nil
	default:
		return core.SideNone, fmt.Errorf("unknown side %q", s)
	}
}
