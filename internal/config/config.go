// Package config provides YAML-based game configuration loading,
// variant presets, and difficulty management for Pong.
package config

import (
	"errors"
	"fmt"
)

// PongConfig contains all configuration for a Pong match.
type PongConfig struct {
	Field      FieldConfig      `yaml:"field"`
	Paddle     PaddleConfig     `yaml:"paddle"`
	Ball       BallConfig       `yaml:"ball"`
	Physics    PhysicsConfig    `yaml:"physics"`
	AI         AIConfig         `yaml:"ai"`
	Match      MatchConfig      `yaml:"match"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// FieldConfig defines the play area in world units.
type FieldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PaddleConfig defines paddle geometry and speed.
type PaddleConfig struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	Inset        float64 `yaml:"inset"` // Distance from the field edge
	Speed        float64 `yaml:"speed"` // Units per tick while a key is held
	CornerRadius int     `yaml:"corner_radius"`
}

// BallConfig defines ball size and base speed.
type BallConfig struct {
	Size       float64 `yaml:"size"`
	Speed      float64 `yaml:"speed"`
	SpawnInset float64 `yaml:"spawn_inset"`
}

// PhysicsConfig selects the collision model.
type PhysicsConfig struct {
	Collision string        `yaml:"collision"` // "rect" or "mask"
	Perturb   PerturbConfig `yaml:"perturb"`
}

// PerturbConfig tunes the post-hit vertical velocity randomization.
type PerturbConfig struct {
	Enabled     bool    `yaml:"enabled"`
	MinFactor   float64 `yaml:"min_factor"`
	MaxFactor   float64 `yaml:"max_factor"`
	MaxVYFactor float64 `yaml:"max_vy_factor"`
	FlipChance  float64 `yaml:"flip_chance"`
}

// AIConfig configures the tracking opponent.
type AIConfig struct {
	Side  string  `yaml:"side"` // "left", "right" or "none"
	Speed float64 `yaml:"speed"`
}

// MatchConfig defines match flow and overlay timing.
type MatchConfig struct {
	TerminalPolicy  string `yaml:"terminal_policy"` // "restart" or "exit"
	Serve           string `yaml:"serve"`           // "toward_scorer" or "toward_conceder"
	ScoreFlashTicks int    `yaml:"score_flash_ticks"`
	EndScreenTicks  int    `yaml:"end_screen_ticks"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Added to AI speed at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// ParseDifficultyPreset converts a CLI value to a preset. Empty means none.
func ParseDifficultyPreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", s)
	}
}

// Validate reports every out-of-range or unknown setting.
func (c PongConfig) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	check(c.Field.Width > 0 && c.Field.Height > 0, "field: size must be positive, got %vx%v", c.Field.Width, c.Field.Height)
	check(c.Paddle.Width > 0 && c.Paddle.Height > 0, "paddle: size must be positive, got %vx%v", c.Paddle.Width, c.Paddle.Height)
	check(c.Paddle.Height < c.Field.Height, "paddle: height %v must be below field height %v", c.Paddle.Height, c.Field.Height)
	check(c.Paddle.Speed >= 0, "paddle: speed must not be negative")
	check(c.Paddle.CornerRadius >= 0, "paddle: corner_radius must not be negative")
	check(c.Paddle.Inset >= 0 && 2*(c.Paddle.Inset+c.Paddle.Width) < c.Field.Width, "paddle: inset %v leaves no room between paddles", c.Paddle.Inset)
	check(c.Ball.Size > 0 && c.Ball.Size < c.Field.Height, "ball: size %v out of range", c.Ball.Size)
	check(c.Ball.Speed > 0, "ball: speed must be positive")
	check(c.Ball.SpawnInset > 0 && c.Ball.SpawnInset+c.Ball.Size < c.Field.Width, "ball: spawn_inset %v out of range", c.Ball.SpawnInset)

	switch c.Physics.Collision {
	case "rect", "mask":
	default:
		errs = append(errs, fmt.Errorf("physics: unknown collision %q", c.Physics.Collision))
	}
	if p := c.Physics.Perturb; p.Enabled {
		check(p.MinFactor > 0 && p.MinFactor <= p.MaxFactor, "physics.perturb: need 0 < min_factor <= max_factor")
		check(p.MaxVYFactor > 0, "physics.perturb: max_vy_factor must be positive")
		check(p.FlipChance >= 0 && p.FlipChance <= 1, "physics.perturb: flip_chance must be within [0, 1]")
	}

	switch c.AI.Side {
	case "left", "right", "none", "":
	default:
		errs = append(errs, fmt.Errorf("ai: unknown side %q", c.AI.Side))
	}
	switch c.Match.TerminalPolicy {
	case "restart", "exit":
	default:
		errs = append(errs, fmt.Errorf("match: unknown terminal_policy %q", c.Match.TerminalPolicy))
	}
	switch c.Match.Serve {
	case "toward_scorer", "toward_conceder":
	default:
		errs = append(errs, fmt.Errorf("match: unknown serve %q", c.Match.Serve))
	}
	check(c.Match.ScoreFlashTicks >= 0 && c.Match.EndScreenTicks >= 0, "match: overlay ticks must not be negative")

	return errors.Join(errs...)
}
