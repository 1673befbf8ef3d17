package config

import (
	_ "embed"
)

//go:embed defaults/pong.yaml
var defaultPongYAML []byte

// DefaultPongConfig returns the default Pong configuration.
// It matches defaults/pong.yaml and backs it when the embed cannot be parsed.
func DefaultPongConfig() PongConfig {
	return PongConfig{
		Field: FieldConfig{
			Width:  800,
			Height: 600,
		},
		Paddle: PaddleConfig{
			Width:        15,
			Height:       90,
			Inset:        50,
			Speed:        6,
			CornerRadius: 6,
		},
		Ball: BallConfig{
			Size:       15,
			Speed:      6,
			SpawnInset: 50,
		},
		Physics: PhysicsConfig{
			Collision: "mask",
			Perturb: PerturbConfig{
				Enabled:     true,
				MinFactor:   0.6,
				MaxFactor:   1.4,
				MaxVYFactor: 1.5,
				FlipChance:  0.3,
			},
		},
		AI: AIConfig{
			Side:  "none",
			Speed: 3,
		},
		Match: MatchConfig{
			TerminalPolicy:  "restart",
			Serve:           "toward_scorer",
			ScoreFlashTicks: 60,
			EndScreenTicks:  120,
		},
		Difficulty: DifficultyConfig{
			Enabled:      false,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "time",
				MaxAt: 3600,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 1.0,
			},
		},
	}
}
