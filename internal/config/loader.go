package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// LoadPong loads Pong configuration.
// Search order: customPath -> ~/.pong/configs/pong.yaml -> ./configs/pong.yaml -> embedded default
//
// Files are decoded on top of DefaultPongConfig, so a partial file only
// overrides the keys it names.
func LoadPong(customPath string) (PongConfig, error) {
	cfg := DefaultPongConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("pong.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return cfg, nil
			}
			cfg = DefaultPongConfig()
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "pong.yaml")); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return cfg, nil
		}
		cfg = DefaultPongConfig()
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultPongYAML, &cfg); err != nil {
		return DefaultPongConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".pong", "configs", filename)
}

// Marshal renders the config as YAML.
func Marshal(cfg PongConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to encode config: %w", err)
	}
	return data, nil
}

// ApplyPongPreset modifies the config based on a difficulty preset.
func ApplyPongPreset(cfg *PongConfig, preset DifficultyPreset) {
	if preset == "" {
		return
	}
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	// Adjust the tracker based on difficulty
	switch preset {
	case DifficultyEasy:
		cfg.AI.Speed = 2
	case DifficultyHard:
		cfg.AI.Speed = 5
	}
}

// Variant names one iteration of the game's physics.
type Variant string

const (
	VariantClassic Variant = "classic" // AABB collision, AI opponent, exits after the match
	VariantMask    Variant = "mask"    // per-pixel collision, exits after the match
	VariantLatest  Variant = "latest"  // per-pixel collision with rebound perturbation, restartable
)

// ApplyVariant modifies the config to reproduce a game variant.
func ApplyVariant(cfg *PongConfig, v Variant) {
	switch v {
	case VariantClassic:
		cfg.Physics.Collision = "rect"
		cfg.Physics.Perturb.Enabled = false
		cfg.Match.TerminalPolicy = "exit"
		cfg.Ball.Speed = 4
		if cfg.AI.Side == "" || cfg.AI.Side == "none" {
			cfg.AI.Side = "right"
		}
	case VariantMask:
		cfg.Physics.Collision = "mask"
		cfg.Physics.Perturb.Enabled = false
		cfg.Match.TerminalPolicy = "exit"
	case VariantLatest:
		cfg.Physics.Collision = "mask"
		cfg.Physics.Perturb.Enabled = true
		cfg.Match.TerminalPolicy = "restart"
	}
}

// LoadEnv loads KEY=VALUE files into the process environment.
// Missing files are ignored; variables already set are kept.
func LoadEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("failed to load env file %s: %w", f, err)
		}
	}
	return nil
}

// EnvString returns the variable's value or def when unset or empty.
func EnvString(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// EnvInt returns the variable parsed as an int, or def when unset or malformed.
func EnvInt(key string, def int) int {
	v, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return def
	}
	return v
}

// EnvInt64 returns the variable parsed as an int64, or def when unset or malformed.
func EnvInt64(key string, def int64) int64 {
	v, err := strconv.ParseInt(os.Getenv(key), 10, 64)
	if err != nil {
		return def
	}
	return v
}
