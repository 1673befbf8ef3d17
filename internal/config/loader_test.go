package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	var got PongConfig
	if err := yaml.Unmarshal(defaultPongYAML, &got); err != nil {
		t.Fatalf("embedded yaml: %v", err)
	}
	if want := DefaultPongConfig(); !reflect.DeepEqual(got, want) {
		t.Errorf("embedded defaults differ from DefaultPongConfig:\n got %+v\nwant %+v", got, want)
	}
}

func TestLoadPongCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pong.yaml")
	data := "ball:\n  speed: 9\nmatch:\n  serve: toward_conceder\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadPong(path)
	if err != nil {
		t.Fatalf("LoadPong: %v", err)
	}
	if cfg.Ball.Speed != 9 {
		t.Errorf("ball speed = %v, want 9", cfg.Ball.Speed)
	}
	if cfg.Match.Serve != "toward_conceder" {
		t.Errorf("serve = %q", cfg.Match.Serve)
	}
	// Keys absent from the file keep their defaults.
	if cfg.Field.Width != 800 || cfg.Paddle.Height != 90 {
		t.Errorf("defaults not preserved: field %v paddle %v", cfg.Field.Width, cfg.Paddle.Height)
	}
}

func TestLoadPongCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadPong(filepath.Join(dir, "missing.yaml")); err == nil ||
		!strings.Contains(err.Error(), "failed to read config") {
		t.Errorf("missing file: got %v", err)
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("field: [1, 2"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadPong(bad); err == nil || !strings.Contains(err.Error(), "failed to parse config") {
		t.Errorf("bad yaml: got %v", err)
	}
}

func TestLoadPongSearchOrder(t *testing.T) {
	home := t.TempDir()
	work := t.TempDir()
	t.Setenv("HOME", home)
	oldWD, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(work); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chdir(oldWD) })

	cfg, err := LoadPong("")
	if err != nil {
		t.Fatalf("LoadPong: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultPongConfig()) {
		t.Errorf("expected embedded defaults, got %+v", cfg)
	}

	writeConfig(t, filepath.Join(work, "configs"), "ball:\n  speed: 7\n")
	if cfg, _ = LoadPong(""); cfg.Ball.Speed != 7 {
		t.Errorf("local config: ball speed = %v, want 7", cfg.Ball.Speed)
	}

	writeConfig(t, filepath.Join(home, ".pong", "configs"), "ball:\n  speed: 8\n")
	if cfg, _ = LoadPong(""); cfg.Ball.Speed != 8 {
		t.Errorf("user config should win over local: ball speed = %v, want 8", cfg.Ball.Speed)
	}
}

func writeConfig(t *testing.T, dir, body string) {
	t.Helper()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "pong.yaml"), []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	data, err := Marshal(DefaultPongConfig())
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "terminal_policy: restart") {
		t.Errorf("marshalled config missing terminal_policy:\n%s", data)
	}
}

func TestApplyVariant(t *testing.T) {
	tests := []struct {
		variant   Variant
		collision string
		perturb   bool
		policy    string
		ai        string
	}{
		{VariantClassic, "rect", false, "exit", "right"},
		{VariantMask, "mask", false, "exit", "none"},
		{VariantLatest, "mask", true, "restart", "none"},
	}

	for _, tt := range tests {
		t.Run(string(tt.variant), func(t *testing.T) {
			cfg := DefaultPongConfig()
			ApplyVariant(&cfg, tt.variant)
			if cfg.Physics.Collision != tt.collision {
				t.Errorf("collision = %q, want %q", cfg.Physics.Collision, tt.collision)
			}
			if cfg.Physics.Perturb.Enabled != tt.perturb {
				t.Errorf("perturb = %v, want %v", cfg.Physics.Perturb.Enabled, tt.perturb)
			}
			if cfg.Match.TerminalPolicy != tt.policy {
				t.Errorf("policy = %q, want %q", cfg.Match.TerminalPolicy, tt.policy)
			}
			if cfg.AI.Side != tt.ai {
				t.Errorf("ai side = %q, want %q", cfg.AI.Side, tt.ai)
			}
			if err := cfg.Validate(); err != nil {
				t.Errorf("variant config invalid: %v", err)
			}
		})
	}
}

func TestApplyPongPreset(t *testing.T) {
	cfg := DefaultPongConfig()
	ApplyPongPreset(&cfg, DifficultyHard)
	if !cfg.Difficulty.Enabled || cfg.Difficulty.InitialLevel != 0.7 || cfg.AI.Speed != 5 {
		t.Errorf("hard preset: %+v ai %v", cfg.Difficulty, cfg.AI.Speed)
	}

	ApplyPongPreset(&cfg, DifficultyFixed)
	if cfg.Difficulty.Enabled {
		t.Error("fixed preset should disable progression")
	}

	before := cfg
	ApplyPongPreset(&cfg, "")
	if !reflect.DeepEqual(before, cfg) {
		t.Error("empty preset should leave the config untouched")
	}
}

func TestLoadEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.env")
	if err := os.WriteFile(path, []byte("PONG_TEST_SEED=42\nPONG_TEST_NAME=arcade\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("PONG_TEST_SEED", "")
	t.Setenv("PONG_TEST_NAME", "preset")
	os.Unsetenv("PONG_TEST_SEED")

	if err := LoadEnv(path, filepath.Join(t.TempDir(), "missing.env")); err != nil {
		t.Fatalf("LoadEnv: %v", err)
	}
	if got := EnvInt64("PONG_TEST_SEED", 0); got != 42 {
		t.Errorf("seed = %d, want 42", got)
	}
	if got := EnvString("PONG_TEST_NAME", ""); got != "preset" {
		t.Errorf("existing variable overwritten: %q", got)
	}
}

func TestEnvFallbacks(t *testing.T) {
	t.Setenv("PONG_TEST_FPS", "fast")
	if got := EnvInt("PONG_TEST_FPS", 60); got != 60 {
		t.Errorf("malformed int should fall back, got %d", got)
	}
	t.Setenv("PONG_TEST_FPS", "30")
	if got := EnvInt("PONG_TEST_FPS", 60); got != 30 {
		t.Errorf("EnvInt = %d, want 30", got)
	}
	if got := EnvString("PONG_TEST_UNSET", "def"); got != "def" {
		t.Errorf("EnvString = %q, want def", got)
	}
}
