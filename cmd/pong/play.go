package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-pong/internal/config"
	"github.com/vovakirdan/tui-pong/internal/core"
	"github.com/vovakirdan/tui-pong/internal/games/pong"
	"github.com/vovakirdan/tui-pong/internal/platform/tui"
	"github.com/vovakirdan/tui-pong/internal/registry"
)

var (
	flagDifficulty string
	flagAI         string
)

var playCmd = &cobra.Command{
	Use:   "play [variant]",
	Short: "Play a variant",
	Long: `Start playing the specified variant (default: pong).

Controls:
  W/S        - Move left paddle
  Up/Down    - Move right paddle
  F          - Start/stop playing (restart after the end screen)
  P/Esc      - Pause
  Ctrl+S     - Save a text screenshot
  Q/Ctrl+C   - Quit

Variants:
  pong          - Pixel collision with randomized rebounds, restartable
  pong-mask     - Pixel collision, exits after the match
  pong-classic  - Rectangle collision against the AI, exits after the match

Difficulty options (AI opponent only):
  easy   - Start at lowest difficulty, progresses to max
  normal - Start at 30% difficulty, progresses to max
  hard   - Start at 70% difficulty, progresses to max
  fixed  - No progression, stays at config's initial level

Examples:
  pong play
  pong play pong-classic --difficulty hard
  pong play pong --ai right
  pong play pong-mask --config ./my-pong.yaml --log-file pong.log`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().StringVar(&flagAI, "ai", "", "Paddle driven by the AI: left, right, none")
}

// prepareVariant applies the game flags and returns the loaded config.
func prepareVariant(gameID string) config.PongConfig {
	variant, ok := pong.VariantOf(gameID)
	if !ok || !registry.Exists(gameID) {
		exitf("unknown variant %q\nRun 'pong list' to see available variants.", gameID)
	}

	preset, err := config.ParseDifficultyPreset(flagDifficulty)
	if err != nil {
		exitf("%v", err)
	}
	pong.SetDifficultyPreset(preset)
	pong.SetAISide(flagAI)

	cfg, err := pong.LoadConfig(variant)
	if err != nil {
		exitf("%v", err)
	}
	return cfg
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := variantArg(args)
	prepareVariant(gameID)

	logger, cleanup, err := newLogger(flagLogFile)
	if err != nil {
		exitf("%v", err)
	}
	defer cleanup()

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	game, err := registry.Create(gameID)
	if err != nil {
		exitf("creating game: %v", err)
	}

	if err := tui.Run(game, cfg, logger); err != nil {
		cleanup()
		exitf("%v", err)
	}
}
