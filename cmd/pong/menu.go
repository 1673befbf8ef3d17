package main

import (
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-pong/internal/core"
	"github.com/vovakirdan/tui-pong/internal/platform/tui"
	"github.com/vovakirdan/tui-pong/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a variant from an interactive menu",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a variant.
After a match ends, you return to the menu to play again.

Examples:
  pong menu
  pong menu --fps 30 --log-file pong.log`,
	Run: runMenu,
}

func init() {
	menuCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	menuCmd.Flags().StringVar(&flagAI, "ai", "", "Paddle driven by the AI: left, right, none")
}

func runMenu(_ *cobra.Command, _ []string) {
	logger, cleanup, err := newLogger(flagLogFile)
	if err != nil {
		exitf("%v", err)
	}
	defer cleanup()

	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	current := "pong"
	for {
		menuResult, err := tui.RunMenu(cfg, current)
		if err != nil {
			logger.Error("menu failed", "error", err)
			break
		}
		cfg = menuResult.Config
		if menuResult.Quit {
			break
		}
		current = menuResult.GameID

		prepareVariant(current)
		game, err := registry.Create(current)
		if err != nil {
			logger.Error("creating game", "game", current, "error", err)
			continue
		}

		// Fresh seed per match unless one was pinned
		if flagSeed == 0 {
			cfg.Seed = time.Now().UnixNano()
		}

		if err := tui.Run(game, cfg, logger); err != nil {
			logger.Error("game failed", "game", current, "error", err)
		}
	}
}
