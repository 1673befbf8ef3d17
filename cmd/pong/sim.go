package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-pong/internal/games/pong"
)

var flagTicks int

var simCmd = &cobra.Command{
	Use:   "sim [variant]",
	Short: "Run a headless match",
	Long: `Run a match without a terminal UI and print the result.

Both paddles follow the ball unless the AI drives one of them. The match
starts on the first tick and stops on the last. Events are logged to stderr
unless --log-file is given.

Examples:
  pong sim
  pong sim pong-classic --ticks 7200
  pong sim --seed 42 --debug`,
	Args: cobra.MaximumNArgs(1),
	Run:  runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagTicks, "ticks", 3600, "Number of ticks to simulate")
	simCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	simCmd.Flags().StringVar(&flagAI, "ai", "", "Paddle driven by the AI: left, right, none")
}

func runSim(cmd *cobra.Command, args []string) {
	gameID := variantArg(args)
	cfg := prepareVariant(gameID)

	if flagTicks <= 0 {
		exitf("--ticks must be positive")
	}

	logPath := flagLogFile
	if logPath == "" {
		logPath = "-"
	}
	logger, cleanup, err := newLogger(logPath)
	if err != nil {
		exitf("%v", err)
	}
	defer cleanup()

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	res, err := pong.Simulate(ctx, cfg, pong.SimOptions{
		Ticks: flagTicks,
		FPS:   flagFPS,
		Seed:  seed,
	}, logger.With("game", gameID))
	if err != nil {
		cleanup()
		exitf("%v", err)
	}

	fmt.Printf("Variant:      %s\n", gameID)
	fmt.Printf("Session:      %s\n", res.SessionID)
	fmt.Printf("Seed:         %d\n", seed)
	fmt.Printf("Ticks:        %d\n", res.Ticks)
	fmt.Printf("Score:        %d - %d\n", res.Score.Left, res.Score.Right)
	fmt.Printf("Time Played:  %.1f seconds\n", res.Elapsed.Seconds())
	fmt.Printf("Hash:         %016x\n", res.Hash)
	if res.Canceled {
		fmt.Println("(interrupted)")
	}
}
