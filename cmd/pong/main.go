// pong is a terminal Pong game with three physics variants.
//
// Usage:
//
//	pong list               - List available variants
//	pong play [variant]     - Play a variant (default: pong)
//	pong menu               - Pick variants from an interactive menu
//	pong sim [variant]      - Run a headless match and print the result
//	pong config [variant]   - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: 60)
//	--seed <value>      - Set RNG seed for reproducible gameplay
//	--config <path>     - Path to custom config YAML
//	--log-file <path>   - Write logs to a file ("-" for stderr)
//	--debug             - Enable debug logging
//
// Flag defaults may also come from PONG_FPS, PONG_SEED, PONG_CONFIG and
// PONG_LOG_FILE, read from the environment or a .env file.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-pong/internal/config"
	"github.com/vovakirdan/tui-pong/internal/games/pong"
)

var (
	// Global flags
	flagFPS     int
	flagSeed    int64
	flagConfig  string
	flagLogFile string
	flagDebug   bool
)

func main() {
	if err := config.LoadEnv(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "pong",
	Short: "Pong in your terminal",
	Long: `Pong is a two-player terminal game with three physics variants.

Available commands:
  list     - Show all available variants
  play     - Play a variant
  menu     - Interactive variant picker
  sim      - Run a headless match
  config   - Print the effective configuration

Examples:
  pong list
  pong play
  pong play pong-classic --difficulty hard
  pong menu
  pong sim --ticks 36000 --seed 7
  pong config pong-mask`,
	PersistentPreRun: applyEnvDefaults,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", `Log file path ("-" for stderr, empty to discard)`)
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(configCmd)
}

// applyEnvDefaults fills flags the user did not set from the environment.
func applyEnvDefaults(cmd *cobra.Command, _ []string) {
	flags := cmd.Flags()
	if !flags.Changed("fps") {
		flagFPS = config.EnvInt("PONG_FPS", flagFPS)
	}
	if !flags.Changed("seed") {
		flagSeed = config.EnvInt64("PONG_SEED", flagSeed)
	}
	if !flags.Changed("config") {
		flagConfig = config.EnvString("PONG_CONFIG", flagConfig)
	}
	if !flags.Changed("log-file") {
		flagLogFile = config.EnvString("PONG_LOG_FILE", flagLogFile)
	}
	pong.SetConfigPath(flagConfig)
}

// variantArg returns the game id from args, defaulting to the latest variant.
func variantArg(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return "pong"
}

// exitf prints an error to stderr and exits with status 1.
func exitf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
