package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-pong/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config [variant]",
	Short: "Print the effective configuration",
	Long: `Print the configuration a variant would run with, after the config
file, the variant preset and any --difficulty or --ai override are applied.

The output is valid YAML and can be saved as ~/.pong/configs/pong.yaml.

Examples:
  pong config
  pong config pong-classic --difficulty hard > ~/.pong/configs/pong.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runConfig,
}

func init() {
	configCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	configCmd.Flags().StringVar(&flagAI, "ai", "", "Paddle driven by the AI: left, right, none")
}

func runConfig(cmd *cobra.Command, args []string) {
	cfg := prepareVariant(variantArg(args))

	data, err := config.Marshal(cfg)
	if err != nil {
		exitf("%v", err)
	}
	fmt.Print(string(data))
}
