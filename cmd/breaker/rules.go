package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/bubble-breaker/internal/config"
	"github.com/vovakirdan/bubble-breaker/internal/games/breaker"
	"github.com/vovakirdan/bubble-breaker/internal/games/breaker/board"
)

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "Print the rules",
	Long: `Print how to play, using the rules from the active configuration.

Examples:
  breaker rules
  breaker rules --config ./my-breaker.yaml`,
	Run: runRules,
}

func init() {
	rulesCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
}

func runRules(_ *cobra.Command, _ []string) {
	opts := board.DefaultOptions()
	if cfg, err := config.LoadBreaker(flagConfig); err == nil {
		if o, optErr := cfg.ToOptions(); optErr == nil {
			opts = o
		}
	}

	fmt.Println("How to play Bubble Breaker")
	fmt.Println()
	for _, line := range breaker.RulesText(opts) {
		fmt.Println(line)
	}
	fmt.Println()
	fmt.Println(breaker.New().Controls())
}
