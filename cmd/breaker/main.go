// breaker is Bubble Breaker, a Lines-style ball puzzle for the terminal.
//
// Usage:
//
//	breaker list              - List game variants
//	breaker play [game]       - Play a game (default: breaker)
//	breaker menu              - Start menu to pick games interactively
//	breaker serve             - Start SSH server for remote play
//	breaker scores [game]     - Show high scores
//	breaker rules             - Print the rules
//
// Global flags:
//
//	--fps <rate>      - Set tick rate (default: 30)
//	--seed <value>    - Set RNG seed for reproducible gameplay
//	--db <path>       - Set database path (default: ~/.breaker/scores.db)
//	--log-file <path> - Write logs to a file (default: discarded)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/bubble-breaker/internal/games/breaker"
)

var (
	// Global flags
	flagFPS     int
	flagSeed    int64
	flagDBPath  string
	flagLogFile string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "breaker",
	Short: "Bubble Breaker - line up coloured balls in your terminal",
	Long: `Bubble Breaker is a puzzle played on a square grid of coloured balls.
Move a ball along a free path to line up five or more of one colour;
every move that clears nothing brings new balls onto the board.

Available commands:
  list     - Show the game variants
  play     - Play a game directly
  menu     - Interactive game picker menu
  serve    - Start SSH server for remote play
  scores   - View high scores
  rules    - Print the rules

Examples:
  breaker play
  breaker play breaker_mini
  breaker menu
  breaker serve --ssh :2222
  breaker scores breaker`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 30, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.breaker/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(rulesCmd)
}
