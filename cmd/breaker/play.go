package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/bubble-breaker/internal/config"
	"github.com/vovakirdan/bubble-breaker/internal/games/breaker"
	"github.com/vovakirdan/bubble-breaker/internal/platform/tui"
	"github.com/vovakirdan/bubble-breaker/internal/registry"
	"github.com/vovakirdan/bubble-breaker/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagLayout     string
)

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play a game",
	Long: `Start playing the specified variant (default: breaker).

Controls:
  Arrows/WASD/HJKL  - Move the cursor
  Enter/Space/Click - Select a ball, then pick an empty cell
  Esc               - Cancel the selection
  ?                 - Show the rules
  P                 - Pause
  R                 - Restart (after game over)
  Q/Ctrl+C          - Quit

Difficulty options:
  easy   - Five colours
  normal - Values from the config file
  hard   - Seven colours, four new balls per turn

Examples:
  breaker play
  breaker play breaker_mini
  breaker play --difficulty hard
  breaker play --config ./my-breaker.yaml
  breaker play --layout ./puzzle.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	playCmd.Flags().StringVar(&flagLayout, "layout", "", "Path to a YAML puzzle layout to start from")
}

// applyGameFlags passes --config, --difficulty and --layout to the game
// package before games are created.
func applyGameFlags() error {
	if _, err := config.ParseDifficulty(flagDifficulty); err != nil {
		return err
	}
	breaker.SetConfigPath(flagConfig)
	breaker.SetDifficultyPreset(flagDifficulty)
	breaker.SetLayoutPath(flagLayout)
	return nil
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := "breaker"
	if len(args) > 0 {
		gameID = args[0]
	}

	// Check if game exists
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'breaker list' to see available games.")
		os.Exit(1)
	}

	if err := applyGameFlags(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger, closeLog, err := newLogger(flagLogFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	// Create game instance
	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	// Run the game
	outcome, runErr := tui.Run(game, store, runtimeConfig(), localPlayer(), logger)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}

	final := outcome.State
	fmt.Printf("Final score: %d  (turns: %d, balls cleared: %d)\n", final.Score, final.Turns, final.Cleared)
}
