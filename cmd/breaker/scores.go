package main

import (
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/bubble-breaker/internal/registry"
	"github.com/vovakirdan/bubble-breaker/internal/storage"
)

var (
	flagScoresAll   bool
	flagScoresClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [game]",
	Short: "Show high scores",
	Long: `Display the top 10 high scores and totals for a variant,
or a summary plus every variant when none is given.

Examples:
  breaker scores
  breaker scores breaker_mini
  breaker scores --all breaker
  breaker scores --clear breaker_mini`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagScoresAll, "all", false, "List every recorded score instead of the top 10")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete the recorded scores (of every variant when none is given)")
}

func runScores(cmd *cobra.Command, args []string) {
	games := registry.List()
	if len(args) > 0 {
		gameID := args[0]

		// Check if game exists
		if !registry.Exists(gameID) {
			fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
			fmt.Fprintln(os.Stderr, "Run 'breaker list' to see available games.")
			os.Exit(1)
		}

		games = nil
		for _, g := range registry.List() {
			if g.ID == gameID {
				games = append(games, g)
			}
		}
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagScoresClear {
		err = clearScores(os.Stdout, store, games)
	} else {
		err = writeReport(os.Stdout, store, games, len(args) == 0, flagScoresAll)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		store.Close()
		os.Exit(1)
	}
}

// writeReport prints the score tables of games, preceded by the summary
// of every played variant when summary is set.
func writeReport(w io.Writer, store *storage.Store, games []registry.GameInfo, summary, all bool) error {
	if summary {
		if err := writeSummary(w, store); err != nil {
			return err
		}
	}
	for i, g := range games {
		if i > 0 || summary {
			fmt.Fprintln(w)
		}
		if err := writeScores(w, store, g, all); err != nil {
			return err
		}
	}
	return nil
}

// clearScores deletes the recorded scores of games.
func clearScores(w io.Writer, store *storage.Store, games []registry.GameInfo) error {
	for _, g := range games {
		if err := store.ClearScores(g.ID); err != nil {
			return err
		}
		fmt.Fprintf(w, "Cleared scores for %s\n", g.Title)
	}
	return nil
}

// writeSummary prints one totals line per variant that has been played.
func writeSummary(w io.Writer, store *storage.Store) error {
	all, err := store.GetAllGamesStats()
	if err != nil {
		return err
	}

	fmt.Fprintln(w, "Summary")
	fmt.Fprintln(w)
	if len(all) == 0 {
		fmt.Fprintln(w, "No games played yet.")
		return nil
	}

	ids := make([]string, 0, len(all))
	for id := range all {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	fmt.Fprintf(w, "  %-14s  %-6s  %-8s  %-8s  %s\n", "Game", "Games", "Best", "Average", "Last played")
	for _, id := range ids {
		st := all[id]
		fmt.Fprintf(w, "  %-14s  %-6d  %-8d  %-8.1f  %s\n",
			id, st.GamesCount, st.HighScore, st.AvgScore, st.LastPlayed.Local().Format("2006-01-02 15:04"))
	}
	return nil
}

// writeScores prints the top scores, or every score when all is set, and
// the totals of one game.
func writeScores(w io.Writer, store *storage.Store, g registry.GameInfo, all bool) error {
	var scores []storage.ScoreEntry
	var err error
	if all {
		scores, err = store.AllScores(g.ID)
	} else {
		scores, err = store.TopScores(g.ID, 10)
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "High Scores - %s\n", g.Title)
	fmt.Fprintln(w)

	if len(scores) == 0 {
		fmt.Fprintln(w, "No scores recorded yet.")
		fmt.Fprintf(w, "Play 'breaker play %s' to set the first high score!\n", g.ID)
		return nil
	}

	// Print header
	fmt.Fprintf(w, "  %-4s  %-8s  %-6s  %-6s  %-12s  %s\n", "Rank", "Score", "Turns", "Balls", "Player", "Date")
	fmt.Fprintf(w, "  %-4s  %-8s  %-6s  %-6s  %-12s  %s\n", "----", "-----", "-----", "-----", "------", "----")

	// Print scores
	for i, entry := range scores {
		player := entry.Player
		if player == "" {
			player = "-"
		}
		dateStr := entry.CreatedAt.Local().Format("2006-01-02 15:04")
		fmt.Fprintf(w, "  %-4d  %-8d  %-6d  %-6d  %-12s  %s\n",
			i+1, entry.Score, entry.Turns, entry.BallsCleared, player, dateStr)
	}

	stats, err := store.GetGameStats(g.ID)
	if err != nil {
		return err
	}

	fmt.Fprintln(w)
	fmt.Fprintf(w, "Best: %d   Games: %d   Average: %.1f   Balls cleared: %d\n",
		stats.HighScore, stats.GamesCount, stats.AvgScore, stats.BallsCleared)
	return nil
}
