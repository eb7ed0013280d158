package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/bubble-breaker/internal/registry"
	"github.com/vovakirdan/bubble-breaker/internal/storage"
)

var (
	classic = registry.GameInfo{ID: "breaker", Title: "Bubble Breaker"}
	mini    = registry.GameInfo{ID: "breaker_mini", Title: "Bubble Breaker Mini"}
)

// openScoresStore opens a temporary database holding n classic scores
// (10, 20, ...) and one mini score.
func openScoresStore(t *testing.T, n int) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	for i := 1; i <= n; i++ {
		if _, err := store.SaveScore(storage.GameResult{GameID: classic.ID, Player: "ann", Score: i * 10}); err != nil {
			t.Fatal(err)
		}
	}
	if _, err := store.SaveScore(storage.GameResult{GameID: mini.ID, Player: "bob", Score: 7}); err != nil {
		t.Fatal(err)
	}
	return store
}

func TestWriteReportTopTenAndAll(t *testing.T) {
	store := openScoresStore(t, 12)

	var top bytes.Buffer
	if err := writeReport(&top, store, []registry.GameInfo{classic}, false, false); err != nil {
		t.Fatalf("writeReport() failed: %v", err)
	}
	if strings.Count(top.String(), "ann") != 10 {
		t.Errorf("top listing should have 10 rows:\n%s", top.String())
	}
	if strings.Contains(top.String(), "Summary") {
		t.Error("single game report should not print the summary")
	}

	var all bytes.Buffer
	if err := writeReport(&all, store, []registry.GameInfo{classic}, false, true); err != nil {
		t.Fatalf("writeReport() failed: %v", err)
	}
	if strings.Count(all.String(), "ann") != 12 {
		t.Errorf("--all listing should have 12 rows:\n%s", all.String())
	}
	if !strings.Contains(all.String(), "Best: 120   Games: 12") {
		t.Errorf("totals missing:\n%s", all.String())
	}
}

func TestWriteReportSummary(t *testing.T) {
	store := openScoresStore(t, 2)

	var out bytes.Buffer
	if err := writeReport(&out, store, []registry.GameInfo{classic, mini}, true, false); err != nil {
		t.Fatalf("writeReport() failed: %v", err)
	}

	text := out.String()
	summary := text[:strings.Index(text, "High Scores")]
	if !strings.Contains(summary, "breaker ") || !strings.Contains(summary, "breaker_mini") {
		t.Errorf("summary should list both variants:\n%s", summary)
	}
	if strings.Index(summary, "breaker_mini") < strings.Index(summary, "breaker ") {
		t.Errorf("summary rows should be sorted by game id:\n%s", summary)
	}
}

func TestWriteSummaryEmpty(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatal(err)
	}
	defer store.Close()

	var out bytes.Buffer
	if err := writeSummary(&out, store); err != nil {
		t.Fatalf("writeSummary() failed: %v", err)
	}
	if !strings.Contains(out.String(), "No games played yet.") {
		t.Errorf("empty summary = %q", out.String())
	}
}

func TestClearScores(t *testing.T) {
	store := openScoresStore(t, 3)

	var out bytes.Buffer
	if err := clearScores(&out, store, []registry.GameInfo{classic}); err != nil {
		t.Fatalf("clearScores() failed: %v", err)
	}
	if !strings.Contains(out.String(), "Cleared scores for Bubble Breaker") {
		t.Errorf("output = %q", out.String())
	}

	if best, _ := store.HighScore(classic.ID); best != 0 {
		t.Errorf("classic high score = %d after clear, want 0", best)
	}
	if best, _ := store.HighScore(mini.ID); best != 7 {
		t.Errorf("mini high score = %d, other variants must be kept", best)
	}
}
