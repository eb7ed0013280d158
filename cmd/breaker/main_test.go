package main

import "testing"

func TestSubcommandsRegistered(t *testing.T) {
	want := []string{"list", "play", "menu", "serve", "scores", "rules"}
	for _, name := range want {
		cmd, _, err := rootCmd.Find([]string{name})
		if err != nil || cmd.Name() != name {
			t.Errorf("subcommand %q not found: %v", name, err)
		}
	}
}

func TestApplyGameFlagsRejectsUnknownDifficulty(t *testing.T) {
	t.Cleanup(func() { flagDifficulty = "" })

	flagDifficulty = "brutal"
	if err := applyGameFlags(); err == nil {
		t.Error("unknown difficulty should be rejected")
	}

	flagDifficulty = "hard"
	if err := applyGameFlags(); err != nil {
		t.Errorf("applyGameFlags() with hard: %v", err)
	}
}

func TestPortOf(t *testing.T) {
	tests := []struct {
		addr string
		want string
	}{
		{":23234", "23234"},
		{"localhost:2222", "2222"},
		{"2222", "2222"},
	}
	for _, tt := range tests {
		if got := portOf(tt.addr); got != tt.want {
			t.Errorf("portOf(%q) = %q, want %q", tt.addr, got, tt.want)
		}
	}
}

func TestNewLoggerDiscardsWithoutFile(t *testing.T) {
	logger, closeLog, err := newLogger("")
	if err != nil || logger == nil {
		t.Fatalf("newLogger(\"\") = %v, %v", logger, err)
	}
	closeLog()
}
