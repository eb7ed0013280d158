package breaker

import "github.com/vovakirdan/bubble-breaker/internal/games/breaker/board"

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying     GameStateType = "playing"
	StateSelected    GameStateType = "selected"
	StatePaused      GameStateType = "paused"
	StateRules       GameStateType = "rules"
	StateGameOver    GameStateType = "game_over"
	StatePausedSmall GameStateType = "paused_small_window"
)

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick     uint64
	Variant  string
	Seed     int64
	Board    board.Snapshot
	Cursor   board.Position
	Selected *board.Position // nil without a selection
	Message  string
	State    GameStateType
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case g.finished():
		state = StateGameOver
	case g.showRules:
		state = StateRules
	case g.paused:
		state = StatePaused
	case g.hasSel:
		state = StateSelected
	}

	var sel *board.Position
	if g.hasSel {
		p := g.selected
		sel = &p
	}

	return Snapshot{
		Tick:     g.tick,
		Variant:  g.ID(),
		Seed:     g.seed,
		Board:    g.board.Snapshot(),
		Cursor:   g.cursor,
		Selected: sel,
		Message:  g.message,
		State:    state,
	}
}
