package breaker

import (
	"fmt"

	"github.com/vovakirdan/bubble-breaker/internal/games/breaker/board"
)

// RulesText returns the rules for a rule set, one line per entry.
func RulesText(opts board.Options) []string {
	return []string{
		"GAME RULES",
		"",
		"Move balls from cell to cell to group them into lines of one colour.",
		"A ball can only travel through empty cells, never diagonally.",
		fmt.Sprintf("After each move the board adds %d more balls.", opts.SpawnCount),
		fmt.Sprintf("Lines of %d or more, in any direction, are removed.", opts.LineLength),
		"If a move removes a line, no balls are added: you get another move.",
		fmt.Sprintf("Each removed ball scores %d points.", board.PointsPerBall),
		"The game ends when the board is completely full.",
		"Goal: stay in the game as long as possible and beat your high score!",
	}
}
