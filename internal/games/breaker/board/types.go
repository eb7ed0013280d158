// Package board implements the Bubble Breaker rules engine: a square grid of
// coloured balls, reachability checks for moves, random spawning and
// line clearing. The package is UI-agnostic and deterministic for a given
// random source.
package board

import (
	"errors"
	"fmt"
)

// Cell is a single grid cell. The zero value is an empty cell.
type Cell struct {
	Filled bool
	Color  Color
}

// Empty returns an empty cell.
func Empty() Cell {
	return Cell{}
}

// Ball returns a cell occupied by a ball of the given colour.
func Ball(c Color) Cell {
	return Cell{Filled: true, Color: c}
}

// Char returns the layout rune for the cell ('.' when empty).
func (c Cell) Char() rune {
	if !c.Filled {
		return '.'
	}
	return c.Color.Char()
}

// Position is a (row, column) grid coordinate, 0-indexed.
type Position struct {
	Row int
	Col int
}

// P is a convenience constructor for Position.
func P(row, col int) Position {
	return Position{Row: row, Col: col}
}

// String returns a string representation of the position.
func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// Add returns the position offset by (dr, dc).
func (p Position) Add(dr, dc int) Position {
	return Position{Row: p.Row + dr, Col: p.Col + dc}
}

// Phase is the engine's terminal-state machine.
type Phase uint8

const (
	PhasePlaying Phase = iota
	PhaseGameOver
)

// String returns the phase name.
func (ph Phase) String() string {
	switch ph {
	case PhasePlaying:
		return "playing"
	case PhaseGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// PointsPerBall is the score awarded for every cleared ball.
const PointsPerBall = 2

// Options are the rule parameters of a board.
type Options struct {
	GridSize        int     // Board is GridSize x GridSize
	LineLength      int     // Minimum run length that clears
	SpawnCount      int     // Balls added after a move that clears nothing
	InitialBalls    int     // Balls placed by Seed
	Palette         []Color // Colours spawned balls are drawn from
	RefillWhenEmpty bool    // Opt-in: spawn a fresh set when a turn leaves the grid empty
}

// DefaultOptions returns the classic 9x9, five-in-a-row, seven colour rules.
func DefaultOptions() Options {
	return Options{
		GridSize:        9,
		LineLength:      5,
		SpawnCount:      3,
		InitialBalls:    3,
		Palette:         AllColors(),
		RefillWhenEmpty: false,
	}
}

// ErrInvalidOptions is returned by Validate and New for unusable options.
var ErrInvalidOptions = errors.New("invalid board options")

// Validate checks that the options describe a playable board.
func (o Options) Validate() error {
	switch {
	case o.GridSize < 2:
		return fmt.Errorf("%w: grid size %d is below 2", ErrInvalidOptions, o.GridSize)
	case o.LineLength < 2 || o.LineLength > o.GridSize:
		return fmt.Errorf("%w: line length %d must be within [2, %d]", ErrInvalidOptions, o.LineLength, o.GridSize)
	case o.SpawnCount < 1:
		return fmt.Errorf("%w: spawn count %d is below 1", ErrInvalidOptions, o.SpawnCount)
	case o.InitialBalls < 0:
		return fmt.Errorf("%w: initial balls %d is negative", ErrInvalidOptions, o.InitialBalls)
	case len(o.Palette) == 0:
		return fmt.Errorf("%w: palette is empty", ErrInvalidOptions)
	}

	seen := make(map[Color]bool, len(o.Palette))
	for _, c := range o.Palette {
		if c >= ColorCount {
			return fmt.Errorf("%w: unknown colour %d in palette", ErrInvalidOptions, c)
		}
		if seen[c] {
			return fmt.Errorf("%w: colour %s listed twice", ErrInvalidOptions, c)
		}
		seen[c] = true
	}
	return nil
}

// clone returns a copy with its own palette slice.
func (o Options) clone() Options {
	o.Palette = append([]Color(nil), o.Palette...)
	return o
}

// Rand is the random source used for spawning. *math/rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
}
