package board

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Board holds the grid, score and phase of one game.
// It is not safe for concurrent use; a game owns exactly one Board.
type Board struct {
	opts  Options
	rng   Rand
	size  int
	cells []Cell // Row-major, index = row*size + col

	score        int
	phase        Phase
	turns        int
	ballsCleared int
}

// New creates an empty board. Call Seed to place the initial balls.
func New(opts Options, rng Rand) (*Board, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if rng == nil {
		return nil, fmt.Errorf("%w: random source is nil", ErrInvalidOptions)
	}

	return &Board{
		opts:  opts.clone(),
		rng:   rng,
		size:  opts.GridSize,
		cells: make([]Cell, opts.GridSize*opts.GridSize),
	}, nil
}

// NewFromLayout creates a board from rows of layout runes: '.' for an empty
// cell and a colour rune (see Color.Char) for a ball. The layout must be
// GridSize rows of GridSize runes. Balls may use colours outside the palette.
func NewFromLayout(opts Options, rng Rand, rows []string) (*Board, error) {
	b, err := New(opts, rng)
	if err != nil {
		return nil, err
	}

	if len(rows) != b.size {
		return nil, fmt.Errorf("board: layout has %d rows, want %d", len(rows), b.size)
	}
	for r, row := range rows {
		if n := utf8.RuneCountInString(row); n != b.size {
			return nil, fmt.Errorf("board: layout row %d has %d cells, want %d", r, n, b.size)
		}
		c := 0
		for _, ch := range row {
			if ch != '.' {
				color, ok := ParseColor(string(ch))
				if !ok {
					return nil, fmt.Errorf("board: layout row %d col %d: unknown colour %q", r, c, ch)
				}
				b.cells[b.index(P(r, c))] = Ball(color)
			}
			c++
		}
	}

	if b.IsFull() {
		b.phase = PhaseGameOver
	}
	return b, nil
}

// Seed places the initial random balls and returns their positions.
func (b *Board) Seed() []Position {
	placed := b.SpawnBalls(b.opts.InitialBalls)
	if b.IsFull() {
		b.phase = PhaseGameOver
	}
	return placed
}

// index converts a position to a flat array index.
func (b *Board) index(p Position) int {
	return p.Row*b.size + p.Col
}

// InBounds returns true if the position lies on the grid.
func (b *Board) InBounds(p Position) bool {
	return p.Row >= 0 && p.Row < b.size && p.Col >= 0 && p.Col < b.size
}

// mustInBounds panics on positions outside the grid. Callers are expected
// to clamp input before calling into the engine.
func (b *Board) mustInBounds(p Position) {
	if !b.InBounds(p) {
		panic(fmt.Sprintf("board: position %v outside %dx%d grid", p, b.size, b.size))
	}
}

// Size returns the grid dimension N.
func (b *Board) Size() int {
	return b.size
}

// Options returns a copy of the board's rule options.
func (b *Board) Options() Options {
	return b.opts.clone()
}

// Cell returns the content of the cell at p. Panics if p is off the grid.
func (b *Board) Cell(p Position) Cell {
	b.mustInBounds(p)
	return b.cells[b.index(p)]
}

// Score returns the accumulated score.
func (b *Board) Score() int {
	return b.score
}

// Phase returns the current phase.
func (b *Board) Phase() Phase {
	return b.phase
}

// IsGameOver reports whether the board has reached its terminal state.
func (b *Board) IsGameOver() bool {
	return b.phase == PhaseGameOver
}

// Turns returns the number of completed turns.
func (b *Board) Turns() int {
	return b.turns
}

// BallsCleared returns the total number of balls removed by line clears.
func (b *Board) BallsCleared() int {
	return b.ballsCleared
}

// OccupiedCount returns the number of balls on the grid.
func (b *Board) OccupiedCount() int {
	count := 0
	for _, c := range b.cells {
		if c.Filled {
			count++
		}
	}
	return count
}

// EmptyCount returns the number of empty cells.
func (b *Board) EmptyCount() int {
	return len(b.cells) - b.OccupiedCount()
}

// IsFull returns true if every cell holds a ball.
func (b *Board) IsFull() bool {
	for _, c := range b.cells {
		if !c.Filled {
			return false
		}
	}
	return true
}

// IsEmpty returns true if no cell holds a ball.
func (b *Board) IsEmpty() bool {
	return b.OccupiedCount() == 0
}

// emptyPositions lists the empty cells in row-major order.
func (b *Board) emptyPositions() []Position {
	var out []Position
	for i, c := range b.cells {
		if !c.Filled {
			out = append(out, P(i/b.size, i%b.size))
		}
	}
	return out
}

// Rows returns a copy of the grid as rows of cells.
func (b *Board) Rows() [][]Cell {
	rows := make([][]Cell, b.size)
	for r := range rows {
		rows[r] = make([]Cell, b.size)
		copy(rows[r], b.cells[r*b.size:(r+1)*b.size])
	}
	return rows
}

// String returns the layout representation accepted by NewFromLayout,
// rows separated by newlines.
func (b *Board) String() string {
	var sb strings.Builder
	sb.Grow(b.size*b.size + b.size)
	for r := 0; r < b.size; r++ {
		if r > 0 {
			sb.WriteByte('\n')
		}
		for c := 0; c < b.size; c++ {
			sb.WriteRune(b.cells[b.index(P(r, c))].Char())
		}
	}
	return sb.String()
}
