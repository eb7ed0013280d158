package board

import (
	"errors"
	"fmt"
)

// Move errors. All of them leave the board untouched.
var (
	ErrInvalidSource      = errors.New("source cell is empty")
	ErrInvalidDestination = errors.New("destination cell is occupied")
	ErrUnreachable        = errors.New("no empty path to destination")
	ErrGameOver           = errors.New("game is over")
)

// ValidateMove checks a move without applying it. It returns nil or one of
// the move errors, wrapped with both positions.
func (b *Board) ValidateMove(start, end Position) error {
	b.mustInBounds(start)
	b.mustInBounds(end)

	var err error
	switch {
	case b.phase == PhaseGameOver:
		err = ErrGameOver
	case !b.cells[b.index(start)].Filled:
		err = ErrInvalidSource
	case b.cells[b.index(end)].Filled:
		err = ErrInvalidDestination
	case !b.IsReachable(start, end):
		err = ErrUnreachable
	}
	if err != nil {
		return fmt.Errorf("board: move %v -> %v: %w", start, end, err)
	}
	return nil
}

// ApplyMove relocates the ball at start to end. The source is cleared and the
// destination filled in one step; on error nothing changes.
func (b *Board) ApplyMove(start, end Position) error {
	if err := b.ValidateMove(start, end); err != nil {
		return err
	}

	si, ei := b.index(start), b.index(end)
	b.cells[ei] = b.cells[si]
	b.cells[si] = Empty()
	return nil
}
