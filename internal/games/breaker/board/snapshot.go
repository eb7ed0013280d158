package board

// Snapshot captures the complete board state for determinism tests and
// rendering without exposing the live grid.
type Snapshot struct {
	Size         int
	Cells        [][]Cell
	Score        int
	Phase        Phase
	Turns        int
	BallsCleared int
	Occupied     int
}

// Snapshot returns a deep copy of the current board state.
func (b *Board) Snapshot() Snapshot {
	return Snapshot{
		Size:         b.size,
		Cells:        b.Rows(),
		Score:        b.score,
		Phase:        b.phase,
		Turns:        b.turns,
		BallsCleared: b.ballsCleared,
		Occupied:     b.OccupiedCount(),
	}
}

// Equal returns true if two snapshots describe the same state.
func (s Snapshot) Equal(other Snapshot) bool {
	if s.Size != other.Size || s.Score != other.Score || s.Phase != other.Phase ||
		s.Turns != other.Turns || s.BallsCleared != other.BallsCleared || s.Occupied != other.Occupied {
		return false
	}
	for r := range s.Cells {
		for c := range s.Cells[r] {
			if s.Cells[r][c] != other.Cells[r][c] {
				return false
			}
		}
	}
	return true
}
