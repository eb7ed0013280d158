package board

import "sort"

// lineDirections are the forward steps of the four line axes:
// horizontal, vertical, diagonal and anti-diagonal.
var lineDirections = [4][2]int{{0, 1}, {1, 0}, {1, 1}, {1, -1}}

// ClearResult describes one clearing pass.
type ClearResult struct {
	Cleared   int        // Number of distinct cells emptied
	Positions []Position // Emptied cells, row-major order
}

// Contains reports whether p was cleared in this pass.
func (r ClearResult) Contains(p Position) bool {
	i := sort.Search(len(r.Positions), func(i int) bool {
		q := r.Positions[i]
		return q.Row > p.Row || (q.Row == p.Row && q.Col >= p.Col)
	})
	return i < len(r.Positions) && r.Positions[i] == p
}

// FindLines returns every cell that belongs to a same-colour run of at least
// LineLength along any axis, without modifying the board.
func (b *Board) FindLines() []Position {
	marked := make([]bool, len(b.cells))

	for r := 0; r < b.size; r++ {
		for c := 0; c < b.size; c++ {
			origin := b.cells[b.index(P(r, c))]
			if !origin.Filled {
				continue
			}
			for _, d := range lineDirections {
				run := 1
				p := P(r+d[0], c+d[1])
				for b.InBounds(p) {
					cell := b.cells[b.index(p)]
					if !cell.Filled || cell.Color != origin.Color {
						break
					}
					run++
					p = p.Add(d[0], d[1])
				}
				if run < b.opts.LineLength {
					continue
				}
				for k := 0; k < run; k++ {
					marked[b.index(P(r+k*d[0], c+k*d[1]))] = true
				}
			}
		}
	}

	var out []Position
	for i, m := range marked {
		if m {
			out = append(out, P(i/b.size, i%b.size))
		}
	}
	return out
}

// ClearLines removes every qualifying run found by FindLines in a single
// batch and awards PointsPerBall for each removed ball. The whole grid is
// scanned before any cell is emptied, so crossing lines clear together.
func (b *Board) ClearLines() ClearResult {
	found := b.FindLines()
	if len(found) == 0 {
		return ClearResult{Positions: []Position{}}
	}

	for _, p := range found {
		b.cells[b.index(p)] = Empty()
	}
	b.score += PointsPerBall * len(found)
	b.ballsCleared += len(found)

	return ClearResult{Cleared: len(found), Positions: found}
}
