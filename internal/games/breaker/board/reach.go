package board

// neighbours are the four orthogonal steps a ball may travel along.
var neighbours = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

// IsReachable reports whether a ball at start can travel to end through
// orthogonally adjacent empty cells. The start cell itself is traversable
// whatever it holds. When start == end the result is true only if the cell
// is empty. Panics if either position is off the grid.
func (b *Board) IsReachable(start, end Position) bool {
	b.mustInBounds(start)
	b.mustInBounds(end)

	if start == end {
		return !b.cells[b.index(end)].Filled
	}
	if b.cells[b.index(end)].Filled {
		return false
	}

	visited := make([]bool, len(b.cells))
	visited[b.index(start)] = true
	queue := []Position{start}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		for _, d := range neighbours {
			next := cur.Add(d[0], d[1])
			if !b.InBounds(next) {
				continue
			}
			i := b.index(next)
			if visited[i] || b.cells[i].Filled {
				continue
			}
			if next == end {
				return true
			}
			visited[i] = true
			queue = append(queue, next)
		}
	}
	return false
}

// ReachableFrom returns every empty cell a ball at start could move to,
// in row-major order.
func (b *Board) ReachableFrom(start Position) []Position {
	b.mustInBounds(start)

	visited := make([]bool, len(b.cells))
	visited[b.index(start)] = true
	queue := []Position{start}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		for _, d := range neighbours {
			next := cur.Add(d[0], d[1])
			if !b.InBounds(next) {
				continue
			}
			i := b.index(next)
			if visited[i] || b.cells[i].Filled {
				continue
			}
			visited[i] = true
			queue = append(queue, next)
		}
	}

	var out []Position
	for i, seen := range visited {
		if seen && !b.cells[i].Filled {
			out = append(out, P(i/b.size, i%b.size))
		}
	}
	return out
}
