package board

// SpawnBalls places up to count balls on distinct empty cells chosen
// uniformly at random, each with a uniformly random palette colour.
// It returns the filled positions in placement order; the slice is shorter
// than count when the grid runs out of empty cells.
func (b *Board) SpawnBalls(count int) []Position {
	empty := b.emptyPositions()
	n := min(count, len(empty))
	if n <= 0 {
		return []Position{}
	}

	placed := make([]Position, 0, n)
	for i := 0; i < n; i++ {
		// Partial Fisher-Yates: pick from the unpicked tail.
		j := i + b.rng.Intn(len(empty)-i)
		empty[i], empty[j] = empty[j], empty[i]

		p := empty[i]
		color := b.opts.Palette[b.rng.Intn(len(b.opts.Palette))]
		b.cells[b.index(p)] = Ball(color)
		placed = append(placed, p)
	}
	return placed
}
