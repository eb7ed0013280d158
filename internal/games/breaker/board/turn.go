package board

// TurnResult summarises everything that happened during one player turn.
type TurnResult struct {
	From, To    Position
	FirstClear  ClearResult // Lines completed by the move itself
	Spawned     []Position  // Balls added because the move cleared nothing
	SecondClear ClearResult // Lines completed by the spawned balls
	Refilled    []Position  // Balls added because the grid was left empty
	ScoreGained int
	GameOver    bool
}

// Cleared returns the total number of balls removed during the turn.
func (t TurnResult) Cleared() int {
	return t.FirstClear.Cleared + t.SecondClear.Cleared
}

// PlayTurn runs a full turn: move, clear, and if nothing cleared spawn
// SpawnCount balls and clear once more. Spawning happens at most once per
// turn from the move itself; the only other source of balls is the opt-in
// RefillWhenEmpty. The board moves to PhaseGameOver when the grid
// is full after the turn resolves. A rejected move leaves the board
// unchanged and does not count as a turn.
func (b *Board) PlayTurn(start, end Position) (TurnResult, error) {
	if err := b.ApplyMove(start, end); err != nil {
		return TurnResult{}, err
	}

	before := b.score
	res := TurnResult{From: start, To: end}

	res.FirstClear = b.ClearLines()
	if res.FirstClear.Cleared == 0 {
		res.Spawned = b.SpawnBalls(b.opts.SpawnCount)
		res.SecondClear = b.ClearLines()
	}

	if b.opts.RefillWhenEmpty && b.IsEmpty() {
		res.Refilled = b.SpawnBalls(b.opts.SpawnCount)
	}

	b.turns++
	if b.IsFull() {
		b.phase = PhaseGameOver
	}

	res.ScoreGained = b.score - before
	res.GameOver = b.phase == PhaseGameOver
	return res, nil
}
