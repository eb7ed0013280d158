package board

import (
	"errors"
	"math/rand"
	"testing"
)

func TestApplyMove(t *testing.T) {
	b := mustBoard(t, DefaultOptions(), rand.New(rand.NewSource(1)),
		layout(9, map[Position]Color{P(4, 4): ColorGreen, P(0, 0): ColorRed}))

	if err := b.ApplyMove(P(4, 4), P(8, 8)); err != nil {
		t.Fatalf("ApplyMove() failed: %v", err)
	}

	if b.Cell(P(4, 4)).Filled {
		t.Error("source should be empty after move")
	}
	if c := b.Cell(P(8, 8)); !c.Filled || c.Color != ColorGreen {
		t.Errorf("destination = %+v, want green ball", c)
	}
	if b.OccupiedCount() != 2 {
		t.Errorf("OccupiedCount() = %d, want 2", b.OccupiedCount())
	}
}

func TestApplyMoveErrors(t *testing.T) {
	walled := map[Position]Color{
		P(0, 0): ColorRed,
		P(0, 1): ColorBlue,
		P(1, 0): ColorBlue,
		P(4, 4): ColorGreen,
	}

	tests := []struct {
		name  string
		start Position
		end   Position
		want  error
	}{
		{"empty source", P(5, 5), P(6, 6), ErrInvalidSource},
		{"occupied destination", P(4, 4), P(0, 1), ErrInvalidDestination},
		{"source is destination", P(4, 4), P(4, 4), ErrInvalidDestination},
		{"no path", P(0, 0), P(8, 8), ErrUnreachable},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b := mustBoard(t, DefaultOptions(), rand.New(rand.NewSource(1)), layout(9, walled))
			before := b.Snapshot()

			err := b.ApplyMove(tc.start, tc.end)
			if !errors.Is(err, tc.want) {
				t.Errorf("ApplyMove(%v, %v) = %v, want %v", tc.start, tc.end, err, tc.want)
			}
			if !b.Snapshot().Equal(before) {
				t.Error("failed move must not modify the board")
			}
		})
	}
}

func TestApplyMoveSingleBallOnSelf(t *testing.T) {
	b := mustBoard(t, DefaultOptions(), rand.New(rand.NewSource(1)),
		layout(9, map[Position]Color{P(4, 4): ColorRed}))

	if err := b.ApplyMove(P(4, 4), P(4, 4)); !errors.Is(err, ErrInvalidDestination) {
		t.Errorf("ApplyMove onto itself = %v, want ErrInvalidDestination", err)
	}
}

func TestApplyMovePreservesBallCount(t *testing.T) {
	rng := rand.New(rand.NewSource(5))

	for i := 0; i < 100; i++ {
		b, _ := New(DefaultOptions(), rng)
		b.SpawnBalls(30)
		count := b.OccupiedCount()

		var from, to Position
		for r := 0; r < b.Size(); r++ {
			for c := 0; c < b.Size(); c++ {
				if b.Cell(P(r, c)).Filled {
					from = P(r, c)
				} else {
					to = P(r, c)
				}
			}
		}

		//nolint:errcheck // Only the count matters here, failed moves included
		b.ApplyMove(from, to)

		if b.OccupiedCount() != count {
			t.Fatalf("iteration %d: ball count changed from %d to %d", i, count, b.OccupiedCount())
		}
	}
}

func TestApplyMoveOutOfRangePanics(t *testing.T) {
	b := mustBoard(t, DefaultOptions(), rand.New(rand.NewSource(1)),
		layout(9, map[Position]Color{P(0, 0): ColorRed}))

	defer func() {
		if recover() == nil {
			t.Error("ApplyMove with off-grid destination should panic")
		}
	}()
	//nolint:errcheck // Expected to panic
	b.ApplyMove(P(0, 0), P(0, 9))
}
