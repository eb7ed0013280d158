package board

import (
	"math/rand"
	"testing"
)

func TestIsReachable(t *testing.T) {
	// A wall of balls down column 4 separates the left and right halves,
	// except for a gap at row 8.
	walled := map[Position]Color{P(0, 0): ColorRed}
	for r := 0; r < 8; r++ {
		walled[P(r, 4)] = ColorBlue
	}

	tests := []struct {
		name  string
		balls map[Position]Color
		start Position
		end   Position
		want  bool
	}{
		{"open board", map[Position]Color{P(4, 4): ColorRed}, P(4, 4), P(0, 0), true},
		{"adjacent", map[Position]Color{P(4, 4): ColorRed}, P(4, 4), P(4, 5), true},
		{"around the wall", walled, P(0, 0), P(0, 8), true},
		{"same side", walled, P(0, 0), P(7, 3), true},
		{"destination occupied", walled, P(0, 0), P(3, 4), false},
		{"same cell occupied", map[Position]Color{P(4, 4): ColorRed}, P(4, 4), P(4, 4), false},
		{"same cell empty", map[Position]Color{}, P(2, 2), P(2, 2), true},
		{
			name: "boxed in",
			balls: map[Position]Color{
				P(4, 4): ColorRed,
				P(3, 4): ColorBlue, P(5, 4): ColorBlue,
				P(4, 3): ColorBlue, P(4, 5): ColorBlue,
			},
			start: P(4, 4),
			end:   P(0, 0),
			want:  false,
		},
		{
			name: "diagonal gap is not a path",
			balls: map[Position]Color{
				P(0, 0): ColorRed,
				P(0, 1): ColorBlue,
				P(1, 0): ColorBlue,
			},
			start: P(0, 0),
			end:   P(1, 1),
			want:  false,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b := mustBoard(t, DefaultOptions(), rand.New(rand.NewSource(1)), layout(9, tc.balls))
			before := b.Snapshot()

			if got := b.IsReachable(tc.start, tc.end); got != tc.want {
				t.Errorf("IsReachable(%v, %v) = %v, want %v\n%s", tc.start, tc.end, got, tc.want, b)
			}
			if !b.Snapshot().Equal(before) {
				t.Error("IsReachable must not modify the board")
			}
		})
	}
}

func TestIsReachableSymmetric(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	opts := DefaultOptions()

	for i := 0; i < 200; i++ {
		b, _ := New(opts, rng)
		b.SpawnBalls(20 + rng.Intn(40))

		occupied := make([]Position, 0)
		empty := b.emptyPositions()
		for r := 0; r < b.Size(); r++ {
			for c := 0; c < b.Size(); c++ {
				if b.Cell(P(r, c)).Filled {
					occupied = append(occupied, P(r, c))
				}
			}
		}
		if len(empty) == 0 || len(occupied) == 0 {
			continue
		}

		a := occupied[rng.Intn(len(occupied))]
		e := empty[rng.Intn(len(empty))]
		forward := b.IsReachable(a, e)

		// Swap occupancy of a and e, then ask the reverse question.
		rows := []rune(b.String())
		n := b.Size() + 1 // runes per row including newline
		rows[e.Row*n+e.Col], rows[a.Row*n+a.Col] = rows[a.Row*n+a.Col], '.'
		swapped := mustBoard(t, opts, rng, splitRows(string(rows)))

		if backward := swapped.IsReachable(e, a); backward != forward {
			t.Fatalf("iteration %d: IsReachable(%v,%v)=%v but reverse=%v\n%s", i, a, e, forward, backward, b)
		}
	}
}

func splitRows(s string) []string {
	var rows []string
	start := 0
	for i, ch := range s {
		if ch == '\n' {
			rows = append(rows, s[start:i])
			start = i + 1
		}
	}
	return append(rows, s[start:])
}

func TestReachableFrom(t *testing.T) {
	balls := map[Position]Color{
		P(0, 0): ColorRed,
		P(0, 2): ColorBlue,
		P(1, 0): ColorBlue,
		P(1, 1): ColorBlue,
		P(1, 2): ColorBlue,
	}
	opts := DefaultOptions()
	opts.GridSize = 3
	opts.LineLength = 3
	b := mustBoard(t, opts, rand.New(rand.NewSource(1)), layout(3, balls))

	got := b.ReachableFrom(P(0, 0))
	if len(got) != 1 || got[0] != P(0, 1) {
		t.Errorf("ReachableFrom(0,0) = %v, want [(0,1)]", got)
	}
}
