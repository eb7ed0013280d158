package board

import (
	"errors"
	"math/rand"
	"strings"
	"testing"
)

// seqRand replays a fixed sequence of values, reduced modulo n.
// Once exhausted it returns 0.
type seqRand struct {
	vals []int
	i    int
}

func (s *seqRand) Intn(n int) int {
	v := 0
	if s.i < len(s.vals) {
		v = s.vals[s.i]
	}
	s.i++
	return v % n
}

// layout renders an n x n layout with the given balls.
func layout(n int, balls map[Position]Color) []string {
	rows := make([][]rune, n)
	for r := range rows {
		rows[r] = []rune(strings.Repeat(".", n))
	}
	for p, c := range balls {
		rows[p.Row][p.Col] = c.Char()
	}
	out := make([]string, n)
	for r := range rows {
		out[r] = string(rows[r])
	}
	return out
}

// fullPattern fills an n x n layout so that no two neighbours share a colour
// along any line axis.
func fullPattern(n int) map[Position]Color {
	balls := make(map[Position]Color, n*n)
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			balls[P(r, c)] = Color((r*3 + c) % int(ColorCount))
		}
	}
	return balls
}

func mustBoard(t *testing.T, opts Options, rng Rand, rows []string) *Board {
	t.Helper()
	b, err := NewFromLayout(opts, rng, rows)
	if err != nil {
		t.Fatalf("NewFromLayout() failed: %v", err)
	}
	return b
}

func TestOptionsValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Options)
		valid  bool
	}{
		{"defaults", func(*Options) {}, true},
		{"grid too small", func(o *Options) { o.GridSize = 1 }, false},
		{"line longer than grid", func(o *Options) { o.LineLength = 10 }, false},
		{"line too short", func(o *Options) { o.LineLength = 1 }, false},
		{"zero spawn", func(o *Options) { o.SpawnCount = 0 }, false},
		{"negative initial", func(o *Options) { o.InitialBalls = -1 }, false},
		{"empty palette", func(o *Options) { o.Palette = nil }, false},
		{"duplicate colour", func(o *Options) { o.Palette = []Color{ColorRed, ColorRed} }, false},
		{"unknown colour", func(o *Options) { o.Palette = []Color{ColorCount} }, false},
		{"single colour", func(o *Options) { o.Palette = []Color{ColorBlue} }, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			opts := DefaultOptions()
			tc.modify(&opts)
			err := opts.Validate()
			if tc.valid && err != nil {
				t.Errorf("Validate() = %v, want nil", err)
			}
			if !tc.valid && !errors.Is(err, ErrInvalidOptions) {
				t.Errorf("Validate() = %v, want ErrInvalidOptions", err)
			}
		})
	}
}

func TestNewRequiresRand(t *testing.T) {
	if _, err := New(DefaultOptions(), nil); !errors.Is(err, ErrInvalidOptions) {
		t.Errorf("New() with nil rand = %v, want ErrInvalidOptions", err)
	}
}

func TestNewBoardIsEmpty(t *testing.T) {
	b, err := New(DefaultOptions(), rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	if b.Size() != 9 {
		t.Errorf("Size() = %d, want 9", b.Size())
	}
	if !b.IsEmpty() || b.EmptyCount() != 81 {
		t.Errorf("new board should be empty, got %d empty cells", b.EmptyCount())
	}
	if b.Score() != 0 || b.Phase() != PhasePlaying {
		t.Errorf("new board: score=%d phase=%v", b.Score(), b.Phase())
	}
}

func TestSeedPlacesInitialBalls(t *testing.T) {
	b, _ := New(DefaultOptions(), rand.New(rand.NewSource(7)))
	placed := b.Seed()

	if len(placed) != 3 {
		t.Fatalf("Seed() placed %d balls, want 3", len(placed))
	}
	if b.OccupiedCount() != 3 {
		t.Errorf("OccupiedCount() = %d, want 3", b.OccupiedCount())
	}
	for _, p := range placed {
		if !b.Cell(p).Filled {
			t.Errorf("seeded cell %v is empty", p)
		}
	}
}

func TestLayoutRoundTrip(t *testing.T) {
	rows := []string{
		"R....",
		".B...",
		"..G..",
		"...Y.",
		"P...C",
	}
	opts := DefaultOptions()
	opts.GridSize = 5

	b := mustBoard(t, opts, rand.New(rand.NewSource(1)), rows)

	if got := b.String(); got != strings.Join(rows, "\n") {
		t.Errorf("String() =\n%s\nwant\n%s", got, strings.Join(rows, "\n"))
	}
	if c := b.Cell(P(4, 4)); !c.Filled || c.Color != ColorCyan {
		t.Errorf("Cell(4,4) = %+v, want cyan ball", c)
	}
}

func TestLayoutErrors(t *testing.T) {
	opts := DefaultOptions()
	opts.GridSize = 3
	rng := rand.New(rand.NewSource(1))

	tests := []struct {
		name string
		rows []string
	}{
		{"too few rows", []string{"...", "..."}},
		{"short row", []string{"...", "..", "..."}},
		{"unknown colour", []string{"...", ".X.", "..."}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := NewFromLayout(opts, rng, tc.rows); err == nil {
				t.Error("NewFromLayout() should fail")
			}
		})
	}
}

func TestCellOutOfRangePanics(t *testing.T) {
	b, _ := New(DefaultOptions(), rand.New(rand.NewSource(1)))

	for _, p := range []Position{P(-1, 0), P(0, -1), P(9, 0), P(0, 9)} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("Cell(%v) should panic", p)
				}
			}()
			b.Cell(p)
		}()
	}
}

func TestSnapshotIsDeepCopy(t *testing.T) {
	b := mustBoard(t, DefaultOptions(), rand.New(rand.NewSource(1)),
		layout(9, map[Position]Color{P(0, 0): ColorRed}))

	snap := b.Snapshot()
	snap.Cells[0][0] = Empty()

	if !b.Cell(P(0, 0)).Filled {
		t.Error("mutating a snapshot changed the board")
	}
	if !b.Snapshot().Equal(b.Snapshot()) {
		t.Error("two snapshots of the same board should be equal")
	}
}
