// Package breaker implements Bubble Breaker, a Lines-style puzzle.
// The player slides balls through empty cells to build same-colour lines;
// every move that clears nothing brings new balls, and the game ends when
// the board is full. Rules live in the board subpackage; this package owns
// the cursor, the selection and drawing.
package breaker

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/vovakirdan/bubble-breaker/internal/config"
	"github.com/vovakirdan/bubble-breaker/internal/core"
	"github.com/vovakirdan/bubble-breaker/internal/games/breaker/board"
	"github.com/vovakirdan/bubble-breaker/internal/registry"
)

// Variant selects the rule set a game is created with.
type Variant int

const (
	VariantClassic Variant = iota // Options from configuration, 9x9 by default
	VariantMini                   // 7x7 board, lines of four, five colours
)

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// layoutPath stores the puzzle file set via CLI
var layoutPath string

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names clear it.
func SetDifficultyPreset(preset string) {
	p, err := config.ParseDifficulty(preset)
	if err != nil {
		p = ""
	}
	difficultyPreset = p
}

// SetLayoutPath makes the next games start from the given puzzle file.
// An empty path restores random seeding.
func SetLayoutPath(path string) {
	layoutPath = path
}

// Game implements the Bubble Breaker game.
type Game struct {
	variant Variant
	cfg     config.BreakerConfig
	board   *board.Board
	rng     *rand.Rand
	seed    int64
	tick    uint64

	// Presentation state; the engine never sees it
	cursor    board.Position
	selected  board.Position
	hasSel    bool
	message   string
	flash     []board.Position // Cells cleared by the last turn
	flashLeft int
	highScore int

	// Screen layout
	screenW int
	screenH int
	originX int // Top-left corner of the board frame
	originY int

	paused    bool
	tooSmall  bool
	showRules bool
}

// New creates a classic Bubble Breaker game.
func New() *Game {
	return &Game{variant: VariantClassic}
}

// NewMini creates the compact variant.
func NewMini() *Game {
	return &Game{variant: VariantMini}
}

func init() {
	registry.Register("breaker", func() registry.Game {
		return New()
	})
	registry.Register("breaker_mini", func() registry.Game {
		return NewMini()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	if g.variant == VariantMini {
		return "breaker_mini"
	}
	return "breaker"
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.variant == VariantMini {
		return "Bubble Breaker Mini"
	}
	return "Bubble Breaker"
}

// Reset starts a new game. Configuration problems fall back to the
// default rules and are reported in the HUD.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.seed = cfg.Seed
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.tick = 0
	g.hasSel = false
	g.message = ""
	g.flash = nil
	g.flashLeft = 0
	g.paused = false
	g.showRules = false

	g.cfg = g.loadConfig()
	g.board = g.newBoard()
	g.cursor = board.P(g.board.Size()/2, g.board.Size()/2)

	g.Resize(cfg.ScreenW, cfg.ScreenH)
}

// loadConfig resolves the configuration for this variant.
func (g *Game) loadConfig() config.BreakerConfig {
	cfg, err := config.LoadBreaker(configPath)
	if err != nil {
		g.message = err.Error()
		cfg = config.DefaultBreakerConfig()
	}
	// The preset goes last so it can override the mini caps.
	if g.variant == VariantMini {
		config.ApplyMini(&cfg)
	}
	config.ApplyBreakerPreset(&cfg, difficultyPreset)
	return cfg
}

// newBoard builds and seeds the engine, from the puzzle file if one is set.
func (g *Game) newBoard() *board.Board {
	opts, err := g.cfg.ToOptions()
	if err != nil {
		g.message = err.Error()
		opts = board.DefaultOptions()
	}

	if layoutPath != "" {
		b, layoutErr := g.layoutBoard(opts)
		if layoutErr == nil {
			return b
		}
		g.message = layoutErr.Error()
	}

	b, err := board.New(opts, g.rng)
	if err != nil {
		// Options were validated above, so only the defaults can reach here.
		b, _ = board.New(board.DefaultOptions(), g.rng)
	}
	b.Seed()
	return b
}

// layoutBoard creates a board from the configured puzzle file. The grid
// size follows the file; the line length shrinks to fit small puzzles.
func (g *Game) layoutBoard(opts board.Options) (*board.Board, error) {
	l, err := config.LoadLayout(layoutPath)
	if err != nil {
		return nil, err
	}

	opts.GridSize = l.Size()
	opts.LineLength = min(opts.LineLength, opts.GridSize)
	return board.NewFromLayout(opts, g.rng, l.Rows)
}

// Resize recomputes the layout for new screen dimensions without
// touching the board.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h

	boardW, boardH := g.frameSize()
	minW := max(boardW, minHUDWidth)
	minH := boardH + hudHeight + footerHeight
	g.tooSmall = w < minW || h < minH

	g.originX = (w - boardW) / 2
	g.originY = hudHeight
}

// SetHighScore sets the best stored score shown in the HUD.
func (g *Game) SetHighScore(score int) {
	g.highScore = score
}

// Step applies the input gathered since the previous tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++
	if g.flashLeft > 0 {
		g.flashLeft--
		if g.flashLeft == 0 {
			g.flash = nil
		}
	}

	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionRules) {
		g.showRules = !g.showRules
	}
	if g.showRules {
		if in.Has(core.ActionCancel) || in.Has(core.ActionConfirm) {
			g.showRules = false
		}
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) && !g.finished() {
		g.paused = !g.paused
	}
	if g.paused || g.finished() {
		return core.StepResult{State: g.State()}
	}

	g.moveCursor(in)

	if in.Has(core.ActionCancel) {
		g.hasSel = false
		g.message = ""
	}

	changed := false
	if in.Has(core.ActionConfirm) {
		changed = g.activate(g.cursor) || changed
	}
	for _, click := range in.Clicks {
		if g.finished() {
			break
		}
		if p, ok := g.cellAt(click.X, click.Y); ok {
			g.cursor = p
			changed = g.activate(p) || changed
		}
	}

	return core.StepResult{State: g.State(), Changed: changed}
}

// moveCursor moves the cursor one cell, clamped to the board.
func (g *Game) moveCursor(in core.InputFrame) {
	last := g.board.Size() - 1
	switch {
	case in.Has(core.ActionUp):
		g.cursor.Row = core.Clamp(g.cursor.Row-1, 0, last)
	case in.Has(core.ActionDown):
		g.cursor.Row = core.Clamp(g.cursor.Row+1, 0, last)
	case in.Has(core.ActionLeft):
		g.cursor.Col = core.Clamp(g.cursor.Col-1, 0, last)
	case in.Has(core.ActionRight):
		g.cursor.Col = core.Clamp(g.cursor.Col+1, 0, last)
	}
}

// activate handles a confirm on p: an occupied cell becomes the selection,
// an empty cell receives the selected ball. Returns true if a turn was played.
func (g *Game) activate(p board.Position) bool {
	if g.board.Cell(p).Filled {
		g.selected = p
		g.hasSel = true
		g.message = ""
		return false
	}

	if !g.hasSel {
		g.message = "Select a ball first"
		return false
	}

	res, err := g.board.PlayTurn(g.selected, p)
	if err != nil {
		// The selection survives so the player can pick another target.
		g.message = describeMoveError(err)
		return false
	}

	g.hasSel = false
	g.message = describeTurn(res)
	if res.Cleared() > 0 {
		g.flash = append(append([]board.Position(nil), res.FirstClear.Positions...), res.SecondClear.Positions...)
		g.flashLeft = max(g.cfg.Display.FlashTicks, 1)
	}
	return true
}

// describeMoveError turns an engine error into a HUD message.
func describeMoveError(err error) string {
	switch {
	case errors.Is(err, board.ErrUnreachable):
		return "No free path to that cell"
	case errors.Is(err, board.ErrInvalidDestination):
		return "That cell is taken"
	case errors.Is(err, board.ErrInvalidSource):
		return "Select a ball first"
	case errors.Is(err, board.ErrGameOver):
		return "The game is over"
	default:
		return err.Error()
	}
}

// describeTurn summarises a completed turn for the HUD.
func describeTurn(res board.TurnResult) string {
	switch {
	case res.GameOver:
		return "The board is full"
	case len(res.Refilled) > 0:
		return fmt.Sprintf("Board cleared! +%d  New balls", res.ScoreGained)
	case res.Cleared() > 0:
		return fmt.Sprintf("Cleared %d balls  +%d", res.Cleared(), res.ScoreGained)
	default:
		return ""
	}
}

// finished reports whether the game can no longer be played: the board is
// full, or every ball has been cleared and nothing refills it.
func (g *Game) finished() bool {
	return g.board.IsGameOver() || g.board.IsEmpty()
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.board == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:    g.board.Score(),
		Turns:    g.board.Turns(),
		Cleared:  g.board.BallsCleared(),
		GameOver: g.finished(),
		Paused:   g.paused || g.tooSmall || g.showRules,
	}
}

// Seed returns the RNG seed the current game was started with.
func (g *Game) Seed() int64 {
	return g.seed
}

// Board exposes the engine for tests and tooling.
func (g *Game) Board() *board.Board {
	return g.board
}

// Controls returns the control hints for the game.
func (g *Game) Controls() string {
	return "Arrows/WASD/HJKL: Move | Enter/Space/Click: Select & move | Esc: Cancel | ?: Rules | P: Pause | Q: Quit"
}
