package breaker

import (
	"fmt"

	"github.com/vovakirdan/bubble-breaker/internal/core"
	"github.com/vovakirdan/bubble-breaker/internal/games/breaker/board"
)

const (
	cellWidth    = 3  // Columns per board cell: " ● "
	hudHeight    = 3  // Title and score lines above the board
	footerHeight = 3  // Message and controls below the board
	minHUDWidth  = 40 // Widest HUD line
)

// Glyphs for board cells
const (
	emptyGlyph = '·'
	flashGlyph = '✶'
)

// ballColors maps engine colours to screen colours.
var ballColors = map[board.Color]core.Color{
	board.ColorRed:    core.ColorBrightRed,
	board.ColorBlue:   core.ColorBrightBlue,
	board.ColorGreen:  core.ColorBrightGreen,
	board.ColorYellow: core.ColorBrightYellow,
	board.ColorPurple: core.ColorBrightMagenta,
	board.ColorOrange: core.ColorOrange,
	board.ColorCyan:   core.ColorBrightCyan,
}

// ScreenColor returns the screen colour used to draw balls of colour c.
func ScreenColor(c board.Color) core.Color {
	if sc, ok := ballColors[c]; ok {
		return sc
	}
	return core.ColorWhite
}

// frameSize returns the board frame dimensions including the border.
func (g *Game) frameSize() (w, h int) {
	n := board.DefaultOptions().GridSize
	if g.board != nil {
		n = g.board.Size()
	}
	return n*cellWidth + 2, n + 2
}

// cellOrigin returns the screen position of the left column of a cell.
func (g *Game) cellOrigin(p board.Position) (x, y int) {
	return g.originX + 1 + p.Col*cellWidth, g.originY + 1 + p.Row
}

// cellAt maps a screen position to the board cell under it.
func (g *Game) cellAt(x, y int) (board.Position, bool) {
	dx := x - g.originX - 1
	dy := y - g.originY - 1
	if dx < 0 || dy < 0 {
		return board.Position{}, false
	}
	p := board.P(dy, dx/cellWidth)
	if !g.board.InBounds(p) {
		return board.Position{}, false
	}
	return p, true
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	g.renderHUD(dst)
	g.renderBoard(dst)
	g.renderFooter(dst)
	g.renderOverlays(dst)
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small")
	dst.DrawTextCentered(y+1, "Please resize terminal")
}

// renderHUD draws the title, score and counters.
func (g *Game) renderHUD(dst *core.Screen) {
	title := g.Title()
	dst.DrawTextColored((g.screenW-len(title))/2, 0, title, core.ColorBrightWhite)

	best := max(g.highScore, g.board.Score())
	stats := fmt.Sprintf("Score: %d   Best: %d   Turns: %d", g.board.Score(), best, g.board.Turns())
	dst.DrawTextCentered(1, stats)
}

// renderBoard draws the frame and every cell. Empty cells the selected
// ball can reach are drawn brighter than the rest.
func (g *Game) renderBoard(dst *core.Screen) {
	w, h := g.frameSize()
	dst.DrawBoxColored(core.NewRect(g.originX, g.originY, w, h), core.ColorGray)

	flashing := make(map[board.Position]bool, len(g.flash))
	for _, p := range g.flash {
		flashing[p] = true
	}

	reachable := make(map[board.Position]bool)
	if g.hasSel && !g.finished() {
		for _, p := range g.board.ReachableFrom(g.selected) {
			reachable[p] = true
		}
	}

	glyph := g.cfg.Glyph()
	n := g.board.Size()
	for r := range n {
		for c := range n {
			p := board.P(r, c)
			x, y := g.cellOrigin(p)
			cell := g.board.Cell(p)

			mid := core.Cell{Rune: emptyGlyph, Color: core.ColorGray}
			switch {
			case cell.Filled:
				mid = core.Cell{Rune: glyph, Color: ScreenColor(cell.Color)}
			case flashing[p]:
				mid = core.Cell{Rune: flashGlyph, Color: core.ColorBrightYellow}
			case reachable[p]:
				mid = core.Cell{Rune: emptyGlyph, Color: core.ColorBrightWhite}
			}

			left := core.Cell{Rune: ' '}
			right := core.Cell{Rune: ' '}
			if g.hasSel && p == g.selected {
				left = core.Cell{Rune: '[', Color: core.ColorBrightWhite}
				right = core.Cell{Rune: ']', Color: core.ColorBrightWhite}
			}

			if p == g.cursor && !g.finished() {
				left.Reverse = true
				mid.Reverse = true
				right.Reverse = true
			}

			dst.SetCell(x, y, left)
			dst.SetCell(x+1, y, mid)
			dst.SetCell(x+2, y, right)
		}
	}
}

// renderFooter draws the status message and control hints.
func (g *Game) renderFooter(dst *core.Screen) {
	_, h := g.frameSize()
	msgY := g.originY + h

	if g.message != "" {
		dst.DrawTextColored((g.screenW-len([]rune(g.message)))/2, msgY, g.message, core.ColorYellow)
	} else if g.hasSel {
		sel := fmt.Sprintf("Selected %s ball at %s", g.board.Cell(g.selected).Color, g.selected)
		dst.DrawTextCentered(msgY, sel)
	}

	hint := "Enter: select/move  Esc: cancel  ?: rules  P: pause  Q: quit"
	dst.DrawTextColored((g.screenW-len(hint))/2, g.screenH-1, hint, core.ColorGray)
}

// renderOverlays draws the rules, pause and game over boxes.
func (g *Game) renderOverlays(dst *core.Screen) {
	w, h := g.frameSize()
	centerX := g.originX + w/2
	centerY := g.originY + h/2

	switch {
	case g.showRules:
		lines := append(RulesText(g.board.Options()), "", "Press ? or Esc to close")
		g.drawOverlay(dst, g.screenW/2, g.screenH/2, lines...)
	case g.paused:
		g.drawOverlay(dst, centerX, centerY, "PAUSED", "Press P to resume")
	case g.finished():
		title := "GAME OVER"
		if g.board.IsEmpty() {
			title = "BOARD CLEARED"
		}
		scoreStr := fmt.Sprintf("Final score: %d", g.board.Score())
		g.drawOverlay(dst, centerX, centerY, title, scoreStr, "Press R to restart")
	}
}

// drawOverlay draws a centered text box.
func (g *Game) drawOverlay(dst *core.Screen, centerX, centerY int, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		maxLen = max(maxLen, len([]rune(line)))
	}

	boxW := maxLen + 4
	boxH := len(lines) + 2
	box := core.NewRect(centerX-boxW/2, centerY-boxH/2, boxW, boxH)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box)

	for i, line := range lines {
		dst.DrawText(box.X+2, box.Y+1+i, line)
	}
}
