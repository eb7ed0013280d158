// Package config provides YAML-based game configuration loading and
// difficulty presets for Bubble Breaker.
package config

import (
	"fmt"

	"github.com/vovakirdan/bubble-breaker/internal/games/breaker/board"
)

// BreakerConfig contains all configuration for a Bubble Breaker game.
type BreakerConfig struct {
	Board   BoardConfig   `yaml:"board"`
	Palette []string      `yaml:"palette"`
	Display DisplayConfig `yaml:"display"`
}

// BoardConfig defines the rule parameters of the board.
type BoardConfig struct {
	GridSize        int  `yaml:"grid_size"`
	LineLength      int  `yaml:"line_length"`
	SpawnCount      int  `yaml:"spawn_count"`
	InitialBalls    int  `yaml:"initial_balls"`
	RefillWhenEmpty bool `yaml:"refill_when_empty"`
}

// DisplayConfig defines presentation parameters.
type DisplayConfig struct {
	BallGlyph  string `yaml:"ball_glyph"`
	FlashTicks int    `yaml:"flash_ticks"`
}

// ToOptions converts the configuration into engine options and validates them.
func (c BreakerConfig) ToOptions() (board.Options, error) {
	palette := make([]board.Color, 0, len(c.Palette))
	for _, name := range c.Palette {
		color, ok := board.ParseColor(name)
		if !ok {
			return board.Options{}, fmt.Errorf("config: unknown colour %q", name)
		}
		palette = append(palette, color)
	}

	opts := board.Options{
		GridSize:        c.Board.GridSize,
		LineLength:      c.Board.LineLength,
		SpawnCount:      c.Board.SpawnCount,
		InitialBalls:    c.Board.InitialBalls,
		Palette:         palette,
		RefillWhenEmpty: c.Board.RefillWhenEmpty,
	}
	if err := opts.Validate(); err != nil {
		return board.Options{}, fmt.Errorf("config: %w", err)
	}
	return opts, nil
}

// Glyph returns the rune used to draw a ball.
func (c BreakerConfig) Glyph() rune {
	for _, r := range c.Display.BallGlyph {
		return r
	}
	return '●'
}

// ApplyMini turns the configuration into the compact variant:
// a 7x7 board, lines of four and the first five palette colours.
func ApplyMini(cfg *BreakerConfig) {
	cfg.Board.GridSize = 7
	cfg.Board.LineLength = 4
	if cfg.Board.SpawnCount > 3 {
		cfg.Board.SpawnCount = 3
	}
	if len(cfg.Palette) > 5 {
		cfg.Palette = cfg.Palette[:5]
	}
}
