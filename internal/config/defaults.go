package config

import (
	_ "embed"
)

//go:embed defaults/breaker.yaml
var defaultBreakerYAML []byte

// DefaultBreakerConfig returns the classic rules: 9x9 board, lines of five,
// three balls per spawn, seven colours.
func DefaultBreakerConfig() BreakerConfig {
	return BreakerConfig{
		Board: BoardConfig{
			GridSize:        9,
			LineLength:      5,
			SpawnCount:      3,
			InitialBalls:    3,
			RefillWhenEmpty: false,
		},
		Palette: []string{"red", "blue", "green", "yellow", "purple", "orange", "cyan"},
		Display: DisplayConfig{
			BallGlyph:  "●",
			FlashTicks: 8,
		},
	}
}
