package config

import "fmt"

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParseDifficulty converts a CLI value to a preset. The empty string
// selects no preset.
func ParseDifficulty(s string) (DifficultyPreset, error) {
	switch DifficultyPreset(s) {
	case "":
		return "", nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return DifficultyPreset(s), nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal or hard)", s)
	}
}

// allColours lists every colour name the engine knows, in palette order.
var allColours = []string{"red", "blue", "green", "yellow", "purple", "orange", "cyan"}

// ApplyBreakerPreset modifies the config based on a difficulty preset.
// Fewer colours make lines easier to build; more balls per spawn fill the
// board faster. Normal keeps the loaded values.
func ApplyBreakerPreset(cfg *BreakerConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		if len(cfg.Palette) > 5 {
			cfg.Palette = cfg.Palette[:5]
		}
	case DifficultyHard:
		cfg.Palette = append([]string(nil), allColours...)
		cfg.Board.SpawnCount = 4
	}
}
