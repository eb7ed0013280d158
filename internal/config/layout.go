package config

import (
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"gopkg.in/yaml.v3"
)

// Layout is a starting position loaded from a puzzle file.
//
//	name: Almost a line
//	rows:
//	  - "RRRR....."
//	  - "........."
//
// Each row uses '.' for an empty cell and a colour letter (R, B, G, Y, P,
// O, C) for a ball. The grid size is the number of rows.
type Layout struct {
	Name string   `yaml:"name"`
	Rows []string `yaml:"rows"`
}

// Size returns the grid dimension described by the layout.
func (l Layout) Size() int {
	return len(l.Rows)
}

// ParseLayout decodes and checks the shape of a puzzle file.
func ParseLayout(data []byte) (Layout, error) {
	var l Layout
	if err := yaml.Unmarshal(data, &l); err != nil {
		return Layout{}, fmt.Errorf("config: layout: %w", err)
	}

	if len(l.Rows) < 2 {
		return Layout{}, fmt.Errorf("config: layout needs at least 2 rows, got %d", len(l.Rows))
	}
	for i, row := range l.Rows {
		row = strings.TrimSpace(row)
		if n := utf8.RuneCountInString(row); n != len(l.Rows) {
			return Layout{}, fmt.Errorf("config: layout row %d has %d cells, want %d", i, n, len(l.Rows))
		}
		l.Rows[i] = strings.ToUpper(row)
	}
	return l, nil
}

// LoadLayout reads a puzzle file from disk.
func LoadLayout(path string) (Layout, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Layout{}, fmt.Errorf("config: failed to read layout %s: %w", path, err)
	}
	return ParseLayout(data)
}
