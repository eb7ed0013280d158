package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/bubble-breaker/internal/games/breaker"
	"github.com/vovakirdan/bubble-breaker/internal/games/breaker/board"
)

var (
	rulesBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(1, 2)
	rulesTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229"))
	rulesHintStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

// RulesView renders the rules for the default board centred in the given
// area.
func RulesView(width, height int) string {
	body := strings.Join(breaker.RulesText(board.DefaultOptions()), "\n")

	content := lipgloss.JoinVertical(lipgloss.Left,
		rulesTitleStyle.Render("HOW TO PLAY"),
		"",
		body,
		"",
		rulesHintStyle.Render("? or Esc: back"),
	)

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, rulesBoxStyle.Render(content))
}
