package components

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/numerado/internal/ui/theme"
)

// ContentWidth returns the inner width shared by every panel on a screen.
func ContentWidth(frameWidth int) int {
	// Frame border (2) + inner padding (4)
	w := frameWidth - 6
	if w > 72 {
		w = 72
	}
	if w < 24 {
		w = 24
	}
	return w
}

// Panel wraps content in a rounded card of width cw, highlighted when focused.
func Panel(content string, cw int, focused bool) string {
	style := theme.Card
	if focused {
		style = theme.FocusedCard
	}
	return style.Width(cw).Render(content)
}

// ResultCard renders generated numbers side by side, centered in a card.
// An empty slice renders the placeholder instead.
func ResultCard(values []string, placeholder string, cw int) string {
	var body string
	if len(values) == 0 {
		body = theme.Hint.Render(placeholder)
	} else {
		chips := make([]string, 0, len(values)*2)
		for i, v := range values {
			if i > 0 {
				chips = append(chips, "  ")
			}
			chips = append(chips, theme.Number.Render(v))
		}
		body = lipgloss.JoinHorizontal(lipgloss.Center, chips...)
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Primary).
		Width(cw).
		Align(lipgloss.Center).
		Padding(1, 2).
		Render(body)
}
