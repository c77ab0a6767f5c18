package components

import (
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/numerado/internal/ui/theme"
)

// Selector is a horizontal radio group.
type Selector struct {
	Label    string
	Options  []string
	Selected int
	Focused  bool
}

// NewSelector creates a selector with selected clamped to the options.
func NewSelector(label string, options []string, selected int) Selector {
	if selected < 0 || selected >= len(options) {
		selected = 0
	}
	return Selector{Label: label, Options: options, Selected: selected}
}

// Update cycles the choice with left/right while focused.
func (s Selector) Update(msg tea.Msg) (Selector, tea.Cmd) {
	if !s.Focused || len(s.Options) == 0 {
		return s, nil
	}
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return s, nil
	}

	switch kmsg.String() {
	case "left":
		s.Selected = (s.Selected - 1 + len(s.Options)) % len(s.Options)
	case "right", "space", " ":
		s.Selected = (s.Selected + 1) % len(s.Options)
	}
	return s, nil
}

// View renders every option with the chosen one marked.
func (s Selector) View() string {
	label := theme.Label.Render(s.Label)
	if s.Focused {
		label = theme.Selected.Render(s.Label)
	}

	parts := make([]string, len(s.Options))
	for i, opt := range s.Options {
		if i == s.Selected {
			parts[i] = theme.Selected.Render("◉ " + opt)
		} else {
			parts[i] = theme.Unselected.Render("○ " + opt)
		}
	}
	return label + "  " + strings.Join(parts, "  ")
}
