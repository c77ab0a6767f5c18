package components

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/numerado/internal/ui/theme"
)

// Toggle is an on/off switch.
type Toggle struct {
	Label   string
	On      bool
	Focused bool
}

// NewToggle creates a toggle.
func NewToggle(label string, on bool) Toggle {
	return Toggle{Label: label, On: on}
}

// Update flips the switch on space or enter while focused.
func (t Toggle) Update(msg tea.Msg) (Toggle, tea.Cmd) {
	if !t.Focused {
		return t, nil
	}
	if kmsg, ok := msg.(tea.KeyPressMsg); ok {
		switch kmsg.String() {
		case "space", " ", "enter":
			t.On = !t.On
		}
	}
	return t, nil
}

// View renders the switch.
func (t Toggle) View() string {
	mark := theme.Off.Render("✗")
	state := theme.Off.Render("off")
	if t.On {
		mark = theme.On.Render("✓")
		state = theme.On.Render("on ")
	}

	label := theme.Unselected.Render(t.Label)
	if t.Focused {
		label = theme.Selected.Render(t.Label)
	}
	return mark + " " + label + "  " + state
}
