package components

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/numerado/internal/ui/theme"
)

// Button is a pressable action with a busy state.
type Button struct {
	Label     string
	BusyLabel string
	Focused   bool
	Busy      bool
	OnPress   func() tea.Cmd
}

// NewButton creates a button.
func NewButton(label, busyLabel string, onPress func() tea.Cmd) Button {
	return Button{
		Label:     label,
		BusyLabel: busyLabel,
		OnPress:   onPress,
	}
}

// Press runs OnPress unless the button is busy.
func (b Button) Press() tea.Cmd {
	if b.Busy || b.OnPress == nil {
		return nil
	}
	return b.OnPress()
}

// Update presses the button on enter or space while focused.
func (b Button) Update(msg tea.Msg) (Button, tea.Cmd) {
	if !b.Focused {
		return b, nil
	}
	if kmsg, ok := msg.(tea.KeyPressMsg); ok {
		switch kmsg.String() {
		case "enter", "space", " ":
			return b, b.Press()
		}
	}
	return b, nil
}

// View renders the button.
func (b Button) View() string {
	if b.Busy {
		return theme.ButtonBusy.Render("  " + b.BusyLabel + " ")
	}
	label := "  ▸ " + b.Label + " "
	if b.Focused {
		return theme.ButtonActive.Render(label)
	}
	return theme.ButtonInactive.Render(label)
}
