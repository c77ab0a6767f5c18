package components

import (
	"strconv"
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/numerado/internal/ui/theme"
)

// NumberInput wraps bubbles/textinput for signed decimal entry.
type NumberInput struct {
	Label string
	Model textinput.Model
}

// NewNumberInput creates an unfocused input holding value.
func NewNumberInput(label string, value float64) NumberInput {
	ti := textinput.New()
	ti.Placeholder = "0"
	ti.CharLimit = 16
	ti.Prompt = ""
	ti.SetValue(strconv.FormatFloat(value, 'f', -1, 64))

	return NumberInput{Label: label, Model: ti}
}

// Focus gives the input the cursor.
func (n *NumberInput) Focus() tea.Cmd {
	return n.Model.Focus()
}

// Blur removes the cursor.
func (n *NumberInput) Blur() {
	n.Model.Blur()
}

// Focused reports whether the input has the cursor.
func (n NumberInput) Focused() bool {
	return n.Model.Focused()
}

// Update forwards messages to the text input, dropping printable keys that
// cannot appear in a number.
func (n NumberInput) Update(msg tea.Msg) (NumberInput, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyPressMsg); ok {
		for _, r := range kmsg.Text {
			if !isNumberRune(r) {
				return n, nil
			}
		}
	}

	var cmd tea.Cmd
	n.Model, cmd = n.Model.Update(msg)
	return n, cmd
}

// View renders the label and the input.
func (n NumberInput) View() string {
	label := theme.Label.Render(n.Label)
	field := n.Model.View()
	if _, err := n.Float(); err != nil && n.Value() != "" {
		field += " " + lipgloss.NewStyle().Foreground(theme.Error).Render("✗")
	}
	return label + "  " + field
}

// Value returns the raw text.
func (n NumberInput) Value() string {
	return n.Model.Value()
}

// SetValue replaces the text with value.
func (n *NumberInput) SetValue(value float64) {
	n.Model.SetValue(strconv.FormatFloat(value, 'f', -1, 64))
}

// Float parses the text. An empty field reads as 0.
func (n NumberInput) Float() (float64, error) {
	s := strings.TrimSpace(n.Model.Value())
	if s == "" || s == "-" {
		return 0, nil
	}
	return strconv.ParseFloat(s, 64)
}

func isNumberRune(r rune) bool {
	return (r >= '0' && r <= '9') || r == '-' || r == '.'
}
