package components

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/numerado/internal/ui/theme"
)

// Stepper picks an integer in [Min, Max] with left/right, drawn as a track.
type Stepper struct {
	Label   string
	Value   int
	Min     int
	Max     int
	Width   int
	Focused bool
}

// NewStepper creates a stepper with value clamped into [lo, hi].
func NewStepper(label string, value, lo, hi, width int) Stepper {
	s := Stepper{Label: label, Min: lo, Max: hi, Width: width}
	s.Set(value)
	return s
}

// Set clamps and stores v.
func (s *Stepper) Set(v int) {
	s.Value = min(max(v, s.Min), s.Max)
}

// Update moves the value with left/right while focused.
func (s Stepper) Update(msg tea.Msg) (Stepper, tea.Cmd) {
	if !s.Focused {
		return s, nil
	}
	if kmsg, ok := msg.(tea.KeyPressMsg); ok {
		switch kmsg.String() {
		case "left", "-":
			s.Set(s.Value - 1)
		case "right", "+", "=":
			s.Set(s.Value + 1)
		case "home":
			s.Set(s.Min)
		case "end":
			s.Set(s.Max)
		}
	}
	return s, nil
}

// Fraction returns the value's position in the range, 0 to 1.
func (s Stepper) Fraction() float64 {
	if s.Max <= s.Min {
		return 1
	}
	return float64(s.Value-s.Min) / float64(s.Max-s.Min)
}

// View renders label, track and value.
func (s Stepper) View() string {
	label := theme.Label.Render(s.Label)
	if s.Focused {
		label = theme.Selected.Render(s.Label)
	}
	label += "  "

	valueStr := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(fmt.Sprintf("  %d", s.Value))

	trackWidth := s.Width - lipgloss.Width(label) - lipgloss.Width(valueStr)
	if trackWidth < 4 {
		trackWidth = 4
	}

	filled := int(float64(trackWidth) * s.Fraction())
	filled = min(max(filled, 0), trackWidth)

	track := theme.TrackFilled.Render(strings.Repeat(" ", filled)) +
		theme.TrackEmpty.Render(strings.Repeat(" ", trackWidth-filled))

	return label + track + valueStr
}
