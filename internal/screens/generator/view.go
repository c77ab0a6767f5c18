package generator

import (
	"image/color"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/numerado/internal/randgen"
	"github.com/abhisek/numerado/internal/session"
	"github.com/abhisek/numerado/internal/ui/components"
	"github.com/abhisek/numerado/internal/ui/layout"
	"github.com/abhisek/numerado/internal/ui/theme"
)

func (s *GeneratorScreen) View(width, height int) string {
	cw := components.ContentWidth(width)

	var displays []string
	for _, v := range s.sess.Current() {
		displays = append(displays, v.Display)
	}
	placeholder := "Press g to generate"
	if s.busy {
		placeholder = "..."
		displays = nil
	}

	sections := []string{
		components.ResultCard(displays, placeholder, cw),
		"",
	}

	if layout.IsCompactWidth(width) {
		sections = append(sections,
			components.Panel(s.renderSettings(cw-6), cw, s.settingsFocused()),
			components.Panel(s.renderFilters(), cw, s.filtersFocused()),
		)
	} else {
		half := (cw - 2) / 2
		sections = append(sections, lipgloss.JoinHorizontal(lipgloss.Top,
			components.Panel(s.renderSettings(half-6), half, s.settingsFocused()),
			"  ",
			components.Panel(s.renderFilters(), half, s.filtersFocused()),
		))
	}

	btn := s.button
	btn.Busy = s.busy
	sections = append(sections, "", btn.View())

	if len(s.notices) > 0 {
		sections = append(sections, "")
		for _, n := range s.notices {
			sections = append(sections, renderNotice(n))
		}
	}

	content := lipgloss.JoinVertical(lipgloss.Center, sections...)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (s *GeneratorScreen) renderSettings(inner int) string {
	count := s.count
	count.Width = inner
	places := s.places
	places.Width = inner

	lines := []string{
		theme.Title.Render("Settings"),
		"",
		s.format.View(),
		s.min.View(),
		s.max.View(),
		count.View(),
	}
	if s.selectedFormat() == randgen.FormatDecimal {
		lines = append(lines, places.View())
	}
	if s.badNum {
		lines = append(lines, lipgloss.NewStyle().Foreground(theme.Error).Render("Min and max must be numbers."))
	}
	return strings.Join(lines, "\n")
}

func (s *GeneratorScreen) renderFilters() string {
	lines := []string{
		theme.Title.Render("Filters"),
		"",
		s.even.View(),
		s.odd.View(),
	}
	if s.selectedFormat() == randgen.FormatDecimal {
		lines = append(lines, s.decimals.View())
	}
	return strings.Join(lines, "\n")
}

func (s *GeneratorScreen) settingsFocused() bool {
	switch s.focus {
	case fieldFormat, fieldMin, fieldMax, fieldCount, fieldPlaces:
		return true
	}
	return false
}

func (s *GeneratorScreen) filtersFocused() bool {
	switch s.focus {
	case fieldEven, fieldOdd, fieldDecimals:
		return true
	}
	return false
}

func renderNotice(n session.Notice) string {
	return lipgloss.NewStyle().Foreground(noticeColor(n.Level)).Render(n.Message)
}

func noticeColor(l session.Level) color.Color {
	switch l {
	case session.LevelSuccess:
		return theme.Success
	case session.LevelWarning:
		return theme.Warning
	case session.LevelError:
		return theme.Error
	default:
		return theme.TextDim
	}
}
