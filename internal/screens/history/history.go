package history

import (
	"fmt"
	"image/color"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/numerado/internal/clipboard"
	"github.com/abhisek/numerado/internal/history"
	"github.com/abhisek/numerado/internal/randgen"
	"github.com/abhisek/numerado/internal/router"
	"github.com/abhisek/numerado/internal/screen"
	"github.com/abhisek/numerado/internal/session"
	"github.com/abhisek/numerado/internal/ui/layout"
	"github.com/abhisek/numerado/internal/ui/theme"
)

// HistoryScreen lists recent batches, most recent first.
type HistoryScreen struct {
	sess     *session.Session
	clip     clipboard.Writer
	batches  []history.Batch
	selected int
	notice   *session.Notice
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

// New creates a HistoryScreen over sess's history.
func New(sess *session.Session, clip clipboard.Writer) *HistoryScreen {
	return &HistoryScreen{
		sess:    sess,
		clip:    clip,
		batches: sess.History(),
	}
}

func (s *HistoryScreen) Init() tea.Cmd {
	return nil
}

func (s *HistoryScreen) Title() string {
	return "History"
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "c", Description: "Copy"},
		{Key: "x", Description: "Clear"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return s, nil
	}

	switch kmsg.String() {
	case "esc":
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	case "up", "k":
		if s.selected > 0 {
			s.selected--
		}
	case "down", "j":
		if s.selected < len(s.batches)-1 {
			s.selected++
		}
	case "c", "enter":
		n := s.sess.Copy(s.clip, s.selectedValues())
		s.notice = &n
	case "x":
		s.sess.ClearHistory()
		s.batches = nil
		s.selected = 0
		n := session.Infof("History cleared.")
		s.notice = &n
	}
	return s, nil
}

// Selected returns the index of the highlighted batch.
func (s *HistoryScreen) Selected() int {
	return s.selected
}

func (s *HistoryScreen) selectedValues() []randgen.GeneratedValue {
	if s.selected < 0 || s.selected >= len(s.batches) {
		return nil
	}
	return s.batches[s.selected].Values
}

func (s *HistoryScreen) View(width, height int) string {
	if len(s.batches) == 0 {
		msg := lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  No numbers generated yet.")
		if s.notice != nil {
			msg += "\n\n" + lipgloss.PlaceHorizontal(width, lipgloss.Center, renderNotice(*s.notice))
		}
		return msg
	}

	var b strings.Builder
	b.WriteString("\n")

	for i, batch := range s.batches {
		parts := make([]string, len(batch.Values))
		for j, v := range batch.Values {
			parts[j] = v.Display
		}

		prefix := "  "
		if i == s.selected {
			prefix = "> "
		}
		line := fmt.Sprintf("%s%2d.  %s  %s",
			prefix, i+1, batch.GeneratedAt.Format("15:04:05"), strings.Join(parts, clipboard.Separator))

		style := theme.Body
		if i == s.selected {
			style = theme.Selected
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(line)))
		b.WriteString("\n")
	}

	if s.notice != nil {
		b.WriteString("\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, renderNotice(*s.notice)))
	}

	return b.String()
}

func renderNotice(n session.Notice) string {
	var c color.Color = theme.TextDim
	switch n.Level {
	case session.LevelSuccess:
		c = theme.Success
	case session.LevelWarning:
		c = theme.Warning
	case session.LevelError:
		c = theme.Error
	}
	return lipgloss.NewStyle().Foreground(c).Render(n.Message)
}
