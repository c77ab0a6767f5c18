package app

import (
	"fmt"
	"os"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/rs/zerolog"

	"github.com/abhisek/numerado/internal/clipboard"
	"github.com/abhisek/numerado/internal/router"
	"github.com/abhisek/numerado/internal/screen"
	"github.com/abhisek/numerado/internal/screens/generator"
	"github.com/abhisek/numerado/internal/screens/welcome"
	"github.com/abhisek/numerado/internal/session"
	"github.com/abhisek/numerado/internal/ui/layout"
)

// Options holds the dependencies for the interactive app.
type Options struct {
	Session     *session.Session
	Clipboard   clipboard.Writer
	RevealDelay time.Duration

	// SkipSplash starts directly on the generator screen.
	SkipSplash bool

	Logger zerolog.Logger
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	sess   *session.Session
	log    zerolog.Logger
	width  int
	height int
}

// newAppModel creates an AppModel starting on the splash, or directly on the
// generator when SkipSplash is set.
func newAppModel(opts Options) AppModel {
	if opts.Clipboard == nil {
		opts.Clipboard = clipboard.System{}
	}
	gen := func() screen.Screen {
		return generator.New(opts.Session, opts.Clipboard, opts.RevealDelay)
	}

	var initial screen.Screen
	if opts.SkipSplash {
		initial = gen()
	} else {
		initial = welcome.New(gen)
	}
	return AppModel{
		router: router.New(initial),
		sess:   opts.Session,
		log:    opts.Logger,
	}
}

func (m AppModel) Init() tea.Cmd {
	if active := m.router.Active(); active != nil {
		return active.Init()
	}
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyPressMsg:
		switch msg.String() {
		case "q":
			if c, ok := m.router.Active().(screen.InputCapturer); ok && c.CapturesInput() {
				break
			}
			m.log.Debug().Int("history", m.sess.HistoryLen()).Msg("quit")
			return m, tea.Quit
		case "ctrl+c":
			m.log.Debug().Int("history", m.sess.HistoryLen()).Msg("quit")
			return m, tea.Quit
		case "esc":
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView(m.render())
	v.AltScreen = true
	return v
}

// render draws the full frame for the current terminal size.
func (m AppModel) render() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	if layout.IsTooSmall(m.width, m.height) {
		return layout.RenderMinSizeMessage(m.width, m.height)
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	header := layout.RenderHeader(title, m.sess.HistoryLen(), m.sess.HistoryLimit(), m.width)

	var footerHints []layout.KeyHint
	if p, ok := active.(screen.KeyHintProvider); ok {
		footerHints = p.KeyHints()
	} else {
		footerHints = []layout.KeyHint{
			{Key: "any key", Description: "Continue"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}

	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	return layout.RenderFrame(header, content, footer, m.width, m.height)
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
