package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/numerado/internal/ui/layout"
)

// Screen is one full-content view managed by the router.
type Screen interface {
	// Init returns the command to run when the screen opens.
	Init() tea.Cmd

	// Update handles a message and returns the (possibly replaced) screen.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the content area between header and footer.
	View(width, height int) string

	// Title is shown in the header.
	Title() string
}

// KeyHintProvider lets a screen replace the default footer hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}

// InputCapturer is implemented by screens with editable fields. While
// CapturesInput is true the app forwards single-letter keys such as q to the
// screen instead of treating them as global shortcuts.
type InputCapturer interface {
	CapturesInput() bool
}
