package clipboard

import (
	"errors"
	"strings"

	"github.com/atotto/clipboard"

	"github.com/abhisek/numerado/internal/randgen"
)

// Separator joins values in copied text.
const Separator = ", "

// ErrUnavailable is returned when no system clipboard utility is present.
var ErrUnavailable = errors.New("system clipboard is not available")

// Writer places text on a clipboard.
type Writer interface {
	WriteAll(text string) error
}

// System writes to the OS clipboard.
type System struct{}

func (System) WriteAll(text string) error {
	if clipboard.Unsupported {
		return ErrUnavailable
	}
	return clipboard.WriteAll(text)
}

// Join renders values the way they are copied: display strings separated by ", ".
func Join(values []randgen.GeneratedValue) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = v.Display
	}
	return strings.Join(parts, Separator)
}

// Memory is an in-process Writer, used when the OS clipboard is unavailable
// and in tests.
type Memory struct {
	Text   string
	Writes int
	Err    error
}

func (m *Memory) WriteAll(text string) error {
	if m.Err != nil {
		return m.Err
	}
	m.Text = text
	m.Writes++
	return nil
}
