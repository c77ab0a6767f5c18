package generator

import (
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/numerado/internal/clipboard"
	"github.com/abhisek/numerado/internal/randgen"
	"github.com/abhisek/numerado/internal/router"
	"github.com/abhisek/numerado/internal/screen"
	historyscreen "github.com/abhisek/numerado/internal/screens/history"
	"github.com/abhisek/numerado/internal/session"
	"github.com/abhisek/numerado/internal/ui/components"
	"github.com/abhisek/numerado/internal/ui/layout"
)

type field int

const (
	fieldFormat field = iota
	fieldMin
	fieldMax
	fieldCount
	fieldPlaces
	fieldEven
	fieldOdd
	fieldDecimals
	fieldGenerate
)

// GeneratorScreen is the main screen: configuration controls, the generate
// button and the current result.
type GeneratorScreen struct {
	sess        *session.Session
	clip        clipboard.Writer
	revealDelay time.Duration

	format   components.Selector
	min      components.NumberInput
	max      components.NumberInput
	count    components.Stepper
	places   components.Stepper
	even     components.Toggle
	odd      components.Toggle
	decimals components.Toggle
	button   components.Button

	focus   field
	busy    bool
	badNum  bool
	notices []session.Notice
}

var _ screen.Screen = (*GeneratorScreen)(nil)
var _ screen.KeyHintProvider = (*GeneratorScreen)(nil)
var _ screen.InputCapturer = (*GeneratorScreen)(nil)

// New creates a GeneratorScreen editing sess's configuration. revealDelay is
// the pause between pressing generate and showing the batch.
func New(sess *session.Session, clip clipboard.Writer, revealDelay time.Duration) *GeneratorScreen {
	cfg := sess.Config()

	names := make([]string, 0, len(randgen.Formats()))
	selected := 0
	for i, f := range randgen.Formats() {
		names = append(names, f.DisplayName())
		if f == cfg.Format {
			selected = i
		}
	}

	s := &GeneratorScreen{
		sess:        sess,
		clip:        clip,
		revealDelay: revealDelay,
		format:      components.NewSelector("Format", names, selected),
		min:         components.NewNumberInput("Min", cfg.Min),
		max:         components.NewNumberInput("Max", cfg.Max),
		count:       components.NewStepper("Count", cfg.Count, randgen.MinCount, randgen.MaxCount, 40),
		places:      components.NewStepper("Decimal places", cfg.DecimalPlaces, randgen.MinDecimalPlaces, randgen.MaxDecimalPlaces, 40),
		even:        components.NewToggle("Even numbers", cfg.Filters.IncludeEven),
		odd:         components.NewToggle("Odd numbers", cfg.Filters.IncludeOdd),
		decimals:    components.NewToggle("Decimal numbers", cfg.Filters.IncludeDecimals),
	}
	s.button = components.NewButton("Generate", "Generating...", s.generate)
	s.setFocus(fieldGenerate)
	return s
}

func (s *GeneratorScreen) Init() tea.Cmd {
	return nil
}

func (s *GeneratorScreen) Title() string {
	return "Generator"
}

func (s *GeneratorScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Tab", Description: "Next field"},
		{Key: "←→", Description: "Adjust"},
		{Key: "g", Description: "Generate"},
		{Key: "c", Description: "Copy"},
		{Key: "h", Description: "History"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

// CapturesInput reports whether a number field has focus.
func (s *GeneratorScreen) CapturesInput() bool {
	return s.focus == fieldMin || s.focus == fieldMax
}

func (s *GeneratorScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case revealMsg:
		return s, s.reveal()

	case tea.KeyPressMsg:
		return s.handleKey(msg)
	}

	// Cursor blink and other input plumbing.
	switch s.focus {
	case fieldMin:
		var cmd tea.Cmd
		s.min, cmd = s.min.Update(msg)
		return s, cmd
	case fieldMax:
		var cmd tea.Cmd
		s.max, cmd = s.max.Update(msg)
		return s, cmd
	}
	return s, nil
}

func (s *GeneratorScreen) handleKey(msg tea.KeyPressMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "tab", "down":
		return s, s.setFocus(s.step(1))
	case "shift+tab", "up":
		return s, s.setFocus(s.step(-1))
	case "g":
		return s, s.generate()
	case "c":
		s.notices = []session.Notice{s.sess.Copy(s.clip, s.sess.Current())}
		return s, nil
	case "h":
		next := historyscreen.New(s.sess, s.clip)
		return s, func() tea.Msg { return router.PushScreenMsg{Screen: next} }
	case "enter":
		switch s.focus {
		case fieldEven, fieldOdd, fieldDecimals:
			// Toggles flip on enter.
		default:
			return s, s.generate()
		}
	}

	var cmd tea.Cmd
	switch s.focus {
	case fieldFormat:
		s.format, cmd = s.format.Update(msg)
	case fieldMin:
		s.min, cmd = s.min.Update(msg)
	case fieldMax:
		s.max, cmd = s.max.Update(msg)
	case fieldCount:
		s.count, cmd = s.count.Update(msg)
	case fieldPlaces:
		s.places, cmd = s.places.Update(msg)
	case fieldEven:
		s.even, cmd = s.even.Update(msg)
	case fieldOdd:
		s.odd, cmd = s.odd.Update(msg)
	case fieldDecimals:
		s.decimals, cmd = s.decimals.Update(msg)
	case fieldGenerate:
		s.button, cmd = s.button.Update(msg)
	}
	s.syncConfig()
	return s, cmd
}

// fields lists the focusable fields for the selected format. Decimal places
// and the decimals filter only apply to decimal output.
func (s *GeneratorScreen) fields() []field {
	out := []field{fieldFormat, fieldMin, fieldMax, fieldCount}
	decimal := s.selectedFormat() == randgen.FormatDecimal
	if decimal {
		out = append(out, fieldPlaces)
	}
	out = append(out, fieldEven, fieldOdd)
	if decimal {
		out = append(out, fieldDecimals)
	}
	return append(out, fieldGenerate)
}

func (s *GeneratorScreen) step(delta int) field {
	fs := s.fields()
	idx := 0
	for i, f := range fs {
		if f == s.focus {
			idx = i
			break
		}
	}
	idx = (idx + delta + len(fs)) % len(fs)
	return fs[idx]
}

func (s *GeneratorScreen) setFocus(f field) tea.Cmd {
	s.focus = f
	s.format.Focused = f == fieldFormat
	s.count.Focused = f == fieldCount
	s.places.Focused = f == fieldPlaces
	s.even.Focused = f == fieldEven
	s.odd.Focused = f == fieldOdd
	s.decimals.Focused = f == fieldDecimals
	s.button.Focused = f == fieldGenerate

	s.min.Blur()
	s.max.Blur()
	switch f {
	case fieldMin:
		return s.min.Focus()
	case fieldMax:
		return s.max.Focus()
	}
	return nil
}

func (s *GeneratorScreen) selectedFormat() randgen.Format {
	formats := randgen.Formats()
	if s.format.Selected < 0 || s.format.Selected >= len(formats) {
		return randgen.FormatInteger
	}
	return formats[s.format.Selected]
}

// syncConfig pushes the widget state into the session. Unparseable bounds
// keep the session's previous values and mark the form as invalid.
func (s *GeneratorScreen) syncConfig() {
	cfg := s.sess.Config()
	cfg.Format = s.selectedFormat()
	cfg.Count = s.count.Value
	cfg.DecimalPlaces = s.places.Value
	cfg.Filters = randgen.Filters{
		IncludeEven:     s.even.On,
		IncludeOdd:      s.odd.On,
		IncludeDecimals: s.decimals.On,
	}

	lo, errLo := s.min.Float()
	hi, errHi := s.max.Float()
	s.badNum = errLo != nil || errHi != nil
	if !s.badNum {
		cfg.Min, cfg.Max = lo, hi
	}
	s.sess.SetConfig(cfg)
}

func (s *GeneratorScreen) generate() tea.Cmd {
	if s.busy {
		return nil
	}
	s.syncConfig()
	if s.badNum {
		s.notices = []session.Notice{session.Errorf("Min and max must be numbers.")}
		return nil
	}

	s.busy = true
	s.notices = nil
	if s.revealDelay <= 0 {
		return func() tea.Msg { return revealMsg(time.Now()) }
	}
	return tea.Tick(s.revealDelay, func(t time.Time) tea.Msg {
		return revealMsg(t)
	})
}

func (s *GeneratorScreen) reveal() tea.Cmd {
	if !s.busy {
		return nil
	}
	s.busy = false

	out := s.sess.Generate()
	s.notices = out.Notices
	if out.Validation.Outcome == randgen.Adjusted {
		// The session keeps the corrected range; mirror it in the form.
		cfg := s.sess.Config()
		s.min.SetValue(cfg.Min)
		s.max.SetValue(cfg.Max)
	}
	return nil
}
