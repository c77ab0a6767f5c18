package generator

import (
	"errors"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/numerado/internal/clipboard"
	"github.com/abhisek/numerado/internal/randgen"
	"github.com/abhisek/numerado/internal/router"
	historyscreen "github.com/abhisek/numerado/internal/screens/history"
	"github.com/abhisek/numerado/internal/session"
)

var allFilters = randgen.Filters{IncludeEven: true, IncludeOdd: true, IncludeDecimals: true}

func newTestScreen(cfg randgen.Config, samples ...float64) (*GeneratorScreen, *session.Session, *clipboard.Memory) {
	gen := randgen.New(randgen.Options{
		Source: randgen.NewSequenceSource(samples...),
		IDs:    &randgen.SequenceIDs{Prefix: "v"},
	})
	sess := session.New(gen, cfg, session.Options{Logger: zerolog.Nop()})
	mem := &clipboard.Memory{}
	return New(sess, mem, 0), sess, mem
}

func key(s string) tea.KeyPressMsg {
	switch s {
	case "tab":
		return tea.KeyPressMsg{Code: tea.KeyTab}
	case "enter":
		return tea.KeyPressMsg{Code: tea.KeyEnter}
	case "space":
		return tea.KeyPressMsg{Code: tea.KeySpace, Text: " "}
	case "left":
		return tea.KeyPressMsg{Code: tea.KeyLeft}
	case "right":
		return tea.KeyPressMsg{Code: tea.KeyRight}
	}
	r := []rune(s)[0]
	return tea.KeyPressMsg{Code: r, Text: s}
}

// generate presses g and delivers the reveal message.
func generate(t *testing.T, s *GeneratorScreen) {
	t.Helper()
	_, cmd := s.Update(key("g"))
	require.NotNil(t, cmd)
	assert.True(t, s.busy)
	s.Update(cmd())
	assert.False(t, s.busy)
}

func TestGenerateShowsBatch(t *testing.T) {
	s, sess, _ := newTestScreen(randgen.Config{
		Format: randgen.FormatInteger, Min: 1, Max: 100, Count: 2, Filters: allFilters,
	}, 0.41, 0.0)

	generate(t, s)

	cur := sess.Current()
	require.Len(t, cur, 2)
	assert.Equal(t, "41", cur[0].Display)
	assert.Equal(t, "1", cur[1].Display)
	assert.Equal(t, 1, sess.HistoryLen())
	assert.Empty(t, s.notices)

	view := s.View(100, 30)
	assert.Contains(t, view, "41")
}

func TestGenerateIgnoredWhileBusy(t *testing.T) {
	s, sess, _ := newTestScreen(randgen.DefaultConfig(), 0.5)

	_, first := s.Update(key("g"))
	require.NotNil(t, first)
	_, second := s.Update(key("g"))
	assert.Nil(t, second)

	s.Update(first())
	assert.Equal(t, 1, sess.HistoryLen())

	// A stale reveal does nothing.
	s.Update(revealMsg{})
	assert.Equal(t, 1, sess.HistoryLen())
}

func TestRomanAdjustmentUpdatesForm(t *testing.T) {
	s, sess, _ := newTestScreen(randgen.Config{
		Format: randgen.FormatRoman, Min: 1, Max: 5000, Count: 1, Filters: allFilters,
	}, 0.0)

	generate(t, s)

	assert.Equal(t, float64(randgen.RomanMax), sess.Config().Max)
	assert.Equal(t, "3999", s.max.Value())
	require.Len(t, s.notices, 1)
	assert.Equal(t, session.LevelWarning, s.notices[0].Level)
	require.Len(t, sess.Current(), 1)
	assert.Equal(t, "I", sess.Current()[0].Display)
}

func TestFailureShowsError(t *testing.T) {
	s, sess, _ := newTestScreen(randgen.Config{
		Format: randgen.FormatInteger, Min: 1, Max: 10, Count: 1,
		Filters: randgen.Filters{IncludeDecimals: true},
	}, 0.3)

	generate(t, s)

	assert.Empty(t, sess.Current())
	assert.Equal(t, 0, sess.HistoryLen())
	require.NotEmpty(t, s.notices)
	assert.Equal(t, session.LevelError, s.notices[0].Level)
	assert.Contains(t, s.View(100, 30), "No numbers match")
}

func TestInvalidBoundsBlockGeneration(t *testing.T) {
	s, sess, _ := newTestScreen(randgen.DefaultConfig(), 0.5)
	s.min.Model.SetValue("1-2")

	_, cmd := s.Update(key("g"))

	assert.Nil(t, cmd)
	assert.False(t, s.busy)
	require.Len(t, s.notices, 1)
	assert.Equal(t, "Min and max must be numbers.", s.notices[0].Message)
	assert.Equal(t, 0, sess.HistoryLen())
}

func TestCopy(t *testing.T) {
	tests := []struct {
		name      string
		generate  bool
		clipErr   error
		wantLevel session.Level
		wantText  string
	}{
		{name: "nothing generated", wantLevel: session.LevelInfo},
		{name: "after generate", generate: true, wantLevel: session.LevelSuccess, wantText: "50"},
		{name: "clipboard failure", generate: true, clipErr: errors.New("boom"), wantLevel: session.LevelError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, _, mem := newTestScreen(randgen.DefaultConfig(), 0.5)
			mem.Err = tt.clipErr
			if tt.generate {
				generate(t, s)
			}

			s.Update(key("c"))

			require.Len(t, s.notices, 1)
			assert.Equal(t, tt.wantLevel, s.notices[0].Level)
			assert.Equal(t, tt.wantText, mem.Text)
		})
	}
}

func TestHistoryKeyPushesScreen(t *testing.T) {
	s, _, _ := newTestScreen(randgen.DefaultConfig(), 0.5)

	_, cmd := s.Update(key("h"))
	require.NotNil(t, cmd)

	push, ok := cmd().(router.PushScreenMsg)
	require.True(t, ok)
	_, ok = push.Screen.(*historyscreen.HistoryScreen)
	assert.True(t, ok)
}

func TestFocusSkipsDecimalFieldsForInteger(t *testing.T) {
	s, _, _ := newTestScreen(randgen.DefaultConfig())
	s.setFocus(fieldFormat)

	var seen []field
	for range len(s.fields()) {
		seen = append(seen, s.focus)
		s.Update(key("tab"))
	}

	assert.Equal(t, []field{fieldFormat, fieldMin, fieldMax, fieldCount, fieldEven, fieldOdd, fieldGenerate}, seen)
	assert.Equal(t, fieldFormat, s.focus)
}

func TestFormatSelectionSyncsSession(t *testing.T) {
	s, sess, _ := newTestScreen(randgen.DefaultConfig())
	s.setFocus(fieldFormat)

	s.Update(key("right"))

	assert.Equal(t, randgen.FormatDecimal, sess.Config().Format)
	assert.Contains(t, s.fields(), fieldPlaces)
	assert.Contains(t, s.fields(), fieldDecimals)
	assert.True(t, strings.Contains(s.renderSettings(60), "Decimal places"))
}

func TestControlsUpdateSession(t *testing.T) {
	s, sess, _ := newTestScreen(randgen.DefaultConfig())

	s.setFocus(fieldCount)
	s.Update(key("right"))
	s.Update(key("right"))
	s.Update(key("right"))
	assert.Equal(t, randgen.MaxCount, sess.Config().Count)

	s.setFocus(fieldEven)
	s.Update(key("space"))
	assert.False(t, sess.Config().Filters.IncludeEven)

	s.setFocus(fieldOdd)
	s.Update(key("enter"))
	assert.False(t, sess.Config().Filters.IncludeOdd)

	s.setFocus(fieldMax)
	s.Update(key("0"))
	assert.Equal(t, float64(1000), sess.Config().Max)
}

func TestButtonPress(t *testing.T) {
	s, sess, _ := newTestScreen(randgen.DefaultConfig(), 0.5)
	s.setFocus(fieldGenerate)

	_, cmd := s.Update(key("space"))
	require.NotNil(t, cmd)
	s.Update(cmd())

	assert.Equal(t, 1, sess.HistoryLen())
}

func TestCapturesInputOnNumberFields(t *testing.T) {
	s, _, _ := newTestScreen(randgen.DefaultConfig())

	assert.False(t, s.CapturesInput())

	s.setFocus(fieldMin)
	assert.True(t, s.CapturesInput())
	s.setFocus(fieldMax)
	assert.True(t, s.CapturesInput())
	s.setFocus(fieldCount)
	assert.False(t, s.CapturesInput())
}
