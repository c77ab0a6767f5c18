package history

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/numerado/internal/clipboard"
	"github.com/abhisek/numerado/internal/randgen"
	"github.com/abhisek/numerado/internal/router"
	"github.com/abhisek/numerado/internal/session"
)

func newTestHistory(t *testing.T, batches int) (*HistoryScreen, *session.Session, *clipboard.Memory) {
	t.Helper()
	samples := make([]float64, batches)
	for i := range samples {
		samples[i] = (float64(i) + 0.5) / 100
	}
	gen := randgen.New(randgen.Options{
		Source: randgen.NewSequenceSource(samples...),
		IDs:    &randgen.SequenceIDs{Prefix: "v"},
	})
	sess := session.New(gen, randgen.DefaultConfig(), session.Options{Logger: zerolog.Nop()})
	for range batches {
		require.True(t, sess.Generate().Generated())
	}
	mem := &clipboard.Memory{}
	return New(sess, mem), sess, mem
}

func press(s *HistoryScreen, k string) tea.Cmd {
	var msg tea.KeyPressMsg
	switch k {
	case "up":
		msg = tea.KeyPressMsg{Code: tea.KeyUp}
	case "down":
		msg = tea.KeyPressMsg{Code: tea.KeyDown}
	case "esc":
		msg = tea.KeyPressMsg{Code: tea.KeyEscape}
	default:
		msg = tea.KeyPressMsg{Code: []rune(k)[0], Text: k}
	}
	_, cmd := s.Update(msg)
	return cmd
}

func TestEmptyHistory(t *testing.T) {
	s, _, mem := newTestHistory(t, 0)

	assert.Contains(t, s.View(80, 24), "No numbers generated yet.")

	press(s, "c")
	require.NotNil(t, s.notice)
	assert.Equal(t, session.LevelInfo, s.notice.Level)
	assert.Equal(t, 0, mem.Writes)
}

func TestNavigationStaysInBounds(t *testing.T) {
	s, _, _ := newTestHistory(t, 3)

	press(s, "up")
	assert.Equal(t, 0, s.Selected())

	press(s, "down")
	press(s, "down")
	press(s, "down")
	assert.Equal(t, 2, s.Selected())

	press(s, "k")
	assert.Equal(t, 1, s.Selected())
}

func TestCopySelectedBatch(t *testing.T) {
	s, sess, mem := newTestHistory(t, 3)
	batches := sess.History()

	press(s, "down")
	press(s, "c")

	require.NotNil(t, s.notice)
	assert.Equal(t, session.LevelSuccess, s.notice.Level)
	assert.Equal(t, batches[1].Values[0].Display, mem.Text)
}

func TestMostRecentFirst(t *testing.T) {
	s, _, _ := newTestHistory(t, 2)

	// Samples 0.005 then 0.015 over 1..100 floor to 1 and 2.
	assert.Equal(t, "2", s.batches[0].Values[0].Display)
	assert.Equal(t, "1", s.batches[1].Values[0].Display)
}

func TestClear(t *testing.T) {
	s, sess, _ := newTestHistory(t, 2)

	press(s, "x")

	assert.Equal(t, 0, sess.HistoryLen())
	assert.Empty(t, s.batches)
	assert.Contains(t, s.View(80, 24), "History cleared.")
}

func TestEscPops(t *testing.T) {
	s, _, _ := newTestHistory(t, 1)

	cmd := press(s, "esc")
	require.NotNil(t, cmd)
	_, ok := cmd().(router.PopScreenMsg)
	assert.True(t, ok)
}
