package session

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/abhisek/numerado/internal/clipboard"
	"github.com/abhisek/numerado/internal/history"
	"github.com/abhisek/numerado/internal/logging"
	"github.com/abhisek/numerado/internal/randgen"
)

// Options configures a Session. Zero fields fall back to defaults.
type Options struct {
	// HistoryLimit bounds retained batches. Defaults to history.DefaultLimit.
	HistoryLimit int

	// Now stamps history batches. Defaults to time.Now.
	Now func() time.Time

	Logger zerolog.Logger
}

// Outcome reports everything one Generate call produced.
type Outcome struct {
	// Validation is always set.
	Validation randgen.ValidationResult

	// Result is nil when validation rejected the configuration.
	Result *randgen.GenerationResult

	// Notices are the user-facing messages, in the order they arose.
	Notices []Notice
}

// Generated reports whether at least one value was produced.
func (o Outcome) Generated() bool {
	return o.Result != nil && len(o.Result.Values) > 0
}

// Session owns the configuration, the current result and the history for
// a single user. It is not safe for concurrent use.
type Session struct {
	gen     *randgen.Generator
	cfg     randgen.Config
	current []randgen.GeneratedValue
	history *history.History
	now     func() time.Time
	log     zerolog.Logger
}

// New creates a Session generating with gen, starting from cfg.
func New(gen *randgen.Generator, cfg randgen.Config, opts Options) *Session {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &Session{
		gen:     gen,
		cfg:     cfg.Clamped(),
		history: history.New(opts.HistoryLimit),
		now:     opts.Now,
		log:     opts.Logger,
	}
}

// Config returns the current configuration.
func (s *Session) Config() randgen.Config {
	return s.cfg
}

// SetConfig replaces the configuration, clamping count and decimal places.
func (s *Session) SetConfig(cfg randgen.Config) {
	s.cfg = cfg.Clamped()
}

// Current returns the values of the last generation. Empty after a failed one.
func (s *Session) Current() []randgen.GeneratedValue {
	out := make([]randgen.GeneratedValue, len(s.current))
	copy(out, s.current)
	return out
}

// History returns retained batches, most recent first.
func (s *Session) History() []history.Batch {
	return s.history.Batches()
}

// HistoryLen returns the number of retained batches.
func (s *Session) HistoryLen() int {
	return s.history.Len()
}

// HistoryLimit returns the maximum number of retained batches.
func (s *Session) HistoryLimit() int {
	return s.history.Limit()
}

// ClearHistory drops every retained batch.
func (s *Session) ClearHistory() {
	s.history.Clear()
}

// Generate validates the configuration and, when allowed, runs the
// generator. An adjusted configuration replaces the session's own so the
// corrected range sticks. The current result is replaced by the new batch
// (emptied on failure); non-empty batches are added to history.
func (s *Session) Generate() Outcome {
	v := randgen.Validate(s.cfg)
	out := Outcome{Validation: v}

	switch v.Outcome {
	case randgen.Invalid:
		s.log.Warn().Err(v.Reason).Msg("configuration rejected")
		out.Notices = append(out.Notices, Errorf("%s", capitalize(v.Reason.Error())))
		return out
	case randgen.Adjusted:
		s.log.Warn().Str(logging.Outcome, v.Outcome.String()).Float64("max", v.Config.Max).Msg("configuration adjusted")
		out.Notices = append(out.Notices, Warningf("Roman numerals are only supported up to %d.", randgen.RomanMax))
		s.cfg = v.Config
	}

	res := s.gen.Generate(v.Config)
	out.Result = &res

	s.log.Debug().
		Str(logging.Format, string(v.Config.Format)).
		Int(logging.Count, res.Requested).
		Int(logging.Attempts, res.Attempts).
		Stringer(logging.Status, res.Status).
		Msg("generated")

	s.current = res.Values
	switch res.Status {
	case randgen.Failure:
		s.log.Warn().Int(logging.Attempts, res.Attempts).Msg("no values satisfied the filters")
		out.Notices = append(out.Notices, Errorf("No numbers match the current filters. Adjust the filters and try again."))
	case randgen.Partial:
		s.log.Warn().Int("generated", len(res.Values)).Int(logging.Count, res.Requested).Msg("partial generation")
		out.Notices = append(out.Notices, Warningf("Only %d number(s) could be generated with the current filters.", len(res.Values)))
	}

	if len(res.Values) > 0 {
		s.history.Push(res.Values, s.now())
	}
	return out
}

// Copy places values on w, joined by ", ".
func (s *Session) Copy(w clipboard.Writer, values []randgen.GeneratedValue) Notice {
	if len(values) == 0 {
		return Infof("Nothing to copy yet.")
	}
	if err := w.WriteAll(clipboard.Join(values)); err != nil {
		s.log.Error().Err(err).Msg("copy to clipboard failed")
		n := Errorf("Could not copy to the clipboard.")
		n.Err = err
		return n
	}
	return Successf("Copied %s to the clipboard.", plural(len(values), "number", "numbers"))
}

func plural(n int, one, many string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, one)
	}
	return fmt.Sprintf("%d %s", n, many)
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	b := []byte(s)
	if b[0] >= 'a' && b[0] <= 'z' {
		b[0] -= 'a' - 'A'
	}
	return string(b) + "."
}
