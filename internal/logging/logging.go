package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
)

const (
	Format   = "format"
	Count    = "count"
	Status   = "status"
	Attempts = "attempts"
	Outcome  = "outcome"
)

// Config controls log output.
type Config struct {
	JSON  bool   `yaml:"json" mapstructure:"json"`
	Level string `yaml:"level" mapstructure:"level" validate:"omitempty,oneof=trace debug info warn error fatal panic disabled"`

	// File, when set, receives logs instead of the writer passed to New.
	File string `yaml:"file" mapstructure:"file"`
}

// New builds a logger writing to w (or cfg.File). The returned closer must
// be called when logging to a file; it is a no-op otherwise.
func New(cfg Config, w io.Writer, app string) (zerolog.Logger, func() error, error) {
	closer := func() error { return nil }

	if cfg.File != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.File), 0o755); err != nil {
			return zerolog.Nop(), closer, fmt.Errorf("create log dir: %w", err)
		}
		f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return zerolog.Nop(), closer, fmt.Errorf("open log file: %w", err)
		}
		w = f
		closer = f.Close
	}

	return create(cfg, w, app), closer, nil
}

func create(cfg Config, w io.Writer, app string) zerolog.Logger {
	var logger zerolog.Logger
	if cfg.JSON {
		logger = zerolog.New(w)
	} else {
		logger = zerolog.New(zerolog.ConsoleWriter{
			Out:        w,
			TimeFormat: time.RFC3339,
			NoColor:    cfg.File != "",
		})
	}

	lvl, err := zerolog.ParseLevel(cfg.Level)
	if err != nil || cfg.Level == "" {
		lvl = zerolog.InfoLevel
	}

	l := logger.Level(lvl).With().Timestamp()
	if app != "" {
		l = l.Str("app", app)
	}
	return l.Logger()
}
