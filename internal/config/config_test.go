package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/abhisek/numerado/internal/randgen"
)

func TestGet_Defaults(t *testing.T) {
	r := require.New(t)
	conf, err := Get()
	r.NoError(err)

	r.Equal("info", conf.Log.Level)
	r.False(conf.Log.JSON)
	r.Equal("integer", conf.Generator.Format)
	r.EqualValues(1, conf.Generator.Min)
	r.EqualValues(100, conf.Generator.Max)
	r.Equal(1, conf.Generator.Count)
	r.Equal(2, conf.Generator.DecimalPlaces)
	r.True(conf.Generator.Filters.IncludeEven)
	r.True(conf.Generator.Filters.IncludeOdd)
	r.True(conf.Generator.Filters.IncludeDecimals)
	r.Equal("legacy", conf.Generator.Rounding)
	r.Equal(400*time.Millisecond, conf.UI.RevealDelay)

	cfg, err := conf.Generator.RandConfig()
	r.NoError(err)
	r.Equal(randgen.DefaultConfig(), cfg)
}

func TestGet_OverrideFile(t *testing.T) {
	r := require.New(t)
	path := filepath.Join(t.TempDir(), "config.yaml")
	r.NoError(os.WriteFile(path, []byte(`
generator:
  format: roman
  max: 50
  filters:
    includeEven: false
ui:
  revealDelay: 0s
`), 0o644))

	conf, err := Get(Path(path))
	r.NoError(err)

	r.Equal("roman", conf.Generator.Format)
	r.EqualValues(50, conf.Generator.Max)
	r.EqualValues(1, conf.Generator.Min)
	r.False(conf.Generator.Filters.IncludeEven)
	r.True(conf.Generator.Filters.IncludeOdd)
	r.Zero(conf.UI.RevealDelay)
}

func TestGet_MissingFileIsSkipped(t *testing.T) {
	conf, err := Get(Path(filepath.Join(t.TempDir(), "absent.yaml")))
	require.NoError(t, err)
	require.Equal(t, "integer", conf.Generator.Format)
}

func TestGet_Reader(t *testing.T) {
	conf, err := Get(Reader(strings.NewReader("generator:\n  count: 9\n  decimalPlaces: -3\n"), "inline"))
	require.NoError(t, err)

	cfg, err := conf.Generator.RandConfig()
	require.NoError(t, err)
	require.Equal(t, randgen.MaxCount, cfg.Count)
	require.Equal(t, randgen.MinDecimalPlaces, cfg.DecimalPlaces)
}

func TestGet_Env(t *testing.T) {
	t.Setenv("NUMERADO_GENERATOR_MAX", "55")
	t.Setenv("NUMERADO_LOG_LEVEL", "debug")

	conf, err := Get()
	require.NoError(t, err)
	require.EqualValues(t, 55, conf.Generator.Max)
	require.Equal(t, "debug", conf.Log.Level)
}

func TestGet_RejectsUnknownEnums(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"format", "generator:\n  format: hex\n"},
		{"rounding", "generator:\n  rounding: banker\n"},
		{"log level", "log:\n  level: loud\n"},
		{"negative delay", "ui:\n  revealDelay: -1s\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Get(Reader(strings.NewReader(tt.yaml), tt.name))
			require.Error(t, err)
		})
	}
}

func TestNewGenerator(t *testing.T) {
	conf, err := Get(Reader(strings.NewReader("generator:\n  rounding: exact\n  seed: 9\n"), "inline"))
	require.NoError(t, err)

	gen, err := conf.Generator.NewGenerator()
	require.NoError(t, err)
	require.Equal(t, randgen.RoundExact, gen.Rounding())
}
