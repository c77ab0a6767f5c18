package config

import (
	"embed"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"

	"github.com/abhisek/numerado/internal/logging"
	"github.com/abhisek/numerado/internal/randgen"
)

//go:embed config.yaml
var configFile embed.FS

// EnvPrefix prefixes environment overrides, e.g. NUMERADO_GENERATOR_MAX=50.
const EnvPrefix = "NUMERADO"

// Config is the full application configuration.
type Config struct {
	Log       logging.Config `yaml:"log" mapstructure:"log"`
	Generator Generator      `yaml:"generator" mapstructure:"generator"`
	UI        UI             `yaml:"ui" mapstructure:"ui"`
}

// Generator holds the starting generation settings.
type Generator struct {
	Format        string  `yaml:"format" mapstructure:"format" validate:"oneof=integer decimal roman"`
	Min           float64 `yaml:"min" mapstructure:"min"`
	Max           float64 `yaml:"max" mapstructure:"max"`
	Count         int     `yaml:"count" mapstructure:"count"`
	DecimalPlaces int     `yaml:"decimalPlaces" mapstructure:"decimalPlaces"`
	Filters       Filters `yaml:"filters" mapstructure:"filters"`
	Rounding      string  `yaml:"rounding" mapstructure:"rounding" validate:"oneof=legacy exact"`

	// Seed fixes the random sequence; 0 seeds randomly.
	Seed uint64 `yaml:"seed" mapstructure:"seed"`
}

type Filters struct {
	IncludeEven     bool `yaml:"includeEven" mapstructure:"includeEven"`
	IncludeOdd      bool `yaml:"includeOdd" mapstructure:"includeOdd"`
	IncludeDecimals bool `yaml:"includeDecimals" mapstructure:"includeDecimals"`
}

// UI holds presentation settings for the interactive mode.
type UI struct {
	// RevealDelay is the pause before results appear; 0 shows them at once.
	RevealDelay time.Duration `yaml:"revealDelay" mapstructure:"revealDelay" validate:"gte=0"`
}

// Src is an additional configuration source merged over the defaults.
type Src interface {
	isSrc()
}

type pathSrc string

func (pathSrc) isSrc() {}

// Path merges the YAML file at path. Missing files are skipped.
func Path(path string) Src {
	return pathSrc(path)
}

type readerSrc struct {
	io.Reader
	name string
}

func (readerSrc) isSrc() {}

// Reader merges YAML read from r; name is used in errors.
func Reader(r io.Reader, name string) Src {
	return readerSrc{Reader: r, name: name}
}

// Get loads the embedded defaults, merges sources in order, then applies
// NUMERADO_* environment overrides, and validates the result.
func Get(sources ...Src) (*Config, error) {
	data, err := configFile.Open("config.yaml")
	if err != nil {
		return nil, fmt.Errorf("%w: unable to read config.yaml", err)
	}
	defer data.Close()

	v := viper.NewWithOptions(viper.EnvKeyReplacer(strings.NewReplacer(".", "_")))
	v.SetConfigType("yaml")
	if err := v.ReadConfig(data); err != nil {
		return nil, fmt.Errorf("read default config: %w", err)
	}

	for _, source := range sources {
		switch src := source.(type) {
		case pathSrc:
			if _, err := os.Stat(string(src)); errors.Is(err, fs.ErrNotExist) {
				continue
			}
			v.SetConfigFile(string(src))
			if err := v.MergeInConfig(); err != nil {
				return nil, fmt.Errorf("%w: unable to merge config file %q", err, string(src))
			}
		case readerSrc:
			if err := v.MergeConfig(src.Reader); err != nil {
				return nil, fmt.Errorf("%w: unable to merge config %q", err, src.name)
			}
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	var conf Config
	if err := v.Unmarshal(&conf); err != nil {
		return nil, fmt.Errorf("%w: unable to unmarshal config", err)
	}
	if err := conf.Validate(); err != nil {
		return nil, err
	}
	return &conf, nil
}

// DefaultPath returns $XDG_CONFIG_HOME/numerado/config.yaml (or the
// platform equivalent).
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve config dir: %w", err)
	}
	return filepath.Join(dir, "numerado", "config.yaml"), nil
}

var validate = validator.New()

// Validate checks enumerated fields. Numeric range consistency is left to
// randgen.Validate, which reports it at generation time.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// RandConfig converts the generator settings into a clamped randgen.Config.
func (g Generator) RandConfig() (randgen.Config, error) {
	format, err := randgen.ParseFormat(g.Format)
	if err != nil {
		return randgen.Config{}, err
	}
	return randgen.Config{
		Format: format,
		Min:    g.Min,
		Max:    g.Max,
		Count:  g.Count,
		Filters: randgen.Filters{
			IncludeEven:     g.Filters.IncludeEven,
			IncludeOdd:      g.Filters.IncludeOdd,
			IncludeDecimals: g.Filters.IncludeDecimals,
		},
		DecimalPlaces: g.DecimalPlaces,
	}.Clamped(), nil
}

// NewGenerator builds a randgen.Generator honoring Seed and Rounding.
func (g Generator) NewGenerator() (*randgen.Generator, error) {
	rounding, err := randgen.ParseRounding(g.Rounding)
	if err != nil {
		return nil, err
	}
	return randgen.New(randgen.Options{
		Source:   randgen.NewSource(g.Seed),
		Rounding: rounding,
	}), nil
}
