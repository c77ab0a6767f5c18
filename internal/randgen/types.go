package randgen

import "fmt"

// Format selects how generated numbers are normalized and displayed.
type Format string

const (
	FormatInteger Format = "integer" // e.g. "42"
	FormatDecimal Format = "decimal" // e.g. "3.14"
	FormatRoman   Format = "roman"   // e.g. "XLII"
)

// ParseFormat converts a user supplied name into a Format.
func ParseFormat(s string) (Format, error) {
	switch f := Format(s); f {
	case FormatInteger, FormatDecimal, FormatRoman:
		return f, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// Formats lists every supported format in display order.
func Formats() []Format {
	return []Format{FormatInteger, FormatDecimal, FormatRoman}
}

// DisplayName returns the label used by the front ends.
func (f Format) DisplayName() string {
	switch f {
	case FormatInteger:
		return "Integer"
	case FormatDecimal:
		return "Decimal"
	case FormatRoman:
		return "Roman"
	default:
		return string(f)
	}
}

// Filters decide which kinds of numbers are accepted.
type Filters struct {
	IncludeEven     bool
	IncludeOdd      bool
	IncludeDecimals bool
}

// Any reports whether at least one filter is enabled.
func (f Filters) Any() bool {
	return f.IncludeEven || f.IncludeOdd || f.IncludeDecimals
}

const (
	MinCount = 1
	MaxCount = 3

	MinDecimalPlaces = 0
	MaxDecimalPlaces = 10

	// RomanMax is the largest value expressible in standard roman notation.
	RomanMax = 3999
)

// Config describes one generation request.
type Config struct {
	Format Format
	Min    float64
	Max    float64

	// Count is the number of values requested, clamped to [MinCount, MaxCount].
	Count int

	Filters Filters

	// DecimalPlaces is only used by FormatDecimal, clamped to
	// [MinDecimalPlaces, MaxDecimalPlaces].
	DecimalPlaces int
}

// DefaultConfig returns the configuration a fresh session starts with.
func DefaultConfig() Config {
	return Config{
		Format: FormatInteger,
		Min:    1,
		Max:    100,
		Count:  1,
		Filters: Filters{
			IncludeEven:     true,
			IncludeOdd:      true,
			IncludeDecimals: true,
		},
		DecimalPlaces: 2,
	}
}

// Clamped returns a copy with Count and DecimalPlaces forced into range.
func (c Config) Clamped() Config {
	c.Count = clampInt(c.Count, MinCount, MaxCount)
	c.DecimalPlaces = clampInt(c.DecimalPlaces, MinDecimalPlaces, MaxDecimalPlaces)
	return c
}

// GeneratedValue is a single accepted number.
type GeneratedValue struct {
	// ID is unique per value; front ends key list rows and copy targets on it.
	ID string

	// Display is the value formatted per the request's format.
	Display string

	// Raw is the normalized number the filters were evaluated against.
	Raw float64
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
