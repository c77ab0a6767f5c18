package randgen

import "math"

// Outcome is the kind of a ValidationResult.
type Outcome int

const (
	// Valid means generation may proceed with the configuration unchanged.
	Valid Outcome = iota
	// Invalid means generation must not start; Reason says why.
	Invalid
	// Adjusted means generation proceeds with a corrected Config and the
	// caller should surface Warning.
	Adjusted
)

func (o Outcome) String() string {
	switch o {
	case Valid:
		return "valid"
	case Invalid:
		return "invalid"
	case Adjusted:
		return "adjusted"
	default:
		return "unknown"
	}
}

// Warning identifies a corrective transform applied by Validate.
type Warning string

const (
	WarnNone Warning = ""

	// WarnRomanRangeClamped means Max was lowered to RomanMax.
	WarnRomanRangeClamped Warning = "roman numerals are only supported up to 3999"
)

// ValidationResult is the outcome of Validate.
type ValidationResult struct {
	Outcome Outcome

	// Config is the configuration to generate with. For Valid it is the
	// input; for Adjusted it is the corrected copy; for Invalid it is the
	// input and must not be used.
	Config Config

	// Reason is set for Invalid: ErrNonFiniteBound, ErrMinExceedsMax,
	// ErrNoFilterEnabled or ErrRomanRangeEmpty.
	Reason error

	// Warning is set for Adjusted.
	Warning Warning
}

// OK reports whether generation may proceed.
func (r ValidationResult) OK() bool {
	return r.Outcome != Invalid
}

// Validate checks cfg for internal consistency.
//
// Checks run in order: non-finite bounds, inverted range, no filter enabled, roman cap. A roman
// configuration whose Max exceeds RomanMax is Adjusted rather than rejected;
// if the clamp leaves Min above the new Max the result is Invalid with
// ErrRomanRangeEmpty.
func Validate(cfg Config) ValidationResult {
	if !isFinite(cfg.Min) || !isFinite(cfg.Max) {
		return ValidationResult{Outcome: Invalid, Config: cfg, Reason: ErrNonFiniteBound}
	}
	if cfg.Min > cfg.Max {
		return ValidationResult{Outcome: Invalid, Config: cfg, Reason: ErrMinExceedsMax}
	}
	if !cfg.Filters.Any() {
		return ValidationResult{Outcome: Invalid, Config: cfg, Reason: ErrNoFilterEnabled}
	}
	if cfg.Format == FormatRoman && cfg.Max > RomanMax {
		adjusted := cfg
		adjusted.Max = RomanMax
		if adjusted.Min > adjusted.Max {
			return ValidationResult{Outcome: Invalid, Config: cfg, Reason: ErrRomanRangeEmpty}
		}
		return ValidationResult{
			Outcome: Adjusted,
			Config:  adjusted,
			Warning: WarnRomanRangeClamped,
		}
	}
	return ValidationResult{Outcome: Valid, Config: cfg}
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
