package randgen

import "math"

// MaxAttempts bounds the samples drawn by one Generate call so that
// configurations with an empty or sparse feasible set still terminate.
const MaxAttempts = 1000

// Status is the kind of a GenerationResult.
type Status int

const (
	// Success means Count values were produced.
	Success Status = iota
	// Partial means at least one but fewer than Count values were produced.
	Partial
	// Failure means no value was accepted before the attempt ceiling.
	Failure
)

func (s Status) String() string {
	switch s {
	case Success:
		return "success"
	case Partial:
		return "partial"
	case Failure:
		return "failure"
	default:
		return "unknown"
	}
}

// GenerationResult is the outcome of Generate.
type GenerationResult struct {
	Status Status

	// Values holds the accepted values in generation order. Empty on Failure.
	Values []GeneratedValue

	// Requested is the clamped count that was asked for.
	Requested int

	// Attempts is the number of samples drawn, at most MaxAttempts.
	Attempts int

	// Reason is ErrUnsatisfiable on Failure and nil otherwise.
	Reason error
}

// Options configures a Generator. Zero fields fall back to defaults.
type Options struct {
	// Source provides uniform samples. Defaults to a randomly seeded PCG.
	Source Source

	// IDs issues value identifiers. Defaults to UUIDSource.
	IDs IDSource

	// Rounding selects the decimal normalizer. Defaults to RoundLegacy.
	Rounding Rounding
}

// Generator draws numbers by rejection sampling against a Config.
// It is not safe for concurrent use; its Source is stateful.
type Generator struct {
	src      Source
	ids      IDSource
	rounding Rounding
}

// New creates a Generator.
func New(opts Options) *Generator {
	g := &Generator{
		src:      opts.Source,
		ids:      opts.IDs,
		rounding: opts.Rounding,
	}
	if g.src == nil {
		g.src = NewSource(0)
	}
	if g.ids == nil {
		g.ids = UUIDSource{}
	}
	if g.rounding == "" {
		g.rounding = RoundLegacy
	}
	return g
}

// Rounding returns the decimal rounding mode in use.
func (g *Generator) Rounding() Rounding {
	return g.rounding
}

// Generate fills up to cfg.Count values. cfg is expected to have passed
// Validate; Count and DecimalPlaces are clamped here regardless.
func (g *Generator) Generate(cfg Config) GenerationResult {
	cfg = cfg.Clamped()

	values := make([]GeneratedValue, 0, cfg.Count)
	attempts := 0
	for len(values) < cfg.Count && attempts < MaxAttempts {
		attempts++

		v := g.normalize(g.sample(cfg), cfg)
		if !Accepts(v, cfg.Filters, cfg.Format) {
			continue
		}

		values = append(values, GeneratedValue{
			ID:      g.ids.NewID(),
			Display: Render(v, cfg.Format, cfg.DecimalPlaces),
			Raw:     v,
		})
	}

	result := GenerationResult{
		Values:    values,
		Requested: cfg.Count,
		Attempts:  attempts,
	}
	switch {
	case len(values) == 0:
		result.Status = Failure
		result.Reason = ErrUnsatisfiable
	case len(values) < cfg.Count:
		result.Status = Partial
	default:
		result.Status = Success
	}
	return result
}

// sample returns a value in [Min, Max).
func (g *Generator) sample(cfg Config) float64 {
	return g.src.Float64()*(cfg.Max-cfg.Min) + cfg.Min
}

func (g *Generator) normalize(v float64, cfg Config) float64 {
	switch cfg.Format {
	case FormatInteger, FormatRoman:
		v = math.Floor(v)
	case FormatDecimal:
		v = g.rounding.Round(v, cfg.DecimalPlaces)
	}
	if v == 0 {
		v = 0 // drop the sign of -0
	}
	return v
}
