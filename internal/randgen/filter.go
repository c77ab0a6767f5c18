package randgen

import "math"

// Accepts reports whether a normalized value passes the filters for format.
//
// Integer and roman formats reject any value with a fractional part, even
// though the generator floors for them; the predicate states what is
// acceptable, not how values were produced.
func Accepts(v float64, filters Filters, format Format) bool {
	whole := isWhole(v)

	if (format == FormatInteger || format == FormatRoman) && !whole {
		return false
	}

	switch {
	case whole && isEven(v):
		return filters.IncludeEven
	case whole:
		return filters.IncludeOdd
	default:
		return filters.IncludeDecimals
	}
}

func isWhole(v float64) bool {
	return !math.IsInf(v, 0) && !math.IsNaN(v) && v == math.Trunc(v)
}

func isEven(v float64) bool {
	return math.Mod(v, 2) == 0
}
