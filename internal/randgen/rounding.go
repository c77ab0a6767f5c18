package randgen

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"
)

// Rounding selects how decimal-format samples are rounded to DecimalPlaces.
type Rounding string

const (
	// RoundLegacy scales by 10^places, rounds half away from zero and scales
	// back. Binary float artifacts at high precision are kept as-is.
	RoundLegacy Rounding = "legacy"

	// RoundExact rounds the shortest decimal representation of the sample,
	// half away from zero, then converts back to float64.
	RoundExact Rounding = "exact"
)

// ParseRounding converts a user supplied name into a Rounding.
func ParseRounding(s string) (Rounding, error) {
	switch r := Rounding(s); r {
	case RoundLegacy, RoundExact:
		return r, nil
	case "":
		return RoundLegacy, nil
	}
	return "", fmt.Errorf("unknown rounding mode %q", s)
}

// Round rounds v to places fraction digits using mode r.
func (r Rounding) Round(v float64, places int) float64 {
	if r == RoundExact {
		return roundExact(v, places)
	}
	return roundLegacy(v, places)
}

func roundLegacy(v float64, places int) float64 {
	multiplier := math.Pow(10, float64(places))
	return math.Round(v*multiplier) / multiplier
}

func roundExact(v float64, places int) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return v
	}
	return decimal.NewFromFloat(v).Round(int32(places)).InexactFloat64()
}
