package randgen

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

type romanSymbol struct {
	value  int
	symbol string
}

// romanSymbols is ordered largest first for greedy conversion.
var romanSymbols = []romanSymbol{
	{1000, "M"},
	{900, "CM"},
	{500, "D"},
	{400, "CD"},
	{100, "C"},
	{90, "XC"},
	{50, "L"},
	{40, "XL"},
	{10, "X"},
	{9, "IX"},
	{5, "V"},
	{4, "IV"},
	{1, "I"},
}

var romanDigits = map[byte]int{
	'I': 1,
	'V': 5,
	'X': 10,
	'L': 50,
	'C': 100,
	'D': 500,
	'M': 1000,
}

// Render formats a normalized value for display.
//
//   - integer: floored, base 10
//   - decimal: exactly places fraction digits (places clamped to [0,10])
//   - roman: floored, subtractive notation; outside [1,3999] it falls back
//     to base 10
func Render(v float64, format Format, places int) string {
	switch format {
	case FormatInteger:
		return formatWhole(math.Floor(v))
	case FormatDecimal:
		places = clampInt(places, MinDecimalPlaces, MaxDecimalPlaces)
		if v == 0 {
			v = 0 // drop the sign of -0
		}
		return strconv.FormatFloat(v, 'f', places, 64)
	case FormatRoman:
		f := math.Floor(v)
		if f < 1 || f > RomanMax {
			return formatWhole(f)
		}
		return ToRoman(int(f))
	default:
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
}

// ToRoman converts n to a roman numeral. Values outside [1,3999] are
// returned in base 10.
func ToRoman(n int) string {
	if n < 1 || n > RomanMax {
		return strconv.Itoa(n)
	}

	var b strings.Builder
	remaining := n
	for _, rs := range romanSymbols {
		for remaining >= rs.value {
			b.WriteString(rs.symbol)
			remaining -= rs.value
		}
	}
	return b.String()
}

// ParseRoman decodes a canonical roman numeral (case-insensitive) in
// [1,3999]. Non-canonical spellings such as "IIII" or "IC" are rejected.
func ParseRoman(s string) (int, error) {
	numeral := strings.ToUpper(strings.TrimSpace(s))
	if numeral == "" {
		return 0, fmt.Errorf("%w: empty", ErrInvalidRoman)
	}

	total := 0
	for i := 0; i < len(numeral); i++ {
		v, ok := romanDigits[numeral[i]]
		if !ok {
			return 0, fmt.Errorf("%w: unexpected %q in %q", ErrInvalidRoman, numeral[i], s)
		}
		if i+1 < len(numeral) && v < romanDigits[numeral[i+1]] {
			total -= v
		} else {
			total += v
		}
	}

	if total < 1 || total > RomanMax || ToRoman(total) != numeral {
		return 0, fmt.Errorf("%w: %q is not in canonical form", ErrInvalidRoman, s)
	}
	return total, nil
}

func formatWhole(f float64) string {
	if f == 0 {
		f = 0 // drop the sign of -0
	}
	return strconv.FormatFloat(f, 'f', 0, 64)
}
