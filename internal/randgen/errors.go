package randgen

import "errors"

var (
	// ErrNonFiniteBound means Min or Max is NaN or infinite.
	ErrNonFiniteBound = errors.New("minimum and maximum must be finite numbers")

	// ErrMinExceedsMax means the range is inverted.
	ErrMinExceedsMax = errors.New("minimum cannot be greater than maximum")

	// ErrNoFilterEnabled means even, odd and decimal numbers are all excluded.
	ErrNoFilterEnabled = errors.New("at least one kind of number (even, odd or decimal) must be allowed")

	// ErrRomanRangeEmpty means clamping the range to RomanMax left no values.
	ErrRomanRangeEmpty = errors.New("roman numerals only go up to 3999 and the minimum is above that")

	// ErrUnsatisfiable means the attempt ceiling passed without accepting a value.
	ErrUnsatisfiable = errors.New("no numbers satisfy the current filters")

	ErrUnknownFormat = errors.New("unknown number format")
	ErrInvalidRoman  = errors.New("invalid roman numeral")
)
