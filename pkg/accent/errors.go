package accent

import "errors"

var (
	// ErrInvalidHex indicates a color string is not 3 or 6 hex digits.
	ErrInvalidHex = errors.New("accent: invalid hex color")
)
