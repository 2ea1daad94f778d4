package accent

import (
	"fmt"
	"strconv"
	"strings"
)

// RGB is an opaque color with 8-bit channels.
type RGB struct {
	R, G, B uint8
}

// Default is the accent used when no logo is available.
var Default = RGB{R: 0x25, G: 0x63, B: 0xeb}

const (
	// DefaultHex is Default serialized with Hex.
	DefaultHex = "#2563eb"
	// DefaultRGBString is Default serialized with RGBString.
	DefaultRGBString = "37,99,235"
)

// Hex returns the color as lowercase "#rrggbb".
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// RGBString returns the color as a comma-joined decimal triple, e.g. "37,99,235".
func (c RGB) RGBString() string {
	return strconv.Itoa(int(c.R)) + "," + strconv.Itoa(int(c.G)) + "," + strconv.Itoa(int(c.B))
}

// ParseHex parses "#rgb", "rgb", "#rrggbb" or "rrggbb".
// Three-digit forms expand each digit, so "abc" equals "aabbcc".
func ParseHex(s string) (RGB, error) {
	hex := strings.TrimPrefix(s, "#")
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 {
		return RGB{}, fmt.Errorf("%w: %q", ErrInvalidHex, s)
	}

	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return RGB{}, fmt.Errorf("%w: %q", ErrInvalidHex, s)
	}

	return RGB{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}, nil
}

// HexToRGBString converts a hex color to "r,g,b".
// Any malformed input yields DefaultRGBString.
func HexToRGBString(hex string) string {
	c, err := ParseHex(hex)
	if err != nil {
		return DefaultRGBString
	}
	return c.RGBString()
}
