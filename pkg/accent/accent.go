package accent

// Accent is a finished accent color with both serializations used by templates.
type Accent struct {
	Color RGB
	// Hex is "#rrggbb".
	Hex string
	// RGB is "r,g,b", for use inside rgba(var(--cs-accent-rgb), alpha).
	RGB string
	// Derived is false when the default accent was substituted.
	Derived bool
}

// DefaultAccent returns the accent used when no image is available.
func DefaultAccent() Accent {
	return Accent{Color: Default, Hex: DefaultHex, RGB: DefaultRGBString}
}

// Derive runs Sample and Adjust over image bytes.
// Empty or undecodable data yields DefaultAccent.
func Derive(data []byte) Accent {
	sample, ok := Sample(data)
	if !ok {
		return DefaultAccent()
	}
	return FromColor(Adjust(sample))
}

// FromColor wraps an already adjusted color.
func FromColor(c RGB) Accent {
	hex := c.Hex()
	return Accent{Color: c, Hex: hex, RGB: HexToRGBString(hex), Derived: true}
}
