package accent

import "math"

const (
	// SaturationBoost scales each channel's distance from the gray average.
	SaturationBoost = 1.4
	// BrightnessBoost scales every channel after the saturation step.
	BrightnessBoost = 1.08
)

// Adjust boosts saturation and then brightness so the sampled color reads as an
// accent on a light background. Clamping happens after each step, so the order
// matters.
func Adjust(c RGB) RGB {
	avg := (float64(c.R) + float64(c.G) + float64(c.B)) / 3

	saturate := func(ch uint8) float64 {
		return clamp(math.Round((float64(ch)-avg)*SaturationBoost + avg))
	}
	brighten := func(v float64) uint8 {
		return uint8(clamp(math.Round(v * BrightnessBoost)))
	}

	return RGB{
		R: brighten(saturate(c.R)),
		G: brighten(saturate(c.G)),
		B: brighten(saturate(c.B)),
	}
}

func clamp(v float64) float64 {
	return max(0, min(255, v))
}
