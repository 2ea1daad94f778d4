// Package accent derives a UI accent color from a logo image.
//
// The pipeline has three steps:
//
//   - Sample decodes the image (JPEG, PNG, GIF, BMP, WebP), resamples it to a
//     fixed 16x16 grid and averages the 256 pixels into a single RGB value.
//   - Adjust pushes each channel away from the gray average by a factor of 1.4
//     and then lifts every channel by 8%, clamping to [0,255] after each step.
//   - RGB.Hex and HexToRGBString serialize the result as "#rrggbb" and "r,g,b".
//
// Derive runs the whole pipeline and never fails: when the bytes cannot be
// decoded, or the image has no pixels, it returns the default accent #2563eb
// without adjusting it.
//
// # Basic Usage
//
//	import "github.com/dmitrymomot/comingsoon/pkg/accent"
//
//	a := accent.Derive(logoBytes)
//	fmt.Println(a.Hex) // "#3b82f6"
//	fmt.Println(a.RGB) // "59,130,246"
//
// The two strings are meant for CSS custom properties:
//
//	:root {
//		--cs-accent: {{ .Accent.Hex }};
//		--cs-accent-rgb: {{ .Accent.RGB }};
//	}
//	.glow { background: rgba(var(--cs-accent-rgb), 0.25); }
//
// All functions are pure and safe for concurrent use. Results are not cached.
package accent
