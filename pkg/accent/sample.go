package accent

import (
	"bytes"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"math"

	_ "golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"
)

const (
	// GridSize is the width and height of the resample grid.
	GridSize = 16
	// MaxPixels bounds the decoded image area; larger images are treated as undecodable.
	MaxPixels = 50_000_000
)

// Sample decodes data and returns the average color of the image resampled to a
// GridSize x GridSize grid. ok is false when the data cannot be decoded, the
// format is unsupported, or the image has no pixels.
func Sample(data []byte) (c RGB, ok bool) {
	if len(data) == 0 {
		return RGB{}, false
	}

	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil || cfg.Width < 1 || cfg.Height < 1 || cfg.Width*cfg.Height > MaxPixels {
		return RGB{}, false
	}

	// Third-party decoders are not guaranteed to be panic-free on hostile input.
	defer func() {
		if recover() != nil {
			c, ok = RGB{}, false
		}
	}()

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return RGB{}, false
	}

	return SampleImage(img)
}

// SampleImage averages an already decoded image the same way Sample does.
// Transparent areas count as black.
func SampleImage(img image.Image) (RGB, bool) {
	if img == nil {
		return RGB{}, false
	}

	bounds := img.Bounds()
	if bounds.Dx() < 1 || bounds.Dy() < 1 {
		return RGB{}, false
	}

	grid := image.NewRGBA(image.Rect(0, 0, GridSize, GridSize))
	draw.BiLinear.Scale(grid, grid.Bounds(), img, bounds, draw.Src, nil)

	var r, g, b int
	for i := 0; i < len(grid.Pix); i += 4 {
		r += int(grid.Pix[i])
		g += int(grid.Pix[i+1])
		b += int(grid.Pix[i+2])
	}

	const n = GridSize * GridSize
	return RGB{
		R: uint8(math.Round(float64(r) / n)),
		G: uint8(math.Round(float64(g) / n)),
		B: uint8(math.Round(float64(b) / n)),
	}, true
}
