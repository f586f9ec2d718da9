package imaging

import (
	"image"

	"github.com/anthonynsimon/bild/effect"
)

// IntensityGrid holds per-pixel brightness values (0-255) for a decoded
// background image. The grid is read-only after construction and safe to
// share between goroutines.
type IntensityGrid struct {
	width  int
	height int
	pix    []uint8 // row-major, len = width*height
}

// NewIntensityGrid converts an image into an intensity grid, discarding
// chrominance with standard luminance weights.
func NewIntensityGrid(img image.Image) *IntensityGrid {
	gray := effect.Grayscale(img)
	bounds := gray.Bounds()
	width, height := bounds.Dx(), bounds.Dy()

	g := &IntensityGrid{
		width:  width,
		height: height,
		pix:    make([]uint8, width*height),
	}

	// Grayscale output has equal channels; the red byte is the brightness.
	for y := 0; y < height; y++ {
		row := gray.Pix[y*gray.Stride : y*gray.Stride+width*4]
		for x := 0; x < width; x++ {
			g.pix[y*width+x] = row[x*4]
		}
	}
	return g
}

// Width returns the number of columns.
func (g *IntensityGrid) Width() int { return g.width }

// Height returns the number of rows.
func (g *IntensityGrid) Height() int { return g.height }

// At returns the brightness at column x, row y. Coordinates must be inside
// [0, Width) x [0, Height).
func (g *IntensityGrid) At(x, y int) uint8 {
	return g.pix[y*g.width+x]
}
