package stipple

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
)

// Grid is a rectangular raster of float64 samples in [0, 1], stored in
// row-major order. It is the common currency of the package: grayscale
// images, importance maps, stipple patterns, and masks are all Grids —
// the roles differ only in how the values are interpreted.
type Grid struct {
	width  int
	height int
	data   []float64
}

// NewGrid creates a grid with the given dimensions, all values 0.
func NewGrid(width, height int) *Grid {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &Grid{
		width:  width,
		height: height,
		data:   make([]float64, width*height),
	}
}

// Width returns the width of the grid.
func (g *Grid) Width() int { return g.width }

// Height returns the height of the grid.
func (g *Grid) Height() int { return g.height }

// Empty reports whether the grid has no cells.
func (g *Grid) Empty() bool { return g.width == 0 || g.height == 0 }

// Data returns the raw row-major sample slice.
// The slice is shared with the grid; mutating it mutates the grid.
func (g *Grid) Data() []float64 { return g.data }

// At returns the sample at (x, y).
// Returns 0 for coordinates outside the grid bounds.
func (g *Grid) At(x, y int) float64 {
	if x < 0 || x >= g.width || y < 0 || y >= g.height {
		return 0
	}
	return g.data[y*g.width+x]
}

// Set sets the sample at (x, y), clamping the value to [0, 1].
// Coordinates outside the grid bounds are ignored.
func (g *Grid) Set(x, y int, v float64) {
	if x < 0 || x >= g.width || y < 0 || y >= g.height {
		return
	}
	g.data[y*g.width+x] = clamp01(v)
}

// Fill fills the entire grid with a value, clamped to [0, 1].
func (g *Grid) Fill(v float64) {
	v = clamp01(v)
	for i := range g.data {
		g.data[i] = v
	}
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	c := NewGrid(g.width, g.height)
	copy(c.data, g.data)
	return c
}

// sameShape reports whether two grids have identical dimensions.
func sameShape(a, b *Grid) bool {
	return a.width == b.width && a.height == b.height
}

// clamp01 clamps v to [0, 1]. Values are clamped, never wrapped.
func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// FromImage converts an image to a grid of luma samples in [0, 1],
// using the standard library's grayscale conversion.
func FromImage(img image.Image) *Grid {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	g := NewGrid(w, h)

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := color.GrayModel.Convert(img.At(bounds.Min.X+x, bounds.Min.Y+y)).(color.Gray)
			g.data[y*w+x] = float64(c.Y) / 255
		}
	}

	return g
}

// ToImage converts the grid to an 8-bit grayscale image.
func (g *Grid) ToImage() *image.Gray {
	img := image.NewGray(image.Rect(0, 0, g.width, g.height))
	for i, v := range g.data {
		img.Pix[i] = uint8(clamp01(v)*255 + 0.5)
	}
	return img
}

// SavePNG saves the grid to a PNG file as an 8-bit grayscale image.
func (g *Grid) SavePNG(path string) error {
	f, err := os.Create(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("%w: create %q: %w", ErrIO, path, err)
	}
	defer func() {
		_ = f.Close()
	}()

	if err := png.Encode(f, g.ToImage()); err != nil {
		return fmt.Errorf("%w: encode %q: %w", ErrIO, path, err)
	}
	return nil
}

// Bounds returns the grid dimensions as an image.Rectangle.
func (g *Grid) Bounds() image.Rectangle {
	return image.Rect(0, 0, g.width, g.height)
}
