package stipple

import (
	"fmt"
	"image"
	_ "image/jpeg" // register JPEG decoding
	_ "image/png"  // register PNG decoding
	"os"
	"path/filepath"

	"golang.org/x/image/draw"
)

// defaultMaxDimension bounds the working resolution when no exact target
// size is requested.
const defaultMaxDimension = 512

// LoadOption configures LoadGrayscale.
type LoadOption func(*loadOptions)

type loadOptions struct {
	targetW, targetH int
	maxDim           int
}

// WithTargetSize requests an exact output size. The image is resampled to
// width×height regardless of its aspect ratio.
func WithTargetSize(width, height int) LoadOption {
	return func(o *loadOptions) {
		o.targetW = width
		o.targetH = height
	}
}

// WithMaxDimension bounds the larger output dimension. Images already
// within the bound are left at their native size; larger images are
// scaled down preserving aspect ratio. Ignored when WithTargetSize is
// also given. The default bound is 512.
func WithMaxDimension(n int) LoadOption {
	return func(o *loadOptions) {
		o.maxDim = n
	}
}

// LoadGrayscale loads a raster image (PNG or JPEG), converts it to
// grayscale, and resizes it to the working resolution. Output values are
// in [0, 1]. When WithTargetSize is given the output has exactly that
// shape; otherwise scaling preserves aspect ratio within WithMaxDimension.
func LoadGrayscale(path string, opts ...LoadOption) (*Grid, error) {
	o := loadOptions{maxDim: defaultMaxDimension}
	for _, opt := range opts {
		opt(&o)
	}
	if o.targetW != 0 || o.targetH != 0 {
		if o.targetW <= 0 || o.targetH <= 0 {
			return nil, fmt.Errorf("%w: load: target size %dx%d must be positive",
				ErrParameter, o.targetW, o.targetH)
		}
	} else if o.maxDim <= 0 {
		return nil, fmt.Errorf("%w: load: max dimension %d must be positive", ErrParameter, o.maxDim)
	}

	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("%w: open %q: %w", ErrIO, path, err)
	}
	defer func() {
		_ = f.Close()
	}()

	src, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%w: decode %q: %w", ErrIO, path, err)
	}

	gray := toGray(src)
	w, h := gray.Rect.Dx(), gray.Rect.Dy()

	outW, outH := w, h
	switch {
	case o.targetW > 0:
		outW, outH = o.targetW, o.targetH
	case w > o.maxDim || h > o.maxDim:
		scale := float64(o.maxDim) / float64(max(w, h))
		outW = max(int(float64(w)*scale), 1)
		outH = max(int(float64(h)*scale), 1)
	}
	if outW != w || outH != h {
		gray = resizeGray(gray, outW, outH)
	}

	Logger().Debug("stipple: image loaded",
		"path", path, "source", fmt.Sprintf("%dx%d", w, h),
		"working", fmt.Sprintf("%dx%d", outW, outH))
	return FromImage(gray), nil
}

// toGray converts any image to 8-bit grayscale.
func toGray(src image.Image) *image.Gray {
	if g, ok := src.(*image.Gray); ok {
		return g
	}
	b := src.Bounds()
	g := image.NewGray(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(g, g.Rect, src, b.Min, draw.Src)
	return g
}

// resizeGray resamples a grayscale image to width×height with
// Catmull-Rom interpolation.
func resizeGray(src *image.Gray, width, height int) *image.Gray {
	dst := image.NewGray(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(dst, dst.Rect, src, src.Bounds(), draw.Src, nil)
	return dst
}

// Resize resamples a grid to width×height with Catmull-Rom interpolation.
// Values stay in [0, 1].
func (g *Grid) Resize(width, height int) *Grid {
	if width == g.width && height == g.height {
		return g.Clone()
	}
	return FromImage(resizeGray(g.ToImage(), width, height))
}
