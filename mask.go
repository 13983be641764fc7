package stipple

import (
	"fmt"
	"image"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// maskFont lazily parses the embedded bold face used for glyph masks and
// panel labels.
var maskFont = sync.OnceValues(func() (*opentype.Font, error) {
	return opentype.Parse(gobold.TTF)
})

// RenderGlyphMask renders a single glyph as a width×height mask grid:
// 0.0 where the glyph is drawn, 1.0 for the background. The glyph is
// centered and sized to ratio×min(width, height), shrinking further until
// its bounding box fits within ratio of both dimensions.
//
// Mask semantics follow ApplyMask: 0 means "content erased here",
// 1 means "content intact".
func RenderGlyphMask(width, height int, glyph rune, ratio float64) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: glyph mask: dimensions %dx%d must be positive", ErrShape, width, height)
	}
	if ratio <= 0 || ratio > 1 {
		return nil, fmt.Errorf("%w: glyph mask ratio %v not in (0, 1]", ErrParameter, ratio)
	}

	ft, err := maskFont()
	if err != nil {
		return nil, fmt.Errorf("stipple: glyph mask: parse embedded font: %w", err)
	}

	minDim := width
	if height < minDim {
		minDim = height
	}
	size := float64(minDim) * ratio
	maxW := int(float64(width) * ratio)
	maxH := int(float64(height) * ratio)

	// Shrink until the glyph's bounding box fits the target area.
	var (
		face   font.Face
		bounds fixed.Rectangle26_6
	)
	for {
		face, err = opentype.NewFace(ft, &opentype.FaceOptions{
			Size:    size,
			DPI:     72,
			Hinting: font.HintingFull,
		})
		if err != nil {
			return nil, fmt.Errorf("stipple: glyph mask: create face: %w", err)
		}

		var ok bool
		bounds, _, ok = face.GlyphBounds(glyph)
		if !ok {
			_ = face.Close()
			return nil, fmt.Errorf("%w: glyph mask: no glyph for %q in embedded font", ErrParameter, glyph)
		}

		textW := (bounds.Max.X - bounds.Min.X).Ceil()
		textH := (bounds.Max.Y - bounds.Min.Y).Ceil()
		if (textW <= maxW && textH <= maxH) || size <= 1 {
			break
		}
		_ = face.Close()
		size *= 0.9
		if size < 1 {
			size = 1
		}
	}
	defer func() {
		_ = face.Close()
	}()

	textW := (bounds.Max.X - bounds.Min.X).Ceil()
	textH := (bounds.Max.Y - bounds.Min.Y).Ceil()

	canvas := image.NewGray(image.Rect(0, 0, width, height))
	for i := range canvas.Pix {
		canvas.Pix[i] = 255
	}

	// Center the glyph: shift the dot so the bounding box lands in the
	// middle of the canvas.
	dot := fixed.Point26_6{
		X: fixed.I((width-textW)/2) - bounds.Min.X,
		Y: fixed.I((height-textH)/2) - bounds.Min.Y,
	}
	d := &font.Drawer{
		Dst:  canvas,
		Src:  image.Black,
		Face: face,
		Dot:  dot,
	}
	d.DrawString(string(glyph))

	Logger().Debug("stipple: glyph mask rendered",
		"glyph", string(glyph), "width", width, "height", height, "size", size)
	return FromImage(canvas), nil
}

// ApplyMask applies a mask to a stipple pattern: every cell where the
// mask value is below threshold is forced to 1.0 (background), erasing
// any dot there. Cells at or above the threshold pass through unchanged.
//
// ApplyMask is a pure function of (pattern, mask, threshold); the inputs
// are not modified. Applying the same mask twice gives the same result as
// applying it once.
func ApplyMask(pattern, mask *Grid, threshold float64) (*Grid, error) {
	if pattern == nil || pattern.Empty() {
		return nil, fmt.Errorf("%w: apply mask: pattern is empty", ErrShape)
	}
	if mask == nil || !sameShape(pattern, mask) {
		return nil, fmt.Errorf("%w: apply mask: pattern %dx%d and mask have different shapes",
			ErrShape, pattern.Width(), pattern.Height())
	}
	if threshold < 0 || threshold > 1 {
		return nil, fmt.Errorf("%w: apply mask threshold %v not in [0, 1]", ErrParameter, threshold)
	}

	out := pattern.Clone()
	od := out.Data()
	md := mask.Data()
	for i, m := range md {
		if m < threshold {
			od[i] = 1
		}
	}
	return out, nil
}
