package stipple

import (
	"fmt"
	"image"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// Panel is one labeled image in a composed figure.
type Panel struct {
	Label string
	Image *Grid
}

// Layout constants for ComposePanels, in pixels.
const (
	composeMargin    = 16
	composeGap       = 16
	composeLabelBand = 40
	composeFontSize  = 22
)

// ComposePanels arranges panels into a single horizontal strip on a white
// background, with each panel's label drawn bold and centered above it.
// All panels are resampled to the first panel's dimensions. The result is
// a plain grayscale grid, ready for SavePNG.
func ComposePanels(panels []Panel) (*Grid, error) {
	if len(panels) == 0 {
		return nil, fmt.Errorf("%w: compose: no panels", ErrParameter)
	}
	for i, p := range panels {
		if p.Image == nil || p.Image.Empty() {
			return nil, fmt.Errorf("%w: compose: panel %d (%q) is empty", ErrShape, i, p.Label)
		}
	}

	pw, ph := panels[0].Image.Width(), panels[0].Image.Height()
	n := len(panels)
	outW := composeMargin*2 + n*pw + (n-1)*composeGap
	outH := composeMargin*2 + composeLabelBand + ph

	canvas := image.NewGray(image.Rect(0, 0, outW, outH))
	for i := range canvas.Pix {
		canvas.Pix[i] = 255
	}

	face, err := labelFace()
	if err != nil {
		return nil, fmt.Errorf("stipple: compose: label face: %w", err)
	}
	defer func() {
		_ = face.Close()
	}()

	for i, p := range panels {
		x0 := composeMargin + i*(pw+composeGap)
		y0 := composeMargin + composeLabelBand

		img := p.Image
		if img.Width() != pw || img.Height() != ph {
			img = img.Resize(pw, ph)
		}
		draw.Draw(canvas, image.Rect(x0, y0, x0+pw, y0+ph), img.ToImage(), image.Point{}, draw.Src)

		if p.Label != "" {
			drawLabel(canvas, face, p.Label, x0, pw, composeMargin)
		}
	}

	Logger().Debug("stipple: figure composed",
		"panels", n, "width", outW, "height", outH)
	return FromImage(canvas), nil
}

// labelFace creates the face used for panel labels.
func labelFace() (font.Face, error) {
	ft, err := maskFont()
	if err != nil {
		return nil, err
	}
	return opentype.NewFace(ft, &opentype.FaceOptions{
		Size:    composeFontSize,
		DPI:     72,
		Hinting: font.HintingFull,
	})
}

// drawLabel draws text centered horizontally over a panel, baseline near
// the bottom of the label band.
func drawLabel(dst draw.Image, face font.Face, text string, x0, panelW, bandTop int) {
	width := font.MeasureString(face, text).Ceil()
	metrics := face.Metrics()

	d := &font.Drawer{
		Dst:  dst,
		Src:  image.Black,
		Face: face,
		Dot: fixed.Point26_6{
			X: fixed.I(x0 + (panelW-width)/2),
			Y: fixed.I(bandTop) + metrics.Ascent,
		},
	}
	d.DrawString(text)
}
