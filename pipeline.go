package stipple

import "fmt"

// Pipeline bundles the options of every stage of the four-panel figure:
// load, importance map, placement, glyph mask, selective masking, and
// composition. The panels illustrate information loss: the source image
// ("Reality"), its stipple rendition ("Your Model"), the mask
// ("Selection Bias"), and the masked rendition ("Estimate").
type Pipeline struct {
	// MaxDimension bounds the working resolution (aspect-preserving).
	// Ignored when TargetWidth and TargetHeight are set.
	MaxDimension int

	// TargetWidth, TargetHeight request an exact working resolution.
	TargetWidth, TargetHeight int

	// Importance configures the importance map stage.
	Importance ImportanceOptions

	// Placer configures the void-and-cluster stage.
	Placer PlacerOptions

	// Glyph is the mask letter; GlyphRatio sizes it relative to the frame.
	Glyph      rune
	GlyphRatio float64

	// MaskThreshold is the cutoff below which mask cells erase dots.
	MaskThreshold float64
}

// DefaultPipeline returns a pipeline with the documented defaults for
// every stage.
func DefaultPipeline() Pipeline {
	return Pipeline{
		MaxDimension:  defaultMaxDimension,
		Importance:    DefaultImportanceOptions(),
		Placer:        DefaultPlacerOptions(),
		Glyph:         'S',
		GlyphRatio:    0.9,
		MaskThreshold: 0.5,
	}
}

// Run executes the full pipeline: load the image at inputPath, stipple
// it, erase dots under the glyph mask, compose the four panels, and write
// the figure to outputPath as PNG.
//
// Any stage error aborts the run immediately; no stage substitutes a
// default image or skips a panel.
func (p Pipeline) Run(inputPath, outputPath string) error {
	log := Logger()

	var loadOpts []LoadOption
	if p.TargetWidth > 0 || p.TargetHeight > 0 {
		loadOpts = append(loadOpts, WithTargetSize(p.TargetWidth, p.TargetHeight))
	} else {
		loadOpts = append(loadOpts, WithMaxDimension(p.MaxDimension))
	}
	img, err := LoadGrayscale(inputPath, loadOpts...)
	if err != nil {
		return err
	}
	log.Info("stipple: image prepared", "path", inputPath,
		"width", img.Width(), "height", img.Height())

	imp, err := ComputeImportance(img, p.Importance)
	if err != nil {
		return err
	}

	pattern, samples, err := Place(img, imp, p.Placer)
	if err != nil {
		return err
	}
	log.Info("stipple: pattern placed", "points", len(samples))

	mask, err := RenderGlyphMask(img.Width(), img.Height(), p.Glyph, p.GlyphRatio)
	if err != nil {
		return err
	}

	masked, err := ApplyMask(pattern, mask, p.MaskThreshold)
	if err != nil {
		return err
	}

	figure, err := ComposePanels([]Panel{
		{Label: "Reality", Image: img},
		{Label: "Your Model", Image: pattern},
		{Label: "Selection Bias", Image: mask},
		{Label: "Estimate", Image: masked},
	})
	if err != nil {
		return err
	}

	if err := figure.SavePNG(outputPath); err != nil {
		return err
	}
	log.Info("stipple: figure written", "path", outputPath,
		"width", figure.Width(), "height", figure.Height())
	return nil
}

// String describes the pipeline's key parameters, for logs and CLI output.
func (p Pipeline) String() string {
	return fmt.Sprintf("stipple pipeline: p=%v sigma=%v bias=%v noise=%v glyph=%q threshold=%v",
		p.Placer.Percentage, p.Placer.Sigma, p.Placer.ContentBias,
		p.Placer.NoiseScale, string(p.Glyph), p.MaskThreshold)
}
