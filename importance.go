package stipple

import (
	"fmt"
	"math"

	"github.com/gogpu/stipple/internal/parallel"
)

// ImportanceOptions configures ComputeImportance.
//
// Tones inside [ThresholdLow, ThresholdHigh] keep the full baseline weight
// of 1.0. Outside the band, weight falls off smoothly toward
// 1 - Downweight: near-pure-black and near-pure-white regions carry little
// information worth spending a limited stipple budget on, but a hard
// cutoff at the thresholds would create visible banding.
type ImportanceOptions struct {
	// ThresholdLow is the tone below which pixels count as "very dark".
	// Must lie in [0, 1) and below ThresholdHigh.
	ThresholdLow float64

	// ThresholdHigh is the tone above which pixels count as "very light".
	// Must lie in (0, 1] and above ThresholdLow.
	ThresholdHigh float64

	// Downweight is the suppression strength for extreme tones, in [0, 1].
	// A pixel deep inside an extreme band ends up with weight 1 - Downweight.
	Downweight float64

	// Sigma is the width of the smooth transition at each threshold,
	// in tone units. Must be > 0.
	Sigma float64

	// Workers is the number of goroutines for the per-pixel pass.
	// 0 or negative uses GOMAXPROCS.
	Workers int
}

// DefaultImportanceOptions returns the default importance parameters.
func DefaultImportanceOptions() ImportanceOptions {
	return ImportanceOptions{
		ThresholdLow:  0.2,
		ThresholdHigh: 0.8,
		Downweight:    0.5,
		Sigma:         0.1,
	}
}

// Validate checks that all parameters lie in their documented ranges.
func (o ImportanceOptions) Validate() error {
	if o.ThresholdLow < 0 || o.ThresholdLow > 1 {
		return fmt.Errorf("%w: importance threshold low %v not in [0, 1]", ErrParameter, o.ThresholdLow)
	}
	if o.ThresholdHigh < 0 || o.ThresholdHigh > 1 {
		return fmt.Errorf("%w: importance threshold high %v not in [0, 1]", ErrParameter, o.ThresholdHigh)
	}
	if o.ThresholdLow >= o.ThresholdHigh {
		return fmt.Errorf("%w: importance threshold low %v must be below high %v",
			ErrParameter, o.ThresholdLow, o.ThresholdHigh)
	}
	if o.Downweight < 0 || o.Downweight > 1 {
		return fmt.Errorf("%w: importance downweight %v not in [0, 1]", ErrParameter, o.Downweight)
	}
	if o.Sigma <= 0 {
		return fmt.Errorf("%w: importance sigma %v must be > 0", ErrParameter, o.Sigma)
	}
	return nil
}

// ComputeImportance converts a grayscale image into a per-pixel placement
// weight in [0, 1]. The output grid has the same shape as the input and is
// not normalized to a fixed total; values are relative priorities, with
// 1.0 for mid-band tones and down to 1 - Downweight at the tonal extremes.
//
// The per-pixel pass is side-effect-free and runs row-parallel.
func ComputeImportance(img *Grid, opts ImportanceOptions) (*Grid, error) {
	if img == nil || img.Empty() {
		return nil, fmt.Errorf("%w: importance: source image is empty", ErrShape)
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	w, h := img.Width(), img.Height()
	out := NewGrid(w, h)

	src := img.Data()
	dst := out.Data()
	parallel.Rows(h, opts.Workers, func(y0, y1 int) {
		for i := y0 * w; i < y1*w; i++ {
			dst[i] = extremeWeight(src[i], opts)
		}
	})

	Logger().Debug("stipple: importance map computed",
		"width", w, "height", h,
		"downweight", opts.Downweight, "sigma", opts.Sigma)
	return out, nil
}

// extremeWeight returns the placement weight for a single tone value:
// 1.0 inside the [low, high] band, decaying with a Gaussian ramp toward
// 1 - Downweight as the tone moves into an extreme band. The ramp is
// monotonic in the distance from the nearest threshold and continuous at
// the threshold itself.
func extremeWeight(tone float64, o ImportanceOptions) float64 {
	var d float64
	switch {
	case tone < o.ThresholdLow:
		d = o.ThresholdLow - tone
	case tone > o.ThresholdHigh:
		d = tone - o.ThresholdHigh
	default:
		return 1
	}
	t := d / o.Sigma
	return 1 - o.Downweight*(1-math.Exp(-0.5*t*t))
}
