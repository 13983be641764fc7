package stipple

import (
	"fmt"
	"math"
	"math/rand/v2"
)

// Sample records one placement decision: the site of a stipple dot and
// the source tone at that site at the time of placement. The ordered
// sequence of samples returned by Place is exactly the sequence of greedy
// picks; its length always equals the number of dots in the pattern.
type Sample struct {
	// X, Y are the column and row of the placed dot.
	X, Y int

	// Intensity is the source tone at (X, Y), in [0, 1].
	Intensity float64
}

// defaultNoiseSeed seeds the exploration noise generator when the caller
// does not inject one. A fixed seed keeps default runs reproducible.
const defaultNoiseSeed = 0x73746970

// PlacerOptions configures Place.
type PlacerOptions struct {
	// Percentage is the fraction of pixels to stipple, in (0, 1].
	Percentage float64

	// Sigma is the standard deviation of the Gaussian repulsion kernel,
	// in pixels. It controls the minimum spacing between dots. Must be > 0.
	Sigma float64

	// ContentBias scales how strongly tone and importance drive the
	// energy field versus uniform spacing alone, in [0, 1]. At 0 the
	// image content is ignored and dots spread evenly.
	ContentBias float64

	// NoiseScale is the magnitude of the per-pixel exploration
	// perturbation added before each greedy pick, >= 0. It only breaks
	// ties and disturbs perfectly regular patterns on flat regions; at 0
	// the algorithm is fully deterministic.
	NoiseScale float64

	// Rand is the noise source. If nil and NoiseScale > 0, a generator
	// seeded with a fixed default is used. Ignored when NoiseScale == 0.
	Rand *rand.Rand
}

// DefaultPlacerOptions returns the default placement parameters.
func DefaultPlacerOptions() PlacerOptions {
	return PlacerOptions{
		Percentage:  0.08,
		Sigma:       0.9,
		ContentBias: 0.9,
		NoiseScale:  0.1,
	}
}

// Validate checks that all parameters lie in their documented ranges.
func (o PlacerOptions) Validate() error {
	if o.Percentage <= 0 || o.Percentage > 1 {
		return fmt.Errorf("%w: placer percentage %v not in (0, 1]", ErrParameter, o.Percentage)
	}
	if o.Sigma <= 0 {
		return fmt.Errorf("%w: placer sigma %v must be > 0", ErrParameter, o.Sigma)
	}
	if o.ContentBias < 0 || o.ContentBias > 1 {
		return fmt.Errorf("%w: placer content bias %v not in [0, 1]", ErrParameter, o.ContentBias)
	}
	if o.NoiseScale < 0 {
		return fmt.Errorf("%w: placer noise scale %v must be >= 0", ErrParameter, o.NoiseScale)
	}
	return nil
}

// Place runs importance-weighted void-and-cluster stippling over a
// grayscale image. It returns a pattern grid with 0.0 at every placed dot
// and 1.0 elsewhere, plus the ordered sequence of placement decisions.
// The dot count is exactly round(Percentage × width × height); a count of
// zero yields an all-background pattern and an empty sample list.
//
// The algorithm maintains a per-pixel energy field initialized from the
// content term ContentBias × (1 − tone) × importance. Each step picks the
// globally highest-energy pixel (ties resolve to the smallest row-major
// index), emits it as a Sample, and subtracts a Gaussian repulsion kernel
// of width Sigma in a ±3σ window around it. The repulsion only lowers
// energy, it never removes a pixel from candidacy, so the target count is
// always reached regardless of Sigma.
//
// Place owns its energy buffer exclusively for the duration of one call
// and treats both input grids as read-only; it is safe for concurrent use
// with distinct options values.
func Place(img, importance *Grid, opts PlacerOptions) (*Grid, []Sample, error) {
	if img == nil || img.Empty() {
		return nil, nil, fmt.Errorf("%w: placer: source image is empty", ErrShape)
	}
	if importance == nil || !sameShape(img, importance) {
		return nil, nil, fmt.Errorf("%w: placer: image %dx%d and importance map have different shapes",
			ErrShape, img.Width(), img.Height())
	}
	if err := opts.Validate(); err != nil {
		return nil, nil, err
	}

	w, h := img.Width(), img.Height()
	total := w * h
	count := int(math.Round(opts.Percentage * float64(total)))

	pattern := NewGrid(w, h)
	pattern.Fill(1)
	if count == 0 {
		return pattern, nil, nil
	}

	tone := img.Data()
	imp := importance.Data()

	// Content term: darker, higher-importance pixels start more attractive.
	energy := make([]float64, total)
	for i := range energy {
		energy[i] = opts.ContentBias * (1 - tone[i]) * imp[i]
	}

	kernel, radius := repulsionKernel(opts.Sigma)

	rng := opts.Rand
	if rng == nil && opts.NoiseScale > 0 {
		rng = rand.New(rand.NewPCG(defaultNoiseSeed, defaultNoiseSeed))
	}

	samples := make([]Sample, 0, count)
	pat := pattern.Data()

	for len(samples) < count {
		// Selection phase: scan for the densest void. Exploration noise
		// perturbs the comparison only; the persistent field stays
		// noise-free so disabling noise gives bit-identical runs.
		best := -1
		bestE := math.Inf(-1)
		if opts.NoiseScale > 0 {
			for i, e := range energy {
				if math.IsInf(e, -1) {
					continue // already placed
				}
				e += rng.Float64() * opts.NoiseScale
				if e > bestE {
					bestE = e
					best = i
				}
			}
		} else {
			for i, e := range energy {
				if e > bestE {
					bestE = e
					best = i
				}
			}
		}

		x, y := best%w, best/w
		samples = append(samples, Sample{X: x, Y: y, Intensity: tone[best]})
		pat[best] = 0

		// Update phase: pin the placed site and suppress its
		// neighborhood. Strictly ordered after the scan.
		energy[best] = math.Inf(-1)
		stampRepulsion(energy, w, h, x, y, kernel, radius)
	}

	Logger().Debug("stipple: placement finished",
		"points", len(samples), "width", w, "height", h,
		"sigma", opts.Sigma, "window", 2*radius+1)
	return pattern, samples, nil
}

// repulsionKernel precomputes the Gaussian repulsion stamp for one
// placement, truncated at ±3σ where contributions are negligible. The
// stamp is row-major over a (2r+1)² window centered on the placed dot.
func repulsionKernel(sigma float64) ([]float64, int) {
	radius := int(math.Ceil(3 * sigma))
	if radius < 1 {
		radius = 1
	}
	size := 2*radius + 1
	k := make([]float64, size*size)
	inv := 1 / (2 * sigma * sigma)
	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			k[(dy+radius)*size+(dx+radius)] = math.Exp(-float64(dx*dx+dy*dy) * inv)
		}
	}
	return k, radius
}

// stampRepulsion subtracts the kernel from the energy field around (x, y),
// clipped to the grid bounds. Placed cells are at -Inf and stay there.
func stampRepulsion(energy []float64, w, h, x, y int, kernel []float64, radius int) {
	size := 2*radius + 1
	y0, y1 := max(y-radius, 0), min(y+radius, h-1)
	x0, x1 := max(x-radius, 0), min(x+radius, w-1)
	for yy := y0; yy <= y1; yy++ {
		krow := (yy - y + radius) * size
		erow := yy * w
		for xx := x0; xx <= x1; xx++ {
			energy[erow+xx] -= kernel[krow+xx-x+radius]
		}
	}
}
