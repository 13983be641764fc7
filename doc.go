// Package stipple renders a grayscale image as a blue-noise stipple
// pattern: a set of discrete dots that approximates local tone while
// staying visually uniform and non-clustered.
//
// # Overview
//
// The package is built around two core stages. ComputeImportance turns
// tone into a per-pixel placement weight, smoothly downweighting
// near-black and near-white regions. Place runs an importance-weighted
// void-and-cluster algorithm: it greedily picks the highest-energy pixel,
// emits it as a dot, and suppresses the energy field around it with a
// Gaussian repulsion kernel, so that dots follow the content-weighted
// density implied by tone without clumping.
//
// Everything else is plumbing around those two stages: loading and
// resizing images (LoadGrayscale), block-averaged tone diagnostics
// (Summarize), glyph masks (RenderGlyphMask), selective erasure
// (ApplyMask), and panel composition (ComposePanels). The Pipeline type
// chains all stages into the four-panel figure produced by cmd/stipplefig.
//
// # Quick Start
//
//	import "github.com/gogpu/stipple"
//
//	img, err := stipple.LoadGrayscale("portrait.jpg", stipple.WithMaxDimension(512))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	imp, err := stipple.ComputeImportance(img, stipple.DefaultImportanceOptions())
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	pattern, samples, err := stipple.Place(img, imp, stipple.DefaultPlacerOptions())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	_ = samples // ordered placement decisions, one per dot
//
//	if err := pattern.SavePNG("stipple.png"); err != nil {
//	    log.Fatal(err)
//	}
//
// # Determinism
//
// The placer's exploration noise comes from an explicitly injected
// generator (PlacerOptions.Rand). With NoiseScale set to zero the
// algorithm is fully deterministic: ties in the greedy scan resolve to
// the smallest row-major index, so repeated runs are bit-for-bit
// identical.
//
// # Logging
//
// By default the package produces no log output. Call SetLogger to
// enable structured logging via log/slog.
package stipple
