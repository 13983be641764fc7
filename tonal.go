package stipple

import (
	"fmt"
	"math"
)

// TonalSummary holds block-averaged tone statistics for an image. It is a
// diagnostic: the cell averages show how tone is distributed across the
// frame, which helps tune stippling parameters, and it never feeds back
// into placement.
type TonalSummary struct {
	// Cells is a rows×cols grid of per-cell average tones
	// (Cells.Width() == cols, Cells.Height() == rows).
	Cells *Grid

	// Mean, Std, Min, Max are computed over the cell averages.
	Mean, Std, Min, Max float64
}

// Summarize divides an image into rows×cols cells and computes the
// average tone of each cell. Cell boundaries are uniform except that the
// last row and column of cells absorb any remainder pixels, so every
// pixel contributes to exactly one cell.
func Summarize(img *Grid, rows, cols int) (*TonalSummary, error) {
	if img == nil || img.Empty() {
		return nil, fmt.Errorf("%w: tonal: source image is empty", ErrShape)
	}
	h, w := img.Height(), img.Width()
	if rows < 1 || rows > h {
		return nil, fmt.Errorf("%w: tonal rows %d not in [1, %d]", ErrParameter, rows, h)
	}
	if cols < 1 || cols > w {
		return nil, fmt.Errorf("%w: tonal cols %d not in [1, %d]", ErrParameter, cols, w)
	}

	cells := NewGrid(cols, rows)
	data := img.Data()

	for i := 0; i < rows; i++ {
		yStart, yEnd := cellSpan(i, rows, h)
		for j := 0; j < cols; j++ {
			xStart, xEnd := cellSpan(j, cols, w)

			sum := 0.0
			for y := yStart; y < yEnd; y++ {
				for x := xStart; x < xEnd; x++ {
					sum += data[y*w+x]
				}
			}
			n := (yEnd - yStart) * (xEnd - xStart)
			cells.Set(j, i, sum/float64(n))
		}
	}

	s := &TonalSummary{Cells: cells, Min: 1, Max: 0}
	cd := cells.Data()
	for _, v := range cd {
		s.Mean += v
		s.Min = math.Min(s.Min, v)
		s.Max = math.Max(s.Max, v)
	}
	s.Mean /= float64(len(cd))
	for _, v := range cd {
		d := v - s.Mean
		s.Std += d * d
	}
	s.Std = math.Sqrt(s.Std / float64(len(cd)))

	Logger().Debug("stipple: tonal summary computed",
		"rows", rows, "cols", cols,
		"mean", s.Mean, "std", s.Std, "min", s.Min, "max", s.Max)
	return s, nil
}

// Expand renders the summary as a width×height block image: each cell's
// average tone fills its span of the output, using the same
// remainder-absorbing partition as Summarize.
func (s *TonalSummary) Expand(width, height int) *Grid {
	rows, cols := s.Cells.Height(), s.Cells.Width()
	out := NewGrid(width, height)
	data := out.Data()

	for i := 0; i < rows; i++ {
		yStart, yEnd := cellSpan(i, rows, height)
		for j := 0; j < cols; j++ {
			xStart, xEnd := cellSpan(j, cols, width)
			v := s.Cells.At(j, i)
			for y := yStart; y < yEnd; y++ {
				for x := xStart; x < xEnd; x++ {
					data[y*width+x] = v
				}
			}
		}
	}
	return out
}

// cellSpan returns the half-open pixel span of cell i out of n along an
// axis of the given extent. The last cell absorbs the remainder.
func cellSpan(i, n, extent int) (start, end int) {
	size := extent / n
	start = i * size
	end = start + size
	if i == n-1 {
		end = extent
	}
	return start, end
}
