package stipple

import (
	"errors"
	"math"
	"testing"
)

func TestSummarizeUniform(t *testing.T) {
	img := NewGrid(48, 32)
	img.Fill(0.5)

	s, err := Summarize(img, 4, 6)
	if err != nil {
		t.Fatalf("Summarize failed: %v", err)
	}
	if s.Cells.Width() != 6 || s.Cells.Height() != 4 {
		t.Fatalf("expected 6x4 cells, got %dx%d", s.Cells.Width(), s.Cells.Height())
	}
	for i, v := range s.Cells.Data() {
		if v != 0.5 {
			t.Errorf("cell %d: expected 0.5, got %v", i, v)
		}
	}
	if s.Mean != 0.5 || s.Std != 0 {
		t.Errorf("expected mean 0.5 std 0, got mean %v std %v", s.Mean, s.Std)
	}
	if s.Min != 0.5 || s.Max != 0.5 {
		t.Errorf("expected min=max=0.5, got [%v, %v]", s.Min, s.Max)
	}
}

func TestSummarizeHalves(t *testing.T) {
	// Left half black, right half white; 1x2 grid must recover both.
	img := NewGrid(20, 10)
	for y := 0; y < 10; y++ {
		for x := 10; x < 20; x++ {
			img.Set(x, y, 1)
		}
	}

	s, err := Summarize(img, 1, 2)
	if err != nil {
		t.Fatalf("Summarize failed: %v", err)
	}
	if s.Cells.At(0, 0) != 0 || s.Cells.At(1, 0) != 1 {
		t.Errorf("expected cells [0, 1], got [%v, %v]", s.Cells.At(0, 0), s.Cells.At(1, 0))
	}
	if s.Min != 0 || s.Max != 1 || s.Mean != 0.5 {
		t.Errorf("unexpected stats: mean %v min %v max %v", s.Mean, s.Min, s.Max)
	}
}

// TestSummarizeRemainder checks that trailing cells absorb remainder
// pixels so every pixel counts exactly once.
func TestSummarizeRemainder(t *testing.T) {
	// 10 rows split into 3 bands: [0,3), [3,6), [6,10).
	img := NewGrid(3, 10)
	for x := 0; x < 3; x++ {
		for y := 6; y < 10; y++ {
			img.Set(x, y, 1)
		}
	}

	s, err := Summarize(img, 3, 1)
	if err != nil {
		t.Fatalf("Summarize failed: %v", err)
	}
	got := []float64{s.Cells.At(0, 0), s.Cells.At(0, 1), s.Cells.At(0, 2)}
	want := []float64{0, 0, 1}
	for i := range want {
		if math.Abs(got[i]-want[i]) > 1e-12 {
			t.Errorf("band %d: expected %v, got %v", i, want[i], got[i])
		}
	}
}

func TestSummarizeErrors(t *testing.T) {
	img := NewGrid(8, 8)

	if _, err := Summarize(NewGrid(0, 0), 1, 1); !errors.Is(err, ErrShape) {
		t.Errorf("expected ErrShape for empty image, got %v", err)
	}
	if _, err := Summarize(img, 0, 4); !errors.Is(err, ErrParameter) {
		t.Errorf("expected ErrParameter for zero rows, got %v", err)
	}
	if _, err := Summarize(img, 4, 0); !errors.Is(err, ErrParameter) {
		t.Errorf("expected ErrParameter for zero cols, got %v", err)
	}
	if _, err := Summarize(img, 9, 4); !errors.Is(err, ErrParameter) {
		t.Errorf("expected ErrParameter for rows > height, got %v", err)
	}
}

func TestExpandBlocks(t *testing.T) {
	img := NewGrid(20, 10)
	for y := 0; y < 10; y++ {
		for x := 10; x < 20; x++ {
			img.Set(x, y, 1)
		}
	}
	s, err := Summarize(img, 1, 2)
	if err != nil {
		t.Fatalf("Summarize failed: %v", err)
	}

	full := s.Expand(20, 10)
	if full.Width() != 20 || full.Height() != 10 {
		t.Fatalf("expected 20x10, got %dx%d", full.Width(), full.Height())
	}
	if full.At(5, 5) != 0 || full.At(15, 5) != 1 {
		t.Errorf("expected block fill [0|1], got %v and %v", full.At(5, 5), full.At(15, 5))
	}
}
