package stipple

import (
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"
)

func TestNewGrid(t *testing.T) {
	g := NewGrid(100, 50)
	if g.Width() != 100 || g.Height() != 50 {
		t.Errorf("expected 100x50, got %dx%d", g.Width(), g.Height())
	}
	if g.At(50, 25) != 0 {
		t.Errorf("expected 0, got %v", g.At(50, 25))
	}
	if g.Empty() {
		t.Error("100x50 grid should not be empty")
	}
	if !NewGrid(0, 50).Empty() {
		t.Error("0x50 grid should be empty")
	}
}

func TestGridSetClamps(t *testing.T) {
	g := NewGrid(10, 10)

	g.Set(5, 5, 1.5)
	if g.At(5, 5) != 1 {
		t.Errorf("expected clamp to 1, got %v", g.At(5, 5))
	}
	g.Set(5, 5, -0.5)
	if g.At(5, 5) != 0 {
		t.Errorf("expected clamp to 0, got %v", g.At(5, 5))
	}
}

func TestGridBounds(t *testing.T) {
	g := NewGrid(10, 10)
	g.Fill(0.5)

	// Out of bounds reads return 0, writes are ignored.
	if g.At(-1, 5) != 0 || g.At(10, 5) != 0 || g.At(5, -1) != 0 || g.At(5, 10) != 0 {
		t.Error("expected 0 for out-of-bounds reads")
	}
	g.Set(-1, 5, 1)
	g.Set(10, 5, 1)
	for _, v := range g.Data() {
		if v != 0.5 {
			t.Fatalf("out-of-bounds write modified the grid: %v", v)
		}
	}
}

func TestGridClone(t *testing.T) {
	g := NewGrid(10, 10)
	g.Fill(0.75)

	c := g.Clone()
	g.Fill(0)

	if c.At(5, 5) != 0.75 {
		t.Errorf("clone should not be affected, expected 0.75, got %v", c.At(5, 5))
	}
}

func TestFromImageRange(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, 4, 2))
	for i := range img.Pix {
		img.Pix[i] = uint8(i * 36)
	}

	g := FromImage(img)
	if g.Width() != 4 || g.Height() != 2 {
		t.Fatalf("expected 4x2, got %dx%d", g.Width(), g.Height())
	}
	for i, v := range g.Data() {
		if v < 0 || v > 1 {
			t.Errorf("sample %d out of range: %v", i, v)
		}
	}
	if g.At(0, 0) != 0 {
		t.Errorf("expected black corner, got %v", g.At(0, 0))
	}
}

func TestFromImageNonZeroOrigin(t *testing.T) {
	img := image.NewGray(image.Rect(3, 7, 8, 11))
	img.SetGray(3, 7, color.Gray{Y: 255})

	g := FromImage(img)
	if g.Width() != 5 || g.Height() != 4 {
		t.Fatalf("expected 5x4, got %dx%d", g.Width(), g.Height())
	}
	if g.At(0, 0) != 1 {
		t.Errorf("expected origin sample 1, got %v", g.At(0, 0))
	}
}

func TestToImageRoundTrip(t *testing.T) {
	g := NewGrid(8, 8)
	g.Fill(0.5)
	g.Set(3, 4, 1)

	back := FromImage(g.ToImage())
	if back.At(3, 4) != 1 {
		t.Errorf("expected 1 at (3,4), got %v", back.At(3, 4))
	}
	// 0.5 quantizes to 128/255; allow the 8-bit rounding step.
	if d := back.At(0, 0) - 0.5; d < 0 || d > 1.0/255 {
		t.Errorf("expected ~0.5 at (0,0), got %v", back.At(0, 0))
	}
}

func TestSavePNG(t *testing.T) {
	g := NewGrid(16, 16)
	g.Fill(0.25)

	path := filepath.Join(t.TempDir(), "out.png")
	if err := g.SavePNG(path); err != nil {
		t.Fatalf("SavePNG failed: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("expected output file: %v", err)
	}
}
