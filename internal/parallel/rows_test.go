package parallel

import (
	"sync/atomic"
	"testing"
)

func TestRowsCoversEveryRowOnce(t *testing.T) {
	const height = 1000

	var touched [height]int32
	Rows(height, 4, func(y0, y1 int) {
		for y := y0; y < y1; y++ {
			atomic.AddInt32(&touched[y], 1)
		}
	})

	for y, n := range touched {
		if n != 1 {
			t.Errorf("row %d touched %d times, want 1", y, n)
		}
	}
}

func TestRowsSmallInputRunsInline(t *testing.T) {
	var calls int32
	Rows(8, 16, func(y0, y1 int) {
		atomic.AddInt32(&calls, 1)
		if y0 != 0 || y1 != 8 {
			t.Errorf("expected single band [0,8), got [%d,%d)", y0, y1)
		}
	})
	if calls != 1 {
		t.Errorf("expected 1 band for small input, got %d", calls)
	}
}

func TestRowsZeroHeight(t *testing.T) {
	Rows(0, 4, func(y0, y1 int) {
		t.Errorf("fn called for zero height: [%d,%d)", y0, y1)
	})
}

func TestRowsDefaultWorkers(t *testing.T) {
	const height = 256

	var touched [height]int32
	Rows(height, 0, func(y0, y1 int) {
		for y := y0; y < y1; y++ {
			atomic.AddInt32(&touched[y], 1)
		}
	})

	for y, n := range touched {
		if n != 1 {
			t.Errorf("row %d touched %d times, want 1", y, n)
		}
	}
}
