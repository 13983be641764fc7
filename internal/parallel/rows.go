// Package parallel provides a bounded fan-out helper for per-pixel raster
// passes. Each worker owns a contiguous band of rows, so passes that write
// one output cell per input cell need no synchronization beyond the final
// join.
package parallel

import (
	"runtime"
	"sync"
)

// minBandRows is the smallest band worth a goroutine. Below this the
// scheduling overhead dominates and the pass runs on the calling goroutine.
const minBandRows = 32

// Rows runs fn over the row range [0, height), split into contiguous
// bands distributed across worker goroutines. fn receives a half-open
// row range [y0, y1) and must only write cells inside it.
//
// If workers is 0 or negative, GOMAXPROCS is used. Small inputs run
// inline on the calling goroutine. Rows returns after every band has
// completed.
func Rows(height, workers int, fn func(y0, y1 int)) {
	if height <= 0 {
		return
	}
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > height/minBandRows {
		workers = height / minBandRows
	}
	if workers <= 1 {
		fn(0, height)
		return
	}

	band := (height + workers - 1) / workers

	var wg sync.WaitGroup
	for y0 := 0; y0 < height; y0 += band {
		y1 := y0 + band
		if y1 > height {
			y1 = height
		}
		wg.Add(1)
		go func(y0, y1 int) {
			defer wg.Done()
			fn(y0, y1)
		}(y0, y1)
	}
	wg.Wait()
}
