// Package parallel splits per-example training work across goroutines.
package parallel

import (
	"runtime"
	"sync"
)

// Config controls how work is fanned out.
type Config struct {
	Workers  int // Goroutines to use; values <= 1 run on the calling goroutine.
	MinChunk int // Minimum items handed to one goroutine.
}

// DefaultConfig uses one worker per CPU.
func DefaultConfig() Config {
	return Config{
		Workers:  runtime.NumCPU(),
		MinChunk: 8,
	}
}

// Chunks returns how many goroutines For will start for n items.
// The result is always at least 1 so callers can size per-worker scratch space.
func (c Config) Chunks(n int) int {
	if c.Workers <= 1 || n <= 1 {
		return 1
	}
	size := c.chunkSize(n)
	return (n + size - 1) / size
}

func (c Config) chunkSize(n int) int {
	return max((n+c.Workers-1)/c.Workers, c.MinChunk, 1)
}

// For calls f(worker, i) for every i in [0, n).
//
// Items are split into contiguous chunks and each chunk runs on its own
// goroutine. worker is the chunk index in [0, cfg.Chunks(n)); two calls with
// the same worker never run concurrently, so f may reuse per-worker buffers.
// For returns once every call has finished.
func For(n int, cfg Config, f func(worker, i int)) {
	chunks := cfg.Chunks(n)
	if chunks == 1 {
		for i := 0; i < n; i++ {
			f(0, i)
		}
		return
	}

	size := cfg.chunkSize(n)
	var wg sync.WaitGroup
	for w := 0; w < chunks; w++ {
		start := w * size
		end := min(start+size, n)
		wg.Add(1)
		go func(w, s, e int) {
			defer wg.Done()
			for i := s; i < e; i++ {
				f(w, i)
			}
		}(w, start, end)
	}
	wg.Wait()
}
