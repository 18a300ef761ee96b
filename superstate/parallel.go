package superstate

import (
	"golang.org/x/sync/errgroup"

	"github.com/Mechazawa/wave-function-collapse/catalogue"
	"github.com/Mechazawa/wave-function-collapse/direction"
)

// ParallelThreshold is the possibility-count above which filterCompatible
// dispatches to a worker pool instead of filtering sequentially. Below
// this, goroutine setup costs more than the filter pass saves.
const ParallelThreshold = 20

// parallelChunks is the number of goroutines a parallel filter pass uses.
// Kept modest: catalogues large enough to cross ParallelThreshold are
// still small relative to typical CPU counts, so a fixed fan-out avoids
// runtime.NumCPU() churn on every tick.
const parallelChunks = 4

// filterCompatible returns the subsequence of possible whose elements
// satisfy compatible(p, neighbours), preserving order. Above
// ParallelThreshold it splits possible into contiguous chunks filtered
// concurrently by an errgroup worker pool, each chunk writing into its own
// pre-sized slot of a keep-mask so the final compaction pass is
// order-preserving regardless of goroutine scheduling.
func filterCompatible[T any](possible []*catalogue.Prototype[T], neighbours direction.Neighbors[catalogue.IDSet]) []*catalogue.Prototype[T] {
	n := len(possible)
	if n <= ParallelThreshold {
		out := make([]*catalogue.Prototype[T], 0, n)
		for _, p := range possible {
			if compatible(p, neighbours) {
				out = append(out, p)
			}
		}
		return out
	}

	keep := make([]bool, n)
	chunks := parallelChunks
	if chunks > n {
		chunks = n
	}
	chunkSize := (n + chunks - 1) / chunks

	var g errgroup.Group
	for c := 0; c < chunks; c++ {
		start := c * chunkSize
		end := start + chunkSize
		if end > n {
			end = n
		}
		if start >= end {
			continue
		}

		g.Go(func() error {
			for i := start; i < end; i++ {
				keep[i] = compatible(possible[i], neighbours)
			}
			return nil
		})
	}
	_ = g.Wait() // workers never return an error; filtering cannot fail

	out := make([]*catalogue.Prototype[T], 0, n)
	for i, k := range keep {
		if k {
			out = append(out, possible[i])
		}
	}
	return out
}
