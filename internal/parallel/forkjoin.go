package parallel

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// MinThreshold is the smallest usable tile area. With a threshold of zero a
// single pixel would keep splitting into itself.
const MinThreshold = 1

// clampThreshold raises threshold to MinThreshold.
func clampThreshold(threshold int) int {
	return max(threshold, MinThreshold)
}

// IsLeaf reports whether r is small enough to be computed directly.
func IsLeaf(r Region, threshold int) bool {
	return r.Area() <= clampThreshold(threshold)
}

// CountLeaves returns the number of terminal tiles ForkJoin computes for r.
// Empty quadrants are not counted.
func CountLeaves(r Region, threshold int) int {
	n := 0
	walk(r, clampThreshold(threshold), func(Region) { n++ })
	return n
}

func walk(r Region, threshold int, fn func(Region)) {
	if r.Empty() {
		return
	}
	if IsLeaf(r, threshold) {
		fn(r)
		return
	}
	for _, q := range r.Quadrants() {
		walk(q, threshold, fn)
	}
}

// ForkJoin computes every terminal tile of r in parallel.
//
// Regions larger than threshold are split into quadrants that are processed
// concurrently; terminal tiles run leaf on the pool. The context is checked
// before each tile, so a cancelled pass stops starting new tiles and returns
// ctx.Err(). ForkJoin returns after every started tile has finished.
//
// leaf is called concurrently with disjoint regions.
func ForkJoin(ctx context.Context, pool *WorkerPool, r Region, threshold int, leaf func(Region)) error {
	return forkJoin(ctx, pool, r, clampThreshold(threshold), leaf)
}

func forkJoin(ctx context.Context, pool *WorkerPool, r Region, threshold int, leaf func(Region)) error {
	if r.Empty() {
		return nil
	}

	if IsLeaf(r, threshold) {
		if err := ctx.Err(); err != nil {
			return err
		}
		return pool.Do(ctx, func() { leaf(r) })
	}

	g, gctx := errgroup.WithContext(ctx)
	for _, q := range r.Quadrants() {
		g.Go(func() error {
			return forkJoin(gctx, pool, q, threshold, leaf)
		})
	}
	return g.Wait()
}
