package parallel

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
)

// coverage counts how many times each pixel of r was visited.
func coverage(r Region, tiles []Region) []int {
	counts := make([]int, r.Area())
	for _, tile := range tiles {
		for y := tile.StartY; y < tile.EndY; y++ {
			for x := tile.StartX; x < tile.EndX; x++ {
				counts[(y-r.StartY)*r.Width()+(x-r.StartX)]++
			}
		}
	}
	return counts
}

func assertExactCover(t *testing.T, r Region, tiles []Region, threshold int) {
	t.Helper()

	for _, tile := range tiles {
		if tile.Empty() {
			t.Errorf("empty tile %v in result", tile)
		}
		if !tile.In(r) {
			t.Errorf("tile %v outside region %v", tile, r)
		}
		if tile.Area() > max(threshold, MinThreshold) {
			t.Errorf("tile %v area %d exceeds threshold %d", tile, tile.Area(), threshold)
		}
	}

	for i, n := range coverage(r, tiles) {
		if n != 1 {
			x := r.StartX + i%r.Width()
			y := r.StartY + i/r.Width()
			t.Fatalf("pixel (%d,%d) covered %d times, want exactly 1", x, y, n)
		}
	}
}

func TestLeaves_ExactCover(t *testing.T) {
	tests := []struct {
		name      string
		r         Region
		threshold int
	}{
		{"800x600 default", Rect(0, 0, 800, 600), 100},
		{"odd dimensions", Rect(0, 0, 333, 177), 100},
		{"offset region", Rect(17, 9, 91, 60), 100},
		{"thin strip", Rect(0, 0, 1, 500), 100},
		{"wide strip", Rect(0, 0, 640, 2), 100},
		{"tiny threshold", Rect(0, 0, 37, 23), 1},
		{"threshold below one", Rect(0, 0, 9, 7), 0},
		{"threshold above area", Rect(0, 0, 8, 8), 1000},
		{"reduced preview", Rect(0, 0, 200, 150), 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tiles := leaves(tt.r, tt.threshold)
			assertExactCover(t, tt.r, tiles, tt.threshold)

			if got := CountLeaves(tt.r, tt.threshold); got != len(tiles) {
				t.Errorf("CountLeaves() = %d, want %d", got, len(tiles))
			}
		})
	}
}

func TestLeaves_Empty(t *testing.T) {
	if tiles := leaves(Rect(0, 0, 0, 10), 100); len(tiles) != 0 {
		t.Errorf("leaves(empty) = %v, want none", tiles)
	}
}

func TestLeaves_SmallRegionIsSingleTile(t *testing.T) {
	r := Rect(0, 0, 10, 10)
	tiles := leaves(r, 100)
	if len(tiles) != 1 || tiles[0] != r {
		t.Errorf("leaves(10x10, 100) = %v, want [%v]", tiles, r)
	}
}

// leaves returns the terminal tiles of r in depth-first quadrant order.
func leaves(r Region, threshold int) []Region {
	var tiles []Region
	walk(r, clampThreshold(threshold), func(tile Region) {
		tiles = append(tiles, tile)
	})
	return tiles
}

func TestIsLeaf(t *testing.T) {
	if !IsLeaf(Rect(0, 0, 10, 10), 100) {
		t.Error("area 100 should be a leaf at threshold 100")
	}
	if IsLeaf(Rect(0, 0, 10, 11), 100) {
		t.Error("area 110 should not be a leaf at threshold 100")
	}
	if !IsLeaf(Rect(0, 0, 1, 1), -5) {
		t.Error("a single pixel is always a leaf")
	}
}

func TestForkJoin_ExactCover(t *testing.T) {
	pool := NewWorkerPool(4)
	defer pool.Close()

	r := Rect(0, 0, 257, 131)

	var mu sync.Mutex
	var tiles []Region
	err := ForkJoin(context.Background(), pool, r, 100, func(tile Region) {
		mu.Lock()
		tiles = append(tiles, tile)
		mu.Unlock()
	})
	if err != nil {
		t.Fatalf("ForkJoin() error = %v", err)
	}

	assertExactCover(t, r, tiles, 100)

	if len(tiles) != CountLeaves(r, 100) {
		t.Errorf("ForkJoin visited %d tiles, CountLeaves = %d", len(tiles), CountLeaves(r, 100))
	}
}

func TestForkJoin_Barrier(t *testing.T) {
	pool := NewWorkerPool(3)
	defer pool.Close()

	r := Rect(0, 0, 120, 90)

	// Every pixel must be written when ForkJoin returns.
	buf := make([]int32, r.Area())
	err := ForkJoin(context.Background(), pool, r, 64, func(tile Region) {
		for y := tile.StartY; y < tile.EndY; y++ {
			for x := tile.StartX; x < tile.EndX; x++ {
				buf[y*r.Width()+x]++
			}
		}
	})
	if err != nil {
		t.Fatalf("ForkJoin() error = %v", err)
	}

	for i, v := range buf {
		if v != 1 {
			t.Fatalf("pixel %d written %d times, want 1", i, v)
		}
	}
}

func TestForkJoin_CancelledBeforeStart(t *testing.T) {
	pool := NewWorkerPool(2)
	defer pool.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var calls atomic.Int64
	err := ForkJoin(ctx, pool, Rect(0, 0, 100, 100), 100, func(Region) { calls.Add(1) })

	if !errors.Is(err, context.Canceled) {
		t.Errorf("ForkJoin() error = %v, want context.Canceled", err)
	}
	if calls.Load() != 0 {
		t.Errorf("leaf called %d times after cancel, want 0", calls.Load())
	}
}

func TestForkJoin_CancelMidway(t *testing.T) {
	pool := NewWorkerPool(1)
	defer pool.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	r := Rect(0, 0, 200, 200)
	total := CountLeaves(r, 25)

	var calls atomic.Int64
	err := ForkJoin(ctx, pool, r, 25, func(Region) {
		if calls.Add(1) == 3 {
			cancel()
		}
	})

	if !errors.Is(err, context.Canceled) {
		t.Errorf("ForkJoin() error = %v, want context.Canceled", err)
	}
	if n := calls.Load(); n >= int64(total) {
		t.Errorf("leaf called %d times, want fewer than %d after cancel", n, total)
	}
}

func TestForkJoin_ClosedPool(t *testing.T) {
	pool := NewWorkerPool(2)
	pool.Close()

	err := ForkJoin(context.Background(), pool, Rect(0, 0, 50, 50), 100, func(Region) {})
	if !errors.Is(err, ErrPoolClosed) {
		t.Errorf("ForkJoin() error = %v, want ErrPoolClosed", err)
	}
}

func TestForkJoin_EmptyRegion(t *testing.T) {
	pool := NewWorkerPool(2)
	defer pool.Close()

	called := false
	if err := ForkJoin(context.Background(), pool, Rect(3, 3, 3, 9), 100, func(Region) { called = true }); err != nil {
		t.Errorf("ForkJoin(empty) error = %v", err)
	}
	if called {
		t.Error("leaf called for empty region")
	}
}

func BenchmarkCountLeaves_800x600(b *testing.B) {
	r := Rect(0, 0, 800, 600)
	for i := 0; i < b.N; i++ {
		_ = CountLeaves(r, 100)
	}
}

func BenchmarkForkJoin_800x600(b *testing.B) {
	pool := NewWorkerPool(0)
	defer pool.Close()

	r := Rect(0, 0, 800, 600)
	ctx := context.Background()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = ForkJoin(ctx, pool, r, 100, func(Region) {})
	}
}
