package parallel

// DispatchBlocks calls fn(y, x) for every coordinate in [0,height) × [0,width).
//
// The domain is cut into tiles of cfg.TileHeight × cfg.TileWidth (clipped at
// the boundary); each tile becomes one task on a fresh Pool of cfg.NumWorkers
// goroutines. DispatchBlocks returns once every tile has finished, with the
// first task failure if one panicked.
//
// Every coordinate is visited exactly once, in no particular order. fn must
// only write to state owned by (y, x) to stay race-free.
func DispatchBlocks(height, width int, fn func(y, x int), cfg Config) error {
	return DispatchSpans(height, width, func(y, x0, x1 int) {
		for x := x0; x < x1; x++ {
			fn(y, x)
		}
	}, cfg)
}

// DispatchSpans is DispatchBlocks at row granularity: for each row y of a tile
// it calls fn(y, x0, x1) with the tile's column range [x0, x1).
// Kernels that work on contiguous slices use it to avoid a call per element.
func DispatchSpans(height, width int, fn func(y, x0, x1 int), cfg Config) error {
	if height <= 0 || width <= 0 {
		return nil
	}

	th, tw := cfg.tile()
	tilesY := (height + th - 1) / th
	tilesX := (width + tw - 1) / tw

	tile := func(ty, tx int) {
		y0, x0 := ty*th, tx*tw
		y1, x1 := min(y0+th, height), min(x0+tw, width)
		for y := y0; y < y1; y++ {
			fn(y, x0, x1)
		}
	}

	if !cfg.Enabled || tilesY*tilesX == 1 {
		return runInline(func() {
			for ty := 0; ty < tilesY; ty++ {
				for tx := 0; tx < tilesX; tx++ {
					tile(ty, tx)
				}
			}
		})
	}

	pool := NewPool(min(cfg.workers(), tilesY*tilesX))
	for ty := 0; ty < tilesY; ty++ {
		for tx := 0; tx < tilesX; tx++ {
			pool.Enqueue(func() error {
				tile(ty, tx)
				return nil
			})
		}
	}
	return pool.Wait()
}

// For executes f(i) for i in [0, n).
// Falls back to sequential execution if parallelism is disabled or n is too small.
func For(n int, f func(i int), cfg Config) error {
	return ForRange(n, func(lo, hi int) {
		for i := lo; i < hi; i++ {
			f(i)
		}
	}, cfg)
}

// ForRange splits [0, n) into contiguous chunks and calls f(lo, hi) once per
// chunk. Chunks hold at least cfg.MinChunkSize items.
func ForRange(n int, f func(lo, hi int), cfg Config) error {
	if n <= 0 {
		return nil
	}
	if !cfg.Enabled || n < cfg.MinChunkSize {
		return runInline(func() { f(0, n) })
	}

	workers := cfg.workers()
	chunkSize := max((n+workers-1)/workers, cfg.MinChunkSize, 1)
	chunks := (n + chunkSize - 1) / chunkSize

	pool := NewPool(min(workers, chunks))
	for start := 0; start < n; start += chunkSize {
		end := min(start+chunkSize, n)
		pool.Enqueue(func() error {
			f(start, end)
			return nil
		})
	}
	return pool.Wait()
}

// runInline gives sequential execution the same failure contract as a Pool.
func runInline(fn func()) error {
	p := &Pool{}
	p.run(func() error {
		fn()
		return nil
	})
	return p.err
}
