// Package parallel provides the worker pool and the block dispatcher used to
// spread per-element tensor work across CPU cores.
package parallel

import "runtime"

// Config controls parallel execution behavior.
type Config struct {
	Enabled      bool // Whether parallel execution is enabled.
	NumWorkers   int  // Number of worker goroutines per pool; <= 0 means NumCPU.
	TileHeight   int  // Rows per dispatched tile.
	TileWidth    int  // Columns per dispatched tile.
	MinChunkSize int  // Minimum items per task for flat-range dispatch.
}

// Default tile extents for 2-D dispatch.
const (
	DefaultTileHeight = 256
	DefaultTileWidth  = 256
)

// DefaultConfig returns sensible defaults based on CPU count.
func DefaultConfig() Config {
	n := runtime.NumCPU()
	return Config{
		Enabled:      n > 1,
		NumWorkers:   n,
		TileHeight:   DefaultTileHeight,
		TileWidth:    DefaultTileWidth,
		MinChunkSize: 4096,
	}
}

// Sequential returns a config that runs every tile on the calling goroutine.
func Sequential() Config {
	cfg := DefaultConfig()
	cfg.Enabled = false
	return cfg
}

func (cfg Config) workers() int {
	if cfg.NumWorkers <= 0 {
		return runtime.NumCPU()
	}
	return cfg.NumWorkers
}

func (cfg Config) tile() (int, int) {
	th, tw := cfg.TileHeight, cfg.TileWidth
	if th <= 0 {
		th = DefaultTileHeight
	}
	if tw <= 0 {
		tw = DefaultTileWidth
	}
	return th, tw
}
