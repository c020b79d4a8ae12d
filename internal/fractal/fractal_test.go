package fractal

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/tessera/internal/parallel"
	"github.com/born-ml/tessera/internal/tensor"
)

func smallConfig() Config {
	cfg := DefaultConfig()
	cfg.Width, cfg.Height = 48, 32
	cfg.MaxIterations = 64
	return cfg
}

func TestParseColormap(t *testing.T) {
	for _, cm := range []Colormap{Plasma, Inferno, Magma} {
		got, err := ParseColormap(cm.String())
		require.NoError(t, err)
		assert.Equal(t, cm, got)
	}

	got, err := ParseColormap(" MAGMA ")
	require.NoError(t, err)
	assert.Equal(t, Magma, got)

	got, err = ParseColormap("viridis")
	assert.Error(t, err)
	assert.Equal(t, Plasma, got)
}

func TestPaletteAt(t *testing.T) {
	p := Plasma.Palette()

	assert.Equal(t, p[0], p.At(0))
	assert.Equal(t, p[15], p.At(1))
	assert.Equal(t, p[0], p.At(-3), "clamped below")
	assert.Equal(t, p[15], p.At(7), "clamped above")

	mid := p.At(0.5 / 15)
	assert.InDelta(t, (p[0].R+p[1].R)/2, mid.R, 1e-12)
	assert.InDelta(t, (p[0].B+p[1].B)/2, mid.B, 1e-12)
}

func TestShadeInsideIsBlack(t *testing.T) {
	assert.Equal(t, Color{}, shade(0, 100, 0.5, Plasma.Palette()))
	assert.Equal(t, Color{}, shade(complex(-1, 0), 100, 0.5, Plasma.Palette()))
	assert.NotEqual(t, Color{}, shade(complex(2, 2), 100, 0.5, Plasma.Palette()))
}

func TestRenderShapeAndDeterminism(t *testing.T) {
	cfg := smallConfig()

	seq, err := Render(cfg, parallel.Sequential())
	require.NoError(t, err)
	assert.Equal(t, tensor.Shape{32, 48, 3}, seq.Shape())

	pcfg := parallel.DefaultConfig()
	pcfg.Enabled = true
	pcfg.NumWorkers = 4
	pcfg.TileHeight, pcfg.TileWidth = 5, 7

	par, err := Render(cfg, pcfg)
	require.NoError(t, err)
	assert.NoError(t, seq.Compare(par))
}

func TestRenderOriginIsInsideTheSet(t *testing.T) {
	cfg := smallConfig()
	cfg.Width, cfg.Height = 3, 3
	cfg.RealMin, cfg.RealMax = -0.5, 0.5
	cfg.ImagMin, cfg.ImagMax = -0.5, 0.5

	rgb, err := Render(cfg, parallel.Sequential())
	require.NoError(t, err)
	for ch := range 3 {
		v, err := rgb.At(1, 1, ch)
		require.NoError(t, err)
		assert.Zero(t, v)
	}
}

func TestRenderSupersample(t *testing.T) {
	cfg := smallConfig()
	cfg.Supersample = 2

	rgb, err := Render(cfg, parallel.DefaultConfig())
	require.NoError(t, err)
	assert.Equal(t, tensor.Shape{32, 48, 3}, rgb.Shape())

	seq, err := Render(cfg, parallel.Sequential())
	require.NoError(t, err)
	assert.NoError(t, seq.Compare(rgb), "merge and downscale follow the render config")
}

func TestRenderRejectsBadConfig(t *testing.T) {
	cfg := smallConfig()
	cfg.Colormap = "sepia"
	_, err := Render(cfg, parallel.Sequential())
	assert.Error(t, err)

	cfg = smallConfig()
	cfg.Width = 0
	_, err = Render(cfg, parallel.Sequential())
	assert.Error(t, err)
}

func TestConfigValidate(t *testing.T) {
	require.NoError(t, DefaultConfig().Validate())

	tests := map[string]func(*Config){
		"size":        func(c *Config) { c.Height = -1 },
		"iterations":  func(c *Config) { c.MaxIterations = 0 },
		"supersample": func(c *Config) { c.Supersample = 0 },
		"gamma":       func(c *Config) { c.Gamma = 0 },
		"region":      func(c *Config) { c.RealMin = c.RealMax },
	}
	for name, mutate := range tests {
		t.Run(name, func(t *testing.T) {
			cfg := DefaultConfig()
			mutate(&cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "render.yaml")
	require.NoError(t, os.WriteFile(path, []byte("width: 640\nheight: 480\ncolormap: inferno\n"), 0o600))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 640, cfg.Width)
	assert.Equal(t, 480, cfg.Height)
	assert.Equal(t, "inferno", cfg.Colormap)
	assert.Equal(t, 200, cfg.MaxIterations, "omitted keys keep defaults")
	assert.InDelta(t, -2.5, cfg.RealMin, 0)
}

func TestLoadConfigErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := LoadConfig(filepath.Join(dir, "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("width: [1, 2\n"), 0o600))
	_, err = LoadConfig(bad)
	assert.ErrorContains(t, err, "parse render config")

	invalid := filepath.Join(dir, "invalid.yaml")
	require.NoError(t, os.WriteFile(invalid, []byte("max_iterations: 0\n"), 0o600))
	_, err = LoadConfig(invalid)
	assert.ErrorContains(t, err, "max_iterations")
}
