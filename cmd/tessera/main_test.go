package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/tessera/internal/parallel"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	app := newApp()
	app.Writer = &out
	err := app.Run(append([]string{"tessera"}, args...))
	return out.String(), err
}

func TestVersion(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "tessera "+version+"\n", out)
}

func TestMandelbrotWritesEveryOutput(t *testing.T) {
	dir := t.TempDir()
	ppm := filepath.Join(dir, "set.ppm")
	png := filepath.Join(dir, "set.png")

	_, err := run(t, "mandelbrot",
		"--width", "40", "--height", "24", "--iterations", "32",
		"--workers", "3", "--tile", "8",
		"-o", ppm, "-o", png)
	require.NoError(t, err)

	data, err := os.ReadFile(ppm)
	require.NoError(t, err)
	header := "P6\n40 24\n255\n"
	assert.Equal(t, header, string(data[:len(header)]))
	assert.Len(t, data, len(header)+40*24*3)

	info, err := os.Stat(png)
	require.NoError(t, err)
	assert.Positive(t, info.Size())
}

func TestMandelbrotConfigFileAndUnknownColormap(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "render.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("width: 16\nheight: 8\nmax_iterations: 16\nsupersample: 2\n"), 0o600))
	out := filepath.Join(dir, "set.pgm")

	_, err := run(t, "mandelbrot", "--config", cfgPath, "--colormap", "sepia", "-o", out)
	require.NoError(t, err)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Len(t, data, len("P5\n16 8\n255\n")+16*8)
}

func TestMandelbrotErrors(t *testing.T) {
	_, err := run(t, "mandelbrot", "--width", "8", "--height", "8")
	assert.ErrorContains(t, err, "--output")

	_, err = run(t, "mandelbrot", "--width", "0", "-o", filepath.Join(t.TempDir(), "x.ppm"))
	assert.Error(t, err)

	_, err = run(t, "mandelbrot", "--config", filepath.Join(t.TempDir(), "missing.yaml"), "-o", "x.ppm")
	assert.Error(t, err)
}

func TestBench(t *testing.T) {
	out, err := run(t, "bench", "--rows", "16", "--cols", "24", "--reps", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "sequential")
	assert.Contains(t, out, "dispatched")
	assert.Contains(t, out, "float64")
	assert.Contains(t, out, "int32")

	_, err = run(t, "bench", "--reps", "0")
	assert.Error(t, err)
}

func TestWithWorkers(t *testing.T) {
	base := parallel.DefaultConfig()

	one := withWorkers(base, 1)
	assert.False(t, one.Enabled)
	assert.Equal(t, 1, one.NumWorkers)

	four := withWorkers(base, 4)
	assert.True(t, four.Enabled)
	assert.Equal(t, 4, four.NumWorkers)

	assert.Equal(t, base, withWorkers(base, 0), "zero keeps the NumCPU default")
	assert.Equal(t, base, withWorkers(base, -2))
}

func TestMandelbrotSingleWorker(t *testing.T) {
	out := filepath.Join(t.TempDir(), "set.pgm")
	_, err := run(t, "mandelbrot", "--width", "12", "--height", "8", "--iterations", "16",
		"--supersample", "2", "--workers", "1", "-o", out)
	require.NoError(t, err)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Len(t, data, len("P5\n12 8\n255\n")+12*8)
}

func TestUniquePaths(t *testing.T) {
	assert.Equal(t, []string{"a.ppm", "b.png"}, uniquePaths([]string{"a.ppm", "b.png", "./a.ppm", "a.ppm"}))
	assert.Empty(t, uniquePaths(nil))
}

func TestMandelbrotRepeatedOutput(t *testing.T) {
	out := filepath.Join(t.TempDir(), "set.ppm")
	_, err := run(t, "mandelbrot", "--width", "20", "--height", "10", "--iterations", "16",
		"-o", out, "-o", out, "-o", out)
	require.NoError(t, err)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	header := "P6\n20 10\n255\n"
	assert.Equal(t, header, string(data[:len(header)]))
	assert.Len(t, data, len(header)+20*10*3)
}
