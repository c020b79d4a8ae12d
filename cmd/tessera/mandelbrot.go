package main

import (
	"path/filepath"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli"
	"golang.org/x/sync/errgroup"

	"github.com/born-ml/tessera/internal/fractal"
	"github.com/born-ml/tessera/internal/imageio"
	"github.com/born-ml/tessera/internal/parallel"
)

func mandelbrotCommand() cli.Command {
	return cli.Command{
		Name:  "mandelbrot",
		Usage: "Render the Mandelbrot set to PPM, PGM or PNG files",
		Flags: []cli.Flag{
			cli.StringFlag{Name: "config,c", Usage: "YAML render config; flags override its values"},
			cli.StringFlag{Name: "colormap", Usage: "plasma, inferno or magma"},
			cli.IntFlag{Name: "width", Usage: "Image width in pixels"},
			cli.IntFlag{Name: "height", Usage: "Image height in pixels"},
			cli.IntFlag{Name: "iterations,i", Usage: "Maximum escape iterations"},
			cli.IntFlag{Name: "supersample,s", Usage: "Render at N times the size and downscale"},
			cli.IntFlag{Name: "workers,w", Usage: "Worker goroutines per pool (0 means NumCPU, 1 disables the pool)"},
			cli.IntFlag{Name: "tile", Usage: "Square tile edge for the block dispatcher"},
			cli.StringSliceFlag{Name: "output,o", Usage: "Output file (.ppm, .pgm or .png); repeatable"},
		},
		Action: func(c *cli.Context) error {
			outputs := uniquePaths(c.StringSlice("output"))
			if len(outputs) == 0 {
				return errors.New("mandelbrot: at least one --output is required")
			}

			cfg, err := renderConfig(c)
			if err != nil {
				return err
			}
			return renderMandelbrot(cfg, dispatchConfig(c), outputs)
		},
	}
}

// renderConfig layers explicitly set flags over the config file (or the
// defaults when no file is given).
func renderConfig(c *cli.Context) (fractal.Config, error) {
	cfg := fractal.DefaultConfig()
	if path := c.String("config"); path != "" {
		loaded, err := fractal.LoadConfig(path)
		if err != nil {
			return cfg, err
		}
		cfg = loaded
	}

	if c.IsSet("colormap") {
		cfg.Colormap = c.String("colormap")
	}
	if c.IsSet("width") {
		cfg.Width = c.Int("width")
	}
	if c.IsSet("height") {
		cfg.Height = c.Int("height")
	}
	if c.IsSet("iterations") {
		cfg.MaxIterations = c.Int("iterations")
	}
	if c.IsSet("supersample") {
		cfg.Supersample = c.Int("supersample")
	}

	if _, err := fractal.ParseColormap(cfg.Colormap); err != nil {
		logrus.WithField("colormap", cfg.Colormap).Warn("unknown colormap, using plasma")
		cfg.Colormap = fractal.Plasma.String()
	}
	return cfg, cfg.Validate()
}

func dispatchConfig(c *cli.Context) parallel.Config {
	pcfg := parallel.DefaultConfig()
	if c.IsSet("workers") {
		pcfg = withWorkers(pcfg, c.Int("workers"))
	}
	if c.IsSet("tile") {
		pcfg.TileHeight, pcfg.TileWidth = c.Int("tile"), c.Int("tile")
	}
	return pcfg
}

// withWorkers applies a --workers value: 1 runs inline, more than one forces
// pools of that size, and zero or less keeps the NumCPU default.
func withWorkers(pcfg parallel.Config, n int) parallel.Config {
	switch {
	case n == 1:
		pcfg.Enabled = false
		pcfg.NumWorkers = 1
	case n > 1:
		pcfg.Enabled = true
		pcfg.NumWorkers = n
	}
	return pcfg
}

func renderMandelbrot(cfg fractal.Config, pcfg parallel.Config, outputs []string) error {
	log := logrus.WithFields(logrus.Fields{
		"width":       cfg.Width,
		"height":      cfg.Height,
		"iterations":  cfg.MaxIterations,
		"colormap":    cfg.Colormap,
		"supersample": cfg.Supersample,
	})
	log.WithFields(logrus.Fields{
		"workers":  pcfg.NumWorkers,
		"parallel": pcfg.Enabled,
	}).Debug("rendering")

	start := time.Now()
	rgb, err := fractal.Render(cfg, pcfg)
	if err != nil {
		return errors.Wrap(err, "render mandelbrot")
	}
	log.WithField("elapsed", time.Since(start)).Info("rendered")

	var g errgroup.Group
	for _, path := range outputs {
		g.Go(func() error {
			if err := imageio.WriteFile(path, rgb, pcfg); err != nil {
				return err
			}
			logrus.WithField("path", path).Info("wrote image")
			return nil
		})
	}
	return g.Wait()
}

// uniquePaths drops repeated outputs, keeping first-seen order, so no two
// writers share a file.
func uniquePaths(paths []string) []string {
	seen := make(map[string]bool, len(paths))
	out := paths[:0:0]
	for _, p := range paths {
		key := filepath.Clean(p)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, p)
	}
	return out
}
