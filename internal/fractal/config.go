package fractal

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Config describes one Mandelbrot render.
type Config struct {
	Width         int     `yaml:"width"`
	Height        int     `yaml:"height"`
	MaxIterations int     `yaml:"max_iterations"`
	Colormap      string  `yaml:"colormap"`
	Gamma         float64 `yaml:"gamma"`
	Supersample   int     `yaml:"supersample"` // Render at N× and downscale.

	// Region of the complex plane.
	RealMin float64 `yaml:"real_min"`
	RealMax float64 `yaml:"real_max"`
	ImagMin float64 `yaml:"imag_min"`
	ImagMax float64 `yaml:"imag_max"`
}

// DefaultConfig renders the full set at 4K with the plasma colormap.
func DefaultConfig() Config {
	return Config{
		Width:         3840,
		Height:        2160,
		MaxIterations: 200,
		Colormap:      Plasma.String(),
		Gamma:         0.5,
		Supersample:   1,
		RealMin:       -2.5,
		RealMax:       1.0,
		ImagMin:       -1.0,
		ImagMax:       1.0,
	}
}

// LoadConfig reads a YAML file over DefaultConfig, so omitted keys keep their
// defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, errors.Wrapf(err, "read render config %s", path)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, errors.Wrapf(err, "parse render config %s", path)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, errors.WithMessage(err, path)
	}
	return cfg, nil
}

// Validate checks the render parameters.
func (c Config) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return errors.Errorf("fractal: image size must be positive, got %dx%d", c.Width, c.Height)
	case c.MaxIterations <= 0:
		return errors.Errorf("fractal: max_iterations must be positive, got %d", c.MaxIterations)
	case c.Supersample <= 0:
		return errors.Errorf("fractal: supersample must be positive, got %d", c.Supersample)
	case c.Gamma <= 0:
		return errors.Errorf("fractal: gamma must be positive, got %g", c.Gamma)
	case c.RealMin >= c.RealMax || c.ImagMin >= c.ImagMax:
		return errors.Errorf("fractal: empty region [%g, %g] x [%g, %g]", c.RealMin, c.RealMax, c.ImagMin, c.ImagMax)
	}
	return nil
}
