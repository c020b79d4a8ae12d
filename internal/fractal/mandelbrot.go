// Package fractal renders the Mandelbrot set into uint8 RGB tensors.
package fractal

import (
	"math"
	"math/cmplx"

	"github.com/born-ml/tessera/internal/imageio"
	"github.com/born-ml/tessera/internal/parallel"
	"github.com/born-ml/tessera/internal/tensor"
)

// Render draws the set described by cfg and returns a (height, width, 3)
// tensor. Each pixel is computed by exactly one dispatched tile; the three
// channel planes are merged afterwards and, with supersampling, downscaled
// to the requested size.
func Render(cfg Config, pcfg parallel.Config) (*tensor.Tensor[uint8], error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cm, err := ParseColormap(cfg.Colormap)
	if err != nil {
		return nil, err
	}
	palette := cm.Palette()

	width, height := cfg.Width*cfg.Supersample, cfg.Height*cfg.Supersample
	shape := tensor.Shape{height, width}

	red, err := tensor.New[uint8](shape)
	if err != nil {
		return nil, err
	}
	green, blue := red.Clone(), red.Clone()
	rd, gd, bd := red.Data(), green.Data(), blue.Data()

	dx := (cfg.RealMax - cfg.RealMin) / float64(max(width-1, 1))
	dy := (cfg.ImagMax - cfg.ImagMin) / float64(max(height-1, 1))

	err = parallel.DispatchBlocks(height, width, func(y, x int) {
		c := complex(cfg.RealMin+float64(x)*dx, cfg.ImagMin+float64(y)*dy)
		col := shade(c, cfg.MaxIterations, cfg.Gamma, palette)

		i := y*width + x
		rd[i], gd[i], bd[i] = toByte(col.R), toByte(col.G), toByte(col.B)
	}, pcfg)
	if err != nil {
		return nil, err
	}

	rgb, err := imageio.MergePlanes(red, green, blue, pcfg)
	if err != nil {
		return nil, err
	}
	if cfg.Supersample > 1 {
		return imageio.Downscale(rgb, cfg.Width, cfg.Height, pcfg)
	}
	return rgb, nil
}

// shade returns the color of point c: black inside the set, otherwise the
// palette sampled at the gamma-corrected smooth iteration count.
func shade(c complex128, maxIterations int, gamma float64, palette *Palette) Color {
	z := complex(0, 0)
	iteration := 0
	for cmplx.Abs(z) < 2 && iteration < maxIterations {
		z = z*z + c
		iteration++
	}
	if iteration >= maxIterations {
		return Color{}
	}

	absz := cmplx.Abs(z)
	if absz == 0 {
		absz = 1e-10
	}
	mu := float64(iteration) - math.Log(math.Log(absz))/math.Ln2
	t := math.Pow(max(mu/float64(maxIterations), 0), gamma)
	return palette.At(t)
}

func toByte(v float64) uint8 {
	return uint8(min(max(v*255, 0), 255))
}
