package fractal

import (
	"fmt"
	"strings"
)

// Color is an RGB triple with components in [0, 1].
type Color struct {
	R, G, B float64
}

// Palette is a 16-stop colormap sampled uniformly over [0, 1].
type Palette [16]Color

// Colormap selects one of the built-in palettes.
type Colormap int

// Built-in colormaps.
const (
	Plasma Colormap = iota
	Inferno
	Magma
)

// String returns the colormap name.
func (c Colormap) String() string {
	switch c {
	case Plasma:
		return "plasma"
	case Inferno:
		return "inferno"
	case Magma:
		return "magma"
	default:
		return fmt.Sprintf("Colormap(%d)", int(c))
	}
}

// ParseColormap maps a name (case-insensitive) to a Colormap.
func ParseColormap(name string) (Colormap, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "plasma":
		return Plasma, nil
	case "inferno":
		return Inferno, nil
	case "magma":
		return Magma, nil
	default:
		return Plasma, fmt.Errorf("fractal: unknown colormap %q", name)
	}
}

// Palette returns the stops of the colormap; unknown values fall back to plasma.
func (c Colormap) Palette() *Palette {
	switch c {
	case Inferno:
		return &inferno16
	case Magma:
		return &magma16
	default:
		return &plasma16
	}
}

// At linearly interpolates the palette at t, clamped to [0, 1].
func (p *Palette) At(t float64) Color {
	t = min(max(t, 0), 1)

	pos := t * float64(len(p)-1)
	idx := int(pos)
	if idx >= len(p)-1 {
		return p[len(p)-1]
	}
	frac := pos - float64(idx)

	c0, c1 := p[idx], p[idx+1]
	return Color{
		R: c0.R + frac*(c1.R-c0.R),
		G: c0.G + frac*(c1.G-c0.G),
		B: c0.B + frac*(c1.B-c0.B),
	}
}

var plasma16 = Palette{
	{0.050383, 0.029803, 0.527975},
	{0.220057, 0.031733, 0.577770},
	{0.390935, 0.120072, 0.642666},
	{0.556753, 0.209570, 0.706718},
	{0.691500, 0.301554, 0.753605},
	{0.800805, 0.395432, 0.787964},
	{0.894855, 0.488268, 0.800058},
	{0.974083, 0.576579, 0.792126},
	{0.989363, 0.665161, 0.749019},
	{0.980466, 0.748046, 0.685294},
	{0.957676, 0.821573, 0.611141},
	{0.915517, 0.886242, 0.549019},
	{0.855929, 0.937742, 0.505085},
	{0.779101, 0.975572, 0.488296},
	{0.681585, 0.993476, 0.553897},
	{0.489055, 0.998535, 0.686159},
}

var inferno16 = Palette{
	{0.001462, 0.000466, 0.013866},
	{0.071176, 0.016284, 0.097467},
	{0.180653, 0.045510, 0.216018},
	{0.282885, 0.095953, 0.341051},
	{0.392636, 0.149897, 0.459686},
	{0.507860, 0.201772, 0.563265},
	{0.620300, 0.249552, 0.645943},
	{0.730889, 0.291330, 0.705497},
	{0.837015, 0.330279, 0.750423},
	{0.932119, 0.376821, 0.783976},
	{0.993248, 0.432737, 0.800192},
	{0.996096, 0.525576, 0.753632},
	{0.983450, 0.622158, 0.629723},
	{0.963911, 0.717061, 0.477504},
	{0.941029, 0.815517, 0.271305},
	{0.987533, 0.991438, 0.749504},
}

var magma16 = Palette{
	{0.001462, 0.000466, 0.013866},
	{0.018426, 0.014381, 0.084426},
	{0.047190, 0.033945, 0.149914},
	{0.084103, 0.052407, 0.193828},
	{0.144870, 0.083565, 0.244538},
	{0.229904, 0.131360, 0.297620},
	{0.297237, 0.167644, 0.328039},
	{0.374835, 0.205128, 0.354373},
	{0.507988, 0.261720, 0.391039},
	{0.657103, 0.318700, 0.419197},
	{0.789441, 0.366240, 0.435302},
	{0.898078, 0.404282, 0.443285},
	{0.952971, 0.423286, 0.445606},
	{0.989953, 0.456938, 0.451345},
	{0.920997, 0.508797, 0.456701},
	{0.987053, 0.991438, 0.749504},
}
