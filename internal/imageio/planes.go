package imageio

import (
	"github.com/pkg/errors"

	"github.com/born-ml/tessera/internal/parallel"
	"github.com/born-ml/tessera/internal/tensor"
)

// MergePlanes interleaves three (h, w) channel planes into an (h, w, 3) tensor.
func MergePlanes(r, g, b *tensor.Tensor[uint8], cfg parallel.Config) (*tensor.Tensor[uint8], error) {
	height, width, err := grayExtents(r)
	if err != nil {
		return nil, err
	}
	for _, p := range []*tensor.Tensor[uint8]{g, b} {
		if !p.Shape().Equal(r.Shape()) {
			return nil, errors.Wrapf(tensor.ErrShapeMismatch, "planes %v and %v", r.Shape(), p.Shape())
		}
	}

	rgb, err := tensor.New[uint8](tensor.Shape{height, width, 3})
	if err != nil {
		return nil, err
	}

	dst, rd, gd, bd := rgb.Data(), r.Data(), g.Data(), b.Data()
	err = parallel.DispatchBlocks(height, width, func(y, x int) {
		i := y*width + x
		dst[3*i], dst[3*i+1], dst[3*i+2] = rd[i], gd[i], bd[i]
	}, cfg)
	if err != nil {
		return nil, err
	}
	return rgb, nil
}

// Luma converts an (h, w, 3) tensor to an (h, w) grayscale tensor using the
// ITU-R BT.601 weights.
func Luma(rgb *tensor.Tensor[uint8], cfg parallel.Config) (*tensor.Tensor[uint8], error) {
	height, width, err := rgbExtents(rgb)
	if err != nil {
		return nil, err
	}
	gray, err := tensor.New[uint8](tensor.Shape{height, width})
	if err != nil {
		return nil, err
	}

	src, dst := rgb.Data(), gray.Data()
	err = parallel.For(len(dst), func(i int) {
		r, g, b := uint32(src[3*i]), uint32(src[3*i+1]), uint32(src[3*i+2])
		dst[i] = uint8((299*r + 587*g + 114*b + 500) / 1000)
	}, cfg)
	if err != nil {
		return nil, err
	}
	return gray, nil
}
