package imageio

import (
	"github.com/nfnt/resize"
	"github.com/pkg/errors"

	"github.com/born-ml/tessera/internal/parallel"
	"github.com/born-ml/tessera/internal/tensor"
)

// Downscale resamples an (h, w, 3) tensor to width × height with a Lanczos3
// filter. It is used to collapse a supersampled render to its output size.
// cfg drives the tensor/image conversions on either side of the resample.
func Downscale(rgb *tensor.Tensor[uint8], width, height int, cfg parallel.Config) (*tensor.Tensor[uint8], error) {
	if width <= 0 || height <= 0 {
		return nil, errors.Wrapf(tensor.ErrEmptyShape, "downscale to %dx%d", width, height)
	}
	img, err := ToImage(rgb, cfg)
	if err != nil {
		return nil, err
	}
	resized := resize.Resize(uint(width), uint(height), img, resize.Lanczos3)
	return FromImage(resized, cfg)
}
