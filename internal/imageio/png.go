package imageio

import (
	"image"
	"image/png"
	"io"

	"github.com/born-ml/tessera/internal/parallel"
	"github.com/born-ml/tessera/internal/tensor"
)

// EncodePNG writes rgb as an 8-bit RGB PNG.
func EncodePNG(w io.Writer, rgb *tensor.Tensor[uint8], cfg parallel.Config) error {
	img, err := ToImage(rgb, cfg)
	if err != nil {
		return err
	}
	if err := png.Encode(w, img); err != nil {
		return wrapIO(err, "encode png")
	}
	return nil
}

// ToImage copies an (h, w, 3) tensor into an opaque *image.RGBA.
func ToImage(rgb *tensor.Tensor[uint8], cfg parallel.Config) (*image.RGBA, error) {
	height, width, err := rgbExtents(rgb)
	if err != nil {
		return nil, err
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	src := rgb.Data()
	err = parallel.DispatchSpans(height, width, func(y, x0, x1 int) {
		row := img.Pix[y*img.Stride:]
		for x := x0; x < x1; x++ {
			s := (y*width + x) * 3
			d := x * 4
			row[d], row[d+1], row[d+2], row[d+3] = src[s], src[s+1], src[s+2], 0xff
		}
	}, cfg)
	if err != nil {
		return nil, err
	}
	return img, nil
}

// FromImage converts any image into an (h, w, 3) tensor, dropping alpha.
func FromImage(img image.Image, cfg parallel.Config) (*tensor.Tensor[uint8], error) {
	b := img.Bounds()
	height, width := b.Dy(), b.Dx()
	rgb, err := tensor.New[uint8](tensor.Shape{height, width, 3})
	if err != nil {
		return nil, err
	}

	dst := rgb.Data()
	err = parallel.DispatchBlocks(height, width, func(y, x int) {
		r, g, bl, _ := img.At(b.Min.X+x, b.Min.Y+y).RGBA()
		d := (y*width + x) * 3
		dst[d], dst[d+1], dst[d+2] = uint8(r>>8), uint8(g>>8), uint8(bl>>8)
	}, cfg)
	if err != nil {
		return nil, err
	}
	return rgb, nil
}
