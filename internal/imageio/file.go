package imageio

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"

	"github.com/born-ml/tessera/internal/parallel"
	"github.com/born-ml/tessera/internal/tensor"
)

// WritePPM encodes rgb to path as PPM. The layout is checked before the file
// is created.
func WritePPM(path string, rgb *tensor.Tensor[uint8]) error {
	if _, _, err := rgbExtents(rgb); err != nil {
		return err
	}
	return writeFile(path, func(w io.Writer) error { return EncodePPM(w, rgb) })
}

// WritePGM encodes gray to path as PGM.
func WritePGM(path string, gray *tensor.Tensor[uint8]) error {
	if _, _, err := grayExtents(gray); err != nil {
		return err
	}
	return writeFile(path, func(w io.Writer) error { return EncodePGM(w, gray) })
}

// WritePNG encodes rgb to path as PNG.
func WritePNG(path string, rgb *tensor.Tensor[uint8], cfg parallel.Config) error {
	if _, _, err := rgbExtents(rgb); err != nil {
		return err
	}
	return writeFile(path, func(w io.Writer) error { return EncodePNG(w, rgb, cfg) })
}

// WriteFile picks the encoder from the extension of path: .ppm, .pgm (the
// image is converted to luma first) or .png. cfg drives the conversions.
func WriteFile(path string, rgb *tensor.Tensor[uint8], cfg parallel.Config) error {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".ppm":
		return WritePPM(path, rgb)
	case ".png":
		return WritePNG(path, rgb, cfg)
	case ".pgm":
		gray, err := Luma(rgb, cfg)
		if err != nil {
			return err
		}
		return WritePGM(path, gray)
	default:
		return errors.Errorf("imageio: unsupported output format %q for %s", ext, path)
	}
}

func writeFile(path string, encode func(io.Writer) error) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return wrapIO(err, "unable to open %s for writing", path)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = wrapIO(cerr, "close %s", path)
		}
	}()

	if err := encode(f); err != nil {
		return errors.WithMessage(err, path)
	}
	return nil
}
