// Package imageio serializes finished uint8 tensors to image files.
//
// RGB images are (height, width, 3) tensors with interleaved channels;
// grayscale images are (height, width) tensors.
package imageio

import (
	"bufio"
	"fmt"
	"io"

	"github.com/pkg/errors"

	"github.com/born-ml/tessera/internal/tensor"
)

// Encoder errors.
var (
	ErrIO       = errors.New("imageio: cannot write destination")
	ErrChannels = errors.New("imageio: unexpected tensor layout")
)

// EncodePPM writes rgb as a binary PPM (P6) image.
//
//	P6
//	{width} {height}
//	255
//	{row-major R,G,B bytes}
func EncodePPM(w io.Writer, rgb *tensor.Tensor[uint8]) error {
	height, width, err := rgbExtents(rgb)
	if err != nil {
		return err
	}
	return writeNetpbm(w, "P6", width, height, rgb.Data())
}

// EncodePGM writes gray as a binary PGM (P5) image.
func EncodePGM(w io.Writer, gray *tensor.Tensor[uint8]) error {
	height, width, err := grayExtents(gray)
	if err != nil {
		return err
	}
	return writeNetpbm(w, "P5", width, height, gray.Data())
}

func writeNetpbm(w io.Writer, magic string, width, height int, payload []byte) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "%s\n%d %d\n255\n", magic, width, height); err != nil {
		return wrapIO(err, "write %s header", magic)
	}
	if _, err := bw.Write(payload); err != nil {
		return wrapIO(err, "write %s payload", magic)
	}
	if err := bw.Flush(); err != nil {
		return wrapIO(err, "flush %s", magic)
	}
	return nil
}

func rgbExtents(rgb *tensor.Tensor[uint8]) (int, int, error) {
	shape := rgb.Shape()
	if shape.Order() != 3 || shape[2] != 3 {
		return 0, 0, errors.Wrapf(ErrChannels, "expected (height, width, 3), got %v", shape)
	}
	return shape[0], shape[1], nil
}

func grayExtents(gray *tensor.Tensor[uint8]) (int, int, error) {
	shape := gray.Shape()
	if shape.Order() != 2 {
		return 0, 0, errors.Wrapf(ErrChannels, "expected (height, width), got %v", shape)
	}
	return shape[0], shape[1], nil
}

// wrapIO marks err as ErrIO and adds context.
func wrapIO(err error, format string, args ...any) error {
	return errors.Wrapf(fmt.Errorf("%w: %w", ErrIO, err), format, args...)
}
