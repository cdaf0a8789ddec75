package kernels

import (
	"fmt"

	"github.com/gogpu/kernels/internal/filter"
)

// validateBuffer checks the RGBA invariant that holds for every pixel
// buffer: a whole number of 4-byte pixels.
func validateBuffer(buf []uint8) error {
	if len(buf)%4 != 0 {
		return fmt.Errorf("%w: len %d", ErrBufferLength, len(buf))
	}
	return nil
}

// validateImage checks the full shape invariant for dimensioned image
// kernels: len(buf) == width*height*4.
func validateImage(buf []uint8, width, height int) error {
	if width < 0 || height < 0 {
		return fmt.Errorf("%w: width %d, height %d", ErrNegativeParam, width, height)
	}
	if err := validateBuffer(buf); err != nil {
		return err
	}
	if len(buf) != width*height*4 {
		return fmt.Errorf("%w: len %d, want %d for %dx%d",
			ErrDimensionMismatch, len(buf), width*height*4, width, height)
	}
	return nil
}

// Grayscale converts src to luminance grayscale and returns a new
// buffer of the same length. Each pixel's R, G and B become
// floor((R*299 + G*587 + B*114) / 1000); alpha is unchanged.
// src must hold a whole number of RGBA pixels.
func Grayscale(src []uint8, opts ...Option) ([]uint8, error) {
	o := resolveOptions(opts)
	if err := validateBuffer(src); err != nil {
		return nil, err
	}

	o.logger.Debug("grayscale started", "pixels", len(src)/4)
	dst := filter.Grayscale(src)
	o.logger.Debug("grayscale finished")
	return dst, nil
}

// Invert replaces each color channel of src with 255-v and returns a
// new buffer of the same length. Alpha is unchanged. Applying Invert
// twice restores the original buffer exactly.
func Invert(src []uint8, opts ...Option) ([]uint8, error) {
	o := resolveOptions(opts)
	if err := validateBuffer(src); err != nil {
		return nil, err
	}

	o.logger.Debug("invert started", "pixels", len(src)/4)
	dst := filter.Invert(src)
	o.logger.Debug("invert finished")
	return dst, nil
}

// Blur applies a two-pass separable Gaussian blur with the given
// integer radius (sigma = radius/3, clamp-to-edge sampling) and returns
// a new buffer of the same length. Alpha bytes are carried over from
// src untouched. radius 0 is the identity.
func Blur(src []uint8, width, height, radius int, opts ...Option) ([]uint8, error) {
	o := resolveOptions(opts)
	if err := validateImage(src, width, height); err != nil {
		return nil, err
	}
	if radius < 0 {
		return nil, fmt.Errorf("%w: radius %d", ErrNegativeParam, radius)
	}

	o.logger.Debug("blur started", "width", width, "height", height, "radius", radius)
	dst := filter.Blur(src, width, height, radius, o.workers)
	o.logger.Debug("blur finished")
	return dst, nil
}

// EdgeDetect runs Sobel edge detection over the luminance of src and
// returns a new buffer of the same length: gradient magnitude in R, G
// and B, alpha copied per pixel. The 1-pixel border of the output is
// left zeroed.
func EdgeDetect(src []uint8, width, height int, opts ...Option) ([]uint8, error) {
	o := resolveOptions(opts)
	if err := validateImage(src, width, height); err != nil {
		return nil, err
	}

	o.logger.Debug("edge detection started", "width", width, "height", height)
	dst := filter.EdgeDetect(src, width, height)
	o.logger.Debug("edge detection finished")
	return dst, nil
}

// Sharpen applies a 5x5 unsharp-mask convolution scaled by
// strength/100 in integer math and returns a new buffer of the same
// length. The 2-pixel border of the output is left zeroed; alpha is
// copied per pixel. strength acts as a percentage of the full kernel
// response.
func Sharpen(src []uint8, width, height, strength int, opts ...Option) ([]uint8, error) {
	o := resolveOptions(opts)
	if err := validateImage(src, width, height); err != nil {
		return nil, err
	}
	if strength < 0 {
		return nil, fmt.Errorf("%w: strength %d", ErrNegativeParam, strength)
	}

	o.logger.Debug("sharpen started", "width", width, "height", height, "strength", strength)
	dst := filter.Sharpen(src, width, height, strength)
	o.logger.Debug("sharpen finished")
	return dst, nil
}

// Mandelbrot renders the escape-time fractal into a fresh RGBA buffer
// of width*height pixels over the fixed window [-2.5, 1.0] x [-1, 1].
// Pixels that never escape within maxIter iterations are opaque black;
// escaped pixels are colored by their escape ratio. maxIter 0 renders
// every pixel black.
func Mandelbrot(width, height, maxIter int, opts ...Option) ([]uint8, error) {
	o := resolveOptions(opts)
	if width < 0 || height < 0 || maxIter < 0 {
		return nil, fmt.Errorf("%w: width %d, height %d, maxIter %d",
			ErrNegativeParam, width, height, maxIter)
	}

	o.logger.Debug("mandelbrot started", "width", width, "height", height, "maxIter", maxIter)
	dst := filter.Mandelbrot(width, height, maxIter, o.workers)
	o.logger.Debug("mandelbrot finished")
	return dst, nil
}
