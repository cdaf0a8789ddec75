// Package filter implements the image kernels on flat RGBA buffers.
//
// This package contains the pixel loops behind the public API:
//   - Pixel-wise transforms (grayscale, invert)
//   - Gaussian blur (separable, two-pass, clamp-to-edge)
//   - Sobel edge detection (3x3, zeroed 1px border)
//   - Unsharp-mask sharpen (5x5, zeroed 2px border)
//   - Mandelbrot escape-time generation
//
// All functions allocate their output and never write to the input.
// Buffers are assumed already shape-validated by the caller; the
// public package performs the length checks.
package filter
