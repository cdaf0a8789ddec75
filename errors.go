package kernels

import "errors"

// Sentinel errors for input validation.
var (
	// ErrBufferLength is returned when a pixel buffer's length is not a
	// multiple of 4 (RGBA requires 4 bytes per pixel).
	ErrBufferLength = errors.New("kernels: buffer length is not a multiple of 4")

	// ErrDimensionMismatch is returned when a pixel buffer's length does
	// not equal width*height*4.
	ErrDimensionMismatch = errors.New("kernels: buffer length does not match width*height*4")

	// ErrNegativeParam is returned when a scalar parameter that must be
	// non-negative (radius, strength, iteration count) is negative.
	ErrNegativeParam = errors.New("kernels: parameter must be non-negative")
)
