// Package kernels provides a collection of independent, stateless
// computational kernels: image filters operating on flat RGBA pixel
// buffers, and pure numeric benchmarks.
//
// # Overview
//
// kernels grew out of the GoGPU ecosystem's need for a plain-CPU set of
// reference filters and compute workloads. Every kernel is a pure
// function: fixed inputs in, a freshly allocated result out, no state
// shared between calls. The image family (Grayscale, Invert, Blur,
// EdgeDetect, Sharpen, Mandelbrot) works on flat RGBA byte buffers with
// 4 interleaved channels per pixel, row-major. The benchmark family
// (Primes, MatrixMultiply, Fibonacci, Hash, EstimatePi, SortArray,
// ProcessText) takes scalar parameters only.
//
// # Quick Start
//
//	import "github.com/gogpu/kernels"
//
//	pm, err := kernels.LoadPNG("input.png")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	blurred, err := pm.Blur(5)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	blurred.SavePNG("output.png")
//
// Callers holding raw buffers use the flat-slice functions directly:
//
//	out, err := kernels.Blur(buf, width, height, 5)
//
// # Buffer Contract
//
// Image kernels validate their input shape: the buffer length must be a
// multiple of 4, and for the dimensioned kernels it must equal
// width*height*4. Violations return an error wrapping one of the
// package sentinel errors; kernels never read or write out of bounds.
// The returned buffer is always newly allocated and never aliases the
// input.
//
// # Parallelism
//
// All kernels are sequential by default. The heavy pixel loops
// (Blur, Mandelbrot) accept WithParallelism to split rows across a
// worker pool; results are byte-identical to the sequential path
// because each output pixel's accumulation order is unchanged.
//
// # Logging
//
// kernels produces no log output by default. Call SetLogger to receive
// per-kernel started/finished trace lines at debug level. Trace output
// is diagnostic only and not part of any kernel's contract.
package kernels

// Version information
const (
	// Version is the current version of the library
	Version = "0.2.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 2

	// VersionPatch is the patch version
	VersionPatch = 0
)
