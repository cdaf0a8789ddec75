package filter

import (
	"math"

	"github.com/gogpu/kernels/internal/parallel"
)

// Blur applies a separable Gaussian blur with the given integer radius
// and returns a new buffer. The window is x-radius..x+radius per pass
// with clamp-to-edge sampling; sigma is radius/3. Alpha is never
// blurred: the output carries the original alpha bytes.
//
// workers > 1 splits the rows of each pass across a worker pool. Each
// output pixel accumulates its window in the same order either way, so
// the result is byte-identical to the sequential path.
//
// radius 0 (or a degenerate image) is the identity and returns a plain
// copy, avoiding the zero-sigma division in the weight formula.
func Blur(src []uint8, width, height, radius, workers int) []uint8 {
	dst := make([]uint8, len(src))
	copy(dst, src)
	if radius <= 0 || width <= 0 || height <= 0 {
		return dst
	}

	weights := gaussianWeights(radius)

	// Intermediate buffer for the horizontal pass. Cloned from src so
	// alpha bytes stay in place; the passes only write R, G, B.
	temp := make([]uint8, len(src))
	copy(temp, src)

	parallel.Rows(workers, height, func(y0, y1 int) {
		blurHorizontal(src, temp, width, y0, y1, radius, weights)
	})
	parallel.Rows(workers, height, func(y0, y1 int) {
		blurVertical(temp, dst, width, height, y0, y1, radius, weights)
	})

	return dst
}

// gaussianWeights returns the unnormalized 1D Gaussian weights
// exp(-dx²/(2σ²)) for dx in -radius..radius, with σ = radius/3.
// Normalization happens per pixel by the accumulated weight sum.
func gaussianWeights(radius int) []float64 {
	sigma := float64(radius) / 3.0
	twoSigmaSq := 2.0 * sigma * sigma

	weights := make([]float64, 2*radius+1)
	for dx := -radius; dx <= radius; dx++ {
		weights[dx+radius] = math.Exp(-float64(dx*dx) / twoSigmaSq)
	}
	return weights
}

// blurHorizontal convolves rows y0..y1 of src with the 1D kernel and
// writes R, G, B into temp. Samples are clamped to [0, width-1].
func blurHorizontal(src, temp []uint8, width, y0, y1, radius int, weights []float64) {
	for y := y0; y < y1; y++ {
		row := y * width
		for x := 0; x < width; x++ {
			var rSum, gSum, bSum, weightSum float64

			for dx := -radius; dx <= radius; dx++ {
				nx := clampInt(x+dx, 0, width-1)
				idx := (row + nx) * 4
				w := weights[dx+radius]

				rSum += float64(src[idx+0]) * w
				gSum += float64(src[idx+1]) * w
				bSum += float64(src[idx+2]) * w
				weightSum += w
			}

			idx := (row + x) * 4
			temp[idx+0] = uint8(rSum / weightSum)
			temp[idx+1] = uint8(gSum / weightSum)
			temp[idx+2] = uint8(bSum / weightSum)
		}
	}
}

// blurVertical convolves rows y0..y1 reading from temp and writing
// R, G, B into dst. Samples are clamped to [0, height-1].
func blurVertical(temp, dst []uint8, width, height, y0, y1, radius int, weights []float64) {
	for y := y0; y < y1; y++ {
		for x := 0; x < width; x++ {
			var rSum, gSum, bSum, weightSum float64

			for dy := -radius; dy <= radius; dy++ {
				ny := clampInt(y+dy, 0, height-1)
				idx := (ny*width + x) * 4
				w := weights[dy+radius]

				rSum += float64(temp[idx+0]) * w
				gSum += float64(temp[idx+1]) * w
				bSum += float64(temp[idx+2]) * w
				weightSum += w
			}

			idx := (y*width + x) * 4
			dst[idx+0] = uint8(rSum / weightSum)
			dst[idx+1] = uint8(gSum / weightSum)
			dst[idx+2] = uint8(bSum / weightSum)
		}
	}
}
