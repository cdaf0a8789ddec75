package filter

import "math"

// Sobel gradient kernels.
var (
	sobelX = [3][3]int{{-1, 0, 1}, {-2, 0, 2}, {-1, 0, 1}}
	sobelY = [3][3]int{{-1, -2, -1}, {0, 0, 0}, {1, 2, 1}}
)

// Unsharp-mask kernel: center 8, inner ring 2, outer ring -1.
// The weights sum to zero; sharpenDivisor normalizes the center lobe.
var sharpenKernel = [5][5]int{
	{-1, -1, -1, -1, -1},
	{-1, 2, 2, 2, -1},
	{-1, 2, 8, 2, -1},
	{-1, 2, 2, 2, -1},
	{-1, -1, -1, -1, -1},
}

const sharpenDivisor = 8

// EdgeDetect computes the Sobel gradient magnitude of the luminance at
// each interior pixel and writes it to R, G and B of a fresh zeroed
// buffer, with alpha copied from the source pixel. The 1-pixel border
// is left zeroed.
func EdgeDetect(src []uint8, width, height int) []uint8 {
	dst := make([]uint8, len(src))

	for y := 1; y < height-1; y++ {
		for x := 1; x < width-1; x++ {
			var gx, gy float64

			for ky := 0; ky < 3; ky++ {
				for kx := 0; kx < 3; kx++ {
					idx := ((y+ky-1)*width + (x + kx - 1)) * 4
					gray := float64(src[idx+0])*0.299 +
						float64(src[idx+1])*0.587 +
						float64(src[idx+2])*0.114

					gx += gray * float64(sobelX[ky][kx])
					gy += gray * float64(sobelY[ky][kx])
				}
			}

			magnitude := math.Min(math.Sqrt(gx*gx+gy*gy), 255)

			idx := (y*width + x) * 4
			m := uint8(magnitude)
			dst[idx+0] = m
			dst[idx+1] = m
			dst[idx+2] = m
			dst[idx+3] = src[idx+3]
		}
	}

	return dst
}

// Sharpen convolves each interior pixel with the 5x5 unsharp-mask
// kernel, scales the sum by strength/(divisor*100) in integer math,
// adds it to the original channel value and clamps to [0, 255].
// The output is a fresh zeroed buffer; the 2-pixel border stays zeroed.
// Alpha is copied from the source pixel. strength acts as a percentage:
// 100 applies the full kernel response.
func Sharpen(src []uint8, width, height, strength int) []uint8 {
	dst := make([]uint8, len(src))

	for y := 2; y < height-2; y++ {
		for x := 2; x < width-2; x++ {
			var rSum, gSum, bSum int

			for ky := 0; ky < 5; ky++ {
				for kx := 0; kx < 5; kx++ {
					idx := ((y+ky-2)*width + (x + kx - 2)) * 4
					k := sharpenKernel[ky][kx]

					rSum += int(src[idx+0]) * k
					gSum += int(src[idx+1]) * k
					bSum += int(src[idx+2]) * k
				}
			}

			idx := (y*width + x) * 4
			dst[idx+0] = uint8(clampInt(int(src[idx+0])+(rSum*strength)/(sharpenDivisor*100), 0, 255))
			dst[idx+1] = uint8(clampInt(int(src[idx+1])+(gSum*strength)/(sharpenDivisor*100), 0, 255))
			dst[idx+2] = uint8(clampInt(int(src[idx+2])+(bSum*strength)/(sharpenDivisor*100), 0, 255))
			dst[idx+3] = src[idx+3]
		}
	}

	return dst
}

// clampInt clamps v to [minVal, maxVal].
func clampInt(v, minVal, maxVal int) int {
	if v < minVal {
		return minVal
	}
	if v > maxVal {
		return maxVal
	}
	return v
}
