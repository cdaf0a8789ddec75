package filter

import (
	"math"

	"github.com/gogpu/kernels/internal/parallel"
)

// Viewing window on the complex plane. Fixed: the classic full-set
// framing with the real axis spanning [-2.5, 1.0].
const (
	mandelXMin = -2.5
	mandelXMax = 1.0
	mandelYMin = -1.0
	mandelYMax = 1.0
)

// Mandelbrot renders the escape-time fractal into a fresh RGBA buffer
// of width*height pixels. Each pixel maps to a point c in the fixed
// window and iterates z = z² + c from zero until |z|² > 4 or maxIter
// iterations. Points that never escape render opaque black; escaped
// points get R = 255*(1-ratio), G = 255*sqrt(ratio), B = 255*ratio for
// ratio = iteration/maxIter. Alpha is always 255.
//
// workers > 1 splits rows across a worker pool; per-pixel iteration is
// independent, so the output is identical to the sequential path.
func Mandelbrot(width, height, maxIter, workers int) []uint8 {
	if width <= 0 || height <= 0 {
		return []uint8{}
	}

	dst := make([]uint8, width*height*4)

	xScale := (mandelXMax - mandelXMin) / float64(width)
	yScale := (mandelYMax - mandelYMin) / float64(height)

	parallel.Rows(workers, height, func(py0, py1 int) {
		for py := py0; py < py1; py++ {
			y0 := mandelYMin + float64(py)*yScale

			for px := 0; px < width; px++ {
				x0 := mandelXMin + float64(px)*xScale

				var x, y float64
				iteration := 0
				for x*x+y*y <= 4.0 && iteration < maxIter {
					x, y = x*x-y*y+x0, 2*x*y+y0
					iteration++
				}

				idx := (py*width + px) * 4
				if iteration < maxIter {
					ratio := float64(iteration) / float64(maxIter)
					dst[idx+0] = uint8(255 * (1 - ratio))
					dst[idx+1] = uint8(255 * math.Sqrt(ratio))
					dst[idx+2] = uint8(255 * ratio)
				}
				// In-set pixels keep the zeroed R, G, B (black).
				dst[idx+3] = 255
			}
		}
	})

	return dst
}
