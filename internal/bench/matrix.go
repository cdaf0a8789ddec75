package bench

// MatrixMultiply builds two size x size matrices with deterministic
// contents A[i][j] = (i+j) mod 10 and B[i][j] = (i*j) mod 10, computes
// the dense product with the standard O(n³) triple loop, and returns it
// flattened row-major. size 0 yields an empty, non-nil slice.
func MatrixMultiply(size int) []float64 {
	if size <= 0 {
		return []float64{}
	}

	a := make([]float64, size*size)
	b := make([]float64, size*size)
	result := make([]float64, size*size)

	for i := 0; i < size; i++ {
		for j := 0; j < size; j++ {
			a[i*size+j] = float64((i + j) % 10)
			b[i*size+j] = float64((i * j) % 10)
		}
	}

	for i := 0; i < size; i++ {
		for j := 0; j < size; j++ {
			sum := 0.0
			for k := 0; k < size; k++ {
				sum += a[i*size+k] * b[k*size+j]
			}
			result[i*size+j] = sum
		}
	}

	return result
}
