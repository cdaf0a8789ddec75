package bench

// Fibonacci returns the first count terms of the sequence
// 0, 1, 1, 2, 3, 5, ... computed iteratively. count 0 yields an empty,
// non-nil slice; count 1 yields [0]. Terms past the 93rd wrap in uint64,
// matching the modular overflow semantics of the other kernels.
func Fibonacci(count int) []uint64 {
	if count <= 0 {
		return []uint64{}
	}

	sequence := make([]uint64, 0, count)
	sequence = append(sequence, 0)
	if count >= 2 {
		sequence = append(sequence, 1)
	}

	for i := 2; i < count; i++ {
		sequence = append(sequence, sequence[i-1]+sequence[i-2])
	}

	return sequence
}
