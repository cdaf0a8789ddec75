package kernels

import "github.com/gogpu/kernels/internal/bench"

// Primes returns every prime in [2, limit] in ascending order, found by
// trial division. limit < 2 yields an empty slice.
func Primes(limit int) []uint32 {
	l := Logger()
	l.Debug("prime calculation started", "limit", limit)
	out := bench.Primes(limit)
	l.Debug("prime calculation finished", "count", len(out))
	return out
}

// MatrixMultiply builds two size x size matrices with deterministic
// contents ((i+j) mod 10 and (i*j) mod 10), computes their dense
// product, and returns it flattened row-major. size 0 yields an empty
// slice.
func MatrixMultiply(size int) []float64 {
	l := Logger()
	l.Debug("matrix multiplication started", "size", size)
	out := bench.MatrixMultiply(size)
	l.Debug("matrix multiplication finished")
	return out
}

// Fibonacci returns the first count terms of the sequence 0, 1, 1, 2,
// 3, ... computed iteratively. count 0 yields an empty slice, count 1
// yields [0].
func Fibonacci(count int) []uint64 {
	l := Logger()
	l.Debug("fibonacci calculation started", "count", count)
	out := bench.Fibonacci(count)
	l.Debug("fibonacci calculation finished")
	return out
}

// Hash applies iterations rounds of a fixed 32-bit mixing recurrence to
// a fixed seed and returns the final value. Arithmetic wraps on
// overflow; zero rounds return the seed.
func Hash(iterations int) uint32 {
	l := Logger()
	l.Debug("hash computation started", "iterations", iterations)
	out := bench.Hash(iterations)
	l.Debug("hash computation finished")
	return out
}

// EstimatePi estimates pi with a Monte Carlo simulation of samples
// fixed-seed pseudo-random points in [-1, 1]². The estimate always lies
// in [0, 4]; samples 0 returns 0.
func EstimatePi(samples int) float64 {
	l := Logger()
	l.Debug("pi estimation started", "samples", samples)
	out := bench.EstimatePi(samples)
	l.Debug("pi estimation finished", "estimate", out)
	return out
}

// SortArray generates size fixed-seed pseudo-random integers in
// [0, 9999] and returns them sorted ascending. size 0 yields an empty
// slice.
func SortArray(size int) []int32 {
	l := Logger()
	l.Debug("array sorting started", "size", size)
	out := bench.SortArray(size)
	l.Debug("array sorting finished")
	return out
}

// ProcessText case-inverts a fixed sample sentence iterations times and
// returns the first 100 characters of the concatenated result.
// iterations 0 returns the empty string.
func ProcessText(iterations int) string {
	l := Logger()
	l.Debug("text processing started", "iterations", iterations)
	out := bench.ProcessText(iterations)
	l.Debug("text processing finished", "len", len(out))
	return out
}
