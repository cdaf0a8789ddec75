package bench

import "math"

// Primes returns every prime in [2, limit] in ascending order, found by
// trial division up to the square root of each candidate. The result is
// non-nil even when limit < 2.
func Primes(limit int) []uint32 {
	primes := []uint32{}

	for num := 2; num <= limit; num++ {
		isPrime := true
		sqrtNum := int(math.Sqrt(float64(num)))

		for i := 2; i <= sqrtNum; i++ {
			if num%i == 0 {
				isPrime = false
				break
			}
		}

		if isPrime {
			primes = append(primes, uint32(num))
		}
	}

	return primes
}
