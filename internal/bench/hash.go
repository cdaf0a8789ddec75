package bench

// hashSeed is the fixed starting value of the mixing chain.
const hashSeed uint32 = 0x12345678

// Murmur3-style finalizer constants.
const (
	hashMix1 uint32 = 0x85ebca6b
	hashMix2 uint32 = 0xc2b2ae35
)

// Hash runs iterations rounds of a fixed bit-mixing recurrence over a
// 32-bit state and returns the final value. Each round applies the LCG
// multiply-add, three xor-shift/multiply steps, and folds in the round
// index. All arithmetic wraps; zero rounds return the seed.
func Hash(iterations int) uint32 {
	hash := hashSeed

	for i := 0; i < iterations; i++ {
		hash = hash*lcgMul + lcgInc
		hash ^= hash >> 16
		hash *= hashMix1
		hash ^= hash >> 13
		hash *= hashMix2
		hash ^= hash >> 16
		hash += uint32(i)
	}

	return hash
}
