package bench

import "math"

// LCG multiplier and increment (the classic glibc rand constants).
const (
	lcgMul = 1103515245
	lcgInc = 12345
)

// lcg is a 32-bit linear congruential generator. Deterministic for a
// given seed; uint32 arithmetic wraps by definition, which is the
// intended modulus.
type lcg struct {
	state uint32
}

// newLCG returns a generator starting from seed.
func newLCG(seed uint32) *lcg {
	return &lcg{state: seed}
}

// next advances the generator and returns the new state.
func (g *lcg) next() uint32 {
	g.state = g.state*lcgMul + lcgInc
	return g.state
}

// unit draws a value in [-1, 1] by scaling the full uint32 range.
func (g *lcg) unit() float64 {
	return float64(g.next())/float64(math.MaxUint32)*2 - 1
}
