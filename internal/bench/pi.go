package bench

// piSeed is the fixed LCG seed for the Monte Carlo estimator.
const piSeed uint32 = 123456789

// EstimatePi draws samples (x, y) pairs in [-1, 1]² from a fixed-seed
// LCG, counts how many fall inside the unit circle, and returns
// 4*inside/samples. The estimate converges toward pi as samples grows
// and always lies in [0, 4]. samples <= 0 returns 0.
func EstimatePi(samples int) float64 {
	if samples <= 0 {
		return 0
	}

	g := newLCG(piSeed)
	inside := 0

	for i := 0; i < samples; i++ {
		x := g.unit()
		y := g.unit()
		if x*x+y*y <= 1.0 {
			inside++
		}
	}

	return 4.0 * float64(inside) / float64(samples)
}
