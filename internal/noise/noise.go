package noise

import "math"

// Random maps a scalar seed to a pseudo-random value in [0,1) using the
// classic frac(sin(x)*10000) hash. It is deterministic but statistically
// weak; treat the determinism, not the distribution, as the contract.
func Random(seed float64) float64 {
	v := math.Sin(seed) * 10000.0
	return v - math.Floor(v)
}

// SeededRandom hashes a 2D lattice coordinate plus an instance seed into a
// scalar in [0,1) via a fixed linear combination.
func SeededRandom(x, y, seed float64) float64 {
	return Random(x*12.9898 + y*78.233 + seed)
}

// Lerp linearly interpolates between a and b by t.
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Smoothstep is the cubic ease t*t*(3-2t), used instead of raw linear
// blending so interpolated noise shows no visible lattice artifacts.
func Smoothstep(t float64) float64 {
	return t * t * (3 - 2*t)
}

// Noise2D evaluates value noise at (x, y): the four SeededRandom corner
// values of the surrounding integer lattice cell, blended bilinearly with
// Smoothstep on both axes, rescaled from [0,1] to [-1,1].
func Noise2D(x, y, seed float64) float64 {
	x0, y0 := math.Floor(x), math.Floor(y)
	fx, fy := x-x0, y-y0

	v00 := SeededRandom(x0, y0, seed)
	v10 := SeededRandom(x0+1, y0, seed)
	v01 := SeededRandom(x0, y0+1, seed)
	v11 := SeededRandom(x0+1, y0+1, seed)

	sx, sy := Smoothstep(fx), Smoothstep(fy)
	top := Lerp(v00, v10, sx)
	bottom := Lerp(v01, v11, sx)
	return Lerp(top, bottom, sy)*2 - 1
}

// DefaultOctaves is the fbm layer count used when callers pass octaves < 1.
const DefaultOctaves = 4

// FBM sums octaves of Noise2D at doubling frequency and halving amplitude,
// starting at amplitude 0.5 and frequency 1. The output is bounded by the
// geometric series of amplitudes (0.9375 for 4 octaves), not by unit range.
func FBM(x, y, seed float64, octaves int) float64 {
	if octaves < 1 {
		octaves = DefaultOctaves
	}
	var sum float64
	amp, freq := 0.5, 1.0
	for i := 0; i < octaves; i++ {
		sum += Noise2D(x*freq, y*freq, seed) * amp
		amp /= 2
		freq *= 2
	}
	return sum
}

// AmplitudeBound returns the maximum absolute value FBM can produce for the
// given octave count.
func AmplitudeBound(octaves int) float64 {
	if octaves < 1 {
		octaves = DefaultOctaves
	}
	var bound float64
	amp := 0.5
	for i := 0; i < octaves; i++ {
		bound += amp
		amp /= 2
	}
	return bound
}
