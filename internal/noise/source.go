package noise

import opensimplex "github.com/ojrac/opensimplex-go"

// Source produces a scalar in [-1,1] for a 2D coordinate. The engine's
// generators are written against this so the hash used for a scene is a
// per-scene choice rather than a global.
type Source interface {
	Eval2(x, y float64) float64
}

// ValueSource is the default sin-hash value-noise source. Its output for a
// given (x, y, seed) never changes between calls or versions; tests and
// reproducible renders depend on that.
type ValueSource struct {
	Seed float64
}

func (s ValueSource) Eval2(x, y float64) float64 {
	return Noise2D(x, y, s.Seed)
}

// SimplexSource wraps opensimplex for callers that want smoother gradients
// than the value-noise lattice gives. Same seed, same field.
type SimplexSource struct {
	n opensimplex.Noise
}

func NewSimplexSource(seed int64) SimplexSource {
	return SimplexSource{n: opensimplex.New(seed)}
}

func (s SimplexSource) Eval2(x, y float64) float64 {
	return s.n.Eval2(x, y)
}

// FBMSource sums octaves of any Source at doubling frequency and halving
// amplitude, mirroring FBM but over a pluggable base field.
type FBMSource struct {
	Base    Source
	Octaves int
}

func (s FBMSource) Eval2(x, y float64) float64 {
	octaves := s.Octaves
	if octaves < 1 {
		octaves = DefaultOctaves
	}
	var sum float64
	amp, freq := 0.5, 1.0
	for i := 0; i < octaves; i++ {
		sum += s.Base.Eval2(x*freq, y*freq) * amp
		amp /= 2
		freq *= 2
	}
	return sum
}
