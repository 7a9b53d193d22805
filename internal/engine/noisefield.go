package engine

import (
	"github.com/san-kum/glyphflow/internal/noise"
	"github.com/san-kum/glyphflow/internal/palette"
)

const defaultNoiseScale = 0.1

// noiseDrift is the per-frame x offset that makes a fixed-seed field crawl
// horizontally across frames.
const noiseDrift = 0.01

func (s NoiseScene) apply(e *Engine) {
	scale := s.Scale
	if scale <= 0 {
		scale = defaultNoiseScale
	}
	ramp := palette.Get(s.Palette)

	var src noise.Source = noise.ValueSource{Seed: e.seed}
	if s.Simplex {
		src = noise.NewSimplexSource(int64(e.seed))
	}
	field := noise.FBMSource{Base: src, Octaves: noise.DefaultOctaves}

	drift := float64(e.frame) * noiseDrift
	for y := 0; y < e.height; y++ {
		for x := 0; x < e.width; x++ {
			v := field.Eval2(float64(x)*scale+drift, float64(y)*scale)
			e.grid.Set(x, y, ramp.Pick((v+1)/2))
		}
	}
}
