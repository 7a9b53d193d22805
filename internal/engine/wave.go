package engine

import (
	"math"

	"github.com/san-kum/glyphflow/internal/palette"
)

func (s WaveScene) apply(e *Engine) {
	ramp := palette.Get(s.Palette)
	phase := float64(e.frame) * 0.1
	mid := float64(e.height) / 2

	for x := 0; x < e.width; x++ {
		fx := float64(x)
		h := math.Sin(fx*0.15+phase)*mid*0.5 +
			math.Sin(fx*0.34+phase*1.7)*mid*0.3
		surface := int(mid + h)

		for y := surface; y < e.height; y++ {
			// Intensity decays with depth below the wave line.
			depth := float64(y-surface) / float64(e.height)
			v := 1.0 - depth*2
			if v < 0.1 {
				v = 0.1
			}
			e.grid.Set(x, y, ramp.Pick(v))
		}
	}
}
