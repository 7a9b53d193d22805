package engine

import (
	"math"

	"github.com/san-kum/glyphflow/internal/noise"
	"github.com/san-kum/glyphflow/internal/palette"
)

func (s FlowScene) apply(e *Engine) {
	cx, cy := e.center()
	spin := float64(e.frame) * 0.05

	for y := 0; y < e.height; y++ {
		for x := 0; x < e.width; x++ {
			dx := float64(x) - cx
			dy := float64(y) - cy

			var angle float64
			switch s.Type {
			case FlowSpiral:
				angle = math.Atan2(dy, dx) + math.Sqrt(dx*dx+dy*dy)*0.3 + spin
			case FlowCurl:
				angle = noise.Noise2D(float64(x)*0.15+spin, float64(y)*0.15, e.seed) * math.Pi
			default: // radial, also the fallback for unknown types
				angle = math.Atan2(dy, dx)
			}

			e.grid.Set(x, y, palette.Arrows.At(angleBucket(angle)))
		}
	}
}

// angleBucket quantizes an angle into one of the 8 arrow directions,
// bucket 0 starting at -π.
func angleBucket(angle float64) int {
	norm := math.Mod(angle+math.Pi, 2*math.Pi)
	if norm < 0 {
		norm += 2 * math.Pi
	}
	b := int(norm / (2 * math.Pi) * 8)
	if b > 7 {
		b = 7
	}
	return b
}
