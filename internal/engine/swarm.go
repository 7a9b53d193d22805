package engine

import (
	"math"

	"github.com/san-kum/glyphflow/internal/palette"
)

// agentSymbols assigns one head glyph per agent, by position in the agent
// list, wrapping for large swarms.
var agentSymbols = []rune("◆●▲■★◉✦▣")

const trailLength = 5

// apply layers the swarm over the existing grid contents; it only writes
// the agents' heads and trails.
func (s SwarmScene) apply(e *Engine) {
	if len(s.Agents) == 0 {
		return
	}
	ramp := palette.Get("density")
	cx, cy := e.center()
	rx := float64(e.width) * 0.35
	ry := float64(e.height) * 0.35

	for i, id := range s.Agents {
		phase := 2 * math.Pi * float64(i) / float64(len(s.Agents))
		wobble := float64(hashPayload(id)%100) / 100
		angle := float64(e.frame)*0.08 + phase

		// Radius breathes with a per-agent phase so orbits don't overlap
		// into a single ring.
		breathe := 0.75 + 0.25*math.Sin(angle*2+wobble*math.Pi)

		for t := trailLength; t >= 0; t-- {
			a := angle - float64(t)*0.12
			x := int(cx + rx*breathe*math.Cos(a))
			y := int(cy + ry*breathe*math.Sin(a))
			if t == 0 {
				e.grid.Set(x, y, agentSymbols[i%len(agentSymbols)])
			} else {
				idx := (len(ramp) - 1) * (trailLength - t) / trailLength
				e.grid.Set(x, y, ramp.At(idx))
			}
		}
	}
}
