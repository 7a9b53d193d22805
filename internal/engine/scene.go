package engine

import "strings"

// Scene is a closed union: one variant per pattern generator, each carrying
// its own parameter shape. The sealed apply method keeps dispatch
// exhaustive at compile time; scene-name strings exist only at the CLI
// boundary, in ParseScene.
type Scene interface {
	apply(e *Engine)
	Name() string
}

// Apply repaints the grid for the current frame using the given scene.
// It does not clear or tick; the caller owns the clear → apply → tick →
// render cycle.
func (e *Engine) Apply(s Scene) {
	if s == nil {
		s = NoiseScene{}
	}
	s.apply(e)
}

// NoiseScene fills the grid with a drifting fbm field.
type NoiseScene struct {
	Scale   float64 // sampling scale; 0 means the 0.1 default
	Palette string  // ramp name, density when empty/unknown
	Simplex bool    // use the opensimplex source instead of the sin-hash
}

func (NoiseScene) Name() string { return "noise" }

// FlowType selects the angle model for FlowScene.
type FlowType string

const (
	FlowRadial FlowType = "radial"
	FlowSpiral FlowType = "spiral"
	FlowCurl   FlowType = "curl"
)

// FlowScene fills the grid with quantized direction arrows.
type FlowScene struct {
	Type FlowType // radial when empty/unknown
}

func (FlowScene) Name() string { return "flow" }

// RainScene scrolls deterministic drops derived from hashing Data.
type RainScene struct {
	Data    string // payload; only its hash matters
	Palette string
}

func (RainScene) Name() string { return "matrix" }

// WaveScene draws a filled two-sine silhouette.
type WaveScene struct {
	Palette string
}

func (WaveScene) Name() string { return "wave" }

// SwarmScene orbits one symbol per agent identifier, with fading trails,
// layered over whatever is already on the grid.
type SwarmScene struct {
	Agents []string
}

func (SwarmScene) Name() string { return "swarm" }

// PixelSortScene distorts the current grid contents by sorting glyph runs
// between anchor cells; it reads the grid, so it composes after another
// generator.
type PixelSortScene struct {
	Threshold int    // ramp index above which a cell anchors
	Palette   string // ramp used to classify cells
	Base      Scene  // painted first; defaults to NoiseScene
}

func (PixelSortScene) Name() string { return "pixelsort" }

// SplashScene is the composed banner: noise field, border, centered title.
type SplashScene struct {
	Title string
	Style string // border style
}

func (SplashScene) Name() string { return "splash" }

// SceneNames is the closed set accepted at the CLI boundary.
var SceneNames = []string{"noise", "flow", "matrix", "wave", "swarm", "pixelsort", "splash"}

// ParseScene maps a scene name plus an opaque payload to a Scene value.
// Unknown names fall back to the noise scene; the payload is only ever
// hashed or displayed, never interpreted.
func ParseScene(name, data string) Scene {
	switch strings.ToLower(name) {
	case "noise":
		return NoiseScene{}
	case "flow":
		return FlowScene{}
	case "flow-spiral":
		return FlowScene{Type: FlowSpiral}
	case "flow-curl":
		return FlowScene{Type: FlowCurl}
	case "matrix":
		return RainScene{Data: data}
	case "wave":
		return WaveScene{}
	case "swarm":
		agents := strings.Fields(data)
		if len(agents) == 0 {
			agents = []string{"alpha", "beta", "gamma", "delta"}
		}
		return SwarmScene{Agents: agents}
	case "pixelsort":
		return PixelSortScene{Threshold: 4}
	case "splash":
		title := data
		if title == "" {
			title = "GLYPHFLOW"
		}
		return SplashScene{Title: title}
	default:
		return NoiseScene{}
	}
}
