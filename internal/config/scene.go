package config

import "github.com/san-kum/glyphflow/internal/engine"

// ToScene resolves the configured scene name and parameters into the
// engine's closed scene union. Unknown names produce the noise scene.
func (c *Config) ToScene() engine.Scene {
	switch c.Scene {
	case "noise":
		return engine.NoiseScene{Scale: c.Params.Scale, Palette: c.Palette, Simplex: c.Params.Simplex}
	case "flow":
		return engine.FlowScene{Type: engine.FlowType(c.Params.FlowType)}
	case "matrix":
		return engine.RainScene{Data: c.Params.Data, Palette: c.Palette}
	case "wave":
		return engine.WaveScene{Palette: c.Palette}
	case "swarm":
		agents := c.Params.Agents
		if len(agents) == 0 {
			agents = []string{"alpha", "beta", "gamma", "delta"}
		}
		return engine.SwarmScene{Agents: agents}
	case "pixelsort":
		return engine.PixelSortScene{
			Threshold: c.Params.Threshold,
			Palette:   c.Palette,
			Base:      engine.NoiseScene{Scale: c.Params.Scale, Palette: c.Palette},
		}
	case "splash":
		title := c.Params.Title
		if title == "" {
			title = "GLYPHFLOW"
		}
		return engine.SplashScene{Title: title, Style: c.Params.Border}
	default:
		return engine.NoiseScene{Scale: c.Params.Scale, Palette: c.Palette}
	}
}
