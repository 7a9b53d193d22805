package config

// Presets are the named ready-made configurations per scene.
var Presets = map[string]map[string]*Config{
	"noise": {
		"calm": {
			Width: 80, Height: 24, FPS: 8, Scene: "noise", Palette: "density",
			Params: SceneConfig{Scale: 0.05},
		},
		"storm": {
			Width: 80, Height: 24, FPS: 24, Scene: "noise", Palette: "blocks",
			Params: SceneConfig{Scale: 0.25},
		},
		"simplex": {
			Width: 80, Height: 24, FPS: 12, Scene: "noise", Palette: "shade",
			Params: SceneConfig{Scale: 0.08, Simplex: true},
		},
	},
	"flow": {
		"radial": {
			Width: 80, Height: 24, FPS: 12, Scene: "flow",
			Params: SceneConfig{FlowType: "radial"},
		},
		"spiral": {
			Width: 80, Height: 24, FPS: 18, Scene: "flow",
			Params: SceneConfig{FlowType: "spiral"},
		},
		"curl": {
			Width: 80, Height: 24, FPS: 12, Scene: "flow",
			Params: SceneConfig{FlowType: "curl"},
		},
	},
	"matrix": {
		"classic": {
			Width: 80, Height: 24, FPS: 15, Scene: "matrix", Palette: "density",
			Params: SceneConfig{Data: "wake up"},
		},
		"blocks": {
			Width: 80, Height: 24, FPS: 15, Scene: "matrix", Palette: "blocks",
			Params: SceneConfig{Data: "wake up"},
		},
	},
	"wave": {
		"ocean": {
			Width: 80, Height: 24, FPS: 12, Scene: "wave", Palette: "shade",
		},
	},
	"swarm": {
		"quartet": {
			Width: 80, Height: 24, FPS: 15, Scene: "swarm",
			Params: SceneConfig{Agents: []string{"alpha", "beta", "gamma", "delta"}},
		},
	},
	"pixelsort": {
		"glitch": {
			Width: 80, Height: 24, FPS: 10, Scene: "pixelsort", Palette: "density",
			Params: SceneConfig{Scale: 0.12, Threshold: 6},
		},
	},
	"splash": {
		"banner": {
			Width: 60, Height: 15, FPS: 6, Scene: "splash",
			Params: SceneConfig{Title: "GLYPHFLOW", Border: "round"},
		},
	},
}

func GetPreset(scene, preset string) *Config {
	scenePresets, ok := Presets[scene]
	if !ok {
		return nil
	}
	cfg, ok := scenePresets[preset]
	if !ok {
		return nil
	}
	return cfg
}

func ListPresets(scene string) []string {
	scenePresets, ok := Presets[scene]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(scenePresets))
	for name := range scenePresets {
		names = append(names, name)
	}
	return names
}
