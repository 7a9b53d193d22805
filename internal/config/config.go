package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultWidth     = 80
	DefaultHeight    = 24
	DefaultFPS       = 12
	DefaultScene     = "noise"
	DefaultPalette   = "density"
	DefaultScale     = 0.1
	DefaultThreshold = 4
)

// Config is the full call-site configuration for one animation: grid
// dimensions, frame rate, scene selection and per-scene parameters. The
// engine itself takes none of this implicitly; consumers pass it in.
type Config struct {
	Width   int         `yaml:"width"`
	Height  int         `yaml:"height"`
	FPS     int         `yaml:"fps"`
	Scene   string      `yaml:"scene"`
	Palette string      `yaml:"palette"`
	Seed    float64     `yaml:"seed"`
	Params  SceneConfig `yaml:"params"`
}

// SceneConfig carries the per-generator knobs; only the fields the chosen
// scene reads matter.
type SceneConfig struct {
	Scale     float64  `yaml:"scale"`     // noise field sampling scale
	Simplex   bool     `yaml:"simplex"`   // use the opensimplex source
	FlowType  string   `yaml:"flow_type"` // radial, spiral, curl
	Data      string   `yaml:"data"`      // rain/swarm/splash payload
	Agents    []string `yaml:"agents"`    // swarm identifiers
	Threshold int      `yaml:"threshold"` // pixel-sort anchor threshold
	Border    string   `yaml:"border"`    // splash border style
	Title     string   `yaml:"title"`     // splash title
}

func DefaultConfig() *Config {
	return &Config{
		Width:   DefaultWidth,
		Height:  DefaultHeight,
		FPS:     DefaultFPS,
		Scene:   DefaultScene,
		Palette: DefaultPalette,
		Params: SceneConfig{
			Scale:     DefaultScale,
			Threshold: DefaultThreshold,
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, cfg.Validate()
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate rejects settings the engine's constructor would refuse. Unknown
// scene and palette names are not errors; they resolve to documented
// fallbacks downstream.
func (c *Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("dimensions must be positive, got %dx%d", c.Width, c.Height)
	}
	if c.FPS < 1 || c.FPS > 60 {
		return fmt.Errorf("fps out of range (1-60): got %d", c.FPS)
	}
	return nil
}
