package main

import (
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/glyphflow/internal/config"
	"github.com/san-kum/glyphflow/internal/engine"
	"github.com/san-kum/glyphflow/internal/palette"
	"github.com/san-kum/glyphflow/internal/tui"
	"github.com/spf13/cobra"
)

var (
	width      int
	height     int
	fps        int
	paletteArg string
	seed       float64
	data       string
	scale      float64
	flowType   string
	threshold  int
	border     string
	frames     int
	configFile string
	preset     string
	simplex    bool
)

// buildConfig resolves flags, an optional config file, and an optional
// preset into one Config. Precedence: preset < config file < flags that
// were set explicitly.
func buildConfig(cmd *cobra.Command, scene string) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p := config.GetPreset(scene, preset)
		if p == nil {
			return nil, fmt.Errorf("no preset %q for scene %q", preset, scene)
		}
		cfg = p
	}
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("load config: %w", err)
		}
		cfg = loaded
	}

	cfg.Scene = scene
	if cmd.Flags().Changed("width") {
		cfg.Width = width
	}
	if cmd.Flags().Changed("height") {
		cfg.Height = height
	}
	if cmd.Flags().Changed("fps") {
		cfg.FPS = fps
	}
	if cmd.Flags().Changed("palette") {
		cfg.Palette = paletteArg
	}
	if cmd.Flags().Changed("seed") {
		cfg.Seed = seed
	}
	if cmd.Flags().Changed("data") {
		cfg.Params.Data = data
		cfg.Params.Title = data
	}
	if cmd.Flags().Changed("scale") {
		cfg.Params.Scale = scale
	}
	if cmd.Flags().Changed("flow-type") {
		cfg.Params.FlowType = flowType
	}
	if cmd.Flags().Changed("threshold") {
		cfg.Params.Threshold = threshold
	}
	if cmd.Flags().Changed("border") {
		cfg.Params.Border = border
	}
	if cmd.Flags().Changed("simplex") {
		cfg.Params.Simplex = simplex
	}
	return cfg, cfg.Validate()
}

func sceneFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&width, "width", config.DefaultWidth, "grid width")
	cmd.Flags().IntVar(&height, "height", config.DefaultHeight, "grid height")
	cmd.Flags().StringVar(&paletteArg, "palette", config.DefaultPalette, "character ramp name")
	cmd.Flags().Float64Var(&seed, "seed", 0, "noise seed")
	cmd.Flags().StringVar(&data, "data", "", "payload (hashed for matrix, title for splash, agent list for swarm)")
	cmd.Flags().Float64Var(&scale, "scale", config.DefaultScale, "noise sampling scale")
	cmd.Flags().StringVar(&flowType, "flow-type", "radial", "flow field model (radial, spiral, curl)")
	cmd.Flags().IntVar(&threshold, "threshold", config.DefaultThreshold, "pixel-sort anchor threshold")
	cmd.Flags().StringVar(&border, "border", "round", "border style (single, double, round)")
	cmd.Flags().BoolVar(&simplex, "simplex", false, "use the opensimplex noise source")
	cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	cmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
}

func main() {
	rootCmd := &cobra.Command{
		Use:   "glyphflow",
		Short: "procedural character-grid animations",
		RunE: func(cmd *cobra.Command, args []string) error {
			// Default to the interactive scene browser.
			return tui.Run(config.DefaultConfig())
		},
	}

	playCmd := &cobra.Command{
		Use:   "play [scene]",
		Short: "animate a scene in the terminal",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runPlay,
	}
	sceneFlags(playCmd)
	playCmd.Flags().IntVar(&fps, "fps", config.DefaultFPS, "frames per second")
	playCmd.Flags().IntVar(&frames, "frames", 0, "stop after N frames (0 = until interrupted)")

	renderCmd := &cobra.Command{
		Use:   "render [scene]",
		Short: "print frames to stdout",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runRender,
	}
	sceneFlags(renderCmd)
	renderCmd.Flags().IntVar(&frames, "frames", 1, "number of frames to print")

	scenesCmd := &cobra.Command{
		Use:   "scenes",
		Short: "list scenes",
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range engine.SceneNames {
				fmt.Println(name)
			}
		},
	}

	palettesCmd := &cobra.Command{
		Use:   "palettes",
		Short: "list character ramps",
		Run: func(cmd *cobra.Command, args []string) {
			names := palette.Names()
			sort.Strings(names)
			for _, name := range names {
				fmt.Printf("%-10s %s\n", name, string(palette.Get(name)))
			}
		},
	}

	presetsCmd := &cobra.Command{
		Use:   "presets [scene]",
		Short: "list available presets for a scene",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			presets := config.ListPresets(args[0])
			if len(presets) == 0 {
				fmt.Printf("no presets for scene: %s\n", args[0])
				return nil
			}
			sort.Strings(presets)
			fmt.Printf("presets for %s:\n", args[0])
			for _, p := range presets {
				fmt.Printf("  %s\n", p)
			}
			return nil
		},
	}

	benchCmd := &cobra.Command{
		Use:   "bench [scene]",
		Short: "measure frame generation time",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runBench,
	}
	sceneFlags(benchCmd)
	benchCmd.Flags().IntVar(&frames, "frames", 120, "frames to measure")

	tuiCmd := &cobra.Command{
		Use:   "tui",
		Short: "interactive scene browser",
		RunE: func(cmd *cobra.Command, args []string) error {
			return tui.Run(config.DefaultConfig())
		},
	}

	rootCmd.AddCommand(playCmd, renderCmd, scenesCmd, palettesCmd, presetsCmd, benchCmd, tuiCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func sceneArg(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return config.DefaultScene
}

func runPlay(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd, sceneArg(args))
	if err != nil {
		return err
	}
	return tui.RunPlayer(cfg, frames)
}

func runRender(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd, sceneArg(args))
	if err != nil {
		return err
	}

	eng, err := engine.New(cfg.Width, cfg.Height)
	if err != nil {
		return err
	}
	eng.SetSeed(cfg.Seed)
	scene := cfg.ToScene()

	for i := 0; i < frames; i++ {
		eng.Clear()
		eng.Apply(scene)
		eng.Tick()
		fmt.Println(eng.Render())
		if i < frames-1 {
			fmt.Println()
		}
	}
	return nil
}

func runBench(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd, sceneArg(args))
	if err != nil {
		return err
	}

	eng, err := engine.New(cfg.Width, cfg.Height)
	if err != nil {
		return err
	}
	eng.SetSeed(cfg.Seed)
	scene := cfg.ToScene()

	times := make([]float64, 0, frames)
	var total time.Duration
	for i := 0; i < frames; i++ {
		start := time.Now()
		eng.Clear()
		eng.Apply(scene)
		eng.Render()
		eng.Tick()
		elapsed := time.Since(start)
		total += elapsed
		times = append(times, float64(elapsed.Microseconds()))
	}

	avg := total / time.Duration(frames)
	fmt.Printf("scene %s, %dx%d grid, %d frames\n", cfg.Scene, cfg.Width, cfg.Height, frames)
	fmt.Printf("avg %v/frame (%.0f fps possible)\n\n", avg, float64(time.Second)/float64(avg))
	fmt.Println(asciigraph.Plot(times,
		asciigraph.Height(10),
		asciigraph.Caption("frame time (µs)"),
	))
	return nil
}
