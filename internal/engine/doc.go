// Package engine generates animated character-grid frames.
//
// An [Engine] owns a fixed-size rune grid and the per-tick state the
// pattern generators read. Each scene variant repaints the grid from
// (frame, seed, params) alone:
//
//   - [NoiseScene]: drifting fractal value-noise field
//   - [FlowScene]: quantized direction arrows (radial, spiral, curl)
//   - [RainScene]: deterministic falling drops hashed from a payload
//   - [WaveScene]: filled two-sine silhouette
//   - [SwarmScene]: orbiting agents with fading trails
//   - [PixelSortScene]: anchor-bounded glyph-run sorting
//   - [SplashScene]: noise field + border + centered title
//
// # Frame cycle
//
// The caller owns the timer and drives one synchronous cycle per tick:
//
//	eng, _ := engine.New(80, 24)
//	eng.SetSeed(42)
//	eng.Clear()
//	eng.Apply(engine.NoiseScene{})
//	eng.Tick()
//	fmt.Println(eng.Render())
//
// Rendering is pure with respect to (seed, frame, scene); the engine never
// reads the clock and never touches files or sockets.
package engine
