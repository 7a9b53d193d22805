package engine

import "fmt"

// Engine owns one grid and the per-tick state driving the generators.
// Width and height are fixed at construction; Frame only moves forward via
// Tick; Seed is an explicit input (SetSeed) and is never mutated inside the
// render path, so identical (seed, frame, scene) triples render identical
// frames. Slow visual drift comes from the frame counter, not wall time.
type Engine struct {
	width  int
	height int
	frame  int64
	seed   float64
	grid   *Grid

	// pointer is last-value-wins input from an interactive surface; -1
	// means unset. Read at the start of the generators that honor it.
	pointerX int
	pointerY int
}

// New constructs an engine. Degenerate dimensions are the one failing path
// in the core; everything downstream assumes positive width and height.
func New(width, height int) (*Engine, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("grid dimensions must be positive, got %dx%d", width, height)
	}
	return &Engine{
		width:    width,
		height:   height,
		grid:     newGrid(width, height),
		pointerX: -1,
		pointerY: -1,
	}, nil
}

func (e *Engine) Width() int   { return e.width }
func (e *Engine) Height() int  { return e.height }
func (e *Engine) Frame() int64 { return e.frame }
func (e *Engine) Seed() float64 { return e.seed }

// Grid exposes the backing grid for compositing and tests.
func (e *Engine) Grid() *Grid { return e.grid }

// SetSeed replaces the noise seed for subsequent generator passes.
func (e *Engine) SetSeed(seed float64) { e.seed = seed }

// SetPointer records an interactive pointer cell. Negative coordinates
// clear it. Last value wins; there is no queue.
func (e *Engine) SetPointer(x, y int) {
	if x < 0 || y < 0 || x >= e.width || y >= e.height {
		e.pointerX, e.pointerY = -1, -1
		return
	}
	e.pointerX, e.pointerY = x, y
}

// Clear resets every cell to a space.
func (e *Engine) Clear() { e.grid.Clear() }

// Tick advances the frame counter. int64 makes silent wraparound
// unreachable at any realistic frame rate.
func (e *Engine) Tick() { e.frame++ }

// Render serializes the grid, one line per row, joined with "\n".
func (e *Engine) Render() string { return e.grid.String() }

// center returns the grid's center point in cell coordinates, shifted to
// the pointer when one is set.
func (e *Engine) center() (float64, float64) {
	if e.pointerX >= 0 && e.pointerY >= 0 {
		return float64(e.pointerX), float64(e.pointerY)
	}
	return float64(e.width) / 2, float64(e.height) / 2
}
