package engine

import (
	"math"

	"github.com/san-kum/glyphflow/internal/palette"
)

// AddBorder overwrites the grid's outer ring with the named box-drawing
// style. Interior cells are untouched. Unknown styles draw single.
func (e *Engine) AddBorder(style string) {
	b := palette.GetBorder(style)
	right, bottom := e.width-1, e.height-1

	for x := 1; x < right; x++ {
		e.grid.Set(x, 0, b.Horizontal)
		e.grid.Set(x, bottom, b.Horizontal)
	}
	for y := 1; y < bottom; y++ {
		e.grid.Set(0, y, b.Vertical)
		e.grid.Set(right, y, b.Vertical)
	}
	e.grid.Set(0, 0, b.TopLeft)
	e.grid.Set(right, 0, b.TopRight)
	e.grid.Set(0, bottom, b.BottomLeft)
	e.grid.Set(right, bottom, b.BottomRight)
}

// Text writes s into row y starting at column x, one rune per cell,
// silently clipping anything outside the grid.
func (e *Engine) Text(x, y int, s string) {
	for i, c := range []rune(s) {
		e.grid.Set(x+i, y, c)
	}
}

// CenterText writes s horizontally centered in row y. Text wider than the
// grid clips evenly on both sides.
func (e *Engine) CenterText(s string, y int) {
	x := int(math.Floor(float64(e.width-len([]rune(s))) / 2))
	e.Text(x, y, s)
}

func (s SplashScene) apply(e *Engine) {
	NoiseScene{Scale: 0.08, Palette: "minimal"}.apply(e)
	style := s.Style
	if style == "" {
		style = "round"
	}
	e.AddBorder(style)
	if s.Title != "" {
		e.CenterText(" "+s.Title+" ", e.height/2)
	}
}
