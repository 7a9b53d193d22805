package engine

import "strings"

// Grid is a fixed-size rune matrix, height rows by width columns,
// row-major, mutated in place. Dimensions never change after construction
// and every cell always holds exactly one rune.
type Grid struct {
	width  int
	height int
	cells  [][]rune
}

func newGrid(width, height int) *Grid {
	cells := make([][]rune, height)
	for y := range cells {
		cells[y] = make([]rune, width)
		for x := range cells[y] {
			cells[y][x] = ' '
		}
	}
	return &Grid{width: width, height: height, cells: cells}
}

func (g *Grid) Width() int  { return g.width }
func (g *Grid) Height() int { return g.height }

// Set writes c at (x, y); writes outside the grid are silently dropped.
func (g *Grid) Set(x, y int, c rune) {
	if x >= 0 && x < g.width && y >= 0 && y < g.height {
		g.cells[y][x] = c
	}
}

// At returns the rune at (x, y), or space for out-of-range coordinates.
func (g *Grid) At(x, y int) rune {
	if x >= 0 && x < g.width && y >= 0 && y < g.height {
		return g.cells[y][x]
	}
	return ' '
}

// Row exposes row y for in-place mutation. Callers must not resize it.
func (g *Grid) Row(y int) []rune {
	return g.cells[y]
}

// Clear fills every cell with a space. Idempotent.
func (g *Grid) Clear() {
	for y := range g.cells {
		for x := range g.cells[y] {
			g.cells[y][x] = ' '
		}
	}
}

// String joins the rows with newlines. Leading and trailing spaces in each
// row are significant; callers display the result verbatim.
func (g *Grid) String() string {
	var b strings.Builder
	b.Grow(g.height * (g.width + 1) * 3)
	for y, row := range g.cells {
		if y > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(string(row))
	}
	return b.String()
}
