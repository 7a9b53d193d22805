package engine

import (
	"sort"

	"github.com/san-kum/glyphflow/internal/palette"
)

func (s PixelSortScene) apply(e *Engine) {
	base := s.Base
	if base == nil {
		base = NoiseScene{Palette: s.Palette}
	}
	base.apply(e)
	e.PixelSort(s.Threshold, s.Palette)
}

// PixelSort distorts the current grid contents row by row. Cells whose ramp
// index exceeds threshold are anchors and never move; each run of cells
// between anchors is sorted ascending by ramp index, in place, so run
// lengths always sum back to the row width. A row with no sortable run is
// untouched.
func (e *Engine) PixelSort(threshold int, rampName string) {
	ramp := palette.Get(rampName)
	for y := 0; y < e.height; y++ {
		row := e.grid.Row(y)
		start := 0
		for x := 0; x <= len(row); x++ {
			if x < len(row) && ramp.Index(row[x]) <= threshold {
				continue
			}
			sortRun(row[start:x], ramp)
			start = x + 1
		}
	}
}

func sortRun(run []rune, ramp palette.Ramp) {
	if len(run) < 2 {
		return
	}
	sort.Slice(run, func(i, j int) bool {
		return ramp.Index(run[i]) < ramp.Index(run[j])
	})
}
