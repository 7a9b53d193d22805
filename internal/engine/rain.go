package engine

import "github.com/san-kum/glyphflow/internal/palette"

// hashPayload is a polynomial rolling hash (base 31) of the stringified
// payload. Quality doesn't matter; stability across calls does.
func hashPayload(data string) uint64 {
	var h uint64
	for i := 0; i < len(data); i++ {
		h = h*31 + uint64(data[i])
	}
	return h
}

// apply paints every column's drop purely from (column, frame, data). There
// is no per-drop mutable state: re-invoking with the same arguments on a
// freshly cleared grid of the same size yields an identical grid.
func (s RainScene) apply(e *Engine) {
	ramp := palette.Get(s.Palette)
	h := hashPayload(s.Data)

	for col := 0; col < e.width; col++ {
		ch := h + uint64(col)*31
		dropLength := 4 + int(ch%9)
		speed := 1 + int64((ch/9)%3)

		span := int64(e.height + dropLength)
		head := int((e.frame*speed+int64(col)*7)%span) - dropLength

		for dist := 0; dist < dropLength; dist++ {
			y := head - dist
			if y < 0 || y >= e.height {
				continue
			}
			idx := (len(ramp) - 1) * (dropLength - dist) / dropLength
			e.grid.Set(col, y, ramp.At(idx))
		}
	}
}
