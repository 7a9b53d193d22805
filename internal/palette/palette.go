package palette

import "strings"

// Ramp is an ordered, immutable run of characters from low to high density.
// A character's density is its position in the ramp.
type Ramp []rune

// Default is the ramp used whenever a name doesn't resolve.
const Default = "density"

var ramps = map[string]Ramp{
	"density": Ramp(" .:-=+*#%@"),
	"blocks":  Ramp(" ░▒▓█"),
	"shade":   Ramp(" ▁▂▃▄▅▆▇█"),
	"dots":    Ramp(" ⠁⠃⠇⠏⠟⠿⡿⣿"),
	"binary":  Ramp("01"),
	"minimal": Ramp(" .*+"),
}

// Arrows maps the 8 quantized flow-field directions, counter-clockwise from
// "pointing left" at bucket 0 (angle -π).
var Arrows = Ramp("←↙↓↘→↗↑↖")

// Get returns the named ramp, or the density ramp for unknown names.
func Get(name string) Ramp {
	if r, ok := ramps[strings.ToLower(name)]; ok {
		return r
	}
	return ramps[Default]
}

// Names lists the registered ramp names.
func Names() []string {
	names := make([]string, 0, len(ramps))
	for name := range ramps {
		names = append(names, name)
	}
	return names
}

// At returns the ramp character for index i, clamped to [0, len-1].
func (r Ramp) At(i int) rune {
	if i < 0 {
		i = 0
	}
	if i >= len(r) {
		i = len(r) - 1
	}
	return r[i]
}

// Pick maps a normalized value in [0,1] to a ramp character. Values outside
// the range clamp to the ends.
func (r Ramp) Pick(v float64) rune {
	return r.At(int(v * float64(len(r))))
}

// Index returns the density index of c within the ramp, or 0 when c is not
// part of the ramp (so cleared cells classify as empty).
func (r Ramp) Index(c rune) int {
	for i, rc := range r {
		if rc == c {
			return i
		}
	}
	return 0
}

// Border holds the glyphs for one box-drawing style, keyed by role.
type Border struct {
	TopLeft, TopRight, BottomLeft, BottomRight rune
	Horizontal, Vertical                       rune
}

var borders = map[string]Border{
	"single": {'┌', '┐', '└', '┘', '─', '│'},
	"double": {'╔', '╗', '╚', '╝', '═', '║'},
	"round":  {'╭', '╮', '╰', '╯', '─', '│'},
}

// GetBorder returns the named border style, falling back to single.
func GetBorder(style string) Border {
	if b, ok := borders[strings.ToLower(style)]; ok {
		return b
	}
	return borders["single"]
}
