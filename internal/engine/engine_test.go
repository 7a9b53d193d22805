package engine

import (
	"strings"
	"testing"
)

func TestNewRejectsDegenerateDimensions(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
	}{
		{"zero width", 0, 10},
		{"zero height", 10, 0},
		{"negative width", -5, 10},
		{"negative height", 10, -5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := New(tt.width, tt.height); err == nil {
				t.Errorf("New(%d, %d) should fail", tt.width, tt.height)
			}
		})
	}
}

func TestClearRenderEndToEnd(t *testing.T) {
	e, err := New(20, 5)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	e.Clear()
	out := e.Render()

	lines := strings.Split(out, "\n")
	if len(lines) != 5 {
		t.Fatalf("expected 5 lines, got %d", len(lines))
	}
	for i, line := range lines {
		if line != strings.Repeat(" ", 20) {
			t.Errorf("line %d: expected 20 spaces, got %q", i, line)
		}
	}
}

func TestClearIdempotent(t *testing.T) {
	e, _ := New(8, 4)
	e.Text(1, 1, "xyz")
	e.Clear()
	first := e.Render()
	e.Clear()
	if e.Render() != first {
		t.Error("repeated Clear should not change the grid")
	}
}

func TestTickMonotonic(t *testing.T) {
	e, _ := New(4, 4)
	var last int64 = -1
	for i := 0; i < 100; i++ {
		if e.Frame() <= last {
			t.Fatalf("frame went backwards: %d after %d", e.Frame(), last)
		}
		last = e.Frame()
		e.Tick()
	}
}

func TestNoiseFieldBinaryPaletteClosure(t *testing.T) {
	e, _ := New(30, 12)
	e.SetSeed(4242)
	e.Clear()
	e.Apply(NoiseScene{Palette: "binary"})

	for y := 0; y < e.Height(); y++ {
		for x := 0; x < e.Width(); x++ {
			c := e.Grid().At(x, y)
			if c != '0' && c != '1' {
				t.Fatalf("cell (%d,%d) = %q, want '0' or '1'", x, y, c)
			}
		}
	}
}

func TestNoiseFieldDriftsWithFrame(t *testing.T) {
	e, _ := New(40, 10)
	e.SetSeed(7)
	e.Clear()
	e.Apply(NoiseScene{})
	before := e.Render()

	for i := 0; i < 30; i++ {
		e.Tick()
	}
	e.Clear()
	e.Apply(NoiseScene{})
	if e.Render() == before {
		t.Error("noise field should drift as the frame advances")
	}
}

func TestRainPureFunctionOfInputs(t *testing.T) {
	render := func(frame int64) string {
		e, _ := New(25, 10)
		for e.Frame() < frame {
			e.Tick()
		}
		e.Clear()
		e.Apply(RainScene{Data: `{"payload":"abc123"}`})
		return e.Render()
	}

	if render(17) != render(17) {
		t.Error("same (frame, data) on a fresh grid should render identically")
	}
	if render(17) == render(18) {
		t.Error("advancing the frame should move the drops")
	}

	e, _ := New(25, 10)
	e.Clear()
	e.Apply(RainScene{Data: "one payload"})
	a := e.Render()
	e.Clear()
	e.Apply(RainScene{Data: "another payload"})
	if a == e.Render() {
		t.Error("different payloads should hash to different drop layouts")
	}
}

func TestFlowFieldUsesArrowGlyphs(t *testing.T) {
	arrows := "←↙↓↘→↗↑↖"
	for _, ft := range []FlowType{FlowRadial, FlowSpiral, FlowCurl} {
		e, _ := New(16, 8)
		e.SetSeed(11)
		e.Clear()
		e.Apply(FlowScene{Type: ft})
		for y := 0; y < e.Height(); y++ {
			for x := 0; x < e.Width(); x++ {
				if !strings.ContainsRune(arrows, e.Grid().At(x, y)) {
					t.Fatalf("%s: cell (%d,%d) = %q, not an arrow", ft, x, y, e.Grid().At(x, y))
				}
			}
		}
	}
}

func TestAddBorderSingle(t *testing.T) {
	e, _ := New(10, 5)
	e.Clear()
	e.Text(2, 2, "abc")
	e.AddBorder("single")

	g := e.Grid()
	corners := []struct {
		x, y int
		want rune
	}{
		{0, 0, '┌'},
		{9, 0, '┐'},
		{0, 4, '└'},
		{9, 4, '┘'},
	}
	for _, c := range corners {
		if got := g.At(c.x, c.y); got != c.want {
			t.Errorf("corner (%d,%d) = %q, want %q", c.x, c.y, got, c.want)
		}
	}

	for x := 1; x < 9; x++ {
		if g.At(x, 0) != '─' || g.At(x, 4) != '─' {
			t.Errorf("edge column %d: want '─' on rows 0 and 4", x)
		}
	}
	for y := 1; y < 4; y++ {
		if g.At(0, y) != '│' || g.At(9, y) != '│' {
			t.Errorf("edge row %d: want '│' on columns 0 and 9", y)
		}
	}

	if g.At(2, 2) != 'a' || g.At(3, 2) != 'b' || g.At(4, 2) != 'c' {
		t.Error("border must leave interior cells untouched")
	}
}

func TestCenterText(t *testing.T) {
	e, _ := New(10, 5)
	e.Clear()
	e.CenterText("HI", 2)

	g := e.Grid()
	if g.At(4, 2) != 'H' || g.At(5, 2) != 'I' {
		t.Errorf("got %q at (4,2), %q at (5,2); want 'H', 'I'", g.At(4, 2), g.At(5, 2))
	}
	for x := 0; x < 10; x++ {
		if x == 4 || x == 5 {
			continue
		}
		if g.At(x, 2) != ' ' {
			t.Errorf("cell (%d,2) = %q, want untouched space", x, g.At(x, 2))
		}
	}
}

func TestTextClipsSilently(t *testing.T) {
	e, _ := New(5, 3)
	e.Clear()
	e.Text(3, 1, "abcdef")
	e.Text(-2, 0, "xy")

	if got := string(e.Grid().Row(1)); got != "   ab" {
		t.Errorf("row 1 = %q, want %q", got, "   ab")
	}
	if got := string(e.Grid().Row(0)); got != strings.Repeat(" ", 5) {
		t.Errorf("fully off-grid prefix should clip, row 0 = %q", got)
	}
}

func TestPixelSortNoAnchorsSortsFullRows(t *testing.T) {
	e, _ := New(20, 6)
	e.SetSeed(99)
	e.Clear()
	e.Apply(NoiseScene{})

	// Threshold above every possible density: nothing anchors.
	e.PixelSort(1000, "density")

	ramp := " .:-=+*#%@"
	for y := 0; y < e.Height(); y++ {
		row := e.Grid().Row(y)
		for x := 1; x < len(row); x++ {
			if strings.IndexRune(ramp, row[x]) < strings.IndexRune(ramp, row[x-1]) {
				t.Fatalf("row %d not sorted ascending at column %d", y, x)
			}
		}
	}
}

func TestPixelSortAllAnchorsIsNoop(t *testing.T) {
	e, _ := New(20, 6)
	e.SetSeed(99)
	e.Clear()
	e.Apply(NoiseScene{})
	before := e.Render()

	// Threshold below every density: every cell anchors.
	e.PixelSort(-1, "density")
	if e.Render() != before {
		t.Error("with every cell an anchor the grid must be unchanged")
	}
}

func TestPixelSortKeepsAnchorsInPlace(t *testing.T) {
	e, _ := New(9, 1)
	e.Clear()
	e.Text(0, 0, "@: .=@. :")

	// '@' has the highest density index; threshold just below it pins the
	// two '@' cells and sorts the runs around them.
	e.PixelSort(8, "density")

	row := string(e.Grid().Row(0))
	if row[0] != '@' || row[5] != '@' {
		t.Fatalf("anchors moved: %q", row)
	}
	if row != "@ .:=@ .:" {
		t.Errorf("segment sort result %q, want %q", row, "@ .:=@ .:")
	}
}

func TestSwarmLayersOverExistingGrid(t *testing.T) {
	e, _ := New(30, 12)
	e.SetSeed(5)
	e.Clear()
	e.Apply(NoiseScene{Palette: "binary"})
	e.Apply(SwarmScene{Agents: []string{"a", "b", "c"}})

	// The base layer must survive outside the orbits: some cell still
	// holds a binary glyph.
	survived := false
	for y := 0; y < e.Height() && !survived; y++ {
		for x := 0; x < e.Width(); x++ {
			c := e.Grid().At(x, y)
			if c == '0' || c == '1' {
				survived = true
				break
			}
		}
	}
	if !survived {
		t.Error("swarm should layer over, not repaint, the grid")
	}
}

func TestParseSceneFallback(t *testing.T) {
	if ParseScene("no-such-scene", "").Name() != "noise" {
		t.Error("unknown scene name should fall back to noise")
	}
	for _, name := range SceneNames {
		s := ParseScene(name, "payload")
		if s == nil {
			t.Fatalf("ParseScene(%q) returned nil", name)
		}
	}
}

func TestApplyNilSceneFallsBackToNoise(t *testing.T) {
	e, _ := New(10, 4)
	e.SetSeed(3)
	e.Clear()
	e.Apply(nil)
	if e.Render() == strings.Repeat(" ", 10)+"\n"+strings.Repeat(" ", 10)+"\n"+strings.Repeat(" ", 10)+"\n"+strings.Repeat(" ", 10) {
		t.Error("nil scene should paint the default noise field")
	}
}

func TestSplashComposition(t *testing.T) {
	e, _ := New(24, 7)
	e.SetSeed(1)
	e.Clear()
	e.Apply(SplashScene{Title: "HI"})

	g := e.Grid()
	if g.At(0, 0) != '╭' {
		t.Errorf("splash should draw a round border, got %q at origin", g.At(0, 0))
	}
	mid := string(g.Row(e.Height() / 2))
	if !strings.Contains(mid, " HI ") {
		t.Errorf("splash title missing from middle row %q", mid)
	}
}

func TestPointerShiftsFlowCenter(t *testing.T) {
	render := func(px, py int) string {
		e, _ := New(20, 10)
		e.SetPointer(px, py)
		e.Clear()
		e.Apply(FlowScene{Type: FlowRadial})
		return e.Render()
	}

	if render(2, 2) == render(17, 7) {
		t.Error("moving the pointer should recenter the radial field")
	}

	e, _ := New(20, 10)
	e.SetPointer(500, 500) // out of range clears the pointer
	cx, cy := e.center()
	if cx != 10 || cy != 5 {
		t.Errorf("cleared pointer should restore the grid center, got (%f,%f)", cx, cy)
	}
}
