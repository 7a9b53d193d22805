package tui

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/muesli/termenv"
	"github.com/san-kum/glyphflow/internal/config"
	"github.com/san-kum/glyphflow/internal/engine"
)

// sceneColors picks a frame tint per scene for terminals that support it.
var sceneColors = map[string]string{
	"noise":     "#8888ff",
	"flow":      "#00ccff",
	"matrix":    "#00ff66",
	"wave":      "#3399ff",
	"swarm":     "#ffcc00",
	"pixelsort": "#ff66cc",
	"splash":    "#ffffff",
}

// Player runs the clear → apply → tick → render cycle on a fixed ticker
// and writes each frame to the terminal. It owns the timer; the engine
// never does.
type Player struct {
	cfg    *config.Config
	eng    *engine.Engine
	scene  engine.Scene
	out    *termenv.Output
	frames int // stop after this many frames; 0 means run until cancelled
}

func NewPlayer(cfg *config.Config, frames int) (*Player, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	eng, err := engine.New(cfg.Width, cfg.Height)
	if err != nil {
		return nil, err
	}
	eng.SetSeed(cfg.Seed)
	return &Player{
		cfg:    cfg,
		eng:    eng,
		scene:  cfg.ToScene(),
		out:    termenv.NewOutput(os.Stdout),
		frames: frames,
	}, nil
}

// Play animates until the frame budget runs out or the context is
// cancelled (SIGINT/SIGTERM when the caller uses signal.NotifyContext).
func (p *Player) Play(ctx context.Context) error {
	p.out.AltScreen()
	p.out.HideCursor()
	defer p.out.ShowCursor()
	defer p.out.ExitAltScreen()

	tick := time.NewTicker(time.Second / time.Duration(p.cfg.FPS))
	defer tick.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-tick.C:
			p.step()
			p.draw()
			if p.frames > 0 && p.eng.Frame() >= int64(p.frames) {
				return nil
			}
		}
	}
}

func (p *Player) step() {
	p.eng.Clear()
	p.eng.Apply(p.scene)
	p.eng.Tick()
}

func (p *Player) draw() {
	p.out.MoveCursor(1, 1)
	frame := p.eng.Render()
	if c, ok := sceneColors[p.cfg.Scene]; ok {
		frame = p.out.String(frame).Foreground(p.out.Color(c)).String()
	}
	fmt.Fprint(p.out, frame)
	fmt.Fprintf(p.out, "\n%s", p.out.String(
		fmt.Sprintf(" %s · frame %d · ctrl+c to quit ", p.cfg.Scene, p.eng.Frame()),
	).Faint().String())
}

// RunPlayer is the play-command entry point: signal-cancelled animation at
// the configured frame rate.
func RunPlayer(cfg *config.Config, frames int) error {
	p, err := NewPlayer(cfg, frames)
	if err != nil {
		return err
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return p.Play(ctx)
}
