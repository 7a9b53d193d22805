package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/glyphflow/internal/config"
	"github.com/san-kum/glyphflow/internal/engine"
)

var (
	cyan   = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	white  = lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
	dim    = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	dimmer = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
	green  = lipgloss.NewStyle().Foreground(lipgloss.Color("82"))
)

var sceneInfo = map[string]string{
	"noise":     "drifting fbm field",
	"flow":      "directional arrow field",
	"matrix":    "deterministic rain",
	"wave":      "two-sine silhouette",
	"swarm":     "orbiting agents",
	"pixelsort": "anchor-bounded glitch",
	"splash":    "bordered banner",
}

type state int

const (
	stateMenu state = iota
	stateAnim
)

type model struct {
	state  state
	cursor int
	scenes []string

	cfg    *config.Config
	eng    *engine.Engine
	scene  engine.Scene
	paused bool

	lastFrame time.Time
	fps       float64

	width  int
	height int
}

// NewApp builds the interactive scene browser around the given config.
func NewApp(cfg *config.Config) *model {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	return &model{
		state:  stateMenu,
		scenes: engine.SceneNames,
		cfg:    cfg,
		width:  80,
		height: 24,
	}
}

// Run starts the bubbletea program and blocks until it exits.
func Run(cfg *config.Config) error {
	p := tea.NewProgram(NewApp(cfg), tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err := p.Run()
	return err
}

func (m model) Init() tea.Cmd { return nil }

type tickMsg time.Time

func (m model) tick() tea.Cmd {
	fps := m.cfg.FPS
	if fps < 1 {
		fps = config.DefaultFPS
	}
	return tea.Tick(time.Second/time.Duration(fps), func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tea.MouseMsg:
		if m.state == stateAnim && m.eng != nil {
			// Last value wins; the generator reads it on the next tick.
			m.eng.SetPointer(msg.X-2, msg.Y-2)
		}
		return m, nil
	case tickMsg:
		if m.state != stateAnim || m.eng == nil {
			return m, nil
		}
		if !m.paused {
			now := time.Now()
			if !m.lastFrame.IsZero() {
				if dt := now.Sub(m.lastFrame).Seconds(); dt > 0 {
					m.fps = 1.0 / dt
				}
			}
			m.lastFrame = now

			m.eng.Clear()
			m.eng.Apply(m.scene)
			m.eng.Tick()
		}
		return m, m.tick()
	}
	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.state {
	case stateMenu:
		return m.menuKey(msg)
	case stateAnim:
		return m.animKey(msg)
	}
	return m, nil
}

func (m model) menuKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.scenes)-1 {
			m.cursor++
		}
	case "enter", " ":
		return m.start(m.scenes[m.cursor])
	}
	return m, nil
}

func (m model) animKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "escape":
		m.state = stateMenu
		m.eng = nil
		return m, tea.ClearScreen
	case "ctrl+c":
		return m, tea.Quit
	case " ", "p":
		m.paused = !m.paused
	case "r":
		return m.start(m.cfg.Scene)
	case "s":
		if m.eng != nil {
			m.eng.SetSeed(float64(time.Now().UnixNano() % 10000))
		}
	}
	return m, nil
}

func (m model) start(scene string) (tea.Model, tea.Cmd) {
	m.cfg.Scene = scene

	// Fit the grid inside the terminal, leaving room for the status line.
	w, h := m.cfg.Width, m.cfg.Height
	if m.width > 4 && m.width-4 < w {
		w = m.width - 4
	}
	if m.height > 6 && m.height-6 < h {
		h = m.height - 6
	}

	eng, err := engine.New(w, h)
	if err != nil {
		return m, tea.Quit
	}
	eng.SetSeed(m.cfg.Seed)
	m.eng = eng
	m.scene = m.cfg.ToScene()
	m.state = stateAnim
	m.paused = false
	m.lastFrame = time.Time{}
	return m, tea.Batch(tea.ClearScreen, m.tick())
}

func (m model) View() string {
	switch m.state {
	case stateAnim:
		return m.animView()
	default:
		return m.menuView()
	}
}

func (m model) menuView() string {
	var b strings.Builder
	b.WriteString("\n  " + cyan.Render("glyphflow") + dim.Render("  procedural character fields") + "\n\n")

	for i, name := range m.scenes {
		cursor := "  "
		style := white
		if i == m.cursor {
			cursor = green.Render("> ")
			style = cyan
		}
		b.WriteString(fmt.Sprintf("  %s%-10s %s\n", cursor, style.Render(name), dimmer.Render(sceneInfo[name])))
	}

	b.WriteString("\n  " + dim.Render("j/k move · enter select · q quit") + "\n")
	return b.String()
}

func (m model) animView() string {
	if m.eng == nil {
		return ""
	}
	var b strings.Builder
	b.WriteString("  " + cyan.Render(m.cfg.Scene) + dim.Render(fmt.Sprintf("  frame %d  %.0f fps", m.eng.Frame(), m.fps)))
	if m.paused {
		b.WriteString("  " + green.Render("paused"))
	}
	b.WriteString("\n\n")

	for _, line := range strings.Split(m.eng.Render(), "\n") {
		b.WriteString("  " + line + "\n")
	}

	b.WriteString("\n  " + dim.Render("space pause · r restart · s reseed · mouse recenter · q back") + "\n")
	return b.String()
}
