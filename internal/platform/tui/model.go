package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/games/breakout"
)

const (
	// Terminals send no key-up, so a key press holds the paddle this long
	// unless repeated. Must outlast the usual delay before auto-repeat starts.
	keyReleaseDelay = 500 * time.Millisecond

	// pauseTimeout bounds how long a focus loss or quit waits for the loop.
	pauseTimeout = 2 * time.Second

	defaultRedrawRate = 30
	helpHeight        = 1
)

// Controller is the part of the game loop the terminal drives.
type Controller interface {
	breakout.Directive
	Resume()
	Pause(ctx context.Context)
}

// Model is the Bubble Tea model hosting a running game loop.
type Model struct {
	ctrl   Controller
	frames *FrameBuffer
	keys   KeyMap
	help   help.Model
	screen *core.Screen

	logicalW   int
	redrawRate int

	width    int
	height   int
	pressSeq uint64
	quitting bool
}

// NewModel creates a model driving ctrl and drawing what it renders into
// frames. cfg gives the logical playfield width and the redraw rate.
func NewModel(ctrl Controller, frames *FrameBuffer, cfg core.RuntimeConfig) Model {
	return Model{
		ctrl:       ctrl,
		frames:     frames,
		keys:       DefaultKeyMap(),
		help:       help.New(),
		screen:     core.NewScreen(0, 0),
		logicalW:   cfg.ScreenW,
		redrawRate: cfg.TickRate,
	}
}

// Init starts the game loop and the redraw ticks.
func (m Model) Init() tea.Cmd {
	m.ctrl.Resume()
	return tickCmd(m.redrawRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case tea.BlurMsg:
		m.pause()
		return m, nil

	case tea.FocusMsg:
		m.ctrl.Resume()
		return m, nil

	case releaseMsg:
		if msg.seq == m.pressSeq {
			m.ctrl.Release()
		}
		return m, nil

	case TickMsg:
		return m, tickCmd(m.redrawRate)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action, isQuit := m.keys.MapKey(msg)
	if isQuit {
		m.pause()
		m.quitting = true
		return m, tea.Quit
	}

	switch action {
	case core.ActionLeft:
		return m.press(m.logicalW / 4)
	case core.ActionRight:
		return m.press(3 * m.logicalW / 4)
	case core.ActionStop:
		m.pressSeq++
		m.ctrl.Release()
	case core.ActionHelp:
		m.help.ShowAll = !m.help.ShowAll
	}

	return m, nil
}

// press forwards a press and schedules its auto-release.
func (m Model) press(x int) (tea.Model, tea.Cmd) {
	m.pressSeq++
	m.ctrl.PressAt(x)
	return m, releaseCmd(m.pressSeq, keyReleaseDelay)
}

// handleMouse maps mouse buttons to touch presses.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Button != tea.MouseButtonLeft && msg.Action != tea.MouseActionRelease {
		return m, nil
	}

	switch msg.Action {
	case tea.MouseActionPress:
		// Held until the button comes back up
		m.pressSeq++
		m.ctrl.PressAt(m.logicalX(msg.X))
	case tea.MouseActionRelease:
		m.pressSeq++
		m.ctrl.Release()
	}
	return m, nil
}

// logicalX converts a terminal column to a playfield x.
func (m Model) logicalX(col int) int {
	if m.width <= 0 {
		return 0
	}
	return core.Clamp(col, 0, m.width) * m.logicalW / m.width
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.help.Width = msg.Width

	rows := core.Max(msg.Height-helpHeight, 0)
	m.screen.Resize(msg.Width, rows)
	m.frames.SetAvailable(msg.Width > 0 && rows > 0)

	return m, nil
}

// pause stops the loop, giving up after pauseTimeout.
func (m Model) pause() {
	ctx, cancel := context.WithTimeout(context.Background(), pauseTimeout)
	defer cancel()
	m.ctrl.Pause(ctx)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	f, ok := m.frames.Latest()
	if !ok || m.screen.Width() == 0 {
		return "Starting breakout..."
	}

	Rasterize(f, m.screen)
	return RenderScreen(m.screen, f.Background) + "\n" + m.help.View(m.keys)
}

// Run starts the Bubble Tea program hosting ctrl.
func Run(ctrl Controller, frames *FrameBuffer, cfg core.RuntimeConfig) error {
	model := NewModel(ctrl, frames, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Clicks act as touches
		tea.WithReportFocus(),     // Focus changes pause and resume the loop
	)

	_, err := p.Run()
	return err
}
