package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-starfield/internal/config"
	"github.com/vovakirdan/tui-starfield/internal/core"
	"github.com/vovakirdan/tui-starfield/internal/registry"
)

// helpHeight is the number of rows reserved below the playfield.
const helpHeight = 1

// Options configures a Model beyond its game and runtime config.
type Options struct {
	Input  config.InputConfig
	Logger *log.Logger
	// Now overrides the clock used for key presses. Defaults to time.Now.
	Now func() time.Time
}

// Model is the Bubble Tea model running one game.
type Model struct {
	game    registry.Game
	screen  *core.Screen
	config  core.RuntimeConfig
	keys    KeyMap
	help    help.Model
	hold    *HoldTracker
	pressed *core.InputFrame // One-shot actions since the last tick
	clock   *frameClock
	logger  *log.Logger
	now     func() time.Time

	state    core.GameState
	ticks    int
	overSeen bool // Game-over for the current run has been logged
	quitting bool
}

// NewModel creates a model for game. A zero seed is replaced by a
// time-based one.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts Options) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Input.HoldMS == 0 {
		opts.Input = config.DefaultStarfieldConfig().Input
	}

	pressed := core.NewInputFrame()
	return Model{
		game:    game,
		screen:  core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		config:  cfg,
		keys:    DefaultKeyMap(),
		help:    help.New(),
		hold:    NewHoldTracker(opts.Input),
		pressed: &pressed,
		clock:   newFrameClock(cfg.TickRate),
		logger:  opts.Logger,
		now:     opts.Now,
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.logger.Debug("game ready", "game", m.game.ID(), "width", m.config.ScreenW, "height", m.config.ScreenH, "seed", m.config.Seed)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.String() == "ctrl+s":
		m.saveScreenshot()
		return m, nil
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	action := m.keys.MapKey(msg)
	switch {
	case action == core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case action == core.ActionNone:
		return m, nil
	case IsHeld(action):
		m.hold.Press(action, m.now())
	default:
		m.pressed.Set(action)
	}

	return m, nil
}

// handleResize follows the terminal size. The game keeps running.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = max(msg.Height-helpHeight, 1)
	m.screen.Resize(m.config.ScreenW, m.config.ScreenH)
	m.game.Resize(m.config)
	m.help.Width = msg.Width
	return m, nil
}

// handleTick runs one simulation step with the input gathered since the last tick.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	dt := m.clock.Delta(now)

	in := m.hold.Frame(m.now())
	for a := range m.pressed.Actions {
		in.Set(a)
	}
	m.pressed.Clear()

	wasPaused := m.state.Paused
	result := m.game.Step(in, dt)
	m.state = result.State
	m.ticks++

	if wasPaused && !m.state.Paused {
		m.hold.Release()
	}

	switch {
	case m.state.GameOver && !m.overSeen:
		m.overSeen = true
		m.logger.Info("game over", "game", m.game.ID(), "score", m.state.Score, "ticks", m.ticks)
	case !m.state.GameOver && m.overSeen:
		m.overSeen = false
		m.ticks = 0
		m.logger.Debug("game restarted", "game", m.game.ID())
	}

	return m, tickCmd(m.config.TickRate)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.screen.Clear()
	m.game.Render(m.screen)

	dir := filepath.Join(os.Getenv("HOME"), ".starfield", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot failed", "err", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "err", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// State returns the game state after the last tick.
func (m Model) State() core.GameState {
	return m.state
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.screen.Clear()
	m.game.Render(m.screen)
	body := RenderScreen(m.screen)

	// Expanded help overlays the bottom rows of the playfield
	helpView := m.help.View(m.keys)
	if extra := strings.Count(helpView, "\n"); extra > 0 {
		rows := strings.Split(body, "\n")
		body = strings.Join(rows[:max(len(rows)-extra, 0)], "\n")
	}
	return body + "\n" + helpStyle.Render(helpView)
}

// Run starts the Bubble Tea program for game in the current terminal.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) error {
	cfg.ScreenH = max(cfg.ScreenH-helpHeight, 1)
	model := NewModel(game, cfg, opts)

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}
