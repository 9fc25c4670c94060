package starfield

import (
	"sync"
	"time"

	"github.com/vovakirdan/tui-starfield/internal/config"
	"github.com/vovakirdan/tui-starfield/internal/core"
	"github.com/vovakirdan/tui-starfield/internal/registry"
)

// Registered variant IDs.
const (
	ID       = "starfield"
	ScaledID = "starfield_scaled"
)

var (
	cfgMu      sync.RWMutex
	gameConfig = config.DefaultStarfieldConfig()
)

// SetConfig sets the configuration used by games created afterwards.
func SetConfig(cfg config.StarfieldConfig) {
	cfgMu.Lock()
	defer cfgMu.Unlock()
	gameConfig = cfg
}

func currentConfig() config.StarfieldConfig {
	cfgMu.RLock()
	defer cfgMu.RUnlock()
	return gameConfig
}

func init() {
	registry.Register(ID, func() registry.Game {
		return New(currentConfig())
	})
	registry.Register(ScaledID, func() registry.Game {
		cfg := currentConfig()
		cfg.Motion.TimeScaled = true
		return NewVariant(ScaledID, "Starfield (time-scaled)", cfg)
	})
}

// Game hosts a Simulation behind the registry interface: it maps the terminal
// grid to a pixel viewport, drives the status machine from one-shot actions,
// and owns pause.
type Game struct {
	id, title string
	cfg       config.StarfieldConfig
	runtime   core.RuntimeConfig
	sim       *Simulation
	sink      core.CueSink
	paused    bool
	restarts  int64
}

// New creates the standard game.
func New(cfg config.StarfieldConfig) *Game {
	title := "Starfield"
	if cfg.Motion.TimeScaled {
		title = "Starfield (time-scaled)"
	}
	return NewVariant(ID, title, cfg)
}

// NewVariant creates a game registered under a custom id.
func NewVariant(id, title string, cfg config.StarfieldConfig) *Game {
	g := &Game{id: id, title: title, cfg: cfg, sink: core.Discard}
	g.sim = NewSimulation(cfg, 0, g.sink)
	return g
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return g.id
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return g.title
}

// SetCueSink routes audio cues to sink.
func (g *Game) SetCueSink(sink core.CueSink) {
	if sink == nil {
		sink = core.Discard
	}
	g.sink = sink
	g.sim.SetCueSink(sink)
}

// Reset builds a fresh simulation on the start screen.
func (g *Game) Reset(rc core.RuntimeConfig) {
	g.runtime = rc
	g.paused = false
	g.restarts = 0
	w, h := g.viewport()
	g.sim = NewSimulation(g.cfg, rc.Seed, g.sink)
	g.sim.Reset(w, h)
	g.sim.RegenerateBackground(w, h)
}

// Resize follows a terminal resize without restarting.
func (g *Game) Resize(rc core.RuntimeConfig) {
	g.runtime.ScreenW = rc.ScreenW
	g.runtime.ScreenH = rc.ScreenH
	w, h := g.viewport()
	g.sim.Resize(w, h)
}

// Step advances one frame.
func (g *Game) Step(in core.InputFrame, dt time.Duration) core.StepResult {
	switch g.sim.Status() {
	case StatusStartScreen:
		if in.Has(core.ActionStart) || in.Has(core.ActionFire) {
			g.sim.Start()
		}
		return core.StepResult{State: g.State()}
	case StatusGameOver:
		if in.Has(core.ActionRestart) || in.Has(core.ActionStart) {
			// Each run gets its own enemy sequence
			g.restarts++
			g.paused = false
			g.sim.Reseed(g.runtime.Seed + g.restarts)
			g.sim.Start()
		}
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.sim.Advance(in, dt)
	return core.StepResult{State: g.State()}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	status := g.sim.Status()
	return core.GameState{
		Score:    g.sim.Score(),
		Started:  status != StatusStartScreen,
		GameOver: status == StatusGameOver,
		Paused:   g.paused,
	}
}

// Snapshot returns a copy of the simulated world.
func (g *Game) Snapshot() Snapshot {
	return g.sim.Snapshot()
}

// Config returns the configuration the game was created with.
func (g *Game) Config() config.StarfieldConfig {
	return g.cfg
}

// viewport converts the terminal grid to pixel dimensions.
func (g *Game) viewport() (float64, float64) {
	return float64(g.runtime.ScreenW) * g.cfg.Render.CellWidth,
		float64(g.runtime.ScreenH) * g.cfg.Render.CellHeight
}
