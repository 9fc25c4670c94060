package starfield

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-starfield/internal/config"
	"github.com/vovakirdan/tui-starfield/internal/core"
	"github.com/vovakirdan/tui-starfield/internal/registry"
)

func testRuntime() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 100, ScreenH: 37, TickRate: 60, Seed: 42}
}

func TestRegistryVariants(t *testing.T) {
	for _, id := range []string{ID, ScaledID} {
		if !registry.Exists(id) {
			t.Errorf("variant %q not registered", id)
		}
	}

	g, err := registry.Create(ScaledID)
	if err != nil {
		t.Fatalf("Create(%q) failed: %v", ScaledID, err)
	}
	sg, ok := g.(*Game)
	if !ok {
		t.Fatalf("Create(%q) returned %T", ScaledID, g)
	}
	if !sg.Config().Motion.TimeScaled {
		t.Error("scaled variant should enable time scaling")
	}
	if _, ok := g.(registry.CueEmitter); !ok {
		t.Error("starfield should accept a cue sink")
	}
}

func TestGameViewportFromCells(t *testing.T) {
	g := New(config.DefaultStarfieldConfig())
	g.Reset(testRuntime())

	snap := g.Snapshot()
	if snap.Width != 800 || snap.Height != 592 {
		t.Errorf("viewport = %v×%v, expected 800×592", snap.Width, snap.Height)
	}
	if snap.Status != StatusStartScreen {
		t.Errorf("status = %v, expected %v", snap.Status, StatusStartScreen)
	}
	if len(snap.Stars) == 0 {
		t.Error("Reset() should generate a background")
	}
}

func TestGameStatusFlow(t *testing.T) {
	g := New(config.DefaultStarfieldConfig())
	g.Reset(testRuntime())

	// Held input does nothing on the start screen
	res := g.Step(core.NewInputFrame(core.ActionForward), testDT)
	if res.State.Started {
		t.Fatal("thrust should not start the game")
	}

	res = g.Step(core.NewInputFrame(core.ActionStart), testDT)
	if !res.State.Started || res.State.GameOver {
		t.Fatalf("state after start = %+v", res.State)
	}

	res = g.Step(core.NewInputFrame(core.ActionPause), testDT)
	if !res.State.Paused {
		t.Fatal("pause should toggle on")
	}
	tick := g.sim.Tick()
	g.Step(core.NewInputFrame(core.ActionForward), testDT)
	if g.sim.Tick() != tick {
		t.Error("simulation advanced while paused")
	}
	res = g.Step(core.NewInputFrame(core.ActionPause), testDT)
	if res.State.Paused {
		t.Fatal("pause should toggle off")
	}

	// Kill the ship and wait out the delay
	g.sim.player.Health = 0
	for range 120 {
		res = g.Step(core.NewInputFrame(), testDT)
	}
	if !res.State.GameOver {
		t.Fatalf("state = %+v, expected game over", res.State)
	}

	res = g.Step(core.NewInputFrame(core.ActionRestart), testDT)
	if res.State.GameOver || res.State.Score != 0 {
		t.Errorf("state after restart = %+v", res.State)
	}
}

func TestGameResizeKeepsPlaying(t *testing.T) {
	g := New(config.DefaultStarfieldConfig())
	g.Reset(testRuntime())
	g.Step(core.NewInputFrame(core.ActionStart), testDT)
	for range 10 {
		g.Step(core.NewInputFrame(core.ActionForward), testDT)
	}

	g.Resize(core.RuntimeConfig{ScreenW: 50, ScreenH: 20})

	snap := g.Snapshot()
	if snap.Status != StatusPlaying {
		t.Errorf("status = %v after resize, expected playing", snap.Status)
	}
	if snap.Width != 400 || snap.Height != 320 {
		t.Errorf("viewport = %v×%v, expected 400×320", snap.Width, snap.Height)
	}
	if snap.Tick != 10 {
		t.Errorf("tick = %d, expected 10", snap.Tick)
	}
}

func TestGameRoutesCues(t *testing.T) {
	g := New(config.DefaultStarfieldConfig())
	rec := &cueRecorder{}
	g.SetCueSink(rec)
	g.Reset(testRuntime())

	g.Step(core.NewInputFrame(core.ActionStart), testDT)
	g.Step(core.NewInputFrame(core.ActionFire, core.ActionForward), testDT)

	if rec.count(core.CueLaser) != 1 || rec.count(core.CueThrust) != 1 {
		t.Errorf("cues = %v, expected one laser and one thrust", rec.cues)
	}
}

func TestRenderOverlays(t *testing.T) {
	g := New(config.DefaultStarfieldConfig())
	rc := testRuntime()
	g.Reset(rc)
	screen := core.NewScreen(rc.ScreenW, rc.ScreenH)

	g.Render(screen)
	if !strings.Contains(screen.String(), "S T A R F I E L D") {
		t.Error("start screen overlay missing")
	}

	g.Step(core.NewInputFrame(core.ActionStart), testDT)
	g.Render(screen)
	out := screen.String()
	if strings.Contains(out, "S T A R F I E L D") {
		t.Error("start overlay should disappear once playing")
	}
	if !strings.Contains(screen.Row(0), "Score: 0") {
		t.Errorf("HUD row = %q, expected a score", screen.Row(0))
	}
	if !strings.Contains(out, "↑") {
		t.Error("ship glyph facing up should be drawn")
	}

	g.Step(core.NewInputFrame(core.ActionPause), testDT)
	g.Render(screen)
	if !strings.Contains(screen.String(), "PAUSED") {
		t.Error("pause overlay missing")
	}
}

func TestShipGlyph(t *testing.T) {
	tests := []struct {
		rotation float64
		expected rune
	}{
		{0, '→'},
		{-1.5707963267948966, '↑'},
		{1.5707963267948966, '↓'},
		{3.141592653589793, '←'},
		{-3.141592653589793, '←'},
		{0.7853981633974483, '↘'},
		{2 * 3.141592653589793, '→'},
	}

	for _, tt := range tests {
		if got := shipGlyph(tt.rotation); got != tt.expected {
			t.Errorf("shipGlyph(%v) = %q, expected %q", tt.rotation, got, tt.expected)
		}
	}
}

func TestCellCoverSmallCircle(t *testing.T) {
	v := cellMapper{cw: 8, ch: 16}
	var cells [][2]int
	v.cover(core.Circle{Center: core.Vec2{20, 20}, Radius: 2}, func(x, y int, _ bool) {
		cells = append(cells, [2]int{x, y})
	})

	if len(cells) != 1 || cells[0] != [2]int{2, 1} {
		t.Errorf("cover() = %v, expected the single containing cell [2 1]", cells)
	}
}
