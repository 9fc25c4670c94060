package starfield

import (
	"math"
	"reflect"
	"testing"
	"time"

	"github.com/vovakirdan/tui-starfield/internal/config"
	"github.com/vovakirdan/tui-starfield/internal/core"
)

const (
	testW  = 800.0
	testH  = 600.0
	testDT = 16 * time.Millisecond
)

// cueRecorder collects emitted cues in order.
type cueRecorder struct {
	cues []core.Cue
}

func (r *cueRecorder) Emit(c core.Cue) { r.cues = append(r.cues, c) }

func (r *cueRecorder) count(c core.Cue) int {
	n := 0
	for _, got := range r.cues {
		if got == c {
			n++
		}
	}
	return n
}

// newPlaying returns a simulation already in the Playing state.
func newPlaying(t *testing.T, seed int64) (*Simulation, *cueRecorder) {
	t.Helper()
	rec := &cueRecorder{}
	s := NewSimulation(config.DefaultStarfieldConfig(), seed, rec)
	s.Reset(testW, testH)
	s.RegenerateBackground(testW, testH)
	s.Start()
	return s, rec
}

// quietEnemy is a motionless enemy, used to stage collisions.
func quietEnemy(s *Simulation, t EnemyType, pos core.Vec2, radius, health float64) Enemy {
	return Enemy{
		GameObject: GameObject{ID: s.newID(), Position: pos, Radius: radius},
		Type:       t,
		Health:     health,
		MaxHealth:  health,
	}
}

func noInput() core.InputFrame {
	return core.NewInputFrame()
}

func TestNewSimulationStartsOnStartScreen(t *testing.T) {
	s := NewSimulation(config.DefaultStarfieldConfig(), 1, nil)
	s.Reset(testW, testH)

	if s.Status() != StatusStartScreen {
		t.Errorf("Status() = %v, expected %v", s.Status(), StatusStartScreen)
	}

	// Advancing outside Playing is a no-op
	before := s.Snapshot()
	s.Advance(core.NewInputFrame(core.ActionForward, core.ActionFire), testDT)
	after := s.Snapshot()
	if !reflect.DeepEqual(before, after) {
		t.Error("Advance() changed state while on the start screen")
	}
}

func TestResetPlacesPlayerAtCenterFacingUp(t *testing.T) {
	s, _ := newPlaying(t, 1)
	snap := s.Snapshot()

	p := snap.Player
	if p == nil {
		t.Fatal("player should exist after reset")
	}
	if p.Position != (core.Vec2{testW / 2, testH / 2}) {
		t.Errorf("player position = %v, expected center", p.Position)
	}
	if p.Health != p.MaxHealth || p.MaxHealth != 100 {
		t.Errorf("player health = %v/%v, expected 100/100", p.Health, p.MaxHealth)
	}
	if p.Rotation != -math.Pi/2 {
		t.Errorf("player rotation = %v, expected -π/2", p.Rotation)
	}
	if f := p.Facing(); math.Abs(f[0]) > 1e-9 || math.Abs(f[1]+1) > 1e-9 {
		t.Errorf("Facing() = %v, expected (0, -1)", f)
	}
	if snap.Score != 0 || len(snap.Enemies) != 0 || len(snap.Lasers) != 0 || len(snap.Particles) != 0 {
		t.Errorf("world not empty after reset: %+v", snap)
	}
}

func TestResetIsIdempotent(t *testing.T) {
	s, _ := newPlaying(t, 3)

	// Dirty the world first
	fire := core.NewInputFrame(core.ActionFire, core.ActionForward, core.ActionLeft)
	for range 120 {
		s.Advance(fire, testDT)
	}

	s.Reset(testW, testH)
	first := s.Snapshot()
	s.Reset(testW, testH)
	second := s.Snapshot()

	if !reflect.DeepEqual(first, second) {
		t.Errorf("Reset() twice produced different state:\nfirst  %+v\nsecond %+v", first, second)
	}
	if first.Score != 0 || len(first.Enemies) != 0 || len(first.Lasers) != 0 || len(first.Particles) != 0 {
		t.Errorf("Reset() left state behind: %+v", first)
	}
}

func TestAdvanceIncrementsTick(t *testing.T) {
	s, _ := newPlaying(t, 1)
	for i := 1; i <= 5; i++ {
		s.Advance(noInput(), testDT)
		if s.Tick() != uint64(i) {
			t.Fatalf("Tick() = %d, expected %d", s.Tick(), i)
		}
	}
}

func TestPruneInvariantAfterAdvance(t *testing.T) {
	s, _ := newPlaying(t, 7)
	in := core.NewInputFrame(core.ActionFire, core.ActionForward, core.ActionRight)

	for i := range 600 {
		s.Advance(in, testDT)
		snap := s.Snapshot()
		for _, pt := range snap.Particles {
			if pt.Life <= 0 {
				t.Fatalf("tick %d: particle %d with life %v survived", i, pt.ID, pt.Life)
			}
		}
		for _, l := range snap.Lasers {
			if l.Position[0] < 0 || l.Position[0] > testW || l.Position[1] < 0 || l.Position[1] > testH {
				t.Fatalf("tick %d: out-of-bounds laser %d at %v survived", i, l.ID, l.Position)
			}
		}
		if snap.Status != StatusPlaying {
			break
		}
	}
}

func TestWrapInvariant(t *testing.T) {
	s, _ := newPlaying(t, 11)
	inputs := []core.InputFrame{
		core.NewInputFrame(core.ActionForward),
		core.NewInputFrame(core.ActionForward, core.ActionLeft),
		core.NewInputFrame(core.ActionForward, core.ActionFire),
		core.NewInputFrame(core.ActionRight),
	}

	inBand := func(o GameObject) bool {
		r := o.Radius
		return o.Position[0] >= -r && o.Position[0] <= testW+r &&
			o.Position[1] >= -r && o.Position[1] <= testH+r
	}

	for i := range 2000 {
		s.Advance(inputs[(i/50)%len(inputs)], testDT)
		snap := s.Snapshot()
		if p := snap.Player; p != nil && !inBand(p.GameObject) {
			t.Fatalf("tick %d: player left wrap band at %v", i, p.Position)
		}
		for _, e := range snap.Enemies {
			if !inBand(e.GameObject) {
				t.Fatalf("tick %d: enemy %d left wrap band at %v (r=%v)", i, e.ID, e.Position, e.Radius)
			}
		}
		for _, pt := range snap.Particles {
			if !inBand(pt.GameObject) {
				t.Fatalf("tick %d: particle %d left wrap band at %v (r=%v)", i, pt.ID, pt.Position, pt.Radius)
			}
		}
		if snap.Status != StatusPlaying {
			break
		}
	}
}

func TestWrapTeleportsToOppositeEdge(t *testing.T) {
	s, _ := newPlaying(t, 1)
	r := 10.0

	tests := []struct {
		name     string
		pos      core.Vec2
		expected core.Vec2
	}{
		{"left", core.Vec2{-r - 1, 100}, core.Vec2{testW + r, 100}},
		{"right", core.Vec2{testW + r + 1, 100}, core.Vec2{-r, 100}},
		{"top", core.Vec2{100, -r - 1}, core.Vec2{100, testH + r}},
		{"bottom", core.Vec2{100, testH + r + 1}, core.Vec2{100, -r}},
		{"inside band", core.Vec2{-r, testH + r}, core.Vec2{-r, testH + r}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := GameObject{Position: tt.pos, Radius: r}
			s.wrap(&o)
			if o.Position != tt.expected {
				t.Errorf("wrap(%v) = %v, expected %v", tt.pos, o.Position, tt.expected)
			}
		})
	}
}

func TestLasersDoNotWrap(t *testing.T) {
	s, _ := newPlaying(t, 1)
	s.lasers = append(s.lasers, Laser{
		GameObject:    GameObject{ID: s.newID(), Position: core.Vec2{2, 300}, Velocity: core.Vec2{-10, 0}, Radius: 2},
		IsPlayerLaser: true,
	})

	s.Advance(noInput(), testDT)

	if len(s.lasers) != 0 {
		t.Errorf("laser leaving the left edge should be pruned, got %+v", s.lasers)
	}
}

func TestControlsTurnThrustAndClamp(t *testing.T) {
	s, rec := newPlaying(t, 1)
	cfg := config.DefaultStarfieldConfig().Player

	s.Advance(core.NewInputFrame(core.ActionLeft), testDT)
	if got := s.player.Rotation; math.Abs(got-(-math.Pi/2-cfg.TurnSpeed)) > 1e-12 {
		t.Errorf("rotation after left = %v, expected %v", got, -math.Pi/2-cfg.TurnSpeed)
	}
	s.Advance(core.NewInputFrame(core.ActionRight), testDT)
	if got := s.player.Rotation; math.Abs(got-(-math.Pi/2)) > 1e-12 {
		t.Errorf("rotation after right = %v, expected %v", got, -math.Pi/2)
	}

	s.Advance(core.NewInputFrame(core.ActionForward), testDT)
	// thrust 0.2 up, then friction 0.98
	if vy := s.player.Velocity[1]; math.Abs(vy-(-cfg.Thrust*cfg.Friction)) > 1e-12 {
		t.Errorf("velocity.y after one thrust = %v, expected %v", vy, -cfg.Thrust*cfg.Friction)
	}
	if rec.count(core.CueThrust) != 1 {
		t.Errorf("thrust cues = %d, expected 1", rec.count(core.CueThrust))
	}

	thrust := core.NewInputFrame(core.ActionForward)
	for range 500 {
		s.Advance(thrust, testDT)
		if s.player == nil {
			break
		}
		if sp := s.player.Velocity.Len(); sp > cfg.MaxSpeed+1e-9 {
			t.Fatalf("speed %v exceeded max %v", sp, cfg.MaxSpeed)
		}
	}
}

func TestFireCooldown(t *testing.T) {
	s, rec := newPlaying(t, 1)
	fire := core.NewInputFrame(core.ActionFire)

	// First shot is immediate
	s.Advance(fire, testDT)
	if rec.count(core.CueLaser) != 1 {
		t.Fatalf("laser cues after first tick = %d, expected 1", rec.count(core.CueLaser))
	}

	// 16ms ticks: the next shot needs more than 200ms, i.e. 13 ticks
	for range 12 {
		s.Advance(fire, testDT)
	}
	if rec.count(core.CueLaser) != 1 {
		t.Errorf("laser cues within cooldown = %d, expected 1", rec.count(core.CueLaser))
	}
	s.Advance(fire, testDT)
	if rec.count(core.CueLaser) != 2 {
		t.Errorf("laser cues after cooldown = %d, expected 2", rec.count(core.CueLaser))
	}

	var player int
	for _, l := range s.lasers {
		if l.IsPlayerLaser {
			player++
			if sp := l.Velocity.Len(); math.Abs(sp-10) > 1e-9 {
				t.Errorf("player laser speed = %v, expected 10", sp)
			}
		}
	}
	if player != 2 {
		t.Errorf("player lasers = %d, expected 2", player)
	}
}

func TestParticleDecay(t *testing.T) {
	s, _ := newPlaying(t, 1)
	s.particles = []Particle{{
		GameObject: GameObject{ID: s.newID(), Position: core.Vec2{100, 100}, Radius: 4},
		Life:       1,
		MaxLife:    1,
		StartSize:  4,
	}}

	s.Advance(noInput(), 250*time.Millisecond)
	if len(s.particles) == 0 {
		t.Fatal("particle expired too early")
	}
	pt := s.particles[0]
	if math.Abs(pt.Life-0.75) > 1e-9 {
		t.Errorf("life = %v, expected 0.75", pt.Life)
	}
	if math.Abs(pt.Radius-3) > 1e-9 {
		t.Errorf("radius = %v, expected 3", pt.Radius)
	}

	s.Advance(noInput(), 750*time.Millisecond)
	for _, p := range s.particles {
		if p.ID == pt.ID {
			t.Error("particle with life 0 should be pruned")
		}
	}
}

func TestSnapshotIsDetached(t *testing.T) {
	s, _ := newPlaying(t, 1)
	s.enemies = append(s.enemies, quietEnemy(s, Meteor, core.Vec2{50, 50}, 20, 10))

	snap := s.Snapshot()
	snap.Player.Health = -1
	snap.Enemies[0].Health = -1
	snap.Stars[0].Opacity = 42

	if s.player.Health == -1 {
		t.Error("snapshot player aliases simulation state")
	}
	if s.enemies[0].Health == -1 {
		t.Error("snapshot enemies alias simulation state")
	}
	if s.stars[0].Opacity == 42 {
		t.Error("snapshot stars alias simulation state")
	}
}

func TestDeterminism(t *testing.T) {
	run := func() Snapshot {
		s, _ := newPlaying(t, 12345)
		inputs := []core.InputFrame{
			core.NewInputFrame(core.ActionForward, core.ActionFire),
			core.NewInputFrame(core.ActionLeft, core.ActionFire),
			core.NewInputFrame(core.ActionRight),
		}
		for i := range 900 {
			s.Advance(inputs[(i/30)%len(inputs)], testDT)
		}
		return s.Snapshot()
	}

	a, b := run(), run()
	if !reflect.DeepEqual(a, b) {
		t.Errorf("same seed and inputs diverged: score %d vs %d, tick %d vs %d", a.Score, b.Score, a.Tick, b.Tick)
	}
}

func TestResizeKeepsGameplayState(t *testing.T) {
	s, _ := newPlaying(t, 1)
	s.enemies = append(s.enemies, quietEnemy(s, Meteor, core.Vec2{50, 50}, 20, 10))
	s.score = 300

	s.Resize(400, 300)

	w, h := s.Viewport()
	if w != 400 || h != 300 {
		t.Errorf("Viewport() = %v×%v, expected 400×300", w, h)
	}
	if s.score != 300 || len(s.enemies) != 1 || s.player == nil {
		t.Error("Resize() should not touch gameplay state")
	}
	for _, st := range s.stars {
		if st.Position[0] > 400 || st.Position[1] > 300 {
			t.Fatalf("star %d outside new viewport: %v", st.ID, st.Position)
		}
	}
}

func TestRegenerateBackground(t *testing.T) {
	s, _ := newPlaying(t, 1)
	cfg := config.DefaultStarfieldConfig().Background

	if len(s.stars) != cfg.Stars || len(s.nebulas) != cfg.Nebulas {
		t.Fatalf("got %d stars / %d nebulas, expected %d / %d", len(s.stars), len(s.nebulas), cfg.Stars, cfg.Nebulas)
	}
	for _, st := range s.stars {
		if st.ParallaxFactor < cfg.ParallaxMin || st.ParallaxFactor >= cfg.ParallaxMax {
			t.Errorf("star parallax %v outside [%v, %v)", st.ParallaxFactor, cfg.ParallaxMin, cfg.ParallaxMax)
		}
		if st.Size < 0 || st.Size >= cfg.StarMaxSize {
			t.Errorf("star size %v outside [0, %v)", st.Size, cfg.StarMaxSize)
		}
	}
	for _, n := range s.nebulas {
		if n.Size < cfg.NebulaMinSize || n.Size >= cfg.NebulaMaxSize {
			t.Errorf("nebula size %v outside range", n.Size)
		}
		if n.Opacity < cfg.NebulaMinAlpha || n.Opacity >= cfg.NebulaMaxAlpha {
			t.Errorf("nebula opacity %v outside range", n.Opacity)
		}
	}

	// Decoration has its own random stream
	before := s.rng.Int63()
	s2, _ := newPlaying(t, 1)
	s2.RegenerateBackground(testW, testH)
	if after := s2.rng.Int63(); after != before {
		t.Error("RegenerateBackground() consumed gameplay randomness")
	}
}

func TestTimeScaledMotion(t *testing.T) {
	cfg := config.DefaultStarfieldConfig()
	cfg.Motion.TimeScaled = true
	s := NewSimulation(cfg, 1, nil)
	s.Reset(testW, testH)
	s.Start()

	frame := time.Duration(cfg.Motion.ReferenceFrameMS * float64(time.Millisecond))
	s.Advance(core.NewInputFrame(core.ActionLeft), 2*frame)

	expected := -math.Pi/2 - 2*cfg.Player.TurnSpeed
	if got := s.player.Rotation; math.Abs(got-expected) > 1e-6 {
		t.Errorf("rotation after a double-length tick = %v, expected %v", got, expected)
	}

	if k := s.stepScale(frame); math.Abs(k-1) > 1e-6 {
		t.Errorf("stepScale(reference frame) = %v, expected 1", k)
	}
	if p := s.fireChance(2); math.Abs(p-(1-math.Pow(0.99, 2))) > 1e-12 {
		t.Errorf("fireChance(2) = %v, expected %v", p, 1-math.Pow(0.99, 2))
	}
}

func TestPerTickModeIgnoresDT(t *testing.T) {
	a, _ := newPlaying(t, 1)
	b, _ := newPlaying(t, 1)
	left := core.NewInputFrame(core.ActionLeft, core.ActionForward)

	a.Advance(left, 10*time.Millisecond)
	b.Advance(left, 50*time.Millisecond)

	if a.player.Rotation != b.player.Rotation {
		t.Errorf("per-tick rotation depends on dt: %v vs %v", a.player.Rotation, b.player.Rotation)
	}
	if a.player.Position != b.player.Position {
		t.Errorf("per-tick position depends on dt: %v vs %v", a.player.Position, b.player.Position)
	}
}
