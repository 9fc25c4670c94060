// Package starfield implements a 2D arcade shooter: a ship drifts through a
// wrapping starfield, shoots meteors and saucers, and dodges their lasers.
//
// Simulation is the frame-driven core. It owns every entity collection and the
// game status; hosts feed it held input and elapsed time once per frame and read
// back an immutable Snapshot. Game adapts it to the arcade registry and draws it
// into a terminal screen.
package starfield

import (
	"math"
	"math/rand"
	"time"

	"github.com/vovakirdan/tui-starfield/internal/config"
	"github.com/vovakirdan/tui-starfield/internal/core"
)

// Simulation is the per-frame shooter engine. It is not safe for concurrent
// use; exactly one goroutine may call into it.
type Simulation struct {
	cfg     config.StarfieldConfig
	rng     *rand.Rand // Gameplay randomness
	bgRng   *rand.Rand // Decoration only, so resizes don't perturb gameplay
	spawner *Spawner
	cues    core.CueSink

	width, height float64

	player    *Player
	enemies   []Enemy
	lasers    []Laser
	particles []Particle
	stars     []Star
	nebulas   []Nebula

	score  int
	status GameStatus
	tick   uint64
	nextID EntityID

	clock     time.Duration // Simulated time since reset
	sinceShot time.Duration // Time since the player last fired
	dying     bool          // Player destroyed, game over pending
	deathAt   time.Duration
}

// NewSimulation creates a simulation on the start screen with an empty viewport.
// Call Reset or Start before advancing.
func NewSimulation(cfg config.StarfieldConfig, seed int64, cues core.CueSink) *Simulation {
	s := &Simulation{
		cfg:    cfg,
		status: StatusStartScreen,
	}
	s.SetCueSink(cues)
	s.Reseed(seed)
	return s
}

// SetCueSink replaces the audio cue consumer. nil discards cues.
func (s *Simulation) SetCueSink(cues core.CueSink) {
	if cues == nil {
		cues = core.Discard
	}
	s.cues = cues
}

// Reseed replaces both random sources.
func (s *Simulation) Reseed(seed int64) {
	s.rng = rand.New(rand.NewSource(seed))
	s.bgRng = rand.New(rand.NewSource(seed ^ 0x5f3759df))
	s.spawner = NewSpawner(s.cfg.Enemies, s.cfg.Spawner, s.rng)
}

// Reset reinitializes the world for a viewport: a fresh player at the center
// facing up, no enemies, lasers or particles, zero score. Status is unchanged.
func (s *Simulation) Reset(width, height float64) {
	s.width = width
	s.height = height
	s.nextID = 0

	p := s.cfg.Player
	s.player = &Player{
		GameObject: GameObject{
			ID:       s.newID(),
			Position: core.Vec2{width / 2, height / 2},
			Radius:   p.Radius,
		},
		Health:    p.MaxHealth,
		MaxHealth: p.MaxHealth,
		Rotation:  -math.Pi / 2,
	}

	s.enemies = nil
	s.lasers = nil
	s.particles = nil
	s.score = 0
	s.tick = 0
	s.clock = 0
	s.sinceShot = s.fireCooldown() + 1
	s.dying = false
	s.deathAt = 0
}

// Start resets the world and begins play.
func (s *Simulation) Start() {
	s.Reset(s.width, s.height)
	s.status = StatusPlaying
}

// Resize changes the viewport without touching gameplay state and
// regenerates the background for the new dimensions.
func (s *Simulation) Resize(width, height float64) {
	s.width = width
	s.height = height
	s.RegenerateBackground(width, height)
}

// Advance runs one tick. It is a no-op unless the status is Playing.
func (s *Simulation) Advance(in core.InputFrame, dt time.Duration) {
	if s.status != StatusPlaying {
		return
	}

	s.tick++
	s.clock += dt
	k := s.stepScale(dt)

	s.applyControls(in, dt, k)
	s.stepMotion(dt, k)
	s.spawn()
	s.updateEnemies(k)

	s.resolveLaserHits()
	s.resolvePlayerCollision()
	s.resolveEnemyLaserHits()
	s.checkPlayerDeath()

	s.prune()

	if s.dying && s.clock-s.deathAt >= s.gameOverDelay() {
		s.dying = false
		s.status = StatusGameOver
	}
}

// Status returns the current game status.
func (s *Simulation) Status() GameStatus {
	return s.status
}

// Score returns the current score.
func (s *Simulation) Score() int {
	return s.score
}

// Tick returns the number of ticks advanced since the last reset.
func (s *Simulation) Tick() uint64 {
	return s.tick
}

// Viewport returns the current width and height in pixels.
func (s *Simulation) Viewport() (width, height float64) {
	return s.width, s.height
}

// stepScale is the multiplier applied to per-tick increments.
// With time scaling off every tick counts as one reference frame.
func (s *Simulation) stepScale(dt time.Duration) float64 {
	if !s.cfg.Motion.TimeScaled {
		return 1
	}
	ms := float64(dt) / float64(time.Millisecond)
	return ms / s.cfg.Motion.ReferenceFrameMS
}

func (s *Simulation) newID() EntityID {
	s.nextID++
	return s.nextID
}

func (s *Simulation) fireCooldown() time.Duration {
	return time.Duration(s.cfg.Player.FireCooldownMS) * time.Millisecond
}

func (s *Simulation) gameOverDelay() time.Duration {
	return time.Duration(s.cfg.Combat.GameOverDelayMS) * time.Millisecond
}
