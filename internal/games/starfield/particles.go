package starfield

import (
	"math"

	"github.com/vovakirdan/tui-starfield/internal/core"
)

// burst scatters count particles from at, each with a random velocity in
// [-speed, speed] per axis and a start size in [1, size). Particles born
// outside the wrap band are wrapped immediately.
func (s *Simulation) burst(at core.Vec2, count int, size float64, color core.Color) {
	cfg := s.cfg.Particles
	for n := 0; n < count; n++ {
		start := size
		if size > 1 {
			start = core.RandomBetween(s.rng, 1, size)
		}
		pt := Particle{
			GameObject: GameObject{
				ID:       s.newID(),
				Position: at,
				Velocity: core.Vec2{
					core.RandomBetween(s.rng, -cfg.BurstSpeed, cfg.BurstSpeed),
					core.RandomBetween(s.rng, -cfg.BurstSpeed, cfg.BurstSpeed),
				},
				Radius: start,
			},
			Life:      cfg.BurstLife,
			MaxLife:   cfg.BurstLife,
			Color:     color,
			StartSize: start,
		}
		s.wrap(&pt.GameObject)
		s.particles = append(s.particles, pt)
	}
}

// burstFor plays the destruction burst of an enemy's archetype.
func (s *Simulation) burstFor(e Enemy) {
	a := archetypeFor(e.Type)
	s.burst(e.Position, a.BurstCount, a.BurstSize, a.BurstColor)
}

// emitExhaust trails engine particles behind a thrusting ship.
func (s *Simulation) emitExhaust(p *Player) {
	cfg := s.cfg.Particles
	for n := 0; n < cfg.ExhaustPerTick; n++ {
		angle := p.Rotation + math.Pi + core.RandomBetween(s.rng, -cfg.ExhaustSpread, cfg.ExhaustSpread)
		color := core.ColorOrange
		if s.rng.Intn(2) == 0 {
			color = core.ColorYellow
		}
		start := cfg.ExhaustSize
		if start > 1 {
			start = core.RandomBetween(s.rng, 1, cfg.ExhaustSize)
		}
		pt := Particle{
			GameObject: GameObject{
				ID:       s.newID(),
				Position: p.Position,
				Velocity: p.Velocity.Add(core.FromAngle(angle, cfg.ExhaustSpeed)),
				Radius:   start,
			},
			Life:      cfg.ExhaustLife,
			MaxLife:   cfg.ExhaustLife,
			Color:     color,
			StartSize: start,
		}
		s.wrap(&pt.GameObject)
		s.particles = append(s.particles, pt)
	}
}
