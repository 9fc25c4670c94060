package starfield

import (
	"math"

	"github.com/vovakirdan/tui-starfield/internal/core"
)

// updateEnemies runs per-archetype behavior: meteors spin, armed enemies
// occasionally fire an aimed laser at the player's current position.
func (s *Simulation) updateEnemies(k float64) {
	chance := s.fireChance(k)
	for i := range s.enemies {
		e := &s.enemies[i]
		a := archetypeFor(e.Type)

		if a.Spins {
			e.Rotation += s.cfg.Enemies.MeteorSpinStep * k
		}

		if a.Armed && s.player != nil && s.rng.Float64() < chance {
			to := s.player.Position.Sub(e.Position)
			angle := math.Atan2(to[1], to[0])
			s.lasers = append(s.lasers, Laser{
				GameObject: GameObject{
					ID:       s.newID(),
					Position: e.Position,
					Velocity: core.FromAngle(angle, s.cfg.Lasers.EnemySpeed),
					Radius:   s.cfg.Lasers.Radius,
				},
			})
			s.cues.Emit(core.CueEnemyLaser)
		}
	}
}

// fireChance converts the per-reference-frame probability to one for a step
// of k frames.
func (s *Simulation) fireChance(k float64) float64 {
	p := s.cfg.Enemies.FireChance
	if k == 1 {
		return p
	}
	return 1 - math.Pow(1-p, k)
}
