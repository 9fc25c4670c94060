package starfield

import (
	"math"

	"github.com/vovakirdan/tui-starfield/internal/core"
)

// resolveLaserHits applies player lasers to enemies. Every player laser
// overlapping an enemy is consumed by it, even past the killing shot.
func (s *Simulation) resolveLaserHits() {
	cfg := s.cfg.Combat
	survivors := s.enemies[:0]

	for _, e := range s.enemies {
		lasers := s.lasers[:0]
		for _, l := range s.lasers {
			if l.IsPlayerLaser && Collides(l.GameObject, e.GameObject) {
				e.Health -= cfg.LaserDamage
				s.burst(l.Position, s.cfg.Particles.ImpactCount, s.cfg.Particles.ImpactSize, core.ColorBrightCyan)
				continue
			}
			lasers = append(lasers, l)
		}
		s.lasers = lasers

		if e.Health <= 0 {
			s.score += int(math.Floor(e.MaxHealth * cfg.ScorePerHealth))
			s.burstFor(e)
			s.cues.Emit(core.CueExplosion)
			continue
		}
		survivors = append(survivors, e)
	}

	s.enemies = survivors
}

// resolvePlayerCollision destroys the first enemy touching the ship and
// damages the ship. At most one collision resolves per tick.
func (s *Simulation) resolvePlayerCollision() {
	p := s.player
	if p == nil {
		return
	}

	for i, e := range s.enemies {
		if !Collides(p.GameObject, e.GameObject) {
			continue
		}
		p.Health -= s.cfg.Combat.CollisionDamage
		s.burstFor(e)
		s.cues.Emit(core.CueExplosion)
		s.enemies = append(s.enemies[:i], s.enemies[i+1:]...)
		return
	}
}

// resolveEnemyLaserHits applies enemy lasers to the ship.
func (s *Simulation) resolveEnemyLaserHits() {
	p := s.player
	if p == nil {
		return
	}

	lasers := s.lasers[:0]
	for _, l := range s.lasers {
		if !l.IsPlayerLaser && Collides(l.GameObject, p.GameObject) {
			p.Health -= s.cfg.Combat.EnemyLaserDamage
			s.burst(l.Position, s.cfg.Particles.ImpactCount, s.cfg.Particles.ImpactSize, core.ColorBrightRed)
			continue
		}
		lasers = append(lasers, l)
	}
	s.lasers = lasers
}

// checkPlayerDeath removes a ship with no health left and starts the
// game-over countdown.
func (s *Simulation) checkPlayerDeath() {
	p := s.player
	if p == nil || p.Health > 0 {
		return
	}

	s.burst(p.Position, s.cfg.Particles.DeathCount, s.cfg.Particles.DeathSize, core.ColorBrightCyan)
	s.cues.Emit(core.CueExplosion)
	s.player = nil
	s.dying = true
	s.deathAt = s.clock
}
