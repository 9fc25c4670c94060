package starfield

import (
	"math"
	"time"

	"github.com/vovakirdan/tui-starfield/internal/core"
)

// applyControls turns held input into ship rotation, thrust and fire.
// k is the step scale (1 in per-tick mode).
func (s *Simulation) applyControls(in core.InputFrame, dt time.Duration, k float64) {
	if s.sinceShot <= s.fireCooldown() {
		s.sinceShot += dt
	}

	p := s.player
	if p == nil {
		return
	}
	cfg := s.cfg.Player

	if in.Has(core.ActionForward) {
		p.Velocity = p.Velocity.Add(p.Facing().Mul(cfg.Thrust * k))
		s.emitExhaust(p)
		s.cues.Emit(core.CueThrust)
	}

	if in.Has(core.ActionLeft) {
		p.Rotation -= cfg.TurnSpeed * k
	}
	if in.Has(core.ActionRight) {
		p.Rotation += cfg.TurnSpeed * k
	}

	p.Velocity = core.ClampLength(p.Velocity, cfg.MaxSpeed)
	p.Velocity = p.Velocity.Mul(math.Pow(cfg.Friction, k))

	if in.Has(core.ActionFire) && s.sinceShot > s.fireCooldown() {
		s.lasers = append(s.lasers, Laser{
			GameObject: GameObject{
				ID:       s.newID(),
				Position: p.Position,
				Velocity: p.Facing().Mul(s.cfg.Lasers.PlayerSpeed),
				Radius:   s.cfg.Lasers.Radius,
			},
			IsPlayerLaser: true,
		})
		s.sinceShot = 0
		s.cues.Emit(core.CueLaser)
	}
}
