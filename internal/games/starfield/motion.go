package starfield

import (
	"time"

	"github.com/vovakirdan/tui-starfield/internal/core"
)

// stepMotion integrates positions. The player, enemies and particles wrap
// around the viewport; lasers never wrap. Particle life decays by real time
// regardless of the step mode.
func (s *Simulation) stepMotion(dt time.Duration, k float64) {
	if p := s.player; p != nil {
		s.move(&p.GameObject, k)
		s.wrap(&p.GameObject)
	}

	for i := range s.enemies {
		s.move(&s.enemies[i].GameObject, k)
		s.wrap(&s.enemies[i].GameObject)
	}

	for i := range s.lasers {
		s.move(&s.lasers[i].GameObject, k)
	}

	elapsed := dt.Seconds()
	for i := range s.particles {
		pt := &s.particles[i]
		pt.Life -= elapsed
		pt.Radius = pt.StartSize * core.ClampF(pt.Life, 0, pt.MaxLife) / pt.MaxLife
		s.move(&pt.GameObject, k)
		s.wrap(&pt.GameObject)
	}
}

func (s *Simulation) move(o *GameObject, k float64) {
	o.Position = o.Position.Add(o.Velocity.Mul(k))
}

// wrap teleports an object that has fully left the viewport to the opposite
// edge, just outside it.
func (s *Simulation) wrap(o *GameObject) {
	r := o.Radius
	switch {
	case o.Position[0] < -r:
		o.Position[0] = s.width + r
	case o.Position[0] > s.width+r:
		o.Position[0] = -r
	}
	switch {
	case o.Position[1] < -r:
		o.Position[1] = s.height + r
	case o.Position[1] > s.height+r:
		o.Position[1] = -r
	}
}

// inBounds reports whether a position lies inside the viewport, edges included.
func (s *Simulation) inBounds(pos core.Vec2) bool {
	return pos[0] >= 0 && pos[0] <= s.width && pos[1] >= 0 && pos[1] <= s.height
}

// prune drops lasers that left the viewport and expired particles.
func (s *Simulation) prune() {
	lasers := s.lasers[:0]
	for _, l := range s.lasers {
		if s.inBounds(l.Position) {
			lasers = append(lasers, l)
		}
	}
	s.lasers = lasers

	particles := s.particles[:0]
	for _, pt := range s.particles {
		if pt.Life > 0 {
			particles = append(particles, pt)
		}
	}
	s.particles = particles
}
