package starfield

import "slices"

// Snapshot is a read-only copy of the world after a tick. It shares no
// memory with the simulation, so hosts may keep it across ticks or hand it
// to another goroutine.
type Snapshot struct {
	Tick      uint64     `json:"tick"`
	Status    GameStatus `json:"status"`
	Score     int        `json:"score"`
	Width     float64    `json:"width"`
	Height    float64    `json:"height"`
	Player    *Player    `json:"player"` // nil while dead
	Enemies   []Enemy    `json:"enemies"`
	Lasers    []Laser    `json:"lasers"`
	Particles []Particle `json:"particles"`
	Stars     []Star     `json:"stars,omitempty"`
	Nebulas   []Nebula   `json:"nebulas,omitempty"`
}

// Snapshot copies the current world.
func (s *Simulation) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:      s.tick,
		Status:    s.status,
		Score:     s.score,
		Width:     s.width,
		Height:    s.height,
		Enemies:   slices.Clone(s.enemies),
		Lasers:    slices.Clone(s.lasers),
		Particles: slices.Clone(s.particles),
		Stars:     slices.Clone(s.stars),
		Nebulas:   slices.Clone(s.nebulas),
	}
	if s.player != nil {
		p := *s.player
		snap.Player = &p
	}
	return snap
}

// WithoutBackground returns the snapshot with decoration stripped, for
// per-tick streaming where the background is sent once.
func (snap Snapshot) WithoutBackground() Snapshot {
	snap.Stars = nil
	snap.Nebulas = nil
	return snap
}
