package starfield

import (
	"math/rand"

	"github.com/vovakirdan/tui-starfield/internal/config"
	"github.com/vovakirdan/tui-starfield/internal/core"
)

// Spawner decides when a new enemy appears and what it looks like.
// It shares the simulation's random source.
type Spawner struct {
	enemies config.EnemiesConfig
	gate    config.SpawnerConfig
	rng     *rand.Rand
}

// NewSpawner creates a spawner bound to the given random source.
func NewSpawner(enemies config.EnemiesConfig, gate config.SpawnerConfig, rng *rand.Rand) *Spawner {
	return &Spawner{enemies: enemies, gate: gate, rng: rng}
}

// Cap returns the maximum live enemy count for a score.
func (sp *Spawner) Cap(score int) int {
	if score < 0 {
		score = 0
	}
	return sp.gate.Base + score/sp.gate.ScoreStep
}

// ShouldSpawn reports whether one more enemy fits under the cap.
func (sp *Spawner) ShouldSpawn(live, score int) bool {
	return live < sp.Cap(score)
}

// RollType picks the archetype for a new enemy. Mothership is checked first,
// then saucer; everything else is a meteor.
func (sp *Spawner) RollType(score int) EnemyType {
	ms := sp.enemies.Mothership
	if score > ms.MinScore && sp.rng.Float64() < ms.Chance {
		return Mothership
	}
	sc := sp.enemies.Saucer
	if score > sc.MinScore && sp.rng.Float64() < sc.Chance {
		return Saucer
	}
	return Meteor
}

// Spawn builds an enemy of type t just outside a random viewport edge.
// The caller assigns the ID.
func (sp *Spawner) Spawn(t EnemyType, width, height float64) Enemy {
	var radius, health float64
	switch t {
	case Mothership:
		radius, health = sp.enemies.Mothership.Radius, sp.enemies.Mothership.Health
	case Saucer:
		radius, health = sp.enemies.Saucer.Radius, sp.enemies.Saucer.Health
	default:
		m := sp.enemies.Meteor
		radius = core.RandomBetween(sp.rng, m.MinRadius, m.MaxRadius)
		health = radius * m.HealthPerRadius
	}

	var pos core.Vec2
	switch sp.rng.Intn(4) {
	case 0: // top
		pos = core.Vec2{sp.rng.Float64() * width, -radius}
	case 1: // right
		pos = core.Vec2{width + radius, sp.rng.Float64() * height}
	case 2: // bottom
		pos = core.Vec2{sp.rng.Float64() * width, height + radius}
	default: // left
		pos = core.Vec2{-radius, sp.rng.Float64() * height}
	}

	speed := sp.enemies.InitialSpeed
	return Enemy{
		GameObject: GameObject{
			Position: pos,
			Velocity: core.Vec2{
				core.RandomBetween(sp.rng, -speed, speed),
				core.RandomBetween(sp.rng, -speed, speed),
			},
			Radius: radius,
		},
		Type:      t,
		Health:    health,
		MaxHealth: health,
	}
}

// spawn makes at most one spawn decision per tick.
func (s *Simulation) spawn() {
	if !s.spawner.ShouldSpawn(len(s.enemies), s.score) {
		return
	}
	e := s.spawner.Spawn(s.spawner.RollType(s.score), s.width, s.height)
	e.ID = s.newID()
	s.enemies = append(s.enemies, e)
}
