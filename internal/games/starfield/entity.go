package starfield

import (
	"github.com/vovakirdan/tui-starfield/internal/core"
)

// EntityID identifies an entity for its whole lifetime within one simulation.
type EntityID uint64

// GameObject is the shape shared by every movable entity.
type GameObject struct {
	ID       EntityID  `json:"id"`
	Position core.Vec2 `json:"position"`
	Velocity core.Vec2 `json:"velocity"`
	Radius   float64   `json:"radius"`
}

// Circle returns the collision shape of the object.
func (o GameObject) Circle() core.Circle {
	return core.Circle{Center: o.Position, Radius: o.Radius}
}

// Collides reports whether two objects overlap.
func Collides(a, b GameObject) bool {
	return core.CheckCollision(a.Circle(), b.Circle())
}

// Player is the ship controlled by input. At most one is alive.
type Player struct {
	GameObject
	Health    float64 `json:"health"`
	MaxHealth float64 `json:"maxHealth"`
	Rotation  float64 `json:"rotation"` // Facing, radians
}

// Facing returns the unit vector the ship points along.
func (p Player) Facing() core.Vec2 {
	return core.FromAngle(p.Rotation, 1)
}

// EnemyType tags the enemy archetype.
type EnemyType int

const (
	Meteor EnemyType = iota
	Saucer
	BlackHole // Reserved: has an archetype entry but no spawn path
	Mothership
)

// String returns the archetype name.
func (t EnemyType) String() string {
	return archetypeFor(t).Name
}

// MarshalText encodes the type by name.
func (t EnemyType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// Enemy is a hostile entity created by the spawner.
type Enemy struct {
	GameObject
	Type      EnemyType `json:"type"`
	Health    float64   `json:"health"`
	MaxHealth float64   `json:"maxHealth"`
	Rotation  float64   `json:"rotation"` // Visual spin, meteors only
}

// Laser is a projectile. The faction tag routes collision checks.
type Laser struct {
	GameObject
	IsPlayerLaser bool `json:"isPlayerLaser"`
}

// Particle is a short-lived visual effect.
// Its radius shrinks with the remaining life ratio.
type Particle struct {
	GameObject
	Life      float64    `json:"life"`    // Seconds remaining
	MaxLife   float64    `json:"maxLife"` // Initial life
	Color     core.Color `json:"color"`
	StartSize float64    `json:"startSize"`
}

// Star is background decoration. It has no physics.
type Star struct {
	ID             EntityID  `json:"id"`
	Position       core.Vec2 `json:"position"`
	Size           float64   `json:"size"`
	Opacity        float64   `json:"opacity"`
	ParallaxFactor float64   `json:"parallax"`
}

// Nebula is background decoration. It has no physics.
type Nebula struct {
	ID       EntityID   `json:"id"`
	Position core.Vec2  `json:"position"`
	Size     float64    `json:"size"`
	Opacity  float64    `json:"opacity"`
	Color    core.Color `json:"color"`
}

// GameStatus drives whether the simulation runs and which overlay is shown.
type GameStatus int

const (
	StatusStartScreen GameStatus = iota
	StatusPlaying
	StatusGameOver
)

// String returns the status name.
func (s GameStatus) String() string {
	switch s {
	case StatusStartScreen:
		return "start"
	case StatusPlaying:
		return "playing"
	case StatusGameOver:
		return "gameover"
	default:
		return "unknown"
	}
}

// MarshalText encodes the status by name.
func (s GameStatus) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}
