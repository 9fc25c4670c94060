package starfield

import (
	"math"
	"testing"
	"time"

	"github.com/vovakirdan/tui-starfield/internal/config"
	"github.com/vovakirdan/tui-starfield/internal/core"
)

func playerLaserAt(s *Simulation, pos core.Vec2) Laser {
	return Laser{
		GameObject:    GameObject{ID: s.newID(), Position: pos, Radius: 2},
		IsPlayerLaser: true,
	}
}

func enemyLaserAt(s *Simulation, pos core.Vec2) Laser {
	return Laser{GameObject: GameObject{ID: s.newID(), Position: pos, Radius: 2}}
}

func hasEnemy(s *Simulation, id EntityID) bool {
	for _, e := range s.enemies {
		if e.ID == id {
			return true
		}
	}
	return false
}

func TestLaserDestroysEnemy(t *testing.T) {
	s, rec := newPlaying(t, 1)
	target := quietEnemy(s, Meteor, core.Vec2{200, 200}, 20, 5)
	s.enemies = append(s.enemies, target)
	s.lasers = append(s.lasers, playerLaserAt(s, core.Vec2{200, 200}))

	s.Advance(noInput(), testDT)

	if hasEnemy(s, target.ID) {
		t.Error("enemy with health 5 should be destroyed by one laser")
	}
	if s.score != 25 {
		t.Errorf("score = %d, expected floor(5*5) = 25", s.score)
	}
	for _, l := range s.lasers {
		if l.IsPlayerLaser {
			t.Errorf("laser should be consumed, found %+v", l)
		}
	}
	if rec.count(core.CueExplosion) != 1 {
		t.Errorf("explosion cues = %d, expected 1", rec.count(core.CueExplosion))
	}

	burst := archetypes[Meteor].BurstCount + config.DefaultStarfieldConfig().Particles.ImpactCount
	if len(s.particles) != burst {
		t.Errorf("particles = %d, expected %d (impact + destruction)", len(s.particles), burst)
	}
}

func TestScoreAwardIsFloorOfMaxHealth(t *testing.T) {
	tests := []struct {
		maxHealth float64
		expected  int
	}{
		{5, 25},
		{7.5, 37},
		{10, 50},
		{0.3, 1},
		{50, 250},
	}

	for _, tt := range tests {
		s, _ := newPlaying(t, 1)
		target := quietEnemy(s, Saucer, core.Vec2{200, 200}, 20, tt.maxHealth)
		s.enemies = append(s.enemies, target)
		for range int(math.Ceil(tt.maxHealth / 5)) {
			s.lasers = append(s.lasers, playerLaserAt(s, core.Vec2{200, 200}))
		}

		s.Advance(noInput(), testDT)

		if hasEnemy(s, target.ID) {
			t.Errorf("maxHealth %v: enemy survived", tt.maxHealth)
		}
		if s.score != tt.expected {
			t.Errorf("maxHealth %v: score = %d, expected %d", tt.maxHealth, s.score, tt.expected)
		}
	}
}

func TestLaserDamagesWithoutKilling(t *testing.T) {
	s, rec := newPlaying(t, 1)
	target := quietEnemy(s, Saucer, core.Vec2{200, 200}, 20, 10)
	s.enemies = append(s.enemies, target)
	s.lasers = append(s.lasers, playerLaserAt(s, core.Vec2{205, 200}))

	s.Advance(noInput(), testDT)

	if !hasEnemy(s, target.ID) {
		t.Fatal("enemy with health 10 should survive one laser")
	}
	for _, e := range s.enemies {
		if e.ID == target.ID && e.Health != 5 {
			t.Errorf("enemy health = %v, expected 5", e.Health)
		}
	}
	if s.score != 0 {
		t.Errorf("score = %d, expected 0", s.score)
	}
	if rec.count(core.CueExplosion) != 0 {
		t.Errorf("explosion cues = %d, expected 0", rec.count(core.CueExplosion))
	}
}

func TestEveryOverlappingLaserIsConsumed(t *testing.T) {
	s, _ := newPlaying(t, 1)
	target := quietEnemy(s, Meteor, core.Vec2{200, 200}, 20, 5)
	s.enemies = append(s.enemies, target)
	for range 3 {
		s.lasers = append(s.lasers, playerLaserAt(s, core.Vec2{200, 200}))
	}

	s.Advance(noInput(), testDT)

	if len(s.lasers) != 0 {
		t.Errorf("lasers = %d, expected all 3 consumed", len(s.lasers))
	}
	if s.score != 25 {
		t.Errorf("score = %d, expected 25 (awarded once)", s.score)
	}
}

func TestLaserIsConsumedByFirstEnemy(t *testing.T) {
	s, _ := newPlaying(t, 1)
	first := quietEnemy(s, Saucer, core.Vec2{200, 200}, 20, 10)
	second := quietEnemy(s, Saucer, core.Vec2{210, 200}, 20, 10)
	s.enemies = append(s.enemies, first, second)
	s.lasers = append(s.lasers, playerLaserAt(s, core.Vec2{205, 200}))

	s.Advance(noInput(), testDT)

	for _, e := range s.enemies {
		switch e.ID {
		case first.ID:
			if e.Health != 5 {
				t.Errorf("first enemy health = %v, expected 5", e.Health)
			}
		case second.ID:
			if e.Health != 10 {
				t.Errorf("second enemy health = %v, expected 10", e.Health)
			}
		}
	}
}

func TestEnemyLasersPassThroughEnemies(t *testing.T) {
	s, _ := newPlaying(t, 1)
	target := quietEnemy(s, Meteor, core.Vec2{200, 200}, 20, 5)
	s.enemies = append(s.enemies, target)
	s.lasers = append(s.lasers, enemyLaserAt(s, core.Vec2{200, 200}))

	s.Advance(noInput(), testDT)

	if !hasEnemy(s, target.ID) {
		t.Error("enemy laser should not damage enemies")
	}
	if len(s.lasers) != 1 {
		t.Errorf("lasers = %d, expected the enemy laser to survive", len(s.lasers))
	}
}

func TestPlayerCollisionResolvesOneEnemyPerTick(t *testing.T) {
	s, rec := newPlaying(t, 1)
	center := s.player.Position
	s.player.Health = 50
	a := quietEnemy(s, Meteor, center, 20, 10)
	b := quietEnemy(s, Meteor, center.Add(core.Vec2{5, 0}), 20, 10)
	s.enemies = append(s.enemies, a, b)

	s.Advance(noInput(), testDT)

	if s.player == nil {
		t.Fatal("player should survive")
	}
	if s.player.Health != 30 {
		t.Errorf("player health = %v, expected 30 (exactly one collision)", s.player.Health)
	}
	if hasEnemy(s, a.ID) == hasEnemy(s, b.ID) {
		t.Errorf("exactly one overlapping enemy should be removed: a=%v b=%v", hasEnemy(s, a.ID), hasEnemy(s, b.ID))
	}
	if rec.count(core.CueExplosion) != 1 {
		t.Errorf("explosion cues = %d, expected 1", rec.count(core.CueExplosion))
	}
	if s.score != 0 {
		t.Errorf("ramming should not score, got %d", s.score)
	}
}

func TestPlayerCollisionAtLowHealth(t *testing.T) {
	s, _ := newPlaying(t, 1)
	center := s.player.Position
	s.player.Health = 5
	a := quietEnemy(s, Meteor, center, 20, 10)
	b := quietEnemy(s, Meteor, center, 20, 10)
	s.enemies = append(s.enemies, a, b)

	s.Advance(noInput(), testDT)

	if s.player != nil {
		t.Errorf("player at %v health should be destroyed", s.player.Health)
	}
	if hasEnemy(s, a.ID) == hasEnemy(s, b.ID) {
		t.Error("exactly one overlapping enemy should be removed")
	}
}

func TestEnemyLaserDamagesPlayer(t *testing.T) {
	s, _ := newPlaying(t, 1)
	s.lasers = append(s.lasers, enemyLaserAt(s, s.player.Position))

	s.Advance(noInput(), testDT)

	if s.player.Health != 90 {
		t.Errorf("player health = %v, expected 90", s.player.Health)
	}
	if len(s.lasers) != 0 {
		t.Errorf("enemy laser should be consumed, %d lasers left", len(s.lasers))
	}
}

func TestPlayerLasersDoNotHitPlayer(t *testing.T) {
	s, _ := newPlaying(t, 1)
	s.lasers = append(s.lasers, playerLaserAt(s, s.player.Position))

	s.Advance(noInput(), testDT)

	if s.player.Health != s.player.MaxHealth {
		t.Errorf("player health = %v, expected untouched", s.player.Health)
	}
}

func TestGameOverAfterDelay(t *testing.T) {
	s, rec := newPlaying(t, 1)
	s.player.Health = 10
	s.lasers = append(s.lasers, enemyLaserAt(s, s.player.Position))

	step := 100 * time.Millisecond
	s.Advance(noInput(), step)

	if s.player != nil {
		t.Fatal("player should be absent after lethal damage")
	}
	if s.Status() != StatusPlaying {
		t.Fatalf("Status() = %v right after death, expected %v", s.Status(), StatusPlaying)
	}
	if rec.count(core.CueExplosion) != 1 {
		t.Errorf("explosion cues = %d, expected 1", rec.count(core.CueExplosion))
	}

	// 900ms after death: still waiting
	for range 9 {
		s.Advance(noInput(), step)
	}
	if s.Status() != StatusPlaying {
		t.Fatalf("Status() = %v before the delay elapsed, expected %v", s.Status(), StatusPlaying)
	}

	// The world keeps running while the death burst plays out
	if s.Tick() != 10 {
		t.Errorf("Tick() = %d, expected 10", s.Tick())
	}

	s.Advance(noInput(), step)
	if s.Status() != StatusGameOver {
		t.Errorf("Status() = %v after the delay, expected %v", s.Status(), StatusGameOver)
	}

	// Frozen once over
	tick := s.Tick()
	s.Advance(noInput(), step)
	if s.Tick() != tick {
		t.Error("Advance() should be a no-op after game over")
	}
}

func TestStartAfterGameOverResets(t *testing.T) {
	s, _ := newPlaying(t, 1)
	s.player.Health = 0
	s.score = 400
	s.Advance(noInput(), 2*time.Second) // dies
	s.Advance(noInput(), 2*time.Second) // delay elapses
	if s.Status() != StatusGameOver {
		t.Fatalf("Status() = %v, expected %v", s.Status(), StatusGameOver)
	}

	s.Start()

	if s.Status() != StatusPlaying {
		t.Errorf("Status() = %v after Start(), expected %v", s.Status(), StatusPlaying)
	}
	if s.player == nil || s.player.Health != s.player.MaxHealth {
		t.Error("Start() should restore a full-health player")
	}
	if s.score != 0 {
		t.Errorf("score = %d after Start(), expected 0", s.score)
	}
}
