package config

import (
	_ "embed"
)

//go:embed defaults/starfield.yaml
var defaultStarfieldYAML []byte

// DefaultStarfieldConfig returns the built-in configuration.
// Must stay in sync with defaults/starfield.yaml.
func DefaultStarfieldConfig() StarfieldConfig {
	return StarfieldConfig{
		Player: PlayerConfig{
			Radius:         15,
			MaxHealth:      100,
			Thrust:         0.2,
			TurnSpeed:      0.08,
			MaxSpeed:       6,
			Friction:       0.98,
			FireCooldownMS: 200,
		},
		Lasers: LaserConfig{
			PlayerSpeed: 10,
			EnemySpeed:  5,
			Radius:      2,
		},
		Enemies: EnemiesConfig{
			Meteor: MeteorConfig{
				MinRadius:       15,
				MaxRadius:       40,
				HealthPerRadius: 0.5,
			},
			Saucer: ArchetypeConfig{
				Radius:   20,
				Health:   10,
				Chance:   0.3,
				MinScore: 200,
			},
			Mothership: ArchetypeConfig{
				Radius:   60,
				Health:   50,
				Chance:   0.05,
				MinScore: 1000,
			},
			FireChance:     0.01,
			InitialSpeed:   1,
			MeteorSpinStep: 0.02,
		},
		Spawner: SpawnerConfig{
			Base:      5,
			ScoreStep: 500,
		},
		Combat: CombatConfig{
			LaserDamage:      5,
			CollisionDamage:  20,
			EnemyLaserDamage: 10,
			ScorePerHealth:   5,
			GameOverDelayMS:  1000,
		},
		Particles: ParticleConfig{
			BurstSpeed:     3,
			BurstLife:      1,
			ImpactCount:    5,
			ImpactSize:     3,
			DeathCount:     50,
			DeathSize:      6,
			ExhaustPerTick: 2,
			ExhaustLife:    0.5,
			ExhaustSpread:  0.3,
			ExhaustSpeed:   2,
			ExhaustSize:    3,
		},
		Background: BackgroundConfig{
			Stars:          200,
			StarMaxSize:    1.5,
			ParallaxMin:    0.1,
			ParallaxMax:    0.6,
			Nebulas:        5,
			NebulaMinSize:  100,
			NebulaMaxSize:  300,
			NebulaMinAlpha: 0.1,
			NebulaMaxAlpha: 0.3,
		},
		Motion: MotionConfig{
			TimeScaled:       false,
			ReferenceFrameMS: 1000.0 / 60.0,
		},
		Render: RenderConfig{
			CellWidth:  8,
			CellHeight: 16,
		},
		Audio: AudioConfig{
			Enabled:      true,
			SampleRate:   44100,
			MasterVolume: 0.6,
			CueVolumes: map[string]float64{
				"laser":      0.5,
				"enemyLaser": 0.4,
				"thrust":     0.2,
				"explosion":  0.8,
			},
		},
		Input: InputConfig{
			HoldMS:        180,
			RepeatDelayMS: 550,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultStarfieldYAML
}
