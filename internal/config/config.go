// Package config provides YAML-based configuration loading for the starfield
// simulation and its hosts.
package config

// StarfieldConfig contains every tunable constant of the shooter.
type StarfieldConfig struct {
	Player     PlayerConfig     `yaml:"player"`
	Lasers     LaserConfig      `yaml:"lasers"`
	Enemies    EnemiesConfig    `yaml:"enemies"`
	Spawner    SpawnerConfig    `yaml:"spawner"`
	Combat     CombatConfig     `yaml:"combat"`
	Particles  ParticleConfig   `yaml:"particles"`
	Background BackgroundConfig `yaml:"background"`
	Motion     MotionConfig     `yaml:"motion"`
	Render     RenderConfig     `yaml:"render"`
	Audio      AudioConfig      `yaml:"audio"`
	Input      InputConfig      `yaml:"input"`
}

// PlayerConfig defines ship handling. Per-tick values unless noted.
type PlayerConfig struct {
	Radius         float64 `yaml:"radius"`
	MaxHealth      float64 `yaml:"max_health"`
	Thrust         float64 `yaml:"thrust"`
	TurnSpeed      float64 `yaml:"turn_speed"` // Radians per tick
	MaxSpeed       float64 `yaml:"max_speed"`
	Friction       float64 `yaml:"friction"` // Velocity multiplier per tick, < 1
	FireCooldownMS int     `yaml:"fire_cooldown_ms"`
}

// LaserConfig defines projectile parameters for both factions.
type LaserConfig struct {
	PlayerSpeed float64 `yaml:"player_speed"`
	EnemySpeed  float64 `yaml:"enemy_speed"`
	Radius      float64 `yaml:"radius"`
}

// EnemiesConfig defines the spawnable archetypes.
type EnemiesConfig struct {
	Meteor         MeteorConfig    `yaml:"meteor"`
	Saucer         ArchetypeConfig `yaml:"saucer"`
	Mothership     ArchetypeConfig `yaml:"mothership"`
	FireChance     float64         `yaml:"fire_chance"` // Per tick, per armed enemy
	InitialSpeed   float64         `yaml:"initial_speed"`
	MeteorSpinStep float64         `yaml:"meteor_spin_step"`
}

// MeteorConfig defines the default enemy archetype.
type MeteorConfig struct {
	MinRadius       float64 `yaml:"min_radius"`
	MaxRadius       float64 `yaml:"max_radius"`
	HealthPerRadius float64 `yaml:"health_per_radius"`
}

// ArchetypeConfig defines a score-gated enemy archetype.
type ArchetypeConfig struct {
	Radius   float64 `yaml:"radius"`
	Health   float64 `yaml:"health"`
	Chance   float64 `yaml:"chance"`    // Roll probability once unlocked
	MinScore int     `yaml:"min_score"` // Unlocked when score > MinScore
}

// SpawnerConfig defines the live enemy cap: Base + floor(score / ScoreStep).
type SpawnerConfig struct {
	Base      int `yaml:"base"`
	ScoreStep int `yaml:"score_step"`
}

// CombatConfig defines damage and scoring.
type CombatConfig struct {
	LaserDamage      float64 `yaml:"laser_damage"`
	CollisionDamage  float64 `yaml:"collision_damage"`
	EnemyLaserDamage float64 `yaml:"enemy_laser_damage"`
	ScorePerHealth   float64 `yaml:"score_per_health"`
	GameOverDelayMS  int     `yaml:"game_over_delay_ms"`
}

// ParticleConfig defines explosion bursts and engine exhaust.
type ParticleConfig struct {
	BurstSpeed     float64 `yaml:"burst_speed"`
	BurstLife      float64 `yaml:"burst_life"` // Seconds
	ImpactCount    int     `yaml:"impact_count"`
	ImpactSize     float64 `yaml:"impact_size"`
	DeathCount     int     `yaml:"death_count"`
	DeathSize      float64 `yaml:"death_size"`
	ExhaustPerTick int     `yaml:"exhaust_per_tick"`
	ExhaustLife    float64 `yaml:"exhaust_life"` // Seconds
	ExhaustSpread  float64 `yaml:"exhaust_spread"`
	ExhaustSpeed   float64 `yaml:"exhaust_speed"`
	ExhaustSize    float64 `yaml:"exhaust_size"`
}

// BackgroundConfig defines the decorative starfield.
type BackgroundConfig struct {
	Stars          int     `yaml:"stars"`
	StarMaxSize    float64 `yaml:"star_max_size"`
	ParallaxMin    float64 `yaml:"parallax_min"`
	ParallaxMax    float64 `yaml:"parallax_max"`
	Nebulas        int     `yaml:"nebulas"`
	NebulaMinSize  float64 `yaml:"nebula_min_size"`
	NebulaMaxSize  float64 `yaml:"nebula_max_size"`
	NebulaMinAlpha float64 `yaml:"nebula_min_opacity"`
	NebulaMaxAlpha float64 `yaml:"nebula_max_opacity"`
}

// MotionConfig selects how per-tick increments relate to elapsed time.
type MotionConfig struct {
	// TimeScaled scales motion by dt / ReferenceFrameMS instead of applying
	// fixed per-tick increments.
	TimeScaled       bool    `yaml:"time_scaled"`
	ReferenceFrameMS float64 `yaml:"reference_frame_ms"`
}

// RenderConfig defines how pixel space maps onto terminal cells.
type RenderConfig struct {
	CellWidth  float64 `yaml:"cell_width"`
	CellHeight float64 `yaml:"cell_height"`
}

// AudioConfig defines cue playback.
type AudioConfig struct {
	Enabled      bool               `yaml:"enabled"`
	SampleRate   int                `yaml:"sample_rate"`
	MasterVolume float64            `yaml:"master_volume"`
	CueVolumes   map[string]float64 `yaml:"cue_volumes"`
}

// InputConfig defines how discrete terminal key presses become held inputs.
// Terminals report presses only; a key counts as held until its repeats stop.
type InputConfig struct {
	HoldMS        int `yaml:"hold_ms"`         // Hold after an auto-repeat
	RepeatDelayMS int `yaml:"repeat_delay_ms"` // Hold after the first press, covering the repeat delay
}
