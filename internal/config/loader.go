package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ValidationError describes one violated configuration constraint.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Field, e.Message)
}

// LoadStarfield loads the shooter configuration.
// Search order: customPath -> ~/.starfield/configs/starfield.yaml -> ./configs/starfield.yaml -> embedded default.
// Files are overlaid on the defaults, so partial files are allowed.
func LoadStarfield(customPath string) (StarfieldConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return StarfieldConfig{}, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return StarfieldConfig{}, fmt.Errorf("config: %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("starfield.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := Parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "starfield.yaml")); err == nil {
		if cfg, err := Parse(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := Parse(defaultStarfieldYAML)
	if err != nil {
		return DefaultStarfieldConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Parse overlays YAML data on the defaults and validates the result.
func Parse(data []byte) (StarfieldConfig, error) {
	cfg := DefaultStarfieldConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".starfield", "configs", filename)
}

// Validate checks the constraints the simulation relies on.
// Every violation is reported, joined into one error.
func (c StarfieldConfig) Validate() error {
	var errs []error
	check := func(ok bool, field, msg string) {
		if !ok {
			errs = append(errs, ValidationError{Field: field, Message: msg})
		}
	}

	check(c.Player.Radius > 0, "player.radius", "must be positive")
	check(c.Player.MaxHealth > 0, "player.max_health", "must be positive")
	check(c.Player.MaxSpeed > 0, "player.max_speed", "must be positive")
	check(c.Player.Friction > 0 && c.Player.Friction <= 1, "player.friction", "must be in (0, 1]")
	check(c.Player.FireCooldownMS >= 0, "player.fire_cooldown_ms", "must not be negative")

	check(c.Lasers.Radius > 0, "lasers.radius", "must be positive")

	m := c.Enemies.Meteor
	check(m.MinRadius > 0, "enemies.meteor.min_radius", "must be positive")
	check(m.MaxRadius >= m.MinRadius, "enemies.meteor.max_radius", "must be >= min_radius")
	check(m.HealthPerRadius > 0, "enemies.meteor.health_per_radius", "must be positive")
	for name, a := range map[string]ArchetypeConfig{"saucer": c.Enemies.Saucer, "mothership": c.Enemies.Mothership} {
		check(a.Radius > 0, "enemies."+name+".radius", "must be positive")
		check(a.Health > 0, "enemies."+name+".health", "must be positive")
		check(a.Chance >= 0 && a.Chance <= 1, "enemies."+name+".chance", "must be a probability")
	}
	check(c.Enemies.FireChance >= 0 && c.Enemies.FireChance <= 1, "enemies.fire_chance", "must be a probability")

	check(c.Spawner.Base >= 0, "spawner.base", "must not be negative")
	check(c.Spawner.ScoreStep > 0, "spawner.score_step", "must be positive")

	check(c.Combat.GameOverDelayMS >= 0, "combat.game_over_delay_ms", "must not be negative")

	check(c.Particles.BurstLife > 0, "particles.burst_life", "must be positive")
	check(c.Particles.ExhaustLife > 0, "particles.exhaust_life", "must be positive")

	b := c.Background
	check(b.Stars >= 0 && b.Nebulas >= 0, "background", "counts must not be negative")
	check(b.ParallaxMax >= b.ParallaxMin, "background.parallax_max", "must be >= parallax_min")
	check(b.NebulaMaxSize >= b.NebulaMinSize, "background.nebula_max_size", "must be >= nebula_min_size")

	check(c.Motion.ReferenceFrameMS > 0, "motion.reference_frame_ms", "must be positive")
	check(c.Render.CellWidth > 0 && c.Render.CellHeight > 0, "render", "cell size must be positive")
	check(c.Audio.SampleRate > 0, "audio.sample_rate", "must be positive")
	check(c.Input.HoldMS > 0, "input.hold_ms", "must be positive")
	check(c.Input.RepeatDelayMS >= c.Input.HoldMS, "input.repeat_delay_ms", "must be >= hold_ms")

	return errors.Join(errs...)
}
