package starfield

import "github.com/vovakirdan/tui-starfield/internal/core"

// Archetype is the per-type behavior and presentation table entry.
// Numeric tuning (spin step, fire chance, sizes) comes from config; the table
// decides which of those apply to a type.
type Archetype struct {
	Name  string
	Spins bool // Accumulates visual rotation each tick
	Armed bool // Fires aimed lasers at the player

	BurstCount int        // Particles in the destruction burst
	BurstSize  float64    // Upper bound of burst particle start size
	BurstColor core.Color // Destruction burst color

	Glyph      rune // Terminal fill rune
	GlyphColor core.Color
	Outline    rune // Rim rune for large bodies
}

var archetypes = [...]Archetype{
	Meteor: {
		Name:       "meteor",
		Spins:      true,
		BurstCount: 20,
		BurstSize:  4,
		BurstColor: core.ColorOrange,
		Glyph:      '▓',
		GlyphColor: core.ColorGray,
		Outline:    '░',
	},
	Saucer: {
		Name:       "saucer",
		Armed:      true,
		BurstCount: 25,
		BurstSize:  4,
		BurstColor: core.ColorBrightGreen,
		Glyph:      '◆',
		GlyphColor: core.ColorBrightGreen,
		Outline:    '═',
	},
	BlackHole: {
		Name:       "blackhole",
		BurstCount: 30,
		BurstSize:  5,
		BurstColor: core.ColorPurple,
		Glyph:      '●',
		GlyphColor: core.ColorPurple,
		Outline:    '○',
	},
	Mothership: {
		Name:       "mothership",
		Armed:      true,
		BurstCount: 60,
		BurstSize:  7,
		BurstColor: core.ColorBrightRed,
		Glyph:      '█',
		GlyphColor: core.ColorRed,
		Outline:    '▒',
	},
}

func archetypeFor(t EnemyType) Archetype {
	if t < 0 || int(t) >= len(archetypes) {
		return archetypes[Meteor]
	}
	return archetypes[t]
}
