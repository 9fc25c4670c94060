package starfield

import (
	"github.com/vovakirdan/tui-starfield/internal/core"
)

var nebulaPalette = [...]core.Color{core.ColorPurple, core.ColorBlue, core.ColorMagenta}

// RegenerateBackground replaces all stars and nebulas with a fresh random
// layout covering the viewport. Gameplay state is untouched.
func (s *Simulation) RegenerateBackground(width, height float64) {
	cfg := s.cfg.Background
	r := s.bgRng

	s.stars = make([]Star, cfg.Stars)
	for i := range s.stars {
		s.stars[i] = Star{
			ID:             EntityID(i + 1),
			Position:       core.Vec2{r.Float64() * width, r.Float64() * height},
			Size:           r.Float64() * cfg.StarMaxSize,
			Opacity:        r.Float64(),
			ParallaxFactor: core.RandomBetween(r, cfg.ParallaxMin, cfg.ParallaxMax),
		}
	}

	s.nebulas = make([]Nebula, cfg.Nebulas)
	for i := range s.nebulas {
		s.nebulas[i] = Nebula{
			ID:       EntityID(i + 1),
			Position: core.Vec2{r.Float64() * width, r.Float64() * height},
			Size:     core.RandomBetween(r, cfg.NebulaMinSize, cfg.NebulaMaxSize),
			Opacity:  core.RandomBetween(r, cfg.NebulaMinAlpha, cfg.NebulaMaxAlpha),
			Color:    nebulaPalette[i%len(nebulaPalette)],
		}
	}
}
