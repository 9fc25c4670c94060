package starfield

import (
	"fmt"
	"math"
	"strings"
	"unicode/utf8"

	"github.com/vovakirdan/tui-starfield/internal/core"
)

// Visual characters for rendering
const (
	laserChar      = '•'
	starDimChar    = '·'
	starBrightChar = '*'
	nebulaChar     = '░'
	healthFull     = '█'
	healthEmpty    = '░'
	healthBarWidth = 20
)

// shipGlyphs index by facing octant, starting at east and turning clockwise
// (screen y grows downward).
var shipGlyphs = [8]rune{'→', '↘', '↓', '↙', '←', '↖', '↑', '↗'}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	snap := g.sim.Snapshot()
	v := cellMapper{cw: g.cfg.Render.CellWidth, ch: g.cfg.Render.CellHeight}

	drawBackground(dst, v, snap)

	for _, pt := range snap.Particles {
		x, y := v.cell(pt.Position)
		r := '∙'
		if pt.Radius >= 2 {
			r = '*'
		}
		dst.SetColored(x, y, r, pt.Color)
	}

	for _, l := range snap.Lasers {
		x, y := v.cell(l.Position)
		c := core.ColorBrightRed
		if l.IsPlayerLaser {
			c = core.ColorBrightCyan
		}
		dst.SetColored(x, y, laserChar, c)
	}

	for _, e := range snap.Enemies {
		drawEnemy(dst, v, e)
	}

	if p := snap.Player; p != nil {
		x, y := v.cell(p.Position)
		dst.SetColored(x, y, shipGlyph(p.Rotation), core.ColorBrightCyan)
	}

	g.drawHUD(dst, snap)

	switch {
	case snap.Status == StatusStartScreen:
		drawCenteredMessage(dst, core.ColorBrightCyan, "S T A R F I E L D",
			"W/↑ thrust  A D/← → turn  Space fire", "Press Enter to launch")
	case snap.Status == StatusGameOver:
		drawCenteredMessage(dst, core.ColorBrightRed, "GAME OVER",
			fmt.Sprintf("Score: %d", snap.Score), "Press R to restart")
	case g.paused:
		drawCenteredMessage(dst, core.ColorBrightYellow, "PAUSED", "Press P to resume")
	}
}

// cellMapper converts pixel coordinates to terminal cells.
type cellMapper struct {
	cw, ch float64
}

func (m cellMapper) cell(p core.Vec2) (int, int) {
	return int(math.Floor(p[0] / m.cw)), int(math.Floor(p[1] / m.ch))
}

// cover calls fn for every cell whose center lies inside the circle.
// Circles smaller than a cell still cover the cell containing their center.
func (m cellMapper) cover(c core.Circle, fn func(x, y int, rim bool)) {
	cx, cy := m.cell(c.Center)
	x0, y0 := m.cell(core.Vec2{c.Center[0] - c.Radius, c.Center[1] - c.Radius})
	x1, y1 := m.cell(core.Vec2{c.Center[0] + c.Radius, c.Center[1] + c.Radius})

	hit := false
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			center := core.Vec2{(float64(x) + 0.5) * m.cw, (float64(y) + 0.5) * m.ch}
			d := core.Distance(center, c.Center)
			if d >= c.Radius {
				continue
			}
			hit = true
			fn(x, y, d >= c.Radius-m.cw)
		}
	}
	if !hit {
		fn(cx, cy, false)
	}
}

func drawBackground(dst *core.Screen, v cellMapper, snap Snapshot) {
	for _, n := range snap.Nebulas {
		// Sparse checker fill; denser for more opaque nebulas
		step := 2
		if n.Opacity < 0.2 {
			step = 3
		}
		v.cover(core.Circle{Center: n.Position, Radius: n.Size / 2}, func(x, y int, _ bool) {
			if (x+y)%step == 0 {
				dst.SetColored(x, y, nebulaChar, n.Color)
			}
		})
	}

	// Stars drift against the ship's offset from the center by their parallax factor.
	var offset core.Vec2
	if p := snap.Player; p != nil {
		offset = p.Position.Sub(core.Vec2{snap.Width / 2, snap.Height / 2})
	}
	for _, s := range snap.Stars {
		pos := core.Vec2{
			wrapCoord(s.Position[0]-offset[0]*s.ParallaxFactor, snap.Width),
			wrapCoord(s.Position[1]-offset[1]*s.ParallaxFactor, snap.Height),
		}
		x, y := v.cell(pos)
		r, c := starDimChar, core.ColorGray
		if s.Size > 1 {
			r = starBrightChar
		}
		if s.Opacity > 0.6 {
			c = core.ColorBrightWhite
		}
		dst.SetColored(x, y, r, c)
	}
}

func wrapCoord(v, span float64) float64 {
	if span <= 0 {
		return v
	}
	v = math.Mod(v, span)
	if v < 0 {
		v += span
	}
	return v
}

func drawEnemy(dst *core.Screen, v cellMapper, e Enemy) {
	a := archetypeFor(e.Type)
	v.cover(e.Circle(), func(x, y int, rim bool) {
		if rim {
			dst.SetColored(x, y, a.Outline, a.GlyphColor)
			return
		}
		dst.SetColored(x, y, a.Glyph, a.GlyphColor)
	})

	// A crater marker on the rim makes spin visible
	if a.Spins {
		mark := e.Position.Add(core.FromAngle(e.Rotation, e.Radius*0.6))
		x, y := v.cell(mark)
		dst.SetColored(x, y, 'o', core.ColorOrange)
	}
}

func shipGlyph(rotation float64) rune {
	octant := int(math.Round(rotation/(math.Pi/4))) % 8
	if octant < 0 {
		octant += 8
	}
	return shipGlyphs[octant]
}

func (g *Game) drawHUD(dst *core.Screen, snap Snapshot) {
	dst.DrawTextColored(1, 0, fmt.Sprintf(" Score: %d ", snap.Score), core.ColorBrightWhite)

	health, maxHealth := 0.0, g.cfg.Player.MaxHealth
	if p := snap.Player; p != nil {
		health, maxHealth = p.Health, p.MaxHealth
	}
	filled := int(math.Round(core.ClampF(health/maxHealth, 0, 1) * healthBarWidth))
	bar := strings.Repeat(string(healthFull), filled) + strings.Repeat(string(healthEmpty), healthBarWidth-filled)

	color := core.ColorBrightGreen
	switch {
	case filled <= healthBarWidth/4:
		color = core.ColorBrightRed
	case filled <= healthBarWidth/2:
		color = core.ColorYellow
	}
	x := dst.Width() - healthBarWidth - 5
	dst.DrawTextColored(x, 0, "HP ", core.ColorWhite)
	dst.DrawTextColored(x+3, 0, bar, color)
}

// drawCenteredMessage displays a boxed message in the center of the screen.
func drawCenteredMessage(dst *core.Screen, c core.Color, lines ...string) {
	w := 0
	for _, l := range lines {
		w = core.Max(w, utf8.RuneCountInString(l))
	}
	w += 4
	h := len(lines) + 2

	box := core.NewRect((dst.Width()-w)/2, (dst.Height()-h)/2, w, h)
	for y := box.Y + 1; y < box.Bottom()-1; y++ {
		for x := box.X + 1; x < box.Right()-1; x++ {
			dst.Set(x, y, ' ')
		}
	}
	dst.DrawBox(box, c)

	for i, l := range lines {
		x := box.X + (w-utf8.RuneCountInString(l))/2
		lc := core.ColorWhite
		if i == 0 {
			lc = c
		}
		dst.DrawTextColored(x, box.Y+1+i, l, lc)
	}
}
