package game

import (
	"image/color"
	"math"

	"github.com/Garsondee/Skirmish/internal/sim"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"
)

const (
	combatantRadius = 30.0
	pickupRadius    = 8.0
	particleSize    = 6.0
	knifeSize       = 10.0
	grenadeRadius   = 14.0
	barrelLength    = 55.0
)

var (
	groundColor  = color.RGBA{R: 18, G: 22, B: 18, A: 255}
	densityColor = color.RGBA{R: 70, G: 90, B: 60, A: 255}
	solidColor   = color.RGBA{R: 95, G: 95, B: 105, A: 255}
	borderColor  = color.RGBA{R: 160, G: 40, B: 40, A: 255}
	playerColor  = color.RGBA{R: 70, G: 140, B: 230, A: 255}
	enemyColor   = color.RGBA{R: 220, G: 120, B: 60, A: 255}
)

// withAlpha scales c's alpha by a in [0,1].
func withAlpha(c color.RGBA, a float64) color.RGBA {
	a = math.Max(0, math.Min(1, a))
	// Premultiplied: every channel scales.
	return color.RGBA{
		R: uint8(float64(c.R) * a),
		G: uint8(float64(c.G) * a),
		B: uint8(float64(c.B) * a),
		A: uint8(float64(c.A) * a),
	}
}

// drawWorld renders terrain and entities through the player's camera.
func (g *Game) drawWorld(screen *ebiten.Image) {
	screen.Fill(groundColor)
	v := newView(g.player.Camera, g.width, g.height)

	g.drawTerrain(screen, v)

	x0, y0 := v.toScreen(sim.V(sim.Arena.X, sim.Arena.Y))
	vector.StrokeRect(screen, x0, y0, v.length(sim.Arena.W), v.length(sim.Arena.H), 3, borderColor, false)

	for i, e := range g.sim.Store.All() {
		if !v.visible(sim.Rect{X: e.Pos.X - 60, Y: e.Pos.Y - 60, W: 120, H: 120}) {
			continue
		}
		switch vr := e.Variant.(type) {
		case sim.Combatant:
			g.drawCombatant(screen, v, i, e, vr)
		case sim.Pickup:
			drawPickup(screen, v, e, vr)
		case sim.Particle:
			x, y := v.toScreen(e.Pos)
			s := v.length(particleSize)
			vector.FillRect(screen, x-s/2, y-s/2, s, s, withAlpha(vr.Color, vr.Alpha), false)
		case sim.Projectile:
			drawProjectile(screen, v, e, vr)
		}
	}
}

func (g *Game) drawTerrain(screen *ebiten.Image, v view) {
	t := g.sim.Terrain
	col0, row0, col1, row1 := v.cellRange(t)
	cs := v.length(sim.CellSize)
	for row := row0; row < row1; row++ {
		for col := col0; col < col1; col++ {
			cell := t.Cell(col, row)
			x, y := v.toScreen(sim.V(float64(col)*sim.CellSize, float64(row)*sim.CellSize))
			if sim.IsSolid(cell) {
				vector.FillRect(screen, x, y, cs, cs, solidColor, false)
				vector.StrokeRect(screen, x, y, cs, cs, 1, colornames.Dimgray, false)
				continue
			}
			if cell.Density > 0 {
				vector.FillRect(screen, x, y, cs, cs, withAlpha(densityColor, cell.Density), false)
			}
		}
	}
}

func (g *Game) drawCombatant(screen *ebiten.Image, v view, i int, e sim.Entity, c sim.Combatant) {
	x, y := v.toScreen(e.Pos)
	r := v.length(combatantRadius)

	body := enemyColor
	if i == g.player.Index {
		body = playerColor
	}
	vector.FillCircle(screen, x, y, r, body, true)
	vector.StrokeCircle(screen, x, y, r, 2, colornames.Black, true)

	tip := e.Pos.Add(sim.FromAngle(c.Facing).Scale(barrelLength))
	tx, ty := v.toScreen(tip)
	vector.StrokeLine(screen, x, y, tx, ty, v.length(8), weaponColor(c.Weapon.Kind), true)

	if i != g.player.Index {
		g.drawEnemyHealth(screen, x, y+r+6, c.Health)
	}
}

func weaponColor(k sim.WeaponKind) color.RGBA {
	switch k {
	case sim.WeaponKnife:
		return colornames.Silver
	case sim.WeaponSniper:
		return colornames.Darkolivegreen
	case sim.WeaponGunner:
		return colornames.Slategray
	case sim.WeaponShotgun:
		return colornames.Saddlebrown
	case sim.WeaponSprayer:
		return colornames.Steelblue
	case sim.WeaponGrenade:
		return colornames.Green
	default:
		return colornames.White
	}
}

func drawPickup(screen *ebiten.Image, v view, e sim.Entity, pk sim.Pickup) {
	// Bob on the phase so resting coins still look alive.
	pos := e.Pos.Add(sim.V(0, math.Sin(pk.Phase)*4))
	x, y := v.toScreen(pos)
	vector.FillCircle(screen, x, y, v.length(pickupRadius), colornames.Gold, true)
	vector.StrokeCircle(screen, x, y, v.length(pickupRadius), 1, colornames.Darkgoldenrod, true)
}

func drawProjectile(screen *ebiten.Image, v view, e sim.Entity, p sim.Projectile) {
	x, y := v.toScreen(e.Pos)
	switch p.Kind {
	case sim.WeaponKnife:
		shade := 1 - float64(p.Age)/20
		s := v.length(knifeSize)
		vector.FillRect(screen, x-s/2, y-s/2, s, s, withAlpha(colornames.White, shade), false)
	case sim.WeaponGrenade:
		vector.FillCircle(screen, x, y, v.length(grenadeRadius), colornames.Darkgreen, true)
		// Fuse indicator grows toward detonation.
		fuse := float32(math.Min(1, float64(p.Age)/sim.GrenadeFuse))
		vector.StrokeCircle(screen, x, y, v.length(grenadeRadius)*(1+fuse), 1, colornames.Red, true)
	default:
		tx, ty := v.toScreen(e.Pos.Add(e.Vel))
		vector.StrokeLine(screen, x, y, tx, ty, v.length(10), colornames.White, true)
	}
}
