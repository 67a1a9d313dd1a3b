package game

import (
	"fmt"
	"image/color"
	"math"
	"strings"

	"github.com/Garsondee/Skirmish/internal/sim"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"
	"golang.org/x/image/font/basicfont"
)

const (
	slotSize   = 64
	slotGap    = 8
	slotMargin = 16 // gap between the slot bar and the bottom edge
	hudPad     = 12
)

var hudFace = text.NewGoXFace(basicfont.Face7x13)

// drawText renders s with its top-left corner at (x, y), or horizontally
// centered on x when centered is set.
func drawText(dst *ebiten.Image, s string, x, y, scale float64, clr color.Color, centered bool) {
	op := &text.DrawOptions{}
	if centered {
		w, _ := text.Measure(s, hudFace, 0)
		op.GeoM.Translate(-w/2, 0)
	}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(dst, s, hudFace, op)
}

// slotRect returns the screen rectangle of the 1-based weapon slot.
func slotRect(slot, screenW, screenH int) (x, y, w, h int) {
	n := len(sim.Slots)
	barW := n*slotSize + (n-1)*slotGap
	x = (screenW-barW)/2 + (slot-1)*(slotSize+slotGap)
	y = screenH - slotSize - slotMargin
	return x, y, slotSize, slotSize
}

// slotAt returns the 1-based weapon slot under the screen point, or 0.
func slotAt(px, py, screenW, screenH int) int {
	for slot := 1; slot <= len(sim.Slots); slot++ {
		x, y, w, h := slotRect(slot, screenW, screenH)
		if px >= x && px < x+w && py >= y && py < y+h {
			return slot
		}
	}
	return 0
}

func weaponLabel(k sim.WeaponKind) string {
	return strings.ToUpper(k.String())
}

// drawHUD renders the slot bar, health and currency.
func (g *Game) drawHUD(screen *ebiten.Image) {
	_, c, alive := g.sim.Controlled(g.player)

	for slot := 1; slot <= len(sim.Slots); slot++ {
		kind, _ := sim.KindForSlot(slot)
		x, y, w, h := slotRect(slot, g.width, g.height)
		fx, fy, fw, fh := float32(x), float32(y), float32(w), float32(h)

		bg := color.RGBA{R: 12, G: 14, B: 20, A: 200}
		edge := color.RGBA{R: 60, G: 70, B: 90, A: 255}
		if alive && kind == c.Weapon.Kind {
			bg = color.RGBA{R: 40, G: 60, B: 100, A: 230}
			edge = colornames.Lightskyblue
		}
		vector.FillRect(screen, fx, fy, fw, fh, bg, false)
		vector.StrokeRect(screen, fx, fy, fw, fh, 2, edge, false)
		vector.StrokeLine(screen, fx+12, fy+fh/2, fx+fw-12, fy+fh/2, 6, weaponColor(kind), false)

		drawText(screen, fmt.Sprintf("%d", slot), float64(x+4), float64(y+2), 1, colornames.White, false)
		drawText(screen, weaponLabel(kind), float64(x+w/2), float64(y+h-15), 1, colornames.Lightgray, true)

		// Readiness fill along the bottom edge.
		if alive && kind == c.Weapon.Kind {
			ready := math.Min(1, float64(c.Weapon.Cooldown)/float64(kind.Cooldown()+1))
			vector.FillRect(screen, fx, fy+fh-3, fw*float32(ready), 3, colornames.Lightskyblue, false)
		}
	}

	health := 0.0
	if alive {
		health = c.Health
	}
	drawText(screen, fmt.Sprintf("HP %3.0f", math.Max(0, health)), hudPad, hudPad, 2, healthColor(health), false)
	barW := float32(200)
	vector.FillRect(screen, hudPad, hudPad+32, barW, 8, color.RGBA{R: 40, G: 10, B: 10, A: 220}, false)
	vector.FillRect(screen, hudPad, hudPad+32, barW*float32(math.Max(0, health)/sim.MaxHealth), 8, healthColor(health), false)

	drawText(screen, fmt.Sprintf("$ %d", g.player.Currency), hudPad, hudPad+48, 2, colornames.Gold, false)
	if g.player.Zoom != 1 {
		drawText(screen, "SCOPE", hudPad, hudPad+80, 1, colornames.Lightskyblue, false)
	}
}

func healthColor(h float64) color.RGBA {
	switch {
	case h > 60:
		return colornames.Limegreen
	case h > 25:
		return colornames.Orange
	default:
		return colornames.Red
	}
}

// drawEnemyHealth labels a non-local combatant with its health.
func (g *Game) drawEnemyHealth(screen *ebiten.Image, x, y float32, health float64) {
	drawText(screen, fmt.Sprintf("%.0f", math.Max(0, health)), float64(x), float64(y), 1, healthColor(health), true)
}

// drawDeathOverlay darkens the screen over the death countdown and bobs the
// GAME OVER banner.
func (g *Game) drawDeathOverlay(screen *ebiten.Image) {
	if g.player.Countdown == nil {
		return
	}
	progress := float64(*g.player.Countdown) / float64(g.sim.Config().RoundOverTicks)
	a := uint8(math.Min(1, progress) * 180)
	vector.FillRect(screen, 0, 0, float32(g.width), float32(g.height), color.RGBA{A: a}, false)

	bob := math.Sin(float64(g.frame)/20) * 10
	drawText(screen, "GAME OVER", float64(g.width)/2, float64(g.height)/2-60+bob, 6, colornames.Red, true)
	drawText(screen, fmt.Sprintf("coins collected: %d", g.player.Currency), float64(g.width)/2, float64(g.height)/2+40, 2, colornames.Gold, true)
}
