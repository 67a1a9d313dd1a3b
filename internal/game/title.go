package game

import (
	"image/color"
	"math"
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"
)

// fadeFrames is the length of the title-to-round fade.
const fadeFrames = 100

// screenState is the host's top-level mode.
type screenState uint8

const (
	stateTitle screenState = iota
	stateFading
	statePlaying
)

func (s screenState) String() string {
	switch s {
	case stateTitle:
		return "title"
	case stateFading:
		return "fading"
	case statePlaying:
		return "playing"
	default:
		return "unknown"
	}
}

// promptPulse is the brightness of the "click to play" prompt at frame.
func promptPulse(frame int) float64 {
	return 0.6 + 0.4*math.Sin(float64(frame)/15)
}

// fadeAlpha is the black overlay opacity fade frames into the transition.
func fadeAlpha(fade int) uint8 {
	f := math.Max(0, math.Min(1, float64(fade)/fadeFrames))
	return uint8(f * 255)
}

func (g *Game) drawTitle(screen *ebiten.Image) {
	screen.Fill(color.RGBA{R: 10, G: 12, B: 16, A: 255})

	cx, cy := float64(g.width)/2, float64(g.height)/2
	drawText(screen, g.cfg.Window.Title, cx, cy-140, 8, colornames.White, true)
	drawText(screen, "WASD move  mouse aim  click fire  1-6 weapons  Q spawn  Esc quit  F9 report",
		cx, cy+20, 1, colornames.Lightgray, true)

	prompt := withAlpha(colornames.Lightskyblue, promptPulse(g.frame))
	drawText(screen, "CLICK TO PLAY", cx, cy+70, 3, prompt, true)

	if g.lastCurrency >= 0 {
		drawText(screen, "last round coins: "+strconv.Itoa(g.lastCurrency), cx, cy+130, 2, colornames.Gold, true)
	}

	if g.state == stateFading {
		vector.FillRect(screen, 0, 0, float32(g.width), float32(g.height), color.RGBA{A: fadeAlpha(g.fade)}, false)
	}
}
