package game

import (
	"fmt"
	"image/color"

	"github.com/Garsondee/Skirmish/internal/config"
	"github.com/Garsondee/Skirmish/internal/sim"
	"github.com/atotto/clipboard"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/rs/zerolog"
)

// statusFrames is how long a status message stays on screen.
const statusFrames = 120

// Game is the ebiten host: title screen, one round of the sim at a time, and
// the HUD around it.
type Game struct {
	cfg    config.Config
	log    zerolog.Logger
	width  int
	height int

	state screenState
	frame int // frames since start, drives animations
	fade  int // frames into the title fade

	sim    *sim.Sim
	player *sim.PlayerContext
	feed   *EventFeed
	seen   int // sim events already fed into the feed

	lastCurrency int // coins from the previous round, -1 before the first
	status       string
	statusTicks  int

	clipboard func(string) error
}

// New creates the host on its title screen.
func New(cfg config.Config, log zerolog.Logger) *Game {
	return &Game{
		cfg:          cfg,
		log:          log,
		width:        cfg.Window.Width,
		height:       cfg.Window.Height,
		feed:         NewEventFeed(),
		lastCurrency: -1,
		clipboard:    clipboard.WriteAll,
	}
}

// State returns the current top-level mode name.
func (g *Game) State() string {
	return g.state.String()
}

func (g *Game) Update() error {
	return g.step(readFrame())
}

// step advances the host by one frame of already-decoded input.
func (g *Game) step(fi frameInput) error {
	g.frame++
	if g.statusTicks > 0 {
		g.statusTicks--
	}

	switch g.state {
	case stateTitle:
		if fi.clicked {
			g.state = stateFading
			g.fade = 0
		}

	case stateFading:
		g.fade++
		if g.fade >= fadeFrames {
			if err := g.startRound(); err != nil {
				return err
			}
			g.state = statePlaying
		}

	case statePlaying:
		if fi.report {
			g.copyReport()
		}
		over := g.sim.Tick(g.player, simInput(fi, g.width, g.height))
		g.feed.Ingest(g.sim.Events.Since(g.seen))
		g.seen = g.sim.Events.Len()
		if over {
			g.endRound()
		}
	}
	return nil
}

func (g *Game) startRound() error {
	s, p, err := sim.New(g.cfg.SimConfig(), sim.WithLogger(g.log))
	if err != nil {
		return fmt.Errorf("starting round: %w", err)
	}
	g.sim, g.player = s, p
	g.feed.Clear()
	g.seen = 0
	g.feed.Ingest(s.Events.Entries())
	g.seen = s.Events.Len()
	return nil
}

func (g *Game) endRound() {
	g.lastCurrency = g.player.Currency
	g.log.Info().
		Str("round", g.sim.RoundID.String()).
		Int("currency", g.player.Currency).
		Int("ticks", g.sim.Frame).
		Msg("returning to title")
	g.sim.Close()
	g.sim, g.player = nil, nil
	g.state = stateTitle
}

func (g *Game) setStatus(msg string) {
	g.status = msg
	g.statusTicks = statusFrames
}

func (g *Game) Draw(screen *ebiten.Image) {
	if g.state != statePlaying {
		g.drawTitle(screen)
		return
	}

	g.drawWorld(screen)
	g.drawHUD(screen)
	g.feed.Draw(screen, g.width-feedPanelWidth, g.height/3)
	g.drawDeathOverlay(screen)

	if g.statusTicks > 0 {
		drawText(screen, g.status, float64(g.width)/2, hudPad, 2, color.White, true)
	}
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("tick %d  fps %.0f", g.sim.Frame, ebiten.ActualFPS()), hudPad, g.height-20)
}

// Layout follows the window size so the camera keeps the screen's aspect.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth > 0 && outsideHeight > 0 {
		g.width, g.height = outsideWidth, outsideHeight
	}
	return g.width, g.height
}
