package main

import (
	"flag"
	"os"

	"github.com/Garsondee/Skirmish/internal/config"
	"github.com/Garsondee/Skirmish/internal/game"
	"github.com/Garsondee/Skirmish/internal/logging"
	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	configDir := flag.String("config", ".", "directory holding skirmish.yaml")
	flag.Parse()

	boot := logging.Default()
	cfg, err := config.Load(*configDir)
	if err != nil {
		boot.Fatal().Err(err).Msg("failed to load config")
	}

	log := logging.New(cfg.LogLevel, os.Stderr)

	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if err := ebiten.RunGame(game.New(cfg, log)); err != nil {
		log.Fatal().Err(err).Msg("game exited")
	}
}
