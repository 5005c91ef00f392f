package main

import (
	"errors"
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/dontescape/config"
	"github.com/milk9111/dontescape/logger"
	"go.uber.org/zap"
)

func main() {
	flags := config.RegisterFlags(flag.CommandLine)
	flag.Parse()

	cfg, err := config.Load("", flags)
	if err != nil {
		log.Fatal(err)
	}
	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(cfg.Display.Width, cfg.Display.Height)
	ebiten.SetWindowTitle("Please Don't Escape")
	if cfg.Sim.TPS > 0 {
		ebiten.SetTPS(cfg.Sim.TPS)
	}

	game, err := NewGame(cfg)
	if err != nil {
		logger.Fatal("start game", zap.Error(err))
	}
	defer game.Close()

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		logger.Fatal("run game", zap.Error(err))
	}
}
