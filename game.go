package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/dontescape/config"
	"github.com/milk9111/dontescape/logger"
	"github.com/milk9111/dontescape/prefabs"
	"github.com/milk9111/dontescape/sim"
	"go.uber.org/zap"
)

type Game struct {
	cfg     *config.Config
	sim     *sim.Sim
	input   *Input
	hud     *hud
	watcher *prefabs.Watcher
}

func NewGame(cfg *config.Config) (*Game, error) {
	input := NewInput()
	s, err := sim.New(cfg, input)
	if err != nil {
		return nil, err
	}

	h, err := newHUD()
	if err != nil {
		return nil, err
	}

	g := &Game{cfg: cfg, sim: s, input: input, hud: h}

	if cfg.Prefabs.Watch && cfg.Prefabs.Dir != "" {
		w, err := prefabs.NewWatcher(cfg.Prefabs.Dir, cfg.Prefabs.Dir+"/scripts")
		if err != nil {
			logger.Warn("prefab watcher disabled", zap.Error(err))
		} else {
			g.watcher = w
		}
	}
	return g, nil
}

func (g *Game) Update() error {
	g.input.Update()
	if g.input.QuitPressed() {
		return ebiten.Termination
	}

	g.pollReloads()
	g.sim.Step()
	return nil
}

func (g *Game) pollReloads() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case name, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			if err := g.sim.Reload(name); err != nil {
				logger.Warn("reload failed", zap.String("file", name), zap.Error(err))
			}
		case err, ok := <-g.watcher.Errors:
			if !ok {
				g.watcher = nil
				return
			}
			logger.Warn("prefab watcher", zap.Error(err))
		default:
			return
		}
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(colorFloor)

	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	camX, camY, _ := g.sim.Camera()
	view := viewport{
		cellSize: g.cfg.Display.CellSize,
		offsetX:  float64(w)/2 - camX,
		offsetY:  float64(h)/2 - camY,
	}
	drawWorld(screen, g.sim, view)

	if g.cfg.Display.ShowHUD {
		g.hud.Draw(screen, g.sim)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.Display.Width, g.cfg.Display.Height
}

func (g *Game) Close() {
	if g.watcher != nil {
		_ = g.watcher.Close()
	}
}
