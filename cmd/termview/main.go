// Command termview runs the simulation in a terminal.
package main

import (
	"flag"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/milk9111/dontescape/config"
	"github.com/milk9111/dontescape/logger"
	"github.com/milk9111/dontescape/sim"
	"go.uber.org/zap"
)

func main() {
	flags := config.RegisterFlags(flag.CommandLine)
	flag.Parse()

	cfg, err := config.Load("", flags)
	if err != nil {
		log.Fatal(err)
	}
	// the terminal is the display, so logs only go to the file
	fileCfg := logger.DefaultFileConfig(cfg.Logging.LogFile)
	if err := logger.InitWithFileConfig(cfg.Logging.Level, fileCfg, false); err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	if err := run(cfg); err != nil {
		logger.Error("termview", zap.Error(err))
		log.Fatal(err)
	}
}

func run(cfg *config.Config) error {
	input := &keyInput{}
	s, err := sim.New(cfg, input)
	if err != nil {
		return err
	}

	scr, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := scr.Init(); err != nil {
		return err
	}
	defer scr.Fini()

	events := make(chan tcell.Event, 16)
	go func() {
		for {
			ev := scr.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			events <- ev
		}
	}()

	tps := cfg.Sim.TPS
	if tps <= 0 {
		tps = 60
	}
	ticker := time.NewTicker(time.Second / time.Duration(tps))
	defer ticker.Stop()

	v := &view{scr: scr, cellSize: cfg.Display.CellSize}
	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if input.handle(ev) {
					return nil
				}
			case *tcell.EventResize:
				scr.Sync()
			}
		case <-ticker.C:
			s.Step()
			input.endTick()
			v.draw(s)
			scr.Show()
		}
	}
}
