// Command headless runs the simulation without a window and logs how many
// prisoners got out.
package main

import (
	"flag"
	"log"

	"github.com/milk9111/dontescape/config"
	"github.com/milk9111/dontescape/ecs"
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
	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	s, err := sim.New(cfg, nil)
	if err != nil {
		logger.Fatal("start sim", zap.Error(err))
	}

	counts := make(map[string]int)
	for i := 0; i < cfg.Sim.Ticks; i++ {
		s.Step()
		for _, evt := range s.Events() {
			counts[evt.Type]++
		}
	}

	sum := s.Summary()
	logger.Info("run finished",
		zap.String("level", s.Level().Name),
		zap.Int64("seed", s.Seed()),
		zap.Int("ticks", s.Tick()),
		zap.Int("prisoners", sum.Prisoners),
		zap.Int("escaped", s.Escaped()),
		zap.Int("captured", s.Captured()),
		zap.Int("paths_completed", counts[ecs.EventPathCompleted]),
		zap.Int("doors_toggled", counts[ecs.EventDoorToggled]),
	)
}
