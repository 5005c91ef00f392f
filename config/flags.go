package config

import "flag"

// Flags holds command-line overrides. Zero values leave the config alone.
type Flags struct {
	ConfigPath string
	Level      string
	Debug      bool
	Seed       int64
	Ticks      int
	LogFile    string
}

// RegisterFlags binds the shared flags onto fs.
func RegisterFlags(fs *flag.FlagSet) *Flags {
	f := &Flags{}
	fs.StringVar(&f.ConfigPath, "config", "", "Path to config file")
	fs.StringVar(&f.Level, "level", "", "Level name or JSON path")
	fs.BoolVar(&f.Debug, "debug", false, "Enable debug logging")
	fs.Int64Var(&f.Seed, "seed", 0, "Random seed (0 = time based)")
	fs.IntVar(&f.Ticks, "ticks", 0, "Ticks to run in headless mode")
	fs.StringVar(&f.LogFile, "log", "", "Log file path")
	return f
}

func (f *Flags) apply(cfg *Config) {
	if f.Level != "" {
		cfg.Sim.Level = f.Level
	}
	if f.Debug {
		cfg.Logging.Level = "debug"
	}
	if f.Seed != 0 {
		cfg.Sim.Seed = f.Seed
	}
	if f.Ticks > 0 {
		cfg.Sim.Ticks = f.Ticks
	}
	if f.LogFile != "" {
		cfg.Logging.LogFile = f.LogFile
	}
}
