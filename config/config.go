// Package config handles simulation configuration loading.
package config

// Config holds all runtime settings.
type Config struct {
	Sim     SimConfig     `yaml:"sim"`
	Display DisplayConfig `yaml:"display"`
	Logging LoggingConfig `yaml:"logging"`
	Prefabs PrefabsConfig `yaml:"prefabs"`
}

// SimConfig holds simulation settings.
type SimConfig struct {
	Level string `yaml:"level"`
	Seed  int64  `yaml:"seed"` // 0 picks a time-based seed
	Ticks int    `yaml:"ticks"`
	TPS   int    `yaml:"tps"`
}

// DisplayConfig holds window and camera settings.
type DisplayConfig struct {
	Width      int     `yaml:"width"`
	Height     int     `yaml:"height"`
	CellSize   float64 `yaml:"cell_size"`
	CameraLerp float64 `yaml:"camera_lerp"` // 0 keeps the camera prefab value
	ShowHUD    bool    `yaml:"show_hud"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// PrefabsConfig controls where specs are read from.
type PrefabsConfig struct {
	Dir   string `yaml:"dir"`
	Watch bool   `yaml:"watch"`
}

// Default returns a Config with the standard values.
func Default() *Config {
	return &Config{
		Sim: SimConfig{
			Level: "cellblock",
			Ticks: 3600,
			TPS:   60,
		},
		Display: DisplayConfig{
			Width:    960,
			Height:   640,
			CellSize: 32,
			ShowHUD:  true,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
		Prefabs: PrefabsConfig{
			Dir: "prefabs",
		},
	}
}
