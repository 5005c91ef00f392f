package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Load builds a config with priority defaults < file < flags. An empty path
// falls back to ./dontescape.yaml when present. f may be nil.
func Load(path string, f *Flags) (*Config, error) {
	cfg := Default()

	if path == "" && f != nil {
		path = f.ConfigPath
	}
	if path == "" {
		path = findConfigFile()
	}

	if path != "" {
		if err := loadFromFile(cfg, path); err != nil {
			return nil, fmt.Errorf("config: load %s: %w", path, err)
		}
	}

	if f != nil {
		f.apply(cfg)
	}

	return cfg, nil
}

func findConfigFile() string {
	for _, path := range []string{"./dontescape.yaml", "./config.yaml"} {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

func loadFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, cfg)
}
