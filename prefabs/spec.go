package prefabs

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

// WiresSpec tunes the wire damage state machine.
type WiresSpec struct {
	DamageOdds   int `yaml:"damage_odds"`
	DamagedTicks int `yaml:"damaged_ticks"`
}

func LoadWiresSpec() (WiresSpec, error) {
	return LoadSpec[WiresSpec]("wires.yaml")
}

// EscapeSpec tunes the escape driver and the warden's reach.
type EscapeSpec struct {
	IntervalTicks int     `yaml:"interval_ticks"`
	Script        string  `yaml:"script"`
	CatchReach    float64 `yaml:"catch_reach"`
}

func LoadEscapeSpec() (EscapeSpec, error) {
	return LoadSpec[EscapeSpec]("escape.yaml")
}
