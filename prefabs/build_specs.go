package prefabs

import "gopkg.in/yaml.v3"

type EntityBuildSpec struct {
	Name       string         `yaml:"name"`
	Components map[string]any `yaml:"components"`
}

func LoadEntityBuildSpec(filename string) (EntityBuildSpec, error) {
	return LoadSpec[EntityBuildSpec](filename)
}

func DecodeComponentSpec[T any](raw any) (T, error) {
	var zero T
	if raw == nil {
		return zero, nil
	}
	b, err := yaml.Marshal(raw)
	if err != nil {
		return zero, err
	}
	var out T
	if err := yaml.Unmarshal(b, &out); err != nil {
		return zero, err
	}
	return out, nil
}

// SpeedComponentSpec gives a base speed in cells per tick plus an optional
// random extra drawn from [0, jitter).
type SpeedComponentSpec struct {
	Base   float64 `yaml:"base"`
	Jitter float64 `yaml:"jitter"`
}

type FacingComponentSpec struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

type CameraComponentSpec struct {
	Smoothness float64 `yaml:"smoothness"`
}
