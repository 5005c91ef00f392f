package entity

import (
	"fmt"
	"sort"

	"github.com/milk9111/dontescape/ecs"
	"github.com/milk9111/dontescape/ecs/component"
	"github.com/milk9111/dontescape/nav"
	"github.com/milk9111/dontescape/prefabs"
)

// Rand supplies the per-entity variation some prefabs ask for.
type Rand interface {
	Float64() float64
}

type buildContext struct {
	PrefabPath string
	Rand       Rand
}

type componentBuildFn func(w *ecs.World, e ecs.Entity, raw any, ctx *buildContext) error

var componentRegistry = map[string]componentBuildFn{
	"prisoner_tag":     addPrisonerTag,
	"warden_tag":       addWardenTag,
	"keyboard_control": addKeyboardControl,
	"position":         addPosition,
	"velocity":         addVelocity,
	"speed":            addSpeed,
	"facing":           addFacing,
	"transform":        addTransform,
	"camera":           addCamera,
}

var componentBuildOrder = []string{
	"prisoner_tag",
	"warden_tag",
	"keyboard_control",
	"position",
	"velocity",
	"speed",
	"facing",
	"transform",
	"camera",
}

func BuildEntity(w *ecs.World, prefabPath string, rng Rand) (ecs.Entity, error) {
	if w == nil {
		return 0, fmt.Errorf("build entity: world is nil")
	}

	spec, err := prefabs.LoadEntityBuildSpec(prefabPath)
	if err != nil {
		return 0, fmt.Errorf("build entity: load %q: %w", prefabPath, err)
	}
	if len(spec.Components) == 0 {
		return 0, fmt.Errorf("build entity: prefab %q does not define components", prefabPath)
	}

	e := ecs.CreateEntity(w)
	ctx := &buildContext{PrefabPath: prefabPath, Rand: rng}

	remaining := make(map[string]any, len(spec.Components))
	for k, v := range spec.Components {
		remaining[k] = v
	}

	ordered := make([]string, 0, len(remaining))
	for _, name := range componentBuildOrder {
		if _, ok := remaining[name]; ok {
			ordered = append(ordered, name)
			delete(remaining, name)
		}
	}
	extra := make([]string, 0, len(remaining))
	for name := range remaining {
		extra = append(extra, name)
	}
	sort.Strings(extra)
	ordered = append(ordered, extra...)

	for _, name := range ordered {
		builder, ok := componentRegistry[name]
		if !ok {
			ecs.DestroyEntity(w, e)
			return 0, fmt.Errorf("build entity: %q: no builder for component %q", prefabPath, name)
		}
		if err := builder(w, e, spec.Components[name], ctx); err != nil {
			ecs.DestroyEntity(w, e)
			return 0, fmt.Errorf("build entity: %q: add %q: %w", prefabPath, name, err)
		}
	}

	return e, nil
}

// PlaceAt moves an entity onto cell and records it as its spawn point.
func PlaceAt(w *ecs.World, e ecs.Entity, cell nav.Cell) error {
	pos := cell.Position()
	if err := ecs.Add(w, e, component.PositionComponent.Kind(), &pos); err != nil {
		return err
	}
	return ecs.Add(w, e, component.SpawnPointComponent.Kind(), &component.SpawnPoint{Cell: cell})
}

func addPrisonerTag(w *ecs.World, e ecs.Entity, _ any, _ *buildContext) error {
	return ecs.Add(w, e, component.PrisonerTagComponent.Kind(), &component.PrisonerTag{})
}

func addWardenTag(w *ecs.World, e ecs.Entity, _ any, _ *buildContext) error {
	return ecs.Add(w, e, component.WardenTagComponent.Kind(), &component.WardenTag{})
}

func addKeyboardControl(w *ecs.World, e ecs.Entity, _ any, _ *buildContext) error {
	return ecs.Add(w, e, component.KeyboardControlComponent.Kind(), &component.KeyboardControl{})
}

func addPosition(w *ecs.World, e ecs.Entity, _ any, _ *buildContext) error {
	return ecs.Add(w, e, component.PositionComponent.Kind(), &nav.Position{})
}

func addVelocity(w *ecs.World, e ecs.Entity, _ any, _ *buildContext) error {
	return ecs.Add(w, e, component.VelocityComponent.Kind(), &nav.Velocity{})
}

func addSpeed(w *ecs.World, e ecs.Entity, raw any, ctx *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[prefabs.SpeedComponentSpec](raw)
	if err != nil {
		return fmt.Errorf("decode speed spec: %w", err)
	}
	if spec.Base <= 0 {
		return fmt.Errorf("speed must be positive, got %v", spec.Base)
	}
	speed := spec.Base
	if spec.Jitter > 0 && ctx != nil && ctx.Rand != nil {
		speed += ctx.Rand.Float64() * spec.Jitter
	}
	return ecs.Add(w, e, component.SpeedComponent.Kind(), &component.Speed{Value: speed})
}

func addFacing(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[prefabs.FacingComponentSpec](raw)
	if err != nil {
		return fmt.Errorf("decode facing spec: %w", err)
	}
	return ecs.Add(w, e, component.FacingComponent.Kind(), &component.Facing{
		Direction: nav.NewDirection(spec.X, spec.Y),
	})
}

func addTransform(w *ecs.World, e ecs.Entity, _ any, _ *buildContext) error {
	return ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{})
}

func addCamera(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[prefabs.CameraComponentSpec](raw)
	if err != nil {
		return fmt.Errorf("decode camera spec: %w", err)
	}
	if spec.Smoothness == 0 {
		spec.Smoothness = 0.15
	}
	return ecs.Add(w, e, component.CameraComponent.Kind(), &component.Camera{Smoothness: spec.Smoothness})
}
