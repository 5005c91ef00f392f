package entity

import (
	"fmt"

	"github.com/milk9111/dontescape/ecs"
	"github.com/milk9111/dontescape/ecs/component"
	"github.com/milk9111/dontescape/nav"
)

func NewPrisonerAt(w *ecs.World, cell nav.Cell, rng Rand) (ecs.Entity, error) {
	e, err := BuildEntity(w, "prisoner.yaml", rng)
	if err != nil {
		return 0, err
	}
	if err := PlaceAt(w, e, cell); err != nil {
		return 0, fmt.Errorf("prisoner: place: %w", err)
	}
	return e, nil
}

// NewWardenAt spawns a warden. Only a keyboard warden answers to input.
func NewWardenAt(w *ecs.World, cell nav.Cell, keyboard bool) (ecs.Entity, error) {
	e, err := BuildEntity(w, "warden.yaml", nil)
	if err != nil {
		return 0, err
	}
	if err := PlaceAt(w, e, cell); err != nil {
		return 0, fmt.Errorf("warden: place: %w", err)
	}
	if keyboard {
		if err := addKeyboardControl(w, e, nil, nil); err != nil {
			return 0, fmt.Errorf("warden: keyboard control: %w", err)
		}
		if err := ecs.Add(w, e, component.InputComponent.Kind(), &component.Input{}); err != nil {
			return 0, fmt.Errorf("warden: input: %w", err)
		}
	}
	return e, nil
}

func NewCamera(w *ecs.World) (ecs.Entity, error) {
	return BuildEntity(w, "camera.yaml", nil)
}
