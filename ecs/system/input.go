package system

import (
	"github.com/milk9111/dontescape/ecs"
	"github.com/milk9111/dontescape/ecs/component"
	"github.com/milk9111/dontescape/nav"
)

// InputSource is polled once per tick. The ebiten front end and the terminal
// viewer each provide one.
type InputSource interface {
	Direction() nav.Direction
	ActionPressed() bool
}

// InputSystem drives every keyboard controlled entity from an InputSource.
type InputSystem struct {
	source InputSource
}

func NewInputSystem(source InputSource) *InputSystem {
	return &InputSystem{source: source}
}

func (i *InputSystem) SetSource(source InputSource) {
	i.source = source
}

func (i *InputSystem) Update(w *ecs.World) {
	if i == nil || w == nil || i.source == nil {
		return
	}

	dir := i.source.Direction()
	action := i.source.ActionPressed()

	ecs.ForEach(w, component.KeyboardControlComponent.Kind(), func(e ecs.Entity, _ *component.KeyboardControl) {
		_ = ecs.Add(w, e, component.InputComponent.Kind(), &component.Input{Direction: dir, Action: action})

		speed := 0.0
		if sp, ok := ecs.Get(w, e, component.SpeedComponent.Kind()); ok {
			speed = sp.Value
		}
		if vel, ok := ecs.Get(w, e, component.VelocityComponent.Kind()); ok {
			*vel = dir.NormalizedVelocity(speed)
		}

		if !dir.IsZero() {
			if facing, ok := ecs.Get(w, e, component.FacingComponent.Kind()); ok {
				facing.Direction = dir
			}
		}

		if action {
			_ = ecs.Add(w, e, component.ActionRequestComponent.Kind(), &component.ActionRequest{})
		}
	})
}
