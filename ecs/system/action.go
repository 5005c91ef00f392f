package system

import (
	"github.com/milk9111/dontescape/ecs"
	"github.com/milk9111/dontescape/ecs/component"
)

// ActionClearSystem drops this tick's action requests.
type ActionClearSystem struct{}

func NewActionClearSystem() *ActionClearSystem {
	return &ActionClearSystem{}
}

func (s *ActionClearSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	ecs.ForEach(w, component.ActionRequestComponent.Kind(), func(e ecs.Entity, _ *component.ActionRequest) {
		ecs.Remove(w, e, component.ActionRequestComponent.Kind())
		if input, ok := ecs.Get(w, e, component.InputComponent.Kind()); ok {
			input.Action = false
		}
	})
}
