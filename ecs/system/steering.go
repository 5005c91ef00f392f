package system

import (
	"github.com/milk9111/dontescape/ecs"
	"github.com/milk9111/dontescape/ecs/component"
	"github.com/milk9111/dontescape/nav"
)

// SteeringSystem turns each agent's Path into a velocity. Arrived agents are
// stopped and lose their Path.
type SteeringSystem struct{}

func NewSteeringSystem() *SteeringSystem {
	return &SteeringSystem{}
}

func (s *SteeringSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	ecs.ForEach4(w,
		component.PathComponent.Kind(),
		component.PositionComponent.Kind(),
		component.VelocityComponent.Kind(),
		component.SpeedComponent.Kind(),
		func(e ecs.Entity, path *nav.Path, pos *nav.Position, vel *nav.Velocity, speed *component.Speed) {
			v, arrived := nav.Follow(path, *pos, speed.Value)
			*vel = v
			if !arrived {
				return
			}
			ecs.Remove(w, e, component.PathComponent.Kind())
			w.Events().Push(ecs.Event{Type: ecs.EventPathCompleted, Data: ecs.EntityEvent{Entity: e}})
		})
}
