package system

import (
	"github.com/milk9111/dontescape/ecs"
	"github.com/milk9111/dontescape/ecs/component"
	"github.com/milk9111/dontescape/logger"
	"github.com/milk9111/dontescape/nav"
	"go.uber.org/zap"
)

// DefaultReach is how far, in cells, a warden can catch or repair.
const DefaultReach = 1.5

// WardenActionSystem resolves action requests made by wardens. A door in
// front of the warden takes priority; otherwise nearby escaping prisoners
// are sent back to their spawn and nearby faulty wires are repaired.
type WardenActionSystem struct {
	reach    float64
	captured int
}

func NewWardenActionSystem(reach float64) *WardenActionSystem {
	if reach <= 0 {
		reach = DefaultReach
	}
	return &WardenActionSystem{reach: reach}
}

// Captured returns how many prisoners have been caught so far.
func (s *WardenActionSystem) Captured() int {
	if s == nil {
		return 0
	}
	return s.captured
}

func (s *WardenActionSystem) SetReach(reach float64) {
	if reach > 0 {
		s.reach = reach
	}
}

func (s *WardenActionSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}

	ecs.ForEach4(w,
		component.ActionRequestComponent.Kind(),
		component.WardenTagComponent.Kind(),
		component.PositionComponent.Kind(),
		component.FacingComponent.Kind(),
		func(e ecs.Entity, _ *component.ActionRequest, _ *component.WardenTag, pos *nav.Position, facing *component.Facing) {
			if s.toggleDoor(w, pos.NearestCell().Add(facing.Direction.Cell())) {
				return
			}
			s.catchPrisoners(w, *pos)
			s.repairWires(w, *pos)
		})
}

func (s *WardenActionSystem) toggleDoor(w *ecs.World, front nav.Cell) bool {
	toggled := false
	ecs.ForEach2(w, component.DoorComponent.Kind(), component.FootprintComponent.Kind(), func(e ecs.Entity, door *component.Door, fp *component.Footprint) {
		if !fp.Contains(front) {
			return
		}
		SetDoorOpen(w, e, !door.Open)
		toggled = true
	})
	return toggled
}

func (s *WardenActionSystem) catchPrisoners(w *ecs.World, from nav.Position) {
	ecs.ForEach3(w,
		component.EscapingComponent.Kind(),
		component.PositionComponent.Kind(),
		component.SpawnPointComponent.Kind(),
		func(e ecs.Entity, _ *component.Escaping, pos *nav.Position, spawn *component.SpawnPoint) {
			if from.DistanceTo(*pos) > s.reach {
				return
			}

			*pos = spawn.Cell.Position()
			if vel, ok := ecs.Get(w, e, component.VelocityComponent.Kind()); ok {
				*vel = nav.Velocity{}
			}
			ecs.Remove(w, e, component.PathComponent.Kind())
			ecs.Remove(w, e, component.EscapingComponent.Kind())

			s.captured++
			w.Events().Push(ecs.Event{Type: ecs.EventCaptured, Data: ecs.EntityEvent{Entity: e}})
			logger.Info("prisoner captured", zap.Stringer("entity", e), zap.Stringer("spawn", spawn.Cell))
		})
}

func (s *WardenActionSystem) repairWires(w *ecs.World, from nav.Position) {
	ecs.ForEach2(w, component.WireComponent.Kind(), component.PositionComponent.Kind(), func(e ecs.Entity, wire *component.Wire, pos *nav.Position) {
		if wire.State == component.WireIntact || from.DistanceTo(*pos) > s.reach {
			return
		}
		logger.Info("wire repaired", zap.Stringer("entity", e), zap.Stringer("was", wire.State))
		wire.State = component.WireIntact
		wire.TicksLeft = 0
	})
}
