package system

import (
	"github.com/milk9111/dontescape/ecs"
	"github.com/milk9111/dontescape/ecs/component"
	"github.com/milk9111/dontescape/logger"
	"go.uber.org/zap"
)

// SetDoorOpen changes a door's state and marks its footprint so the next
// map update rewrites the cells. It reports whether anything changed.
func SetDoorOpen(w *ecs.World, e ecs.Entity, open bool) bool {
	door, ok := ecs.Get(w, e, component.DoorComponent.Kind())
	if !ok || door.Open == open {
		return false
	}
	door.Open = open

	if fp, ok := ecs.Get(w, e, component.FootprintComponent.Kind()); ok {
		fp.Walkable = open
		_ = ecs.Add(w, e, component.FootprintDirtyComponent.Kind(), &component.FootprintDirty{})
	}

	w.Events().Push(ecs.Event{Type: ecs.EventDoorToggled, Data: ecs.EntityEvent{Entity: e}})
	logger.Debug("door toggled", zap.Stringer("entity", e), zap.Bool("open", open))
	return true
}
