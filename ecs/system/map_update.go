package system

import (
	"github.com/milk9111/dontescape/ecs"
	"github.com/milk9111/dontescape/ecs/component"
	"github.com/milk9111/dontescape/nav"
)

// MapUpdateSystem is the only writer of the walkability map during a tick.
// It rewrites every footprint flagged dirty since the last run.
type MapUpdateSystem struct {
	walkable *nav.WalkabilityMap
}

func NewMapUpdateSystem(m *nav.WalkabilityMap) *MapUpdateSystem {
	return &MapUpdateSystem{walkable: m}
}

func (s *MapUpdateSystem) Update(w *ecs.World) {
	if s == nil || w == nil || s.walkable == nil {
		return
	}

	ecs.ForEach2(w, component.FootprintDirtyComponent.Kind(), component.FootprintComponent.Kind(), func(e ecs.Entity, _ *component.FootprintDirty, fp *component.Footprint) {
		fp.Apply(s.walkable)
		ecs.Remove(w, e, component.FootprintDirtyComponent.Kind())
	})
}
