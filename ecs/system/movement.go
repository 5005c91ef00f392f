package system

import (
	"github.com/milk9111/dontescape/ecs"
	"github.com/milk9111/dontescape/ecs/component"
	"github.com/milk9111/dontescape/nav"
)

// CollisionSystem clips velocities against the static map before they are
// applied.
type CollisionSystem struct {
	walkable *nav.WalkabilityMap
}

func NewCollisionSystem(m *nav.WalkabilityMap) *CollisionSystem {
	return &CollisionSystem{walkable: m}
}

func (s *CollisionSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}

	ecs.ForEach2(w, component.PositionComponent.Kind(), component.VelocityComponent.Kind(), func(_ ecs.Entity, pos *nav.Position, vel *nav.Velocity) {
		if vel.IsZero() {
			return
		}
		*vel = nav.ResolveCollision(s.walkable, *pos, *vel)
	})
}

// VelocitySystem integrates velocity into position.
type VelocitySystem struct{}

func NewVelocitySystem() *VelocitySystem {
	return &VelocitySystem{}
}

func (s *VelocitySystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	ecs.ForEach2(w, component.PositionComponent.Kind(), component.VelocityComponent.Kind(), func(_ ecs.Entity, pos *nav.Position, vel *nav.Velocity) {
		*pos = pos.Add(*vel)
	})
}

// PositionSyncSystem mirrors cell-space positions into pixel transforms.
type PositionSyncSystem struct {
	cellSize float64
}

func NewPositionSyncSystem(cellSize float64) *PositionSyncSystem {
	if cellSize <= 0 {
		cellSize = 1
	}
	return &PositionSyncSystem{cellSize: cellSize}
}

func (s *PositionSyncSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}

	ecs.ForEach2(w, component.PositionComponent.Kind(), component.TransformComponent.Kind(), func(_ ecs.Entity, pos *nav.Position, t *component.Transform) {
		t.X, t.Y = pos.Scaled(s.cellSize)
	})
}
