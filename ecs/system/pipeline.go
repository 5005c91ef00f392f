package system

import (
	"github.com/milk9111/dontescape/ecs"
	"github.com/milk9111/dontescape/nav"
)

// TickSystems are the stateful systems callers keep references to.
// Any of them may be nil.
type TickSystems struct {
	Input  *InputSystem
	Warden *WardenActionSystem
	Escape *EscapeSystem
	Wires  *WireSystem
}

// NewTickPipeline returns the fixed per-tick system order:
// map update, input, warden actions, steering, collision, velocity,
// position sync, escape, wires, action clear.
func NewTickPipeline(m *nav.WalkabilityMap, cellSize float64, ts TickSystems) *ecs.Scheduler {
	s := ecs.NewScheduler(NewMapUpdateSystem(m))
	if ts.Input != nil {
		s.Add(ts.Input)
	}
	if ts.Warden != nil {
		s.Add(ts.Warden)
	}
	s.Add(NewSteeringSystem())
	s.Add(NewCollisionSystem(m))
	s.Add(NewVelocitySystem())
	s.Add(NewPositionSyncSystem(cellSize))
	if ts.Escape != nil {
		s.Add(ts.Escape)
	}
	if ts.Wires != nil {
		s.Add(ts.Wires)
	}
	s.Add(NewActionClearSystem())
	return s
}
