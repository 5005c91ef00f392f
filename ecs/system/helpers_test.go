package system

import (
	"testing"

	"github.com/milk9111/dontescape/ecs"
	"github.com/milk9111/dontescape/ecs/component"
	"github.com/milk9111/dontescape/nav"
	"github.com/stretchr/testify/require"
)

func openRect(minX, minY, maxX, maxY int) *nav.WalkabilityMap {
	m := nav.NewWalkabilityMap()
	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			m.SetWalkable(nav.Cell{X: x, Y: y}, true)
		}
	}
	return m
}

func addAll(t *testing.T, w *ecs.World, e ecs.Entity, pos nav.Position, speed float64) {
	t.Helper()
	require.NoError(t, ecs.Add(w, e, component.PositionComponent.Kind(), &pos))
	require.NoError(t, ecs.Add(w, e, component.VelocityComponent.Kind(), &nav.Velocity{}))
	require.NoError(t, ecs.Add(w, e, component.SpeedComponent.Kind(), &component.Speed{Value: speed}))
	require.NoError(t, ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{}))
}

func spawnAgent(t *testing.T, w *ecs.World, pos nav.Position, speed float64) ecs.Entity {
	t.Helper()
	e := ecs.CreateEntity(w)
	addAll(t, w, e, pos, speed)
	return e
}

func spawnPrisoner(t *testing.T, w *ecs.World, cell nav.Cell) ecs.Entity {
	t.Helper()
	e := spawnAgent(t, w, cell.Position(), 0.05)
	require.NoError(t, ecs.Add(w, e, component.PrisonerTagComponent.Kind(), &component.PrisonerTag{}))
	require.NoError(t, ecs.Add(w, e, component.SpawnPointComponent.Kind(), &component.SpawnPoint{Cell: cell}))
	return e
}

func spawnWarden(t *testing.T, w *ecs.World, cell nav.Cell, facing nav.Direction) ecs.Entity {
	t.Helper()
	e := spawnAgent(t, w, cell.Position(), 0.1)
	require.NoError(t, ecs.Add(w, e, component.WardenTagComponent.Kind(), &component.WardenTag{}))
	require.NoError(t, ecs.Add(w, e, component.FacingComponent.Kind(), &component.Facing{Direction: facing}))
	return e
}

func spawnDoor(t *testing.T, w *ecs.World, m *nav.WalkabilityMap, anchor nav.Cell, vertical bool) ecs.Entity {
	t.Helper()
	e := ecs.CreateEntity(w)
	fp := &component.Footprint{Anchor: anchor, Offsets: component.DoorOffsets(vertical)}
	require.NoError(t, ecs.Add(w, e, component.DoorComponent.Kind(), &component.Door{Vertical: vertical}))
	require.NoError(t, ecs.Add(w, e, component.FootprintComponent.Kind(), fp))
	fp.Apply(m)
	return e
}

func spawnWire(t *testing.T, w *ecs.World, cell nav.Cell, state component.WireState) ecs.Entity {
	t.Helper()
	e := ecs.CreateEntity(w)
	pos := cell.Position()
	require.NoError(t, ecs.Add(w, e, component.WireComponent.Kind(), &component.Wire{State: state}))
	require.NoError(t, ecs.Add(w, e, component.PositionComponent.Kind(), &pos))
	return e
}

func spawnExit(t *testing.T, w *ecs.World, cell nav.Cell) ecs.Entity {
	t.Helper()
	e := ecs.CreateEntity(w)
	pos := cell.Position()
	require.NoError(t, ecs.Add(w, e, component.ExitTagComponent.Kind(), &component.ExitTag{}))
	require.NoError(t, ecs.Add(w, e, component.PositionComponent.Kind(), &pos))
	return e
}

type fakeInput struct {
	dir    nav.Direction
	action bool
}

func (f *fakeInput) Direction() nav.Direction { return f.dir }
func (f *fakeInput) ActionPressed() bool      { return f.action }

// fixedRand replays fixed values, repeating the last one.
type fixedRand struct {
	ints   []int
	floats []float64
}

func (r *fixedRand) Intn(n int) int {
	v := 0
	if len(r.ints) > 0 {
		v = r.ints[0]
		if len(r.ints) > 1 {
			r.ints = r.ints[1:]
		}
	}
	return v % n
}

func (r *fixedRand) Float64() float64 {
	v := 0.0
	if len(r.floats) > 0 {
		v = r.floats[0]
		if len(r.floats) > 1 {
			r.floats = r.floats[1:]
		}
	}
	return v
}

// eventTap records events before the scheduler flushes them.
type eventTap struct {
	seen []ecs.Event
}

func (t *eventTap) Update(w *ecs.World) {
	t.seen = append(t.seen, w.Events().Peek()...)
}

func (t *eventTap) count(kind string) int {
	n := 0
	for _, evt := range t.seen {
		if evt.Type == kind {
			n++
		}
	}
	return n
}
