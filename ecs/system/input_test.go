package system

import (
	"testing"

	"github.com/milk9111/dontescape/ecs"
	"github.com/milk9111/dontescape/ecs/component"
	"github.com/milk9111/dontescape/nav"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInputDrivesKeyboardEntities(t *testing.T) {
	w := ecs.NewWorld()
	player := spawnWarden(t, w, nav.Cell{X: 1, Y: 1}, nav.NewDirection(0, 1))
	require.NoError(t, ecs.Add(w, player, component.KeyboardControlComponent.Kind(), &component.KeyboardControl{}))
	other := spawnWarden(t, w, nav.Cell{X: 3, Y: 3}, nav.NewDirection(0, 1))

	src := &fakeInput{dir: nav.NewDirection(1, 0), action: true}
	NewInputSystem(src).Update(w)

	vel, _ := ecs.Get(w, player, component.VelocityComponent.Kind())
	assert.InDelta(t, 0.1, vel.X, 1e-9)
	assert.InDelta(t, 0.0, vel.Y, 1e-9)

	facing, _ := ecs.Get(w, player, component.FacingComponent.Kind())
	assert.Equal(t, nav.NewDirection(1, 0), facing.Direction)

	input, ok := ecs.Get(w, player, component.InputComponent.Kind())
	require.True(t, ok)
	assert.True(t, input.Action)
	assert.True(t, ecs.Has(w, player, component.ActionRequestComponent.Kind()))

	otherVel, _ := ecs.Get(w, other, component.VelocityComponent.Kind())
	assert.True(t, otherVel.IsZero())
	assert.False(t, ecs.Has(w, other, component.ActionRequestComponent.Kind()))
}

func TestInputKeepsFacingWhenIdle(t *testing.T) {
	w := ecs.NewWorld()
	player := spawnWarden(t, w, nav.Cell{}, nav.NewDirection(-1, 0))
	require.NoError(t, ecs.Add(w, player, component.KeyboardControlComponent.Kind(), &component.KeyboardControl{}))

	NewInputSystem(&fakeInput{}).Update(w)

	facing, _ := ecs.Get(w, player, component.FacingComponent.Kind())
	assert.Equal(t, nav.NewDirection(-1, 0), facing.Direction)
	vel, _ := ecs.Get(w, player, component.VelocityComponent.Kind())
	assert.True(t, vel.IsZero())
	assert.False(t, ecs.Has(w, player, component.ActionRequestComponent.Kind()))
}

func TestInputDiagonalIsNormalized(t *testing.T) {
	w := ecs.NewWorld()
	player := spawnWarden(t, w, nav.Cell{}, nav.Direction{})
	require.NoError(t, ecs.Add(w, player, component.KeyboardControlComponent.Kind(), &component.KeyboardControl{}))

	NewInputSystem(&fakeInput{dir: nav.NewDirection(1, -1)}).Update(w)

	vel, _ := ecs.Get(w, player, component.VelocityComponent.Kind())
	assert.InDelta(t, 0.1, vel.Vec().Length(), 1e-9)
	assert.Greater(t, vel.X, 0.0)
	assert.Less(t, vel.Y, 0.0)
}

func TestActionClear(t *testing.T) {
	w := ecs.NewWorld()
	e := ecs.CreateEntity(w)
	require.NoError(t, ecs.Add(w, e, component.ActionRequestComponent.Kind(), &component.ActionRequest{}))
	require.NoError(t, ecs.Add(w, e, component.InputComponent.Kind(), &component.Input{Action: true}))

	NewActionClearSystem().Update(w)

	assert.False(t, ecs.Has(w, e, component.ActionRequestComponent.Kind()))
	input, _ := ecs.Get(w, e, component.InputComponent.Kind())
	assert.False(t, input.Action)
}
