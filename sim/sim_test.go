package sim

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/milk9111/dontescape/config"
	"github.com/milk9111/dontescape/ecs"
	"github.com/milk9111/dontescape/ecs/component"
	"github.com/milk9111/dontescape/levels"
	"github.com/milk9111/dontescape/nav"
	"github.com/milk9111/dontescape/prefabs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type scriptedInput struct {
	dir    nav.Direction
	action bool
}

func (s *scriptedInput) Direction() nav.Direction { return s.dir }
func (s *scriptedInput) ActionPressed() bool      { return s.action }

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg := config.Default()
	cfg.Sim.Seed = 7
	cfg.Prefabs.Dir = ""
	t.Cleanup(func() { prefabs.SetDir("prefabs") })
	return cfg
}

func TestNewLoadsCellblock(t *testing.T) {
	s, err := New(testConfig(t), nil)
	require.NoError(t, err)

	assert.Equal(t, int64(7), s.Seed())
	assert.Equal(t, 5, s.Summary().Prisoners)
	assert.Equal(t, "cellblock", s.Level().Name)

	x, y, ok := s.Camera()
	require.True(t, ok)
	// keyboard warden spawns at (11,4)
	assert.Equal(t, 11*32.0, x)
	assert.Equal(t, 4*32.0, y)
}

func TestAgentsStayOnWalkableCells(t *testing.T) {
	cfg := testConfig(t)
	s, err := New(cfg, &scriptedInput{dir: nav.NewDirection(-1, 1)})
	require.NoError(t, err)

	for i := 0; i < 1200; i++ {
		s.Step()
		ecs.ForEach2(s.World(), component.PositionComponent.Kind(), component.VelocityComponent.Kind(), func(e ecs.Entity, pos *nav.Position, _ *nav.Velocity) {
			require.True(t, s.Map().IsWalkableAt(*pos), "tick %d entity %s at %v", s.Tick(), e, *pos)
		})
	}
	assert.Equal(t, 1200, s.Tick())
}

func TestSameSeedSameOutcome(t *testing.T) {
	positions := func() []nav.Position {
		s, err := New(testConfig(t), nil)
		require.NoError(t, err)
		s.Run(900)
		var out []nav.Position
		ecs.ForEach2(s.World(), component.PrisonerTagComponent.Kind(), component.PositionComponent.Kind(), func(_ ecs.Entity, _ *component.PrisonerTag, pos *nav.Position) {
			out = append(out, *pos)
		})
		return out
	}
	assert.Equal(t, positions(), positions())
}

func TestWardenOpensDoorThroughInput(t *testing.T) {
	cfg := testConfig(t)
	lvl := &levels.Level{Name: "hall", Items: []levels.Item{
		{Kind: "wall", X: 0, Y: 0},
		{Kind: "wall", X: 8, Y: 6},
		{Kind: "door", X: 4, Y: 3},
		{Kind: "warden", X: 4, Y: 2},
	}}
	input := &scriptedInput{dir: nav.NewDirection(0, 1)}
	s, err := NewWithLevel(cfg, lvl, input)
	require.NoError(t, err)
	require.False(t, s.Map().IsWalkable(nav.Cell{X: 4, Y: 3}))

	// face the door without walking into it, then press action
	input.dir = nav.Direction{}
	input.action = true
	s.Step()
	input.action = false

	found := false
	for _, evt := range s.Events() {
		if evt.Type == ecs.EventDoorToggled {
			found = true
		}
	}
	assert.True(t, found)

	// the map follows on the next tick
	assert.False(t, s.Map().IsWalkable(nav.Cell{X: 4, Y: 3}))
	s.Step()
	assert.True(t, s.Map().IsWalkable(nav.Cell{X: 4, Y: 3}))
}

func TestReloadWires(t *testing.T) {
	dir := t.TempDir()
	cfg := testConfig(t)
	s, err := New(cfg, nil)
	require.NoError(t, err)

	prefabs.SetDir(dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "escape.yaml"), []byte("interval_ticks: 5\nscript: escape.tengo\ncatch_reach: 2\n"), 0o644))
	require.NoError(t, s.Reload(filepath.Join(dir, "escape.yaml")))
	require.NoError(t, s.Reload("notes.txt"))

	require.NoError(t, os.WriteFile(filepath.Join(dir, "wires.yaml"), []byte("damage_odds: ["), 0o644))
	assert.Error(t, s.Reload(filepath.Join(dir, "wires.yaml")))
}

func TestUnknownLevel(t *testing.T) {
	cfg := testConfig(t)
	cfg.Sim.Level = "nowhere"
	_, err := New(cfg, nil)
	assert.ErrorContains(t, err, `sim: level "nowhere"`)
}
