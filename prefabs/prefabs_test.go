package prefabs

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/milk9111/dontescape/ecs/system"
	"github.com/milk9111/dontescape/nav"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withDir(t *testing.T, dir string) {
	t.Helper()
	prev := Dir()
	SetDir(dir)
	t.Cleanup(func() { SetDir(prev) })
}

func TestEmbeddedSpecs(t *testing.T) {
	withDir(t, "")

	wires, err := LoadWiresSpec()
	require.NoError(t, err)
	assert.Equal(t, 1000, wires.DamageOdds)
	assert.Equal(t, 120, wires.DamagedTicks)

	escape, err := LoadEscapeSpec()
	require.NoError(t, err)
	assert.Equal(t, 300, escape.IntervalTicks)
	assert.Equal(t, "escape.tengo", escape.Script)
	assert.Equal(t, 1.5, escape.CatchReach)
}

func TestEntityBuildSpecs(t *testing.T) {
	withDir(t, "")

	tests := []struct {
		file string
		want []string
	}{
		{file: "prisoner.yaml", want: []string{"prisoner_tag", "position", "velocity", "speed", "transform"}},
		{file: "warden.yaml", want: []string{"warden_tag", "position", "velocity", "facing", "speed", "transform"}},
		{file: "camera.yaml", want: []string{"camera"}},
	}
	for _, tt := range tests {
		t.Run(tt.file, func(t *testing.T) {
			spec, err := LoadEntityBuildSpec(tt.file)
			require.NoError(t, err)
			assert.Len(t, spec.Components, len(tt.want))
			for _, name := range tt.want {
				assert.Contains(t, spec.Components, name)
			}
		})
	}
}

func TestDecodeComponentSpec(t *testing.T) {
	withDir(t, "")

	spec, err := LoadEntityBuildSpec("prisoner.yaml")
	require.NoError(t, err)

	speed, err := DecodeComponentSpec[SpeedComponentSpec](spec.Components["speed"])
	require.NoError(t, err)
	assert.Equal(t, 0.04, speed.Base)
	assert.Equal(t, 0.02, speed.Jitter)

	empty, err := DecodeComponentSpec[SpeedComponentSpec](nil)
	require.NoError(t, err)
	assert.Zero(t, empty)
}

func TestDiskOverrideWins(t *testing.T) {
	dir := t.TempDir()
	withDir(t, dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "wires.yaml"), []byte("damage_odds: 10\ndamaged_ticks: 5\n"), 0o644))

	wires, err := LoadWiresSpec()
	require.NoError(t, err)
	assert.Equal(t, 10, wires.DamageOdds)
	assert.Equal(t, 5, wires.DamagedTicks)

	_, ok := ModTime("wires.yaml")
	assert.True(t, ok)

	// files missing on disk fall back to the embedded copy
	escape, err := LoadEscapeSpec()
	require.NoError(t, err)
	assert.Equal(t, 300, escape.IntervalTicks)
}

func TestLoadSpecErrors(t *testing.T) {
	dir := t.TempDir()
	withDir(t, dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "wires.yaml"), []byte("damage_odds: [1"), 0o644))

	_, err := LoadWiresSpec()
	assert.ErrorContains(t, err, "prefabs: unmarshal wires.yaml")

	_, err = LoadSpec[WiresSpec]("missing.yaml")
	assert.ErrorContains(t, err, "prefabs: load missing.yaml")
}

func TestCleanScriptPath(t *testing.T) {
	for _, in := range []string{"escape.tengo", "scripts/escape.tengo", "prefabs/scripts/escape.tengo"} {
		assert.Equal(t, "scripts/escape.tengo", cleanScriptPath(in), in)
	}
	assert.Equal(t, "", cleanScriptPath(""))
	assert.Equal(t, "wires.yaml", cleanPrefabPath("prefabs/wires.yaml"))
}

func TestEscapeScript(t *testing.T) {
	withDir(t, "")

	src, err := LoadScript("escape.tengo")
	require.NoError(t, err)

	sel, err := system.NewScriptSelector(src)
	require.NoError(t, err)

	exits := []nav.Cell{{X: 20, Y: 0}, {X: 0, Y: 2}, {X: 9, Y: 9}}

	got, err := sel.SelectExit(exits, nav.Cell{}, 0.1)
	require.NoError(t, err)
	assert.Equal(t, 1, got, "low rolls take the nearest exit")

	got, err = sel.SelectExit(exits, nav.Cell{}, 0.75)
	require.NoError(t, err)
	assert.Equal(t, 0, got)

	got, err = sel.SelectExit(exits, nav.Cell{}, 0.99)
	require.NoError(t, err)
	assert.Equal(t, 2, got)
}

func TestWatcherReportsSpecChanges(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(dir)
	require.NoError(t, err)
	defer w.Close()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("ignored"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "wires.yaml"), []byte("damage_odds: 3\n"), 0o644))

	select {
	case name := <-w.Events:
		assert.Equal(t, "wires.yaml", filepath.Base(name))
	case <-time.After(5 * time.Second):
		t.Fatal("no watcher event")
	}

	require.NoError(t, w.Close())
	require.NoError(t, w.Close())
}

func TestIsSpecOrScriptFile(t *testing.T) {
	assert.True(t, isSpecFile("a/b/warden.YAML"))
	assert.True(t, isSpecFile("x.yml"))
	assert.False(t, isSpecFile("x.json"))
	assert.True(t, isScriptFile("escape.tengo"))
	assert.False(t, isScriptFile("escape.lua"))
}
