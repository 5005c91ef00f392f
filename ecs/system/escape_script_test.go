package system

import (
	"testing"

	"github.com/milk9111/dontescape/nav"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const nearestExitScript = `
choice := 0
best := -1
for i, e in exits {
	dx := e[0] - prisoner[0]
	dy := e[1] - prisoner[1]
	d := (dx < 0 ? -dx : dx) + (dy < 0 ? -dy : dy)
	if best < 0 || d < best {
		best = d
		choice = i
	}
}
`

func TestScriptSelectorPicksNearest(t *testing.T) {
	sel, err := NewScriptSelector([]byte(nearestExitScript))
	require.NoError(t, err)

	exits := []nav.Cell{{X: 10, Y: 0}, {X: 0, Y: 3}, {X: -5, Y: -5}}
	got, err := sel.SelectExit(exits, nav.Cell{X: 0, Y: 0}, 0.5)
	require.NoError(t, err)
	assert.Equal(t, 1, got)

	// state from the previous run must not leak
	got, err = sel.SelectExit(exits, nav.Cell{X: 9, Y: 1}, 0.5)
	require.NoError(t, err)
	assert.Equal(t, 0, got)
}

func TestScriptSelectorUsesRoll(t *testing.T) {
	sel, err := NewScriptSelector([]byte(`choice := roll < 0.5 ? 0 : len(exits) - 1`))
	require.NoError(t, err)

	exits := []nav.Cell{{X: 1}, {X: 2}, {X: 3}}
	got, err := sel.SelectExit(exits, nav.Cell{}, 0.2)
	require.NoError(t, err)
	assert.Equal(t, 0, got)

	got, err = sel.SelectExit(exits, nav.Cell{}, 0.7)
	require.NoError(t, err)
	assert.Equal(t, 2, got)
}

func TestScriptSelectorErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{name: "syntax", src: `choice := (`},
		{name: "missing choice", src: `x := 1`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewScriptSelector([]byte(tt.src))
			assert.Error(t, err)
		})
	}

	sel, err := NewScriptSelector([]byte(`choice := 7`))
	require.NoError(t, err)
	_, err = sel.SelectExit([]nav.Cell{{X: 1}}, nav.Cell{}, 0)
	assert.ErrorContains(t, err, "out of range")

	_, err = sel.SelectExit(nil, nav.Cell{}, 0)
	assert.Error(t, err)
}
