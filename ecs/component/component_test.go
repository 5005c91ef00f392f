package component

import (
	"testing"

	"github.com/milk9111/dontescape/nav"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComponentKindsAreDistinct(t *testing.T) {
	a := NewComponentKind[int]()
	b := NewComponentKind[int]()

	assert.True(t, a.Valid())
	assert.NotEqual(t, a.ID(), b.ID())
	assert.False(t, ComponentKind[int]{}.Valid())
}

func TestDoorFootprint(t *testing.T) {
	tests := []struct {
		name     string
		vertical bool
		want     []nav.Cell
	}{
		{
			name: "horizontal",
			want: []nav.Cell{{X: 8, Y: 3}, {X: 9, Y: 3}, {X: 10, Y: 3}, {X: 11, Y: 3}, {X: 12, Y: 3}},
		},
		{
			name:     "vertical",
			vertical: true,
			want:     []nav.Cell{{X: 10, Y: 1}, {X: 10, Y: 2}, {X: 10, Y: 3}, {X: 10, Y: 4}, {X: 10, Y: 5}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fp := Footprint{Anchor: nav.Cell{X: 10, Y: 3}, Offsets: DoorOffsets(tt.vertical)}
			assert.Equal(t, tt.want, fp.Cells())
			assert.True(t, fp.Contains(nav.Cell{X: 10, Y: 3}))
		})
	}
}

func TestFootprintWithoutOffsetsIsAnchor(t *testing.T) {
	fp := Footprint{Anchor: nav.Cell{X: 2, Y: 2}}
	assert.Equal(t, []nav.Cell{{X: 2, Y: 2}}, fp.Cells())
	assert.False(t, fp.Contains(nav.Cell{X: 2, Y: 3}))
}

func TestParseItemKind(t *testing.T) {
	for _, k := range []ItemKind{ItemWall, ItemDoor, ItemExit, ItemWire, ItemWardenSpawn, ItemPrisonerSpawn} {
		got, err := ParseItemKind(k.String())
		require.NoError(t, err)
		assert.Equal(t, k, got)
	}

	got, err := ParseItemKind(" Door ")
	require.NoError(t, err)
	assert.Equal(t, ItemDoor, got)

	_, err = ParseItemKind("background")
	assert.Error(t, err)

	assert.True(t, ItemWall.Blocking())
	assert.False(t, ItemExit.Blocking())
}

func TestWireStateString(t *testing.T) {
	assert.Equal(t, "intact", WireIntact.String())
	assert.Equal(t, "broken", WireBroken.String())
	assert.Equal(t, "unknown", WireState(9).String())
}
