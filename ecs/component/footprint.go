package component

import "github.com/milk9111/dontescape/nav"

// Footprint is the set of cells an item occupies, expressed as offsets from
// its anchor, and whether those cells are currently walkable.
type Footprint struct {
	Anchor   nav.Cell
	Offsets  []nav.Cell
	Walkable bool
}

var FootprintComponent = NewComponent[Footprint]()

// FootprintDirty asks the map update pass to rewrite this footprint.
type FootprintDirty struct{}

var FootprintDirtyComponent = NewComponent[FootprintDirty]()

// Cells returns the absolute cells covered by the footprint.
func (f Footprint) Cells() []nav.Cell {
	if len(f.Offsets) == 0 {
		return []nav.Cell{f.Anchor}
	}
	cells := make([]nav.Cell, 0, len(f.Offsets))
	for _, off := range f.Offsets {
		cells = append(cells, f.Anchor.Add(off))
	}
	return cells
}

// Contains reports whether cell is part of the footprint.
func (f Footprint) Contains(cell nav.Cell) bool {
	for _, c := range f.Cells() {
		if c == cell {
			return true
		}
	}
	return false
}

// DoorSpan is the number of cells a door covers.
const DoorSpan = 5

// DoorOffsets returns a line of DoorSpan cells centred on the anchor.
func DoorOffsets(vertical bool) []nav.Cell {
	offsets := make([]nav.Cell, 0, DoorSpan)
	for i := -DoorSpan / 2; i <= DoorSpan/2; i++ {
		if vertical {
			offsets = append(offsets, nav.Cell{Y: i})
		} else {
			offsets = append(offsets, nav.Cell{X: i})
		}
	}
	return offsets
}

// Apply writes the footprint's walkability into m.
func (f Footprint) Apply(m *nav.WalkabilityMap) {
	for _, c := range f.Cells() {
		m.SetWalkable(c, f.Walkable)
	}
}
