package nav

// WalkabilityMap is the single source of truth for which cells can be
// entered. Cells never written are not walkable, so a level has to mark every
// passable cell explicitly.
type WalkabilityMap struct {
	cells map[Cell]bool
}

func NewWalkabilityMap() *WalkabilityMap {
	return &WalkabilityMap{cells: make(map[Cell]bool)}
}

// SetWalkable overwrites the flag for cell.
func (m *WalkabilityMap) SetWalkable(cell Cell, walkable bool) {
	if m == nil {
		return
	}
	if m.cells == nil {
		m.cells = make(map[Cell]bool)
	}
	m.cells[cell] = walkable
}

// IsWalkable returns the stored flag, or false for unset cells.
func (m *WalkabilityMap) IsWalkable(cell Cell) bool {
	if m == nil {
		return false
	}
	return m.cells[cell]
}

// IsWalkableAt checks the cell nearest to pos.
func (m *WalkabilityMap) IsWalkableAt(pos Position) bool {
	return m.IsWalkable(pos.NearestCell())
}

// WalkableNeighbours returns the walkable cells among the four axis-aligned
// neighbours of cell, in FourDirections order.
func (m *WalkabilityMap) WalkableNeighbours(cell Cell) []Cell {
	out := make([]Cell, 0, len(FourDirections))
	for _, d := range FourDirections {
		n := cell.Add(d)
		if m.IsWalkable(n) {
			out = append(out, n)
		}
	}
	return out
}

// Len returns the number of cells that have been written.
func (m *WalkabilityMap) Len() int {
	if m == nil {
		return 0
	}
	return len(m.cells)
}

// Bounds returns the inclusive corners of every written cell.
func (m *WalkabilityMap) Bounds() (min, max Cell, ok bool) {
	if m == nil {
		return Cell{}, Cell{}, false
	}
	for c := range m.cells {
		if !ok {
			min, max, ok = c, c, true
			continue
		}
		min.X, min.Y = minInt(min.X, c.X), minInt(min.Y, c.Y)
		max.X, max.Y = maxInt(max.X, c.X), maxInt(max.Y, c.Y)
	}
	return min, max, ok
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
