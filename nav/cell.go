// Package nav holds the grid model shared by movement and pathfinding: cells,
// continuous positions, the walkability map, A* search and path following.
package nav

import "fmt"

// Cell addresses one square of the walkability grid.
type Cell struct {
	X int `json:"x" yaml:"x"`
	Y int `json:"y" yaml:"y"`
}

// FourDirections lists neighbour offsets in the fixed order used by every
// neighbour query, which keeps search output reproducible.
var FourDirections = [4]Cell{
	{X: 0, Y: 1},
	{X: 0, Y: -1},
	{X: 1, Y: 0},
	{X: -1, Y: 0},
}

func (c Cell) Add(o Cell) Cell {
	return Cell{X: c.X + o.X, Y: c.Y + o.Y}
}

func (c Cell) Sub(o Cell) Cell {
	return Cell{X: c.X - o.X, Y: c.Y - o.Y}
}

// Manhattan returns |dx| + |dy|.
func (c Cell) Manhattan(o Cell) int {
	return abs(c.X-o.X) + abs(c.Y-o.Y)
}

// Position returns the continuous coordinates of the cell centre.
func (c Cell) Position() Position {
	return Position{X: float64(c.X), Y: float64(c.Y)}
}

func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
