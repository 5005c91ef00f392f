package nav

import "errors"

// ErrEmptyPath is returned when a Path is built without waypoints.
var ErrEmptyPath = errors.New("nav: path needs at least one waypoint")

// ArrivalThresholdSq is the squared distance at which a waypoint counts as
// reached. Continuous motion rarely lands exactly on a cell centre.
const ArrivalThresholdSq = 0.1

// Path is a non-empty waypoint list with a cursor on the current target.
type Path struct {
	cells   []Cell
	current int
}

func NewPath(cells []Cell) (*Path, error) {
	if len(cells) == 0 {
		return nil, ErrEmptyPath
	}
	return &Path{cells: append([]Cell(nil), cells...)}, nil
}

// Target returns the waypoint under the cursor.
func (p *Path) Target() Cell {
	return p.cells[p.current]
}

// Next advances the cursor. It reports false, leaving the cursor on the last
// waypoint, when there is nothing left.
func (p *Path) Next() (Cell, bool) {
	if p.current+1 >= len(p.cells) {
		return Cell{}, false
	}
	p.current++
	return p.Target(), true
}

func (p *Path) Cursor() int { return p.current }

func (p *Path) Len() int { return len(p.cells) }

// Cells returns a copy of the waypoints.
func (p *Path) Cells() []Cell {
	return append([]Cell(nil), p.cells...)
}

// Goal returns the final waypoint.
func (p *Path) Goal() Cell {
	return p.cells[len(p.cells)-1]
}

// Follow steers an agent at pos toward the path target. Reached waypoints
// are skipped in the same call; arrived is true once the last one is reached,
// in which case the returned velocity is zero.
func Follow(p *Path, pos Position, speed float64) (vel Velocity, arrived bool) {
	for {
		diff := p.Target().Position().Sub(pos)
		if diff.LengthSq() >= ArrivalThresholdSq {
			return Towards(diff, speed), false
		}
		if _, ok := p.Next(); !ok {
			return Velocity{}, true
		}
	}
}
