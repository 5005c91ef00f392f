package nav

// Direction is a discrete heading with each axis in {-1, 0, 1}. Screen
// coordinates are used, so Up is negative Y.
type Direction struct {
	x, y int8
}

// NewDirection clamps each axis to {-1, 0, 1}.
func NewDirection(x, y int) Direction {
	return Direction{x: sign(x), y: sign(y)}
}

func (d *Direction) Left()  { d.x = -1 }
func (d *Direction) Right() { d.x = 1 }
func (d *Direction) Up()    { d.y = -1 }
func (d *Direction) Down()  { d.y = 1 }

func (d Direction) X() int { return int(d.x) }
func (d Direction) Y() int { return int(d.y) }

func (d Direction) IsZero() bool {
	return d.x == 0 && d.y == 0
}

// Cell returns the direction as a grid offset.
func (d Direction) Cell() Cell {
	return Cell{X: int(d.x), Y: int(d.y)}
}

// NormalizedVelocity returns a unit step along d scaled to speed, so diagonal
// movement is no faster than straight movement.
func (d Direction) NormalizedVelocity(speed float64) Velocity {
	return Towards(d.Cell().Position().Vec(), speed)
}

func sign(v int) int8 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}
