package nav

import (
	"math"

	"github.com/jakecoffman/cp"
)

// Position is a continuous location measured in cells, not pixels.
type Position cp.Vector

// Velocity is the displacement applied to a Position once per tick.
type Velocity cp.Vector

func (p Position) Vec() cp.Vector { return cp.Vector(p) }

func (v Velocity) Vec() cp.Vector { return cp.Vector(v) }

// Add moves p by one tick of v.
func (p Position) Add(v Velocity) Position {
	return Position(p.Vec().Add(v.Vec()))
}

// Sub returns the vector from o to p.
func (p Position) Sub(o Position) cp.Vector {
	return p.Vec().Sub(o.Vec())
}

// NearestCell rounds each axis to the nearest integer, halves away from zero.
func (p Position) NearestCell() Cell {
	return Cell{X: int(math.Round(p.X)), Y: int(math.Round(p.Y))}
}

func (p Position) DistanceTo(o Position) float64 {
	return p.Vec().Distance(o.Vec())
}

func (p Position) DistanceSqTo(o Position) float64 {
	return p.Vec().DistanceSq(o.Vec())
}

// Scaled converts cell units to another unit, e.g. pixels.
func (p Position) Scaled(s float64) (float64, float64) {
	return p.X * s, p.Y * s
}

func (v Velocity) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// Horizontal keeps only the X component.
func (v Velocity) Horizontal() Velocity {
	return Velocity{X: v.X}
}

// Vertical keeps only the Y component.
func (v Velocity) Vertical() Velocity {
	return Velocity{Y: v.Y}
}

// Towards returns a velocity of the given speed pointing along dir. A zero
// dir yields a zero velocity.
func Towards(dir cp.Vector, speed float64) Velocity {
	if dir.LengthSq() == 0 {
		return Velocity{}
	}
	return Velocity(dir.Normalize().Mult(speed))
}
