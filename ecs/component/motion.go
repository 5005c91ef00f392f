package component

import "github.com/milk9111/dontescape/nav"

var (
	PositionComponent = NewComponent[nav.Position]()
	VelocityComponent = NewComponent[nav.Velocity]()
	PathComponent     = NewComponent[nav.Path]()
)

// Speed is the movement speed in cells per tick.
type Speed struct {
	Value float64
}

var SpeedComponent = NewComponent[Speed]()

// Facing keeps the last non-zero direction an agent moved in.
type Facing struct {
	Direction nav.Direction
}

var FacingComponent = NewComponent[Facing]()

// SpawnPoint is where an agent is sent back to when caught.
type SpawnPoint struct {
	Cell nav.Cell
}

var SpawnPointComponent = NewComponent[SpawnPoint]()
