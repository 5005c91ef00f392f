package component

import "github.com/milk9111/dontescape/nav"

// Input stores per-tick input state for an entity.
type Input struct {
	Direction nav.Direction
	Action    bool
}

var InputComponent = NewComponent[Input]()

// ActionRequest marks an entity that pressed the action key this tick.
type ActionRequest struct{}

var ActionRequestComponent = NewComponent[ActionRequest]()
