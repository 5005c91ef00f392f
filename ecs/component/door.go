package component

// Door is a security door. Closed doors block their footprint.
type Door struct {
	Open     bool
	Vertical bool
}

var DoorComponent = NewComponent[Door]()
