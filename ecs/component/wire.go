package component

// WireState is the condition of a wire.
type WireState int

const (
	WireIntact WireState = iota
	WireDamaged
	WireBroken
)

func (s WireState) String() string {
	switch s {
	case WireIntact:
		return "intact"
	case WireDamaged:
		return "damaged"
	case WireBroken:
		return "broken"
	default:
		return "unknown"
	}
}

// Wire powers the doors. Damaged wires break once TicksLeft runs out.
type Wire struct {
	State     WireState
	TicksLeft int
}

var WireComponent = NewComponent[Wire]()
