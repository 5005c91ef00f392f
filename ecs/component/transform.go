package component

// Transform is the presentation position of an entity in pixels.
type Transform struct {
	X float64
	Y float64
}

var TransformComponent = NewComponent[Transform]()
