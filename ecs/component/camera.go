package component

// Camera follows the keyboard controlled entity. X and Y are the smoothed
// centre in pixels.
type Camera struct {
	Smoothness float64
	X          float64
	Y          float64
	Snapped    bool
}

var CameraComponent = NewComponent[Camera]()
