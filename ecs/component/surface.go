package component

// Surface is the drawable area reported by the window on the last layout.
type Surface struct {
	Width  float64
	Height float64
}

var SurfaceComponent = NewComponent[Surface]()
