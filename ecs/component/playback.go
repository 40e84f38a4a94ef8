package component

// Playback is the scrub head. Position stays within [0, Total-1] and is only
// advanced once every frame has loaded.
type Playback struct {
	Position      float64
	ForwardSpeed  float64
	BackwardSpeed float64
	// DisplayIndex is the 0-based frame shown this tick, -1 when there is none.
	DisplayIndex int
}

var PlaybackComponent = NewComponent[Playback]()
