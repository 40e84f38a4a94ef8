package component

import "github.com/milk9111/scrubber/frames"

// FrameStrip gives the tick loop its frame set and the naming pattern that
// produced it (for diagnostics). The set itself is filled by loader goroutines.
type FrameStrip struct {
	Set     *frames.Set
	Pattern frames.Pattern
}

var FrameStripComponent = NewComponent[FrameStrip]()
