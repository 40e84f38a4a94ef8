package system

import (
	"math"

	"github.com/milk9111/scrubber/common"
	"github.com/milk9111/scrubber/ecs"
	"github.com/milk9111/scrubber/ecs/component"
)

// Step advances position toward the last frame while holding and back toward
// the first frame otherwise, saturating at both ends. Speeds are frames per
// tick with no delta-time scaling.
func Step(position float64, holding bool, total int, forward, backward float64) float64 {
	if total <= 0 {
		return 0
	}
	last := float64(total - 1)
	if holding {
		return math.Min(position+forward, last)
	}
	return math.Max(position-backward, 0)
}

// DisplayIndex rounds position half-up into [0, total-1]. It returns -1 when
// there are no frames.
func DisplayIndex(position float64, total int) int {
	if total <= 0 {
		return -1
	}
	return common.RoundHalfUp(common.Clamp(position, 0, float64(total-1)))
}

// PlaybackSystem moves the scrub head once per tick, but only in playing mode.
type PlaybackSystem struct{}

func NewPlaybackSystem() *PlaybackSystem {
	return &PlaybackSystem{}
}

func (s *PlaybackSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	ecs.ForEach2(w, component.PlaybackComponent.Kind(), component.RenderModeComponent.Kind(), func(e ecs.Entity, pb *component.Playback, mode *component.RenderMode) {
		if mode.Mode != component.ModePlaying {
			return
		}
		strip, ok := ecs.Get(w, e, component.FrameStripComponent.Kind())
		if !ok {
			return
		}
		holding := false
		if hold, ok := ecs.Get(w, e, component.HoldComponent.Kind()); ok {
			holding = hold.Holding
		}

		total := strip.Set.Total()
		pb.Position = Step(pb.Position, holding, total, pb.ForwardSpeed, pb.BackwardSpeed)
		pb.DisplayIndex = DisplayIndex(pb.Position, total)
	})
}
