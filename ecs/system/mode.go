package system

import (
	"github.com/milk9111/scrubber/ecs"
	"github.com/milk9111/scrubber/ecs/component"
	"github.com/milk9111/scrubber/frames"
	"github.com/milk9111/scrubber/logger"
)

// DecideMode picks the view for this tick. Only full readiness plays; failed
// frames keep the loading view up for good.
func DecideMode(snap frames.Snapshot) component.Mode {
	if snap.Ready() {
		return component.ModePlaying
	}
	return component.ModeLoading
}

type ModeSystem struct {
	log *logger.Logger
}

func NewModeSystem(log *logger.Logger) *ModeSystem {
	return &ModeSystem{log: log}
}

func (s *ModeSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	ecs.ForEach2(w, component.FrameStripComponent.Kind(), component.RenderModeComponent.Kind(), func(e ecs.Entity, strip *component.FrameStrip, mode *component.RenderMode) {
		next := DecideMode(strip.Set.Snapshot())
		if next == mode.Mode {
			return
		}
		s.log.Infof("[mode] %s -> %s", mode.Mode, next)
		mode.Mode = next
	})
}
