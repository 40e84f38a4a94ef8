package entity

import (
	"fmt"

	"github.com/milk9111/scrubber/config"
	"github.com/milk9111/scrubber/ecs"
	"github.com/milk9111/scrubber/ecs/component"
	"github.com/milk9111/scrubber/frames"
)

// NewScrubber creates the single entity carrying the frame set, playback head,
// hold signal, render mode, surface size and diagnostics.
func NewScrubber(w *ecs.World, cfg config.Config, set *frames.Set) (ecs.Entity, error) {
	if w == nil {
		return 0, fmt.Errorf("scrubber: world is nil")
	}
	if set == nil {
		return 0, fmt.Errorf("scrubber: frame set is nil")
	}

	ent := ecs.CreateEntity(w)

	if err := ecs.Add(w, ent, component.FrameStripComponent.Kind(), &component.FrameStrip{
		Set:     set,
		Pattern: cfg.Frames.Pattern(),
	}); err != nil {
		return 0, fmt.Errorf("scrubber: add frame strip: %w", err)
	}
	if err := ecs.Add(w, ent, component.PlaybackComponent.Kind(), &component.Playback{
		ForwardSpeed:  cfg.Playback.ForwardSpeed,
		BackwardSpeed: cfg.Playback.BackwardSpeed,
		DisplayIndex:  -1,
	}); err != nil {
		return 0, fmt.Errorf("scrubber: add playback: %w", err)
	}
	if err := ecs.Add(w, ent, component.HoldComponent.Kind(), &component.Hold{}); err != nil {
		return 0, fmt.Errorf("scrubber: add hold: %w", err)
	}
	if err := ecs.Add(w, ent, component.RenderModeComponent.Kind(), &component.RenderMode{Mode: component.ModeLoading}); err != nil {
		return 0, fmt.Errorf("scrubber: add render mode: %w", err)
	}
	if err := ecs.Add(w, ent, component.SurfaceComponent.Kind(), &component.Surface{
		Width:  float64(cfg.Display.Width),
		Height: float64(cfg.Display.Height),
	}); err != nil {
		return 0, fmt.Errorf("scrubber: add surface: %w", err)
	}
	if err := ecs.Add(w, ent, component.DiagnosticsComponent.Kind(), &component.Diagnostics{}); err != nil {
		return 0, fmt.Errorf("scrubber: add diagnostics: %w", err)
	}

	return ent, nil
}
