package system

import (
	"errors"
	"image"
	"slices"
	"testing"

	"github.com/milk9111/scrubber/ecs"
	"github.com/milk9111/scrubber/ecs/component"
	"github.com/milk9111/scrubber/frames"
)

func TestFailurePanelSystemVisibility(t *testing.T) {
	cases := []struct {
		name        string
		setup       func(w *ecs.World, ent ecs.Entity, set *frames.Set)
		wantVisible bool
	}{
		{
			name:  "loading_without_failure",
			setup: func(w *ecs.World, ent ecs.Entity, set *frames.Set) {},
		},
		{
			name: "loading_with_failure",
			setup: func(w *ecs.World, ent ecs.Entity, set *frames.Set) {
				set.MarkLoaded(1, image.NewRGBA(image.Rect(0, 0, 1, 1)), "a")
				set.MarkFailed(2, testPattern.Path(2), errors.New("404"))
			},
			wantVisible: true,
		},
		{
			name: "playing_with_every_frame_loaded",
			setup: func(w *ecs.World, ent ecs.Entity, set *frames.Set) {
				loadAll(set)
				NewModeSystem(nil).Update(w)
			},
		},
		{
			name: "not_loading_hides_recorded_failure",
			setup: func(w *ecs.World, ent ecs.Entity, set *frames.Set) {
				set.MarkFailed(3, testPattern.Path(3), errors.New("404"))
				mode, _ := ecs.Get(w, ent, component.RenderModeComponent.Kind())
				mode.Mode = component.ModePlaying
			},
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w, ent, set := newScrubberWorld(t, 3)
			c.setup(w, ent, set)

			panel := NewFailurePanelSystem()
			panel.Update(w)

			if panel.Visible() != c.wantVisible {
				t.Fatalf("Visible = %v, want %v", panel.Visible(), c.wantVisible)
			}
			var want []string
			if c.wantVisible {
				want = FailureLines(set.Snapshot(), testPattern)
			}
			if got := panel.Labels(); !slices.Equal(got, want) {
				t.Fatalf("Labels = %q, want %q", got, want)
			}
		})
	}
}

func TestFailurePanelSystemRefreshesLabels(t *testing.T) {
	w, ent, set := newScrubberWorld(t, 3)
	panel := NewFailurePanelSystem()

	panel.Update(w)
	if panel.Visible() || len(panel.Labels()) != 0 {
		t.Fatalf("panel shown before any failure: %q", panel.Labels())
	}

	set.MarkFailed(2, testPattern.Path(2), errors.New("404"))
	panel.Update(w)
	if !panel.Visible() || panel.Labels()[1] != testPattern.Path(2) {
		t.Fatalf("after first failure: visible=%v labels=%q", panel.Visible(), panel.Labels())
	}

	// A later failure does not replace the first one.
	set.MarkFailed(1, testPattern.Path(1), errors.New("404"))
	panel.Update(w)
	if panel.Labels()[1] != testPattern.Path(2) {
		t.Fatalf("first failed path changed: %q", panel.Labels())
	}

	strip, _ := ecs.Get(w, ent, component.FrameStripComponent.Kind())
	other := frames.Pattern{Directory: "shots/", Prefix: "take_", PadWidth: 2, Extension: "jpg"}
	replacement := frames.NewSet(3)
	replacement.MarkFailed(3, other.Path(3), errors.New("404"))
	strip.Set = replacement
	strip.Pattern = other

	panel.Update(w)
	want := FailureLines(replacement.Snapshot(), other)
	if got := panel.Labels(); !slices.Equal(got, want) {
		t.Fatalf("Labels = %q, want %q", got, want)
	}

	mode, _ := ecs.Get(w, ent, component.RenderModeComponent.Kind())
	mode.Mode = component.ModePlaying
	panel.Update(w)
	if panel.Visible() || len(panel.Labels()) != 0 {
		t.Fatalf("panel should hide outside loading: visible=%v labels=%q", panel.Visible(), panel.Labels())
	}
}
