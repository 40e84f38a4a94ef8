package system

import (
	"errors"
	"image"
	"strings"
	"testing"

	"github.com/milk9111/scrubber/ecs"
	"github.com/milk9111/scrubber/ecs/component"
)

func TestClipboardSystem(t *testing.T) {
	w, ent, set := newScrubberWorld(t, 3)
	var copied []string
	sys := NewClipboardSystem(func(data []byte) error {
		copied = append(copied, string(data))
		return nil
	}, nil)
	pressed := false
	sys.pressed = func() bool { return pressed }

	NewModeSystem(nil).Update(w)

	pressed = true
	sys.Update(w)
	if len(copied) != 0 {
		t.Fatalf("nothing should be copied without failures, got %q", copied)
	}

	set.MarkLoaded(1, image.NewRGBA(image.Rect(0, 0, 1, 1)), "a")
	set.MarkFailed(2, testPattern.Path(2), errors.New("404"))

	pressed = false
	sys.Update(w)
	if len(copied) != 0 {
		t.Fatalf("copy without key press")
	}

	pressed = true
	sys.Update(w)
	if len(copied) != 1 {
		t.Fatalf("expected one copy, got %d", len(copied))
	}
	if !strings.HasPrefix(copied[0], testPattern.Path(2)+"\n") || !strings.Contains(copied[0], "loaded 1/3, failed 1") {
		t.Fatalf("report = %q", copied[0])
	}
	diag, _ := ecs.Get(w, ent, component.DiagnosticsComponent.Kind())
	if diag.ClipboardStatus != "copied first failed path to clipboard" {
		t.Fatalf("status = %q", diag.ClipboardStatus)
	}
}

func TestClipboardSystemUnavailable(t *testing.T) {
	w, ent, set := newScrubberWorld(t, 1)
	set.MarkFailed(1, "x.png", errors.New("404"))
	NewModeSystem(nil).Update(w)

	sys := NewClipboardSystem(nil, nil)
	sys.pressed = func() bool { return true }
	sys.Update(w)

	diag, _ := ecs.Get(w, ent, component.DiagnosticsComponent.Kind())
	if diag.ClipboardStatus != "clipboard unavailable" {
		t.Fatalf("status = %q", diag.ClipboardStatus)
	}
}

func TestClipboardSystemWriteError(t *testing.T) {
	w, ent, set := newScrubberWorld(t, 1)
	set.MarkFailed(1, "x.png", errors.New("404"))
	NewModeSystem(nil).Update(w)

	sys := NewClipboardSystem(func([]byte) error { return errors.New("denied") }, nil)
	sys.pressed = func() bool { return true }
	sys.Update(w)

	diag, _ := ecs.Get(w, ent, component.DiagnosticsComponent.Kind())
	if diag.ClipboardStatus != "clipboard copy failed" {
		t.Fatalf("status = %q", diag.ClipboardStatus)
	}
}
