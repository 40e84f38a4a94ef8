package system

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/scrubber/ecs"
	"github.com/milk9111/scrubber/ecs/component"
	"github.com/milk9111/scrubber/frames"
	"github.com/milk9111/scrubber/logger"
	"golang.design/x/clipboard"
)

// ClipboardWriter copies text to the system clipboard.
type ClipboardWriter func(data []byte) error

// SystemClipboard initialises the OS clipboard. It returns an error on hosts
// without one (headless, missing X11), in which case copying is disabled.
func SystemClipboard() (ClipboardWriter, error) {
	if err := clipboard.Init(); err != nil {
		return nil, fmt.Errorf("clipboard: init: %w", err)
	}
	return func(data []byte) error {
		clipboard.Write(clipboard.FmtText, data)
		return nil
	}, nil
}

// ClipboardReport is what gets copied: the first failed path and the pattern
// that produced it.
func ClipboardReport(snap frames.Snapshot, pattern frames.Pattern) string {
	if snap.FirstFailure == nil {
		return ""
	}
	return fmt.Sprintf("%s\n%s\nloaded %d/%d, failed %d\n",
		snap.FirstFailure.Path, pattern, snap.Loaded, snap.Total, snap.FailedCount)
}

// ClipboardSystem copies the failure report when C is pressed on the loading
// view.
type ClipboardSystem struct {
	write   ClipboardWriter
	pressed func() bool
	log     *logger.Logger
}

func NewClipboardSystem(write ClipboardWriter, log *logger.Logger) *ClipboardSystem {
	return &ClipboardSystem{
		write:   write,
		pressed: func() bool { return inpututil.IsKeyJustPressed(ebiten.KeyC) },
		log:     log,
	}
}

func (s *ClipboardSystem) Update(w *ecs.World) {
	if s == nil || w == nil || !s.pressed() {
		return
	}

	ent, strip, ok := ecs.FirstComponent(w, component.FrameStripComponent.Kind())
	if !ok {
		return
	}
	if mode, ok := ecs.Get(w, ent, component.RenderModeComponent.Kind()); !ok || mode.Mode != component.ModeLoading {
		return
	}
	report := ClipboardReport(strip.Set.Snapshot(), strip.Pattern)
	if report == "" {
		return
	}

	status := "copied first failed path to clipboard"
	if s.write == nil {
		status = "clipboard unavailable"
	} else if err := s.write([]byte(report)); err != nil {
		status = "clipboard copy failed"
		s.log.Warnf("[clipboard] %v", err)
	}
	s.log.Infof("[clipboard] %s", status)

	if diag, ok := ecs.Get(w, ent, component.DiagnosticsComponent.Kind()); ok {
		diag.ClipboardStatus = status
	}
}
