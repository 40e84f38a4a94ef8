package system

import (
	"fmt"
	"path/filepath"

	"github.com/milk9111/scrubber/ecs"
	"github.com/milk9111/scrubber/ecs/component"
	"github.com/milk9111/scrubber/frames"
	"github.com/milk9111/scrubber/logger"
)

// DiskWatchSystem turns frame-file changes into diagnostics notices. It never
// blocks the tick and never reloads frames.
type DiskWatchSystem struct {
	changes <-chan frames.Change
	errs    <-chan error
	log     *logger.Logger
}

func NewDiskWatchSystem(changes <-chan frames.Change, errs <-chan error, log *logger.Logger) *DiskWatchSystem {
	return &DiskWatchSystem{changes: changes, errs: errs, log: log}
}

// DiskNotice formats a change for the loading view.
func DiskNotice(c frames.Change) string {
	return fmt.Sprintf("%s changed on disk (%s); restart to reload", filepath.Base(c.Path), c.Op)
}

func (s *DiskWatchSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}

	var notices []string
drain:
	for {
		select {
		case c, ok := <-s.changes:
			if !ok {
				s.changes = nil
				break drain
			}
			s.log.Infof("[watch] frame %d: %s %s", c.Index, c.Op, c.Path)
			notices = append(notices, DiskNotice(c))
		case err, ok := <-s.errs:
			if !ok {
				s.errs = nil
				continue
			}
			s.log.Warnf("[watch] %v", err)
		default:
			break drain
		}
	}
	if len(notices) == 0 {
		return
	}

	ecs.ForEach(w, component.DiagnosticsComponent.Kind(), func(e ecs.Entity, diag *component.Diagnostics) {
		for _, n := range notices {
			diag.AddDiskNotice(n)
		}
	})
}
