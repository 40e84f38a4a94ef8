package frames

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

const watchDebounce = 100 * time.Millisecond

// Change reports that an expected frame file was touched on disk.
type Change struct {
	Index int
	Path  string
	Op    string
}

// Watcher reports changes to expected frame files in the frame directory.
// It never reloads anything; frames are loaded once per process.
type Watcher struct {
	watcher  *fsnotify.Watcher
	expected map[string]int
	Events   chan Change
	Errors   chan error
	closeCh  chan struct{}
	once     sync.Once
}

func NewWatcher(pattern Pattern, total int) (*Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	dir := watchDir(pattern)
	if err := w.Add(dir); err != nil {
		_ = w.Close()
		return nil, err
	}

	expected := make(map[string]int, total)
	for i := 1; i <= total; i++ {
		expected[filepath.Base(filepath.FromSlash(pattern.Path(i)))] = i
	}

	watcher := &Watcher{
		watcher:  w,
		expected: expected,
		Events:   make(chan Change, 16),
		Errors:   make(chan error, 1),
		closeCh:  make(chan struct{}),
	}
	go watcher.run()
	return watcher, nil
}

func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.watcher.Close()
	})
	return err
}

func (w *Watcher) run() {
	last := make(map[string]time.Time)
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) == 0 {
				continue
			}
			index, ok := w.expected[filepath.Base(event.Name)]
			if !ok {
				continue
			}
			now := time.Now()
			if t, ok := last[event.Name]; ok && now.Sub(t) < watchDebounce {
				continue
			}
			last[event.Name] = now
			select {
			case w.Events <- Change{Index: index, Path: event.Name, Op: event.Op.String()}:
			case <-w.closeCh:
				return
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			select {
			case w.Errors <- err:
			default:
			}
		case <-w.closeCh:
			return
		}
	}
}

// watchDir is the directory the loader actually reads frames from. A prefix
// may carry its own subdirectory, so it is derived from a full frame path.
func watchDir(p Pattern) string {
	return filepath.Dir(filepath.FromSlash(p.Path(1)))
}
