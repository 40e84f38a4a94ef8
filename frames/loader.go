package frames

import (
	"errors"
	"fmt"
	"image"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"
	"sync"

	"github.com/milk9111/scrubber/logger"
	"golang.org/x/sync/errgroup"
)

var ErrAlreadyRequested = errors.New("frames: frames already requested")

const defaultConcurrency = 8

// DiskFS opens paths on the local filesystem exactly as given, so absolute
// frame directories work.
type DiskFS struct{}

func (DiskFS) Open(name string) (fs.File, error) {
	return os.Open(filepath.FromSlash(name))
}

// Loader issues one asynchronous request per frame and records the outcome of
// each in a Set. There is no timeout, retry or cancellation.
type Loader struct {
	set         *Set
	pattern     Pattern
	fsys        fs.FS
	concurrency int
	log         *logger.Logger

	mu        sync.Mutex
	requested bool
	done      chan struct{}
}

type LoaderOption func(*Loader)

// WithFS sets the source frames are read from. Defaults to DiskFS.
func WithFS(fsys fs.FS) LoaderOption {
	return func(l *Loader) {
		if fsys != nil {
			l.fsys = fsys
		}
	}
}

// WithConcurrency bounds the number of frames decoded at once.
func WithConcurrency(n int) LoaderOption {
	return func(l *Loader) {
		if n > 0 {
			l.concurrency = n
		}
	}
}

func WithLogger(log *logger.Logger) LoaderOption {
	return func(l *Loader) {
		l.log = log
	}
}

func NewLoader(set *Set, pattern Pattern, opts ...LoaderOption) *Loader {
	l := &Loader{
		set:         set,
		pattern:     pattern,
		fsys:        DiskFS{},
		concurrency: defaultConcurrency,
		done:        make(chan struct{}),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// RequestAll starts loading frames 1..Total and returns immediately. It may be
// called once; later calls return ErrAlreadyRequested.
func (l *Loader) RequestAll() error {
	if l == nil || l.set == nil {
		return fmt.Errorf("frames: request all: loader has no frame set")
	}

	l.mu.Lock()
	if l.requested {
		l.mu.Unlock()
		return ErrAlreadyRequested
	}
	l.requested = true
	l.mu.Unlock()

	total := l.set.Total()
	l.log.Infof("[load] requesting %d frames (%s)", total, l.pattern)
	go l.dispatch(total)
	return nil
}

// Wait blocks until every request has resolved. It returns immediately if
// RequestAll was never called. The tick loop never calls this.
func (l *Loader) Wait() {
	if l == nil {
		return
	}
	l.mu.Lock()
	requested := l.requested
	l.mu.Unlock()
	if !requested {
		return
	}
	<-l.done
}

func (l *Loader) dispatch(total int) {
	defer close(l.done)

	var g errgroup.Group
	g.SetLimit(l.concurrency)
	for i := 1; i <= total; i++ {
		index := i
		p := l.pattern.Path(index)
		g.Go(func() error {
			l.load(index, p)
			return nil
		})
	}
	_ = g.Wait()

	snap := l.set.Snapshot()
	if snap.Ready() {
		l.log.Infof("[load] all %d frames loaded", snap.Total)
		return
	}
	l.log.Warnf("[load] %d/%d frames loaded, %d failed", snap.Loaded, snap.Total, snap.FailedCount)
}

func (l *Loader) load(index int, p string) {
	img, err := l.read(p)
	if err != nil {
		l.set.MarkFailed(index, p, err)
		l.log.Warnf("[FAIL] cannot load %s: %v", p, err)
		return
	}
	l.set.MarkLoaded(index, img, p)
	l.log.Debugf("[OK ] loaded %s", p)
}

func (l *Loader) read(p string) (img image.Image, err error) {
	name := p
	if _, disk := l.fsys.(DiskFS); !disk {
		name = cleanFramePath(p)
	}

	f, err := l.fsys.Open(name)
	if err != nil {
		return nil, fmt.Errorf("open: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close: %w", cerr)
		}
	}()

	return Decode(f)
}

// cleanFramePath turns a configured path into a valid io/fs name.
func cleanFramePath(p string) string {
	s := path.Clean(filepath.ToSlash(p))
	s = strings.TrimPrefix(s, "/")
	if s == "" {
		return "."
	}
	return s
}
