package frames

import (
	"image"
	"sync"
)

// SlotState tracks one frame request.
type SlotState int

const (
	SlotPending SlotState = iota
	SlotLoaded
	SlotFailed
)

func (s SlotState) String() string {
	switch s {
	case SlotPending:
		return "pending"
	case SlotLoaded:
		return "loaded"
	case SlotFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Failure records a frame that could not be opened or decoded.
type Failure struct {
	Index int // 1-based frame number
	Path  string
	Err   error
}

// Set is the frame set shared between loader goroutines and the tick loop.
// Slot i holds frame i+1. Each slot resolves at most once; the loaded count
// never decreases and failures are kept in completion order.
type Set struct {
	mu sync.RWMutex

	total       int
	images      []image.Image
	states      []SlotState
	loadedCount int
	failures    []Failure
	firstLoaded string
}

// NewSet creates an empty set expecting total frames. Negative totals are
// treated as zero.
func NewSet(total int) *Set {
	if total < 0 {
		total = 0
	}
	return &Set{
		total:  total,
		images: make([]image.Image, total),
		states: make([]SlotState, total),
	}
}

// Total is the fixed number of expected frames.
func (s *Set) Total() int {
	if s == nil {
		return 0
	}
	return s.total
}

// MarkLoaded stores img for the 1-based index. It reports false, changing
// nothing, if the index is out of range, the slot is already resolved, or img
// is nil.
func (s *Set) MarkLoaded(index int, img image.Image, path string) bool {
	if s == nil || img == nil {
		return false
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	slot := index - 1
	if slot < 0 || slot >= s.total || s.states[slot] != SlotPending {
		return false
	}
	s.images[slot] = img
	s.states[slot] = SlotLoaded
	s.loadedCount++
	if s.firstLoaded == "" {
		s.firstLoaded = path
	}
	return true
}

// MarkFailed appends a failure for the 1-based index. Same resolution rules as
// MarkLoaded.
func (s *Set) MarkFailed(index int, path string, err error) bool {
	if s == nil {
		return false
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	slot := index - 1
	if slot < 0 || slot >= s.total || s.states[slot] != SlotPending {
		return false
	}
	s.states[slot] = SlotFailed
	s.failures = append(s.failures, Failure{Index: index, Path: path, Err: err})
	return true
}

func (s *Set) LoadedCount() int {
	if s == nil {
		return 0
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loadedCount
}

// PendingCount is the number of requests that have not resolved yet.
func (s *Set) PendingCount() int {
	if s == nil {
		return 0
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.total - s.loadedCount - len(s.failures)
}

// Ready reports whether every expected frame loaded. A set of zero frames is
// ready immediately. Failures never make a set ready.
func (s *Set) Ready() bool {
	if s == nil {
		return false
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loadedCount == s.total
}

// FailedPaths returns failed paths in completion order.
func (s *Set) FailedPaths() []string {
	if s == nil {
		return nil
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]string, 0, len(s.failures))
	for _, f := range s.failures {
		out = append(out, f.Path)
	}
	return out
}

// FirstFailure returns the earliest-arriving failure.
func (s *Set) FirstFailure() (Failure, bool) {
	if s == nil {
		return Failure{}, false
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	if len(s.failures) == 0 {
		return Failure{}, false
	}
	return s.failures[0], true
}

// FirstLoadedPath is the first path that loaded successfully, if any.
func (s *Set) FirstLoadedPath() string {
	if s == nil {
		return ""
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.firstLoaded
}

// State returns the state of the 1-based index.
func (s *Set) State(index int) SlotState {
	if s == nil {
		return SlotPending
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	slot := index - 1
	if slot < 0 || slot >= s.total {
		return SlotPending
	}
	return s.states[slot]
}

// Image returns the decoded image in the 0-based slot, or nil.
func (s *Set) Image(slot int) image.Image {
	if s == nil {
		return nil
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	if slot < 0 || slot >= s.total {
		return nil
	}
	return s.images[slot]
}

// Snapshot is a consistent copy of the set's counters for one tick.
type Snapshot struct {
	Total        int
	Loaded       int
	Pending      int
	FailedCount  int
	FirstFailure *Failure
	FirstLoaded  string
}

func (s Snapshot) Ready() bool {
	return s.Loaded == s.Total
}

func (s *Set) Snapshot() Snapshot {
	if s == nil {
		return Snapshot{}
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	snap := Snapshot{
		Total:       s.total,
		Loaded:      s.loadedCount,
		Pending:     s.total - s.loadedCount - len(s.failures),
		FailedCount: len(s.failures),
		FirstLoaded: s.firstLoaded,
	}
	if len(s.failures) > 0 {
		first := s.failures[0]
		snap.FirstFailure = &first
	}
	return snap
}
