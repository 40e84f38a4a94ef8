package frames

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestWatcherReportsExpectedFrames(t *testing.T) {
	dir := t.TempDir()
	p := Pattern{Directory: filepath.ToSlash(dir) + "/", Prefix: "frame_", PadWidth: 4, Extension: "png"}

	w, err := NewWatcher(p, 3)
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644); err != nil {
		t.Fatalf("write unrelated: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "frame_0002.png"), []byte("x"), 0o644); err != nil {
		t.Fatalf("write frame: %v", err)
	}

	select {
	case change := <-w.Events:
		if change.Index != 2 {
			t.Fatalf("change index = %d, want 2 (%+v)", change.Index, change)
		}
		if filepath.Base(change.Path) != "frame_0002.png" {
			t.Fatalf("change path = %q", change.Path)
		}
	case err := <-w.Errors:
		t.Fatalf("watcher error: %v", err)
	case <-time.After(5 * time.Second):
		t.Fatalf("timed out waiting for frame change")
	}
}

func TestWatcherMissingDirectory(t *testing.T) {
	p := Pattern{Directory: filepath.Join(t.TempDir(), "nope") + "/", Prefix: "f", Extension: "png"}
	if _, err := NewWatcher(p, 1); err == nil {
		t.Fatalf("expected error watching a missing directory")
	}
}

func TestWatcherPrefixWithSubdirectory(t *testing.T) {
	dir := t.TempDir()
	if err := os.Mkdir(filepath.Join(dir, "seq"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	p := Pattern{Directory: filepath.ToSlash(dir) + "/", Prefix: "seq/frame_", PadWidth: 4, Extension: "png"}

	w, err := NewWatcher(p, 3)
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(filepath.FromSlash(p.Path(2)), []byte("x"), 0o644); err != nil {
		t.Fatalf("write frame: %v", err)
	}

	select {
	case change := <-w.Events:
		if change.Index != 2 || filepath.Clean(change.Path) != filepath.Clean(filepath.FromSlash(p.Path(2))) {
			t.Fatalf("change = %+v, want frame 2 at %s", change, p.Path(2))
		}
	case err := <-w.Errors:
		t.Fatalf("watcher error: %v", err)
	case <-time.After(5 * time.Second):
		t.Fatalf("no change reported for %s", p.Path(2))
	}
}

func TestWatchDir(t *testing.T) {
	cases := []struct {
		name    string
		pattern Pattern
		want    string
	}{
		{"empty_directory", Pattern{Prefix: "frame_", Extension: "png"}, "."},
		{"trailing_slash", Pattern{Directory: "assets/frames/", Prefix: "frame_", Extension: "png"}, filepath.FromSlash("assets/frames")},
		{"no_trailing_slash", Pattern{Directory: "assets/frames", Prefix: "frame_", Extension: "png"}, "assets"},
		{"prefix_subdirectory", Pattern{Directory: "assets/", Prefix: "seq/frame_", Extension: "png"}, filepath.FromSlash("assets/seq")},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := watchDir(c.pattern); got != c.want {
				t.Fatalf("watchDir = %q, want %q", got, c.want)
			}
		})
	}
}
