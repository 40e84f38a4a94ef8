package system

import (
	"errors"
	"testing"

	"github.com/milk9111/scrubber/ecs/component"
	"github.com/milk9111/scrubber/frames"
)

var testPattern = frames.Pattern{Directory: "assets/frames/", Prefix: "frame_", PadWidth: 4, Extension: "png"}

func TestBannerLines(t *testing.T) {
	lines := BannerLines(component.Surface{Width: 390, Height: 844}, frames.Snapshot{Total: 19, Loaded: 17, FailedCount: 2}, testPattern)
	want := []string{
		"Canvas: 390x844 | Loaded: 17/19 | Fail: 2",
		`DIR="assets/frames/"  PREFIX="frame_"  PAD=4  EXT="png"`,
	}
	if len(lines) != len(want) {
		t.Fatalf("lines = %q", lines)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Fatalf("line %d = %q, want %q", i, lines[i], want[i])
		}
	}
}

func TestLoadingLines(t *testing.T) {
	t.Run("in_progress", func(t *testing.T) {
		lines := LoadingLines(frames.Snapshot{Total: 19, Loaded: 4, Pending: 15}, testPattern)
		if len(lines) != 2 {
			t.Fatalf("lines = %q", lines)
		}
		if lines[0] != "Loading 4/19..." || lines[1] != "Expecting: assets/frames/frame_0001.png ..." {
			t.Fatalf("lines = %q", lines)
		}
	})

	t.Run("pending_with_failures", func(t *testing.T) {
		lines := LoadingLines(frames.Snapshot{Total: 19, Loaded: 10, Pending: 8, FailedCount: 1}, testPattern)
		if len(lines) != 3 || lines[2] != "8 still pending" {
			t.Fatalf("lines = %q", lines)
		}
	})
}

func TestStatusLine(t *testing.T) {
	cases := []struct {
		name    string
		holding bool
		index   int
		total   int
		want    string
	}{
		{"forward", true, 2, 19, "FORWARD (hold) - frame 3/19"},
		{"reverse", false, 0, 19, "REVERSE (release) - frame 1/19"},
		{"last", true, 18, 19, "FORWARD (hold) - frame 19/19"},
		{"empty", true, -1, 0, "no frames configured (total=0)"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := StatusLine(c.holding, c.index, c.total); got != c.want {
				t.Fatalf("StatusLine = %q, want %q", got, c.want)
			}
		})
	}
}

func TestFailureLines(t *testing.T) {
	if lines := FailureLines(frames.Snapshot{Total: 3, Loaded: 1}, testPattern); lines != nil {
		t.Fatalf("no failure should give no lines, got %q", lines)
	}

	set := frames.NewSet(3)
	set.MarkFailed(3, "assets/frames/frame_0003.png", errors.New("404"))
	set.MarkFailed(1, "assets/frames/frame_0001.png", errors.New("404"))

	lines := FailureLines(set.Snapshot(), testPattern)
	if len(lines) != 4 {
		t.Fatalf("lines = %q", lines)
	}
	if lines[1] != "assets/frames/frame_0003.png" {
		t.Fatalf("first failure line = %q, want earliest-arriving failure", lines[1])
	}
	if lines[2] != testPattern.String() || lines[3] != failureHint {
		t.Fatalf("lines = %q", lines)
	}
}
