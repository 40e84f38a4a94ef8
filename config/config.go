package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/milk9111/scrubber/frames"
	"gopkg.in/yaml.v3"
)

var ErrInvalid = errors.New("config: invalid")

type Config struct {
	Frames      FramesSpec      `yaml:"frames"`
	Playback    PlaybackSpec    `yaml:"playback"`
	Display     DisplaySpec     `yaml:"display"`
	Loader      LoaderSpec      `yaml:"loader"`
	Diagnostics DiagnosticsSpec `yaml:"diagnostics"`
}

// FramesSpec is the naming-pattern surface: {directory}{prefix}{index}.{extension}.
type FramesSpec struct {
	Total     int    `yaml:"total"`
	Directory string `yaml:"directory"`
	Prefix    string `yaml:"prefix"`
	PadWidth  int    `yaml:"pad_width"`
	Extension string `yaml:"extension"`
}

// PlaybackSpec speeds are in frames per tick.
type PlaybackSpec struct {
	ForwardSpeed  float64 `yaml:"forward_speed"`
	BackwardSpeed float64 `yaml:"backward_speed"`
	TickRate      int     `yaml:"tick_rate"`
}

type DisplaySpec struct {
	Title     string  `yaml:"title"`
	FitMargin float64 `yaml:"fit_margin"`
	Width     int     `yaml:"width"`
	Height    int     `yaml:"height"`
}

type LoaderSpec struct {
	Concurrency int `yaml:"concurrency"`
}

type DiagnosticsSpec struct {
	Watch bool `yaml:"watch"`
}

// Default mirrors the embedded scrubber.yaml.
func Default() Config {
	return Config{
		Frames: FramesSpec{
			Total:     19,
			Directory: "assets/frames/",
			Prefix:    "frame_",
			PadWidth:  4,
			Extension: "png",
		},
		Playback: PlaybackSpec{
			ForwardSpeed:  0.75,
			BackwardSpeed: 0.75,
			TickRate:      60,
		},
		Display: DisplaySpec{
			Title:     "scrubber",
			FitMargin: 0.92,
			Width:     720,
			Height:    1280,
		},
		Loader: LoaderSpec{Concurrency: 8},
	}
}

// LoadFile reads an explicit path from disk, or the default config (disk
// override first, then embedded) when path is empty.
func LoadFile(path string) (Config, error) {
	var (
		data []byte
		err  error
	)
	if path == "" {
		path = DefaultFile
		data, err = Load(path)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return Config{}, fmt.Errorf("config: load %s: %w", path, err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes data over Default, so omitted keys keep their defaults, and
// validates the result.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	switch {
	case c.Frames.Total < 0:
		return fmt.Errorf("%w: frames.total must be >= 0, got %d", ErrInvalid, c.Frames.Total)
	case c.Frames.PadWidth < 0:
		return fmt.Errorf("%w: frames.pad_width must be >= 0, got %d", ErrInvalid, c.Frames.PadWidth)
	case c.Frames.Extension == "":
		return fmt.Errorf("%w: frames.extension is empty", ErrInvalid)
	case c.Playback.ForwardSpeed <= 0:
		return fmt.Errorf("%w: playback.forward_speed must be > 0, got %v", ErrInvalid, c.Playback.ForwardSpeed)
	case c.Playback.BackwardSpeed <= 0:
		return fmt.Errorf("%w: playback.backward_speed must be > 0, got %v", ErrInvalid, c.Playback.BackwardSpeed)
	case c.Playback.TickRate <= 0:
		return fmt.Errorf("%w: playback.tick_rate must be > 0, got %d", ErrInvalid, c.Playback.TickRate)
	case c.Display.FitMargin <= 0 || c.Display.FitMargin > 1:
		return fmt.Errorf("%w: display.fit_margin must be in (0, 1], got %v", ErrInvalid, c.Display.FitMargin)
	case c.Loader.Concurrency <= 0:
		return fmt.Errorf("%w: loader.concurrency must be > 0, got %d", ErrInvalid, c.Loader.Concurrency)
	}
	return nil
}

// Pattern returns the frame naming pattern described by the frames section.
func (f FramesSpec) Pattern() frames.Pattern {
	return frames.Pattern{
		Directory: f.Directory,
		Prefix:    f.Prefix,
		PadWidth:  f.PadWidth,
		Extension: f.Extension,
	}
}
