package main

import (
	"flag"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/scrubber/config"
	"github.com/milk9111/scrubber/ecs/system"
	"github.com/milk9111/scrubber/frames"
	"github.com/milk9111/scrubber/logger"
)

func main() {
	configPath := flag.String("config", "", "path to a scrubber.yaml (default: config/scrubber.yaml, then embedded)")
	debug := flag.Bool("debug", false, "enable debug logging")
	logLevel := flag.String("loglevel", "info", "log level: debug, info, warn, error, none")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	watch := flag.Bool("watch", false, "report changes to frame files on disk")
	flag.Parse()

	lg := logger.New(os.Stderr, logger.LevelFromString(*logLevel))
	if *debug {
		lg.SetLevel(logger.LevelDebug)
	}
	lg.Debugf("[log] level %s", lg.Level())

	cfg, err := config.LoadFile(*configPath)
	if err != nil {
		log.Fatal(err)
	}

	pattern := cfg.Frames.Pattern()
	set := frames.NewSet(cfg.Frames.Total)
	loader := frames.NewLoader(set, pattern,
		frames.WithConcurrency(cfg.Loader.Concurrency),
		frames.WithLogger(lg),
	)
	if err := loader.RequestAll(); err != nil {
		log.Fatal(err)
	}

	opts := GameOptions{Log: lg}
	if *watch || cfg.Diagnostics.Watch {
		w, err := frames.NewWatcher(pattern, cfg.Frames.Total)
		if err != nil {
			lg.Warnf("[watch] disabled: %v", err)
		} else {
			defer w.Close()
			opts.Watcher = w
		}
	}
	if write, err := system.SystemClipboard(); err != nil {
		lg.Warnf("[clipboard] disabled: %v", err)
	} else {
		opts.Clipboard = write
	}

	game, err := NewGame(cfg, set, opts)
	if err != nil {
		log.Fatal(err)
	}

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(cfg.Display.Width, cfg.Display.Height)
	ebiten.SetWindowTitle(cfg.Display.Title)
	ebiten.SetTPS(cfg.Playback.TickRate)

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
