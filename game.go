package main

import (
	"fmt"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/scrubber/config"
	"github.com/milk9111/scrubber/ecs"
	"github.com/milk9111/scrubber/ecs/component"
	"github.com/milk9111/scrubber/ecs/entity"
	"github.com/milk9111/scrubber/ecs/system"
	"github.com/milk9111/scrubber/frames"
	"github.com/milk9111/scrubber/logger"
)

// GameOptions carries the optional collaborators of a Game.
type GameOptions struct {
	Input     system.HoldInput
	Watcher   *frames.Watcher
	Clipboard system.ClipboardWriter
	Log       *logger.Logger
}

type Game struct {
	world     *ecs.World
	scrubber  ecs.Entity
	scheduler *ecs.Scheduler
	render    *system.RenderSystem
	panel     *system.FailurePanelSystem
}

func NewGame(cfg config.Config, set *frames.Set, opts GameOptions) (*Game, error) {
	world := ecs.NewWorld()
	scrubber, err := entity.NewScrubber(world, cfg, set)
	if err != nil {
		return nil, fmt.Errorf("game: %w", err)
	}

	panel := system.NewFailurePanelSystem()
	scheduler := ecs.NewScheduler(
		system.NewHoldInputSystem(opts.Input, opts.Log),
		system.NewModeSystem(opts.Log),
		system.NewPlaybackSystem(),
		system.NewClipboardSystem(opts.Clipboard, opts.Log),
		panel,
	)
	if opts.Watcher != nil {
		scheduler.Add(system.NewDiskWatchSystem(opts.Watcher.Events, opts.Watcher.Errors, opts.Log))
	}

	return &Game{
		world:     world,
		scrubber:  scrubber,
		scheduler: scheduler,
		render:    system.NewRenderSystem(cfg.Display.FitMargin),
		panel:     panel,
	}, nil
}

func (g *Game) Update() error {
	g.scheduler.Update(g.world)
	g.panel.UpdateUI()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.render.Draw(g.world, screen)
	g.panel.Draw(screen)
}

// LayoutF makes the logical screen track the window, so a resize only changes
// the surface size.
func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	if s, ok := ecs.Get(g.world, g.scrubber, component.SurfaceComponent.Kind()); ok {
		s.Width = outsideWidth
		s.Height = outsideHeight
	}
	return outsideWidth, outsideHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	w, h := g.LayoutF(float64(outsideWidth), float64(outsideHeight))
	return int(math.Ceil(w)), int(math.Ceil(h))
}
