package system

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/scrubber/common"
	"github.com/milk9111/scrubber/ecs"
	"github.com/milk9111/scrubber/ecs/component"
	"github.com/milk9111/scrubber/ecs/render"
	"github.com/milk9111/scrubber/frames"
	"golang.org/x/image/colornames"
)

const (
	bannerHeight = 64
	hudHeight    = 64
)

var (
	bannerColor = color.NRGBA{A: 160}
	hudColor    = color.NRGBA{A: 120}
	textColor   = colornames.White
)

// BannerLines is the debug banner shown in both modes.
func BannerLines(surface component.Surface, snap frames.Snapshot, pattern frames.Pattern) []string {
	return []string{
		fmt.Sprintf("Canvas: %dx%d | Loaded: %d/%d | Fail: %d",
			int(surface.Width), int(surface.Height), snap.Loaded, snap.Total, snap.FailedCount),
		pattern.String(),
	}
}

// LoadingLines is the body of the loading view.
func LoadingLines(snap frames.Snapshot, pattern frames.Pattern) []string {
	lines := []string{
		fmt.Sprintf("Loading %d/%d...", snap.Loaded, snap.Total),
		fmt.Sprintf("Expecting: %s ...", pattern.Example()),
	}
	if snap.Pending > 0 && snap.FailedCount > 0 {
		lines = append(lines, fmt.Sprintf("%d still pending", snap.Pending))
	}
	return lines
}

// StatusLine names the playback direction and the 1-based frame.
func StatusLine(holding bool, displayIndex, total int) string {
	if total <= 0 || displayIndex < 0 {
		return "no frames configured (total=0)"
	}
	mode := "REVERSE (release)"
	if holding {
		mode = "FORWARD (hold)"
	}
	return fmt.Sprintf("%s - frame %d/%d", mode, displayIndex+1, total)
}

// RenderSystem draws the loading or playing view chosen by ModeSystem.
type RenderSystem struct {
	cache  *render.FrameCache
	margin float64
}

func NewRenderSystem(margin float64) *RenderSystem {
	if margin <= 0 || margin > 1 {
		margin = 0.92
	}
	return &RenderSystem{cache: render.NewFrameCache(), margin: margin}
}

func (r *RenderSystem) Draw(w *ecs.World, screen *ebiten.Image) {
	if r == nil || w == nil || screen == nil {
		return
	}

	ent, strip, ok := ecs.FirstComponent(w, component.FrameStripComponent.Kind())
	if !ok {
		return
	}
	surface := component.Surface{
		Width:  float64(screen.Bounds().Dx()),
		Height: float64(screen.Bounds().Dy()),
	}
	if s, ok := ecs.Get(w, ent, component.SurfaceComponent.Kind()); ok && s.Width > 0 && s.Height > 0 {
		surface = *s
	}

	screen.Fill(color.Black)

	snap := strip.Set.Snapshot()
	mode := component.ModeLoading
	if m, ok := ecs.Get(w, ent, component.RenderModeComponent.Kind()); ok {
		mode = m.Mode
	}

	switch mode {
	case component.ModePlaying:
		r.drawPlaying(w, ent, strip, surface, screen)
	default:
		r.drawLoading(w, ent, snap, strip.Pattern, surface, screen)
	}

	r.drawBanner(snap, strip.Pattern, surface, screen)
}

func (r *RenderSystem) drawBanner(snap frames.Snapshot, pattern frames.Pattern, surface component.Surface, screen *ebiten.Image) {
	render.Panel(screen, 0, 0, surface.Width, bannerHeight, bannerColor)
	for i, line := range BannerLines(surface, snap, pattern) {
		render.CenteredText(screen, line, surface.Width/2, 20+float64(i)*24, 1, textColor)
	}
}

func (r *RenderSystem) drawLoading(w *ecs.World, ent ecs.Entity, snap frames.Snapshot, pattern frames.Pattern, surface component.Surface, screen *ebiten.Image) {
	cx, cy := surface.Width/2, surface.Height/2
	lines := LoadingLines(snap, pattern)
	render.CenteredText(screen, lines[0], cx, cy-10, 1.4, textColor)
	for i, line := range lines[1:] {
		render.CenteredText(screen, line, cx, cy+18+float64(i)*render.LineHeight, 1, textColor)
	}

	diag, ok := ecs.Get(w, ent, component.DiagnosticsComponent.Kind())
	if !ok {
		return
	}
	y := cy + 18 + float64(len(lines))*render.LineHeight
	for _, notice := range diag.DiskNotices {
		render.CenteredText(screen, notice, cx, y, 1, colornames.Khaki)
		y += render.LineHeight
	}
	if diag.ClipboardStatus != "" {
		render.CenteredText(screen, diag.ClipboardStatus, cx, y, 1, colornames.Lightgreen)
	}
}

func (r *RenderSystem) drawPlaying(w *ecs.World, ent ecs.Entity, strip *component.FrameStrip, surface component.Surface, screen *ebiten.Image) {
	pb, ok := ecs.Get(w, ent, component.PlaybackComponent.Kind())
	if !ok {
		return
	}
	holding := false
	if hold, ok := ecs.Get(w, ent, component.HoldComponent.Kind()); ok {
		holding = hold.Holding
	}
	total := strip.Set.Total()

	if img := r.cache.Image(strip.Set, pb.DisplayIndex); img != nil {
		b := img.Bounds()
		fit := common.FitRect(surface.Width, surface.Height, float64(b.Dx()), float64(b.Dy()), r.margin)
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(fit.Scale, fit.Scale)
		op.GeoM.Translate(fit.X, fit.Y)
		op.Filter = ebiten.FilterLinear
		screen.DrawImage(img, op)
	}

	render.Panel(screen, 0, surface.Height-hudHeight, surface.Width, hudHeight, hudColor)
	render.CenteredText(screen, StatusLine(holding, pb.DisplayIndex, total), surface.Width/2, surface.Height-hudHeight/2, 1, textColor)
}
