package system

import (
	"image/color"
	"slices"

	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/milk9111/scrubber/ecs"
	"github.com/milk9111/scrubber/ecs/component"
	"github.com/milk9111/scrubber/ecs/render"
	"github.com/milk9111/scrubber/frames"
)

const failureHint = "Check folder name / prefix / zero padding / extension / case."

// FailureLines is the content of the failure panel: a heading, the first
// failed path, the naming pattern and a hint. Empty when nothing failed.
func FailureLines(snap frames.Snapshot, pattern frames.Pattern) []string {
	if snap.FirstFailure == nil {
		return nil
	}
	return []string{
		"Some frames failed to load. First missing path:",
		snap.FirstFailure.Path,
		pattern.String(),
		failureHint,
	}
}

// FailurePanelSystem shows the first load failure in an ebitenui panel while
// the loading view is up. It never affects mode or playback. Update only
// decides what to show; the widgets are built on the first UpdateUI or Draw so
// the decision runs without a graphics context.
type FailurePanelSystem struct {
	labels  []string
	visible bool
	dirty   bool
	view    *failurePanelView
}

type failurePanelView struct {
	ui    *ebitenui.UI
	panel *widget.Container
	lines []*widget.Text
}

func NewFailurePanelSystem() *FailurePanelSystem {
	return &FailurePanelSystem{}
}

func newFailurePanelView() *failurePanelView {
	face := render.Face()
	white := color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}

	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(imageui.NewNineSliceColor(color.NRGBA{R: 180, A: 160})),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(8),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 16, Bottom: 16, Left: 20, Right: 20}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionEnd,
				StretchHorizontal:  true,
				Padding:            &widget.Insets{Left: 24, Right: 24, Bottom: 96},
			}),
		),
	)

	v := &failurePanelView{panel: panel}
	for range 4 {
		t := newPanelText(&face, white)
		v.lines = append(v.lines, t)
		panel.AddChild(t)
	}

	root := widget.NewContainer(widget.ContainerOpts.Layout(widget.NewAnchorLayout()))
	root.AddChild(panel)
	v.ui = &ebitenui.UI{Container: root}
	return v
}

func newPanelText(face *ebtext.Face, clr color.Color) *widget.Text {
	return widget.NewText(
		widget.TextOpts.Text("", face, clr),
		widget.TextOpts.Position(widget.TextPositionCenter, widget.TextPositionCenter),
		widget.TextOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.RowLayoutData{
			Position: widget.RowLayoutPositionCenter,
			Stretch:  true,
		})),
	)
}

// Visible reports whether the panel was shown on the last update.
func (s *FailurePanelSystem) Visible() bool {
	return s != nil && s.visible
}

// Labels returns the current panel text, top to bottom. It is empty while the
// panel is hidden.
func (s *FailurePanelSystem) Labels() []string {
	if s == nil {
		return nil
	}
	return append([]string(nil), s.labels...)
}

func (s *FailurePanelSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}

	lines := s.currentLines(w)
	s.visible = len(lines) > 0
	if slices.Equal(lines, s.labels) {
		return
	}
	s.labels = lines
	s.dirty = true
}

// UpdateUI lets ebitenui process input and layout. Call from Game.Update.
func (s *FailurePanelSystem) UpdateUI() {
	if !s.Visible() {
		return
	}
	s.sync().ui.Update()
}

func (s *FailurePanelSystem) Draw(screen *ebiten.Image) {
	if !s.Visible() || screen == nil {
		return
	}
	s.sync().ui.Draw(screen)
}

// sync builds the widgets on first use and copies pending labels into them.
func (s *FailurePanelSystem) sync() *failurePanelView {
	if s.view == nil {
		s.view = newFailurePanelView()
		s.dirty = true
	}
	if s.dirty {
		for i, t := range s.view.lines {
			t.Label = ""
			if i < len(s.labels) {
				t.Label = s.labels[i]
			}
		}
		s.view.panel.RequestRelayout()
		s.dirty = false
	}
	return s.view
}

func (s *FailurePanelSystem) currentLines(w *ecs.World) []string {
	ent, strip, ok := ecs.FirstComponent(w, component.FrameStripComponent.Kind())
	if !ok {
		return nil
	}
	if mode, ok := ecs.Get(w, ent, component.RenderModeComponent.Kind()); !ok || mode.Mode != component.ModeLoading {
		return nil
	}
	return FailureLines(strip.Set.Snapshot(), strip.Pattern)
}
