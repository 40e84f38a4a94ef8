package system

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/scrubber/ecs"
	"github.com/milk9111/scrubber/ecs/component"
	"github.com/milk9111/scrubber/logger"
)

// HoldEvent is one hold-begin or hold-end transition from any source.
type HoldEvent struct {
	Begin  bool
	Source component.HoldSource
}

// HoldInput yields the hold transitions that arrived since the last tick, in
// the order they should be applied.
type HoldInput interface {
	HoldEvents() []HoldEvent
}

// PollInput reads touches, the left mouse button and the space key through
// ebiten. The function fields exist so tests can drive it without a window.
type PollInput struct {
	JustPressedTouches  func([]ebiten.TouchID) []ebiten.TouchID
	JustReleasedTouches func([]ebiten.TouchID) []ebiten.TouchID
	MouseJustPressed    func(ebiten.MouseButton) bool
	MouseJustReleased   func(ebiten.MouseButton) bool
	KeyJustPressed      func(ebiten.Key) bool
	KeyJustReleased     func(ebiten.Key) bool

	touches []ebiten.TouchID
}

func NewPollInput() *PollInput {
	return &PollInput{
		JustPressedTouches:  inpututil.AppendJustPressedTouchIDs,
		JustReleasedTouches: inpututil.AppendJustReleasedTouchIDs,
		MouseJustPressed:    inpututil.IsMouseButtonJustPressed,
		MouseJustReleased:   inpututil.IsMouseButtonJustReleased,
		KeyJustPressed:      inpututil.IsKeyJustPressed,
		KeyJustReleased:     inpututil.IsKeyJustReleased,
	}
}

// HoldEvents returns all begins before all ends, so a press and release inside
// one tick leaves the signal released. Ebiten does not order transitions within
// a tick, so this also holds across sources: a mouse release and a space press
// in the same tick leave the signal released even if the press came last.
func (p *PollInput) HoldEvents() []HoldEvent {
	var begins, ends []HoldEvent

	p.touches = p.JustPressedTouches(p.touches[:0])
	if len(p.touches) > 0 {
		begins = append(begins, HoldEvent{Begin: true, Source: component.HoldSourceTouch})
	}
	if p.MouseJustPressed(ebiten.MouseButtonLeft) {
		begins = append(begins, HoldEvent{Begin: true, Source: component.HoldSourceMouse})
	}
	if p.KeyJustPressed(ebiten.KeySpace) {
		begins = append(begins, HoldEvent{Begin: true, Source: component.HoldSourceKeyboard})
	}

	p.touches = p.JustReleasedTouches(p.touches[:0])
	if len(p.touches) > 0 {
		ends = append(ends, HoldEvent{Source: component.HoldSourceTouch})
	}
	if p.MouseJustReleased(ebiten.MouseButtonLeft) {
		ends = append(ends, HoldEvent{Source: component.HoldSourceMouse})
	}
	if p.KeyJustReleased(ebiten.KeySpace) {
		ends = append(ends, HoldEvent{Source: component.HoldSourceKeyboard})
	}

	return append(begins, ends...)
}

// HoldInputSystem maps hold transitions onto the Hold component. Sources are
// not counted: any begin sets the signal, any end clears it.
type HoldInputSystem struct {
	input HoldInput
	log   *logger.Logger
}

func NewHoldInputSystem(input HoldInput, log *logger.Logger) *HoldInputSystem {
	if input == nil {
		input = NewPollInput()
	}
	return &HoldInputSystem{input: input, log: log}
}

func (s *HoldInputSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	events := s.input.HoldEvents()
	if len(events) == 0 {
		return
	}

	ecs.ForEach(w, component.HoldComponent.Kind(), func(e ecs.Entity, hold *component.Hold) {
		before := hold.Holding
		for _, evt := range events {
			hold.Holding = evt.Begin
			hold.LastSource = evt.Source
		}
		if hold.Holding != before {
			s.log.Debugf("[input] holding=%v via %s", hold.Holding, hold.LastSource)
		}
	})
}
