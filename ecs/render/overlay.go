package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

// LineHeight is the advance between overlay lines at scale 1.
const LineHeight = 16

var overlayFace ebtext.Face = ebtext.NewGoXFace(basicfont.Face7x13)

// Face is the overlay font. basicfont only covers ASCII.
func Face() ebtext.Face {
	return overlayFace
}

// CenteredText draws s centered on (x, y), scaled by scale.
func CenteredText(dst *ebiten.Image, s string, x, y, scale float64, clr color.Color) {
	if dst == nil || s == "" {
		return
	}
	if scale <= 0 {
		scale = 1
	}
	op := &ebtext.DrawOptions{}
	op.PrimaryAlign = ebtext.AlignCenter
	op.SecondaryAlign = ebtext.AlignCenter
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	ebtext.Draw(dst, s, overlayFace, op)
}

// Panel fills a translucent rectangle.
func Panel(dst *ebiten.Image, x, y, w, h float64, clr color.Color) {
	if dst == nil || w <= 0 || h <= 0 {
		return
	}
	vector.FillRect(dst, float32(x), float32(y), float32(w), float32(h), clr, false)
}
