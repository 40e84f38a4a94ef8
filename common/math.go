package common

import "math"

// Clamp limits v to [lo, hi]. When hi < lo the result is lo.
func Clamp(v, lo, hi float64) float64 {
	if v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}
	return v
}

// RoundHalfUp rounds to the nearest integer, ties toward +Inf.
func RoundHalfUp(v float64) int {
	return int(math.Floor(v + 0.5))
}

// Fit describes an image scaled to fit a surface and centered in it.
type Fit struct {
	Scale  float64
	X, Y   float64
	Width  float64
	Height float64
}

// FitRect scales an imageW x imageH image to fit inside surfaceW x surfaceH
// with the given margin factor (e.g. 0.92), preserving aspect ratio, and
// centers it. A degenerate image or surface yields a zero Fit.
func FitRect(surfaceW, surfaceH, imageW, imageH, margin float64) Fit {
	if imageW <= 0 || imageH <= 0 || surfaceW <= 0 || surfaceH <= 0 {
		return Fit{}
	}
	scale := math.Min(surfaceW*margin/imageW, surfaceH*margin/imageH)
	w := imageW * scale
	h := imageH * scale
	return Fit{
		Scale:  scale,
		X:      (surfaceW - w) / 2,
		Y:      (surfaceH - h) / 2,
		Width:  w,
		Height: h,
	}
}
