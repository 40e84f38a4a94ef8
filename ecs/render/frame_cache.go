package render

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/scrubber/frames"
)

// FrameCache uploads decoded frames to GPU images on first use. A slot never
// changes once loaded, so entries are never invalidated.
type FrameCache struct {
	images map[int]*ebiten.Image
}

func NewFrameCache() *FrameCache {
	return &FrameCache{images: make(map[int]*ebiten.Image)}
}

// Image returns the GPU image for the 0-based slot, or nil if the slot has not
// loaded.
func (c *FrameCache) Image(set *frames.Set, slot int) *ebiten.Image {
	if c == nil || set == nil {
		return nil
	}
	if img, ok := c.images[slot]; ok {
		return img
	}
	src := set.Image(slot)
	if src == nil {
		return nil
	}
	img := ebiten.NewImageFromImage(src)
	c.images[slot] = img
	return img
}
