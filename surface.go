package starscroll

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/draw"
)

// Surface is an owned pixel buffer that regions are composed into. The CPU
// copy is authoritative; the GPU copy is uploaded on demand by Image and
// refreshed only after the pixels change.
type Surface struct {
	pix  *image.RGBA
	w, h int

	img   *ebiten.Image
	dirty bool
}

// NewSurface allocates a transparent w×h surface.
func NewSurface(w, h int) *Surface {
	return &Surface{
		pix:   image.NewRGBA(image.Rect(0, 0, w, h)),
		w:     w,
		h:     h,
		dirty: true,
	}
}

// Width returns the surface width in pixels.
func (s *Surface) Width() int {
	return s.w
}

// Height returns the surface height in pixels.
func (s *Surface) Height() int {
	return s.h
}

// Pixels returns the CPU pixel buffer. Callers must not write to it; use
// DrawRegion or Fill so the GPU copy stays in sync.
func (s *Surface) Pixels() *image.RGBA {
	return s.pix
}

// Clear fills the surface with transparent black.
func (s *Surface) Clear() {
	s.Fill(ColorTransparent)
}

// Fill fills the entire surface with the given color.
func (s *Surface) Fill(c Color) {
	draw.Draw(s.pix, s.pix.Bounds(), image.NewUniform(c.toRGBA()), image.Point{}, draw.Src)
	s.dirty = true
}

// DrawRegion composites region r onto the surface with its top-left corner
// at (x, y). Parts falling outside the surface are clipped.
func (s *Surface) DrawRegion(r SpriteRegion, x, y int) {
	if r.sheet == nil {
		return
	}
	draw.Copy(s.pix, image.Pt(x, y), r.sheet.src, r.sourceRect(), draw.Over, nil)
	s.dirty = true
}

// Image returns the surface as an *ebiten.Image, uploading pending pixel
// changes first.
func (s *Surface) Image() *ebiten.Image {
	switch {
	case s.img == nil:
		s.img = ebiten.NewImageFromImage(s.pix)
	case s.dirty:
		s.img.WritePixels(s.pix.Pix)
	}
	s.dirty = false
	return s.img
}

// Dispose deallocates the GPU copy. The Surface should not be used after
// calling Dispose.
func (s *Surface) Dispose() {
	if s.img != nil {
		s.img.Deallocate()
		s.img = nil
	}
	s.dirty = true
}
