package starscroll

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
)

// SpriteSheet is a decoded sheet image. It is created by LoadCatalog and
// never mutated afterwards.
type SpriteSheet struct {
	name string
	src  image.Image
	w, h int

	// GPU copy, uploaded on first use.
	img *ebiten.Image
}

func newSpriteSheet(name string, src image.Image) *SpriteSheet {
	b := src.Bounds()
	return &SpriteSheet{name: name, src: src, w: b.Dx(), h: b.Dy()}
}

// Name returns the file name the sheet was loaded from.
func (s *SpriteSheet) Name() string { return s.name }

// Width returns the sheet width in pixels.
func (s *SpriteSheet) Width() int { return s.w }

// Height returns the sheet height in pixels.
func (s *SpriteSheet) Height() int { return s.h }

// Bounds returns the sheet rectangle in sheet coordinates, anchored at (0, 0).
func (s *SpriteSheet) Bounds() image.Rectangle { return image.Rect(0, 0, s.w, s.h) }

// Source returns the decoded image.
func (s *SpriteSheet) Source() image.Image { return s.src }

// Image returns the sheet as an *ebiten.Image. The upload happens once.
func (s *SpriteSheet) Image() *ebiten.Image {
	if s.img == nil {
		s.img = ebiten.NewImageFromImage(s.src)
	}
	return s.img
}

// Region returns the sub-rectangle (x, y, w, h) of the sheet. The rectangle
// must have a positive size and lie fully inside the sheet.
func (s *SpriteSheet) Region(x, y, w, h int) (SpriteRegion, error) {
	r := image.Rect(x, y, x+w, y+h)
	if w <= 0 || h <= 0 || !r.In(s.Bounds()) {
		return SpriteRegion{}, &OutOfBoundsError{Sheet: s.name, Rect: r, Bounds: s.Bounds()}
	}
	return SpriteRegion{sheet: s, rect: r}, nil
}

// SpriteRegion is a rectangular view into a SpriteSheet. It does not own
// pixel data. The zero value is an empty region with no sheet.
type SpriteRegion struct {
	sheet *SpriteSheet
	rect  image.Rectangle
}

// Sheet returns the sheet the region points into.
func (r SpriteRegion) Sheet() *SpriteSheet { return r.sheet }

// Rect returns the region rectangle in sheet coordinates.
func (r SpriteRegion) Rect() image.Rectangle { return r.rect }

// X returns the left edge of the region.
func (r SpriteRegion) X() int { return r.rect.Min.X }

// Y returns the top edge of the region.
func (r SpriteRegion) Y() int { return r.rect.Min.Y }

// Width returns the region width in pixels.
func (r SpriteRegion) Width() int { return r.rect.Dx() }

// Height returns the region height in pixels.
func (r SpriteRegion) Height() int { return r.rect.Dy() }

// Image returns the region as a sub-image of the sheet's *ebiten.Image.
func (r SpriteRegion) Image() *ebiten.Image {
	return r.sheet.Image().SubImage(r.rect).(*ebiten.Image)
}

// sourceRect returns the region rectangle in the decoded image's own
// coordinate space, which need not start at (0, 0).
func (r SpriteRegion) sourceRect() image.Rectangle {
	return r.rect.Add(r.sheet.src.Bounds().Min)
}
