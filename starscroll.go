package starscroll

import (
	"image"
	"image/color"
)

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
// Premultiplication occurs when the color is written into a surface.
type Color struct {
	R, G, B, A float64
}

// ColorBlack is opaque black, the clear color of a freshly composed surface.
var ColorBlack = Color{0, 0, 0, 1}

// ColorTransparent leaves untouched cells fully transparent.
var ColorTransparent = Color{}

// toRGBA converts a Color to a premultiplied color.RGBA.
func (c Color) toRGBA() color.RGBA {
	return color.RGBA{
		R: uint8(clamp01(c.R*c.A) * 255),
		G: uint8(clamp01(c.G*c.A) * 255),
		B: uint8(clamp01(c.B*c.A) * 255),
		A: uint8(clamp01(c.A) * 255),
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Space Shooter asset pack sheet names, as expected in the assets directory.
const (
	SheetBackgrounds   = "SpaceShooterAssetPack_BackGrounds.png"
	SheetCharacters    = "SpaceShooterAssetPack_Characters.png"
	SheetShips         = "SpaceShooterAssetPack_Ships.png"
	SheetProjectiles   = "SpaceShooterAssetPack_Projectiles.png"
	SheetMiscellaneous = "SpaceShooterAssetPack_Miscellaneous.png"
	SheetUI            = "SpaceShooterAssetPack_IU.png"
)

// DefaultAssetDir is the directory the sheets are expected in, relative to
// the working directory.
const DefaultAssetDir = "assets"

// DefaultAssets lists every sheet a full game needs, in check order.
var DefaultAssets = []string{
	SheetBackgrounds,
	SheetCharacters,
	SheetShips,
	SheetProjectiles,
	SheetMiscellaneous,
	SheetUI,
}

// Background tile geometry on SheetBackgrounds.
const (
	BackgroundTileWidth  = 128
	BackgroundTileHeight = 256
)

// BackgroundTileOrigins are the top-left corners of the star-field tiles
// used for the scrolling background.
var BackgroundTileOrigins = []image.Point{{0, 0}, {128, 256}, {256, 256}}

