package starscroll

import (
	"fmt"
	"image"
	"math"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tanema/gween/ease"
	"golang.org/x/image/draw"
)

// Target is anything the background can be drawn onto. *ebiten.Image
// satisfies it.
type Target interface {
	DrawImage(img *ebiten.Image, op *ebiten.DrawImageOptions)
}

// Background is a vertically scrolling star field. The tiles are composed
// once into a Surface whose height is padded up to a whole number of tile
// rows; each frame the surface is drawn twice, one copy directly above the
// other, so the visible window never shows a gap while the offset wraps.
type Background struct {
	screenW, screenH int
	tileW, tileH     int

	surface *Surface
	speed   float64
	offset  float64 // always in [0, surface.h)

	selector Selector
	clear    Color
	ramp     *speedRamp
}

// Option configures a Background at construction.
type Option func(*Background)

// WithSelector sets the tile selection policy. The default is
// UniformRandom(nil).
func WithSelector(sel Selector) Option {
	return func(b *Background) {
		if sel != nil {
			b.selector = sel
		}
	}
}

// WithClearColor sets the color the surface is filled with before tiling.
// The default is ColorBlack.
func WithClearColor(c Color) Option {
	return func(b *Background) { b.clear = c }
}

// WithSpeedRamp accelerates the scroll from a standstill to full speed over
// duration, measured in the unit passed to Advance. A nil fn is linear.
func WithSpeedRamp(duration float32, fn ease.TweenFunc) Option {
	return func(b *Background) {
		if duration > 0 {
			b.ramp = newSpeedRamp(duration, fn)
		}
	}
}

// NewBackground composes a screenW×screenH background from tiles and
// prepares it to scroll down by scrollSpeed pixels per unit of delta.
// A scrollSpeed of zero gives a static background.
func NewBackground(screenW, screenH int, tiles *TileSet, scrollSpeed float64, opts ...Option) (*Background, error) {
	if screenW <= 0 || screenH <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, screenW, screenH)
	}
	if err := tiles.validate(); err != nil {
		return nil, err
	}
	if math.IsNaN(scrollSpeed) || math.IsInf(scrollSpeed, 0) {
		return nil, fmt.Errorf("starscroll: scroll speed %v is not finite", scrollSpeed)
	}

	b := &Background{
		screenW:  screenW,
		screenH:  screenH,
		tileW:    tiles.TileWidth(),
		tileH:    tiles.TileHeight(),
		speed:    scrollSpeed,
		selector: UniformRandom(nil),
		clear:    ColorBlack,
	}
	for _, opt := range opts {
		opt(b)
	}

	rows := (screenH + b.tileH - 1) / b.tileH
	b.surface = NewSurface(screenW, rows*b.tileH)
	if err := b.compose(tiles); err != nil {
		return nil, err
	}
	return b, nil
}

// compose fills every tile cell of the surface. The last column is clipped
// when the screen width is not a multiple of the tile width.
func (b *Background) compose(tiles *TileSet) error {
	t0 := time.Now()
	b.surface.Fill(b.clear)

	n := tiles.Len()
	stats := composeStats{width: b.surface.w, height: b.surface.h, screenHeight: b.screenH}
	for cx, x := 0, 0; x < b.surface.w; cx, x = cx+1, x+b.tileW {
		for cy, y := 0, 0; y < b.surface.h; cy, y = cy+1, y+b.tileH {
			i := b.selector(cx, cy, n)
			if i < 0 || i >= n {
				return &InvalidTileSetError{
					Reason: fmt.Sprintf("selector picked tile %d of %d for cell (%d, %d)", i, n, cx, cy),
				}
			}
			b.surface.DrawRegion(tiles.Tile(i), x, y)
			stats.cells++
			stats.rows = cy + 1
		}
		stats.cols = cx + 1
	}

	stats.took = time.Since(t0)
	stats.debugLog()
	return nil
}

// Advance moves the background down by speed*delta pixels, wrapping the
// offset back into [0, Height()). Any delta is handled, including ones that
// wrap several times in one call and negative ones.
//
// It returns how many times the offset crossed a multiple of Height():
// positive when scrolling down, negative when scrolling up, 0 otherwise.
func (b *Background) Advance(delta float64) int {
	checkFinite("Advance", delta)
	step := b.speed * delta
	if b.ramp != nil {
		step *= b.ramp.step(delta)
	}
	h := float64(b.surface.h)
	next := b.offset + step
	b.offset = wrapOffset(next, h)
	return int(math.Floor(next / h))
}

// checkFinite panics when a per-frame input is NaN or infinite. Such a
// value can only come from a broken frame driver and would poison the
// scroll offset for good.
func checkFinite(op string, v float64) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		panic(fmt.Sprintf("starscroll: %s called with non-finite value %v", op, v))
	}
}

func wrapOffset(v, h float64) float64 {
	v = math.Mod(v, h)
	if v < 0 {
		v += h
	}
	// -ε + h rounds to h.
	if v >= h {
		v = 0
	}
	return v
}

// DrawPositions returns the vertical draw positions of the two surface
// copies: the upper copy at offset-Height() and the lower one at offset.
// Together they cover [offset-Height(), offset+Height()), which always
// contains the visible window [0, ScreenHeight()).
func (b *Background) DrawPositions() (upper, lower float64) {
	y := math.Floor(b.offset)
	return y - float64(b.surface.h), y
}

// Draw draws the background onto target at the current offset.
func (b *Background) Draw(target Target) {
	img := b.surface.Image()
	upper, lower := b.DrawPositions()

	var op0 ebiten.DrawImageOptions
	op0.GeoM.Translate(0, upper)
	target.DrawImage(img, &op0)

	var op1 ebiten.DrawImageOptions
	op1.GeoM.Translate(0, lower)
	target.DrawImage(img, &op1)
}

// DrawTo draws the background onto a CPU image, anchored at dst's top-left
// corner. It is the headless counterpart of Draw.
func (b *Background) DrawTo(dst draw.Image) {
	upper, lower := b.DrawPositions()
	origin := dst.Bounds().Min
	for _, y := range [2]int{int(upper), int(lower)} {
		r := image.Rect(0, y, b.surface.w, y+b.surface.h).Add(origin)
		draw.Draw(dst, r, b.surface.pix, image.Point{}, draw.Over)
	}
}

// Offset returns the current scroll offset in [0, Height()).
func (b *Background) Offset() float64 { return b.offset }

// Speed returns the configured scroll speed.
func (b *Background) Speed() float64 { return b.speed }

// Width returns the composed surface width, equal to the screen width.
func (b *Background) Width() int { return b.surface.w }

// Height returns the composed surface height: the screen height rounded up
// to a whole number of tile rows.
func (b *Background) Height() int { return b.surface.h }

// ScreenWidth returns the requested screen width.
func (b *Background) ScreenWidth() int { return b.screenW }

// ScreenHeight returns the requested screen height.
func (b *Background) ScreenHeight() int { return b.screenH }

// TileSize returns the tile width and height the surface was composed with.
func (b *Background) TileSize() (w, h int) { return b.tileW, b.tileH }

// Surface returns the composed surface.
func (b *Background) Surface() *Surface { return b.surface }

// Dispose releases the GPU copy of the composed surface.
func (b *Background) Dispose() { b.surface.Dispose() }

// SpeedUnit selects what one unit of Advance delta means to a host.
type SpeedUnit uint8

const (
	// PerTick advances by the speed once per Update, tied to the tick rate.
	PerTick SpeedUnit = iota
	// PerSecond treats the speed as pixels per second of game time.
	PerSecond
)

// Delta returns the Advance delta for a single ebiten Update.
func (u SpeedUnit) Delta() float64 {
	if u == PerSecond {
		return 1 / float64(ebiten.TPS())
	}
	return 1
}

func (u SpeedUnit) String() string {
	if u == PerSecond {
		return "seconds"
	}
	return "tick"
}

// ParseSpeedUnit parses "tick" or "seconds".
func ParseSpeedUnit(s string) (SpeedUnit, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "tick", "ticks":
		return PerTick, nil
	case "second", "seconds":
		return PerSecond, nil
	}
	return PerTick, fmt.Errorf("starscroll: unknown speed unit %q", s)
}
