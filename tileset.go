package starscroll

import "fmt"

// TileSet is an ordered list of equally sized regions used to tile a
// background.
type TileSet struct {
	tiles []SpriteRegion
	w, h  int
}

// NewTileSet builds a tile set from one or more regions that all share the
// same width and height.
func NewTileSet(tiles ...SpriteRegion) (*TileSet, error) {
	if len(tiles) == 0 {
		return nil, &InvalidTileSetError{Reason: "no tiles"}
	}
	w, h := tiles[0].Width(), tiles[0].Height()
	if w <= 0 || h <= 0 || tiles[0].sheet == nil {
		return nil, &InvalidTileSetError{Reason: "tile 0 is empty"}
	}
	for i, t := range tiles[1:] {
		if t.Width() != w || t.Height() != h {
			return nil, &InvalidTileSetError{
				Reason: fmt.Sprintf("tile %d is %dx%d, want %dx%d", i+1, t.Width(), t.Height(), w, h),
			}
		}
		if t.sheet == nil {
			return nil, &InvalidTileSetError{Reason: fmt.Sprintf("tile %d is empty", i+1)}
		}
	}
	ts := &TileSet{tiles: make([]SpriteRegion, len(tiles)), w: w, h: h}
	copy(ts.tiles, tiles)
	return ts, nil
}

// Len returns the number of tiles.
func (ts *TileSet) Len() int { return len(ts.tiles) }

// Tile returns the i-th tile.
func (ts *TileSet) Tile(i int) SpriteRegion { return ts.tiles[i] }

// TileWidth returns the shared tile width.
func (ts *TileSet) TileWidth() int { return ts.w }

// TileHeight returns the shared tile height.
func (ts *TileSet) TileHeight() int { return ts.h }

// validate re-checks the invariants for a tile set that may have been
// constructed as a zero value rather than through NewTileSet.
func (ts *TileSet) validate() error {
	if ts == nil || len(ts.tiles) == 0 {
		return &InvalidTileSetError{Reason: "no tiles"}
	}
	for i, t := range ts.tiles {
		if t.Width() != ts.w || t.Height() != ts.h || ts.w <= 0 || ts.h <= 0 {
			return &InvalidTileSetError{
				Reason: fmt.Sprintf("tile %d is %dx%d, want %dx%d", i, t.Width(), t.Height(), ts.w, ts.h),
			}
		}
	}
	return nil
}
