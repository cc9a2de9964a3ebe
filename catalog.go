package starscroll

import (
	"errors"
	"fmt"
	"image"
	_ "image/png"
	"io/fs"
	"time"

	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
	billy "gopkg.in/src-d/go-billy.v4"
	"gopkg.in/src-d/go-billy.v4/osfs"
)

// Catalog owns every loaded SpriteSheet and hands out regions cut from them.
// All file access and decoding happens in LoadCatalog; afterwards the catalog
// is read-only.
type Catalog struct {
	dir     string
	sheets  map[string]*SpriteSheet
	names   []string
	regions map[string]SpriteRegion
}

// LoadCatalog checks that every named sheet exists in dir on fsys and then
// decodes each one. The existence check runs over all names before anything
// is opened, so a missing file aborts the load before any decoding happens.
// A missing file yields a *MissingAssetError; a file that fails to open or
// decode yields a *DecodeError.
func LoadCatalog(fsys billy.Basic, dir string, names ...string) (*Catalog, error) {
	for _, name := range names {
		if _, err := fsys.Stat(fsys.Join(dir, name)); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return nil, &MissingAssetError{Name: name, Dir: displayDir(dir)}
			}
			return nil, &DecodeError{Name: name, Err: err}
		}
	}

	c := &Catalog{
		dir:     dir,
		sheets:  make(map[string]*SpriteSheet, len(names)),
		regions: make(map[string]SpriteRegion),
	}
	for _, name := range names {
		if _, ok := c.sheets[name]; ok {
			continue
		}
		t0 := time.Now()
		sheet, err := loadSheet(fsys, fsys.Join(dir, name), name)
		if err != nil {
			c.Dispose()
			return nil, err
		}
		c.sheets[name] = sheet
		c.names = append(c.names, name)
		Logger().Debug("starscroll: sheet loaded",
			"name", name, "width", sheet.w, "height", sheet.h, "took", time.Since(t0))
	}
	Logger().Info("starscroll: catalog ready", "dir", displayDir(dir), "sheets", len(c.names))
	return c, nil
}

// OpenCatalog loads the named sheets from a directory on the local disk.
func OpenCatalog(dir string, names ...string) (*Catalog, error) {
	c, err := LoadCatalog(osfs.New(dir), "", names...)
	if err != nil {
		var missing *MissingAssetError
		if errors.As(err, &missing) {
			missing.Dir = dir
		}
		return nil, err
	}
	c.dir = dir
	return c, nil
}

func loadSheet(fsys billy.Basic, path, name string) (*SpriteSheet, error) {
	f, err := fsys.Open(path)
	if err != nil {
		return nil, &DecodeError{Name: name, Err: err}
	}
	defer f.Close()

	img, src, err := ebitenutil.NewImageFromReader(f)
	if err != nil {
		return nil, &DecodeError{Name: name, Err: err}
	}
	sheet := newSpriteSheet(name, src)
	sheet.img = img
	return sheet, nil
}

func displayDir(dir string) string {
	if dir == "" {
		return "."
	}
	return dir
}

// Dir returns the directory the catalog was loaded from.
func (c *Catalog) Dir() string { return displayDir(c.dir) }

// Names returns the loaded sheet names in load order. The returned slice
// MUST NOT be mutated.
func (c *Catalog) Names() []string { return c.names }

// Sheet returns the sheet loaded under name.
func (c *Catalog) Sheet(name string) (*SpriteSheet, error) {
	if s, ok := c.sheets[name]; ok {
		return s, nil
	}
	return nil, &UnknownAssetError{Name: name}
}

// Region cuts the rectangle (x, y, w, h) from the named sheet.
func (c *Catalog) Region(sheet string, x, y, w, h int) (SpriteRegion, error) {
	s, err := c.Sheet(sheet)
	if err != nil {
		return SpriteRegion{}, err
	}
	return s.Region(x, y, w, h)
}

// MustRegion is like Region but panics on error. Use it for coordinates that
// are compiled into the game.
func (c *Catalog) MustRegion(sheet string, x, y, w, h int) SpriteRegion {
	r, err := c.Region(sheet, x, y, w, h)
	if err != nil {
		panic(err)
	}
	return r
}

// TileSet cuts one w×h tile per origin from the named sheet.
func (c *Catalog) TileSet(sheet string, w, h int, origins ...image.Point) (*TileSet, error) {
	regions := make([]SpriteRegion, 0, len(origins))
	for _, o := range origins {
		r, err := c.Region(sheet, o.X, o.Y, w, h)
		if err != nil {
			return nil, err
		}
		regions = append(regions, r)
	}
	return NewTileSet(regions...)
}

// Grid cuts tiles addressed by cell index on a uniform cellW×cellH grid.
// Cell (2, 1) on a 128×256 grid is the tile at pixel (256, 256).
func (c *Catalog) Grid(sheet string, cellW, cellH int, cells ...image.Point) (*TileSet, error) {
	if cellW <= 0 || cellH <= 0 {
		return nil, &InvalidTileSetError{Reason: fmt.Sprintf("grid cell size %dx%d", cellW, cellH)}
	}
	origins := make([]image.Point, len(cells))
	for i, cell := range cells {
		origins[i] = image.Pt(cell.X*cellW, cell.Y*cellH)
	}
	return c.TileSet(sheet, cellW, cellH, origins...)
}

// BackgroundTiles returns the star-field tiles of the backgrounds sheet.
func (c *Catalog) BackgroundTiles() (*TileSet, error) {
	return c.TileSet(SheetBackgrounds, BackgroundTileWidth, BackgroundTileHeight, BackgroundTileOrigins...)
}

// Dispose releases the GPU copies of every sheet. The catalog must not be
// used afterwards.
func (c *Catalog) Dispose() {
	for _, s := range c.sheets {
		if s.img != nil {
			s.img.Deallocate()
			s.img = nil
		}
	}
	c.sheets = nil
	c.regions = nil
}
