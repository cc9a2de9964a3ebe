package starscroll

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	billy "gopkg.in/src-d/go-billy.v4"
	"gopkg.in/src-d/go-billy.v4/memfs"
	"gopkg.in/src-d/go-billy.v4/util"
)

// Test sheets are 384×512: a 3×2 grid of 128×256 cells, each a solid color.
const (
	testSheetW = 384
	testSheetH = 512
)

// cellColor is the solid color of grid cell (cx, cy) in a test sheet.
func cellColor(cx, cy int) color.RGBA {
	return color.RGBA{R: uint8(40 + cx*60), G: uint8(40 + cy*120), B: 200, A: 255}
}

func sheetImage(w, h, cellW, cellH int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, cellColor(x/cellW, y/cellH))
		}
	}
	return img
}

func sheetPNG(t *testing.T) []byte {
	t.Helper()
	var buf bytes.Buffer
	img := sheetImage(testSheetW, testSheetH, BackgroundTileWidth, BackgroundTileHeight)
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("png.Encode: %v", err)
	}
	return buf.Bytes()
}

// assetFS returns an in-memory filesystem holding a test sheet for every
// name under dir.
func assetFS(t *testing.T, dir string, names ...string) billy.Filesystem {
	t.Helper()
	fs := memfs.New()
	data := sheetPNG(t)
	for _, name := range names {
		if err := util.WriteFile(fs, fs.Join(dir, name), data, 0o644); err != nil {
			t.Fatalf("WriteFile %s: %v", name, err)
		}
	}
	return fs
}

func testCatalog(t *testing.T) *Catalog {
	t.Helper()
	c, err := LoadCatalog(assetFS(t, DefaultAssetDir, DefaultAssets...), DefaultAssetDir, DefaultAssets...)
	if err != nil {
		t.Fatalf("LoadCatalog: %v", err)
	}
	return c
}

func backgroundTiles(t *testing.T) *TileSet {
	t.Helper()
	tiles, err := testCatalog(t).BackgroundTiles()
	if err != nil {
		t.Fatalf("BackgroundTiles: %v", err)
	}
	return tiles
}

// countingFS counts Open calls.
type countingFS struct {
	billy.Filesystem
	opens int
}

func (c *countingFS) Open(name string) (billy.File, error) {
	c.opens++
	return c.Filesystem.Open(name)
}
