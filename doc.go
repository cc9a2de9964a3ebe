// Package starscroll loads sprite sheets and renders the scrolling star-field
// background of a 2D space shooter on [Ebitengine].
//
// # Assets
//
// A [Catalog] checks that every required sheet is present, decodes each one
// once, and cuts rectangular regions out of them:
//
//	catalog, err := starscroll.OpenCatalog("assets", starscroll.DefaultAssets...)
//	if err != nil {
//		log.Fatal(err) // *MissingAssetError names the file and the setup doc
//	}
//	ship, err := catalog.Region(starscroll.SheetShips, 8, 0, 8, 8)
//
// Regions can also be named through a TexturePacker-style manifest, see
// [Catalog.DefineRegions].
//
// # Background
//
// A [Background] composes a surface from a [TileSet] once, then scrolls it
// each frame:
//
//	tiles, _ := catalog.BackgroundTiles()
//	bg, err := starscroll.NewBackground(1280, 720, tiles, 1)
//
//	func (g *Game) Update() error        { g.bg.Advance(1); return nil }
//	func (g *Game) Draw(s *ebiten.Image) { g.bg.Draw(s) }
//
// The surface height is padded to whole tile rows and drawn twice, at
// offset-height and at offset, so the wrap never shows a seam. Tile choice
// is a [Selector]: [UniformRandom] for play, [Deterministic] or [Seeded]
// for reproducible builds.
//
// For headless rendering use [Background.DrawTo], [RenderFrame] and
// [SaveFrame].
//
// [Ebitengine]: https://ebitengine.org
package starscroll
