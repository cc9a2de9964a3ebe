package starscroll

import (
	"errors"
	"fmt"
	"image"
)

// SetupDoc is the document a user is pointed at when assets are missing.
const SetupDoc = "README.md"

// ErrInvalidSize is returned when a background is requested with a
// non-positive screen size.
var ErrInvalidSize = errors.New("starscroll: invalid screen size")

// MissingAssetError reports a required sheet that is not present in the
// asset directory. It is fatal: nothing may be rendered without it.
type MissingAssetError struct {
	Name string // file name of the missing sheet
	Dir  string // directory that was searched
}

func (e *MissingAssetError) Error() string {
	return fmt.Sprintf("starscroll: %s is not in the `%s/` directory. Follow the instructions in %s to resolve this",
		e.Name, e.Dir, SetupDoc)
}

// UnknownAssetError reports a lookup of a sheet or named region that was
// never loaded.
type UnknownAssetError struct {
	Name string
}

func (e *UnknownAssetError) Error() string {
	return fmt.Sprintf("starscroll: unknown asset %q", e.Name)
}

// OutOfBoundsError reports a region rectangle that does not lie fully inside
// its sheet.
type OutOfBoundsError struct {
	Sheet  string
	Rect   image.Rectangle
	Bounds image.Rectangle
}

func (e *OutOfBoundsError) Error() string {
	return fmt.Sprintf("starscroll: region %v exceeds bounds %v of sheet %q", e.Rect, e.Bounds, e.Sheet)
}

// InvalidTileSetError reports a tile set that cannot be used to compose a
// background: empty, mixed tile sizes, or a selector that picked a tile
// outside the set.
type InvalidTileSetError struct {
	Reason string
}

func (e *InvalidTileSetError) Error() string {
	return "starscroll: invalid tile set: " + e.Reason
}

// DecodeError reports a sheet that exists but could not be read or decoded.
type DecodeError struct {
	Name string
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("starscroll: failed to load %s: %v", e.Name, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}
