package starscroll

import (
	"fmt"
	"image"
	"image/png"
	"strings"

	"go.uber.org/multierr"
	billy "gopkg.in/src-d/go-billy.v4"
)

// RenderFrame draws the visible window of bg (ScreenWidth × ScreenHeight)
// into a new CPU image at the current offset.
func RenderFrame(bg *Background) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, bg.ScreenWidth(), bg.ScreenHeight()))
	bg.DrawTo(img)
	return img
}

// SaveFrame renders the visible window of bg and writes it as a PNG file
// named <label>_<offset>.png in dir on fsys. It returns the written path.
func SaveFrame(fsys billy.Filesystem, bg *Background, dir, label string) (string, error) {
	if dir != "" {
		if err := fsys.MkdirAll(dir, 0o755); err != nil {
			return "", fmt.Errorf("starscroll: frame: mkdir %s: %w", dir, err)
		}
	}
	path := fsys.Join(dir, fmt.Sprintf("%s_%04d.png", sanitizeLabel(label), int(bg.Offset())))
	if err := writePNG(fsys, path, RenderFrame(bg)); err != nil {
		return "", fmt.Errorf("starscroll: frame: %w", err)
	}
	Logger().Debug("starscroll: frame saved", "path", path)
	return path, nil
}

// writePNG encodes an image to a PNG file at the given path.
func writePNG(fsys billy.Basic, path string, img image.Image) (err error) {
	f, err := fsys.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer func() { err = multierr.Append(err, f.Close()) }()

	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return nil
}

// sanitizeLabel replaces characters that are unsafe in file names with
// underscores and falls back to "frame" for empty strings.
func sanitizeLabel(label string) string {
	label = strings.TrimSpace(label)
	if label == "" {
		return "frame"
	}
	var b strings.Builder
	b.Grow(len(label))
	for _, r := range label {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z',
			r >= '0' && r <= '9', r == '-', r == '.':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	return b.String()
}
