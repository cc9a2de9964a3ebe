package starscroll

import (
	"encoding/json"
	"fmt"
)

// --- JSON structure types ---

type jsonRect struct {
	X int `json:"x"`
	Y int `json:"y"`
	W int `json:"w"`
	H int `json:"h"`
}

type jsonFrame struct {
	Frame jsonRect `json:"frame"`
}

// DefineRegions registers named regions on a loaded sheet from a
// TexturePacker-style JSON hash:
//
//	{"frames": {"ship_blue": {"frame": {"x": 8, "y": 0, "w": 8, "h": 8}}}}
//
// Every frame is bounds-checked against the sheet. Either all frames are
// registered or none are. A name that is already defined is replaced.
func (c *Catalog) DefineRegions(sheet string, manifest []byte) error {
	s, err := c.Sheet(sheet)
	if err != nil {
		return err
	}

	var doc struct {
		Frames map[string]jsonFrame `json:"frames"`
	}
	if err := json.Unmarshal(manifest, &doc); err != nil {
		return fmt.Errorf("starscroll: failed to parse region manifest for %s: %w", sheet, err)
	}
	if doc.Frames == nil {
		return fmt.Errorf("starscroll: region manifest for %s has no \"frames\" key", sheet)
	}

	parsed := make(map[string]SpriteRegion, len(doc.Frames))
	for name, f := range doc.Frames {
		r, err := s.Region(f.Frame.X, f.Frame.Y, f.Frame.W, f.Frame.H)
		if err != nil {
			return fmt.Errorf("starscroll: region %q: %w", name, err)
		}
		parsed[name] = r
	}
	for name, r := range parsed {
		c.regions[name] = r
	}
	Logger().Debug("starscroll: regions defined", "sheet", sheet, "count", len(parsed))
	return nil
}

// Named returns a region registered with DefineRegions.
func (c *Catalog) Named(name string) (SpriteRegion, error) {
	if r, ok := c.regions[name]; ok {
		return r, nil
	}
	return SpriteRegion{}, &UnknownAssetError{Name: name}
}
