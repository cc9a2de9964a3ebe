package starscroll

import (
	"errors"
	"testing"
)

const shipsManifest = `{
  "frames": {
    "ship_blue": {"frame": {"x": 8, "y": 0, "w": 8, "h": 8}},
    "ship_red":  {"frame": {"x": 8, "y": 8, "w": 8, "h": 8}},
    "hull":      {"frame": {"x": 0, "y": 256, "w": 128, "h": 256}}
  },
  "meta": {"image": "SpaceShooterAssetPack_Ships.png"}
}`

func TestDefineRegions_Lookup(t *testing.T) {
	c := testCatalog(t)
	if err := c.DefineRegions(SheetShips, []byte(shipsManifest)); err != nil {
		t.Fatalf("DefineRegions: %v", err)
	}

	tests := []struct {
		name       string
		x, y, w, h int
	}{
		{"ship_blue", 8, 0, 8, 8},
		{"ship_red", 8, 8, 8, 8},
		{"hull", 0, 256, 128, 256},
	}
	for _, tt := range tests {
		r, err := c.Named(tt.name)
		if err != nil {
			t.Fatalf("Named(%q): %v", tt.name, err)
		}
		if r.X() != tt.x || r.Y() != tt.y || r.Width() != tt.w || r.Height() != tt.h {
			t.Errorf("%s = {%d %d %d %d}, want {%d %d %d %d}", tt.name,
				r.X(), r.Y(), r.Width(), r.Height(), tt.x, tt.y, tt.w, tt.h)
		}
		if r.Sheet().Name() != SheetShips {
			t.Errorf("%s sheet = %q, want %q", tt.name, r.Sheet().Name(), SheetShips)
		}
	}
}

func TestDefineRegions_OutOfBoundsRegistersNothing(t *testing.T) {
	c := testCatalog(t)
	manifest := `{"frames": {
		"ok":  {"frame": {"x": 0, "y": 0, "w": 8, "h": 8}},
		"bad": {"frame": {"x": 380, "y": 0, "w": 8, "h": 8}}
	}}`
	err := c.DefineRegions(SheetShips, []byte(manifest))
	var oob *OutOfBoundsError
	if !errors.As(err, &oob) {
		t.Fatalf("err = %v, want *OutOfBoundsError", err)
	}
	if _, err := c.Named("ok"); err == nil {
		t.Error("no region should be registered when one frame is out of bounds")
	}
}

func TestDefineRegions_BadInput(t *testing.T) {
	c := testCatalog(t)
	tests := []struct {
		name, sheet, json string
	}{
		{"invalid json", SheetShips, `{not json`},
		{"no frames key", SheetShips, `{"textures": []}`},
		{"unknown sheet", "missing.png", `{"frames": {}}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := c.DefineRegions(tt.sheet, []byte(tt.json)); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestNamed_Unknown(t *testing.T) {
	c := testCatalog(t)
	_, err := c.Named("ghost")
	var unknown *UnknownAssetError
	if !errors.As(err, &unknown) {
		t.Fatalf("err = %v, want *UnknownAssetError", err)
	}
}
