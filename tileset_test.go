package tiled

import (
	"image"
	"testing"
)

func TestTilesetLoadFromImage(t *testing.T) {
	cases := []struct {
		name            string
		tileW, tileH    int
		spacing, margin int
		imageW, imageH  int
		wantCols        int
		wantCount       int
	}{
		{"exact_grid", 16, 16, 0, 0, 64, 32, 4, 8},
		{"with_spacing", 16, 16, 1, 0, 67, 16, 4, 4},
		{"with_margin", 16, 16, 0, 2, 68, 20, 4, 4},
		{"image_smaller_than_tile", 16, 16, 0, 0, 8, 8, 0, 0},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			ts := NewTileset("t", c.tileW, c.tileH, c.spacing, c.margin)
			ts.LoadFromImage(image.Point{X: c.imageW, Y: c.imageH}, "t.png")

			if got := ts.ColumnCount(); got != c.wantCols {
				t.Fatalf("ColumnCount() = %d, want %d", got, c.wantCols)
			}
			if got := ts.TileCount(); got != c.wantCount {
				t.Fatalf("TileCount() = %d, want %d", got, c.wantCount)
			}
		})
	}
}

func TestTilesetTileGrowth(t *testing.T) {
	ts := NewTileset("t", 16, 16, 0, 0)
	if ts.TileAt(0) != nil {
		t.Fatal("empty tileset should have no tile 0")
	}

	first := ts.AddTile()
	second := ts.AddTile()
	if first.ID != 0 || second.ID != 1 {
		t.Fatalf("tile ids = %d, %d, want 0, 1", first.ID, second.ID)
	}
	if ts.TileAt(1) != second {
		t.Fatal("TileAt(1) should return the second tile")
	}
	if ts.TileAt(2) != nil || ts.TileAt(-1) != nil {
		t.Fatal("out-of-range lookups must return nil")
	}

	want := [4]int{-1, -1, -1, -1}
	if first.Terrain != want {
		t.Fatalf("new tile corners = %v, want all unset", first.Terrain)
	}
}

func TestTileSize(t *testing.T) {
	ts := NewTileset("t", 16, 16, 0, 0)
	tile := ts.AddTile()

	if got := tile.Size(ts); got != (image.Point{X: 16, Y: 16}) {
		t.Fatalf("Size() = %v, want tileset cell size", got)
	}

	tile.Image = &ImageRef{Source: "big.png", Size: image.Point{X: 40, Y: 24}}
	if got := tile.Size(ts); got != (image.Point{X: 40, Y: 24}) {
		t.Fatalf("Size() = %v, want override image size", got)
	}
}

func TestParseColor(t *testing.T) {
	cases := []struct {
		in     string
		wantOK bool
		want   [4]uint8 // r g b a
	}{
		{"#ff8000", true, [4]uint8{0xff, 0x80, 0x00, 0xff}},
		{"#80ff8000", true, [4]uint8{0xff, 0x80, 0x00, 0x80}},
		{"", false, [4]uint8{}},
		{"ff8000", false, [4]uint8{}},
		{"#ff80", false, [4]uint8{}},
		{"#gggggg", false, [4]uint8{}},
	}

	for _, c := range cases {
		t.Run(c.in, func(t *testing.T) {
			rgba, ok := ParseColor(c.in)
			if ok != c.wantOK {
				t.Fatalf("ParseColor(%q) ok = %v, want %v", c.in, ok, c.wantOK)
			}
			if !ok {
				return
			}
			got := [4]uint8{rgba.R, rgba.G, rgba.B, rgba.A}
			if got != c.want {
				t.Fatalf("ParseColor(%q) = %v, want %v", c.in, got, c.want)
			}
		})
	}
}
