package jsonmap

import (
	"testing"

	"github.com/huyiGithub/tiled"
)

func tilesetWithTiles(name string, count int) *tiled.Tileset {
	ts := tiled.NewTileset(name, 16, 16, 0, 0)
	for i := 0; i < count; i++ {
		ts.AddTile()
	}
	return ts
}

func TestGidMapperResolve(t *testing.T) {
	a := tilesetWithTiles("a", 4)
	b := tilesetWithTiles("b", 2)

	var m GidMapper
	// Registration order must not matter.
	m.Register(5, b)
	m.Register(1, a)

	cases := []struct {
		name      string
		gid       uint32
		wantSet   *tiled.Tileset
		wantLocal int
		wantOK    bool
	}{
		{"zero_is_empty", 0, nil, 0, false},
		{"first_of_a", 1, a, 0, true},
		{"last_of_a", 4, a, 3, true},
		{"first_of_b", 5, b, 0, true},
		{"last_of_b", 6, b, 1, true},
		{"past_all_ranges", 7, nil, 0, false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			ts, local, ok := m.Resolve(c.gid)
			if ok != c.wantOK {
				t.Fatalf("Resolve(%d) ok = %v, want %v", c.gid, ok, c.wantOK)
			}
			if ts != c.wantSet || local != c.wantLocal {
				t.Fatalf("Resolve(%d) = (%v, %d), want (%v, %d)", c.gid, ts, local, c.wantSet, c.wantLocal)
			}
		})
	}
}

func TestGidMapperGapBetweenRanges(t *testing.T) {
	a := tilesetWithTiles("a", 2)
	b := tilesetWithTiles("b", 2)

	var m GidMapper
	m.Register(1, a)
	m.Register(10, b)

	// gid 3 falls in the gap: its greatest firstGid is a's, but it is
	// past a's tile count, so it never leaks into b.
	if _, _, ok := m.Resolve(3); ok {
		t.Fatalf("Resolve(3) should not resolve inside the range gap")
	}
	if ts, local, ok := m.Resolve(11); !ok || ts != b || local != 1 {
		t.Fatalf("Resolve(11) = (%v, %d, %v), want tileset b local 1", ts, local, ok)
	}
}

func TestGidMapperCellFlags(t *testing.T) {
	a := tilesetWithTiles("a", 4)

	var m GidMapper
	m.Register(1, a)

	raw := uint32(3) | flippedVerticallyFlag | flippedAntiDiagonallyFlag
	cell, ok := m.Cell(raw)
	if !ok || cell.IsEmpty() {
		t.Fatalf("Cell(%#x) should resolve", raw)
	}
	if cell.TileID != 2 {
		t.Fatalf("Cell tile id = %d, want 2", cell.TileID)
	}
	if cell.FlippedHorizontally || !cell.FlippedVertically || !cell.FlippedAntiDiagonally {
		t.Fatalf("unexpected flip flags: %+v", cell)
	}

	if _, ok := m.Cell(0); ok {
		t.Fatalf("Cell(0) must be the empty cell")
	}
}
