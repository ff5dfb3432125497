package tiled

// Cell is a placed-tile reference within a tile layer's grid. The zero
// value is the empty cell.
type Cell struct {
	Tileset *Tileset
	// TileID is the local tile index within Tileset; meaningless when
	// the cell is empty.
	TileID int

	FlippedHorizontally   bool
	FlippedVertically     bool
	FlippedAntiDiagonally bool
}

// IsEmpty reports whether the cell references no tile.
func (c Cell) IsEmpty() bool { return c.Tileset == nil }

// Tile returns the referenced tile, or nil for an empty or dangling
// reference.
func (c Cell) Tile() *Tile {
	if c.Tileset == nil {
		return nil
	}
	return c.Tileset.TileAt(c.TileID)
}
