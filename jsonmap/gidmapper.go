package jsonmap

import (
	"sort"

	"github.com/huyiGithub/tiled"
)

// Global ids carry flip/rotation flags in their top three bits; the
// remaining bits are the tile id.
const (
	flippedHorizontallyFlag   uint32 = 0x80000000
	flippedVerticallyFlag     uint32 = 0x40000000
	flippedAntiDiagonallyFlag uint32 = 0x20000000

	gidMask = ^(flippedHorizontallyFlag | flippedVerticallyFlag | flippedAntiDiagonallyFlag)
)

type gidRange struct {
	firstGid uint32
	tileset  *tiled.Tileset
}

// GidMapper resolves flat global tile ids to (tileset, local index)
// pairs. A gid belongs to the registered tileset with the greatest
// firstGid not exceeding it; gid 0 is always the empty cell.
type GidMapper struct {
	ranges []gidRange // sorted by firstGid
}

// Clear drops all registered tilesets.
func (m *GidMapper) Clear() {
	m.ranges = m.ranges[:0]
}

// Register records that ts occupies the gid range starting at firstGid.
// Ranges need not be contiguous or registered in order.
func (m *GidMapper) Register(firstGid uint32, ts *tiled.Tileset) {
	i := sort.Search(len(m.ranges), func(i int) bool {
		return m.ranges[i].firstGid >= firstGid
	})
	m.ranges = append(m.ranges, gidRange{})
	copy(m.ranges[i+1:], m.ranges[i:])
	m.ranges[i] = gidRange{firstGid: firstGid, tileset: ts}
}

// Resolve maps a bare gid (flags already stripped) to its tileset and
// local tile index. ok is false for gid 0, for gids below every
// registered range, and for gids past the owning tileset's tile count;
// callers treat all of those as an empty reference.
func (m *GidMapper) Resolve(gid uint32) (*tiled.Tileset, int, bool) {
	if gid == 0 {
		return nil, 0, false
	}
	i := sort.Search(len(m.ranges), func(i int) bool {
		return m.ranges[i].firstGid > gid
	})
	if i == 0 {
		return nil, 0, false
	}
	r := m.ranges[i-1]
	local := int(gid - r.firstGid)
	if local >= r.tileset.TileCount() {
		return nil, 0, false
	}
	return r.tileset, local, true
}

// Cell decodes a raw gid (flags included) into a layer cell. ok mirrors
// Resolve; the returned cell is empty when ok is false.
func (m *GidMapper) Cell(rawGid uint32) (tiled.Cell, bool) {
	ts, local, ok := m.Resolve(rawGid & gidMask)
	if !ok {
		return tiled.Cell{}, false
	}
	return tiled.Cell{
		Tileset:               ts,
		TileID:                local,
		FlippedHorizontally:   rawGid&flippedHorizontallyFlag != 0,
		FlippedVertically:     rawGid&flippedVerticallyFlag != 0,
		FlippedAntiDiagonally: rawGid&flippedAntiDiagonallyFlag != 0,
	}, true
}
