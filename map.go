// Package tiled holds the in-memory document model for Tiled-style JSON
// maps: a map owns its tilesets and layers, tilesets own tiles, object
// groups own objects. Values are built by the jsonmap package and handed
// to the caller whole.
package tiled

import (
	"image/color"

	"github.com/huyiGithub/tiled/rtb"
)

// Orientation is the projection used to lay out the tile grid.
type Orientation int

const (
	Unknown Orientation = iota
	Orthogonal
	Isometric
	Staggered
	Hexagonal
)

func OrientationFromString(s string) Orientation {
	switch s {
	case "orthogonal":
		return Orthogonal
	case "isometric":
		return Isometric
	case "staggered":
		return Staggered
	case "hexagonal":
		return Hexagonal
	}
	return Unknown
}

func (o Orientation) String() string {
	switch o {
	case Orthogonal:
		return "orthogonal"
	case Isometric:
		return "isometric"
	case Staggered:
		return "staggered"
	case Hexagonal:
		return "hexagonal"
	}
	return "unknown"
}

// StaggerAxis selects which axis is staggered for staggered and hexagonal maps.
type StaggerAxis int

const (
	StaggerX StaggerAxis = iota
	StaggerY
)

func StaggerAxisFromString(s string) StaggerAxis {
	if s == "y" {
		return StaggerY
	}
	return StaggerX
}

// StaggerIndex selects whether even or odd rows/columns are shifted.
type StaggerIndex int

const (
	StaggerOdd StaggerIndex = iota
	StaggerEven
)

func StaggerIndexFromString(s string) StaggerIndex {
	if s == "even" {
		return StaggerEven
	}
	return StaggerOdd
}

// RenderOrder is the order in which tiles of a tile layer are painted.
type RenderOrder int

const (
	RightDown RenderOrder = iota
	RightUp
	LeftDown
	LeftUp
)

func RenderOrderFromString(s string) RenderOrder {
	switch s {
	case "right-up":
		return RightUp
	case "left-down":
		return LeftDown
	case "left-up":
		return LeftUp
	}
	return RightDown
}

// Map is a complete tile-map document.
type Map struct {
	Orientation   Orientation
	Width         int // in tiles
	Height        int // in tiles
	TileWidth     int // in pixels
	TileHeight    int // in pixels
	HexSideLength int
	StaggerAxis   StaggerAxis
	StaggerIndex  StaggerIndex
	RenderOrder   RenderOrder

	// BackgroundColor is nil when the document declares none.
	BackgroundColor *color.RGBA

	// NextObjectID is the counter the authoring tool uses to assign
	// object ids; zero when the document omits it.
	NextObjectID int

	Tilesets   []*Tileset
	Layers     []Layer
	Properties Properties

	// RTB holds the game-specific map metadata. Always non-nil on a
	// converted map.
	RTB *rtb.LevelSettings
}

// NewMap returns a map with the given grid geometry and empty containers.
func NewMap(orientation Orientation, width, height, tileWidth, tileHeight int) *Map {
	return &Map{
		Orientation: orientation,
		Width:       width,
		Height:      height,
		TileWidth:   tileWidth,
		TileHeight:  tileHeight,
		Properties:  Properties{},
		RTB:         &rtb.LevelSettings{},
	}
}

// AddTileset appends ts to the map's tileset list.
func (m *Map) AddTileset(ts *Tileset) {
	m.Tilesets = append(m.Tilesets, ts)
}

// AddLayer appends l to the map's layer list.
func (m *Map) AddLayer(l Layer) {
	m.Layers = append(m.Layers, l)
}
