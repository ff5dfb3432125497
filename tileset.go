package tiled

import (
	"image"
	"image/color"
)

// Terrain is a named terrain type defined by a tileset, with the tile
// index that represents it in the editor.
type Terrain struct {
	Name      string
	ImageTile int
}

// Frame is one step of a tile animation: the local id of the tile to show
// and how long to show it, in milliseconds.
type Frame struct {
	TileID   int
	Duration int
}

// ImageRef is a reference to an image on disk together with its decoded
// pixel dimensions.
type ImageRef struct {
	Source string
	Size   image.Point
}

// Tile is a single tile of a tileset. Tiles exist sparsely: the tileset
// grows its tile slice on demand with placeholder tiles.
type Tile struct {
	// ID is the tile's local index within its tileset.
	ID int

	// Terrain holds the terrain id of each corner in the order
	// top-left, top-right, bottom-left, bottom-right; -1 means unset.
	Terrain [4]int

	// Probability is the relative chance the terrain tool picks this
	// tile; 0 when unset.
	Probability float64

	// Image overrides the tileset's shared image for this tile.
	Image *ImageRef

	// ObjectGroup holds collision/hotspot shapes attached to the tile.
	ObjectGroup *ObjectGroup

	Animation  []Frame
	Properties Properties
}

func newTile(id int) *Tile {
	return &Tile{
		ID:         id,
		Terrain:    [4]int{-1, -1, -1, -1},
		Properties: Properties{},
	}
}

// Size returns the tile's pixel size: its override image size when it has
// one, otherwise the owning tileset's cell size.
func (t *Tile) Size(ts *Tileset) image.Point {
	if t.Image != nil && t.Image.Size.X > 0 {
		return t.Image.Size
	}
	return image.Point{X: ts.TileWidth, Y: ts.TileHeight}
}

// Tileset is an ordered collection of tiles cut from a shared image or
// carried as individual per-tile images.
type Tileset struct {
	Name       string
	TileWidth  int
	TileHeight int
	Spacing    int
	Margin     int
	TileOffset image.Point

	// TransparentColor is nil when the tileset declares none.
	TransparentColor *color.RGBA

	// Image is the shared source image, nil for image-less tilesets.
	Image *ImageRef

	Terrains   []Terrain
	Properties Properties

	tiles []*Tile
}

// NewTileset returns an empty tileset with the given cell geometry.
func NewTileset(name string, tileWidth, tileHeight, spacing, margin int) *Tileset {
	return &Tileset{
		Name:       name,
		TileWidth:  tileWidth,
		TileHeight: tileHeight,
		Spacing:    spacing,
		Margin:     margin,
		Properties: Properties{},
	}
}

// TileCount returns the number of tiles, placeholders included.
func (ts *Tileset) TileCount() int { return len(ts.tiles) }

// TileAt returns the tile with local index id, or nil when out of range.
func (ts *Tileset) TileAt(id int) *Tile {
	if id < 0 || id >= len(ts.tiles) {
		return nil
	}
	return ts.tiles[id]
}

// AddTile appends an empty tile and returns it.
func (ts *Tileset) AddTile() *Tile {
	t := newTile(len(ts.tiles))
	ts.tiles = append(ts.tiles, t)
	return t
}

// AddTerrain appends a terrain definition.
func (ts *Tileset) AddTerrain(name string, imageTile int) {
	ts.Terrains = append(ts.Terrains, Terrain{Name: name, ImageTile: imageTile})
}

// TerrainCount returns the number of terrain definitions.
func (ts *Tileset) TerrainCount() int { return len(ts.Terrains) }

// ColumnCount returns how many tile columns the shared image holds, or 0
// without one.
func (ts *Tileset) ColumnCount() int {
	if ts.Image == nil || ts.TileWidth <= 0 {
		return 0
	}
	return (ts.Image.Size.X - 2*ts.Margin + ts.Spacing) / (ts.TileWidth + ts.Spacing)
}

// LoadFromImage records the shared source image and cuts the tile grid
// from its dimensions using the tileset's margin and spacing. Any
// previously cut tiles are replaced.
func (ts *Tileset) LoadFromImage(size image.Point, source string) {
	ts.Image = &ImageRef{Source: source, Size: size}

	cols := 0
	rows := 0
	if ts.TileWidth > 0 && ts.TileHeight > 0 {
		cols = (size.X - 2*ts.Margin + ts.Spacing) / (ts.TileWidth + ts.Spacing)
		rows = (size.Y - 2*ts.Margin + ts.Spacing) / (ts.TileHeight + ts.Spacing)
	}
	if cols < 0 {
		cols = 0
	}
	if rows < 0 {
		rows = 0
	}

	ts.tiles = make([]*Tile, 0, cols*rows)
	for i := 0; i < cols*rows; i++ {
		ts.AddTile()
	}
}
