package tiled

import "image/color"

// Layer is one drawable stratum of a map. Concrete types are *TileLayer,
// *ObjectGroup and *ImageLayer; consumers dispatch with a type switch.
type Layer interface {
	Name() string
	Position() (x, y int)
	Size() (width, height int)
	Opacity() float64
	Visible() bool
	Properties() Properties
	SetProperties(Properties)
}

// baseLayer carries the fields every layer variant shares.
type baseLayer struct {
	name          string
	x, y          int
	width, height int
	opacity       float64
	visible       bool
	properties    Properties
}

func newBaseLayer(name string, x, y, width, height int) baseLayer {
	return baseLayer{
		name:       name,
		x:          x,
		y:          y,
		width:      width,
		height:     height,
		opacity:    1,
		visible:    true,
		properties: Properties{},
	}
}

func (b *baseLayer) Name() string               { return b.name }
func (b *baseLayer) Position() (int, int)       { return b.x, b.y }
func (b *baseLayer) Size() (int, int)           { return b.width, b.height }
func (b *baseLayer) Opacity() float64           { return b.opacity }
func (b *baseLayer) Visible() bool              { return b.visible }
func (b *baseLayer) Properties() Properties     { return b.properties }
func (b *baseLayer) SetProperties(p Properties) { b.properties = p }
func (b *baseLayer) SetOpacity(o float64)       { b.opacity = o }
func (b *baseLayer) SetVisible(v bool)          { b.visible = v }

// TileLayer is a dense width×height grid of cells in row-major order.
type TileLayer struct {
	baseLayer
	cells []Cell
}

// NewTileLayer returns a tile layer with an all-empty grid.
func NewTileLayer(name string, x, y, width, height int) *TileLayer {
	return &TileLayer{
		baseLayer: newBaseLayer(name, x, y, width, height),
		cells:     make([]Cell, width*height),
	}
}

// CellAt returns the cell at grid position (x, y); the empty cell when
// out of bounds.
func (l *TileLayer) CellAt(x, y int) Cell {
	if x < 0 || y < 0 || x >= l.width || y >= l.height {
		return Cell{}
	}
	return l.cells[y*l.width+x]
}

// SetCell stores c at grid position (x, y). Out-of-bounds positions are
// ignored.
func (l *TileLayer) SetCell(x, y int, c Cell) {
	if x < 0 || y < 0 || x >= l.width || y >= l.height {
		return
	}
	l.cells[y*l.width+x] = c
}

// DrawOrder is the rule for painting an object group's objects.
type DrawOrder int

const (
	UnknownOrder DrawOrder = iota
	TopDownOrder
	IndexOrder
)

func DrawOrderFromString(s string) DrawOrder {
	switch s {
	case "topdown":
		return TopDownOrder
	case "index":
		return IndexOrder
	}
	return UnknownOrder
}

// ObjectGroup is a layer holding placed map objects.
type ObjectGroup struct {
	baseLayer

	DrawOrder DrawOrder

	// Color tints the group's objects in the editor; nil when unset.
	Color *color.RGBA

	Objects []*MapObject
}

// NewObjectGroup returns an empty object group with the editor's default
// top-down draw order.
func NewObjectGroup(name string, x, y, width, height int) *ObjectGroup {
	return &ObjectGroup{
		baseLayer: newBaseLayer(name, x, y, width, height),
		DrawOrder: TopDownOrder,
	}
}

// AddObject appends o to the group.
func (g *ObjectGroup) AddObject(o *MapObject) {
	g.Objects = append(g.Objects, o)
}

// ImageLayer is a layer showing a single image.
type ImageLayer struct {
	baseLayer

	// TransparentColor is nil when the layer declares none.
	TransparentColor *color.RGBA

	Image *ImageRef
}

// NewImageLayer returns an image layer without an image.
func NewImageLayer(name string, x, y, width, height int) *ImageLayer {
	return &ImageLayer{baseLayer: newBaseLayer(name, x, y, width, height)}
}
