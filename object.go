package tiled

import "github.com/huyiGithub/tiled/rtb"

// Shape is the geometric form of a map object.
type Shape int

const (
	Rectangle Shape = iota
	Ellipse
	Polygon
	Polyline
)

// Point is a position in pixel coordinates, relative to the owning
// object for polygon/polyline vertices.
type Point struct {
	X float64
	Y float64
}

// MapObject is a single placed object within an object group.
type MapObject struct {
	// ID is unique within the document; 0 when the input carries none.
	ID   int
	Name string
	// Type is the free-form category tag assigned by the author; it
	// selects the object's RTB extension record.
	Type string

	X, Y          float64
	Width, Height float64
	// Rotation is in degrees, clockwise.
	Rotation float64

	Shape Shape
	// Points holds the vertex list for Polygon and Polyline shapes.
	Points []Point

	// Cell is the tile stamp the object displays; the empty cell when
	// the object is a plain shape.
	Cell Cell

	Visible    bool
	Properties Properties

	// Extension is the game-specific payload selected by Type; nil for
	// categories without one.
	Extension rtb.ObjectExtension
}

// NewMapObject returns an object with the given core fields, visible and
// rectangle-shaped.
func NewMapObject(name, typ string, x, y, width, height float64) *MapObject {
	return &MapObject{
		Name:       name,
		Type:       typ,
		X:          x,
		Y:          y,
		Width:      width,
		Height:     height,
		Visible:    true,
		Properties: Properties{},
	}
}
