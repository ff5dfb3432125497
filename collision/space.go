// Package collision turns a converted map's collision content into a
// chipmunk physics space of static shapes: solid runs of stamped tiles,
// the collision object groups attached to individual tiles, and the
// map's own object-group layers.
package collision

import (
	"math"

	"github.com/jakecoffman/cp"

	"github.com/huyiGithub/tiled"
)

const (
	// TypeSolid marks impassable geometry.
	TypeSolid cp.CollisionType = iota + 1
	// TypeZone marks sensor shapes built from object groups.
	TypeZone
)

// Options controls space construction.
type Options struct {
	// SolidProperty names the layer property that marks a tile layer as
	// collidable; layers without it contribute no shapes.
	SolidProperty string
	// Bounds adds four segment walls around the map's pixel extent.
	Bounds bool
	// Friction applies to every solid shape.
	Friction float64
}

// DefaultOptions returns the options used by the game runtime.
func DefaultOptions() Options {
	return Options{SolidProperty: "solid", Bounds: true, Friction: 0.8}
}

// Build creates a static space from m's collision content.
func Build(m *tiled.Map, opts Options) *cp.Space {
	space := cp.NewSpace()

	for _, layer := range m.Layers {
		switch l := layer.(type) {
		case *tiled.TileLayer:
			if l.Properties().Get(opts.SolidProperty) != "" {
				buildTileLayerShapes(space, m, l, opts)
			}
		case *tiled.ObjectGroup:
			buildObjectShapes(space, l.Objects, 0, 0, opts)
		}
	}

	if opts.Bounds {
		addBounds(space, m, opts)
	}

	return space
}

// buildTileLayerShapes merges contiguous occupied cells into as few
// static boxes as possible, expanding width first then height, the same
// greedy cover the game runtime uses. Tiles that carry their own object
// group contribute those shapes instead of a full box.
func buildTileLayerShapes(space *cp.Space, m *tiled.Map, l *tiled.TileLayer, opts Options) {
	width, height := l.Size()
	tw := float64(m.TileWidth)
	th := float64(m.TileHeight)

	processed := make([]bool, width*height)
	solidAt := func(x, y int) bool {
		cell := l.CellAt(x, y)
		return !cell.IsEmpty() && (cell.Tile() == nil || cell.Tile().ObjectGroup == nil)
	}

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			idx := y*width + x
			if processed[idx] {
				continue
			}
			cell := l.CellAt(x, y)
			if cell.IsEmpty() {
				processed[idx] = true
				continue
			}

			x0 := float64(x) * tw
			y0 := float64(y) * th

			// Tiles with collision shapes of their own stay individual.
			if tile := cell.Tile(); tile != nil && tile.ObjectGroup != nil {
				buildObjectShapes(space, tile.ObjectGroup.Objects, x0, y0, opts)
				processed[idx] = true
				continue
			}

			w := 1
			for x+w < width {
				if processed[y*width+(x+w)] || !solidAt(x+w, y) {
					break
				}
				w++
			}

			h := 1
		heightLoop:
			for y+h < height {
				for xi := x; xi < x+w; xi++ {
					if processed[(y+h)*width+xi] || !solidAt(xi, y+h) {
						break heightLoop
					}
				}
				h++
			}

			bb := cp.BB{L: x0, B: y0, R: x0 + float64(w)*tw, T: y0 + float64(h)*th}
			shape := cp.NewBox2(space.StaticBody, bb, 0)
			shape.SetFriction(opts.Friction)
			shape.SetCollisionType(TypeSolid)
			space.AddShape(shape)

			for yy := y; yy < y+h; yy++ {
				for xx := x; xx < x+w; xx++ {
					processed[yy*width+xx] = true
				}
			}
		}
	}
}

func buildObjectShapes(space *cp.Space, objects []*tiled.MapObject, offsetX, offsetY float64, opts Options) {
	for _, o := range objects {
		x := offsetX + o.X
		y := offsetY + o.Y

		var shape *cp.Shape
		switch o.Shape {
		case tiled.Rectangle:
			bb := cp.BB{L: x, B: y, R: x + o.Width, T: y + o.Height}
			shape = cp.NewBox2(space.StaticBody, bb, 0)
		case tiled.Ellipse:
			// Approximated by the inscribed circle of the mean radius.
			r := (o.Width + o.Height) / 4
			center := cp.Vector{X: x + o.Width/2, Y: y + o.Height/2}
			shape = cp.NewCircle(space.StaticBody, r, center)
		case tiled.Polygon:
			if len(o.Points) < 3 {
				continue
			}
			verts := make([]cp.Vector, len(o.Points))
			for i, p := range o.Points {
				verts[i] = cp.Vector{X: x + p.X, Y: y + p.Y}
			}
			shape = cp.NewPolyShapeRaw(space.StaticBody, len(verts), verts, 0)
		case tiled.Polyline:
			addPolylineSegments(space, o, x, y, opts)
			continue
		default:
			continue
		}

		shape.SetFriction(opts.Friction)
		shape.SetCollisionType(TypeZone)
		space.AddShape(shape)
	}
}

func addPolylineSegments(space *cp.Space, o *tiled.MapObject, x, y float64, opts Options) {
	for i := 0; i+1 < len(o.Points); i++ {
		a := cp.Vector{X: x + o.Points[i].X, Y: y + o.Points[i].Y}
		b := cp.Vector{X: x + o.Points[i+1].X, Y: y + o.Points[i+1].Y}
		if math.Abs(a.X-b.X) < 1e-9 && math.Abs(a.Y-b.Y) < 1e-9 {
			continue
		}
		shape := cp.NewSegment(space.StaticBody, a, b, 1)
		shape.SetFriction(opts.Friction)
		shape.SetCollisionType(TypeZone)
		space.AddShape(shape)
	}
}

func addBounds(space *cp.Space, m *tiled.Map, opts Options) {
	worldW := float64(m.Width * m.TileWidth)
	worldH := float64(m.Height * m.TileHeight)
	if worldW <= 0 || worldH <= 0 {
		return
	}

	segments := []struct {
		a cp.Vector
		b cp.Vector
	}{
		{a: cp.Vector{X: 0, Y: 0}, b: cp.Vector{X: worldW, Y: 0}},
		{a: cp.Vector{X: 0, Y: worldH}, b: cp.Vector{X: worldW, Y: worldH}},
		{a: cp.Vector{X: 0, Y: 0}, b: cp.Vector{X: 0, Y: worldH}},
		{a: cp.Vector{X: worldW, Y: 0}, b: cp.Vector{X: worldW, Y: worldH}},
	}
	for _, seg := range segments {
		shape := cp.NewSegment(space.StaticBody, seg.a, seg.b, 1)
		shape.SetFriction(opts.Friction)
		shape.SetCollisionType(TypeSolid)
		space.AddShape(shape)
	}
}
