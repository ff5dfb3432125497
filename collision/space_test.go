package collision

import (
	"testing"

	"github.com/jakecoffman/cp"

	"github.com/huyiGithub/tiled"
)

func countShapes(space *cp.Space) (solid, zone int) {
	space.EachShape(func(s *cp.Shape) {
		switch s.CollisionType() {
		case TypeSolid:
			solid++
		case TypeZone:
			zone++
		}
	})
	return solid, zone
}

func solidLayer(m *tiled.Map, ts *tiled.Tileset, grid [][]int) *tiled.TileLayer {
	h := len(grid)
	w := len(grid[0])
	layer := tiled.NewTileLayer("walls", 0, 0, w, h)
	layer.SetProperties(tiled.Properties{"solid": "true"})
	for y, row := range grid {
		for x, v := range row {
			if v != 0 {
				layer.SetCell(x, y, tiled.Cell{Tileset: ts, TileID: 0})
			}
		}
	}
	m.AddLayer(layer)
	return layer
}

func TestBuildMergesSolidRuns(t *testing.T) {
	m := tiled.NewMap(tiled.Orthogonal, 4, 3, 16, 16)
	ts := tiled.NewTileset("blocks", 16, 16, 0, 0)
	ts.AddTile()
	m.AddTileset(ts)

	// One 4x1 run and one 2x2 block: two boxes, not six.
	solidLayer(m, ts, [][]int{
		{1, 1, 1, 1},
		{0, 0, 0, 0},
		{1, 1, 0, 0},
	})
	// Extend the 2x2 block downward is impossible (map is 3 tall), so
	// the bottom-left pair merges horizontally only.

	space := Build(m, Options{SolidProperty: "solid"})
	solid, zone := countShapes(space)
	if solid != 2 {
		t.Fatalf("solid shapes = %d, want 2 merged boxes", solid)
	}
	if zone != 0 {
		t.Fatalf("zone shapes = %d, want 0", zone)
	}
}

func TestBuildSkipsLayersWithoutSolidProperty(t *testing.T) {
	m := tiled.NewMap(tiled.Orthogonal, 2, 2, 16, 16)
	ts := tiled.NewTileset("blocks", 16, 16, 0, 0)
	ts.AddTile()
	m.AddTileset(ts)

	layer := tiled.NewTileLayer("decoration", 0, 0, 2, 2)
	layer.SetCell(0, 0, tiled.Cell{Tileset: ts, TileID: 0})
	m.AddLayer(layer)

	space := Build(m, Options{SolidProperty: "solid"})
	solid, _ := countShapes(space)
	if solid != 0 {
		t.Fatalf("solid shapes = %d, want none for an unmarked layer", solid)
	}
}

func TestBuildObjectShapes(t *testing.T) {
	m := tiled.NewMap(tiled.Orthogonal, 4, 4, 16, 16)

	group := tiled.NewObjectGroup("zones", 0, 0, 4, 4)
	rect := tiled.NewMapObject("box", "", 0, 0, 32, 16)
	ellipse := tiled.NewMapObject("pad", "", 32, 0, 16, 16)
	ellipse.Shape = tiled.Ellipse
	poly := tiled.NewMapObject("ramp", "", 0, 32, 0, 0)
	poly.Shape = tiled.Polygon
	poly.Points = []tiled.Point{{X: 0, Y: 0}, {X: 16, Y: 0}, {X: 16, Y: 16}}
	line := tiled.NewMapObject("rail", "", 0, 48, 0, 0)
	line.Shape = tiled.Polyline
	line.Points = []tiled.Point{{X: 0, Y: 0}, {X: 8, Y: 0}, {X: 16, Y: 8}}
	group.AddObject(rect)
	group.AddObject(ellipse)
	group.AddObject(poly)
	group.AddObject(line)
	m.AddLayer(group)

	space := Build(m, Options{SolidProperty: "solid"})
	_, zone := countShapes(space)
	// rect + circle + polygon + two polyline segments
	if zone != 5 {
		t.Fatalf("zone shapes = %d, want 5", zone)
	}
}

func TestBuildBounds(t *testing.T) {
	m := tiled.NewMap(tiled.Orthogonal, 2, 2, 16, 16)

	space := Build(m, Options{SolidProperty: "solid", Bounds: true})
	solid, _ := countShapes(space)
	if solid != 4 {
		t.Fatalf("solid shapes = %d, want 4 boundary segments", solid)
	}
}

func TestBuildTileObjectGroupOverridesBox(t *testing.T) {
	m := tiled.NewMap(tiled.Orthogonal, 2, 1, 16, 16)
	ts := tiled.NewTileset("blocks", 16, 16, 0, 0)
	shaped := ts.AddTile()
	shaped.ObjectGroup = tiled.NewObjectGroup("collision", 0, 0, 0, 0)
	shaped.ObjectGroup.AddObject(tiled.NewMapObject("half", "", 0, 8, 16, 8))
	ts.AddTile()
	m.AddTileset(ts)

	layer := tiled.NewTileLayer("walls", 0, 0, 2, 1)
	layer.SetProperties(tiled.Properties{"solid": "true"})
	layer.SetCell(0, 0, tiled.Cell{Tileset: ts, TileID: 0})
	layer.SetCell(1, 0, tiled.Cell{Tileset: ts, TileID: 1})
	m.AddLayer(layer)

	space := Build(m, Options{SolidProperty: "solid"})
	solid, zone := countShapes(space)
	if solid != 1 {
		t.Fatalf("solid shapes = %d, want 1 box for the plain tile", solid)
	}
	if zone != 1 {
		t.Fatalf("zone shapes = %d, want 1 from the tile's object group", zone)
	}
}
