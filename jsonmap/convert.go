// Package jsonmap converts generically-typed JSON map documents into the
// tiled document model. The input is an untrusted map[string]any tree;
// the converter walks it once, resolving tile references across tilesets
// through a gid mapper, and either returns a complete document or the
// first fatal error. No partially built document ever reaches the
// caller.
package jsonmap

import (
	"encoding/json"
	"fmt"
	"image"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"

	"github.com/huyiGithub/tiled"
	"github.com/huyiGithub/tiled/imagemeta"
	"github.com/huyiGithub/tiled/rtb"
)

// Option adjusts how a conversion runs.
type Option func(*converter)

// WithProber replaces the image prober used to size tileset and layer
// images. Tests use this to avoid touching the filesystem.
func WithProber(p imagemeta.Prober) Option {
	return func(c *converter) { c.probe = p }
}

// WithRegistry replaces the default object-type registry used to select
// extension records.
func WithRegistry(r *rtb.Registry) Option {
	return func(c *converter) { c.registry = r }
}

// Convert builds a document from an already-decoded JSON value tree.
// Relative image paths are resolved against dir.
func Convert(v any, dir string, opts ...Option) (*tiled.Map, error) {
	c := &converter{
		dir:      dir,
		probe:    imagemeta.Probe,
		registry: rtb.DefaultRegistry(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c.toMap(v)
}

// Read decodes one JSON document from r and converts it.
func Read(r io.Reader, dir string, opts ...Option) (*tiled.Map, error) {
	var v any
	if err := json.NewDecoder(r).Decode(&v); err != nil {
		return nil, fmt.Errorf("jsonmap: decode: %w", err)
	}
	return Convert(v, dir, opts...)
}

// ReadFile reads and converts the map document at path, resolving
// relative image paths against the file's directory.
func ReadFile(path string, opts ...Option) (*tiled.Map, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("jsonmap: open %s: %w", path, err)
	}
	defer f.Close()
	return Read(f, filepath.Dir(path), opts...)
}

type converter struct {
	dir      string
	probe    imagemeta.Prober
	registry *rtb.Registry
	gids     GidMapper
}

func (c *converter) resolvePath(name string) string {
	if filepath.IsAbs(name) {
		return filepath.Clean(name)
	}
	return filepath.Clean(filepath.Join(c.dir, name))
}

func (c *converter) toMap(v any) (*tiled.Map, error) {
	c.gids.Clear()

	root := asMap(v)

	orientationString := asString(root["orientation"])
	orientation := tiled.OrientationFromString(orientationString)
	if orientation == tiled.Unknown {
		return nil, fmt.Errorf("unsupported map orientation %q", orientationString)
	}

	m := tiled.NewMap(orientation,
		intOr(root["width"], 0),
		intOr(root["height"], 0),
		intOr(root["tilewidth"], 0),
		intOr(root["tileheight"], 0))
	m.HexSideLength = intOr(root["hexsidelength"], 0)
	m.StaggerAxis = tiled.StaggerAxisFromString(asString(root["staggeraxis"]))
	m.StaggerIndex = tiled.StaggerIndexFromString(asString(root["staggerindex"]))
	m.RenderOrder = tiled.RenderOrderFromString(asString(root["renderorder"]))

	if n := intOr(root["nextobjectid"], 0); n != 0 {
		m.NextObjectID = n
	}

	m.RTB = c.toLevelSettings(root)
	m.Properties = c.toProperties(root["properties"])

	if rgba, ok := tiled.ParseColor(asString(root["backgroundcolor"])); ok {
		m.BackgroundColor = &rgba
	}

	for _, tv := range asList(root["tilesets"]) {
		ts, err := c.toTileset(tv)
		if err != nil {
			return nil, err
		}
		m.AddTileset(ts)
	}

	for _, lv := range asList(root["layers"]) {
		layer, err := c.toLayer(lv)
		if err != nil {
			return nil, err
		}
		m.AddLayer(layer)
	}

	return m, nil
}

func (c *converter) toProperties(v any) tiled.Properties {
	props := tiled.Properties{}
	for key, val := range asMap(v) {
		props[key] = asString(val)
	}
	return props
}

func (c *converter) toTileset(v any) (*tiled.Tileset, error) {
	record := asMap(v)

	firstGid := intOr(record["firstgid"], 0)
	name := asString(record["name"])
	tileWidth := intOr(record["tilewidth"], 0)
	tileHeight := intOr(record["tileheight"], 0)
	spacing := intOr(record["spacing"], 0)
	margin := intOr(record["margin"], 0)
	tileOffset := asMap(record["tileoffset"])

	if tileWidth <= 0 || tileHeight <= 0 || firstGid == 0 {
		return nil, fmt.Errorf("invalid tileset parameters for tileset %q", name)
	}

	ts := tiled.NewTileset(name, tileWidth, tileHeight, spacing, margin)
	ts.TileOffset = image.Point{
		X: intOr(tileOffset["x"], 0),
		Y: intOr(tileOffset["y"], 0),
	}

	if rgba, ok := tiled.ParseColor(asString(record["transparentcolor"])); ok {
		ts.TransparentColor = &rgba
	}

	if imageName := asString(record["image"]); imageName != "" {
		imagePath := c.resolvePath(imageName)
		size, err := c.probe(imagePath)
		if err != nil {
			return nil, fmt.Errorf("error loading tileset image %q: %w", imagePath, err)
		}
		ts.LoadFromImage(size, imagePath)
	}

	ts.Properties = c.toProperties(record["properties"])

	for _, tv := range asList(record["terrains"]) {
		terrain := asMap(tv)
		ts.AddTerrain(asString(terrain["name"]), intOr(terrain["tile"], 0))
	}

	if err := c.applyTileOverrides(ts, asMap(record["tiles"])); err != nil {
		return nil, err
	}

	// Per-tile property bags apply to existing tiles only.
	for key, pv := range asMap(record["tileproperties"]) {
		index, err := strconv.Atoi(key)
		if err != nil {
			continue
		}
		if tile := ts.TileAt(index); tile != nil {
			tile.Properties = c.toProperties(pv)
		}
	}

	c.gids.Register(uint32(firstGid), ts)
	return ts, nil
}

// applyTileOverrides walks the sparse tile-index-keyed override map.
// Indices past the current tile count grow the tileset with placeholder
// tiles, but never beyond the number of override entries: with sparse
// definitions there should be an entry per tile, and the cap keeps a
// single huge index from exhausting memory.
func (c *converter) applyTileOverrides(ts *tiled.Tileset, overrides map[string]any) error {
	indices := make([]int, 0, len(overrides))
	byIndex := make(map[int]map[string]any, len(overrides))
	for key, tv := range overrides {
		index, err := strconv.Atoi(key)
		if err != nil {
			continue
		}
		if index < 0 {
			return fmt.Errorf("tileset %q: tile index negative: %d", ts.Name, index)
		}
		indices = append(indices, index)
		byIndex[index] = asMap(tv)
	}
	sort.Ints(indices)

	for _, index := range indices {
		if index >= ts.TileCount() {
			if index >= len(overrides) {
				return fmt.Errorf("tileset %q: tile index too high: %d", ts.Name, index)
			}
			for ts.TileCount() <= index {
				ts.AddTile()
			}
		}

		tile := ts.TileAt(index)
		if tile == nil {
			continue
		}
		if err := c.applyTileOverride(ts, tile, byIndex[index]); err != nil {
			return err
		}
	}
	return nil
}

func (c *converter) applyTileOverride(ts *tiled.Tileset, tile *tiled.Tile, record map[string]any) error {
	// Terrain corner assignments only apply as a complete set of four;
	// individual bad entries are skipped, not fatal.
	if terrains := asList(record["terrain"]); len(terrains) == 4 {
		for i := 0; i < 4; i++ {
			if id, ok := asInt(terrains[i]); ok && id >= 0 && id < ts.TerrainCount() {
				tile.Terrain[i] = id
			}
		}
	}

	if probability, ok := asFloat(record["probability"]); ok {
		tile.Probability = probability
	}

	if imageName := asString(record["image"]); imageName != "" {
		imagePath := c.resolvePath(imageName)
		ref := &tiled.ImageRef{Source: imagePath}
		// A missing per-tile image keeps its path with zero size; only
		// the shared tileset image is load-bearing enough to abort on.
		if size, err := c.probe(imagePath); err == nil {
			ref.Size = size
		}
		tile.Image = ref
	}

	if objectGroup := asMap(record["objectgroup"]); len(objectGroup) > 0 {
		group, err := c.toObjectGroup(objectGroup)
		if err != nil {
			return err
		}
		tile.ObjectGroup = group
	}

	if frameList := asList(record["animation"]); len(frameList) > 0 {
		frames := make([]tiled.Frame, 0, len(frameList))
		for _, fv := range frameList {
			frame := asMap(fv)
			frames = append(frames, tiled.Frame{
				TileID:   intOr(frame["tileid"], 0),
				Duration: intOr(frame["duration"], 0),
			})
		}
		tile.Animation = frames
	}

	return nil
}

func (c *converter) toLayer(v any) (tiled.Layer, error) {
	record := asMap(v)

	var layer tiled.Layer
	var err error
	layerType := asString(record["type"])
	switch layerType {
	case "tilelayer":
		layer, err = c.toTileLayer(record)
	case "objectgroup":
		layer, err = c.toObjectGroup(record)
	case "imagelayer":
		layer, err = c.toImageLayer(record)
	default:
		return nil, fmt.Errorf("unsupported layer type %q for layer %q",
			layerType, asString(record["name"]))
	}
	if err != nil {
		return nil, err
	}

	layer.SetProperties(c.toProperties(record["properties"]))
	return layer, nil
}

type layerSettable interface {
	SetOpacity(float64)
	SetVisible(bool)
}

func applyCommonLayerFields(l layerSettable, record map[string]any) {
	if _, present := record["opacity"]; present {
		l.SetOpacity(floatOr(record["opacity"], 1))
	}
	if _, present := record["visible"]; present {
		l.SetVisible(asBool(record["visible"]))
	}
}

func (c *converter) toTileLayer(record map[string]any) (*tiled.TileLayer, error) {
	name := asString(record["name"])
	width := intOr(record["width"], 0)
	height := intOr(record["height"], 0)
	data := asList(record["data"])

	if len(data) != width*height {
		return nil, fmt.Errorf("corrupt layer data for layer %q", name)
	}

	layer := tiled.NewTileLayer(name,
		intOr(record["x"], 0), intOr(record["y"], 0), width, height)
	applyCommonLayerFields(layer, record)

	x, y := 0, 0
	for _, gv := range data {
		rawGid, ok := asUint32(gv)
		if !ok {
			return nil, fmt.Errorf("unable to parse tile at (%d,%d) on layer %q", x, y, name)
		}

		// Unresolved gids are dangling references, not errors; the
		// cell stays empty.
		cell, _ := c.gids.Cell(rawGid)
		layer.SetCell(x, y, cell)

		x++
		if x >= width {
			x = 0
			y++
		}
	}

	return layer, nil
}

func (c *converter) toObjectGroup(record map[string]any) (*tiled.ObjectGroup, error) {
	group := tiled.NewObjectGroup(asString(record["name"]),
		intOr(record["x"], 0), intOr(record["y"], 0),
		intOr(record["width"], 0), intOr(record["height"], 0))
	applyCommonLayerFields(group, record)

	if rgba, ok := tiled.ParseColor(asString(record["color"])); ok {
		group.Color = &rgba
	}

	if drawOrderString := asString(record["draworder"]); drawOrderString != "" {
		group.DrawOrder = tiled.DrawOrderFromString(drawOrderString)
		if group.DrawOrder == tiled.UnknownOrder {
			return nil, fmt.Errorf("invalid draw order %q on layer %q",
				drawOrderString, group.Name())
		}
	}

	for _, ov := range asList(record["objects"]) {
		object, err := c.toMapObject(asMap(ov))
		if err != nil {
			return nil, err
		}
		group.AddObject(object)
	}

	return group, nil
}

func (c *converter) toMapObject(record map[string]any) (*tiled.MapObject, error) {
	name := asString(record["name"])
	typ := asString(record["type"])

	object := tiled.NewMapObject(name, typ,
		floatOr(record["x"], 0), floatOr(record["y"], 0),
		floatOr(record["width"], 0), floatOr(record["height"], 0))
	object.ID = intOr(record["id"], 0)
	object.Rotation = floatOr(record["rotation"], 0)

	if rawGid, ok := asUint32(record["gid"]); ok && rawGid != 0 {
		cell, _ := c.gids.Cell(rawGid)
		object.Cell = cell

		// A tile stamp with no explicit size takes the tile's own.
		if tile := cell.Tile(); tile != nil {
			size := tile.Size(cell.Tileset)
			if object.Width == 0 {
				object.Width = float64(size.X)
			}
			if object.Height == 0 {
				object.Height = float64(size.Y)
			}
		}
	}

	if _, present := record["visible"]; present {
		object.Visible = asBool(record["visible"])
	}

	object.Properties = c.toProperties(record["properties"])

	// When both vertex lists are present the polyline assignment runs
	// last and wins; the authoring tool never emits both, but the
	// precedence is kept as-is for documents that do.
	if polygon, present := record["polygon"]; present {
		object.Shape = tiled.Polygon
		object.Points = c.toPoints(polygon)
	}
	if polyline, present := record["polyline"]; present {
		object.Shape = tiled.Polyline
		object.Points = c.toPoints(polyline)
	}
	if _, present := record["ellipse"]; present {
		object.Shape = tiled.Ellipse
	}

	object.Extension = decodeExtension(c.registry.Lookup(typ), record)

	return object, nil
}

func (c *converter) toImageLayer(record map[string]any) (*tiled.ImageLayer, error) {
	layer := tiled.NewImageLayer(asString(record["name"]),
		intOr(record["x"], 0), intOr(record["y"], 0),
		intOr(record["width"], 0), intOr(record["height"], 0))
	applyCommonLayerFields(layer, record)

	if rgba, ok := tiled.ParseColor(asString(record["transparentcolor"])); ok {
		layer.TransparentColor = &rgba
	}

	if imageName := asString(record["image"]); imageName != "" {
		imagePath := c.resolvePath(imageName)
		size, err := c.probe(imagePath)
		if err != nil {
			return nil, fmt.Errorf("error loading image %q for layer %q: %w",
				imagePath, layer.Name(), err)
		}
		layer.Image = &tiled.ImageRef{Source: imagePath, Size: size}
	}

	return layer, nil
}

func (c *converter) toPoints(v any) []tiled.Point {
	list := asList(v)
	points := make([]tiled.Point, 0, len(list))
	for _, pv := range list {
		point := asMap(pv)
		points = append(points, tiled.Point{
			X: floatOr(point["x"], 0),
			Y: floatOr(point["y"], 0),
		})
	}
	return points
}
