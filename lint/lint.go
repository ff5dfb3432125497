// Package lint runs user-supplied tengo rule scripts against converted
// maps. A script receives a read-only fact tree describing the document
// and reports problems through a fail(msg) builtin; it cannot modify the
// map.
package lint

import (
	"fmt"
	"os"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"

	"github.com/huyiGithub/tiled"
)

// Violation is one problem a rule script reported.
type Violation struct {
	Message string
}

// Runner holds one compiled rule script, reusable across maps.
type Runner struct {
	compiled *tengo.Compiled
}

// NewRunner compiles the rule script source.
func NewRunner(src []byte) (*Runner, error) {
	script := tengo.NewScript(src)
	script.SetImports(stdlib.GetModuleMap("fmt", "text", "math"))

	if err := script.Add("level", map[string]any{}); err != nil {
		return nil, fmt.Errorf("lint: add level: %w", err)
	}
	if err := script.Add("fail", &tengo.UserFunction{Name: "fail"}); err != nil {
		return nil, fmt.Errorf("lint: add fail: %w", err)
	}

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("lint: compile: %w", err)
	}
	return &Runner{compiled: compiled}, nil
}

// NewRunnerFile compiles the rule script at path.
func NewRunnerFile(path string) (*Runner, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("lint: read script %s: %w", path, err)
	}
	return NewRunner(src)
}

// Check runs the script against m and returns the reported violations.
// A script runtime error is returned as err; it does not invalidate m.
func (r *Runner) Check(m *tiled.Map) ([]Violation, error) {
	var violations []Violation

	fail := &tengo.UserFunction{
		Name: "fail",
		Value: func(args ...tengo.Object) (tengo.Object, error) {
			if len(args) != 1 {
				return nil, tengo.ErrWrongNumArguments
			}
			msg, _ := tengo.ToString(args[0])
			violations = append(violations, Violation{Message: msg})
			return tengo.UndefinedValue, nil
		},
	}

	run := r.compiled.Clone()
	if err := run.Set("level", facts(m)); err != nil {
		return nil, fmt.Errorf("lint: set level: %w", err)
	}
	if err := run.Set("fail", fail); err != nil {
		return nil, fmt.Errorf("lint: set fail: %w", err)
	}
	if err := run.Run(); err != nil {
		return nil, fmt.Errorf("lint: run: %w", err)
	}

	return violations, nil
}

// facts flattens the document into plain maps and slices tengo can
// convert.
func facts(m *tiled.Map) map[string]any {
	tilesets := make([]any, 0, len(m.Tilesets))
	for _, ts := range m.Tilesets {
		tilesets = append(tilesets, map[string]any{
			"name":       ts.Name,
			"tilewidth":  ts.TileWidth,
			"tileheight": ts.TileHeight,
			"tilecount":  ts.TileCount(),
		})
	}

	layers := make([]any, 0, len(m.Layers))
	objects := make([]any, 0)
	for _, layer := range m.Layers {
		entry := map[string]any{
			"name":    layer.Name(),
			"visible": layer.Visible(),
			"opacity": layer.Opacity(),
		}
		switch l := layer.(type) {
		case *tiled.TileLayer:
			entry["type"] = "tilelayer"
		case *tiled.ObjectGroup:
			entry["type"] = "objectgroup"
			entry["objectcount"] = len(l.Objects)
			for _, o := range l.Objects {
				objects = append(objects, map[string]any{
					"id":      o.ID,
					"name":    o.Name,
					"type":    o.Type,
					"x":       o.X,
					"y":       o.Y,
					"width":   o.Width,
					"height":  o.Height,
					"visible": o.Visible,
					"layer":   layer.Name(),
				})
			}
		case *tiled.ImageLayer:
			entry["type"] = "imagelayer"
		}
		layers = append(layers, entry)
	}

	return map[string]any{
		"orientation": m.Orientation.String(),
		"width":       m.Width,
		"height":      m.Height,
		"tilewidth":   m.TileWidth,
		"tileheight":  m.TileHeight,
		"name":        m.RTB.LevelName,
		"chapter":     m.RTB.Chapter,
		"difficulty":  m.RTB.Difficulty,
		"tilesets":    tilesets,
		"layers":      layers,
		"objects":     objects,
	}
}
