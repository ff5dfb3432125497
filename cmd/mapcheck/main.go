// mapcheck converts a map document and reports the first fatal problem,
// or prints a summary and any lint-rule violations.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/huyiGithub/tiled"
	"github.com/huyiGithub/tiled/jsonmap"
	"github.com/huyiGithub/tiled/lint"
	"github.com/huyiGithub/tiled/rtb"
)

func main() {
	mapPath := flag.String("map", "", "path to the map JSON document")
	dir := flag.String("dir", "", "base directory for relative image paths (default: the map's directory)")
	rulesPath := flag.String("rules", "", "optional tengo lint rule script")
	registryPath := flag.String("registry", "", "optional YAML object-type registry")
	flag.Parse()

	if *mapPath == "" {
		flag.Usage()
		os.Exit(2)
	}

	var opts []jsonmap.Option
	if *registryPath != "" {
		registry, err := rtb.LoadRegistry(*registryPath)
		if err != nil {
			log.Fatal(err)
		}
		opts = append(opts, jsonmap.WithRegistry(registry))
	}

	var (
		m   *tiled.Map
		err error
	)
	if *dir != "" {
		f, openErr := os.Open(*mapPath)
		if openErr != nil {
			log.Fatal(openErr)
		}
		m, err = jsonmap.Read(f, *dir, opts...)
		f.Close()
	} else {
		m, err = jsonmap.ReadFile(*mapPath, opts...)
	}
	if err != nil {
		log.Fatalf("%s: %v", *mapPath, err)
	}

	printSummary(m)

	if *rulesPath != "" {
		runner, err := lint.NewRunnerFile(*rulesPath)
		if err != nil {
			log.Fatal(err)
		}
		violations, err := runner.Check(m)
		if err != nil {
			log.Fatal(err)
		}
		for _, v := range violations {
			fmt.Printf("lint: %s\n", v.Message)
		}
		if len(violations) > 0 {
			os.Exit(1)
		}
	}
}

func printSummary(m *tiled.Map) {
	fmt.Printf("%s %dx%d (%dx%d px tiles)\n",
		m.Orientation, m.Width, m.Height, m.TileWidth, m.TileHeight)
	if m.RTB.LevelName != "" {
		fmt.Printf("level %q chapter %d difficulty %d\n",
			m.RTB.LevelName, m.RTB.Chapter, m.RTB.Difficulty)
	}
	for _, ts := range m.Tilesets {
		fmt.Printf("tileset %q: %d tiles", ts.Name, ts.TileCount())
		if ts.Image != nil {
			fmt.Printf(" from %s (%dx%d)", ts.Image.Source, ts.Image.Size.X, ts.Image.Size.Y)
		}
		fmt.Println()
	}
	for _, layer := range m.Layers {
		switch l := layer.(type) {
		case *tiled.TileLayer:
			w, h := l.Size()
			fmt.Printf("tile layer %q: %dx%d\n", l.Name(), w, h)
		case *tiled.ObjectGroup:
			fmt.Printf("object layer %q: %d objects\n", l.Name(), len(l.Objects))
		case *tiled.ImageLayer:
			fmt.Printf("image layer %q\n", l.Name())
		}
	}
}
