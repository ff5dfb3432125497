// mapview renders a converted map as colored cells and object outlines,
// re-converting whenever the file changes on disk.
package main

import (
	"flag"
	"fmt"
	"image/color"
	"log"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/huyiGithub/tiled"
	"github.com/huyiGithub/tiled/jsonmap"
)

// layerPalette cycles per tile-layer index, cellPalette per tileset index
// within a layer.
var layerPalette = []color.RGBA{
	{R: 0x3c, G: 0x78, B: 0xff, A: 0xff},
	{R: 0x46, G: 0xb4, B: 0x5a, A: 0xff},
	{R: 0xd2, G: 0x6e, B: 0x32, A: 0xff},
	{R: 0x96, G: 0x50, B: 0xc8, A: 0xff},
}

var objectColor = color.RGBA{R: 0xff, G: 0x3c, B: 0x3c, A: 0x90}

type Game struct {
	mapPath string
	scale   float64

	current *tiled.Map
	loadErr error

	watcher *jsonmap.Watcher

	cellImg *ebiten.Image
}

func NewGame(mapPath string, scale float64) (*Game, error) {
	m, err := jsonmap.ReadFile(mapPath)
	if err != nil {
		// Start anyway; the watcher delivers a good map after the
		// author fixes the file.
		log.Printf("mapview: %s: %v", mapPath, err)
	}

	watcher, werr := jsonmap.Watch([]string{filepath.Dir(mapPath)})
	if werr != nil {
		return nil, werr
	}

	cellImg := ebiten.NewImage(1, 1)
	cellImg.Fill(color.White)

	return &Game{
		mapPath: mapPath,
		scale:   scale,
		current: m,
		loadErr: err,
		watcher: watcher,
		cellImg: cellImg,
	}, nil
}

func (g *Game) Update() error {
	for {
		select {
		case reload, ok := <-g.watcher.Reloads:
			if !ok {
				return nil
			}
			if reload.Path != "" && reload.Path != g.mapPath {
				continue
			}
			if reload.Err != nil {
				// Keep the last good map on screen.
				g.loadErr = reload.Err
				continue
			}
			g.current = reload.Map
			g.loadErr = nil
		default:
			return nil
		}
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	if g.current != nil {
		g.drawMap(screen, g.current)
	}

	status := g.mapPath
	if g.loadErr != nil {
		status = fmt.Sprintf("%s\n%v", g.mapPath, g.loadErr)
	}
	ebitenutil.DebugPrint(screen, status)
}

func (g *Game) drawMap(screen *ebiten.Image, m *tiled.Map) {
	if bg := m.BackgroundColor; bg != nil {
		screen.Fill(*bg)
	}

	tw := float64(m.TileWidth) * g.scale
	th := float64(m.TileHeight) * g.scale

	layerIndex := 0
	for _, layer := range m.Layers {
		if !layer.Visible() {
			continue
		}
		switch l := layer.(type) {
		case *tiled.TileLayer:
			base := layerPalette[layerIndex%len(layerPalette)]
			g.drawTileLayer(screen, l, base, tw, th)
			layerIndex++
		case *tiled.ObjectGroup:
			g.drawObjects(screen, l)
		}
	}
}

func (g *Game) drawTileLayer(screen *ebiten.Image, l *tiled.TileLayer, base color.RGBA, tw, th float64) {
	width, height := l.Size()
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			cell := l.CellAt(x, y)
			if cell.IsEmpty() {
				continue
			}
			op := &ebiten.DrawImageOptions{}
			op.GeoM.Scale(tw-1, th-1)
			op.GeoM.Translate(float64(x)*tw, float64(y)*th)
			op.ColorScale.ScaleWithColor(base)
			screen.DrawImage(g.cellImg, op)
		}
	}
}

func (g *Game) drawObjects(screen *ebiten.Image, l *tiled.ObjectGroup) {
	for _, o := range l.Objects {
		if !o.Visible || o.Width <= 0 || o.Height <= 0 {
			continue
		}
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(o.Width*g.scale, o.Height*g.scale)
		op.GeoM.Translate(o.X*g.scale, o.Y*g.scale)
		op.ColorScale.ScaleWithColor(objectColor)
		screen.DrawImage(g.cellImg, op)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return outsideWidth, outsideHeight
}

func main() {
	mapPath := flag.String("map", "", "path to the map JSON document")
	scale := flag.Float64("scale", 1, "zoom factor")
	flag.Parse()

	if *mapPath == "" {
		flag.Usage()
		log.Fatal("mapview: -map is required")
	}

	game, err := NewGame(*mapPath, *scale)
	if err != nil {
		log.Fatal(err)
	}
	defer game.watcher.Close()

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(1280, 720)
	ebiten.SetWindowTitle("mapview")

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
