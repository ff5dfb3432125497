// Package imagemeta resolves image files to their pixel dimensions
// without decoding pixel data.
package imagemeta

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// Prober reports the pixel dimensions of the image at path. The map
// converter takes one of these so tests can stub out the filesystem.
type Prober func(path string) (image.Point, error)

// Probe reads just enough of the file at path to determine its format
// and dimensions.
func Probe(path string) (image.Point, error) {
	f, err := os.Open(path)
	if err != nil {
		return image.Point{}, fmt.Errorf("imagemeta: open %s: %w", path, err)
	}
	defer f.Close()

	cfg, _, err := image.DecodeConfig(f)
	if err != nil {
		return image.Point{}, fmt.Errorf("imagemeta: decode %s: %w", path, err)
	}
	return image.Point{X: cfg.Width, Y: cfg.Height}, nil
}
