package tiled

import (
	"fmt"
	"image/color"
)

// ParseColor parses "#rrggbb" or "#aarrggbb" into an RGBA color. Returns
// ok=false for anything else; callers treat that as "no color given".
func ParseColor(s string) (color.RGBA, bool) {
	switch len(s) {
	case 7:
		var r, g, b uint32
		if s[0] != '#' {
			return color.RGBA{}, false
		}
		if _, err := fmt.Sscanf(s[1:], "%02x%02x%02x", &r, &g, &b); err != nil {
			return color.RGBA{}, false
		}
		return color.RGBA{R: uint8(r), G: uint8(g), B: uint8(b), A: 0xff}, true
	case 9:
		var a, r, g, b uint32
		if s[0] != '#' {
			return color.RGBA{}, false
		}
		if _, err := fmt.Sscanf(s[1:], "%02x%02x%02x%02x", &a, &r, &g, &b); err != nil {
			return color.RGBA{}, false
		}
		return color.RGBA{R: uint8(r), G: uint8(g), B: uint8(b), A: uint8(a)}, true
	}
	return color.RGBA{}, false
}
