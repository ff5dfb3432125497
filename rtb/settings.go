// Package rtb models the game-specific metadata embedded in level
// documents: map-wide settings plus per-object extension records keyed by
// the object's type tag.
package rtb

import "image/color"

// LevelSettings is the map-wide game metadata block.
type LevelSettings struct {
	HasError bool

	// CustomGlowColor and CustomBackgroundColor are nil when the level
	// uses a color scheme instead of explicit colors.
	CustomGlowColor       *color.RGBA
	CustomBackgroundColor *color.RGBA

	LevelBrightness float64

	CloudDensity  float64
	CloudVelocity float64
	CloudAlpha    float64

	SnowDensity        float64
	SnowVelocity       float64
	SnowRisingVelocity float64

	CameraGrain      float64
	CameraContrast   float64
	CameraSaturation float64
	CameraGlow       float64

	HasWalls     bool
	HasStarfield bool

	LevelName        string
	LevelDescription string

	BackgroundColorScheme int
	GlowColorScheme       int
	Chapter               int
	Difficulty            int
	PlayStyle             int
	WorkshopID            int
	PreviewImagePath      string
}
