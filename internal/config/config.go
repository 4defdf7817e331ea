// internal/config/config.go
package config

import "image/color"

const (
	DefaultPadding       = 20  // pixel margin around the scaled court
	DefaultScale         = 0.1 // centimeters to pixels
	DefaultLineThickness = 1

	DefaultMarkerRadius    = 10 // pixels
	DefaultMarkerThickness = 2  // marker ring thickness
	DefaultPathThickness   = 2

	DefaultLabelRadius    = 4
	DefaultLabelFontScale = 0.8

	DefaultVoronoiOpacity = 0.5

	ViewerDisplayScale = 4 // court pixels to window pixels
	ViewerFontSize     = 14
	ViewerHUDMargin    = 10
)

var (
	InsideColor  = color.RGBA{245, 161, 66, 255} // orange
	OutsideColor = color.RGBA{66, 161, 245, 255} // blue
	LineColor    = color.RGBA{255, 255, 255, 255}

	MarkerFaceColor = color.RGBA{255, 0, 0, 255}
	MarkerEdgeColor = color.RGBA{0, 0, 0, 255}
	PathColor       = color.RGBA{255, 255, 255, 255}
	LabelTextColor  = color.RGBA{255, 255, 255, 255}

	TeamAColor = color.RGBA{255, 0, 0, 255}
	TeamBColor = color.RGBA{255, 255, 255, 255}
)
