// pkg/annotate/style.go
package annotate

import (
	"image/color"

	"go-court-annotator/internal/config"
)

// CourtStyle holds everything DrawCourt needs besides the geometry.
type CourtStyle struct {
	Inside        color.RGBA
	Outside       color.RGBA
	Line          color.RGBA
	Padding       int     // pixel margin on every side
	LineThickness int     // pixels
	Scale         float64 // centimeters to pixels
}

// DefaultCourtStyle returns the orange-on-blue palette at 0.1 scale.
func DefaultCourtStyle() CourtStyle {
	return CourtStyle{
		Inside:        config.InsideColor,
		Outside:       config.OutsideColor,
		Line:          config.LineColor,
		Padding:       config.DefaultPadding,
		LineThickness: config.DefaultLineThickness,
		Scale:         config.DefaultScale,
	}
}

// MarkerStyle holds the options for circular point markers.
type MarkerStyle struct {
	Face      color.RGBA
	Edge      color.RGBA
	Radius    int // pixels
	Thickness int // ring thickness in pixels
	Padding   int
	Scale     float64
}

func DefaultMarkerStyle() MarkerStyle {
	return MarkerStyle{
		Face:      config.MarkerFaceColor,
		Edge:      config.MarkerEdgeColor,
		Radius:    config.DefaultMarkerRadius,
		Thickness: config.DefaultMarkerThickness,
		Padding:   config.DefaultPadding,
		Scale:     config.DefaultScale,
	}
}

// PathStyle holds the options for polyline overlays.
type PathStyle struct {
	Line      color.RGBA
	Thickness int
	Padding   int
	Scale     float64
}

func DefaultPathStyle() PathStyle {
	return PathStyle{
		Line:      config.PathColor,
		Thickness: config.DefaultPathThickness,
		Padding:   config.DefaultPadding,
		Scale:     config.DefaultScale,
	}
}

// LabelStyle holds the options for the vertex-label overlay. Vertex dot
// colors come from the configuration itself.
type LabelStyle struct {
	Text      color.RGBA
	Radius    int
	FontScale float64
	Padding   int
	Scale     float64
}

func DefaultLabelStyle() LabelStyle {
	return LabelStyle{
		Text:      config.LabelTextColor,
		Radius:    config.DefaultLabelRadius,
		FontScale: config.DefaultLabelFontScale,
		Padding:   config.DefaultPadding,
		Scale:     config.DefaultScale,
	}
}

// VoronoiStyle holds the options for the two-team control overlay.
type VoronoiStyle struct {
	TeamA   color.RGBA
	TeamB   color.RGBA
	Opacity float64 // overlay weight, 0..1
	Padding int
	Scale   float64
}

func DefaultVoronoiStyle() VoronoiStyle {
	return VoronoiStyle{
		TeamA:   config.TeamAColor,
		TeamB:   config.TeamBColor,
		Opacity: config.DefaultVoronoiOpacity,
		Padding: config.DefaultPadding,
		Scale:   config.DefaultScale,
	}
}
