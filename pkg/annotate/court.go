// pkg/annotate/court.go

// Package annotate renders volleyball court diagrams and overlays
// (markers, paths, labels, control areas) onto BGR image buffers.
// Rasterization is delegated to OpenCV via gocv; every returned Mat is
// 8-bit, 3-channel, BGR, and owned by the caller.
package annotate

import (
	"image"

	"gocv.io/x/gocv"

	"go-court-annotator/pkg/court"
)

// scalePoint maps a physical-unit point to its padded pixel position.
// Coordinates truncate toward zero, matching the scaled image dimensions.
func scalePoint(p court.Point, scale float64, padding int) image.Point {
	return image.Point{
		X: int(p.X*scale) + padding,
		Y: int(p.Y*scale) + padding,
	}
}

// DrawCourt renders the bare court: an outside-colored canvas, the boundary
// polygon filled with the inside color, then every configured edge drawn as
// a line. The image is int(Width*Scale)+2*Padding rows by
// int(Length*Scale)+2*Padding columns. Deterministic for identical inputs;
// the configuration is not validated, degenerate geometry yields a
// degenerate image.
func DrawCourt(cfg court.Configuration, style CourtStyle) gocv.Mat {
	rows := int(cfg.Width*style.Scale) + 2*style.Padding
	cols := int(cfg.Length*style.Scale) + 2*style.Padding

	bg := gocv.NewScalar(float64(style.Outside.B), float64(style.Outside.G), float64(style.Outside.R), 0)
	img := gocv.NewMatWithSizeFromScalar(bg, rows, cols, gocv.MatTypeCV8UC3)

	vertices := cfg.Vertices()

	boundary := make([]image.Point, 0, len(cfg.BoundaryVertexIndices))
	for _, idx := range cfg.BoundaryVertexIndices {
		boundary = append(boundary, scalePoint(vertices[idx-1], style.Scale, style.Padding))
	}
	pts := gocv.NewPointsVectorFromPoints([][]image.Point{boundary})
	gocv.FillPoly(&img, pts, style.Inside)
	pts.Close()

	// lines go on top of the fill so they are never occluded
	for _, edge := range cfg.Edges {
		p1 := scalePoint(vertices[edge[0]-1], style.Scale, style.Padding)
		p2 := scalePoint(vertices[edge[1]-1], style.Scale, style.Padding)
		gocv.Line(&img, p1, p2, style.Line, style.LineThickness)
	}

	return img
}
