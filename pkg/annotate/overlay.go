// pkg/annotate/overlay.go
package annotate

import (
	"image"

	"gocv.io/x/gocv"

	"go-court-annotator/pkg/court"
)

// base returns the image to annotate: the caller's Mat when one is given,
// otherwise a freshly rendered default-colored court using the overlay's
// padding and scale.
func base(cfg court.Configuration, padding int, scale float64, courtMat *gocv.Mat) gocv.Mat {
	if courtMat != nil {
		return *courtMat
	}
	cs := DefaultCourtStyle()
	cs.Padding = padding
	cs.Scale = scale
	return DrawCourt(cfg, cs)
}

// DrawPointsOnCourt draws a circular marker at every point: a filled disk in
// the face color, then a ring in the edge color on top. Points are drawn in
// input order, later markers over earlier ones; coordinates outside the
// image clip silently at the rasterization layer. When courtMat is non-nil
// it is annotated in place and returned, so its padding and scale must match
// the style's.
func DrawPointsOnCourt(cfg court.Configuration, points []court.Point, style MarkerStyle, courtMat *gocv.Mat) gocv.Mat {
	img := base(cfg, style.Padding, style.Scale, courtMat)
	for _, p := range points {
		center := scalePoint(p, style.Scale, style.Padding)
		gocv.Circle(&img, center, style.Radius, style.Face, -1)
		gocv.Circle(&img, center, style.Radius, style.Edge, style.Thickness)
	}
	return img
}

// DrawPathsOnCourt draws each path as a polyline between consecutive
// points. Paths with fewer than two points are skipped.
func DrawPathsOnCourt(cfg court.Configuration, paths [][]court.Point, style PathStyle, courtMat *gocv.Mat) gocv.Mat {
	img := base(cfg, style.Padding, style.Scale, courtMat)
	for _, path := range paths {
		if len(path) < 2 {
			continue
		}
		prev := scalePoint(path[0], style.Scale, style.Padding)
		for _, p := range path[1:] {
			next := scalePoint(p, style.Scale, style.Padding)
			gocv.Line(&img, prev, next, style.Line, style.Thickness)
			prev = next
		}
	}
	return img
}

// DrawLabelsOnCourt marks every configured vertex with a dot in its
// per-vertex color and writes its label next to it. Vertices without a
// configured color fall back to the text color.
func DrawLabelsOnCourt(cfg court.Configuration, style LabelStyle, courtMat *gocv.Mat) gocv.Mat {
	img := base(cfg, style.Padding, style.Scale, courtMat)
	for i, v := range cfg.Vertices() {
		center := scalePoint(v, style.Scale, style.Padding)
		dot := style.Text
		if i < len(cfg.Colors) {
			dot = cfg.Colors[i]
		}
		gocv.Circle(&img, center, style.Radius, dot, -1)
		if i < len(cfg.Labels) {
			org := image.Pt(center.X+style.Radius+2, center.Y+style.Radius)
			gocv.PutText(&img, cfg.Labels[i], org, gocv.FontHersheyPlain, style.FontScale, style.Text, 1)
		}
	}
	return img
}
