// pkg/annotate/voronoi.go
package annotate

import (
	"math"

	"gocv.io/x/gocv"

	"go-court-annotator/pkg/court"
)

// DrawVoronoiDiagram shades every pixel with the color of the team whose
// nearest marker is closest, then blends that control layer over the court
// with the style's opacity. Ties go to team B, as does everything when team
// A has no markers. Unlike the in-place overlays this always returns a new
// image; a supplied courtMat is read, not mutated.
func DrawVoronoiDiagram(cfg court.Configuration, teamA, teamB []court.Point, style VoronoiStyle, courtMat *gocv.Mat) gocv.Mat {
	img := base(cfg, style.Padding, style.Scale, courtMat)

	rows := img.Rows()
	cols := img.Cols()
	control := gocv.NewMatWithSize(rows, cols, gocv.MatTypeCV8UC3)
	defer control.Close()

	for row := 0; row < rows; row++ {
		y := float64(row - style.Padding)
		for col := 0; col < cols; col++ {
			x := float64(col - style.Padding)
			c := style.TeamB
			if nearestSq(teamA, x, y, style.Scale) < nearestSq(teamB, x, y, style.Scale) {
				c = style.TeamA
			}
			control.SetUCharAt(row, col*3+0, c.B)
			control.SetUCharAt(row, col*3+1, c.G)
			control.SetUCharAt(row, col*3+2, c.R)
		}
	}

	overlay := gocv.NewMat()
	gocv.AddWeighted(control, style.Opacity, img, 1-style.Opacity, 0, &overlay)
	if courtMat == nil {
		img.Close()
	}
	return overlay
}

// nearestSq returns the squared distance from (x, y) to the closest marker
// in scaled pixel space, or +Inf when there are no markers.
func nearestSq(points []court.Point, x, y, scale float64) float64 {
	best := math.Inf(1)
	for _, p := range points {
		dx := p.X*scale - x
		dy := p.Y*scale - y
		if d := dx*dx + dy*dy; d < best {
			best = d
		}
	}
	return best
}
