// cmd/render/main.go
package main

import (
	"flag"
	"log"
	"path/filepath"

	"go-court-annotator/internal/config"
	"go-court-annotator/pkg/annotate"
	"go-court-annotator/pkg/court"

	"gocv.io/x/gocv"
)

func main() {
	out := flag.String("out", ".", "output directory for rendered images")
	scale := flag.Float64("scale", config.DefaultScale, "centimeters-to-pixels ratio")
	padding := flag.Int("padding", config.DefaultPadding, "pixel margin around the court")
	defPath := flag.String("court", "", "optional JSON court definition file")
	flag.Parse()

	cfg := court.NewConfiguration()
	if *defPath != "" {
		loaded, err := court.LoadConfiguration(*defPath)
		if err != nil {
			log.Fatal(err)
		}
		cfg = loaded
	}

	courtStyle := annotate.DefaultCourtStyle()
	courtStyle.Scale = *scale
	courtStyle.Padding = *padding

	base := annotate.DrawCourt(cfg, courtStyle)
	defer base.Close()
	save(*out, "court.png", base)

	rally := []court.Point{
		{X: 150, Y: 450},
		{X: 620, Y: 210},
		{X: 910, Y: 700},
		{X: 1240, Y: 320},
		{X: 1650, Y: 480},
	}

	markerStyle := annotate.DefaultMarkerStyle()
	markerStyle.Scale = *scale
	markerStyle.Padding = *padding
	markers := base.Clone()
	annotate.DrawPointsOnCourt(cfg, rally, markerStyle, &markers)
	save(*out, "court_markers.png", markers)
	markers.Close()

	pathStyle := annotate.DefaultPathStyle()
	pathStyle.Scale = *scale
	pathStyle.Padding = *padding
	paths := base.Clone()
	annotate.DrawPathsOnCourt(cfg, [][]court.Point{rally}, pathStyle, &paths)
	save(*out, "court_path.png", paths)
	paths.Close()

	labelStyle := annotate.DefaultLabelStyle()
	labelStyle.Scale = *scale
	labelStyle.Padding = *padding
	labels := base.Clone()
	annotate.DrawLabelsOnCourt(cfg, labelStyle, &labels)
	save(*out, "court_labels.png", labels)
	labels.Close()

	voronoiStyle := annotate.DefaultVoronoiStyle()
	voronoiStyle.Scale = *scale
	voronoiStyle.Padding = *padding
	teamA := []court.Point{{X: 300, Y: 250}, {X: 500, Y: 650}, {X: 750, Y: 450}}
	teamB := []court.Point{{X: 1050, Y: 450}, {X: 1300, Y: 250}, {X: 1500, Y: 650}}
	voronoi := annotate.DrawVoronoiDiagram(cfg, teamA, teamB, voronoiStyle, &base)
	save(*out, "court_voronoi.png", voronoi)
	voronoi.Close()
}

func save(dir, name string, img gocv.Mat) {
	path := filepath.Join(dir, name)
	if ok := gocv.IMWrite(path, img); !ok {
		log.Fatalf("failed to write %s", path)
	}
	log.Printf("wrote %s", path)
}
