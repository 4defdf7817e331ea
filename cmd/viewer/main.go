// cmd/viewer/main.go
package main

import (
	"fmt"
	"image/color"
	"log"

	"go-court-annotator/internal/config"
	"go-court-annotator/pkg/annotate"
	"go-court-annotator/pkg/court"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"gocv.io/x/gocv"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// App shows the rendered court and drops a marker wherever the user clicks,
// annotating the underlying court image incrementally.
type App struct {
	cfg         court.Configuration
	courtMat    gocv.Mat
	courtImg    *ebiten.Image
	markerStyle annotate.MarkerStyle
	markers     []court.Point
	fontFace    font.Face
	width       int
	height      int
}

func (a *App) Update() error {
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		cx, cy := ebiten.CursorPosition()
		px := float64(cx) / config.ViewerDisplayScale
		py := float64(cy) / config.ViewerDisplayScale
		// invert the scaled+padded mapping back to physical units
		p := court.Point{
			X: (px - float64(a.markerStyle.Padding)) / a.markerStyle.Scale,
			Y: (py - float64(a.markerStyle.Padding)) / a.markerStyle.Scale,
		}
		a.markers = append(a.markers, p)
		annotate.DrawPointsOnCourt(a.cfg, []court.Point{p}, a.markerStyle, &a.courtMat)
		a.refresh()
	}
	return nil
}

// refresh rebuilds the ebiten texture from the annotated Mat.
func (a *App) refresh() {
	img, err := a.courtMat.ToImage()
	if err != nil {
		log.Fatal(err)
	}
	a.courtImg = ebiten.NewImageFromImage(img)
}

func (a *App) Draw(screen *ebiten.Image) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(config.ViewerDisplayScale, config.ViewerDisplayScale)
	screen.DrawImage(a.courtImg, op)

	hud := fmt.Sprintf("markers: %d (left click to add)", len(a.markers))
	text.Draw(screen, hud, a.fontFace, config.ViewerHUDMargin, a.height-config.ViewerHUDMargin, color.White)
}

func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.width, a.height
}

func main() {
	cfg := court.NewConfiguration()
	mat := annotate.DrawCourt(cfg, annotate.DefaultCourtStyle())
	defer mat.Close()

	tt, err := opentype.Parse(goregular.TTF)
	if err != nil {
		log.Fatal(err)
	}
	face, err := opentype.NewFace(tt, &opentype.FaceOptions{
		Size:    config.ViewerFontSize,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		log.Fatal(err)
	}

	app := &App{
		cfg:         cfg,
		courtMat:    mat,
		markerStyle: annotate.DefaultMarkerStyle(),
		fontFace:    face,
		width:       mat.Cols() * config.ViewerDisplayScale,
		height:      mat.Rows() * config.ViewerDisplayScale,
	}
	app.refresh()

	ebiten.SetWindowSize(app.width, app.height)
	ebiten.SetWindowTitle("Volleyball Court")
	if err := ebiten.RunGame(app); err != nil {
		log.Fatal(err)
	}
}
