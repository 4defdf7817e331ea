// pkg/annotate/court_test.go
package annotate

import (
	"bytes"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocv.io/x/gocv"

	"go-court-annotator/pkg/court"
)

// assertBGR checks a single pixel against an RGBA color, in the Mat's
// blue-green-red channel order.
func assertBGR(t *testing.T, img gocv.Mat, row, col int, c color.RGBA) {
	t.Helper()
	v := img.GetVecbAt(row, col)
	assert.Equal(t, [3]uint8{c.B, c.G, c.R}, [3]uint8{v[0], v[1], v[2]},
		"pixel at row=%d col=%d", row, col)
}

func matBytes(t *testing.T, img *gocv.Mat) []byte {
	t.Helper()
	data, err := img.DataPtrUint8()
	require.NoError(t, err)
	return data
}

func TestDrawCourtDimensions(t *testing.T) {
	cfg := court.NewConfiguration()
	style := DefaultCourtStyle()

	img := DrawCourt(cfg, style)
	defer img.Close()

	// int(900*0.1)+2*20 by int(1800*0.1)+2*20
	assert.Equal(t, 130, img.Rows())
	assert.Equal(t, 220, img.Cols())
	assert.Equal(t, 3, img.Channels())
	assert.Equal(t, gocv.MatTypeCV8UC3, img.Type())
}

func TestDrawCourtRegions(t *testing.T) {
	cfg := court.NewConfiguration()
	style := DefaultCourtStyle()

	img := DrawCourt(cfg, style)
	defer img.Close()

	// padding band stays outside-colored
	assertBGR(t, img, 5, 5, style.Outside)
	assertBGR(t, img, 125, 215, style.Outside)
	assertBGR(t, img, 15, 110, style.Outside)

	// interior away from any line gets the inside color
	assertBGR(t, img, 65, 50, style.Inside)
	assertBGR(t, img, 40, 170, style.Inside)
}

func TestDrawCourtLines(t *testing.T) {
	cfg := court.NewConfiguration()
	style := DefaultCourtStyle()

	img := DrawCourt(cfg, style)
	defer img.Close()

	// net: vertical segment at col int(900*0.1)+20 spanning rows 20..110
	assertBGR(t, img, 20, 110, style.Line)
	assertBGR(t, img, 65, 110, style.Line)
	assertBGR(t, img, 110, 110, style.Line)

	// attack lines at cols 80 and 140, boundary at rows 20/110 and cols 20/200
	assertBGR(t, img, 65, 80, style.Line)
	assertBGR(t, img, 65, 140, style.Line)
	assertBGR(t, img, 20, 100, style.Line)
	assertBGR(t, img, 110, 100, style.Line)
	assertBGR(t, img, 65, 20, style.Line)
	assertBGR(t, img, 65, 200, style.Line)
}

func TestDrawCourtDeterministic(t *testing.T) {
	cfg := court.NewConfiguration()
	style := DefaultCourtStyle()

	a := DrawCourt(cfg, style)
	defer a.Close()
	b := DrawCourt(cfg, style)
	defer b.Close()

	assert.True(t, bytes.Equal(matBytes(t, &a), matBytes(t, &b)))
}

func TestDrawCourtCustomScaleAndPadding(t *testing.T) {
	cfg := court.NewConfiguration()
	style := DefaultCourtStyle()
	style.Scale = 0.05
	style.Padding = 10

	img := DrawCourt(cfg, style)
	defer img.Close()

	assert.Equal(t, 65, img.Rows())
	assert.Equal(t, 110, img.Cols())
}
