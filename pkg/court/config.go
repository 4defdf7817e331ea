// pkg/court/config.go
package court

import (
	"fmt"
	"image/color"
)

// Point is a 2D point in physical court units (centimeters).
// X runs along the length of the court, Y along its width.
type Point struct {
	X float64
	Y float64
}

// Configuration describes the geometry of a volleyball court: physical
// dimensions, the landmark vertices derived from them, which vertices are
// connected by painted lines, and which vertices trace the outer boundary.
// It is built once and treated as a value; the renderers never mutate it.
type Configuration struct {
	Width              float64 // [cm]
	Length             float64 // [cm]
	AttackLineDistance float64 // [cm] from the net
	CentreLine         float64 // [cm], middle of the court
	NetHeight          float64 // [cm], informational only, not rendered

	// Edges lists pairs of 1-based vertex indices connected by a line:
	// the court boundary, the net and the two attack lines.
	Edges [][2]int

	// BoundaryVertexIndices traces the outer boundary polygon in order.
	// The enclosed area is what gets the inside fill color.
	BoundaryVertexIndices []int

	// Labels and Colors are per-vertex annotation metadata.
	Labels []string
	Colors []color.RGBA
}

var (
	defaultEdges = [][2]int{
		{1, 2}, {2, 10}, {10, 9}, {9, 1}, // court boundary
		{5, 6}, // net
		{3, 4}, // left attack line
		{7, 8}, // right attack line
	}

	defaultBoundary = []int{1, 2, 10, 9}

	defaultLabels = []string{
		"new-point-0", // top-left
		"new-point-1", // bottom-left
		"new-point-2", // left attack bottom
		"new-point-3", // left attack top
		"new-point-4", // net top
		"new-point-5", // net bottom
		"new-point-6", // right attack bottom
		"new-point-7", // right attack top
		"new-point-8", // top-right
		"new-point-9", // bottom-right
	}

	defaultColors = []color.RGBA{
		mustParseHex("#FF1493"), mustParseHex("#FF1493"),
		mustParseHex("#FF1493"), mustParseHex("#FF1493"),
		mustParseHex("#00BFFF"), mustParseHex("#00BFFF"),
		mustParseHex("#FF6347"), mustParseHex("#FF6347"),
		mustParseHex("#FF6347"), mustParseHex("#FF6347"),
	}
)

// NewConfiguration returns the standard indoor court: 9x18 m, attack lines
// 3 m from the net, net at 2.43 m. Every slice-valued field is a fresh copy
// so instances never share backing arrays.
func NewConfiguration() Configuration {
	return Configuration{
		Width:                 900,
		Length:                1800,
		AttackLineDistance:    300,
		CentreLine:            0,
		NetHeight:             243,
		Edges:                 append([][2]int(nil), defaultEdges...),
		BoundaryVertexIndices: append([]int(nil), defaultBoundary...),
		Labels:                append([]string(nil), defaultLabels...),
		Colors:                append([]color.RGBA(nil), defaultColors...),
	}
}

// Vertices derives the ten landmark points from the court dimensions.
// The ordering is fixed; Edges and BoundaryVertexIndices index into it.
func (c Configuration) Vertices() []Point {
	half := c.Length / 2
	return []Point{
		{0, c.Width},                           // top-left corner
		{0, 0},                                 // bottom-left corner
		{half - c.AttackLineDistance, 0},       // left attack line, bottom
		{half - c.AttackLineDistance, c.Width}, // left attack line, top
		{half, c.Width},                        // net, top
		{half, 0},                              // net, bottom
		{half + c.AttackLineDistance, 0},       // right attack line, bottom
		{half + c.AttackLineDistance, c.Width}, // right attack line, top
		{c.Length, c.Width},                    // top-right corner
		{c.Length, 0},                          // bottom-right corner
	}
}

// Validate reports whether the configuration is internally consistent:
// positive dimensions and every edge/boundary index a valid 1-based vertex
// index. The renderers do not call it; loading a definition file does.
func (c Configuration) Validate() error {
	if c.Width <= 0 || c.Length <= 0 {
		return fmt.Errorf("court dimensions must be positive, got %gx%g", c.Width, c.Length)
	}
	n := len(c.Vertices())
	for i, edge := range c.Edges {
		for _, idx := range edge {
			if idx < 1 || idx > n {
				return fmt.Errorf("edge %d references vertex %d, want 1..%d", i, idx, n)
			}
		}
	}
	if len(c.BoundaryVertexIndices) < 3 {
		return fmt.Errorf("boundary needs at least 3 vertices, got %d", len(c.BoundaryVertexIndices))
	}
	for i, idx := range c.BoundaryVertexIndices {
		if idx < 1 || idx > n {
			return fmt.Errorf("boundary index %d references vertex %d, want 1..%d", i, idx, n)
		}
	}
	return nil
}
