// pkg/court/config_test.go
package court

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVertexLayout(t *testing.T) {
	cfg := NewConfiguration()
	vs := cfg.Vertices()
	require.Len(t, vs, 10)

	expected := []Point{
		{0, 900},    // top-left
		{0, 0},      // bottom-left
		{600, 0},    // left attack bottom
		{600, 900},  // left attack top
		{900, 900},  // net top
		{900, 0},    // net bottom
		{1200, 0},   // right attack bottom
		{1200, 900}, // right attack top
		{1800, 900}, // top-right
		{1800, 0},   // bottom-right
	}
	assert.Equal(t, expected, vs)
}

func TestVerticesFollowDimensions(t *testing.T) {
	cfg := NewConfiguration()
	cfg.Width = 800
	cfg.Length = 1600
	cfg.AttackLineDistance = 250

	vs := cfg.Vertices()
	assert.Equal(t, Point{550, 0}, vs[2])
	assert.Equal(t, Point{800, 800}, vs[4])
	assert.Equal(t, Point{1050, 800}, vs[7])
	assert.Equal(t, Point{1600, 0}, vs[9])
}

func TestIndicesInRange(t *testing.T) {
	cfg := NewConfiguration()
	n := len(cfg.Vertices())

	for _, edge := range cfg.Edges {
		for _, idx := range edge {
			assert.GreaterOrEqual(t, idx, 1)
			assert.LessOrEqual(t, idx, n)
		}
	}
	for _, idx := range cfg.BoundaryVertexIndices {
		assert.GreaterOrEqual(t, idx, 1)
		assert.LessOrEqual(t, idx, n)
	}
	assert.Len(t, cfg.Labels, n)
	assert.Len(t, cfg.Colors, n)
}

func TestInstancesOwnTheirSlices(t *testing.T) {
	a := NewConfiguration()
	b := NewConfiguration()

	a.Edges[0] = [2]int{9, 9}
	a.BoundaryVertexIndices[0] = 5
	a.Labels[0] = "changed"

	assert.Equal(t, [2]int{1, 2}, b.Edges[0])
	assert.Equal(t, 1, b.BoundaryVertexIndices[0])
	assert.Equal(t, "new-point-0", b.Labels[0])
}

func TestValidate(t *testing.T) {
	cfg := NewConfiguration()
	require.NoError(t, cfg.Validate())

	bad := NewConfiguration()
	bad.Edges = append(bad.Edges, [2]int{0, 11})
	assert.Error(t, bad.Validate())

	short := NewConfiguration()
	short.BoundaryVertexIndices = []int{1, 2}
	assert.Error(t, short.Validate())

	neg := NewConfiguration()
	neg.Width = -1
	assert.Error(t, neg.Validate())
}
