// pkg/court/loader.go
package court

import (
	"encoding/json"
	"fmt"
	"image/color"
	"os"
)

// Definition mirrors the layout of a JSON court definition file. Geometry
// fields left out of the file fall back to the standard court.
type Definition struct {
	Width                 float64  `json:"width,omitempty"`
	Length                float64  `json:"length,omitempty"`
	AttackLineDistance    float64  `json:"attack_line_distance,omitempty"`
	NetHeight             float64  `json:"net_height,omitempty"`
	Edges                 [][2]int `json:"edges,omitempty"`
	BoundaryVertexIndices []int    `json:"boundary_vertices_indices,omitempty"`
	Labels                []string `json:"labels,omitempty"`
	Colors                []string `json:"colors,omitempty"` // "#RRGGBB"
}

// LoadConfiguration reads a court definition file and builds a validated
// Configuration from it.
func LoadConfiguration(path string) (Configuration, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Configuration{}, fmt.Errorf("failed to read court definition file: %w", err)
	}
	var def Definition
	if err := json.Unmarshal(data, &def); err != nil {
		return Configuration{}, fmt.Errorf("failed to unmarshal court definition: %w", err)
	}
	return def.Configuration()
}

// Configuration converts the raw definition into a validated Configuration.
func (d Definition) Configuration() (Configuration, error) {
	cfg := NewConfiguration()
	if d.Width > 0 {
		cfg.Width = d.Width
	}
	if d.Length > 0 {
		cfg.Length = d.Length
	}
	if d.AttackLineDistance > 0 {
		cfg.AttackLineDistance = d.AttackLineDistance
	}
	if d.NetHeight > 0 {
		cfg.NetHeight = d.NetHeight
	}
	if d.Edges != nil {
		cfg.Edges = d.Edges
	}
	if d.BoundaryVertexIndices != nil {
		cfg.BoundaryVertexIndices = d.BoundaryVertexIndices
	}
	if d.Labels != nil {
		cfg.Labels = d.Labels
	}
	if d.Colors != nil {
		colors := make([]color.RGBA, len(d.Colors))
		for i, s := range d.Colors {
			c, err := ParseHexColor(s)
			if err != nil {
				return Configuration{}, fmt.Errorf("vertex color %d: %w", i, err)
			}
			colors[i] = c
		}
		cfg.Colors = colors
	}
	if err := cfg.Validate(); err != nil {
		return Configuration{}, fmt.Errorf("invalid court definition: %w", err)
	}
	return cfg, nil
}
