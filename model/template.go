package model

// TerrainTemplate is a named terrain preset. Nil fields are left untouched
// when the template is applied.
type TerrainTemplate struct {
	Name            string `yaml:"name"`
	GroundTexture   *int   `yaml:"ground_texture,omitempty"`
	GroundOverlay   *int   `yaml:"ground_overlay,omitempty"`
	RoofTexture     *int   `yaml:"roof_texture,omitempty"`
	TopBorderWall   *int   `yaml:"top_border_wall,omitempty"`
	RightBorderWall *int   `yaml:"right_border_wall,omitempty"`
	DiagonalWalls   *int   `yaml:"diagonal_walls,omitempty"`
}

// Apply returns a copy of t with the template's fields written over it.
func (tt *TerrainTemplate) Apply(t Tile) Tile {
	if tt == nil {
		return t
	}
	set := func(dst *int, src *int) {
		if src != nil {
			*dst = *src
		}
	}
	set(&t.GroundTexture, tt.GroundTexture)
	set(&t.GroundOverlay, tt.GroundOverlay)
	set(&t.RoofTexture, tt.RoofTexture)
	set(&t.TopBorderWall, tt.TopBorderWall)
	set(&t.RightBorderWall, tt.RightBorderWall)
	set(&t.DiagonalWalls, tt.DiagonalWalls)
	return t
}
