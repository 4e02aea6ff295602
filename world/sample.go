package world

import "github.com/milk9111/rscedit/model"

// SeedSample paints a small demo landscape so the canvas has something on
// it until landscape archives can be opened.
func SeedSample(s *Sector) {
	for row := 0; row < SectorSize; row++ {
		for col := 0; col < SectorSize; col++ {
			s.Set(col, row, model.Tile{GroundTexture: 64 + (col*7+row*3)%24})
		}
	}

	// east-west road
	for col := 0; col < SectorSize; col++ {
		t := *s.TileAt(col, 20)
		t.GroundOverlay = 1
		s.Set(col, 20, t)
	}

	// pond
	for row := 30; row < 38; row++ {
		for col := 8; col < 16; col++ {
			t := *s.TileAt(col, row)
			t.GroundOverlay = 2
			s.Set(col, row, t)
		}
	}

	// house with a wall all round, a diagonal corner and a thatched roof
	for row := 4; row < 10; row++ {
		for col := 28; col < 36; col++ {
			t := *s.TileAt(col, row)
			t.GroundOverlay = 3
			t.RoofTexture = 1
			if row == 4 {
				t.TopBorderWall = 1
			}
			if col == 35 {
				t.RightBorderWall = 1
			}
			s.Set(col, row, t)
		}
	}
	corner := *s.TileAt(28, 9)
	corner.DiagonalWalls = 12001
	s.Set(28, 9, corner)

	// a roof code that is missing from the definitions
	stray := *s.TileAt(40, 40)
	stray.RoofTexture = 99
	s.Set(40, 40, stray)
}
