package world

import (
	"github.com/milk9111/rscedit/model"
)

const (
	// SectorSize is the width and height of a landscape sector in tiles.
	SectorSize = 48
	// PlaneHeight is the world Y distance between stacked planes.
	PlaneHeight = 944
)

// Sector is the grid of tiles shown on the canvas.
type Sector struct {
	X, Y     int
	Plane    int
	TileSize int

	tiles []*model.Tile
}

// NewSector builds an empty sector whose tiles sit at col*tileSize,
// row*tileSize on the canvas.
func NewSector(sectorX, sectorY, plane, tileSize int) *Sector {
	s := &Sector{
		X:        sectorX,
		Y:        sectorY,
		Plane:    plane,
		TileSize: tileSize,
		tiles:    make([]*model.Tile, SectorSize*SectorSize),
	}
	for row := 0; row < SectorSize; row++ {
		for col := 0; col < SectorSize; col++ {
			s.tiles[row*SectorSize+col] = &model.Tile{
				X: col * tileSize,
				Y: row * tileSize,
			}
		}
	}
	return s
}

// TileAt returns the tile at col,row or nil outside the sector.
func (s *Sector) TileAt(col, row int) *model.Tile {
	if s == nil || col < 0 || row < 0 || col >= SectorSize || row >= SectorSize {
		return nil
	}
	return s.tiles[row*SectorSize+col]
}

// Tiles returns every tile in row-major order.
func (s *Sector) Tiles() []*model.Tile {
	if s == nil {
		return nil
	}
	return s.tiles
}

// Visible calls fn for each tile intersecting the canvas-space window
// [minX,maxX) x [minY,maxY).
func (s *Sector) Visible(minX, minY, maxX, maxY int, fn func(t *model.Tile)) {
	if s == nil || s.TileSize <= 0 {
		return
	}
	c0, r0 := clampCell(minX/s.TileSize), clampCell(minY/s.TileSize)
	c1, r1 := clampCell((maxX+s.TileSize-1)/s.TileSize), clampCell((maxY+s.TileSize-1)/s.TileSize)
	for row := r0; row < r1; row++ {
		for col := c0; col < c1; col++ {
			fn(s.tiles[row*SectorSize+col])
		}
	}
}

// Transform maps canvas positions in this sector to world coordinates.
func (s *Sector) Transform() Transform {
	return Transform{SectorX: s.X, SectorY: s.Y, Plane: s.Plane, TileSize: s.TileSize}
}

// Set replaces the tile data at col,row, keeping its canvas position.
func (s *Sector) Set(col, row int, t model.Tile) bool {
	cur := s.TileAt(col, row)
	if cur == nil {
		return false
	}
	t.X, t.Y = cur.X, cur.Y
	*cur = t
	return true
}

func clampCell(v int) int {
	if v < 0 {
		return 0
	}
	if v > SectorSize {
		return SectorSize
	}
	return v
}

// Transform converts canvas pixels to world tile coordinates.
type Transform struct {
	SectorX, SectorY int
	Plane            int
	TileSize         int
}

func (t Transform) ToWorld(x, y int) model.Point {
	size := t.TileSize
	if size <= 0 {
		size = 1
	}
	return model.Point{
		X: t.SectorX*SectorSize + x/size,
		Y: t.SectorY*SectorSize + y/size + t.Plane*PlaneHeight,
	}
}
