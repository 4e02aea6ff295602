package model

import "image"

// Tile is one landscape cell as the editor canvas sees it. X and Y are the
// tile's top-left corner in canvas pixels.
type Tile struct {
	X, Y int

	GroundTexture   int
	GroundOverlay   int
	TopBorderWall   int
	RightBorderWall int
	DiagonalWalls   int
	RoofTexture     int
}

// Bounds returns the square the tile covers on the canvas.
func (t *Tile) Bounds(size int) image.Rectangle {
	return image.Rect(t.X, t.Y, t.X+size, t.Y+size)
}

// Point is a world coordinate.
type Point struct {
	X, Y int
}
