package render

import (
	"image/color"

	"github.com/milk9111/rscedit/model"
	"golang.org/x/image/colornames"
)

var (
	ImpassibleTerrainOutline color.Color = colornames.Crimson
	WallOutline              color.Color = colornames.White
	KnownRoofOutline         color.Color = colornames.Orange
	UnknownRoofOutline       color.Color = colornames.Lime
	SceneryMarker            color.Color = colornames.Cyan
	ItemMarker               color.Color = colornames.Red
	NpcMarker                color.Color = colornames.Yellow
)

// LineLocation is one of the edges or diagonals of a tile.
type LineLocation int

const (
	BorderTop LineLocation = iota
	BorderRight
	DiagonalFromTopRight
	DiagonalFromTopLeft
)

func (l LineLocation) String() string {
	switch l {
	case BorderTop:
		return "BorderTop"
	case BorderRight:
		return "BorderRight"
	case DiagonalFromTopRight:
		return "DiagonalFromTopRight"
	case DiagonalFromTopLeft:
		return "DiagonalFromTopLeft"
	default:
		return "Unknown"
	}
}

// Segment returns the end points of l on a tile of the given size.
func (l LineLocation) Segment(t *model.Tile, size int) (x0, y0, x1, y1 int) {
	left, top := t.X, t.Y
	right, bottom := t.X+size-1, t.Y+size-1
	switch l {
	case BorderTop:
		return left, top, right, top
	case BorderRight:
		return right, top, right, bottom
	case DiagonalFromTopRight:
		return right, top, left, bottom
	default:
		return left, top, right, bottom
	}
}

func drawLine(s Surface, t *model.Tile, size int, l LineLocation, c color.Color) {
	s.SetColor(c)
	s.Line(l.Segment(t, size))
}
