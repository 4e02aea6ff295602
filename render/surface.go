package render

import (
	"image"
	"image/color"
)

// Surface is the immediate-mode 2D context tiles are drawn onto. Coordinates
// are canvas pixels; implementations map them to their own space.
type Surface interface {
	SetColor(c color.Color)
	SetStrokeWidth(w float32)
	Fill(r image.Rectangle)
	Stroke(r image.Rectangle)
	Line(x0, y0, x1, y1 int)
}

// rectWH builds a rectangle from an origin and size.
func rectWH(x, y, w, h int) image.Rectangle {
	return image.Rect(x, y, x+w, y+h)
}
