package render

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"golang.org/x/image/vector"
)

// ImageSurface rasterizes onto a CPU image. The snapshot tool uses it to
// render sectors without opening a window.
type ImageSurface struct {
	Dst draw.Image

	src   *image.Uniform
	width float32
	z     *vector.Rasterizer
}

func NewImageSurface(dst draw.Image) *ImageSurface {
	return &ImageSurface{Dst: dst, src: image.NewUniform(color.White), width: 1}
}

func (s *ImageSurface) SetColor(c color.Color) {
	s.src = image.NewUniform(c)
}

func (s *ImageSurface) SetStrokeWidth(w float32) {
	s.width = w
}

func (s *ImageSurface) Fill(r image.Rectangle) {
	draw.Draw(s.Dst, r, s.src, image.Point{}, draw.Over)
}

// Stroke outlines r with its edges centred on the rectangle's border.
func (s *ImageSurface) Stroke(r image.Rectangle) {
	x0, y0 := float32(r.Min.X), float32(r.Min.Y)
	x1, y1 := float32(r.Max.X), float32(r.Max.Y)
	h := s.width / 2
	s.fillQuad(x0-h, y0-h, x1+h, y0-h, x1+h, y0+h, x0-h, y0+h)
	s.fillQuad(x0-h, y1-h, x1+h, y1-h, x1+h, y1+h, x0-h, y1+h)
	s.fillQuad(x0-h, y0-h, x0+h, y0-h, x0+h, y1+h, x0-h, y1+h)
	s.fillQuad(x1-h, y0-h, x1+h, y0-h, x1+h, y1+h, x1-h, y1+h)
}

func (s *ImageSurface) Line(x0, y0, x1, y1 int) {
	ax, ay := float32(x0)+0.5, float32(y0)+0.5
	bx, by := float32(x1)+0.5, float32(y1)+0.5
	dx, dy := bx-ax, by-ay
	length := float32(math.Hypot(float64(dx), float64(dy)))
	if length == 0 {
		return
	}
	nx, ny := -dy/length*s.width/2, dx/length*s.width/2
	s.fillQuad(ax+nx, ay+ny, bx+nx, by+ny, bx-nx, by-ny, ax-nx, ay-ny)
}

func (s *ImageSurface) fillQuad(ax, ay, bx, by, cx, cy, dx, dy float32) {
	minX := math.Floor(float64(min(ax, bx, cx, dx)))
	minY := math.Floor(float64(min(ay, by, cy, dy)))
	maxX := math.Ceil(float64(max(ax, bx, cx, dx)))
	maxY := math.Ceil(float64(max(ay, by, cy, dy)))
	r := image.Rect(int(minX), int(minY), int(maxX), int(maxY)).Intersect(s.Dst.Bounds())
	if r.Empty() {
		return
	}

	if s.z == nil {
		s.z = vector.NewRasterizer(r.Dx(), r.Dy())
	} else {
		s.z.Reset(r.Dx(), r.Dy())
	}
	s.z.DrawOp = draw.Over
	ox, oy := float32(r.Min.X), float32(r.Min.Y)
	s.z.MoveTo(ax-ox, ay-oy)
	s.z.LineTo(bx-ox, by-oy)
	s.z.LineTo(cx-ox, cy-oy)
	s.z.LineTo(dx-ox, dy-oy)
	s.z.ClosePath()
	s.z.Draw(s.Dst, r, s.src, image.Point{})
}
