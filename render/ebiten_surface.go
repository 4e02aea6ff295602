package render

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// EbitenSurface draws onto an ebiten image through the vector package,
// applying the canvas pan and zoom.
type EbitenSurface struct {
	Dst     *ebiten.Image
	OffsetX float64
	OffsetY float64
	Zoom    float64

	clr   color.Color
	width float32
}

func NewEbitenSurface(dst *ebiten.Image, offsetX, offsetY, zoom float64) *EbitenSurface {
	return &EbitenSurface{Dst: dst, OffsetX: offsetX, OffsetY: offsetY, Zoom: zoom, clr: color.White, width: 1}
}

func (s *EbitenSurface) SetColor(c color.Color) {
	s.clr = c
}

func (s *EbitenSurface) SetStrokeWidth(w float32) {
	s.width = w
}

func (s *EbitenSurface) Fill(r image.Rectangle) {
	if s.Dst == nil {
		return
	}
	x, y := s.project(r.Min.X, r.Min.Y)
	z := float32(s.zoom())
	vector.FillRect(s.Dst, x, y, float32(r.Dx())*z, float32(r.Dy())*z, s.clr, false)
}

func (s *EbitenSurface) Stroke(r image.Rectangle) {
	if s.Dst == nil {
		return
	}
	x, y := s.project(r.Min.X, r.Min.Y)
	z := float32(s.zoom())
	vector.StrokeRect(s.Dst, x, y, float32(r.Dx())*z, float32(r.Dy())*z, s.width*z, s.clr, false)
}

func (s *EbitenSurface) Line(x0, y0, x1, y1 int) {
	if s.Dst == nil {
		return
	}
	ax, ay := s.project(x0, y0)
	bx, by := s.project(x1, y1)
	vector.StrokeLine(s.Dst, ax, ay, bx, by, s.width*float32(s.zoom()), s.clr, true)
}

func (s *EbitenSurface) zoom() float64 {
	if s.Zoom <= 0 {
		return 1
	}
	return s.Zoom
}

func (s *EbitenSurface) project(x, y int) (float32, float32) {
	z := s.zoom()
	return float32(float64(x)*z + s.OffsetX), float32(float64(y)*z + s.OffsetY)
}
