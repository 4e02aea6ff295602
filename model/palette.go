package model

import "image/color"

// GroundPalette maps a ground texture index to its canvas colour.
type GroundPalette []color.RGBA

// NewGroundPalette builds the 256 entry ground ramp used by the game client:
// four 64 step gradients running from pale grass through green and brown to
// dark soil.
func NewGroundPalette() GroundPalette {
	p := make(GroundPalette, 256)
	for i := 0; i < 64; i++ {
		p[i] = rgb(255-i*4, 255-int(float64(i)*1.75), 255-i*4)
		p[i+64] = rgb(i*3, 144, 0)
		p[i+128] = rgb(192-int(float64(i)*1.5), 144-int(float64(i)*1.5), 0)
		p[i+192] = rgb(96-int(float64(i)*1.5), 48+int(float64(i)*1.5), 0)
	}
	return p
}

// Color returns the colour for index, or false when the index is outside the
// palette.
func (p GroundPalette) Color(index int) (color.RGBA, bool) {
	if index < 0 || index >= len(p) {
		return color.RGBA{}, false
	}
	return p[index], true
}

// Darker scales each channel by 0.7, keeping alpha.
func Darker(c color.RGBA) color.RGBA {
	const factor = 0.7
	return color.RGBA{
		R: uint8(float64(c.R) * factor),
		G: uint8(float64(c.G) * factor),
		B: uint8(float64(c.B) * factor),
		A: c.A,
	}
}

func rgb(r, g, b int) color.RGBA {
	return color.RGBA{R: clamp8(r), G: clamp8(g), B: clamp8(b), A: 0xff}
}

func clamp8(v int) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
