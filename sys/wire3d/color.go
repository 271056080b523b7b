package wire3d

import "image/color"

// Color is an RGBA color in 8-bit channels.
type Color struct {
	R, G, B, A uint8
}

func RGB(r, g, b uint8) Color { return Color{R: r, G: g, B: b, A: 0xFF} }

// RGBA converts c for image/color consumers (fonts, drivers).
func (c Color) RGBA() color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

func (c Color) rgb565() uint16 {
	return uint16((uint16(c.R>>3)&0x1F)<<11 | (uint16(c.G>>2)&0x3F)<<5 | (uint16(c.B>>3) & 0x1F))
}

var (
	Black = RGB(0, 0, 0)
	// Blue is the main shade of the Material blue palette.
	Blue = RGB(0x21, 0x96, 0xF3)
)
