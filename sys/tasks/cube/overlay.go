package cube

import (
	"image/color"

	"gyrocube/sys/wire3d"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"
)

var statusColor = color.RGBA{R: 0xFF, G: 0xC1, B: 0x07, A: 0xFF}

// overlaySurface writes a status line on top of each frame just before it is presented.
type overlaySurface struct {
	*wire3d.RGB565Surface

	text func() string
	font tinyfont.Fonter
}

func newOverlaySurface(s *wire3d.RGB565Surface, text func() string) *overlaySurface {
	return &overlaySurface{RGB565Surface: s, text: text, font: &proggy.TinySZ8pt7b}
}

func (o *overlaySurface) Present() error {
	if o.text != nil {
		if line := o.text(); line != "" {
			tinyfont.WriteLine(&fbDisplayer{s: o.RGB565Surface}, o.font, 4, 12, line, statusColor)
		}
	}
	return o.RGB565Surface.Present()
}

// fbDisplayer adapts an RGB565 surface to the tinyfont drawing target.
type fbDisplayer struct {
	s *wire3d.RGB565Surface
}

var _ drivers.Displayer = (*fbDisplayer)(nil)

func (d *fbDisplayer) Size() (x, y int16) {
	w, h := d.s.Size()
	return int16(w), int16(h)
}

func (d *fbDisplayer) SetPixel(x, y int16, c color.RGBA) {
	d.s.SetPixel(int(x), int(y), wire3d.Color{R: c.R, G: c.G, B: c.B, A: c.A})
}

func (d *fbDisplayer) Display() error { return nil }
