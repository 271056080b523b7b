package wire3d

import "errors"

var errNoBuffer = errors.New("no framebuffer")

// RGB565Surface draws into a little-endian RGB565 framebuffer.
//
// Callers provide the backing buffer, its layout (stride), and an optional
// present hook that pushes the buffer to the panel.
type RGB565Surface struct {
	Buf    []byte
	Stride int // bytes per row
	W      int
	H      int

	Background Color
	PresentFn  func() error
}

func (t *RGB565Surface) ok() bool {
	return t != nil && t.Buf != nil && t.Stride > 0 && t.W > 0 && t.H > 0
}

func (t *RGB565Surface) Size() (w, h int) { return t.W, t.H }

func (t *RGB565Surface) Clear() error {
	if !t.ok() {
		return errNoBuffer
	}
	p := t.Background.rgb565()
	lo := byte(p)
	hi := byte(p >> 8)
	for y := 0; y < t.H; y++ {
		row := y * t.Stride
		for x := 0; x < t.W; x++ {
			off := row + x*2
			if off < 0 || off+1 >= len(t.Buf) {
				continue
			}
			t.Buf[off] = lo
			t.Buf[off+1] = hi
		}
	}
	return nil
}

func (t *RGB565Surface) Present() error {
	if !t.ok() {
		return errNoBuffer
	}
	if t.PresentFn == nil {
		return nil
	}
	return t.PresentFn()
}

// SetPixel writes one pixel; out-of-bounds coordinates are ignored.
func (t *RGB565Surface) SetPixel(x, y int, c Color) {
	if !t.ok() || x < 0 || y < 0 || x >= t.W || y >= t.H {
		return
	}
	off := y*t.Stride + x*2
	if off < 0 || off+1 >= len(t.Buf) {
		return
	}
	p := c.rgb565()
	t.Buf[off] = byte(p)
	t.Buf[off+1] = byte(p >> 8)
}

// Pixel reads back one pixel as RGB565.
func (t *RGB565Surface) Pixel(x, y int) (uint16, bool) {
	if !t.ok() || x < 0 || y < 0 || x >= t.W || y >= t.H {
		return 0, false
	}
	off := y*t.Stride + x*2
	if off < 0 || off+1 >= len(t.Buf) {
		return 0, false
	}
	return uint16(t.Buf[off]) | uint16(t.Buf[off+1])<<8, true
}

// DrawLine draws a Bresenham line stamped with a Width x Width brush.
//
// Square brushes give square caps; Rounded trims the brush corners.
func (t *RGB565Surface) DrawLine(a, b Vec2, s Stroke) error {
	if !t.ok() {
		return errNoBuffer
	}
	w := s.Width
	if w < 1 {
		w = 1
	}
	lo := -(w - 1) / 2
	hi := lo + w - 1

	if max(a.X, b.X)+hi < 0 || min(a.X, b.X)+lo >= t.W ||
		max(a.Y, b.Y)+hi < 0 || min(a.Y, b.Y)+lo >= t.H {
		return nil
	}

	x0, y0, x1, y1 := a.X, a.Y, b.X, b.Y
	dx := absInt(x1 - x0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	dy := -absInt(y1 - y0)
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx + dy
	for {
		t.stamp(x0, y0, lo, hi, s)
		if x0 == x1 && y0 == y1 {
			return nil
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

func (t *RGB565Surface) stamp(x, y, lo, hi int, s Stroke) {
	if lo == hi {
		t.SetPixel(x, y, s.Color)
		return
	}
	for oy := lo; oy <= hi; oy++ {
		for ox := lo; ox <= hi; ox++ {
			if s.Rounded && hi-lo > 1 && (ox == lo || ox == hi) && (oy == lo || oy == hi) {
				continue
			}
			t.SetPixel(x+ox, y+oy, s.Color)
		}
	}
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
