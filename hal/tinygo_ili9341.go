//go:build tinygo && baremetal

package hal

import (
	"machine"

	"tinygo.org/x/drivers/ili9341"
)

const (
	ili9341Width  = 320
	ili9341Height = 240
)

// ili9341Framebuffer keeps a little-endian RGB565 buffer in RAM and streams it
// to the panel row by row on Present.
type ili9341Framebuffer struct {
	w      int
	h      int
	stride int
	buf    []byte

	lcd   *ili9341.Device
	txBuf []byte
}

func newILI9341Framebuffer() (*ili9341Framebuffer, error) {
	err := machine.SPI0.Configure(machine.SPIConfig{
		SCK:       machine.GP18,
		SDO:       machine.GP19,
		SDI:       machine.GP16,
		Frequency: 40_000_000,
	})
	if err != nil {
		return nil, err
	}

	lcd := ili9341.NewSPI(machine.SPI0, machine.GP20, machine.GP17, machine.GP21)
	lcd.Configure(ili9341.Config{})
	if err := lcd.SetRotation(ili9341.Rotation90); err != nil {
		return nil, err
	}

	return &ili9341Framebuffer{
		w:      ili9341Width,
		h:      ili9341Height,
		stride: ili9341Width * 2,
		buf:    make([]byte, ili9341Width*ili9341Height*2),
		lcd:    lcd,
		txBuf:  make([]byte, ili9341Width*2),
	}, nil
}

func (f *ili9341Framebuffer) Width() int          { return f.w }
func (f *ili9341Framebuffer) Height() int         { return f.h }
func (f *ili9341Framebuffer) Format() PixelFormat { return PixelFormatRGB565 }
func (f *ili9341Framebuffer) StrideBytes() int    { return f.stride }
func (f *ili9341Framebuffer) Buffer() []byte      { return f.buf }

func (f *ili9341Framebuffer) ClearRGB(r, g, b uint8) {
	fillRGB565(f.buf, r, g, b)
}

// Present swaps each row to the panel's big-endian byte order.
func (f *ili9341Framebuffer) Present() error {
	for y := 0; y < f.h; y++ {
		row := f.buf[y*f.stride : (y+1)*f.stride]
		for i := 0; i+1 < len(row); i += 2 {
			f.txBuf[i] = row[i+1]
			f.txBuf[i+1] = row[i]
		}
		if err := f.lcd.DrawRGBBitmap8(0, int16(y), f.txBuf, int16(f.w), 1); err != nil {
			return err
		}
	}
	return nil
}
