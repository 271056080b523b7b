package app

import (
	"fmt"
	"image/color"
	"strings"
	"unicode/utf8"

	"gyrocube/hal"
	"gyrocube/sys/kernel"

	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"
)

const (
	panicLineHeight = 10
	panicBaseline   = 8
)

func installPanicHandler(k *kernel.Kernel, h hal.HAL) {
	k.SetPanicHandler(func(info kernel.PanicInfo) {
		lines := panicLines(info)
		if l := h.Logger(); l != nil {
			for _, line := range lines {
				l.WriteLineString(line)
			}
		}
		drawPanic(h.Display(), lines)
	})
}

func panicLines(info kernel.PanicInfo) []string {
	lines := []string{
		"gyrocube panic:",
		fmt.Sprintf("task: %d", info.TaskID),
		fmt.Sprintf("panic: %v", info.Value),
	}
	if len(info.Stack) == 0 {
		return append(lines, "stack: unavailable")
	}
	lines = append(lines, "stack:")
	for _, line := range strings.Split(string(info.Stack), "\n") {
		if line == "" {
			continue
		}
		lines = append(lines, strings.ReplaceAll(line, "\t", "  "))
	}
	return lines
}

// drawPanic paints lines black on white and presents once. Text past the bottom is dropped.
func drawPanic(disp hal.Display, lines []string) {
	if disp == nil {
		return
	}
	fb := disp.Framebuffer()
	if fb == nil || fb.Format() != hal.PixelFormatRGB565 {
		return
	}
	fb.ClearRGB(255, 255, 255)

	font := &proggy.TinySZ8pt7b
	_, glyphW := tinyfont.LineWidth(font, "0")
	cols := 1
	if glyphW > 0 {
		cols = fb.Width() / int(glyphW)
	}

	d := panicDisplay{fb: fb}
	fg := color.RGBA{A: 255}
	y := 0
	for _, line := range lines {
		for len(line) > 0 {
			if y+panicLineHeight > fb.Height() {
				_ = fb.Present()
				return
			}
			chunk, rest := takeRunes(line, cols)
			tinyfont.WriteLine(d, font, 2, int16(y+panicBaseline), chunk, fg)
			y += panicLineHeight
			line = strings.TrimLeft(rest, " ")
		}
	}
	_ = fb.Present()
}

type panicDisplay struct {
	fb hal.Framebuffer
}

func (d panicDisplay) Size() (x, y int16) {
	return int16(d.fb.Width()), int16(d.fb.Height())
}

func (d panicDisplay) SetPixel(x, y int16, c color.RGBA) {
	buf := d.fb.Buffer()
	ix, iy := int(x), int(y)
	if buf == nil || ix < 0 || ix >= d.fb.Width() || iy < 0 || iy >= d.fb.Height() {
		return
	}
	pixel := uint16((uint16(c.R>>3)&0x1F)<<11 | (uint16(c.G>>2)&0x3F)<<5 | (uint16(c.B>>3) & 0x1F))
	off := iy*d.fb.StrideBytes() + ix*2
	if off < 0 || off+1 >= len(buf) {
		return
	}
	buf[off] = byte(pixel)
	buf[off+1] = byte(pixel >> 8)
}

func (d panicDisplay) Display() error { return nil }

func takeRunes(s string, n int) (prefix, rest string) {
	if n <= 0 || s == "" {
		return "", s
	}
	i, count := 0, 0
	for i < len(s) && count < n {
		_, size := utf8.DecodeRuneInString(s[i:])
		i += size
		count++
	}
	return s[:i], s[i:]
}
