//go:build !tinygo

package hal

import "sync"

// hostFramebuffer double-buffers: tasks draw into buf, Present publishes a copy
// that the window reads.
type hostFramebuffer struct {
	mu        sync.Mutex
	width     int
	height    int
	stride    int
	buf       []byte
	published []byte
	presents  uint64
}

func newHostFramebuffer(width, height int) *hostFramebuffer {
	stride := width * 2
	return &hostFramebuffer{
		width:     width,
		height:    height,
		stride:    stride,
		buf:       make([]byte, stride*height),
		published: make([]byte, stride*height),
	}
}

func (f *hostFramebuffer) Width() int          { return f.width }
func (f *hostFramebuffer) Height() int         { return f.height }
func (f *hostFramebuffer) Format() PixelFormat { return PixelFormatRGB565 }
func (f *hostFramebuffer) StrideBytes() int    { return f.stride }
func (f *hostFramebuffer) Buffer() []byte      { return f.buf }

func (f *hostFramebuffer) ClearRGB(r, g, b uint8) {
	fillRGB565(f.buf, r, g, b)
}

func (f *hostFramebuffer) Present() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	copy(f.published, f.buf)
	f.presents++
	return nil
}

func (f *hostFramebuffer) snapshotRGB565(dst []byte) (presents uint64) {
	f.mu.Lock()
	defer f.mu.Unlock()
	copy(dst, f.published)
	return f.presents
}

func (f *hostFramebuffer) presentCount() uint64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.presents
}
