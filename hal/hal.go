package hal

import "errors"

// Logger writes newline-delimited log lines.
type Logger interface {
	WriteLineString(s string)
	WriteLineBytes(b []byte)
}

var ErrNotImplemented = errors.New("not implemented")

// PixelFormat defines the framebuffer pixel encoding.
type PixelFormat uint8

const (
	// PixelFormatRGB565 is 16bpp: rrrrrggggggbbbbb.
	PixelFormatRGB565 PixelFormat = iota + 1
)

// Framebuffer is a simple pixel buffer plus a "present" hook.
type Framebuffer interface {
	Width() int
	Height() int
	Format() PixelFormat
	StrideBytes() int
	Buffer() []byte
	ClearRGB(r, g, b uint8)
	Present() error
}

// Display provides access to the framebuffer (if available).
type Display interface {
	Framebuffer() Framebuffer
}

// Time provides a base tick stream.
//
// One tick is one millisecond on every platform.
type Time interface {
	Ticks() <-chan uint64
}

// IMU is an inertial sensor reporting orientation in degrees.
//
// Reset restarts calibration; readings are meaningless while Calibrating reports true.
type IMU interface {
	Reset() error
	Calibrating() (bool, error)
	Pitch() (float32, error)
	Roll() (float32, error)
	Yaw() (float32, error)
}

// HAL provides the only contact point between the OS and the outside world.
//
// IMU may return nil when the board has no sensor fitted.
type HAL interface {
	Logger() Logger
	Display() Display
	Time() Time
	IMU() IMU
}
