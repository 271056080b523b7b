//go:build !tinygo

package hal

import (
	"fmt"
	"os"
	"sync"
)

// HostConfig selects the simulated hardware of the host HAL.
type HostConfig struct {
	Width  int
	Height int
	IMU    SimIMUConfig
}

// DefaultHostConfig mirrors the 480x272 robot controller screen.
func DefaultHostConfig() HostConfig {
	return HostConfig{
		Width:  480,
		Height: 272,
		IMU:    DefaultSimIMUConfig(),
	}
}

type hostHAL struct {
	logger *hostLogger
	fb     *hostFramebuffer
	t      *hostTime
	imu    IMU
}

// New returns a host HAL implementation.
func New(cfg HostConfig) HAL {
	return newHostHAL(cfg)
}

func newHostHAL(cfg HostConfig) *hostHAL {
	def := DefaultHostConfig()
	if cfg.Width <= 0 || cfg.Height <= 0 {
		cfg.Width, cfg.Height = def.Width, def.Height
	}
	h := &hostHAL{
		logger: &hostLogger{w: os.Stdout},
		fb:     newHostFramebuffer(cfg.Width, cfg.Height),
		t:      newHostTime(),
	}
	if !cfg.IMU.Absent {
		h.imu = newSimIMU(cfg.IMU, h.t.now)
	}
	return h
}

func (h *hostHAL) Logger() Logger   { return h.logger }
func (h *hostHAL) Display() Display { return hostDisplay{fb: h.fb} }
func (h *hostHAL) Time() Time       { return h.t }
func (h *hostHAL) IMU() IMU         { return h.imu }

type hostDisplay struct {
	fb *hostFramebuffer
}

func (d hostDisplay) Framebuffer() Framebuffer { return d.fb }

type hostLogger struct {
	mu sync.Mutex
	w  *os.File
}

func (l *hostLogger) WriteLineString(s string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintln(l.w, s)
}

func (l *hostLogger) WriteLineBytes(b []byte) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.w.Write(b)
	l.w.Write([]byte{'\n'})
}
