package cube

import (
	"fmt"

	"gyrocube/hal"
	logclient "gyrocube/sys/client/logger"
	"gyrocube/sys/kernel"
	"gyrocube/sys/orient"
	"gyrocube/sys/wire3d"
)

// Task is the long-lived display task that runs the cube frame loop.
type Task struct {
	disp   hal.Display
	src    orient.Source
	logCap kernel.Capability
	cfg    Config
}

func New(disp hal.Display, src orient.Source, logCap kernel.Capability, cfg Config) *Task {
	return &Task{disp: disp, src: src, logCap: logCap, cfg: cfg}
}

func (t *Task) Run(ctx *kernel.Context) {
	logf := func(format string, args ...any) {
		_ = logclient.Log(ctx, t.logCap, fmt.Sprintf(format, args...))
	}

	surface, err := t.surface()
	if err != nil {
		logf("cube: %v", err)
		return
	}

	cfg := t.cfg
	if cfg.CenterOnSurface {
		w, h := surface.Size()
		cfg.Projection = cfg.Projection.Centered(w, h)
	}

	var loop *Loop
	var target wire3d.Surface = surface
	if cfg.ShowStatus {
		target = newOverlaySurface(surface, func() string { return loop.Status() })
	}
	loop = NewLoop(cfg, t.src, target)
	loop.Logf = logf

	w, h := surface.Size()
	logf("cube: starting on %dx%d, center %d,%d", w, h, cfg.Projection.CenterX, cfg.Projection.CenterY)
	loop.Run(ctx)

	st := loop.Stats()
	logf("cube: stopped after %d frames (%d skipped, %d degraded)", st.Frames, st.Skipped, st.Degraded)
}

func (t *Task) surface() (*wire3d.RGB565Surface, error) {
	if t.disp == nil {
		return nil, fmt.Errorf("%w: no display", wire3d.ErrDisplayUnavailable)
	}
	fb := t.disp.Framebuffer()
	if fb == nil {
		return nil, fmt.Errorf("%w: no framebuffer", wire3d.ErrDisplayUnavailable)
	}
	if fb.Format() != hal.PixelFormatRGB565 {
		return nil, fmt.Errorf("%w: unsupported pixel format %d", wire3d.ErrDisplayUnavailable, fb.Format())
	}
	if fb.Width() <= 0 || fb.Height() <= 0 {
		return nil, fmt.Errorf("%w: empty framebuffer", wire3d.ErrDisplayUnavailable)
	}
	return &wire3d.RGB565Surface{
		Buf:        fb.Buffer(),
		Stride:     fb.StrideBytes(),
		W:          fb.Width(),
		H:          fb.Height(),
		Background: t.cfg.Background,
		PresentFn:  fb.Present,
	}, nil
}
