package cube

import (
	"errors"
	"fmt"

	"gyrocube/sys/orient"
	"gyrocube/sys/wire3d"
)

// State is the frame loop lifecycle.
type State uint8

const (
	StateUninitialized State = iota
	StateCalibrating
	StateRunning
)

func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateCalibrating:
		return "calibrating"
	case StateRunning:
		return "running"
	default:
		return "unknown"
	}
}

// Stats counts frame outcomes since the loop started.
type Stats struct {
	Frames   uint64 // frames drawn
	Skipped  uint64 // frames dropped because the display failed
	Degraded uint64 // frames drawn with fallback angles
}

// Clock is the scheduler as seen by the loop.
//
// Sleep reports false when the loop should stop.
type Clock interface {
	NowTick() uint64
	Sleep(ms uint32) bool
}

// Loop owns the rotation state and drives one surface.
type Loop struct {
	cfg      Config
	src      orient.Source
	surface  wire3d.Surface
	renderer *wire3d.Renderer

	// Logf receives state changes. It may be nil.
	Logf func(format string, args ...any)

	state      State
	calibStart uint64

	// sensorLost latches after a failed calibration; frames then skip the sensor.
	sensorLost bool
	degraded   bool
	lastErr    string

	angles wire3d.Angles
	points [wire3d.CubeVertices]wire3d.Vec2
	stats  Stats
}

func NewLoop(cfg Config, src orient.Source, surface wire3d.Surface) *Loop {
	r := wire3d.NewRenderer()
	r.Stroke = cfg.Stroke
	return &Loop{
		cfg:      cfg,
		src:      src,
		surface:  surface,
		renderer: r,
	}
}

func (l *Loop) State() State                            { return l.state }
func (l *Loop) Stats() Stats                            { return l.stats }
func (l *Loop) Degraded() bool                          { return l.degraded }
func (l *Loop) Angles() wire3d.Angles                   { return l.angles }
func (l *Loop) Points() [wire3d.CubeVertices]wire3d.Vec2 { return l.points }

// Status is a one-line description for the on-screen overlay ("" when healthy).
func (l *Loop) Status() string {
	switch {
	case l.state == StateCalibrating:
		return "IMU calibrating..."
	case l.sensorLost:
		return "IMU unavailable"
	case l.degraded:
		return "IMU read failed"
	default:
		return ""
	}
}

func (l *Loop) logf(format string, args ...any) {
	if l.Logf != nil {
		l.Logf(format, args...)
	}
}

// Begin leaves Uninitialized. Calibrating sources are reset and enter
// Calibrating; everything else starts Running.
func (l *Loop) Begin(now uint64) {
	if l.state != StateUninitialized {
		return
	}
	cal, ok := l.src.(orient.Calibrator)
	if !ok {
		l.setState(StateRunning)
		return
	}
	if err := cal.Begin(); err != nil {
		l.loseSensor(err)
		return
	}
	l.calibStart = now
	l.setState(StateCalibrating)
}

// PollCalibration checks the sensor once. It moves to Running when calibration
// completes, fails, or exceeds the timeout.
func (l *Loop) PollCalibration(now uint64) {
	if l.state != StateCalibrating {
		return
	}
	cal := l.src.(orient.Calibrator)
	busy, err := cal.Calibrating()
	switch {
	case err != nil:
		l.loseSensor(err)
	case !busy:
		l.logf("cube: calibration done after %d ms", now-l.calibStart)
		l.setState(StateRunning)
	case l.cfg.CalibrationTimeoutMS > 0 && now-l.calibStart >= uint64(l.cfg.CalibrationTimeoutMS):
		l.loseSensor(fmt.Errorf("%w after %d ms", orient.ErrCalibrationTimeout, now-l.calibStart))
	}
}

func (l *Loop) loseSensor(err error) {
	l.sensorLost = true
	l.degraded = true
	l.logf("cube: degraded, drawing with zero angles: %v", err)
	l.setState(StateRunning)
}

func (l *Loop) setState(s State) {
	if l.state == s {
		return
	}
	l.logf("cube: %s -> %s", l.state, s)
	l.state = s
}

// Frame advances exactly one frame: read angles, project, redraw.
//
// Sensor failures fall back to zero angles; display failures drop the frame.
// Neither stops the loop. The returned error is informational.
func (l *Loop) Frame() error {
	if l.state != StateRunning {
		return fmt.Errorf("cube: frame in state %s", l.state)
	}

	l.angles = l.readAngles()
	l.points = l.cfg.Model.Project(l.angles, l.cfg.Projection)

	err := l.renderer.Draw(l.surface, l.cfg.Model.Edges(), l.points)
	if err != nil {
		l.stats.Skipped++
		l.noteError(err)
		return err
	}
	l.stats.Frames++
	if l.degraded {
		l.stats.Degraded++
	}
	l.noteError(nil)
	return nil
}

func (l *Loop) readAngles() wire3d.Angles {
	if l.sensorLost || l.src == nil {
		return wire3d.Angles{}
	}
	a, err := l.src.Angles()
	if err != nil {
		if !l.degraded {
			l.logf("cube: sensor read failed, using zero angles: %v", err)
		}
		l.degraded = true
		return wire3d.Angles{}
	}
	if l.degraded {
		l.logf("cube: sensor readings recovered")
	}
	l.degraded = false
	return a
}

// noteError logs display failures when they start, change, or clear.
func (l *Loop) noteError(err error) {
	msg := ""
	if err != nil {
		msg = err.Error()
	}
	if msg == l.lastErr {
		return
	}
	switch {
	case err == nil:
		l.logf("cube: display recovered")
	case errors.Is(err, wire3d.ErrDisplayUnavailable):
		l.logf("cube: frame skipped: %v", err)
	default:
		l.logf("cube: frame error: %v", err)
	}
	l.lastErr = msg
}

// DrawStatus paints a blank frame so an overlay can show Status while no cube
// is drawn yet.
func (l *Loop) DrawStatus() error {
	if l.surface == nil {
		return wire3d.ErrDisplayUnavailable
	}
	if err := l.surface.Clear(); err != nil {
		return fmt.Errorf("%w: clear: %w", wire3d.ErrDisplayUnavailable, err)
	}
	if err := l.surface.Present(); err != nil {
		return fmt.Errorf("%w: present: %w", wire3d.ErrDisplayUnavailable, err)
	}
	return nil
}

// Run drives the loop until c.Sleep reports a stop.
func (l *Loop) Run(c Clock) {
	l.Begin(c.NowTick())
	for l.state == StateCalibrating {
		l.PollCalibration(c.NowTick())
		if l.state != StateCalibrating {
			break
		}
		_ = l.DrawStatus()
		if !c.Sleep(l.cfg.CalibrationPollMS) {
			return
		}
	}

	if l.cfg.SettleMS > 0 && !c.Sleep(l.cfg.SettleMS) {
		return
	}

	for {
		_ = l.Frame()
		if !c.Sleep(l.cfg.FrameIntervalMS) {
			return
		}
	}
}
