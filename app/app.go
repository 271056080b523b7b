package app

import (
	"fmt"
	"sync"

	"gyrocube/hal"
	"gyrocube/internal/buildinfo"
	logclient "gyrocube/sys/client/logger"
	"gyrocube/sys/kernel"
	"gyrocube/sys/orient"
	"gyrocube/sys/services/logger"
	"gyrocube/sys/tasks/cube"
)

// Angle sources selectable at start-up.
const (
	SourceIMU  = "imu"
	SourceSpin = "spin"
)

type Config struct {
	// Source picks what drives the cube: SourceIMU (default) or SourceSpin.
	Source      string
	Sensitivity float32
	Cube        cube.Config
}

func DefaultConfig() Config {
	return Config{
		Source:      SourceIMU,
		Sensitivity: orient.DefaultSensitivity,
		Cube:        cube.DefaultConfig(),
	}
}

// System is a running kernel with the logger and cube tasks attached.
type System struct {
	k     *kernel.Kernel
	logEP kernel.Capability

	// workers tracks every task except the logger, which must outlive them.
	workers sync.WaitGroup
	ticks   sync.WaitGroup
}

// Kernel exposes the scheduler, mainly for shutdown.
func (s *System) Kernel() *kernel.Kernel { return s.k }

// Close stops the tasks, lets the logger write their last lines, then stops it.
func (s *System) Close() {
	s.k.Shutdown()
	s.workers.Wait()
	s.k.CloseEndpoint(s.logEP)
	s.k.Wait()
	s.ticks.Wait()
}

func (s *System) spawn(name string, t kernel.Task) error {
	s.workers.Add(1)
	if _, ok := s.k.AddTask(workerTask{t: t, wg: &s.workers}); !ok {
		s.workers.Done()
		return fmt.Errorf("app: add %s task", name)
	}
	return nil
}

type workerTask struct {
	t  kernel.Task
	wg *sync.WaitGroup
}

func (w workerTask) Run(ctx *kernel.Context) {
	defer w.wg.Done()
	w.t.Run(ctx)
}

// New starts the system with the default config.
func New(h hal.HAL) func() error {
	return NewWithConfig(h, DefaultConfig())
}

func NewWithConfig(h hal.HAL, cfg Config) func() error {
	_, err := Start(h, cfg)
	return func() error { return err }
}

// Run starts the system and blocks forever (TinyGo entrypoint). A failed start
// is reported on the platform logger.
func Run(h hal.HAL) {
	if _, err := Start(h, DefaultConfig()); err != nil {
		reportStartError(h, err)
	}
	select {}
}

func reportStartError(h hal.HAL, err error) {
	if h == nil {
		return
	}
	if l := h.Logger(); l != nil {
		l.WriteLineString("app: start failed: " + err.Error())
	}
}

// Start builds the kernel, registers the tasks, and begins forwarding ticks.
func Start(h hal.HAL, cfg Config) (*System, error) {
	if h == nil {
		return nil, fmt.Errorf("app: nil hal")
	}
	src, err := newSource(h, cfg)
	if err != nil {
		return nil, err
	}

	k := kernel.New()
	installPanicHandler(k, h)
	logEP := k.NewEndpoint(kernel.RightSend | kernel.RightRecv)
	if !logEP.Valid() {
		return nil, fmt.Errorf("app: no endpoint for logger")
	}
	logCap := logEP.Restrict(kernel.RightSend)
	s := &System{k: k, logEP: logEP}

	if _, ok := k.AddTask(logger.New(h.Logger(), logEP.Restrict(kernel.RightRecv))); !ok {
		return nil, fmt.Errorf("app: add logger task")
	}
	if err := s.spawn("banner", bannerTask{logCap: logCap, source: cfg.Source}); err != nil {
		s.Close()
		return nil, err
	}
	if err := s.spawn("cube", cube.New(h.Display(), src, logCap, cfg.Cube)); err != nil {
		s.Close()
		return nil, err
	}

	if ht := h.Time(); ht != nil {
		if ch := ht.Ticks(); ch != nil {
			s.ticks.Add(1)
			go s.forwardTicks(ch)
		}
	}
	return s, nil
}

// forwardTicks feeds the platform tick stream into the kernel until it stops.
func (s *System) forwardTicks(ch <-chan uint64) {
	defer s.ticks.Done()
	for {
		select {
		case seq, ok := <-ch:
			if !ok {
				return
			}
			s.k.TickTo(seq)
		case <-s.k.Done():
			return
		}
	}
}

func newSource(h hal.HAL, cfg Config) (orient.Source, error) {
	switch cfg.Source {
	case "", SourceIMU:
		sens := cfg.Sensitivity
		if sens == 0 {
			sens = orient.DefaultSensitivity
		}
		// A missing sensor still yields a SensorSource; the cube loop draws it degraded.
		var imu orient.IMU
		if dev := h.IMU(); dev != nil {
			imu = dev
		}
		return orient.NewSensorSource(imu, sens), nil
	case SourceSpin:
		return orient.NewSpinSource(), nil
	default:
		return nil, fmt.Errorf("app: unknown source %q", cfg.Source)
	}
}

type bannerTask struct {
	logCap kernel.Capability
	source string
}

func (t bannerTask) Run(ctx *kernel.Context) {
	_ = logclient.LogRetry(ctx, t.logCap, buildinfo.Line(), 100)
	if t.source != "" {
		_ = logclient.LogRetry(ctx, t.logCap, "app: angle source "+t.source, 100)
	}
}
