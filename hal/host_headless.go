//go:build !tinygo

package hal

import (
	"context"
	"fmt"
	"time"
)

// HeadlessConfig controls the no-window host runner.
//
// Each of the Hz steps per second advances the simulated clock by 1000/Hz ms,
// independent of how late the step fires.
type HeadlessConfig struct {
	Enabled bool
	Hz      int
	Ticks   uint64
	Host    HostConfig
}

// RunHeadless runs the app without opening a window. It returns nil after
// cfg.Ticks steps, or ctx.Err() when ctx ends first.
func RunHeadless(ctx context.Context, newApp func(HAL) func() error, cfg HeadlessConfig) error {
	if cfg.Hz <= 0 {
		cfg.Hz = 60
	}
	if cfg.Hz > 1000 {
		return fmt.Errorf("invalid headless hz: %d (max 1000)", cfg.Hz)
	}
	msPerStep := uint64(1000 / cfg.Hz)

	h := newHostHAL(cfg.Host)
	step := newApp(h)

	t := time.NewTicker(time.Second / time.Duration(cfg.Hz))
	defer t.Stop()

	var steps uint64
	defer func() {
		h.logger.WriteLineString(fmt.Sprintf("headless: %d steps, %d ms simulated, %d frames presented",
			steps, h.t.now(), h.fb.presentCount()))
	}()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
			h.t.stepN(msPerStep)
			if step != nil {
				if err := step(); err != nil {
					return err
				}
			}
			steps++
			if cfg.Ticks > 0 && steps >= cfg.Ticks {
				return nil
			}
		}
	}
}
