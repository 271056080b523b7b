//go:build !tinygo

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"gyrocube/app"
	"gyrocube/hal"
)

func main() {
	cfg := hal.HeadlessConfig{Host: hal.DefaultHostConfig()}
	appCfg := app.DefaultConfig()
	var sens float64
	flag.BoolVar(&cfg.Enabled, "headless", false, "Run without a window.")
	flag.IntVar(&cfg.Hz, "hz", 60, "Tick rate in headless mode.")
	flag.Uint64Var(&cfg.Ticks, "ticks", 0, "Stop after N ticks in headless mode (0 = run forever).")
	flag.StringVar(&appCfg.Source, "source", app.SourceIMU, "Angle source: imu or spin.")
	flag.Float64Var(&sens, "sensitivity", float64(appCfg.Sensitivity), "Scale applied to sensor angles.")
	flag.BoolVar(&cfg.Host.IMU.Absent, "no-imu", false, "Simulate a board without a sensor.")
	flag.BoolVar(&cfg.Host.IMU.FailReads, "imu-fail", false, "Make every simulated sensor read fail.")
	flag.BoolVar(&cfg.Host.IMU.NeverCalibrates, "imu-stuck", false, "Keep the simulated sensor calibrating forever.")
	flag.Parse()
	appCfg.Sensitivity = float32(sens)

	newApp := func(h hal.HAL) func() error {
		return app.NewWithConfig(h, appCfg)
	}

	if cfg.Enabled {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		if err := hal.RunHeadless(ctx, newApp, cfg); err != nil {
			if errors.Is(err, context.Canceled) {
				return
			}
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		return
	}

	if err := hal.RunWindow(newApp, cfg.Host); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
