//go:build !tinygo

package hal

import (
	"errors"
	"math"
	"sync"
)

var errSimIMUFault = errors.New("simulated imu: read fault")

// SimIMUConfig shapes the simulated inertial sensor.
type SimIMUConfig struct {
	// Absent leaves the HAL without a sensor.
	Absent bool
	// CalibrationPolls is how many Calibrating calls report true after Reset.
	CalibrationPolls int
	// FailReads makes every axis read return an error.
	FailReads bool
	// NeverCalibrates keeps Calibrating true forever.
	NeverCalibrates bool
}

func DefaultSimIMUConfig() SimIMUConfig {
	return SimIMUConfig{CalibrationPolls: 20}
}

// simIMU sways slowly around all three axes, as if the robot were being carried.
type simIMU struct {
	mu  sync.Mutex
	cfg SimIMUConfig
	// now reads the host tick clock in milliseconds.
	now func() uint64

	start     uint64
	started   bool
	remaining int
}

func newSimIMU(cfg SimIMUConfig, now func() uint64) *simIMU {
	return &simIMU{cfg: cfg, now: now}
}

func (s *simIMU) Reset() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.start = s.now()
	s.started = true
	s.remaining = s.cfg.CalibrationPolls
	return nil
}

func (s *simIMU) Calibrating() (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cfg.NeverCalibrates {
		return true, nil
	}
	if s.remaining > 0 {
		s.remaining--
		return true, nil
	}
	return false, nil
}

func (s *simIMU) elapsed() (float64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cfg.FailReads {
		return 0, errSimIMUFault
	}
	if !s.started {
		return 0, nil
	}
	return float64(s.now()-s.start) / 1000, nil
}

func (s *simIMU) Pitch() (float32, error) {
	t, err := s.elapsed()
	if err != nil {
		return 0, err
	}
	return float32(25 * math.Sin(t*0.7)), nil
}

func (s *simIMU) Roll() (float32, error) {
	t, err := s.elapsed()
	if err != nil {
		return 0, err
	}
	return float32(35 * math.Sin(t*0.45+1)), nil
}

// Yaw wraps into (-180, 180] like a compass heading.
func (s *simIMU) Yaw() (float32, error) {
	t, err := s.elapsed()
	if err != nil {
		return 0, err
	}
	deg := math.Mod(t*20, 360)
	if deg > 180 {
		deg -= 360
	}
	return float32(deg), nil
}
