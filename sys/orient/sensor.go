package orient

import (
	"fmt"
	"math"

	"gyrocube/sys/wire3d"
)

// DefaultSensitivity scales sensor angles before they reach the renderer.
const DefaultSensitivity = 0.8

// SensorSource maps pitch, roll and yaw onto rotations about X, Y and Z.
type SensorSource struct {
	imu         IMU
	sensitivity float32
}

func NewSensorSource(imu IMU, sensitivity float32) *SensorSource {
	return &SensorSource{imu: imu, sensitivity: sensitivity}
}

// Begin resets the sensor, which starts its calibration.
func (s *SensorSource) Begin() error {
	if s.imu == nil {
		return fmt.Errorf("%w: no device", ErrSensorUnavailable)
	}
	if err := s.imu.Reset(); err != nil {
		return fmt.Errorf("%w: reset: %w", ErrSensorUnavailable, err)
	}
	return nil
}

func (s *SensorSource) Calibrating() (bool, error) {
	if s.imu == nil {
		return false, fmt.Errorf("%w: no device", ErrSensorUnavailable)
	}
	busy, err := s.imu.Calibrating()
	if err != nil {
		return false, fmt.Errorf("%w: calibration status: %w", ErrSensorUnavailable, err)
	}
	return busy, nil
}

// Angles reads all three axes. Any failed or non-finite reading yields zero
// angles and an error wrapping ErrSensorUnavailable.
func (s *SensorSource) Angles() (wire3d.Angles, error) {
	if s.imu == nil {
		return wire3d.Angles{}, fmt.Errorf("%w: no device", ErrSensorUnavailable)
	}
	pitch, err := readAxis("pitch", s.imu.Pitch)
	if err != nil {
		return wire3d.Angles{}, err
	}
	roll, err := readAxis("roll", s.imu.Roll)
	if err != nil {
		return wire3d.Angles{}, err
	}
	yaw, err := readAxis("yaw", s.imu.Yaw)
	if err != nil {
		return wire3d.Angles{}, err
	}
	return wire3d.Angles{
		X: DegreesToRadians(pitch) * s.sensitivity,
		Y: DegreesToRadians(roll) * s.sensitivity,
		Z: DegreesToRadians(yaw) * s.sensitivity,
	}, nil
}

func readAxis(name string, read func() (float32, error)) (float32, error) {
	v, err := read()
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %w", ErrSensorUnavailable, name, err)
	}
	f := float64(v)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("%w: %s: non-finite reading %v", ErrSensorUnavailable, name, v)
	}
	return v, nil
}

func DegreesToRadians(deg float32) float32 {
	return deg * math.Pi / 180
}
