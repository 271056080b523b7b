// Package orient turns sensor readings or an animation clock into per-frame
// rotation angles.
package orient

import (
	"errors"

	"gyrocube/sys/wire3d"
)

var (
	// ErrSensorUnavailable reports that the orientation sensor cannot be read.
	ErrSensorUnavailable = errors.New("orient: sensor unavailable")
	// ErrCalibrationTimeout reports that calibration did not finish in time.
	ErrCalibrationTimeout = errors.New("orient: calibration timed out")
)

// IMU is the inertial sensor collaborator. Angles are in degrees.
type IMU interface {
	Reset() error
	Calibrating() (bool, error)
	Pitch() (float32, error)
	Roll() (float32, error)
	Yaw() (float32, error)
}

// Source yields the rotation angles for the next frame.
type Source interface {
	Angles() (wire3d.Angles, error)
}

// Calibrator is implemented by sources that need a calibration phase before
// their first frame.
type Calibrator interface {
	Begin() error
	Calibrating() (bool, error)
}
