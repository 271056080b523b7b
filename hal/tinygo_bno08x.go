//go:build tinygo && baremetal

package hal

import (
	"errors"
	"machine"
	"sync"

	"tinygo.org/x/drivers/bno08x"
)

var errIMUNoData = errors.New("imu: no rotation vector yet")

// Rotation vector report period in microseconds (50 Hz).
const bnoReportPeriodUS = 20000

type quaternion struct {
	real, i, j, k float32
}

// bnoIMU reports a BNO08x fused rotation vector as Euler angles.
//
// The sensor counts as calibrating from Reset until its first rotation vector arrives.
type bnoIMU struct {
	mu sync.Mutex

	configure func() error
	poll      func() (quaternion, bool)

	have             bool
	roll, pitch, yaw float32
}

func newBNO08xIMU() (*bnoIMU, error) {
	i2c := machine.I2C0
	err := i2c.Configure(machine.I2CConfig{
		Frequency: 400 * machine.KHz,
		SDA:       machine.GP4,
		SCL:       machine.GP5,
	})
	if err != nil {
		return nil, err
	}

	sensor := bno08x.NewI2C(i2c)
	imu := &bnoIMU{
		configure: func() error {
			if err := sensor.Configure(bno08x.Config{}); err != nil {
				return err
			}
			return sensor.EnableReport(bno08x.SensorRotationVector, bnoReportPeriodUS)
		},
		poll: func() (quaternion, bool) {
			event, ok := sensor.GetSensorEvent()
			if !ok || event.ID() != bno08x.SensorRotationVector {
				return quaternion{}, false
			}
			q := event.Quaternion()
			return quaternion{real: q.Real, i: q.I, j: q.J, k: q.K}, true
		},
	}
	return imu, nil
}

func (s *bnoIMU) Reset() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.have = false
	return s.configure()
}

func (s *bnoIMU) Calibrating() (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.drain()
	return !s.have, nil
}

// drain consumes every pending event and keeps the newest orientation.
func (s *bnoIMU) drain() {
	for {
		q, ok := s.poll()
		if !ok {
			return
		}
		s.roll, s.pitch, s.yaw = eulerDegrees(q.real, q.i, q.j, q.k)
		s.have = true
	}
}

func (s *bnoIMU) read(axis *float32) (float32, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.drain()
	if !s.have {
		return 0, errIMUNoData
	}
	return *axis, nil
}

func (s *bnoIMU) Pitch() (float32, error) { return s.read(&s.pitch) }
func (s *bnoIMU) Roll() (float32, error)  { return s.read(&s.roll) }
func (s *bnoIMU) Yaw() (float32, error)   { return s.read(&s.yaw) }
