package orient

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gyrocube/sys/wire3d"
)

type fakeIMU struct {
	pitch, roll, yaw float32
	calibrating      int
	resets           int

	resetErr error
	readErr  error
}

func (f *fakeIMU) Reset() error { f.resets++; return f.resetErr }

func (f *fakeIMU) Calibrating() (bool, error) {
	if f.calibrating > 0 {
		f.calibrating--
		return true, nil
	}
	return false, nil
}

func (f *fakeIMU) Pitch() (float32, error) { return f.pitch, f.readErr }
func (f *fakeIMU) Roll() (float32, error)  { return f.roll, f.readErr }
func (f *fakeIMU) Yaw() (float32, error)   { return f.yaw, f.readErr }

func TestSensorSourceScalesDegrees(t *testing.T) {
	imu := &fakeIMU{pitch: 90, roll: -45, yaw: 180}
	src := NewSensorSource(imu, DefaultSensitivity)

	a, err := src.Angles()
	require.NoError(t, err)
	assert.InDelta(t, math.Pi/2*0.8, a.X, 1e-6)
	assert.InDelta(t, -math.Pi/4*0.8, a.Y, 1e-6)
	assert.InDelta(t, math.Pi*0.8, a.Z, 1e-6)
}

func TestSensorSourceZeroReadingIsIdentity(t *testing.T) {
	src := NewSensorSource(&fakeIMU{}, DefaultSensitivity)
	a, err := src.Angles()
	require.NoError(t, err)
	assert.Equal(t, wire3d.Angles{}, a)

	got := wire3d.ReferenceCube.Project(a, wire3d.ReferenceProjection)
	want := wire3d.ReferenceCube.Project(wire3d.Angles{}, wire3d.ReferenceProjection)
	assert.Equal(t, want, got)
}

func TestSensorSourceReadFailure(t *testing.T) {
	imu := &fakeIMU{pitch: 30, readErr: errors.New("i2c nack")}
	src := NewSensorSource(imu, DefaultSensitivity)

	a, err := src.Angles()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSensorUnavailable)
	assert.Equal(t, wire3d.Angles{}, a)
}

func TestSensorSourceRejectsNonFinite(t *testing.T) {
	imu := &fakeIMU{roll: float32(math.Inf(1))}
	src := NewSensorSource(imu, DefaultSensitivity)

	a, err := src.Angles()
	assert.ErrorIs(t, err, ErrSensorUnavailable)
	assert.Equal(t, wire3d.Angles{}, a)
}

func TestSensorSourceBegin(t *testing.T) {
	imu := &fakeIMU{calibrating: 2}
	src := NewSensorSource(imu, DefaultSensitivity)

	require.NoError(t, src.Begin())
	assert.Equal(t, 1, imu.resets)

	busy, err := src.Calibrating()
	require.NoError(t, err)
	assert.True(t, busy)

	imu.resetErr = errors.New("bus fault")
	assert.ErrorIs(t, src.Begin(), ErrSensorUnavailable)

	none := NewSensorSource(nil, 1)
	assert.ErrorIs(t, none.Begin(), ErrSensorUnavailable)
	_, err = none.Angles()
	assert.ErrorIs(t, err, ErrSensorUnavailable)
}

func TestSpinSourceAdvancesPerFrame(t *testing.T) {
	src := NewSpinSource()
	const n = 500

	var a wire3d.Angles
	for i := 0; i < n; i++ {
		var err error
		a, err = src.Angles()
		require.NoError(t, err)
	}

	assert.Equal(t, uint64(n), src.Frames())
	assert.InDelta(t, math.Mod(SpinStepX*n, 2*math.Pi), a.X, 1e-4)
	assert.InDelta(t, math.Mod(SpinStepY*n, 2*math.Pi), a.Y, 1e-4)
	assert.Zero(t, a.Z)
}

func TestSpinSourceStaysInRange(t *testing.T) {
	src := &SpinSource{StepX: -0.3, StepY: 1, StepZ: 7}
	for i := 0; i < 100; i++ {
		a, _ := src.Angles()
		for _, v := range []float32{a.X, a.Y, a.Z} {
			assert.GreaterOrEqual(t, v, float32(0))
			assert.LessOrEqual(t, v, float32(2*math.Pi))
		}
	}
}
