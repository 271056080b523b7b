package orient

import (
	"math"

	"gyrocube/sys/wire3d"
)

// Per-frame increments of the free-running animation, in radians.
const (
	SpinStepX = 0.03
	SpinStepY = 0.05
)

// SpinSource advances fixed per-axis increments every frame.
//
// Angles are derived from the frame count, so they never drift and always stay in [0, 2π).
type SpinSource struct {
	StepX, StepY, StepZ float64

	frames uint64
}

func NewSpinSource() *SpinSource {
	return &SpinSource{StepX: SpinStepX, StepY: SpinStepY}
}

func (s *SpinSource) Angles() (wire3d.Angles, error) {
	s.frames++
	n := float64(s.frames)
	return wire3d.Angles{
		X: wrapAngle(n * s.StepX),
		Y: wrapAngle(n * s.StepY),
		Z: wrapAngle(n * s.StepZ),
	}, nil
}

// Frames returns how many angle sets were produced.
func (s *SpinSource) Frames() uint64 { return s.frames }

func wrapAngle(rad float64) float32 {
	r := math.Mod(rad, 2*math.Pi)
	if r < 0 {
		r += 2 * math.Pi
	}
	return float32(r)
}
