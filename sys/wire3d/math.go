package wire3d

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Vec3 is a point in model space.
type Vec3 = mgl32.Vec3

// Vec2 is an integer screen coordinate.
type Vec2 struct {
	X, Y int
}

func V3(x, y, z float32) Vec3 { return Vec3{x, y, z} }

// Angles is the per-frame rotation state in radians.
type Angles struct {
	X, Y, Z float32
}

// Matrix returns the combined rotation that applies X first, then Y, then Z.
func (a Angles) Matrix() mgl32.Mat3 {
	return mgl32.Rotate3DZ(a.Z).Mul3(mgl32.Rotate3DY(a.Y)).Mul3(mgl32.Rotate3DX(a.X))
}

// Rotate rotates p about X, then Y, then Z.
func Rotate(p Vec3, a Angles) Vec3 {
	return a.Matrix().Mul3x1(p)
}

// Place rotates p by m and pushes the result pushBack units away from the camera.
func Place(p Vec3, m mgl32.Mat3, pushBack float32) Vec3 {
	r := m.Mul3x1(p)
	r[2] += pushBack
	return r
}

func finite(v float32) bool {
	f := float64(v)
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
