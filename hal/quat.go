package hal

import "math"

// eulerDegrees converts a quaternion (real, i, j, k) to roll (X), pitch (Y)
// and yaw (Z) in degrees. The quaternion is normalized first; sensor output is
// quantized and never exactly unit length. Pitch saturates at ±90 near gimbal
// lock. A zero quaternion reads as identity.
func eulerDegrees(real, i, j, k float32) (roll, pitch, yaw float32) {
	w, x, y, z := float64(real), float64(i), float64(j), float64(k)
	n := math.Sqrt(w*w + x*x + y*y + z*z)
	if n == 0 || math.IsNaN(n) || math.IsInf(n, 0) {
		return 0, 0, 0
	}
	w, x, y, z = w/n, x/n, y/n, z/n

	sinrCosp := 2 * (w*x + y*z)
	cosrCosp := 1 - 2*(x*x+y*y)
	r := math.Atan2(sinrCosp, cosrCosp)

	sinp := 2 * (w*y - z*x)
	var p float64
	if math.Abs(sinp) >= 1 {
		p = math.Copysign(math.Pi/2, sinp)
	} else {
		p = math.Asin(sinp)
	}

	sinyCosp := 2 * (w*z + x*y)
	cosyCosp := 1 - 2*(y*y+z*z)
	yw := math.Atan2(sinyCosp, cosyCosp)

	const toDeg = 180 / math.Pi
	return float32(r * toDeg), float32(p * toDeg), float32(yw * toDeg)
}
