package wire3d

import "math"

// MinDepth bounds |Distance + z| away from zero in Project.
const MinDepth = 1e-3

// Screen coordinates are clamped to the 16-bit range most display APIs accept.
const (
	minCoord = math.MinInt16
	maxCoord = math.MaxInt16
)

// Projection is a pinhole camera: factor = FOV / (Distance + z).
type Projection struct {
	FOV      float32
	Distance float32
	PushBack float32

	CenterX int
	CenterY int
}

// ReferenceProjection matches the 480x272 display of the robot controller.
var ReferenceProjection = Projection{
	FOV:      256,
	Distance: 100,
	PushBack: 200,
	CenterX:  240,
	CenterY:  136,
}

// Centered returns a copy of p centered on a w x h surface.
func (p Projection) Centered(w, h int) Projection {
	p.CenterX = w / 2
	p.CenterY = h / 2
	return p
}

// Factor returns the perspective scale for depth z.
//
// The denominator is clamped to ±MinDepth (keeping its sign) so the result is
// always finite for finite z.
func (p Projection) Factor(z float32) float32 {
	return float32(p.factor(z))
}

func (p Projection) factor(z float32) float64 {
	d := float64(p.Distance) + float64(z)
	if d < MinDepth && d > -MinDepth {
		if d < 0 {
			d = -MinDepth
		} else {
			d = MinDepth
		}
	}
	return float64(p.FOV) / d
}

// Project maps a camera-relative point to screen space, truncating toward zero.
// Non-finite input collapses to the center.
func (p Projection) Project(v Vec3) Vec2 {
	if !finite(v[0]) || !finite(v[1]) || !finite(v[2]) {
		return Vec2{X: p.CenterX, Y: p.CenterY}
	}
	f := p.factor(v[2])
	return Vec2{
		X: clampCoord(float64(v[0])*f + float64(p.CenterX)),
		Y: clampCoord(float64(v[1])*f + float64(p.CenterY)),
	}
}

func clampCoord(v float64) int {
	if math.IsNaN(v) {
		return 0
	}
	if v < minCoord {
		return minCoord
	}
	if v > maxCoord {
		return maxCoord
	}
	return int(v)
}
