package wire3d

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProjectReferenceCorner(t *testing.T) {
	pts := ReferenceCube.Project(Angles{}, ReferenceProjection)

	// (-60,-60,-60) pushed to z=140: factor 256/240.
	assert.Equal(t, Vec2{X: 176, Y: 72}, pts[0])
}

func TestProjectPushedPointAtDepth300(t *testing.T) {
	p := Place(V3(-60, -60, 0), Angles{}.Matrix(), ReferenceProjection.PushBack)
	got := ReferenceProjection.Project(p)

	// -60*256/300 + 240 = 188.8, truncated.
	assert.Equal(t, 188, got.X)
	assert.Equal(t, 84, got.Y)
}

func TestProjectFactorShrinksWithDepth(t *testing.T) {
	p := ReferenceProjection
	prev := float32(math.Inf(1))
	for z := float32(-90); z <= 1000; z += 10 {
		f := p.Factor(z)
		assert.Less(t, f, prev, "z=%v", z)
		prev = f
	}

	near := p.Project(V3(50, 50, 10))
	far := p.Project(V3(50, 50, 200))
	assert.Greater(t, near.X-p.CenterX, far.X-p.CenterX)
	assert.Greater(t, near.Y-p.CenterY, far.Y-p.CenterY)
}

func TestProjectUnrotatedCubeIsSymmetric(t *testing.T) {
	p := ReferenceProjection
	p.PushBack = 0

	pts := ReferenceCube.Project(Angles{}, p)
	seen := map[Vec2]bool{}
	for _, pt := range pts {
		seen[pt] = true
	}
	assert.Len(t, seen, CubeVertices)

	verts := ReferenceCube.Vertices()
	for i, v := range verts {
		for j, w := range verts {
			if w[0] != -v[0] || w[1] != -v[1] || w[2] != v[2] {
				continue
			}
			assert.InDelta(t, 2*p.CenterX, pts[i].X+pts[j].X, 1, "x of %d/%d", i, j)
			assert.InDelta(t, 2*p.CenterY, pts[i].Y+pts[j].Y, 1, "y of %d/%d", i, j)
		}
	}
}

func TestProjectClampsDegenerateDepth(t *testing.T) {
	p := ReferenceProjection

	f := p.Factor(-p.Distance)
	assert.False(t, math.IsInf(float64(f), 0))
	assert.InDelta(t, p.FOV/MinDepth, f, 1)

	got := p.Project(V3(10, -10, -p.Distance))
	assert.Equal(t, maxCoord, got.X)
	assert.Equal(t, minCoord, got.Y)
}

func TestProjectNonFiniteCollapsesToCenter(t *testing.T) {
	p := ReferenceProjection
	nan := float32(math.NaN())
	got := p.Project(V3(nan, 1, 1))
	assert.Equal(t, Vec2{X: p.CenterX, Y: p.CenterY}, got)
}

func TestCenteredUsesSurfaceMidpoint(t *testing.T) {
	p := ReferenceProjection.Centered(320, 240)
	assert.Equal(t, 160, p.CenterX)
	assert.Equal(t, 120, p.CenterY)
	assert.Equal(t, ReferenceProjection.FOV, p.FOV)
}
