package wire3d

import "fmt"

// Edge is a pair of vertex indices.
type Edge [2]int

const (
	CubeVertices = 8
	CubeEdges    = 12
)

// Model is an immutable cube: 8 corners and the 12 edges joining them.
//
// Vertices and Edges return copies; the tables cannot be mutated after construction.
type Model struct {
	vertices [CubeVertices]Vec3
	edges    [CubeEdges]Edge
}

var cubeEdges = [CubeEdges]Edge{
	{0, 1}, {1, 2}, {2, 3}, {3, 0},
	{4, 5}, {5, 6}, {6, 7}, {7, 4},
	{0, 4}, {1, 5}, {2, 6}, {3, 7},
}

// NewCube builds an axis-aligned cube centered on the origin with corners at ±half.
func NewCube(half float32) Model {
	h := half
	return Model{
		vertices: [CubeVertices]Vec3{
			{-h, -h, -h}, {h, -h, -h}, {h, h, -h}, {-h, h, -h},
			{-h, -h, h}, {h, -h, h}, {h, h, h}, {-h, h, h},
		},
		edges: cubeEdges,
	}
}

// ReferenceCube is the 120-unit cube drawn by the demo.
var ReferenceCube = NewCube(60)

func (m Model) Vertices() [CubeVertices]Vec3 { return m.vertices }
func (m Model) Edges() [CubeEdges]Edge       { return m.edges }

// Validate checks the cube topology: every index in range, no edge repeated,
// and every vertex shared by exactly three edges.
func (m Model) Validate() error {
	var degree [CubeVertices]int
	seen := make(map[Edge]bool, CubeEdges)
	for i, e := range m.edges {
		a, b := e[0], e[1]
		if a < 0 || a >= CubeVertices || b < 0 || b >= CubeVertices {
			return fmt.Errorf("wire3d: edge %d index out of range: %v", i, e)
		}
		if a == b {
			return fmt.Errorf("wire3d: edge %d is degenerate: %v", i, e)
		}
		key := e
		if key[0] > key[1] {
			key[0], key[1] = key[1], key[0]
		}
		if seen[key] {
			return fmt.Errorf("wire3d: edge %d duplicated: %v", i, e)
		}
		seen[key] = true
		degree[a]++
		degree[b]++
	}
	for v, d := range degree {
		if d != 3 {
			return fmt.Errorf("wire3d: vertex %d has %d edges, want 3", v, d)
		}
	}
	return nil
}

// Project rotates, places and projects every vertex.
func (m Model) Project(a Angles, p Projection) [CubeVertices]Vec2 {
	var out [CubeVertices]Vec2
	rot := a.Matrix()
	for i, v := range m.vertices {
		out[i] = p.Project(Place(v, rot, p.PushBack))
	}
	return out
}
