package loopmesh

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/require"
)

const float64EqualityThreshold = 1e-9

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) <= float64EqualityThreshold
}

func almostEqualSlice(a, b []float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !almostEqual(a[i], b[i]) {
			return false
		}
	}
	return true
}

func mustMesh(t *testing.T, b Buffers) *Mesh {
	t.Helper()
	m, err := b.Mesh()
	require.NoError(t, err)
	return m
}

var fixtures = []struct {
	name       string
	buffers    func() Buffers
	v, f, e    int
	maxValence int
	minValence int
}{
	{"tetrahedron", Tetrahedron, 4, 4, 6, 3, 3},
	{"octahedron", Octahedron, 6, 8, 12, 4, 4},
	{"cube", Cube, 8, 12, 18, 6, 4},
	{"icosahedron", Icosahedron, 12, 20, 30, 5, 5},
}

// signedVolume is positive for a closed mesh wound counter-clockwise seen
// from outside.
func signedVolume(m *Mesh) float64 {
	verts := m.Vertices()
	vol := 0.0
	for _, f := range m.Faces() {
		p0 := verts[f.VertIndices[0]].Position
		p1 := verts[f.VertIndices[1]].Position
		p2 := verts[f.VertIndices[2]].Position
		vol += p0.Dot(p1.Cross(p2)) / 6
	}
	return vol
}

// directedEdges counts each (a, b) walk across all faces.
func directedEdges(m *Mesh) map[[2]int]int {
	out := make(map[[2]int]int)
	for _, f := range m.Faces() {
		for j := 0; j < 3; j++ {
			out[[2]int{f.VertIndices[j], f.VertIndices[(j+1)%3]}]++
		}
	}
	return out
}

func vecAlmostEqual(a, b mgl64.Vec3) bool {
	return almostEqual(a[0], b[0]) && almostEqual(a[1], b[1]) && almostEqual(a[2], b[2])
}
