package loopmesh

import (
	"fmt"
	"math"
	"sort"
)

// Buffers is a raw position/index pair as handed over by a loader.
type Buffers struct {
	Vertices []float64
	Indices  []int
}

func (b Buffers) Mesh() (*Mesh, error) {
	return NewMesh(b.Vertices, b.Indices)
}

// All fixtures are closed and wound counter-clockwise seen from outside.

func Tetrahedron() Buffers {
	return Buffers{
		Vertices: []float64{
			1, 1, 1,
			1, -1, -1,
			-1, 1, -1,
			-1, -1, 1,
		},
		Indices: []int{
			0, 1, 2,
			0, 3, 1,
			0, 2, 3,
			1, 3, 2,
		},
	}
}

func Octahedron() Buffers {
	return Buffers{
		Vertices: []float64{
			1, 0, 0,
			-1, 0, 0,
			0, 1, 0,
			0, -1, 0,
			0, 0, 1,
			0, 0, -1,
		},
		Indices: []int{
			0, 2, 4,
			1, 4, 2,
			0, 4, 3,
			1, 3, 4,
			0, 5, 2,
			1, 2, 5,
			0, 3, 5,
			1, 5, 3,
		},
	}
}

// Cube is the [-1,1] cube with each quad split along one diagonal.
func Cube() Buffers {
	verts := make([]float64, 0, 24)
	for i := 0; i < 8; i++ {
		x, y, z := -1.0, -1.0, -1.0
		if i&1 != 0 {
			x = 1
		}
		if i&2 != 0 {
			y = 1
		}
		if i&4 != 0 {
			z = 1
		}
		verts = append(verts, x, y, z)
	}

	quads := [6][4]int{
		{0, 2, 3, 1}, // -z
		{4, 5, 7, 6}, // +z
		{0, 1, 5, 4}, // -y
		{2, 6, 7, 3}, // +y
		{0, 4, 6, 2}, // -x
		{1, 3, 7, 5}, // +x
	}
	indices := make([]int, 0, 36)
	for _, q := range quads {
		indices = append(indices, q[0], q[1], q[2], q[0], q[2], q[3])
	}
	return Buffers{Vertices: verts, Indices: indices}
}

func Icosahedron() Buffers {
	t := (1 + math.Sqrt(5)) / 2
	return Buffers{
		Vertices: []float64{
			-1, t, 0,
			1, t, 0,
			-1, -t, 0,
			1, -t, 0,
			0, -1, t,
			0, 1, t,
			0, -1, -t,
			0, 1, -t,
			t, 0, -1,
			t, 0, 1,
			-t, 0, -1,
			-t, 0, 1,
		},
		Indices: []int{
			0, 11, 5, 0, 5, 1, 0, 1, 7, 0, 7, 10, 0, 10, 11,
			1, 5, 9, 5, 11, 4, 11, 10, 2, 10, 7, 6, 7, 1, 8,
			3, 9, 4, 3, 4, 2, 3, 2, 6, 3, 6, 8, 3, 8, 9,
			4, 9, 5, 2, 4, 11, 6, 2, 10, 8, 6, 7, 9, 8, 1,
		},
	}
}

var shapes = map[string]func() Buffers{
	"tetrahedron": Tetrahedron,
	"octahedron":  Octahedron,
	"cube":        Cube,
	"icosahedron": Icosahedron,
}

// Shape returns the named fixture.
func Shape(name string) (Buffers, error) {
	f, ok := shapes[name]
	if !ok {
		return Buffers{}, fmt.Errorf("%w: %q", ErrUnknownShape, name)
	}
	return f(), nil
}

func ShapeNames() []string {
	names := make([]string, 0, len(shapes))
	for n := range shapes {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
