package loopmesh

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Mesh owns a triangle mesh and its current topology snapshot. Every change
// to vertices or indices replaces the snapshot as a whole.
type Mesh struct {
	vertices []*Vertex
	indices  []int
	topo     *Topology
}

// NewMesh builds a mesh from a flat position buffer (x, y, z per vertex) and a
// flat triangle index buffer. Both buffers are copied.
func NewMesh(vertices []float64, indices []int) (*Mesh, error) {
	if len(vertices)%3 != 0 {
		return nil, &InvalidTopologyError{
			Reason:  "position count is not a multiple of 3",
			Indices: []int{len(vertices)},
		}
	}
	idx := make([]int, len(indices))
	copy(idx, indices)
	return newMeshFromPositions(positionsFromFlat(vertices), idx)
}

func newMeshFromPositions(positions []mgl64.Vec3, indices []int) (*Mesh, error) {
	topo, err := BuildTopology(len(positions), indices)
	if err != nil {
		return nil, err
	}
	m := &Mesh{}
	m.replace(positions, indices, topo)
	return m, nil
}

func (m *Mesh) replace(positions []mgl64.Vec3, indices []int, topo *Topology) {
	verts := make([]*Vertex, len(positions))
	for i, p := range positions {
		verts[i] = &Vertex{Position: p, EdgeIndices: topo.VertexEdges[i]}
	}
	m.vertices = verts
	m.indices = indices
	m.topo = topo
}

func (m *Mesh) positions() []mgl64.Vec3 {
	out := make([]mgl64.Vec3, len(m.vertices))
	for i, v := range m.vertices {
		out[i] = v.Position
	}
	return out
}

func (m *Mesh) VertexCount() int { return len(m.vertices) }
func (m *Mesh) FaceCount() int   { return len(m.topo.Faces) }
func (m *Mesh) EdgeCount() int   { return len(m.topo.Edges) }

// Vertices returns the vertex records. They must be treated as read-only.
func (m *Mesh) Vertices() []*Vertex { return m.vertices }

func (m *Mesh) Faces() []*Face { return m.topo.Faces }

func (m *Mesh) Edges() []*Edge { return m.topo.Edges }

func (m *Mesh) Topology() *Topology { return m.topo }

// Indices returns a copy of the triangle-list index buffer.
func (m *Mesh) Indices() []int {
	out := make([]int, len(m.indices))
	copy(out, m.indices)
	return out
}

// Subdivide runs one round of Loop subdivision. The mesh must be a closed
// 2-manifold; on error it is left unchanged.
func (m *Mesh) Subdivide() error {
	coeffs, newIdx, _, err := LoopCoefficients(m.topo)
	if err != nil {
		return err
	}
	indices := LoopIndices(m.topo, newIdx, len(m.vertices))
	positions := coeffs.Apply(m.positions())

	topo, err := BuildTopology(len(positions), indices)
	if err != nil {
		return fmt.Errorf("rebuilding topology after subdivision: %w", err)
	}
	m.replace(positions, indices, topo)
	return nil
}

// SubdivideN runs rounds of Loop subdivision one after another.
func (m *Mesh) SubdivideN(rounds int) error {
	if rounds < 0 {
		return fmt.Errorf("%w: %d", ErrNegativeRounds, rounds)
	}
	for r := 1; r <= rounds; r++ {
		if err := m.Subdivide(); err != nil {
			return fmt.Errorf("subdivision round %d: %w", r, err)
		}
		slog.Debug("loop subdivision round",
			"round", r,
			"vertices", m.VertexCount(),
			"faces", m.FaceCount(),
			"edges", m.EdgeCount())
	}
	return nil
}

// FlatVertices flattens the vertex positions into x, y, z triples in vertex
// order, ready to be used as a position buffer.
func (m *Mesh) FlatVertices() []float64 {
	out := make([]float64, 0, 3*len(m.vertices))
	for _, v := range m.vertices {
		out = append(out, v.Position[0], v.Position[1], v.Position[2])
	}
	return out
}

// WireframeVertices emits both endpoint positions of every edge, six numbers
// per edge, for a line-list draw call.
func (m *Mesh) WireframeVertices() []float64 {
	out := make([]float64, 0, 6*len(m.topo.Edges))
	for _, e := range m.topo.Edges {
		p0 := m.vertices[e.VertIndices[0]].Position
		p1 := m.vertices[e.VertIndices[1]].Position
		out = append(out, p0[0], p0[1], p0[2], p1[0], p1[1], p1[2])
	}
	return out
}

// EulerCharacteristic returns V - E + F; 2 for a closed genus-0 surface.
func (m *Mesh) EulerCharacteristic() int {
	return m.VertexCount() - m.EdgeCount() + m.FaceCount()
}

// Bounds returns the axis-aligned bounding box of the vertices.
func (m *Mesh) Bounds() (lo, hi mgl64.Vec3) {
	if len(m.vertices) == 0 {
		return lo, hi
	}
	lo = mgl64.Vec3{math.Inf(1), math.Inf(1), math.Inf(1)}
	hi = mgl64.Vec3{math.Inf(-1), math.Inf(-1), math.Inf(-1)}
	for _, v := range m.vertices {
		for k := 0; k < 3; k++ {
			lo[k] = math.Min(lo[k], v.Position[k])
			hi[k] = math.Max(hi[k], v.Position[k])
		}
	}
	return lo, hi
}

// Clone returns an independent copy of the mesh.
func (m *Mesh) Clone() *Mesh {
	c, err := newMeshFromPositions(m.positions(), m.Indices())
	if err != nil {
		// the source mesh already passed the same checks
		panic(err)
	}
	return c
}
