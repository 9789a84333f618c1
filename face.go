package loopmesh

import "github.com/go-gl/mathgl/mgl64"

// Face is a triangle. EdgeIndices holds the bounding edges in the order they
// were discovered walking (v0,v1), (v1,v2), (v2,v0).
type Face struct {
	VertIndices [3]int
	EdgeIndices []int
}

func NewFace(indices []int) (*Face, error) {
	if len(indices) != 3 {
		return nil, &InvalidTopologyError{Reason: "faces must be triangles", Indices: indices}
	}
	return &Face{
		VertIndices: [3]int{indices[0], indices[1], indices[2]},
		EdgeIndices: make([]int, 0, 3),
	}, nil
}

func (f *Face) hasEdge(edgeIndex int) bool {
	for _, e := range f.EdgeIndices {
		if e == edgeIndex {
			return true
		}
	}
	return false
}

// EdgeSlot returns the position of edgeIndex within EdgeIndices, or -1.
func (f *Face) EdgeSlot(edgeIndex int) int {
	for j, e := range f.EdgeIndices {
		if e == edgeIndex {
			return j
		}
	}
	return -1
}

// Normal returns the unit normal implied by the winding order. A degenerate
// triangle yields the zero vector.
func (f *Face) Normal(vertices []*Vertex) mgl64.Vec3 {
	p0 := vertices[f.VertIndices[0]].Position
	p1 := vertices[f.VertIndices[1]].Position
	p2 := vertices[f.VertIndices[2]].Position

	n := p1.Sub(p0).Cross(p2.Sub(p1))
	if n.Len() == 0 {
		return n
	}
	return n.Normalize()
}

// MidPoint is the centroid of the triangle.
func (f *Face) MidPoint(vertices []*Vertex) mgl64.Vec3 {
	sum := mgl64.Vec3{}
	for _, vi := range f.VertIndices {
		sum = sum.Add(vertices[vi].Position)
	}
	return sum.Mul(1.0 / 3.0)
}
