package loopmesh

// Edge is an unordered vertex pair stored as [min, max].
type Edge struct {
	VertIndices [2]int
	FaceIndices []int
}

// NewEdge builds an edge from an already ordered pair. Unordered or degenerate
// pairs are rejected so that every pair has exactly one key.
func NewEdge(indices []int) (*Edge, error) {
	if len(indices) != 2 {
		return nil, &InvalidTopologyError{Reason: "an edge needs exactly 2 vertex indices", Indices: indices}
	}
	if indices[0] >= indices[1] {
		return nil, &InvalidTopologyError{Reason: "edge indices must be ordered from small to large", Indices: indices}
	}
	return &Edge{
		VertIndices: [2]int{indices[0], indices[1]},
		FaceIndices: make([]int, 0, 2),
	}, nil
}

// Other returns the endpoint that is not v.
func (e *Edge) Other(v int) int {
	if e.VertIndices[0] == v {
		return e.VertIndices[1]
	}
	return e.VertIndices[0]
}

// OtherFace returns the incident face that is not f. Callers check
// manifoldness first; the edge must have two faces.
func (e *Edge) OtherFace(f int) int {
	if e.FaceIndices[0] == f {
		return e.FaceIndices[1]
	}
	return e.FaceIndices[0]
}

func (e *Edge) IsManifold() bool {
	return len(e.FaceIndices) == 2
}
