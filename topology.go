package loopmesh

// Topology is the connectivity snapshot derived from one (vertices, indices)
// pair. It is never patched; a change of indices builds a new one.
type Topology struct {
	Faces []*Face
	Edges []*Edge
	// VertexEdges[i] lists the edges incident to vertex i.
	VertexEdges [][]int

	edgeIndex map[int]map[int]int
}

// BuildTopology derives faces, edges and per-vertex edge lists from a flat
// triangle list. Only the vertex count is needed from the positions.
func BuildTopology(vertexCount int, indices []int) (*Topology, error) {
	if len(indices)%3 != 0 {
		return nil, &InvalidTopologyError{
			Reason:  "index count is not a multiple of 3",
			Indices: []int{len(indices)},
		}
	}
	for _, vi := range indices {
		if vi < 0 || vi >= vertexCount {
			return nil, &InvalidTopologyError{
				Reason:  "vertex index out of range",
				Indices: []int{vi, vertexCount},
			}
		}
	}

	faceCount := len(indices) / 3
	t := &Topology{
		Faces:       make([]*Face, 0, faceCount),
		Edges:       make([]*Edge, 0, faceCount*3/2),
		VertexEdges: make([][]int, vertexCount),
		edgeIndex:   make(map[int]map[int]int, vertexCount),
	}

	for i := 0; i < faceCount; i++ {
		face, err := NewFace(indices[i*3 : i*3+3])
		if err != nil {
			return nil, err
		}

		for v := 0; v < 3; v++ {
			a := face.VertIndices[v]
			b := face.VertIndices[(v+1)%3]
			lo, hi := min(a, b), max(a, b)

			edgeIndex, err := t.findOrAddEdge(lo, hi)
			if err != nil {
				return nil, err
			}
			if !face.hasEdge(edgeIndex) {
				face.EdgeIndices = append(face.EdgeIndices, edgeIndex)
			}
		}

		for _, edgeIndex := range face.EdgeIndices {
			edge := t.Edges[edgeIndex]
			edge.FaceIndices = append(edge.FaceIndices, i)

			for _, vi := range edge.VertIndices {
				if !containsInt(t.VertexEdges[vi], edgeIndex) {
					t.VertexEdges[vi] = append(t.VertexEdges[vi], edgeIndex)
				}
			}
		}

		t.Faces = append(t.Faces, face)
	}

	return t, nil
}

func (t *Topology) findOrAddEdge(lo, hi int) (int, error) {
	inner, ok := t.edgeIndex[lo]
	if !ok {
		inner = make(map[int]int)
		t.edgeIndex[lo] = inner
	}
	if edgeIndex, ok := inner[hi]; ok {
		return edgeIndex, nil
	}

	edge, err := NewEdge([]int{lo, hi})
	if err != nil {
		return 0, err
	}
	edgeIndex := len(t.Edges)
	inner[hi] = edgeIndex
	t.Edges = append(t.Edges, edge)
	return edgeIndex, nil
}

// EdgeIndex looks up the edge joining a and b in either order.
func (t *Topology) EdgeIndex(a, b int) (int, bool) {
	inner, ok := t.edgeIndex[min(a, b)]
	if !ok {
		return 0, false
	}
	edgeIndex, ok := inner[max(a, b)]
	return edgeIndex, ok
}

// Manifold returns an error for the first edge not shared by exactly two faces.
func (t *Topology) Manifold() error {
	for i, e := range t.Edges {
		if !e.IsManifold() {
			return &NonManifoldMeshError{
				Edge:        i,
				VertIndices: e.VertIndices,
				FaceCount:   len(e.FaceIndices),
			}
		}
	}
	return nil
}

func (t *Topology) VertexCount() int {
	return len(t.VertexEdges)
}

func containsInt(s []int, v int) bool {
	for _, x := range s {
		if x == v {
			return true
		}
	}
	return false
}
