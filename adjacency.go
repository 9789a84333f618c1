package loopmesh

// FaceAdjacency computes the #faces x 3 tables FF and FFi. FF(i, j) is the
// face sharing the j-th edge of face i and FFi(i, j) is where that edge sits
// in the neighbour's own EdgeIndices.
//
// Every edge must border exactly two faces; otherwise a NonManifoldMeshError
// is returned and no tables are produced.
func (t *Topology) FaceAdjacency() (ff, ffi *IndexTable, err error) {
	if err := t.Manifold(); err != nil {
		return nil, nil, err
	}

	ff = NewIndexTable(len(t.Faces), 3, -1)
	ffi = NewIndexTable(len(t.Faces), 3, -1)

	for i, face := range t.Faces {
		for j, edgeIndex := range face.EdgeIndices {
			neighbour := t.Edges[edgeIndex].OtherFace(i)
			ff.Set(i, j, neighbour)
			ffi.Set(i, j, t.Faces[neighbour].EdgeSlot(edgeIndex))
		}
	}
	return ff, ffi, nil
}

// VertexAdjacency returns, for each vertex, the opposite endpoints of its
// incident edges in edge-list order. Rows have varying length.
func (t *Topology) VertexAdjacency() [][]int {
	vv := make([][]int, len(t.VertexEdges))
	for i, edges := range t.VertexEdges {
		neighbours := make([]int, 0, len(edges))
		for _, edgeIndex := range edges {
			neighbours = append(neighbours, t.Edges[edgeIndex].Other(i))
		}
		vv[i] = neighbours
	}
	return vv
}
