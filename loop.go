package loopmesh

// Loop stencil weights.
const (
	edgeEndWeight      = 0.375
	edgeOppositeWeight = 0.125
)

// LoopBeta is the weight given to each neighbour of an existing vertex with
// n neighbours. Valence 3 uses the fixed 3/16 of the published scheme rather
// than 3/(8n).
func LoopBeta(n int) float64 {
	if n > 3 {
		return 0.375 / float64(n)
	}
	return 0.1875
}

// LoopCoefficients computes the new-vertex table and the coefficient matrix
// for one round of Loop subdivision over t. newIdx(i, j) is the index, counted
// from zero, of the vertex inserted on the j-th edge of face i; edgeCount is
// the number of inserted vertices. The matrix has vertexCount+edgeCount rows
// and vertexCount columns.
func LoopCoefficients(t *Topology) (coeffs *CoefficientMatrix, newIdx *IndexTable, edgeCount int, err error) {
	ff, ffi, err := t.FaceAdjacency()
	if err != nil {
		return nil, nil, 0, err
	}
	vv := t.VertexAdjacency()
	vertexCount := t.VertexCount()

	newIdx = NewIndexTable(len(t.Faces), 3, -1)
	counter := 0
	for i := range t.Faces {
		for j := 0; j < 3; j++ {
			if newIdx.At(i, j) == -1 {
				newIdx.Set(i, j, counter)
				newIdx.Set(ff.At(i, j), ffi.At(i, j), counter)
				counter++
			}
		}
	}

	coeffs = NewCoefficientMatrix(vertexCount+counter, vertexCount)

	// even vertices
	for i := 0; i < vertexCount; i++ {
		n := len(vv[i])
		beta := LoopBeta(n)
		for _, nb := range vv[i] {
			coeffs.Set(i, nb, beta)
		}
		coeffs.Set(i, i, 1.0-float64(n)*beta)
	}

	// odd vertices
	for i, face := range t.Faces {
		for j := 0; j < 3; j++ {
			row := vertexCount + newIdx.At(i, j)
			neighbour := t.Faces[ff.At(i, j)]
			coeffs.Set(row, face.VertIndices[j], edgeEndWeight)
			coeffs.Set(row, face.VertIndices[(j+1)%3], edgeEndWeight)
			coeffs.Set(row, face.VertIndices[(j+2)%3], edgeOppositeWeight)
			coeffs.Set(row, neighbour.VertIndices[(ffi.At(i, j)+2)%3], edgeOppositeWeight)
		}
	}

	return coeffs, newIdx, counter, nil
}

// LoopIndices splits every face of t into four, using the inserted vertex
// indices from newIdx offset by vertexCount. Child triangles keep the winding
// of their parent.
func LoopIndices(t *Topology, newIdx *IndexTable, vertexCount int) []int {
	indices := make([]int, 0, len(t.Faces)*12)
	for i, face := range t.Faces {
		v0, v1, v2 := face.VertIndices[0], face.VertIndices[1], face.VertIndices[2]
		m01 := newIdx.At(i, 0) + vertexCount
		m12 := newIdx.At(i, 1) + vertexCount
		m20 := newIdx.At(i, 2) + vertexCount

		indices = append(indices,
			v0, m01, m20,
			v1, m12, m01,
			v2, m20, m12,
			m01, m12, m20,
		)
	}
	return indices
}
