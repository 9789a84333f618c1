package loopmesh

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEdge(t *testing.T) {
	testCases := []struct {
		name    string
		indices []int
		wantErr bool
	}{
		{"ordered pair", []int{2, 7}, false},
		{"reversed pair", []int{7, 2}, true},
		{"equal indices", []int{3, 3}, true},
		{"one index", []int{1}, true},
		{"three indices", []int{1, 2, 3}, true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			e, err := NewEdge(tc.indices)
			if tc.wantErr {
				var topoErr *InvalidTopologyError
				require.True(t, errors.As(err, &topoErr), "NewEdge(%v) error = %v", tc.indices, err)
				assert.Nil(t, e)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, [2]int{tc.indices[0], tc.indices[1]}, e.VertIndices)
			assert.Empty(t, e.FaceIndices)
		})
	}
}

func TestNewFace(t *testing.T) {
	f, err := NewFace([]int{4, 1, 9})
	require.NoError(t, err)
	assert.Equal(t, [3]int{4, 1, 9}, f.VertIndices)

	for _, bad := range [][]int{{1, 2}, {1, 2, 3, 4}, nil} {
		_, err := NewFace(bad)
		var topoErr *InvalidTopologyError
		assert.True(t, errors.As(err, &topoErr), "NewFace(%v) error = %v", bad, err)
	}
}

func TestBuildTopologyCounts(t *testing.T) {
	for _, fx := range fixtures {
		t.Run(fx.name, func(t *testing.T) {
			b := fx.buffers()
			topo, err := BuildTopology(len(b.Vertices)/3, b.Indices)
			require.NoError(t, err)

			assert.Len(t, topo.Faces, fx.f)
			assert.Len(t, topo.Edges, fx.e)
			assert.Equal(t, 3*len(topo.Faces), 2*len(topo.Edges))
			assert.NoError(t, topo.Manifold())

			for i, f := range topo.Faces {
				assert.Len(t, f.EdgeIndices, 3, "face %d", i)
			}
			for i, edges := range topo.VertexEdges {
				assert.GreaterOrEqual(t, len(edges), fx.minValence, "vertex %d", i)
				assert.LessOrEqual(t, len(edges), fx.maxValence, "vertex %d", i)
			}
		})
	}
}

func TestBuildTopologyCanonicalEdges(t *testing.T) {
	b := Icosahedron()
	topo, err := BuildTopology(len(b.Vertices)/3, b.Indices)
	require.NoError(t, err)

	seen := make(map[[2]int]bool)
	for i, e := range topo.Edges {
		assert.Less(t, e.VertIndices[0], e.VertIndices[1], "edge %d not canonical", i)
		assert.False(t, seen[e.VertIndices], "edge %v created twice", e.VertIndices)
		seen[e.VertIndices] = true

		a, c := e.VertIndices[0], e.VertIndices[1]
		got1, ok1 := topo.EdgeIndex(a, c)
		got2, ok2 := topo.EdgeIndex(c, a)
		assert.True(t, ok1 && ok2)
		assert.Equal(t, i, got1)
		assert.Equal(t, i, got2)
	}

	_, ok := topo.EdgeIndex(0, 3)
	assert.False(t, ok, "vertices 0 and 3 are not adjacent on the icosahedron")
}

func TestBuildTopologyEdgeSlots(t *testing.T) {
	b := Octahedron()
	topo, err := BuildTopology(len(b.Vertices)/3, b.Indices)
	require.NoError(t, err)

	for i, f := range topo.Faces {
		for j, edgeIndex := range f.EdgeIndices {
			a, c := f.VertIndices[j], f.VertIndices[(j+1)%3]
			want, ok := topo.EdgeIndex(a, c)
			require.True(t, ok)
			assert.Equal(t, want, edgeIndex, "face %d slot %d", i, j)
			assert.Contains(t, topo.Edges[edgeIndex].FaceIndices, i)
		}
	}
}

func TestBuildTopologyIdempotent(t *testing.T) {
	b := Cube()
	first, err := BuildTopology(len(b.Vertices)/3, b.Indices)
	require.NoError(t, err)
	second, err := BuildTopology(len(b.Vertices)/3, b.Indices)
	require.NoError(t, err)

	assert.Equal(t, first.Faces, second.Faces)
	assert.Equal(t, first.Edges, second.Edges)
	assert.Equal(t, first.VertexEdges, second.VertexEdges)
	assert.NotSame(t, first.Faces[0], second.Faces[0])
}

func TestBuildTopologyInvalid(t *testing.T) {
	testCases := []struct {
		name        string
		vertexCount int
		indices     []int
	}{
		{"not a triangle list", 3, []int{0, 1, 2, 0}},
		{"index out of range", 3, []int{0, 1, 3}},
		{"negative index", 3, []int{0, -1, 2}},
		{"degenerate triangle", 3, []int{0, 0, 1}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			topo, err := BuildTopology(tc.vertexCount, tc.indices)
			var topoErr *InvalidTopologyError
			require.True(t, errors.As(err, &topoErr), "error = %v", err)
			assert.Nil(t, topo)
		})
	}
}

func TestManifold(t *testing.T) {
	open := Tetrahedron()
	openTopo, err := BuildTopology(4, open.Indices[:9])
	require.NoError(t, err)

	fan, err := BuildTopology(5, []int{0, 1, 2, 1, 0, 3, 0, 1, 4})
	require.NoError(t, err)

	testCases := []struct {
		name      string
		topo      *Topology
		faceCount int
	}{
		{"boundary edge", openTopo, 1},
		{"edge shared by three faces", fan, 3},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.topo.Manifold()
			var nm *NonManifoldMeshError
			require.True(t, errors.As(err, &nm), "Manifold() = %v", err)
			assert.Equal(t, tc.faceCount, nm.FaceCount)
			assert.Equal(t, tc.topo.Edges[nm.Edge].VertIndices, nm.VertIndices)
		})
	}
}
