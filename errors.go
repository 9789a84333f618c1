package loopmesh

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownShape   = errors.New("unknown shape")
	ErrNegativeRounds = errors.New("subdivision rounds must not be negative")
)

// InvalidTopologyError reports malformed connectivity in the input buffers:
// non-triangulated faces, degenerate edges or out of range indices.
type InvalidTopologyError struct {
	Reason  string
	Indices []int
}

func (e *InvalidTopologyError) Error() string {
	return fmt.Sprintf("invalid topology: %s %v", e.Reason, e.Indices)
}

// NonManifoldMeshError is returned when an edge is not shared by exactly two faces.
type NonManifoldMeshError struct {
	Edge        int
	VertIndices [2]int
	FaceCount   int
}

func (e *NonManifoldMeshError) Error() string {
	return fmt.Sprintf("non-manifold mesh: edge %d (%d-%d) has %d incident faces, want 2",
		e.Edge, e.VertIndices[0], e.VertIndices[1], e.FaceCount)
}
