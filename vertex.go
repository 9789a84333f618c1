package loopmesh

import "github.com/go-gl/mathgl/mgl64"

type Vertex struct {
	Position mgl64.Vec3
	// EdgeIndices lists incident edges in discovery order.
	EdgeIndices []int
}

// Valence is the number of edges incident to the vertex.
func (v *Vertex) Valence() int {
	return len(v.EdgeIndices)
}

func positionsFromFlat(vertices []float64) []mgl64.Vec3 {
	out := make([]mgl64.Vec3, len(vertices)/3)
	for i := range out {
		out[i] = mgl64.Vec3{vertices[3*i], vertices[3*i+1], vertices[3*i+2]}
	}
	return out
}
