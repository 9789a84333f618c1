package loopmesh

// Welder turns a triangle soup into indexed buffers by merging positions that
// are bitwise identical. Formats such as STL store every triangle corner
// separately; without welding no edge would be shared.
type Welder struct {
	vertices   []float64
	indices    []int
	pointIndex map[[3]float64]int
}

func NewWelder() *Welder {
	return &Welder{
		pointIndex: make(map[[3]float64]int),
	}
}

// Add returns the index of p, appending it if it has not been seen yet.
func (w *Welder) Add(p [3]float64) int {
	if index, found := w.pointIndex[p]; found {
		return index
	}
	index := len(w.vertices) / 3
	w.vertices = append(w.vertices, p[0], p[1], p[2])
	w.pointIndex[p] = index
	return index
}

// AddTriangle welds the three corners and appends the triangle. Triangles
// that collapse to fewer than three distinct vertices are dropped and false
// is returned.
func (w *Welder) AddTriangle(a, b, c [3]float64) bool {
	ia, ib, ic := w.Add(a), w.Add(b), w.Add(c)
	if ia == ib || ib == ic || ia == ic {
		return false
	}
	w.indices = append(w.indices, ia, ib, ic)
	return true
}

func (w *Welder) VertexCount() int {
	return len(w.vertices) / 3
}

// Buffers returns copies of the welded position and index buffers.
func (w *Welder) Buffers() Buffers {
	v := make([]float64, len(w.vertices))
	copy(v, w.vertices)
	idx := make([]int, len(w.indices))
	copy(idx, w.indices)
	return Buffers{Vertices: v, Indices: idx}
}
