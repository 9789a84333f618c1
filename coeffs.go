package loopmesh

import (
	"sort"

	"github.com/go-gl/mathgl/mgl64"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Weight is one non-zero entry of a coefficient row.
type Weight struct {
	Col   int
	Value float64
}

// CoefficientMatrix maps old vertex positions to new ones. Row i holds the
// weights that combine old positions into new vertex i. Rows are sparse since
// each stencil touches at most valence+1 old vertices.
type CoefficientMatrix struct {
	rows [][]Weight
	cols int
}

func NewCoefficientMatrix(rows, cols int) *CoefficientMatrix {
	return &CoefficientMatrix{
		rows: make([][]Weight, rows),
		cols: cols,
	}
}

func (c *CoefficientMatrix) Rows() int {
	return len(c.rows)
}

func (c *CoefficientMatrix) Cols() int {
	return c.cols
}

// Set assigns w to (row, col), replacing any earlier value in that cell.
// Rows are kept sorted by column so sums run in the same order as a dense
// row walk.
func (c *CoefficientMatrix) Set(row, col int, w float64) {
	r := c.rows[row]
	k := sort.Search(len(r), func(k int) bool { return r[k].Col >= col })
	if k < len(r) && r[k].Col == col {
		r[k].Value = w
		return
	}
	r = append(r, Weight{})
	copy(r[k+1:], r[k:])
	r[k] = Weight{Col: col, Value: w}
	c.rows[row] = r
}

// At returns the weight at (row, col), zero when unset.
func (c *CoefficientMatrix) At(row, col int) float64 {
	r := c.rows[row]
	k := sort.Search(len(r), func(k int) bool { return r[k].Col >= col })
	if k < len(r) && r[k].Col == col {
		return r[k].Value
	}
	return 0
}

func (c *CoefficientMatrix) Row(i int) []Weight {
	return c.rows[i]
}

func (c *CoefficientMatrix) RowSum(i int) float64 {
	vals := make([]float64, len(c.rows[i]))
	for k, w := range c.rows[i] {
		vals[k] = w.Value
	}
	return floats.Sum(vals)
}

func (c *CoefficientMatrix) NonZeros() int {
	n := 0
	for _, r := range c.rows {
		n += len(r)
	}
	return n
}

// Apply returns one position per row, each the weighted sum of the given
// old positions.
func (c *CoefficientMatrix) Apply(positions []mgl64.Vec3) []mgl64.Vec3 {
	out := make([]mgl64.Vec3, len(c.rows))
	for i, row := range c.rows {
		var pos mgl64.Vec3
		for _, w := range row {
			pos = pos.Add(positions[w.Col].Mul(w.Value))
		}
		out[i] = pos
	}
	return out
}

// Dense expands the matrix into a gonum dense matrix of size Rows x Cols.
func (c *CoefficientMatrix) Dense() *mat.Dense {
	if len(c.rows) == 0 || c.cols == 0 {
		return &mat.Dense{}
	}
	d := mat.NewDense(len(c.rows), c.cols, nil)
	for i, row := range c.rows {
		for _, w := range row {
			d.Set(i, w.Col, w.Value)
		}
	}
	return d
}
