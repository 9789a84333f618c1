package loopmesh

import (
	"fmt"
	"strings"
)

// IndexTable is a dense row-major table of ints where every row has the same
// length, such as the per-face FF and FFi tables.
type IndexTable struct {
	data []int
	cols int
}

// NewIndexTable returns a rows x cols table with every cell set to fill.
func NewIndexTable(rows, cols, fill int) *IndexTable {
	data := make([]int, rows*cols)
	for i := range data {
		data[i] = fill
	}
	return &IndexTable{data: data, cols: cols}
}

func (t *IndexTable) Rows() int {
	if t.cols == 0 {
		return 0
	}
	return len(t.data) / t.cols
}

func (t *IndexTable) Cols() int {
	return t.cols
}

func (t *IndexTable) At(i, j int) int {
	return t.data[i*t.cols+j]
}

func (t *IndexTable) Set(i, j, v int) {
	t.data[i*t.cols+j] = v
}

// Row returns a view of row i; writes go through to the table.
func (t *IndexTable) Row(i int) []int {
	return t.data[i*t.cols : (i+1)*t.cols]
}

func (t *IndexTable) String() string {
	var sb strings.Builder
	for i := 0; i < t.Rows(); i++ {
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(fmt.Sprint(t.Row(i)))
	}
	return sb.String()
}
