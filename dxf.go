package loopmesh

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// WriteDXF writes every triangle as a 3DFACE entity. With wireframe set,
// every edge is also written as a LINE entity on layer "wire".
func WriteDXF(w io.Writer, m *Mesh, wireframe bool) error {
	writer := bufio.NewWriter(w)

	writePair := func(code int, value interface{}) {
		_, _ = fmt.Fprintf(writer, "%d\n%v\n", code, value)
	}
	writeCorner := func(n int, x, y, z float64) {
		writePair(10+n, formatFloat(x))
		writePair(20+n, formatFloat(y))
		writePair(30+n, formatFloat(z))
	}

	writePair(0, "SECTION")
	writePair(2, "HEADER")
	writePair(0, "ENDSEC")

	writePair(0, "SECTION")
	writePair(2, "ENTITIES")

	verts := m.Vertices()
	for _, f := range m.Faces() {
		writePair(0, "3DFACE")
		writePair(8, "0")
		for c, vi := range f.VertIndices {
			p := verts[vi].Position
			writeCorner(c, p[0], p[1], p[2])
		}
		// a triangle repeats its third corner
		p := verts[f.VertIndices[2]].Position
		writeCorner(3, p[0], p[1], p[2])
	}

	if wireframe {
		wire := m.WireframeVertices()
		for i := 0; i+6 <= len(wire); i += 6 {
			writePair(0, "LINE")
			writePair(8, "wire")
			writeCorner(0, wire[i], wire[i+1], wire[i+2])
			writeCorner(1, wire[i+3], wire[i+4], wire[i+5])
		}
	}

	writePair(0, "ENDSEC")
	writePair(0, "EOF")

	return writer.Flush()
}

// ReadDXF collects the 3DFACE entities of a DXF stream and welds them into
// indexed buffers. Quads are split along the first diagonal. Other entities
// are skipped.
func ReadDXF(reader io.Reader) (Buffers, error) {
	scanner := bufio.NewScanner(reader)
	welder := NewWelder()

	var corners [4][3]float64
	var seen [4]bool
	inFace := false

	flush := func() {
		if !inFace || !seen[0] || !seen[1] || !seen[2] {
			return
		}
		welder.AddTriangle(corners[0], corners[1], corners[2])
		if seen[3] && corners[3] != corners[2] {
			welder.AddTriangle(corners[0], corners[2], corners[3])
		}
	}

	for scanner.Scan() {
		codeLine := strings.TrimSpace(scanner.Text())
		if !scanner.Scan() {
			return Buffers{}, fmt.Errorf("unexpected end of file after group code %q", codeLine)
		}
		value := strings.TrimSpace(scanner.Text())

		code, err := strconv.Atoi(codeLine)
		if err != nil {
			return Buffers{}, fmt.Errorf("invalid group code %q: %w", codeLine, err)
		}

		if code == 0 {
			flush()
			inFace = value == "3DFACE"
			seen = [4]bool{}
			continue
		}
		if !inFace {
			continue
		}

		axis, corner := code/10-1, code%10
		if code < 10 || code > 33 || corner > 3 || axis > 2 {
			continue
		}
		v, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return Buffers{}, fmt.Errorf("could not parse float value '%s': %w", value, err)
		}
		corners[corner][axis] = v
		seen[corner] = true
	}
	flush()

	if err := scanner.Err(); err != nil {
		return Buffers{}, fmt.Errorf("error reading from DXF source: %w", err)
	}
	return welder.Buffers(), nil
}
