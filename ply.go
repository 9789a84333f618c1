package loopmesh

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

type plyElement struct {
	name  string
	count int
	props []string
}

func (e *plyElement) propIndex(name string) int {
	for i, p := range e.props {
		if p == name {
			return i
		}
	}
	return -1
}

// LoadPLYFile reads an ASCII PLY file into raw buffers.
func LoadPLYFile(fileName string) (Buffers, error) {
	file, err := os.Open(fileName)
	if err != nil {
		return Buffers{}, fmt.Errorf("could not open PLY file %s: %w", fileName, err)
	}
	defer file.Close()

	b, err := ReadPLY(file)
	if err != nil {
		return Buffers{}, fmt.Errorf("error parsing PLY file %s: %w", fileName, err)
	}
	return b, nil
}

// ReadPLY parses ASCII PLY. Vertex positions come from the x, y and z
// properties; faces are read from the leading vertex index list and polygons
// with more than three corners are fan triangulated. Colour and any other
// properties are ignored.
func ReadPLY(reader io.Reader) (Buffers, error) {
	scanner := bufio.NewScanner(reader)

	if !scanner.Scan() || strings.TrimSpace(scanner.Text()) != "ply" {
		return Buffers{}, fmt.Errorf("missing ply magic line")
	}

	var elements []*plyElement
	var current *plyElement
	headerDone := false
	for !headerDone && scanner.Scan() {
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}
		switch parts[0] {
		case "format":
			if len(parts) < 2 || parts[1] != "ascii" {
				return Buffers{}, fmt.Errorf("unsupported PLY format %q", strings.Join(parts[1:], " "))
			}
		case "element":
			if len(parts) != 3 {
				return Buffers{}, fmt.Errorf("malformed element line %q", scanner.Text())
			}
			count, err := strconv.Atoi(parts[2])
			if err != nil {
				return Buffers{}, fmt.Errorf("invalid element count %q: %w", parts[2], err)
			}
			current = &plyElement{name: parts[1], count: count}
			elements = append(elements, current)
		case "property":
			if current == nil {
				return Buffers{}, fmt.Errorf("property declared before any element")
			}
			current.props = append(current.props, parts[len(parts)-1])
		case "end_header":
			headerDone = true
		}
	}
	if !headerDone {
		return Buffers{}, fmt.Errorf("unexpected end of file while reading header")
	}

	var out Buffers
	vertexCount := 0
	for _, el := range elements {
		for i := 0; i < el.count; i++ {
			if !scanner.Scan() {
				return Buffers{}, fmt.Errorf("unexpected end of file while reading %s %d", el.name, i)
			}
			parts := strings.Fields(scanner.Text())

			switch el.name {
			case "vertex":
				p, err := plyPosition(el, parts)
				if err != nil {
					return Buffers{}, fmt.Errorf("invalid vertex data on line %d: %w", i, err)
				}
				out.Vertices = append(out.Vertices, p[0], p[1], p[2])
				vertexCount++
			case "face":
				idx, err := plyFaceIndices(parts)
				if err != nil {
					return Buffers{}, fmt.Errorf("invalid face data on line %d: %w", i, err)
				}
				for j := 1; j < len(idx)-1; j++ {
					out.Indices = append(out.Indices, idx[0], idx[j], idx[j+1])
				}
			}
		}
	}

	if err := scanner.Err(); err != nil {
		return Buffers{}, fmt.Errorf("error reading from PLY source: %w", err)
	}
	return out, nil
}

func plyPosition(el *plyElement, parts []string) ([3]float64, error) {
	var p [3]float64
	for k, name := range [3]string{"x", "y", "z"} {
		col := el.propIndex(name)
		if col < 0 {
			return p, fmt.Errorf("vertex element has no %s property", name)
		}
		if col >= len(parts) {
			return p, fmt.Errorf("missing %s column", name)
		}
		v, err := strconv.ParseFloat(parts[col], 64)
		if err != nil {
			return p, err
		}
		p[k] = v
	}
	return p, nil
}

func plyFaceIndices(parts []string) ([]int, error) {
	if len(parts) == 0 {
		return nil, fmt.Errorf("empty face line")
	}
	n, err := strconv.Atoi(parts[0])
	if err != nil {
		return nil, err
	}
	if n < 3 || len(parts) < n+1 {
		return nil, fmt.Errorf("face with %d corners and %d columns", n, len(parts)-1)
	}
	idx := make([]int, n)
	for j := 0; j < n; j++ {
		idx[j], err = strconv.Atoi(parts[j+1])
		if err != nil {
			return nil, err
		}
	}
	return idx, nil
}

// WritePLY writes the mesh as ASCII PLY with triangle faces.
func WritePLY(w io.Writer, m *Mesh) error {
	writer := bufio.NewWriter(w)

	_, _ = fmt.Fprintln(writer, "ply")
	_, _ = fmt.Fprintln(writer, "format ascii 1.0")
	_, _ = fmt.Fprintln(writer, "comment Generated by loopmesh")
	_, _ = fmt.Fprintf(writer, "element vertex %d\n", m.VertexCount())
	_, _ = fmt.Fprintln(writer, "property double x")
	_, _ = fmt.Fprintln(writer, "property double y")
	_, _ = fmt.Fprintln(writer, "property double z")
	_, _ = fmt.Fprintf(writer, "element face %d\n", m.FaceCount())
	_, _ = fmt.Fprintln(writer, "property list uchar int vertex_indices")
	_, _ = fmt.Fprintln(writer, "end_header")

	for _, v := range m.Vertices() {
		_, _ = fmt.Fprintf(writer, "%s %s %s\n", formatFloat(v.Position[0]), formatFloat(v.Position[1]), formatFloat(v.Position[2]))
	}
	for _, f := range m.Faces() {
		_, _ = fmt.Fprintf(writer, "3 %d %d %d\n", f.VertIndices[0], f.VertIndices[1], f.VertIndices[2])
	}
	return writer.Flush()
}

// SavePLYFile writes the mesh to fileName as ASCII PLY.
func SavePLYFile(fileName string, m *Mesh) error {
	file, err := os.Create(fileName)
	if err != nil {
		return fmt.Errorf("could not create PLY file %s: %w", fileName, err)
	}
	defer file.Close()

	if err := WritePLY(file, m); err != nil {
		return fmt.Errorf("could not write PLY file %s: %w", fileName, err)
	}
	return file.Close()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
