package loaders

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/df07/go-phong-raytracer/pkg/core"
)

// binaryTetrahedron encodes a unit tetrahedron with an extra per-vertex
// colour and a per-face flag, both of which the loader must skip
func binaryTetrahedron(order binary.ByteOrder, format string) []byte {
	var buf bytes.Buffer
	buf.WriteString("ply\n")
	buf.WriteString("format " + format + " 1.0\n")
	buf.WriteString("comment test mesh\n")
	buf.WriteString("element vertex 4\n")
	buf.WriteString("property float x\n")
	buf.WriteString("property float y\n")
	buf.WriteString("property float z\n")
	buf.WriteString("property uchar red\n")
	buf.WriteString("element face 4\n")
	buf.WriteString("property list uchar int vertex_indices\n")
	buf.WriteString("property uchar flags\n")
	buf.WriteString("end_header\n")

	vertices := [][3]float32{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}, {0, 0, 1}}
	for _, v := range vertices {
		binary.Write(&buf, order, v)
		binary.Write(&buf, order, uint8(200))
	}

	faces := [][3]int32{{0, 2, 1}, {0, 1, 3}, {0, 3, 2}, {1, 2, 3}}
	for _, f := range faces {
		binary.Write(&buf, order, uint8(3))
		binary.Write(&buf, order, f)
		binary.Write(&buf, order, uint8(1))
	}
	return buf.Bytes()
}

func TestReadPLY_Binary(t *testing.T) {
	tests := []struct {
		format string
		order  binary.ByteOrder
	}{
		{"binary_little_endian", binary.LittleEndian},
		{"binary_big_endian", binary.BigEndian},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			data, err := ReadPLY(bytes.NewReader(binaryTetrahedron(tt.order, tt.format)))
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}

			if len(data.Vertices) != 4 {
				t.Fatalf("Expected 4 vertices, got %d", len(data.Vertices))
			}
			if !data.Vertices[3].ApproxEqual(core.NewPoint(0, 0, 1), 1e-9) {
				t.Errorf("Expected vertex 3 at (0,0,1), got %v", data.Vertices[3])
			}
			if len(data.Faces) != 4 {
				t.Fatalf("Expected 4 faces, got %d", len(data.Faces))
			}
			if data.Faces[3] != [3]int{1, 2, 3} {
				t.Errorf("Expected last face {1,2,3}, got %v", data.Faces[3])
			}
		})
	}
}

func TestReadPLY_ASCIIFanTriangulation(t *testing.T) {
	input := strings.Join([]string{
		"ply",
		"format ascii 1.0",
		"element vertex 4",
		"property double x",
		"property double y",
		"property double z",
		"element face 1",
		"property list uchar int vertex_indices",
		"end_header",
		"0 0 0",
		"1 0 0",
		"1 1 0",
		"0 1 0",
		"4 0 1 2 3",
	}, "\n") + "\n"

	data, err := ReadPLY(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	expected := [][3]int{{0, 1, 2}, {0, 2, 3}}
	if len(data.Faces) != len(expected) {
		t.Fatalf("Expected %d triangles, got %d", len(expected), len(data.Faces))
	}
	for i, f := range expected {
		if data.Faces[i] != f {
			t.Errorf("Triangle %d: expected %v, got %v", i, f, data.Faces[i])
		}
	}
	if !data.Vertices[2].IsPoint() {
		t.Error("Vertices should be points")
	}
}

func TestReadPLY_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"missing magic", "format ascii 1.0\nend_header\n"},
		{"no end_header", "ply\nformat ascii 1.0\nelement vertex 1\n"},
		{"unsupported format", "ply\nformat binary_middle_endian 1.0\nend_header\n"},
		{"bad element count", "ply\nformat ascii 1.0\nelement vertex many\nend_header\n"},
		{"truncated body", "ply\nformat ascii 1.0\nelement vertex 2\nproperty float x\nend_header\n1\n"},
		{"index out of range", "ply\nformat ascii 1.0\nelement vertex 1\nproperty float x\nelement face 1\nproperty list uchar int vertex_indices\nend_header\n0\n3 0 0 5\n"},
		{"negative list length", "ply\nformat ascii 1.0\nelement vertex 3\nproperty float x\nelement face 1\nproperty list uchar int vertex_indices\nend_header\n0\n1\n2\n-1 0 1 2\n"},
		{"huge list length", "ply\nformat ascii 1.0\nelement vertex 3\nproperty float x\nelement face 1\nproperty list uchar int vertex_indices\nend_header\n0\n1\n2\n1e18 0 1 2\n"},
		{"fractional list length", "ply\nformat ascii 1.0\nelement vertex 3\nproperty float x\nelement face 1\nproperty list uchar int vertex_indices\nend_header\n0\n1\n2\n2.5 0 1 2\n"},
		{"NaN list length", "ply\nformat ascii 1.0\nelement vertex 3\nproperty float x\nelement face 1\nproperty list uchar int vertex_indices\nend_header\n0\n1\n2\nNaN 0 1 2\n"},
		{"degenerate face", "ply\nformat ascii 1.0\nelement vertex 2\nproperty float x\nelement face 1\nproperty list uchar int vertex_indices\nend_header\n0\n1\n2 0 1\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if r := recover(); r != nil {
					t.Fatalf("ReadPLY panicked: %v", r)
				}
			}()
			if _, err := ReadPLY(strings.NewReader(tt.input)); err == nil {
				t.Error("Expected error")
			}
		})
	}
}

func TestLoadPLY_Polyhedron(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tetra.ply")
	if err := os.WriteFile(path, binaryTetrahedron(binary.LittleEndian, "binary_little_endian"), 0644); err != nil {
		t.Fatalf("Failed to write PLY: %v", err)
	}

	data, err := LoadPLY(path)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	mesh, err := data.Polyhedron()
	if err != nil {
		t.Fatalf("Failed to build polyhedron: %v", err)
	}

	// Ray down the z axis through the x=y=0.2 column enters the slanted face
	// at z=0.6 and leaves through the z=0 face
	ray := core.NewRay(core.NewPoint(0.2, 0.2, 2), core.NewArrow(0, 0, -1))
	hits := mesh.FindIntersections(ray)
	if len(hits) != 2 {
		t.Fatalf("Expected 2 hits, got %v", hits)
	}
	if abs(hits[0]-1.4) > 1e-9 || abs(hits[1]-2) > 1e-9 {
		t.Errorf("Expected hits [1.4 2], got %v", hits)
	}
}

func TestLoadPLY_MissingFile(t *testing.T) {
	if _, err := LoadPLY(filepath.Join(t.TempDir(), "missing.ply")); err == nil {
		t.Error("Expected error for missing file")
	}
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}

func TestReadPLY_MalformedListLength(t *testing.T) {
	header := "ply\nformat %s 1.0\nelement vertex 3\nproperty float x\n" +
		"element face 1\nproperty list int int vertex_indices\nend_header\n"

	t.Run("ascii", func(t *testing.T) {
		input := fmt.Sprintf(header, "ascii") + "0\n1\n2\n-1 0 1 2\n"
		_, err := ReadPLY(strings.NewReader(input))
		if !errors.Is(err, ErrMalformedPLY) {
			t.Errorf("Expected ErrMalformedPLY, got %v", err)
		}
	})

	t.Run("binary", func(t *testing.T) {
		var buf bytes.Buffer
		buf.WriteString(fmt.Sprintf(header, "binary_little_endian"))
		binary.Write(&buf, binary.LittleEndian, [3]float32{0, 1, 2})
		binary.Write(&buf, binary.LittleEndian, int32(-7))
		_, err := ReadPLY(&buf)
		if !errors.Is(err, ErrMalformedPLY) {
			t.Errorf("Expected ErrMalformedPLY, got %v", err)
		}
	})
}
