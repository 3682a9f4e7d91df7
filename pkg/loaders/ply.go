package loaders

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/geometry"
)

// maxListLength bounds the entries of one list property, such as the
// vertices of a single face
const maxListLength = 1 << 16

// ErrMalformedPLY is returned for PLY bodies whose values cannot be used
var ErrMalformedPLY = errors.New("malformed PLY data")

// PLYHeader represents the parsed header information from a PLY file
type PLYHeader struct {
	Format   string // "binary_little_endian", "binary_big_endian", or "ascii"
	Version  string // Usually "1.0"
	Elements []PLYElement
}

// PLYElement is one element block of the header, such as vertex or face
type PLYElement struct {
	Name       string
	Count      int
	Properties []PLYProperty
}

// PLYProperty represents a property definition in the PLY header
type PLYProperty struct {
	Name     string
	Type     string
	IsList   bool
	ListType string // For list properties, the type of the count
}

// PLYData contains the mesh loaded from a PLY file
type PLYData struct {
	Vertices []core.Vec4 // Vertex positions as points
	Faces    [][3]int    // Triangle indices; polygons are fan-triangulated
}

// LoadPLY loads a PLY file and returns its vertices and triangles
func LoadPLY(filename string) (*PLYData, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open PLY file: %w", err)
	}
	defer file.Close()

	return ReadPLY(file)
}

// ReadPLY parses PLY data from r. ascii, binary_little_endian and
// binary_big_endian are supported.
func ReadPLY(r io.Reader) (*PLYData, error) {
	reader := bufio.NewReader(r)

	header, err := parsePLYHeader(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to parse PLY header: %w", err)
	}

	var values valueReader
	switch header.Format {
	case "ascii":
		scanner := bufio.NewScanner(reader)
		scanner.Split(bufio.ScanWords)
		values = &asciiReader{scanner: scanner}
	case "binary_little_endian":
		values = &binaryReader{r: reader, order: binary.LittleEndian}
	case "binary_big_endian":
		values = &binaryReader{r: reader, order: binary.BigEndian}
	default:
		return nil, fmt.Errorf("unsupported PLY format: %s", header.Format)
	}

	data := &PLYData{}
	for _, element := range header.Elements {
		for i := 0; i < element.Count; i++ {
			if err := data.readElement(values, element); err != nil {
				return nil, fmt.Errorf("failed to read %s %d: %w", element.Name, i, err)
			}
		}
	}

	for i, f := range data.Faces {
		for _, v := range f {
			if v < 0 || v >= len(data.Vertices) {
				return nil, fmt.Errorf("face %d references vertex %d of %d", i, v, len(data.Vertices))
			}
		}
	}

	return data, nil
}

// Polyhedron builds a mesh body from the loaded data
func (d *PLYData) Polyhedron() (*geometry.Polyhedron, error) {
	return geometry.NewPolyhedron(d.Vertices, d.Faces)
}

// readElement reads one element instance, keeping vertex positions and face
// indices and discarding every other property
func (d *PLYData) readElement(values valueReader, element PLYElement) error {
	var x, y, z float64
	for _, prop := range element.Properties {
		if prop.IsList {
			n, err := values.next(prop.ListType)
			if err != nil {
				return err
			}
			if math.IsNaN(n) || n < 0 || n > maxListLength {
				return fmt.Errorf("%s list length %g: %w", prop.Name, n, ErrMalformedPLY)
			}
			list := make([]int, int(n))
			for j := range list {
				v, err := values.next(prop.Type)
				if err != nil {
					return err
				}
				list[j] = int(v)
			}
			if element.Name == "face" && (prop.Name == "vertex_indices" || prop.Name == "vertex_index") {
				if len(list) < 3 {
					return fmt.Errorf("face has %d vertices", len(list))
				}
				for j := 1; j+1 < len(list); j++ {
					d.Faces = append(d.Faces, [3]int{list[0], list[j], list[j+1]})
				}
			}
			continue
		}

		v, err := values.next(prop.Type)
		if err != nil {
			return err
		}
		switch prop.Name {
		case "x":
			x = v
		case "y":
			y = v
		case "z":
			z = v
		}
	}

	if element.Name == "vertex" {
		d.Vertices = append(d.Vertices, core.NewPoint(x, y, z))
	}
	return nil
}

// parsePLYHeader parses the header up to and including end_header
func parsePLYHeader(reader *bufio.Reader) (*PLYHeader, error) {
	header := &PLYHeader{}

	magic, err := reader.ReadString('\n')
	if err != nil || strings.TrimSpace(magic) != "ply" {
		return nil, fmt.Errorf("missing ply magic number")
	}

	for {
		line, err := reader.ReadString('\n')
		if err != nil {
			return nil, fmt.Errorf("header ended before end_header: %w", err)
		}

		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}

		switch parts[0] {
		case "end_header":
			if header.Format == "" {
				return nil, fmt.Errorf("missing format line")
			}
			return header, nil
		case "format":
			if len(parts) < 3 {
				return nil, fmt.Errorf("invalid format line: %q", strings.TrimSpace(line))
			}
			header.Format = parts[1]
			header.Version = parts[2]
		case "comment", "obj_info":
			// Ignore comments
		case "element":
			if len(parts) < 3 {
				return nil, fmt.Errorf("invalid element line: %q", strings.TrimSpace(line))
			}
			count, err := strconv.Atoi(parts[2])
			if err != nil || count < 0 {
				return nil, fmt.Errorf("invalid element count: %s", parts[2])
			}
			header.Elements = append(header.Elements, PLYElement{Name: parts[1], Count: count})
		case "property":
			if len(header.Elements) == 0 {
				return nil, fmt.Errorf("property before any element")
			}
			prop, err := parsePLYProperty(parts[1:])
			if err != nil {
				return nil, err
			}
			last := &header.Elements[len(header.Elements)-1]
			last.Properties = append(last.Properties, prop)
		default:
			return nil, fmt.Errorf("unknown header keyword: %s", parts[0])
		}
	}
}

// parsePLYProperty parses a property line from the PLY header
func parsePLYProperty(parts []string) (PLYProperty, error) {
	if len(parts) < 2 {
		return PLYProperty{}, fmt.Errorf("invalid property definition")
	}

	if parts[0] == "list" {
		if len(parts) < 4 {
			return PLYProperty{}, fmt.Errorf("invalid list property definition")
		}
		return PLYProperty{IsList: true, ListType: parts[1], Type: parts[2], Name: parts[3]}, nil
	}
	return PLYProperty{Type: parts[0], Name: parts[1]}, nil
}

// valueReader yields successive scalar values of the given PLY type
type valueReader interface {
	next(dataType string) (float64, error)
}

type asciiReader struct {
	scanner *bufio.Scanner
}

func (a *asciiReader) next(dataType string) (float64, error) {
	if !a.scanner.Scan() {
		if err := a.scanner.Err(); err != nil {
			return 0, err
		}
		return 0, io.ErrUnexpectedEOF
	}
	v, err := strconv.ParseFloat(a.scanner.Text(), 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrMalformedPLY, err)
	}
	if isIntegerType(dataType) && (math.IsInf(v, 0) || v != math.Trunc(v)) {
		return 0, fmt.Errorf("%s value %q is not a whole number: %w", dataType, a.scanner.Text(), ErrMalformedPLY)
	}
	return v, nil
}

// isIntegerType reports whether a PLY scalar type holds whole numbers
func isIntegerType(dataType string) bool {
	switch dataType {
	case "char", "int8", "uchar", "uint8", "short", "int16", "ushort", "uint16",
		"int", "int32", "uint", "uint32":
		return true
	}
	return false
}

type binaryReader struct {
	r     io.Reader
	order binary.ByteOrder
}

func (b *binaryReader) next(dataType string) (float64, error) {
	switch dataType {
	case "char", "int8":
		var v int8
		err := binary.Read(b.r, b.order, &v)
		return float64(v), err
	case "uchar", "uint8":
		var v uint8
		err := binary.Read(b.r, b.order, &v)
		return float64(v), err
	case "short", "int16":
		var v int16
		err := binary.Read(b.r, b.order, &v)
		return float64(v), err
	case "ushort", "uint16":
		var v uint16
		err := binary.Read(b.r, b.order, &v)
		return float64(v), err
	case "int", "int32":
		var v int32
		err := binary.Read(b.r, b.order, &v)
		return float64(v), err
	case "uint", "uint32":
		var v uint32
		err := binary.Read(b.r, b.order, &v)
		return float64(v), err
	case "float", "float32":
		var v float32
		err := binary.Read(b.r, b.order, &v)
		return float64(v), err
	case "double", "float64":
		var v float64
		err := binary.Read(b.r, b.order, &v)
		return v, err
	default:
		return 0, fmt.Errorf("unsupported PLY data type: %s", dataType)
	}
}
