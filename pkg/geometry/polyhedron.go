package geometry

import (
	"fmt"
	"math"
	"slices"

	"github.com/df07/go-phong-raytracer/pkg/core"
)

// sharedEdgeEpsilon merges hits on neighbouring faces that meet along an edge
const sharedEdgeEpsilon = 1e-9

// boxVertices are the corners of a unit cube centred at the origin
var boxVertices = [8]core.Vec4{
	core.NewPoint(0.5, 0.5, 0.5),
	core.NewPoint(0.5, 0.5, -0.5),
	core.NewPoint(-0.5, 0.5, -0.5),
	core.NewPoint(-0.5, 0.5, 0.5),
	core.NewPoint(0.5, -0.5, 0.5),
	core.NewPoint(0.5, -0.5, -0.5),
	core.NewPoint(-0.5, -0.5, -0.5),
	core.NewPoint(-0.5, -0.5, 0.5),
}

// boxFaces index boxVertices two triangles per side, wound so that every
// normal points outward
var boxFaces = [12][3]int{
	{0, 4, 1}, {5, 1, 4}, // +X
	{3, 2, 7}, {6, 7, 2}, // -X
	{0, 1, 3}, {2, 3, 1}, // +Y
	{4, 7, 5}, {6, 5, 7}, // -Y
	{0, 3, 4}, {7, 4, 3}, // +Z
	{1, 5, 2}, {6, 2, 5}, // -Z
}

// face is one triangle of a polyhedron with its precomputed plane
type face struct {
	plane
	a, b, c core.Vec4
}

// Polyhedron is a triangle mesh given by a vertex list and an index list
type Polyhedron struct {
	body
	vertices []core.Vec4
	indices  [][3]int
	faces    []face
}

// NewPolyhedron creates a mesh from object-space vertices and triangle
// indices. Indices out of range and zero-area faces are rejected.
func NewPolyhedron(vertices []core.Vec4, indices [][3]int) (*Polyhedron, error) {
	if len(indices) == 0 {
		return nil, fmt.Errorf("polyhedron has no faces: %w", core.ErrDegenerateGeometry)
	}

	faces := make([]face, 0, len(indices))
	for i, idx := range indices {
		for _, v := range idx {
			if v < 0 || v >= len(vertices) {
				return nil, fmt.Errorf("face %d references vertex %d of %d", i, v, len(vertices))
			}
		}
		a, b, c := vertices[idx[0]], vertices[idx[1]], vertices[idx[2]]
		p, err := newPlane(a, b, c)
		if err != nil {
			return nil, fmt.Errorf("face %d: %w", i, err)
		}
		faces = append(faces, face{plane: p, a: a, b: b, c: c})
	}

	return &Polyhedron{
		body:     newBody(core.Identity()),
		vertices: slices.Clone(vertices),
		indices:  slices.Clone(indices),
		faces:    faces,
	}, nil
}

// NewBox creates an axis-aligned box spanning the corners min and max.
// Returns core.ErrDegenerateGeometry if the box has no volume.
func NewBox(min, max core.Vec4) (*Polyhedron, error) {
	size := max.Subtract(min)
	if size.X <= 0 || size.Y <= 0 || size.Z <= 0 {
		return nil, fmt.Errorf("box %v to %v: %w", min, max, core.ErrDegenerateGeometry)
	}
	center := min.Add(max).Multiply(0.5)

	box, err := NewPolyhedron(boxVertices[:], boxFaces[:])
	if err != nil {
		return nil, err
	}
	box.Compose(core.Scaler(size.X, size.Y, size.Z).Mul(core.Translator(center.X, center.Y, center.Z)))
	return box, nil
}

// Apply composes a transform into the polyhedron and returns it for chaining
func (p *Polyhedron) Apply(m core.Mat4) *Polyhedron {
	p.Compose(m)
	return p
}

// Colored sets the surface colour and returns the polyhedron for chaining
func (p *Polyhedron) Colored(c core.Color) *Polyhedron {
	p.color = c
	return p
}

// Vertices returns a copy of the object-space vertices
func (p *Polyhedron) Vertices() []core.Vec4 {
	return slices.Clone(p.vertices)
}

// Indices returns a copy of the triangle index list
func (p *Polyhedron) Indices() [][3]int {
	return slices.Clone(p.indices)
}

// FindIntersections tests every face and returns all hits in ascending order.
// A ray crossing an edge shared by two faces is reported once.
func (p *Polyhedron) FindIntersections(ray core.Ray) []float64 {
	local := p.toObjectSpace(ray)

	var result []float64
	for _, f := range p.faces {
		t, q, ok := f.hit(local)
		if ok && f.includesTriangle(f.a, f.b, f.c, q) {
			result = append(result, t)
		}
	}
	slices.Sort(result)
	return slices.CompactFunc(result, func(a, b float64) bool {
		return math.Abs(a-b) <= sharedEdgeEpsilon
	})
}

// NormalAt returns the world normal of the face containing the point.
// The face whose plane lies closest to the point wins; faces that also
// contain it are preferred.
func (p *Polyhedron) NormalAt(worldPoint core.Vec4) core.Vec4 {
	local := worldPoint.Transform(p.inverse)

	best := -1
	bestDistance := math.Inf(1)
	bestIncluded := false
	for i, f := range p.faces {
		distance := math.Abs(f.normal.Dot(local) - f.d)
		included := f.includesTriangle(f.a, f.b, f.c, local)
		if (included && !bestIncluded) || (included == bestIncluded && distance < bestDistance) {
			best = i
			bestDistance = distance
			bestIncluded = included
		}
	}
	return p.toWorldNormal(p.faces[best].normal)
}
