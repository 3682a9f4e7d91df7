package geometry

import (
	"github.com/df07/go-phong-raytracer/pkg/core"
)

// Triangle is a flat triangle given by three object-space vertices
type Triangle struct {
	body
	plane
	vertices [3]core.Vec4
}

// NewTriangle creates a triangle from three vertices. The winding a→b→c sets
// the normal direction. Returns core.ErrDegenerateGeometry for collinear vertices.
func NewTriangle(a, b, c core.Vec4) (*Triangle, error) {
	p, err := newPlane(a, b, c)
	if err != nil {
		return nil, err
	}
	return &Triangle{
		body:     newBody(core.Identity()),
		plane:    p,
		vertices: [3]core.Vec4{a, b, c},
	}, nil
}

// Apply composes a transform into the triangle and returns it for chaining
func (t *Triangle) Apply(m core.Mat4) *Triangle {
	t.Compose(m)
	return t
}

// Colored sets the surface colour and returns the triangle for chaining
func (t *Triangle) Colored(c core.Color) *Triangle {
	t.color = c
	return t
}

// Vertices returns the object-space vertices
func (t *Triangle) Vertices() [3]core.Vec4 {
	return t.vertices
}

// Includes reports whether an object-space point on the plane lies inside
// the triangle; points on an edge are included
func (t *Triangle) Includes(q core.Vec4) bool {
	a, b, c := t.vertices[0], t.vertices[1], t.vertices[2]
	return t.includesTriangle(a, b, c, q)
}

// FindIntersections returns at most one parameter
func (t *Triangle) FindIntersections(ray core.Ray) []float64 {
	param, q, ok := t.hit(t.toObjectSpace(ray))
	if !ok || !t.Includes(q) {
		return nil
	}
	return []float64{param}
}

// NormalAt returns the world-space plane normal
func (t *Triangle) NormalAt(worldPoint core.Vec4) core.Vec4 {
	return t.toWorldNormal(t.normal)
}
