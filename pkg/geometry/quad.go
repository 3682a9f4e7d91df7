package geometry

import (
	"math"

	"github.com/df07/go-phong-raytracer/pkg/core"
)

// unitQuadVertices is a unit square in the XZ plane facing +Y.
// Arrays are copied on assignment so every quad owns its vertices.
var unitQuadVertices = [4]core.Vec4{
	core.NewPoint(0.5, 0, 0.5),
	core.NewPoint(0.5, 0, -0.5),
	core.NewPoint(-0.5, 0, -0.5),
	core.NewPoint(-0.5, 0, 0.5),
}

// Quad is a planar quadrilateral with vertices a→b→c→d in object space
type Quad struct {
	body
	plane
	vertices [4]core.Vec4
}

// NewQuad creates a quad from four coplanar vertices. The normal is taken
// from the winding of the first three.
func NewQuad(a, b, c, d core.Vec4) (*Quad, error) {
	p, err := newPlane(a, b, c)
	if err != nil {
		return nil, err
	}
	return &Quad{
		body:     newBody(core.Identity()),
		plane:    p,
		vertices: [4]core.Vec4{a, b, c, d},
	}, nil
}

// NewUnitQuad creates the unit square in the XZ plane facing +Y, placed by transform
func NewUnitQuad(transform core.Mat4) *Quad {
	vertices := unitQuadVertices
	return &Quad{
		body:     newBody(transform),
		plane:    plane{normal: core.NewArrow(0, 1, 0), d: 0},
		vertices: vertices,
	}
}

// NewQuadXPos creates a unit face in the YZ plane facing +X
func NewQuadXPos(yScale, zScale float64) *Quad {
	return NewUnitQuad(core.Scaler(yScale, 1, zScale).Mul(core.Rotor(2, -math.Pi/2)))
}

// NewQuadXNeg creates a unit face in the YZ plane facing -X
func NewQuadXNeg(yScale, zScale float64) *Quad {
	return NewUnitQuad(core.Scaler(yScale, 1, zScale).Mul(core.Rotor(2, math.Pi/2)))
}

// NewQuadYPos creates a unit face in the XZ plane facing +Y
func NewQuadYPos(xScale, zScale float64) *Quad {
	return NewUnitQuad(core.Scaler(xScale, 1, zScale))
}

// NewQuadYNeg creates a unit face in the XZ plane facing -Y
func NewQuadYNeg(xScale, zScale float64) *Quad {
	return NewUnitQuad(core.Scaler(xScale, 1, zScale).Mul(core.Rotor(0, math.Pi)))
}

// NewQuadZPos creates a unit face in the XY plane facing +Z
func NewQuadZPos(xScale, yScale float64) *Quad {
	return NewUnitQuad(core.Scaler(xScale, 1, yScale).Mul(core.Rotor(0, math.Pi/2)))
}

// NewQuadZNeg creates a unit face in the XY plane facing -Z
func NewQuadZNeg(xScale, yScale float64) *Quad {
	return NewUnitQuad(core.Scaler(xScale, 1, yScale).Mul(core.Rotor(0, -math.Pi/2)))
}

// Apply composes a transform into the quad and returns it for chaining
func (q *Quad) Apply(m core.Mat4) *Quad {
	q.Compose(m)
	return q
}

// Colored sets the surface colour and returns the quad for chaining
func (q *Quad) Colored(c core.Color) *Quad {
	q.color = c
	return q
}

// Vertices returns the object-space vertices
func (q *Quad) Vertices() [4]core.Vec4 {
	return q.vertices
}

// Includes reports whether an object-space point on the plane lies inside
// the quad. The diagonal a→c splits it into triangles a→b→c and a→c→d;
// only the two outer edges of the half containing p need testing.
func (q *Quad) Includes(p core.Vec4) bool {
	a, b, c, d := q.vertices[0], q.vertices[1], q.vertices[2], q.vertices[3]
	if q.leftOf(c.Subtract(a), a, p) {
		return q.leftOf(d.Subtract(c), c, p) && q.leftOf(a.Subtract(d), d, p)
	}
	return q.leftOf(b.Subtract(a), a, p) && q.leftOf(c.Subtract(b), b, p)
}

// FindIntersections returns at most one parameter
func (q *Quad) FindIntersections(ray core.Ray) []float64 {
	t, p, ok := q.hit(q.toObjectSpace(ray))
	if !ok || !q.Includes(p) {
		return nil
	}
	return []float64{t}
}

// NormalAt returns the world-space plane normal
func (q *Quad) NormalAt(worldPoint core.Vec4) core.Vec4 {
	return q.toWorldNormal(q.normal)
}
