package geometry

import (
	"math"

	"github.com/df07/go-phong-raytracer/pkg/core"
)

// Sphere is the unit sphere centred at the origin of its object space,
// placed in the world by its transform
type Sphere struct {
	body
}

// NewUnitSphere creates a unit sphere at the world origin
func NewUnitSphere() *Sphere {
	return &Sphere{body: newBody(core.Identity())}
}

// NewSphere creates a sphere of the given radius centred at center.
// It panics if radius is zero.
func NewSphere(radius float64, center core.Vec4) *Sphere {
	transform := core.UniformScaler(radius).Mul(core.Translator(center.X, center.Y, center.Z))
	return &Sphere{body: newBody(transform)}
}

// NewSphereWithTransform creates a unit sphere placed by an arbitrary transform
func NewSphereWithTransform(transform core.Mat4) *Sphere {
	return &Sphere{body: newBody(transform)}
}

// Apply composes a transform into the sphere and returns it for chaining
func (s *Sphere) Apply(m core.Mat4) *Sphere {
	s.Compose(m)
	return s
}

// Colored sets the surface colour and returns the sphere for chaining
func (s *Sphere) Colored(c core.Color) *Sphere {
	s.color = c
	return s
}

// FindIntersections solves |o + t·d|² = 1 in object space
func (s *Sphere) FindIntersections(ray core.Ray) []float64 {
	local := s.toObjectSpace(ray)
	origin := local.Origin
	origin.W = 0
	direction := local.Direction

	// Quadratic equation coefficients: at² + bt + c = 0
	a := direction.Dot(direction)
	if a == 0 {
		return nil
	}
	b := 2 * direction.Dot(origin)
	c := origin.Dot(origin) - 1

	discriminant := b*b - 4*a*c
	if discriminant < 0 {
		return nil
	}
	if discriminant == 0 {
		return []float64{-b / (2 * a)}
	}

	sqrtD := math.Sqrt(discriminant)
	return []float64{(-b - sqrtD) / (2 * a), (-b + sqrtD) / (2 * a)}
}

// NormalAt returns the world normal; on the unit sphere the object-space
// point is its own normal
func (s *Sphere) NormalAt(worldPoint core.Vec4) core.Vec4 {
	return s.toWorldNormal(worldPoint.Transform(s.inverse))
}
