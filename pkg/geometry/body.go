package geometry

import (
	"fmt"

	"github.com/df07/go-phong-raytracer/pkg/core"
)

// Body is a transformable primitive that can be hit by rays.
// Intersection parameters are solved in the body's object space but are
// valid along the world-space ray that was passed in.
type Body interface {
	// FindIntersections returns the ray parameters t where the world-space
	// ray meets the body, in ascending order
	FindIntersections(ray core.Ray) []float64
	// NormalAt returns the unit world-space surface normal at a world point
	NormalAt(worldPoint core.Vec4) core.Vec4
	// Compose multiplies m onto the right of the current transform
	Compose(m core.Mat4)
	Transform() core.Mat4
	Inverse() core.Mat4
	Color() core.Color
}

// body holds the state shared by every primitive: the local-to-world
// transform, its derived inverse and the surface colour
type body struct {
	transform core.Mat4
	inverse   core.Mat4
	color     core.Color
}

func newBody(transform core.Mat4) body {
	b := body{transform: core.Identity(), inverse: core.Identity(), color: core.RGB(1, 1, 1)}
	b.Compose(transform)
	return b
}

// Compose applies m in the body's current local frame and recomputes the
// inverse. It panics with core.ErrSingularMatrix if the result is singular.
func (b *body) Compose(m core.Mat4) {
	next := b.transform.Mul(m)
	inv, err := next.Inverse()
	if err != nil {
		panic(fmt.Errorf("apply transform: %w", err))
	}
	b.transform = next
	b.inverse = inv
}

// Transform returns the local-to-world transform
func (b *body) Transform() core.Mat4 {
	return b.transform
}

// Inverse returns the world-to-local transform
func (b *body) Inverse() core.Mat4 {
	return b.inverse
}

// Color returns the surface colour
func (b *body) Color() core.Color {
	return b.color
}

// toObjectSpace maps a world-space ray into the body's local frame
func (b *body) toObjectSpace(ray core.Ray) core.Ray {
	return ray.Transform(b.inverse)
}

// toWorldNormal maps an object-space normal to world space through the
// inverse-transpose of the transform
func (b *body) toWorldNormal(objectNormal core.Vec4) core.Vec4 {
	objectNormal.W = 0
	n := objectNormal.Transform(b.inverse.Transpose())
	n.W = 0
	return n.Normalize()
}
