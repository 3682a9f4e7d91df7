package geometry

import (
	"fmt"
	"math"

	"github.com/df07/go-phong-raytracer/pkg/core"
)

// parallelEpsilon bounds |normal·direction| relative to the direction length
// below which a ray is treated as parallel to a plane
const parallelEpsilon = 1e-9

// plane is the supporting plane of a polygon in object space:
// normal·p = d for every point p on it
type plane struct {
	normal core.Vec4
	d      float64
}

// newPlane builds the plane through a, b, c with normal (b-a)×(c-a)
func newPlane(a, b, c core.Vec4) (plane, error) {
	normal := b.Subtract(a).Cross(c.Subtract(a))
	length := normal.Length()
	if length == 0 || math.IsNaN(length) {
		return plane{}, fmt.Errorf("polygon %v %v %v has zero area: %w", a, b, c, core.ErrDegenerateGeometry)
	}
	normal = normal.Divide(length)
	return plane{normal: normal, d: normal.Dot(a)}, nil
}

// hit solves the plane equation for an object-space ray and returns the
// parameter and the candidate point
func (p plane) hit(local core.Ray) (float64, core.Vec4, bool) {
	denominator := p.normal.Dot(local.Direction)
	if math.Abs(denominator) <= parallelEpsilon*local.Direction.Length() {
		return 0, core.Vec4{}, false
	}
	t := (p.d - p.normal.Dot(local.Origin)) / denominator
	return t, local.At(t), true
}

// leftOf reports whether q lies on the non-negative side of the edge that
// starts at vertex and runs along side, as seen along the polygon normal
func (p plane) leftOf(side, vertex, q core.Vec4) bool {
	return p.normal.Dot(side.Cross(q.Subtract(vertex))) >= 0
}

// includesTriangle applies the edge test to all three edges of a→b→c
func (p plane) includesTriangle(a, b, c, q core.Vec4) bool {
	return p.leftOf(b.Subtract(a), a, q) &&
		p.leftOf(c.Subtract(b), b, q) &&
		p.leftOf(a.Subtract(c), c, q)
}
