package core

// Ray is an origin point plus a direction arrow in whichever space it
// currently occupies (world or a body's object space)
type Ray struct {
	Origin    Vec4
	Direction Vec4
}

// NewRay creates a new ray
func NewRay(origin, direction Vec4) Ray {
	return Ray{Origin: origin, Direction: direction}
}

// Transform returns a new ray with both origin and direction mapped by m
func (r Ray) Transform(m Mat4) Ray {
	return Ray{Origin: r.Origin.Transform(m), Direction: r.Direction.Transform(m)}
}

// Normalize rescales the direction to unit length in place
func (r *Ray) Normalize() *Ray {
	r.Direction = r.Direction.Normalize()
	return r
}

// At returns the point at parameter t along the ray
func (r Ray) At(t float64) Vec4 {
	return r.Origin.Add(r.Direction.Multiply(t))
}
