package core

import (
	"fmt"
	"math"
)

// Versor is a unit quaternion used purely for rotation
type Versor struct {
	W, X, Y, Z float64
}

// NewVersor creates a rotation of angle radians about the axis (x, y, z).
// The axis does not need to be normalized.
func NewVersor(angle, x, y, z float64) (Versor, error) {
	magnitude := math.Sqrt(x*x + y*y + z*z)
	if magnitude == 0 {
		return Versor{}, fmt.Errorf("versor axis: %w", ErrDegenerateGeometry)
	}
	half := angle / 2
	s := math.Sin(half) / magnitude
	return Versor{W: math.Cos(half), X: s * x, Y: s * y, Z: s * z}, nil
}

// Mul returns the Hamilton product q·p
func (q Versor) Mul(p Versor) Versor {
	return Versor{
		W: q.W*p.W - q.X*p.X - q.Y*p.Y - q.Z*p.Z,
		X: q.W*p.X + q.X*p.W + q.Y*p.Z - q.Z*p.Y,
		Y: q.W*p.Y - q.X*p.Z + q.Y*p.W + q.Z*p.X,
		Z: q.W*p.Z + q.X*p.Y - q.Y*p.X + q.Z*p.W,
	}
}

// Conjugate returns the conjugate, which is the inverse rotation for a versor
func (q Versor) Conjugate() Versor {
	return Versor{W: q.W, X: -q.X, Y: -q.Y, Z: -q.Z}
}

// Matrix returns the rotation as a row-vector convention matrix, so that
// v.Transform(q.Matrix()) equals Rotate(v, q)
func (q Versor) Matrix() Mat4 {
	w, x, y, z := q.W, q.X, q.Y, q.Z
	m := Identity()
	m[0][0] = 1 - 2*(y*y+z*z)
	m[0][1] = 2 * (x*y + w*z)
	m[0][2] = 2 * (x*z - w*y)
	m[1][0] = 2 * (x*y - w*z)
	m[1][1] = 1 - 2*(x*x+z*z)
	m[1][2] = 2 * (y*z + w*x)
	m[2][0] = 2 * (x*z + w*y)
	m[2][1] = 2 * (y*z - w*x)
	m[2][2] = 1 - 2*(x*x+y*y)
	return m
}

// Rotate applies the versor to v by conjugation (q·v·q⁻¹). The W component of
// v is carried through unchanged, so points stay points and arrows stay arrows.
func Rotate(v Vec4, q Versor) Vec4 {
	pure := Versor{X: v.X, Y: v.Y, Z: v.Z}
	r := q.Mul(pure).Mul(q.Conjugate())
	return Vec4{X: r.X, Y: r.Y, Z: r.Z, W: v.W}
}
