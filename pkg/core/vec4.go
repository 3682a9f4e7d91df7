package core

import (
	"fmt"
	"math"
)

// Vec4 is a homogeneous 3D vector. W is 1 for points and 0 for arrows
// (directions, which are invariant under translation).
type Vec4 struct {
	X, Y, Z, W float64
}

// NewVec4 creates a new Vec4 from all four components
func NewVec4(x, y, z, w float64) Vec4 {
	return Vec4{X: x, Y: y, Z: z, W: w}
}

// NewPoint creates a position vector (w = 1)
func NewPoint(x, y, z float64) Vec4 {
	return Vec4{X: x, Y: y, Z: z, W: 1}
}

// NewArrow creates a direction vector (w = 0)
func NewArrow(x, y, z float64) Vec4 {
	return Vec4{X: x, Y: y, Z: z, W: 0}
}

// IsPoint reports whether the vector is a position
func (v Vec4) IsPoint() bool {
	return v.W != 0
}

// Add returns the sum of two vectors. Point + arrow is a point.
func (v Vec4) Add(other Vec4) Vec4 {
	return Vec4{v.X + other.X, v.Y + other.Y, v.Z + other.Z, v.W + other.W}
}

// Subtract returns the difference of two vectors. Point - point is an arrow.
func (v Vec4) Subtract(other Vec4) Vec4 {
	return Vec4{v.X - other.X, v.Y - other.Y, v.Z - other.Z, v.W - other.W}
}

// Multiply returns the vector scaled by a scalar
func (v Vec4) Multiply(scalar float64) Vec4 {
	return Vec4{v.X * scalar, v.Y * scalar, v.Z * scalar, v.W * scalar}
}

// Divide returns the vector divided by a scalar
func (v Vec4) Divide(scalar float64) Vec4 {
	return Vec4{v.X / scalar, v.Y / scalar, v.Z / scalar, v.W / scalar}
}

// Negate returns the vector with its spatial components flipped
func (v Vec4) Negate() Vec4 {
	return Vec4{-v.X, -v.Y, -v.Z, v.W}
}

// Dot returns the dot product of the first three components; W is ignored
func (v Vec4) Dot(other Vec4) float64 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z
}

// Cross returns the cross product of the first three components as an arrow
func (v Vec4) Cross(other Vec4) Vec4 {
	return Vec4{
		X: v.Y*other.Z - v.Z*other.Y,
		Y: v.Z*other.X - v.X*other.Z,
		Z: v.X*other.Y - v.Y*other.X,
	}
}

// Length returns the magnitude of the vector, sqrt(v·v)
func (v Vec4) Length() float64 {
	return math.Sqrt(v.Dot(v))
}

// Normalize returns v divided by its magnitude.
// It panics with ErrDegenerateGeometry when the magnitude is zero.
func (v Vec4) Normalize() Vec4 {
	length := v.Length()
	if length == 0 {
		panic(fmt.Errorf("normalize %v: %w", v, ErrDegenerateGeometry))
	}
	return v.Divide(length)
}

// Transform applies a matrix to the vector (row vector times matrix)
func (v Vec4) Transform(m Mat4) Vec4 {
	in := [4]float64{v.X, v.Y, v.Z, v.W}
	var out [4]float64
	for c := 0; c < 4; c++ {
		for r := 0; r < 4; r++ {
			out[c] += in[r] * m[r][c]
		}
	}
	return Vec4{out[0], out[1], out[2], out[3]}
}

// Reflect mirrors v about the normal n: v - 2(v·n)n
func (v Vec4) Reflect(n Vec4) Vec4 {
	return v.Subtract(n.Multiply(2 * v.Dot(n)))
}

// ApproxEqual compares all four components within tolerance
func (v Vec4) ApproxEqual(other Vec4, tolerance float64) bool {
	return math.Abs(v.X-other.X) <= tolerance &&
		math.Abs(v.Y-other.Y) <= tolerance &&
		math.Abs(v.Z-other.Z) <= tolerance &&
		math.Abs(v.W-other.W) <= tolerance
}

func (v Vec4) String() string {
	return fmt.Sprintf("(%g, %g, %g, %g)", v.X, v.Y, v.Z, v.W)
}
