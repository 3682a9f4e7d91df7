package core

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// singularThreshold is the determinant magnitude below which a matrix is
// treated as non-invertible
const singularThreshold = 1e-12

// Mat4 is a 4x4 transform in row-vector convention: a vector is the left
// operand (v' = v·M), so translation lives in the bottom row.
// Composition a.Mul(b) applies a first, then b.
type Mat4 [4][4]float64

// Identity returns the identity matrix
func Identity() Mat4 {
	return Scaler(1, 1, 1)
}

// Scaler returns an anisotropic scale matrix; the w diagonal stays 1
func Scaler(x, y, z float64) Mat4 {
	var m Mat4
	m[0][0] = x
	m[1][1] = y
	m[2][2] = z
	m[3][3] = 1
	return m
}

// UniformScaler scales equally along all three axes
func UniformScaler(s float64) Mat4 {
	return Scaler(s, s, s)
}

// Translator returns a translation matrix. Arrows (w = 0) are unaffected.
func Translator(x, y, z float64) Mat4 {
	m := Identity()
	m[3][0] = x
	m[3][1] = y
	m[3][2] = z
	return m
}

// Rotor returns a right-handed rotation about a coordinate axis
// (0 = X, 1 = Y, 2 = Z) by angle radians. Any other axis yields the identity.
func Rotor(axis int, angle float64) Mat4 {
	m := Identity()
	c := math.Cos(angle)
	s := math.Sin(angle)
	switch axis {
	case 0:
		m[1][1] = c
		m[2][2] = c
		m[1][2] = s
		m[2][1] = -s
	case 1:
		m[0][0] = c
		m[2][2] = c
		m[0][2] = -s
		m[2][0] = s
	case 2:
		m[0][0] = c
		m[1][1] = c
		m[0][1] = s
		m[1][0] = -s
	}
	return m
}

// Shearer returns a general shear. Coefficient xy moves x proportionally to y,
// xz moves x proportionally to z, and so on.
func Shearer(xy, xz, yx, yz, zx, zy float64) Mat4 {
	m := Identity()
	m[1][0] = xy
	m[2][0] = xz
	m[0][1] = yx
	m[2][1] = yz
	m[0][2] = zx
	m[1][2] = zy
	return m
}

// Mul returns the matrix product m·other
func (m Mat4) Mul(other Mat4) Mat4 {
	var result Mat4
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			result[r][c] = m[r][0]*other[0][c] + m[r][1]*other[1][c] +
				m[r][2]*other[2][c] + m[r][3]*other[3][c]
		}
	}
	return result
}

// Transpose returns the transposed matrix
func (m Mat4) Transpose() Mat4 {
	var result Mat4
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			result[r][c] = m[c][r]
		}
	}
	return result
}

// Determinant returns the determinant of the matrix
func (m Mat4) Determinant() float64 {
	return m.gl().Det()
}

// Inverse returns the exact inverse, or ErrSingularMatrix
func (m Mat4) Inverse() (Mat4, error) {
	g := m.gl()
	det := g.Det()
	if math.Abs(det) < singularThreshold || math.IsNaN(det) || math.IsInf(det, 0) {
		return Mat4{}, fmt.Errorf("invert matrix (det=%g): %w", det, ErrSingularMatrix)
	}
	return fromGL(g.Inv()), nil
}

// ApproxEqual compares every entry within tolerance
func (m Mat4) ApproxEqual(other Mat4, tolerance float64) bool {
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			if math.Abs(m[r][c]-other[r][c]) > tolerance {
				return false
			}
		}
	}
	return true
}

// gl copies the rows of m into mgl64's column-major storage, which yields the
// transpose of m. Inversion and determinant commute with transposition, so
// fromGL(gl(m).Inv()) is the inverse of m.
func (m Mat4) gl() mgl64.Mat4 {
	var g mgl64.Mat4
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			g[r*4+c] = m[r][c]
		}
	}
	return g
}

func fromGL(g mgl64.Mat4) Mat4 {
	var m Mat4
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			m[r][c] = g[r*4+c]
		}
	}
	return m
}
