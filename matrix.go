package tri

import (
	"errors"
	"math"
)

// ErrSingularMatrix is returned by Invert when the matrix has a zero
// determinant and no inverse exists.
var ErrSingularMatrix = errors.New("tri: matrix is singular")

// Matrix represents a 2D affine transformation as six elements
// (a, b, c, d, tx, ty), encoding the 3x3 matrix:
//
//	| a  c  tx |
//	| b  d  ty |
//	| 0  0  1  |
//
// This represents the transformation:
//
//	x' = a*x + c*y + tx
//	y' = b*x + d*y + ty
//
// The matrix is invertible iff a*d - b*c != 0.
type Matrix struct {
	A, B, C, D, TX, TY float64
}

// Identity returns the identity transformation matrix.
func Identity() Matrix {
	return Matrix{A: 1, B: 0, C: 0, D: 1, TX: 0, TY: 0}
}

// NewMatrix creates a matrix from its six elements.
func NewMatrix(a, b, c, d, tx, ty float64) Matrix {
	return Matrix{A: a, B: b, C: c, D: d, TX: tx, TY: ty}
}

// Mul returns the matrix product m * other.
// The combined transform applies other first, then m.
func (m Matrix) Mul(other Matrix) Matrix {
	return Matrix{
		A:  m.A*other.A + m.C*other.B,
		B:  m.B*other.A + m.D*other.B,
		C:  m.A*other.C + m.C*other.D,
		D:  m.B*other.C + m.D*other.D,
		TX: m.A*other.TX + m.C*other.TY + m.TX,
		TY: m.B*other.TX + m.D*other.TY + m.TY,
	}
}

// Translate returns m composed with a translation by (x, y).
func (m Matrix) Translate(x, y float64) Matrix {
	out := m
	out.TX += x
	out.TY += y
	return out
}

// Scale returns m composed with a scale by (sx, sy).
func (m Matrix) Scale(sx, sy float64) Matrix {
	return Matrix{
		A: m.A * sx, B: m.B * sy,
		C: m.C * sx, D: m.D * sy,
		TX: m.TX * sx, TY: m.TY * sy,
	}
}

// Rotate returns m composed with a rotation by angle radians.
func (m Matrix) Rotate(angle float64) Matrix {
	sin, cos := math.Sincos(angle)
	return Matrix{
		A:  m.A*cos + m.B*sin,
		B:  -m.A*sin + m.B*cos,
		C:  m.C*cos + m.D*sin,
		D:  -m.C*sin + m.D*cos,
		TX: m.TX*cos + m.TY*sin,
		TY: -m.TX*sin + m.TY*cos,
	}
}

// Skew returns m composed with a skew by (sx, sy) radians.
func (m Matrix) Skew(sx, sy float64) Matrix {
	tx := math.Tan(sx)
	ty := math.Tan(sy)
	return Matrix{
		A:  m.A + m.B*tx,
		B:  m.A*ty + m.B,
		C:  m.C + m.D*tx,
		D:  m.C*ty + m.D,
		TX: m.TX + m.TY*tx,
		TY: m.TX*ty + m.TY,
	}
}

// Determinant returns a*d - b*c, the determinant of the linear part.
func (m Matrix) Determinant() float64 {
	return m.A*m.D - m.B*m.C
}

// Invert returns the inverse matrix.
// Returns ErrSingularMatrix if the determinant is zero.
func (m Matrix) Invert() (Matrix, error) {
	det := m.Determinant()
	if det == 0 {
		return Matrix{}, ErrSingularMatrix
	}
	invDet := 1.0 / det
	return Matrix{
		A:  m.D * invDet,
		B:  -m.B * invDet,
		C:  -m.C * invDet,
		D:  m.A * invDet,
		TX: (m.C*m.TY - m.D*m.TX) * invDet,
		TY: (m.B*m.TX - m.A*m.TY) * invDet,
	}, nil
}

// TransformPoint applies the transformation to a point.
func (m Matrix) TransformPoint(p Point) Point {
	return Point{
		X: m.A*p.X + m.C*p.Y + m.TX,
		Y: m.B*p.X + m.D*p.Y + m.TY,
	}
}

// TransformVector applies the transformation to a vector (no translation).
func (m Matrix) TransformVector(v Vec2) Vec2 {
	return Vec2{
		X: m.A*v.X + m.C*v.Y,
		Y: m.B*v.X + m.D*v.Y,
	}
}

// Lerp performs elementwise linear interpolation between two matrices.
func (m Matrix) Lerp(other Matrix, t float64) Matrix {
	return Matrix{
		A:  m.A + (other.A-m.A)*t,
		B:  m.B + (other.B-m.B)*t,
		C:  m.C + (other.C-m.C)*t,
		D:  m.D + (other.D-m.D)*t,
		TX: m.TX + (other.TX-m.TX)*t,
		TY: m.TY + (other.TY-m.TY)*t,
	}
}

// IsIdentity returns true if the matrix is the identity matrix.
func (m Matrix) IsIdentity() bool {
	return m.A == 1 && m.B == 0 && m.C == 0 &&
		m.D == 1 && m.TX == 0 && m.TY == 0
}

// Elements returns the six elements in [a, b, c, d, tx, ty] order.
func (m Matrix) Elements() [6]float64 {
	return [6]float64{m.A, m.B, m.C, m.D, m.TX, m.TY}
}
