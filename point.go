package tri

import (
	"errors"
	"math"
)

// ErrZeroDivision is returned by ComponentDiv when the divisor has a zero
// component.
var ErrZeroDivision = errors.New("tri: division by zero-component point")

// Point represents a 2D point or position vector.
type Point struct {
	X, Y float64
}

// Pt is a convenience function to create a Point.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Add returns the sum of two points (vector addition).
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the difference of two points (vector subtraction).
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Mul returns the point scaled by a scalar.
func (p Point) Mul(s float64) Point {
	return Point{X: p.X * s, Y: p.Y * s}
}

// Div returns the point divided by a scalar.
func (p Point) Div(s float64) Point {
	return Point{X: p.X / s, Y: p.Y / s}
}

// ComponentMul returns the componentwise product of two points.
func (p Point) ComponentMul(q Point) Point {
	return Point{X: p.X * q.X, Y: p.Y * q.Y}
}

// ComponentDiv returns the componentwise quotient of two points.
// Returns ErrZeroDivision if either component of q is zero.
func (p Point) ComponentDiv(q Point) (Point, error) {
	if q.X == 0 || q.Y == 0 {
		return Point{}, ErrZeroDivision
	}
	return Point{X: p.X / q.X, Y: p.Y / q.Y}, nil
}

// Dot returns the dot product of two vectors.
func (p Point) Dot(q Point) float64 {
	return p.X*q.X + p.Y*q.Y
}

// Cross returns the 2D cross product (scalar).
func (p Point) Cross(q Point) float64 {
	return p.X*q.Y - p.Y*q.X
}

// Length returns the length of the vector.
func (p Point) Length() float64 {
	return math.Sqrt(p.X*p.X + p.Y*p.Y)
}

// LengthSq returns the squared length of the vector.
// This is faster than Length() when you only need to compare magnitudes.
func (p Point) LengthSq() float64 {
	return p.X*p.X + p.Y*p.Y
}

// Distance returns the distance between two points.
func (p Point) Distance(q Point) float64 {
	return p.Sub(q).Length()
}

// DistanceSq returns the squared distance between two points.
func (p Point) DistanceSq(q Point) float64 {
	return p.Sub(q).LengthSq()
}

// Normalize returns a unit vector in the same direction.
// Returns the zero point if the original vector has zero length.
func (p Point) Normalize() Point {
	length := p.Length()
	if length == 0 {
		return Point{}
	}
	return Point{X: p.X / length, Y: p.Y / length}
}

// Lerp performs linear interpolation between two points.
// t=0 returns p, t=1 returns q, intermediate values interpolate.
// t is not clamped; values outside [0, 1] extrapolate.
func (p Point) Lerp(q Point, t float64) Point {
	return Point{
		X: p.X + (q.X-p.X)*t,
		Y: p.Y + (q.Y-p.Y)*t,
	}
}

// Min returns the componentwise minimum of two points.
func (p Point) Min(q Point) Point {
	return Point{X: math.Min(p.X, q.X), Y: math.Min(p.Y, q.Y)}
}

// Max returns the componentwise maximum of two points.
func (p Point) Max(q Point) Point {
	return Point{X: math.Max(p.X, q.X), Y: math.Max(p.Y, q.Y)}
}

// Transform applies the affine matrix m to the point.
func (p Point) Transform(m Matrix) Point {
	return m.TransformPoint(p)
}

// Approx returns true if two points are approximately equal within epsilon.
func (p Point) Approx(q Point, epsilon float64) bool {
	return math.Abs(p.X-q.X) < epsilon && math.Abs(p.Y-q.Y) < epsilon
}
