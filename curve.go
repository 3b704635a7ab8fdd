package tri

import (
	"errors"
	"math"
	"sort"
)

// Quadratic and cubic Bézier curve math.
//
// A curve is treated as two independent scalar polynomials, one per axis.
// The package-level Quadratic*/Cubic* functions operate on one axis at a
// time and write results into caller-supplied buffers; the QuadBez and
// CubicBez types wrap them with a Point-based API.

// ErrParamOutOfRange is returned when a curve parameter falls outside the
// [0, 1] domain.
var ErrParamOutOfRange = errors.New("tri: curve parameter out of range [0, 1]")

// ErrShortBuffer is returned when a caller-supplied output buffer is too
// small to hold the result.
var ErrShortBuffer = errors.New("tri: output buffer too small")

// Projection search tuning. The coarse scan samples the curve at steps of
// coarseStep; refinement starts at refineStep and halves on failure, for at
// most refineMaxIter iterations or until the step underflows epsilonNumeric.
const (
	coarseStep    = 0.05
	refineStep    = 0.005
	refineMaxIter = 32
)

func validParam(t float64) bool {
	return t >= 0 && t <= 1
}

// quadAt evaluates the scalar quadratic Bernstein polynomial at t.
// Callers guarantee t in [0, 1].
func quadAt(p0, p1, p2, t float64) float64 {
	onet := 1 - t
	return onet*onet*p0 + 2*onet*t*p1 + t*t*p2
}

// cubAt evaluates the scalar cubic Bernstein polynomial at t.
// Callers guarantee t in [0, 1].
func cubAt(p0, p1, p2, p3, t float64) float64 {
	onet := 1 - t
	onet2 := onet * onet
	t2 := t * t
	return onet2*onet*p0 + 3*onet2*t*p1 + 3*onet*t2*p2 + t2*t*p3
}

// -------------------------------------------------------------------
// Scalar quadratic toolkit
// -------------------------------------------------------------------

// QuadraticAt evaluates a scalar quadratic Bézier with control values
// p0, p1, p2 at parameter t in [0, 1].
func QuadraticAt(p0, p1, p2, t float64) (float64, error) {
	if !validParam(t) {
		return 0, ErrParamOutOfRange
	}
	return quadAt(p0, p1, p2, t), nil
}

// QuadraticDerivativeAt evaluates the derivative of a scalar quadratic
// Bézier at parameter t in [0, 1].
func QuadraticDerivativeAt(p0, p1, p2, t float64) (float64, error) {
	if !validParam(t) {
		return 0, ErrParamOutOfRange
	}
	return 2 * ((1-t)*(p1-p0) + t*(p2-p1)), nil
}

// QuadraticExtremum solves B'(t) = 0 for a scalar quadratic Bézier.
//
// When the quadratic coefficient p0 - 2*p1 + p2 is near zero the curve is
// linear on this axis and there is no stationary point; in that case the
// conventional fallback value 0.5 is returned with ok = false. The returned
// parameter may fall outside [0, 1]; callers clamp as needed.
func QuadraticExtremum(p0, p1, p2 float64) (t float64, ok bool) {
	divisor := p0 - 2*p1 + p2
	if isAroundZero(divisor) {
		return 0.5, false
	}
	return (p0 - p1) / divisor, true
}

// QuadraticRootAt finds parameters t in [0, 1] where the scalar quadratic
// Bézier equals val. Roots are written into the caller-supplied slice,
// which must have room for 2 values; the number of roots found is returned.
func QuadraticRootAt(p0, p1, p2, val float64, roots []float64) int {
	a := p0 - 2*p1 + p2
	b := 2 * (p1 - p0)
	c := p0 - val
	return solveUnitQuadratic(a, b, c, roots)
}

// QuadraticSubdivide splits a scalar quadratic Bézier at parameter t,
// writing the control values of the two halves into out as two runs of 3:
// out[0:3] covers [0, t] and out[3:6] covers [t, 1]. The inputs are not
// modified. out must have room for 6 values.
func QuadraticSubdivide(p0, p1, p2, t float64, out []float64) error {
	if !validParam(t) {
		return ErrParamOutOfRange
	}
	if len(out) < 6 {
		return ErrShortBuffer
	}
	p01 := (p1-p0)*t + p0
	p12 := (p2-p1)*t + p1
	p012 := (p12-p01)*t + p01

	out[0] = p0
	out[1] = p01
	out[2] = p012
	out[3] = p012
	out[4] = p12
	out[5] = p2
	return nil
}

// -------------------------------------------------------------------
// Scalar cubic toolkit
// -------------------------------------------------------------------

// CubicAt evaluates a scalar cubic Bézier with control values p0..p3 at
// parameter t in [0, 1].
func CubicAt(p0, p1, p2, p3, t float64) (float64, error) {
	if !validParam(t) {
		return 0, ErrParamOutOfRange
	}
	return cubAt(p0, p1, p2, p3, t), nil
}

// CubicDerivativeAt evaluates the derivative of a scalar cubic Bézier at
// parameter t in [0, 1].
func CubicDerivativeAt(p0, p1, p2, p3, t float64) (float64, error) {
	if !validParam(t) {
		return 0, ErrParamOutOfRange
	}
	onet := 1 - t
	return 3 * (onet*onet*(p1-p0) + 2*onet*t*(p2-p1) + t*t*(p3-p2)), nil
}

// CubicExtrema finds parameters t in [0, 1] where the derivative of a
// scalar cubic Bézier is zero. Up to 2 extrema are written into the
// caller-supplied slice; the number found is returned.
func CubicExtrema(p0, p1, p2, p3 float64, extrema []float64) int {
	// The derivative is the quadratic a*t^2 + b*t + c.
	a := 9*p1 + 3*p3 - 3*p0 - 9*p2
	b := 6*p2 - 12*p1 + 6*p0
	c := 3*p1 - 3*p0
	return solveUnitQuadratic(a, b, c, extrema)
}

// CubicRootAt finds parameters t in [0, 1] where the scalar cubic Bézier
// equals val. Roots are written into the caller-supplied slice, which must
// have room for 3 values; the number of roots found is returned.
func CubicRootAt(p0, p1, p2, p3, val float64, roots []float64) int {
	a := p3 + 3*(p1-p2) - p0
	b := 3 * (p2 - 2*p1 + p0)
	c := 3 * (p1 - p0)
	d := p0 - val
	return solveUnitCubic(a, b, c, d, roots)
}

// CubicSubdivide splits a scalar cubic Bézier at parameter t, writing the
// control values of the two halves into out as two runs of 4: out[0:4]
// covers [0, t] and out[4:8] covers [t, 1]. The inputs are not modified.
// out must have room for 8 values.
func CubicSubdivide(p0, p1, p2, p3, t float64, out []float64) error {
	if !validParam(t) {
		return ErrParamOutOfRange
	}
	if len(out) < 8 {
		return ErrShortBuffer
	}
	p01 := (p1-p0)*t + p0
	p12 := (p2-p1)*t + p1
	p23 := (p3-p2)*t + p2
	p012 := (p12-p01)*t + p01
	p123 := (p23-p12)*t + p12
	p0123 := (p123-p012)*t + p012

	out[0] = p0
	out[1] = p01
	out[2] = p012
	out[3] = p0123
	out[4] = p0123
	out[5] = p123
	out[6] = p23
	out[7] = p3
	return nil
}

// -------------------------------------------------------------------
// Line
// -------------------------------------------------------------------

// Line represents a line segment from P0 to P1.
type Line struct {
	P0, P1 Point
}

// NewLine creates a new line segment.
func NewLine(p0, p1 Point) Line {
	return Line{P0: p0, P1: p1}
}

// Eval evaluates the line at parameter t.
// t=0 returns P0, t=1 returns P1; values outside [0, 1] extrapolate.
func (l Line) Eval(t float64) Point {
	return l.P0.Lerp(l.P1, t)
}

// Length returns the length of the line segment.
func (l Line) Length() float64 {
	return l.P0.Distance(l.P1)
}

// Midpoint returns the midpoint of the line segment.
func (l Line) Midpoint() Point {
	return l.Eval(0.5)
}

// Reversed returns a copy of the line with endpoints swapped.
func (l Line) Reversed() Line {
	return Line{P0: l.P1, P1: l.P0}
}

// BoundingBox returns the axis-aligned bounding box of the line.
func (l Line) BoundingBox() Rect {
	return NewRect(l.P0, l.P1)
}

// -------------------------------------------------------------------
// QuadBez - Quadratic Bézier Curve
// -------------------------------------------------------------------

// QuadBez represents a quadratic Bézier curve with control points P0, P1, P2.
// P0 is the start point, P1 is the control point, P2 is the end point.
type QuadBez struct {
	P0, P1, P2 Point
}

// NewQuadBez creates a new quadratic Bézier curve.
func NewQuadBez(p0, p1, p2 Point) QuadBez {
	return QuadBez{P0: p0, P1: p1, P2: p2}
}

// Eval evaluates the curve at parameter t in [0, 1].
func (q QuadBez) Eval(t float64) (Point, error) {
	if !validParam(t) {
		return Point{}, ErrParamOutOfRange
	}
	return q.eval(t), nil
}

// eval is Eval without the domain check, for internal hot loops.
func (q QuadBez) eval(t float64) Point {
	return Point{
		X: quadAt(q.P0.X, q.P1.X, q.P2.X, t),
		Y: quadAt(q.P0.Y, q.P1.Y, q.P2.Y, t),
	}
}

// Tangent returns the derivative vector at parameter t in [0, 1].
func (q QuadBez) Tangent(t float64) (Vec2, error) {
	if !validParam(t) {
		return Vec2{}, ErrParamOutOfRange
	}
	dx, _ := QuadraticDerivativeAt(q.P0.X, q.P1.X, q.P2.X, t)
	dy, _ := QuadraticDerivativeAt(q.P0.Y, q.P1.Y, q.P2.Y, t)
	return Vec2{X: dx, Y: dy}, nil
}

// Start returns the starting point of the curve.
func (q QuadBez) Start() Point {
	return q.P0
}

// End returns the ending point of the curve.
func (q QuadBez) End() Point {
	return q.P2
}

// Subdivide splits the curve at parameter t in [0, 1] into two quadratics.
// The receiver is not modified; the split point is shared by both halves
// and the original endpoints carry through unchanged.
func (q QuadBez) Subdivide(t float64) (QuadBez, QuadBez, error) {
	var xs, ys [6]float64
	if err := QuadraticSubdivide(q.P0.X, q.P1.X, q.P2.X, t, xs[:]); err != nil {
		return QuadBez{}, QuadBez{}, err
	}
	// t was validated by the X pass.
	_ = QuadraticSubdivide(q.P0.Y, q.P1.Y, q.P2.Y, t, ys[:])

	left := QuadBez{
		P0: Point{X: xs[0], Y: ys[0]},
		P1: Point{X: xs[1], Y: ys[1]},
		P2: Point{X: xs[2], Y: ys[2]},
	}
	right := QuadBez{
		P0: Point{X: xs[3], Y: ys[3]},
		P1: Point{X: xs[4], Y: ys[4]},
		P2: Point{X: xs[5], Y: ys[5]},
	}
	return left, right, nil
}

// Extrema returns the parameters in (0, 1) where the curve has a
// stationary point on either axis, sorted in ascending order.
// Axes on which the curve is linear contribute no extremum.
func (q QuadBez) Extrema() []float64 {
	result := make([]float64, 0, 2)
	if t, ok := QuadraticExtremum(q.P0.X, q.P1.X, q.P2.X); ok && t > 0 && t < 1 {
		result = append(result, t)
	}
	if t, ok := QuadraticExtremum(q.P0.Y, q.P1.Y, q.P2.Y); ok && t > 0 && t < 1 {
		result = append(result, t)
	}
	sort.Float64s(result)
	return result
}

// Project returns the point on the curve nearest to p, along with its
// parameter and the Euclidean distance to p.
//
// The search is numeric: a coarse scan over the parameter range followed
// by hill-climbing refinement, so the result is accurate to roughly the
// refinement tolerance rather than machine precision.
func (q QuadBez) Project(p Point) (Point, float64, float64) {
	t, d2 := projectParam(q.eval, p)
	return q.eval(t), t, math.Sqrt(d2)
}

// BoundingBox returns the tight axis-aligned bounding box of the curve.
func (q QuadBez) BoundingBox() Rect {
	bbox := NewRect(q.P0, q.P2)
	for _, t := range q.Extrema() {
		bbox = bbox.UnionPoint(q.eval(t))
	}
	return bbox
}

// Raise elevates the quadratic to a cubic Bézier curve.
// Returns an exact cubic representation of this quadratic.
func (q QuadBez) Raise() CubicBez {
	return CubicBez{
		P0: q.P0,
		P1: q.P0.Lerp(q.P1, 2.0/3.0),
		P2: q.P2.Lerp(q.P1, 2.0/3.0),
		P3: q.P2,
	}
}

// -------------------------------------------------------------------
// CubicBez - Cubic Bézier Curve
// -------------------------------------------------------------------

// CubicBez represents a cubic Bézier curve with control points P0, P1, P2, P3.
// P0 is the start point, P1 and P2 are control points, P3 is the end point.
type CubicBez struct {
	P0, P1, P2, P3 Point
}

// NewCubicBez creates a new cubic Bézier curve.
func NewCubicBez(p0, p1, p2, p3 Point) CubicBez {
	return CubicBez{P0: p0, P1: p1, P2: p2, P3: p3}
}

// Eval evaluates the curve at parameter t in [0, 1].
func (c CubicBez) Eval(t float64) (Point, error) {
	if !validParam(t) {
		return Point{}, ErrParamOutOfRange
	}
	return c.eval(t), nil
}

// eval is Eval without the domain check, for internal hot loops.
func (c CubicBez) eval(t float64) Point {
	return Point{
		X: cubAt(c.P0.X, c.P1.X, c.P2.X, c.P3.X, t),
		Y: cubAt(c.P0.Y, c.P1.Y, c.P2.Y, c.P3.Y, t),
	}
}

// Tangent returns the derivative vector at parameter t in [0, 1].
func (c CubicBez) Tangent(t float64) (Vec2, error) {
	if !validParam(t) {
		return Vec2{}, ErrParamOutOfRange
	}
	dx, _ := CubicDerivativeAt(c.P0.X, c.P1.X, c.P2.X, c.P3.X, t)
	dy, _ := CubicDerivativeAt(c.P0.Y, c.P1.Y, c.P2.Y, c.P3.Y, t)
	return Vec2{X: dx, Y: dy}, nil
}

// Normal returns the unit normal vector (perpendicular to the tangent) at
// parameter t in [0, 1].
func (c CubicBez) Normal(t float64) (Vec2, error) {
	tan, err := c.Tangent(t)
	if err != nil {
		return Vec2{}, err
	}
	return tan.Perp().Normalize(), nil
}

// Deriv returns the derivative curve (a quadratic Bézier).
// The derivative gives the tangent direction at any point.
func (c CubicBez) Deriv() QuadBez {
	return QuadBez{
		P0: Point{X: 3 * (c.P1.X - c.P0.X), Y: 3 * (c.P1.Y - c.P0.Y)},
		P1: Point{X: 3 * (c.P2.X - c.P1.X), Y: 3 * (c.P2.Y - c.P1.Y)},
		P2: Point{X: 3 * (c.P3.X - c.P2.X), Y: 3 * (c.P3.Y - c.P2.Y)},
	}
}

// Start returns the starting point of the curve.
func (c CubicBez) Start() Point {
	return c.P0
}

// End returns the ending point of the curve.
func (c CubicBez) End() Point {
	return c.P3
}

// Subdivide splits the curve at parameter t in [0, 1] into two cubics.
// The receiver is not modified; the split point is shared by both halves
// and the original endpoints carry through unchanged.
func (c CubicBez) Subdivide(t float64) (CubicBez, CubicBez, error) {
	var xs, ys [8]float64
	if err := CubicSubdivide(c.P0.X, c.P1.X, c.P2.X, c.P3.X, t, xs[:]); err != nil {
		return CubicBez{}, CubicBez{}, err
	}
	// t was validated by the X pass.
	_ = CubicSubdivide(c.P0.Y, c.P1.Y, c.P2.Y, c.P3.Y, t, ys[:])

	left := CubicBez{
		P0: Point{X: xs[0], Y: ys[0]},
		P1: Point{X: xs[1], Y: ys[1]},
		P2: Point{X: xs[2], Y: ys[2]},
		P3: Point{X: xs[3], Y: ys[3]},
	}
	right := CubicBez{
		P0: Point{X: xs[4], Y: ys[4]},
		P1: Point{X: xs[5], Y: ys[5]},
		P2: Point{X: xs[6], Y: ys[6]},
		P3: Point{X: xs[7], Y: ys[7]},
	}
	return left, right, nil
}

// Extrema returns the parameters in [0, 1] where the curve has a
// stationary point on either axis, sorted in ascending order.
// A cubic can have up to 4 extrema (2 per axis).
func (c CubicBez) Extrema() []float64 {
	var buf [2]float64
	result := make([]float64, 0, 4)

	n := CubicExtrema(c.P0.X, c.P1.X, c.P2.X, c.P3.X, buf[:])
	result = append(result, buf[:n]...)
	n = CubicExtrema(c.P0.Y, c.P1.Y, c.P2.Y, c.P3.Y, buf[:])
	result = append(result, buf[:n]...)

	sort.Float64s(result)
	return result
}

// Project returns the point on the curve nearest to p, along with its
// parameter and the Euclidean distance to p.
//
// The search is numeric: a coarse scan over the parameter range followed
// by hill-climbing refinement, so the result is accurate to roughly the
// refinement tolerance rather than machine precision.
func (c CubicBez) Project(p Point) (Point, float64, float64) {
	t, d2 := projectParam(c.eval, p)
	return c.eval(t), t, math.Sqrt(d2)
}

// BoundingBox returns the tight axis-aligned bounding box of the curve.
func (c CubicBez) BoundingBox() Rect {
	bbox := NewRect(c.P0, c.P3)
	for _, t := range c.Extrema() {
		bbox = bbox.UnionPoint(c.eval(t))
	}
	return bbox
}

// -------------------------------------------------------------------
// Nearest-point projection search
// -------------------------------------------------------------------

// projectParam finds the parameter minimizing the squared distance between
// eval(t) and p. It scans t = 0, 0.05, ..., 1 for a coarse minimum, then
// hill-climbs from there: starting with step 0.005, for up to 32 iterations
// it tries t-step then t+step, accepts whichever reduces the distance while
// staying in [0, 1], and otherwise halves the step; the search stops early
// once the step falls below 1e-4. Returns the best t and squared distance.
func projectParam(eval func(float64) Point, p Point) (float64, float64) {
	t := 0.0
	best := math.Inf(1)
	for i := 0; i <= 20; i++ {
		ct := float64(i) * coarseStep
		d := eval(ct).DistanceSq(p)
		if d < best {
			t = ct
			best = d
		}
	}

	interval := refineStep
	for i := 0; i < refineMaxIter; i++ {
		if interval < epsilonNumeric {
			break
		}
		prev := t - interval
		next := t + interval
		d1 := eval(prev).DistanceSq(p)
		if prev >= 0 && d1 < best {
			t = prev
			best = d1
			continue
		}
		d2 := eval(next).DistanceSq(p)
		if next <= 1 && d2 < best {
			t = next
			best = d2
		} else {
			interval *= 0.5
		}
	}
	return t, best
}
