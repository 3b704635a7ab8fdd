package tri

import "math"

// Polynomial root solvers for quadratic and cubic equations, restricted to
// the unit parameter interval used by Bézier curve queries.
//
// The cubic solver uses Shengjin's formulas (a discriminant-based variant
// of Cardano with a trigonometric three-root branch), which keep all
// arithmetic real and avoid complex intermediaries.

const (
	// epsilon is the "around zero" tolerance for coefficient and
	// discriminant tests.
	epsilon = 1e-8

	// epsilonNumeric terminates iterative refinement once the search step
	// underflows it.
	epsilonNumeric = 1e-4

	// sqrt3 is √3, used by the trigonometric three-root branch.
	sqrt3 = 1.7320508075688772
)

// isAroundZero reports whether v is within epsilon of zero.
func isAroundZero(v float64) bool {
	return v > -epsilon && v < epsilon
}

// isNotAroundZero reports whether v is clearly nonzero.
func isNotAroundZero(v float64) bool {
	return v > epsilon || v < -epsilon
}

// solveUnitQuadratic finds roots of a*t^2 + b*t + c = 0 within [0, 1].
// Roots are written into the caller-supplied slice, which must have room
// for 2 values; the number of roots found is returned.
//
// A leading coefficient within epsilon of zero degrades the equation to a
// linear one. A negative discriminant yields no real roots.
func solveUnitQuadratic(a, b, c float64, roots []float64) int {
	n := 0
	if isAroundZero(a) {
		if isNotAroundZero(b) {
			t := -c / b
			if t >= 0 && t <= 1 {
				roots[n] = t
				n++
			}
		}
		return n
	}

	disc := b*b - 4*a*c
	if isAroundZero(disc) {
		t := -b / (2 * a)
		if t >= 0 && t <= 1 {
			roots[n] = t
			n++
		}
	} else if disc > 0 {
		discSqrt := math.Sqrt(disc)
		t1 := (-b + discSqrt) / (2 * a)
		t2 := (-b - discSqrt) / (2 * a)
		if t1 >= 0 && t1 <= 1 {
			roots[n] = t1
			n++
		}
		if t2 >= 0 && t2 <= 1 {
			roots[n] = t2
			n++
		}
	}
	return n
}

// solveUnitCubic finds roots of a*t^3 + b*t^2 + c*t + d = 0 within [0, 1].
// Roots are written into the caller-supplied slice, which must have room
// for 3 values; the number of roots found is returned.
func solveUnitCubic(a, b, c, d float64, roots []float64) int {
	// Shengjin's discriminant quantities.
	A := b*b - 3*a*c
	B := b*c - 9*a*d
	C := c*c - 3*b*d

	n := 0
	if isAroundZero(A) && isAroundZero(B) {
		// Triple root.
		if isAroundZero(b) {
			roots[n] = 0
			n++
		} else {
			t := -c / b
			if t >= 0 && t <= 1 {
				roots[n] = t
				n++
			}
		}
		return n
	}

	disc := B*B - 4*A*C
	switch {
	case isAroundZero(disc):
		// One single and one double root.
		k := B / A
		t1 := -b/a + k
		t2 := -k / 2
		if t1 >= 0 && t1 <= 1 {
			roots[n] = t1
			n++
		}
		if t2 >= 0 && t2 <= 1 {
			roots[n] = t2
			n++
		}
	case disc > 0:
		// One real root via cube roots. The radicands may be negative;
		// math.Cbrt preserves their sign.
		discSqrt := math.Sqrt(disc)
		y1 := A*b + 1.5*a*(-B+discSqrt)
		y2 := A*b + 1.5*a*(-B-discSqrt)
		t := (-b - (math.Cbrt(y1) + math.Cbrt(y2))) / (3 * a)
		if t >= 0 && t <= 1 {
			roots[n] = t
			n++
		}
	default:
		// Three distinct real roots via the trigonometric form.
		T := (2*A*b - 3*a*B) / (2 * A * math.Sqrt(A))
		theta := math.Acos(T) / 3
		aSqrt := math.Sqrt(A)
		sinTheta, cosTheta := math.Sincos(theta)
		t1 := (-b - 2*aSqrt*cosTheta) / (3 * a)
		t2 := (-b + aSqrt*(cosTheta+sqrt3*sinTheta)) / (3 * a)
		t3 := (-b + aSqrt*(cosTheta-sqrt3*sinTheta)) / (3 * a)
		if t1 >= 0 && t1 <= 1 {
			roots[n] = t1
			n++
		}
		if t2 >= 0 && t2 <= 1 {
			roots[n] = t2
			n++
		}
		if t3 >= 0 && t3 <= 1 {
			roots[n] = t3
			n++
		}
	}
	return n
}
