package tri

import "math/bits"

// Four-point perspective (projective) transform solver.
//
// Given four source points and four destination points, the unique planar
// homography mapping one quadrilateral onto the other has eight degrees of
// freedom:
//
//	x' = (a*x + b*y + c) / (g*x + h*y + 1)
//	y' = (d*x + e*y + f) / (g*x + h*y + 1)
//
// Each source/destination pair contributes two rows of an 8x8 linear
// system in the unknowns [a..h], which is solved by Cramer's rule. The
// required determinants are computed by recursive cofactor expansion with
// memoization, since the 64 minors of the adjugate share most of their
// sub-determinants.

// Transformer maps a source-plane point to the destination plane.
// It holds the eight solved homography coefficients; invoking it is a
// constant-time algebraic evaluation with no recomputation.
type Transformer func(x, y float64) (float64, float64)

// BuildTransformer computes the projective transform mapping the
// quadrilateral src onto dest. Both arguments are flat coordinate
// sequences [x0, y0, x1, y1, x2, y2, x3, y3].
//
// Returns (nil, false) when the four source points are degenerate
// (collinear or duplicated) and no unique homography exists. This is a
// normal "no solution" result, not an error.
func BuildTransformer(src, dest [8]float64) (Transformer, bool) {
	var m [8][8]float64
	for i := 0; i < 4; i++ {
		x, y := src[2*i], src[2*i+1]
		dx, dy := dest[2*i], dest[2*i+1]
		m[2*i] = [8]float64{x, y, 1, 0, 0, 0, -x * dx, -y * dx}
		m[2*i+1] = [8]float64{0, 0, 0, x, y, 1, -x * dy, -y * dy}
	}

	// The memo is scoped to this build; nothing leaks across calls.
	memo := make(map[uint16]float64, 256)
	det := minorDet(&m, 0, 0, memo)
	if det == 0 {
		Logger().Debug("four-point transform: degenerate source quadrilateral",
			"src", src)
		return nil, false
	}

	// h = adj(M)/det * dest, accumulated one cofactor at a time.
	var vh [8]float64
	for i := 0; i < 8; i++ {
		for j := 0; j < 8; j++ {
			sign := 1.0
			if (i+j)%2 == 1 {
				sign = -1.0
			}
			vh[j] += sign * minorDet(&m, 1<<i, 1<<j, memo) / det * dest[i]
		}
	}

	return func(x, y float64) (float64, float64) {
		pk := x*vh[6] + y*vh[7] + 1
		return (x*vh[0] + y*vh[1] + vh[2]) / pk,
			(x*vh[3] + y*vh[4] + vh[5]) / pk
	}, true
}

// minorDet computes the determinant of the submatrix of m formed by the
// rows and columns whose bits are clear in rowMask and colMask, expanding
// along the first unmasked row. Results are memoized by the mask pair;
// masks are 8 bits each, so the key packs into a uint16.
func minorDet(m *[8][8]float64, rowMask, colMask uint16, memo map[uint16]float64) float64 {
	key := rowMask<<8 | colMask
	if v, ok := memo[key]; ok {
		return v
	}

	row := bits.TrailingZeros16(^rowMask)
	if bits.OnesCount16(^rowMask&0xff) == 1 {
		// 1x1 minor: the single remaining entry, located by the unset
		// column bit.
		col := bits.TrailingZeros16(^colMask)
		return m[row][col]
	}

	sum := 0.0
	sign := 1.0
	for col := uint16(0); col < 8; col++ {
		if colMask&(1<<col) != 0 {
			continue
		}
		sum += sign * m[row][col] * minorDet(m, rowMask|1<<row, colMask|1<<col, memo)
		sign = -sign
	}
	memo[key] = sum
	return sum
}
