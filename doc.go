// Package tri provides a small 2D geometry and math substrate for Go.
//
// # Overview
//
// tri collects the numeric plumbing a 2D graphics stack needs but a
// rendering library is too opinionated to export: fixed-size vectors and
// affine matrices, quadratic and cubic Bézier curve math (evaluation,
// derivatives, extrema, analytic root finding, subdivision, nearest-point
// projection), axis-aligned bounding rectangles, and a four-point
// perspective transform solver. A generic LRU cache lives in the cache
// subpackage for bounded memoization (for example, caching built
// transformers keyed by their source coordinates).
//
// # Quick Start
//
//	import "github.com/urainday/tri"
//
//	// Tight bounding box of a cubic Bézier
//	c := tri.NewCubicBez(tri.Pt(0, 0), tri.Pt(1, 3), tri.Pt(4, -2), tri.Pt(5, 1))
//	box := c.BoundingBox()
//
//	// Map one quadrilateral onto another
//	xform, ok := tri.BuildTransformer(
//	    [8]float64{0, 0, 10, 0, 10, 10, 0, 10},
//	    [8]float64{0, 0, 5, 0, 5, 5, 0, 5},
//	)
//	if ok {
//	    x, y := xform(5, 5) // (2.5, 2.5)
//	    _, _ = x, y
//	}
//
// # Architecture
//
// The library is organized into:
//   - Geometry primitives: Point, Vec2, Matrix, Rect
//   - Curve math: Line, QuadBez, CubicBez plus the scalar per-axis toolkit
//   - Perspective: BuildTransformer (four-point homography solver)
//   - cache/: generic LRU cache and a sharded thread-safe wrapper
//
// Curves are treated as two independent scalar polynomials, one per axis.
// The scalar functions (QuadraticRootAt, CubicExtrema, ...) write results
// into caller-supplied buffers and return counts, so hot paths allocate
// nothing; the struct methods on QuadBez and CubicBez wrap them with an
// allocating, Point-based API.
//
// # Coordinate System
//
// Uses standard computer graphics coordinates:
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//   - Angles in radians
//
// # Concurrency
//
// Everything in the root package is a pure function or a value type and is
// safe for concurrent use. The cache.LRU type assumes a single caller;
// wrap it with a mutex or use cache.ShardedCache for concurrent access.
package tri

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
