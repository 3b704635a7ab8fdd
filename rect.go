package tri

// Rect represents an axis-aligned rectangle.
// Min is the top-left corner (minimum coordinates).
// Max is the bottom-right corner (maximum coordinates).
type Rect struct {
	Min, Max Point
}

// NewRect creates a rectangle from two points.
// The points are normalized so Min <= Max.
func NewRect(p1, p2 Point) Rect {
	return Rect{
		Min: p1.Min(p2),
		Max: p1.Max(p2),
	}
}

// Width returns the width of the rectangle.
func (r Rect) Width() float64 {
	return r.Max.X - r.Min.X
}

// Height returns the height of the rectangle.
func (r Rect) Height() float64 {
	return r.Max.Y - r.Min.Y
}

// IsEmpty returns true if the rectangle has zero or negative area.
func (r Rect) IsEmpty() bool {
	return r.Max.X <= r.Min.X || r.Max.Y <= r.Min.Y
}

// Union returns the smallest rectangle containing both r and other.
func (r Rect) Union(other Rect) Rect {
	return Rect{
		Min: r.Min.Min(other.Min),
		Max: r.Max.Max(other.Max),
	}
}

// UnionPoint returns the smallest rectangle containing both r and p.
func (r Rect) UnionPoint(p Point) Rect {
	return Rect{
		Min: r.Min.Min(p),
		Max: r.Max.Max(p),
	}
}

// Intersect returns the intersection of r and other.
// The result may be empty; check with IsEmpty.
func (r Rect) Intersect(other Rect) Rect {
	return Rect{
		Min: r.Min.Max(other.Min),
		Max: r.Max.Min(other.Max),
	}
}

// Contains returns true if the point is inside the rectangle.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.Min.X && p.X <= r.Max.X && p.Y >= r.Min.Y && p.Y <= r.Max.Y
}

// ContainsRect returns true if other lies entirely inside the rectangle.
func (r Rect) ContainsRect(other Rect) bool {
	return r.Contains(other.Min) && r.Contains(other.Max)
}

// Center returns the center point of the rectangle.
func (r Rect) Center() Point {
	return r.Min.Lerp(r.Max, 0.5)
}

// Transform maps the four corners of the rectangle through m and returns
// their axis-aligned bounds. Under rotation or skew the result is the
// bounding box of the transformed rectangle, not the rectangle itself.
func (r Rect) Transform(m Matrix) Rect {
	p0 := m.TransformPoint(r.Min)
	p1 := m.TransformPoint(Point{X: r.Max.X, Y: r.Min.Y})
	p2 := m.TransformPoint(r.Max)
	p3 := m.TransformPoint(Point{X: r.Min.X, Y: r.Max.Y})
	return Rect{
		Min: p0.Min(p1).Min(p2).Min(p3),
		Max: p0.Max(p1).Max(p2).Max(p3),
	}
}

// BoundingBoxPoints returns the axis-aligned bounds of a set of points.
// Returns a zero rectangle if pts is empty.
func BoundingBoxPoints(pts []Point) Rect {
	if len(pts) == 0 {
		return Rect{}
	}
	r := Rect{Min: pts[0], Max: pts[0]}
	for _, p := range pts[1:] {
		r = r.UnionPoint(p)
	}
	return r
}
