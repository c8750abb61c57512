package textmesh

// SegmentOp is the type of outline path operation.
type SegmentOp uint8

const (
	// SegmentOpMoveTo starts a new contour at the target point.
	SegmentOpMoveTo SegmentOp = iota

	// SegmentOpLineTo draws a straight line to the target point.
	SegmentOpLineTo

	// SegmentOpQuadTo draws a quadratic bezier curve.
	SegmentOpQuadTo

	// SegmentOpCubeTo draws a cubic bezier curve.
	SegmentOpCubeTo
)

// String returns a string representation of the operation.
func (op SegmentOp) String() string {
	switch op {
	case SegmentOpMoveTo:
		return "MoveTo"
	case SegmentOpLineTo:
		return "LineTo"
	case SegmentOpQuadTo:
		return "QuadTo"
	case SegmentOpCubeTo:
		return "CubeTo"
	default:
		return "Unknown"
	}
}

// Segment is one segment of a glyph outline.
type Segment struct {
	// Op is the segment operation type.
	Op SegmentOp

	// Args contains the control and end points for this segment:
	//   - MoveTo: Args[0] is the target point
	//   - LineTo: Args[0] is the target point
	//   - QuadTo: Args[0] is the control point, Args[1] is the target
	//   - CubeTo: Args[0], Args[1] are controls, Args[2] is the target
	Args [3]Point
}

// Glyph is the vector outline of a single glyph plus its advance width.
// Coordinates are Y-up with the origin at the glyph's baseline-left
// reference point. A glyph may contain several contours: one or more outer
// boundaries and any number of holes, distinguished by winding direction.
type Glyph struct {
	// Segments is the list of path segments that make up the outline.
	// Each MoveTo opens a new contour; contours close implicitly.
	Segments []Segment

	// Advance is the horizontal distance to the next glyph origin.
	Advance float64
}

// IsEmpty reports whether the glyph has no outline (e.g. a space).
func (g Glyph) IsEmpty() bool {
	return len(g.Segments) == 0
}

// Contour is a closed polyline: an ordered sequence of 2D points where the
// last point connects back to the first. The first point is never repeated
// at the end.
type Contour []Point

// SignedArea returns twice the signed area of the contour via the shoelace
// formula. Positive means counter-clockwise winding in Y-up space.
func (c Contour) SignedArea() float64 {
	var sum float64
	n := len(c)
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		sum += c[i].Cross(c[j])
	}
	return sum
}

// Area returns the absolute enclosed area of the contour.
func (c Contour) Area() float64 {
	a := c.SignedArea() / 2
	if a < 0 {
		return -a
	}
	return a
}

// IsCCW reports whether the contour winds counter-clockwise.
func (c Contour) IsCCW() bool {
	return c.SignedArea() > 0
}

// Reverse reverses the winding direction in place.
func (c Contour) Reverse() {
	for i, j := 0, len(c)-1; i < j; i, j = i+1, j-1 {
		c[i], c[j] = c[j], c[i]
	}
}

// BoundingBox returns the axis-aligned bounding box of the contour.
// Returns a zero Rect for an empty contour.
func (c Contour) BoundingBox() Rect {
	if len(c) == 0 {
		return Rect{}
	}
	bbox := Rect{Min: c[0], Max: c[0]}
	for _, p := range c[1:] {
		bbox = bbox.Union(Rect{Min: p, Max: p})
	}
	return bbox
}

// ContainsPoint reports whether the point lies inside the contour, using
// the even-odd ray casting rule. Points exactly on an edge may report
// either way.
func (c Contour) ContainsPoint(p Point) bool {
	inside := false
	n := len(c)
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		pi, pj := c[i], c[j]
		if (pi.Y > p.Y) != (pj.Y > p.Y) &&
			p.X < (pj.X-pi.X)*(p.Y-pi.Y)/(pj.Y-pi.Y)+pi.X {
			inside = !inside
		}
	}
	return inside
}
