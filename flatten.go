package textmesh

// flatten.go converts outline curve segments into closed polylines.

// coincidentEps is the tolerance below which two points are considered
// the same during flattening.
const coincidentEps = 1e-12

// Flatten converts a glyph outline into closed polylines, sampling each
// curve segment at the given subdivision level. A subdivision of N emits N
// points per curve at uniform parameter steps ending at t=1; the t=0 sample
// is the previous point and is not re-emitted. Straight segments emit their
// endpoint only. Winding order of each contour is preserved.
//
// Returns ErrInvalidSubdivision if subdivision < 1. Degenerate input
// (coincident control points, unterminated contours) never yields NaN
// coordinates; consecutive duplicate points are dropped, and contours left
// with fewer than 3 points are discarded.
func Flatten(g Glyph, subdivision int) ([]Contour, error) {
	if subdivision < 1 {
		return nil, ErrInvalidSubdivision
	}

	var contours []Contour
	var current Contour
	var pen Point

	closeCurrent := func() {
		if c := finishContour(current); c != nil {
			contours = append(contours, c)
		}
		current = nil
	}

	for _, seg := range g.Segments {
		switch seg.Op {
		case SegmentOpMoveTo:
			closeCurrent()
			pen = seg.Args[0]
			current = appendPoint(current, pen)

		case SegmentOpLineTo:
			pen = seg.Args[0]
			current = appendPoint(current, pen)

		case SegmentOpQuadTo:
			q := QuadBez{P0: pen, P1: seg.Args[0], P2: seg.Args[1]}
			for i := 1; i <= subdivision; i++ {
				t := float64(i) / float64(subdivision)
				current = appendPoint(current, q.Eval(t))
			}
			pen = seg.Args[1]

		case SegmentOpCubeTo:
			c := CubicBez{P0: pen, P1: seg.Args[0], P2: seg.Args[1], P3: seg.Args[2]}
			for i := 1; i <= subdivision; i++ {
				t := float64(i) / float64(subdivision)
				current = appendPoint(current, c.Eval(t))
			}
			pen = seg.Args[2]
		}
	}
	closeCurrent()

	return contours, nil
}

// appendPoint adds p to the contour, dropping non-finite coordinates and
// points coincident with the previous one.
func appendPoint(c Contour, p Point) Contour {
	if !p.IsFinite() {
		return c
	}
	if n := len(c); n > 0 {
		last := c[n-1]
		if abs(p.X-last.X) <= coincidentEps && abs(p.Y-last.Y) <= coincidentEps {
			return c
		}
	}
	return append(c, p)
}

// finishContour trims an implicit closing point and rejects contours that
// collapsed below 3 points. Returns nil if the contour is degenerate.
func finishContour(c Contour) Contour {
	if len(c) > 1 {
		first, last := c[0], c[len(c)-1]
		if abs(first.X-last.X) <= coincidentEps && abs(first.Y-last.Y) <= coincidentEps {
			c = c[:len(c)-1]
		}
	}
	if len(c) < 3 {
		return nil
	}
	return c
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
