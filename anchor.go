package textmesh

// Anchor selects which point of the laid-out text's bounding box lands at
// the local origin. It is a closed value type: use one of the nine named
// anchors or CustomAnchor for an arbitrary pivot.
//
// The zero value is AnchorBottomLeft.
type Anchor struct {
	pivot Point
}

// Named anchors map to fixed normalized pivots within the bounding box,
// with (0,0) the bottom-left corner and (1,1) the top-right.
var (
	AnchorTopLeft      = Anchor{pivot: Point{X: 0, Y: 1}}
	AnchorTopCenter    = Anchor{pivot: Point{X: 0.5, Y: 1}}
	AnchorTopRight     = Anchor{pivot: Point{X: 1, Y: 1}}
	AnchorCenterLeft   = Anchor{pivot: Point{X: 0, Y: 0.5}}
	AnchorCenter       = Anchor{pivot: Point{X: 0.5, Y: 0.5}}
	AnchorCenterRight  = Anchor{pivot: Point{X: 1, Y: 0.5}}
	AnchorBottomLeft   = Anchor{pivot: Point{X: 0, Y: 0}}
	AnchorBottomCenter = Anchor{pivot: Point{X: 0.5, Y: 0}}
	AnchorBottomRight  = Anchor{pivot: Point{X: 1, Y: 0}}
)

// CustomAnchor returns an anchor with the given normalized pivot.
// Coordinates outside [0,1] are clamped rather than rejected, so
// user-supplied floats can never fail a build.
func CustomAnchor(px, py float64) Anchor {
	return Anchor{pivot: Point{X: clamp01(px), Y: clamp01(py)}}
}

// Pivot returns the anchor's normalized pivot point.
func (a Anchor) Pivot() Point {
	return a.pivot
}

// Resolve computes the offset to subtract from every glyph placement so the
// anchor point of the given bounding box lands at the local origin.
func (a Anchor) Resolve(bbox Rect) Point {
	return Point{
		X: bbox.Min.X + a.pivot.X*bbox.Width(),
		Y: bbox.Min.Y + a.pivot.Y*bbox.Height(),
	}
}

func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}
