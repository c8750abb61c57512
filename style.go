package textmesh

// Style controls how text geometry is generated. It is a pure value type:
// a build never mutates its style, and equal styles with equal text yield
// identical geometry.
type Style struct {
	// Depth is the extrusion distance along -Z. Zero produces flat
	// double-faced geometry.
	Depth float64

	// Subdivision is the number of polyline points sampled per curve
	// segment. Must be at least 1; higher values never decrease the vertex
	// count of a curve.
	Subdivision int

	// Anchor selects the bounding-box point placed at the local origin.
	Anchor Anchor

	// Justify is the per-line horizontal alignment.
	Justify Justify

	// LineSpacing multiplies the font's natural line height.
	// Values <= 0 are treated as 1.
	LineSpacing float64
}

// DefaultStyle returns the default text style: slightly extruded, smooth
// curves, centered anchor, left justification.
func DefaultStyle() Style {
	return Style{
		Depth:       0.1,
		Subdivision: 20,
		Anchor:      AnchorCenter,
		Justify:     JustifyLeft,
		LineSpacing: 1,
	}
}
