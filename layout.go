package textmesh

// Justify specifies per-line horizontal alignment relative to the widest
// line of the text block.
type Justify int

const (
	// JustifyLeft aligns every line to the left edge (default).
	JustifyLeft Justify = iota
	// JustifyCenter centers each line within the widest line.
	JustifyCenter
	// JustifyRight aligns each line to the right edge of the widest line.
	JustifyRight
)

// String returns the string representation of the justify mode.
func (j Justify) String() string {
	switch j {
	case JustifyLeft:
		return "Left"
	case JustifyCenter:
		return "Center"
	case JustifyRight:
		return "Right"
	default:
		return "Unknown"
	}
}

// LayoutEntry is one item in the layout input sequence: either a glyph with
// its advance and local bounds, or an explicit line-break marker.
type LayoutEntry struct {
	// Rune is the source character, kept for diagnostics and per-character
	// output.
	Rune rune

	// Advance is the horizontal distance to the next glyph origin.
	Advance float64

	// Bounds is the glyph's local bounding box relative to its own
	// baseline-left origin. Zero for glyphs without geometry (whitespace).
	Bounds Rect

	// Break marks an explicit line break; all other fields are ignored.
	Break bool
}

// Placement is the computed position of one glyph within the text block.
// Placements are derived values: recomputed on every layout, never reused
// across builds.
type Placement struct {
	// Rune is the character this placement belongs to.
	Rune rune

	// Line is the zero-based line number, counted top to bottom.
	Line int

	// Offset is the glyph's baseline-left origin in layout space.
	Offset Point

	// Advance is the glyph's advance width, carried through for
	// per-character consumers.
	Advance float64
}

// Layout arranges the entry sequence into lines. Entries are split at break
// markers; within a line each glyph is placed at the running advance sum.
// Line i sits at vertical offset -i*lineHeight so the first line's baseline
// is at y=0 and lines stack downward, matching top-down reading order.
// After left placement each line is shifted per the justify mode relative
// to the widest line.
//
// Returns the placements of all glyph entries (break markers produce none)
// and the combined bounding box of the placed glyph bounds. Whitespace-only
// entries advance the cursor but contribute nothing to the box.
func Layout(entries []LayoutEntry, lineHeight float64, justify Justify) ([]Placement, Rect) {
	placements := make([]Placement, 0, len(entries))
	lineWidths := []float64{}

	line := 0
	cursor := 0.0
	for _, e := range entries {
		if e.Break {
			lineWidths = append(lineWidths, cursor)
			line++
			cursor = 0
			continue
		}
		placements = append(placements, Placement{
			Rune:    e.Rune,
			Line:    line,
			Offset:  Pt(cursor, -float64(line)*lineHeight),
			Advance: e.Advance,
		})
		cursor += e.Advance
	}
	lineWidths = append(lineWidths, cursor)

	maxWidth := 0.0
	for _, w := range lineWidths {
		if w > maxWidth {
			maxWidth = w
		}
	}

	if justify != JustifyLeft {
		for i := range placements {
			slack := maxWidth - lineWidths[placements[i].Line]
			if justify == JustifyCenter {
				slack /= 2
			}
			placements[i].Offset.X += slack
		}
	}

	var bbox Rect
	haveBox := false
	pi := 0
	for _, e := range entries {
		if e.Break {
			continue
		}
		p := placements[pi]
		pi++
		if e.Bounds.IsEmpty() {
			continue
		}
		b := e.Bounds.Translate(p.Offset)
		if !haveBox {
			bbox = b
			haveBox = true
		} else {
			bbox = bbox.Union(b)
		}
	}
	return placements, bbox
}
