package textmesh

import (
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// Metrics holds the font-wide vertical metrics the layout engine needs.
// All values are positive and in the same units as the glyph outlines.
type Metrics struct {
	// Ascent is the distance from the baseline to the top of the font.
	Ascent float64

	// Descent is the distance from the baseline to the bottom of the font.
	Descent float64

	// LineGap is the recommended extra gap between lines.
	LineGap float64
}

// LineHeight returns the natural baseline-to-baseline distance
// (ascent + descent + line gap).
func (m Metrics) LineHeight() float64 {
	return m.Ascent + m.Descent + m.LineGap
}

// OutlineSource supplies glyph outlines and font metrics. Implementations
// must be ready before a build starts; the pipeline performs no I/O. The
// font subpackage provides implementations backed by real font files, and
// hosts may plug in their own.
type OutlineSource interface {
	// Glyph returns the outline and advance for a character, or ok=false
	// if the font does not cover it.
	Glyph(r rune) (Glyph, bool)

	// Metrics returns the font-wide vertical metrics.
	Metrics() Metrics
}

// Result is the output of a merged-mesh build.
type Result struct {
	// Mesh is the combined geometry of all glyphs, already justified and
	// anchored. Never nil; empty text produces a mesh with zero triangles.
	Mesh *Mesh

	// Bounds is the bounding box of the glyph geometry after the anchor
	// offset is applied. Zero-area for empty text.
	Bounds Rect

	// Placements records where each glyph landed, anchor applied. Useful
	// for callers that need per-character positions alongside the merged
	// mesh.
	Placements []Placement

	// Warnings lists per-glyph problems that were skipped over, such as
	// characters missing from the font or degenerate outlines.
	Warnings []Warning
}

// GlyphMesh is one entry of a per-character build: the glyph's local mesh
// plus the placement that positions it within the text block.
type GlyphMesh struct {
	// Rune is the source character.
	Rune rune

	// Mesh is the glyph's geometry in local glyph space (origin at the
	// glyph's baseline-left reference point).
	Mesh *Mesh

	// Placement positions the local mesh within the anchored text block.
	Placement Placement
}

// GlyphResult is the output of a per-character build.
type GlyphResult struct {
	// Glyphs holds one mesh and placement per character that produced
	// geometry. Whitespace and skipped characters are absent.
	Glyphs []GlyphMesh

	// Bounds is the bounding box of all glyph geometry, anchor applied.
	Bounds Rect

	// Warnings lists per-glyph problems that were skipped over.
	Warnings []Warning
}

// BuildOption configures optional build behavior.
type BuildOption func(*buildOptions)

type buildOptions struct {
	fallback    rune
	hasFallback bool
}

// WithFallbackGlyph substitutes the given character for any character the
// font does not cover. Without this option uncovered characters are skipped
// and recorded as warnings. If the fallback itself is not covered, the
// character is skipped as usual.
func WithFallbackGlyph(r rune) BuildOption {
	return func(o *buildOptions) {
		o.fallback = r
		o.hasFallback = true
	}
}

// Build generates one merged mesh for the given text and style.
//
// Build is a pure function of its inputs: no state survives between calls
// and identical inputs produce bit-identical geometry, so independent
// builds may run in parallel without coordination. Empty text yields an
// empty mesh and zero-area bounds, not an error. Per-glyph failures are
// skipped and recorded on the result; only structural problems (nil
// source, subdivision < 1) fail the whole build.
func Build(src OutlineSource, text string, style Style, opts ...BuildOption) (*Result, error) {
	b, err := buildGlyphLayout(src, text, style, opts)
	if err != nil {
		return nil, err
	}

	merged := &Mesh{}
	for _, pg := range b.placed {
		merged.Append(pg.mesh, V3(pg.placement.Offset.X, pg.placement.Offset.Y, 0))
	}
	Logger().Debug("textmesh: build done",
		"runes", len(text), "triangles", merged.NumTriangles(), "warnings", len(b.warnings))

	return &Result{
		Mesh:       merged,
		Bounds:     b.bounds,
		Placements: b.placements(),
		Warnings:   b.warnings,
	}, nil
}

// BuildGlyphs generates one mesh per character plus its placement, for
// hosts that want to style or animate characters individually. It shares
// the per-glyph pipeline with Build, so the union of the returned meshes
// at their placements is exactly the merged mesh Build would produce.
func BuildGlyphs(src OutlineSource, text string, style Style, opts ...BuildOption) (*GlyphResult, error) {
	b, err := buildGlyphLayout(src, text, style, opts)
	if err != nil {
		return nil, err
	}

	glyphs := make([]GlyphMesh, 0, len(b.placed))
	for _, pg := range b.placed {
		glyphs = append(glyphs, GlyphMesh{
			Rune:      pg.placement.Rune,
			Mesh:      pg.mesh,
			Placement: pg.placement,
		})
	}
	return &GlyphResult{
		Glyphs:   glyphs,
		Bounds:   b.bounds,
		Warnings: b.warnings,
	}, nil
}

// builtGlyph is a glyph prepared once per distinct rune of a build.
type builtGlyph struct {
	advance float64
	mesh    *Mesh // nil for advance-only glyphs (whitespace, degenerate)
	bounds  Rect
}

// placedGlyph pairs a glyph mesh with its final placement.
type placedGlyph struct {
	mesh      *Mesh
	placement Placement
}

// layoutResult carries the shared outcome of the per-glyph pipeline plus
// layout and anchoring.
type layoutResult struct {
	placed   []placedGlyph
	all      []Placement
	bounds   Rect
	warnings []Warning
}

func (l *layoutResult) placements() []Placement {
	return l.all
}

// buildGlyphLayout runs the shared pipeline: outline lookup, flattening,
// triangulation, extrusion, line layout and anchoring. Both output modes
// are thin wrappers over it.
func buildGlyphLayout(src OutlineSource, text string, style Style, opts []BuildOption) (*layoutResult, error) {
	if src == nil {
		return nil, ErrNilSource
	}
	if style.Subdivision < 1 {
		return nil, ErrInvalidSubdivision
	}

	var options buildOptions
	for _, opt := range opts {
		opt(&options)
	}

	spacing := style.LineSpacing
	if spacing <= 0 {
		spacing = 1
	}
	lineHeight := src.Metrics().LineHeight() * spacing

	res := &layoutResult{}

	// Composed characters (e.g. "e" + combining accent) normalize to the
	// single codepoint the font's cmap actually covers.
	text = norm.NFC.String(text)

	cache := make(map[rune]*builtGlyph)
	var entries []LayoutEntry
	// meshRef[i] is the mesh for entries[i], nil for breaks and
	// advance-only entries.
	var meshRef []*Mesh

	idx := -1
	for _, r := range text {
		idx++
		switch r {
		case '\n':
			entries = append(entries, LayoutEntry{Break: true})
			meshRef = append(meshRef, nil)
			continue
		case '\r':
			continue
		}

		lookup := r
		g, ok := src.Glyph(lookup)
		if !ok && options.hasFallback {
			lookup = options.fallback
			g, ok = src.Glyph(lookup)
		}
		if !ok {
			res.warn(r, idx, ErrMissingGlyph)
			continue
		}

		bg, cached := cache[lookup]
		if !cached {
			bg = prepareGlyph(lookup, g, style, idx, res)
			cache[lookup] = bg
		}

		entries = append(entries, LayoutEntry{
			Rune:    r,
			Advance: bg.advance,
			Bounds:  bg.bounds,
		})
		meshRef = append(meshRef, bg.mesh)
	}

	placements, bbox := Layout(entries, lineHeight, style.Justify)
	offset := style.Anchor.Resolve(bbox)

	pi := 0
	for i, e := range entries {
		if e.Break {
			continue
		}
		p := placements[pi]
		pi++
		p.Offset = p.Offset.Sub(offset)
		res.all = append(res.all, p)
		if meshRef[i] != nil {
			res.placed = append(res.placed, placedGlyph{mesh: meshRef[i], placement: p})
		}
	}
	res.bounds = bbox.Translate(Pt(-offset.X, -offset.Y))
	if !res.hasGeometry() {
		res.bounds = Rect{}
	}
	return res, nil
}

// prepareGlyph runs the per-glyph geometry stages: flatten, triangulate,
// extrude. Failures degrade the glyph to advance-only and record a warning;
// one bad character never aborts the build.
func prepareGlyph(r rune, g Glyph, style Style, idx int, res *layoutResult) *builtGlyph {
	bg := &builtGlyph{advance: g.Advance}
	if g.IsEmpty() || unicode.IsSpace(r) {
		return bg
	}

	contours, err := Flatten(g, style.Subdivision)
	if err != nil {
		// Subdivision is validated up front, so this cannot happen; keep
		// the glyph advance-only if it somehow does.
		res.warn(r, idx, err)
		return bg
	}

	mesh, err := BuildGlyphMesh(contours, style.Depth)
	if err != nil {
		res.warn(r, idx, err)
		return bg
	}

	bg.mesh = mesh
	bg.bounds = mesh.BoundingBox2D()
	return bg
}

func (l *layoutResult) warn(r rune, idx int, err error) {
	w := Warning{Rune: r, Index: idx, Err: err}
	l.warnings = append(l.warnings, w)
	Logger().Warn("textmesh: glyph skipped", "rune", string(r), "index", idx, "err", err)
}

func (l *layoutResult) hasGeometry() bool {
	return len(l.placed) > 0
}
