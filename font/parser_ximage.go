package font

import (
	"fmt"

	xfont "golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/textmesh"
)

// ximageParser implements Parser using golang.org/x/image/font/opentype.
type ximageParser struct{}

// Parse implements Parser.Parse.
func (p *ximageParser) Parse(data []byte) (ParsedFont, error) {
	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("font: failed to parse font: %w", err)
	}
	return &ximageParsedFont{font: f}, nil
}

// ximageParsedFont implements ParsedFont using sfnt.Font.
//
// Glyphs are loaded at the font's native units per em so fixed-point
// coordinates stay lossless, then scaled to the requested em size. sfnt
// hands out rasterizer-space coordinates (Y down); they are flipped to the
// Y-up convention here.
type ximageParsedFont struct {
	font *opentype.Font
}

// UnitsPerEm implements ParsedFont.UnitsPerEm.
func (f *ximageParsedFont) UnitsPerEm() int {
	return int(f.font.UnitsPerEm())
}

// nativePPEM returns the load size matching the font's design units.
func (f *ximageParsedFont) nativePPEM() fixed.Int26_6 {
	return fixed.Int26_6(f.font.UnitsPerEm()) << 6
}

// Glyph implements ParsedFont.Glyph.
func (f *ximageParsedFont) Glyph(r rune, size float64) (textmesh.Glyph, bool) {
	var buf sfnt.Buffer

	idx, err := f.font.GlyphIndex(&buf, r)
	if err != nil || idx == 0 {
		return textmesh.Glyph{}, false
	}

	ppem := f.nativePPEM()
	segments, err := f.font.LoadGlyph(&buf, idx, ppem, nil)
	if err != nil {
		return textmesh.Glyph{}, false
	}

	scale := size / float64(f.font.UnitsPerEm())
	glyph := textmesh.Glyph{}
	if len(segments) > 0 {
		glyph.Segments = make([]textmesh.Segment, 0, len(segments))
	}
	for _, seg := range segments {
		out := textmesh.Segment{}
		switch seg.Op {
		case sfnt.SegmentOpMoveTo:
			out.Op = textmesh.SegmentOpMoveTo
			out.Args[0] = fixedPoint(seg.Args[0], scale)
		case sfnt.SegmentOpLineTo:
			out.Op = textmesh.SegmentOpLineTo
			out.Args[0] = fixedPoint(seg.Args[0], scale)
		case sfnt.SegmentOpQuadTo:
			out.Op = textmesh.SegmentOpQuadTo
			out.Args[0] = fixedPoint(seg.Args[0], scale)
			out.Args[1] = fixedPoint(seg.Args[1], scale)
		case sfnt.SegmentOpCubeTo:
			out.Op = textmesh.SegmentOpCubeTo
			out.Args[0] = fixedPoint(seg.Args[0], scale)
			out.Args[1] = fixedPoint(seg.Args[1], scale)
			out.Args[2] = fixedPoint(seg.Args[2], scale)
		default:
			continue
		}
		glyph.Segments = append(glyph.Segments, out)
	}

	advance, err := f.font.GlyphAdvance(&buf, idx, ppem, xfont.HintingNone)
	if err == nil {
		glyph.Advance = fixedToFloat64(advance) * scale
	}
	return glyph, true
}

// Metrics implements ParsedFont.Metrics.
func (f *ximageParsedFont) Metrics(size float64) textmesh.Metrics {
	var buf sfnt.Buffer

	m, err := f.font.Metrics(&buf, f.nativePPEM(), xfont.HintingNone)
	if err != nil {
		return textmesh.Metrics{Ascent: size}
	}

	scale := size / float64(f.font.UnitsPerEm())
	ascent := fixedToFloat64(m.Ascent) * scale
	descent := fixedToFloat64(m.Descent) * scale
	return textmesh.Metrics{
		Ascent:  ascent,
		Descent: descent,
		LineGap: fixedToFloat64(m.Height)*scale - ascent - descent,
	}
}

// fixedPoint converts a fixed.Point26_6 in rasterizer space (Y down) to a
// scaled Y-up point.
func fixedPoint(p fixed.Point26_6, scale float64) textmesh.Point {
	return textmesh.Pt(
		fixedToFloat64(p.X)*scale,
		-fixedToFloat64(p.Y)*scale,
	)
}

// fixedToFloat64 converts a fixed.Int26_6 to float64.
func fixedToFloat64(x fixed.Int26_6) float64 {
	return float64(x) / 64.0
}
