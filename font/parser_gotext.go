package font

import (
	"bytes"
	"fmt"

	gotext "github.com/go-text/typesetting/font"
	ot "github.com/go-text/typesetting/font/opentype"

	"github.com/gogpu/textmesh"
)

// gotextParser implements Parser using github.com/go-text/typesetting.
// Unlike the sfnt backend it also handles OpenType fonts with CFF
// (PostScript) outlines.
type gotextParser struct{}

// Parse implements Parser.Parse.
func (p *gotextParser) Parse(data []byte) (ParsedFont, error) {
	face, err := gotext.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("font: failed to parse font: %w", err)
	}
	// Cache the Font (thread-safe), not the Face.
	return &gotextParsedFont{font: face.Font}, nil
}

// gotextParsedFont implements ParsedFont using a go-text font.
// go-text outlines are already Y-up in font design units.
//
// gotext.Face is not safe for concurrent use, so each lookup wraps the
// read-only Font in a fresh Face. gotext.NewFace is cheap.
type gotextParsedFont struct {
	font *gotext.Font
}

// UnitsPerEm implements ParsedFont.UnitsPerEm.
func (f *gotextParsedFont) UnitsPerEm() int {
	return int(f.font.Upem())
}

// Glyph implements ParsedFont.Glyph.
func (f *gotextParsedFont) Glyph(r rune, size float64) (textmesh.Glyph, bool) {
	face := gotext.NewFace(f.font)
	gid, ok := face.NominalGlyph(r)
	if !ok {
		return textmesh.Glyph{}, false
	}

	scale := size / float64(f.font.Upem())
	glyph := textmesh.Glyph{
		Advance: float64(face.HorizontalAdvance(gid)) * scale,
	}

	outline, ok := face.GlyphData(gid).(gotext.GlyphOutline)
	if !ok {
		// Bitmap or SVG glyph: no outline to mesh, advance still counts.
		return glyph, true
	}

	if len(outline.Segments) > 0 {
		glyph.Segments = make([]textmesh.Segment, 0, len(outline.Segments))
	}
	for _, seg := range outline.Segments {
		out := textmesh.Segment{}
		switch seg.Op {
		case ot.SegmentOpMoveTo:
			out.Op = textmesh.SegmentOpMoveTo
		case ot.SegmentOpLineTo:
			out.Op = textmesh.SegmentOpLineTo
		case ot.SegmentOpQuadTo:
			out.Op = textmesh.SegmentOpQuadTo
		case ot.SegmentOpCubeTo:
			out.Op = textmesh.SegmentOpCubeTo
		default:
			continue
		}
		for i, a := range seg.Args {
			out.Args[i] = textmesh.Pt(float64(a.X)*scale, float64(a.Y)*scale)
		}
		glyph.Segments = append(glyph.Segments, out)
	}
	return glyph, true
}

// Metrics implements ParsedFont.Metrics.
func (f *gotextParsedFont) Metrics(size float64) textmesh.Metrics {
	face := gotext.NewFace(f.font)
	scale := size / float64(f.font.Upem())
	ext, ok := face.FontHExtents()
	if !ok {
		return textmesh.Metrics{Ascent: size}
	}
	// go-text reports the descender as a negative offset from the baseline.
	return textmesh.Metrics{
		Ascent:  float64(ext.Ascender) * scale,
		Descent: float64(-ext.Descender) * scale,
		LineGap: float64(ext.LineGap) * scale,
	}
}
